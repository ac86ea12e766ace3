package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokens(pairs ...string) []Token {
	out := make([]Token, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Token{Text: pairs[i], Tag: pairs[i+1]})
	}
	return out
}

func TestParseGrammar(t *testing.T) {
	t.Run("default grammar", func(t *testing.T) {
		c, err := ParseGrammar(DefaultGrammar)
		require.NoError(t, err)
		require.Len(t, c.stages, 3)
		assert.Equal(t, "NP", c.stages[0].label)
		assert.Len(t, c.stages[2].rules, 5)
	})

	t.Run("rule on label line", func(t *testing.T) {
		c, err := ParseGrammar("# nouns\nNP: {<NN>+}\n")
		require.NoError(t, err)
		require.Len(t, c.stages, 1)
		assert.Len(t, c.stages[0].rules, 1)
	})

	errCases := map[string]string{
		"rule before label": "{<NN>}",
		"missing braces":    "NP:\n<NN>",
		"empty stage":       "NP:\nVP:\n{<VB>}",
		"unbalanced":        "NP: {<NN}",
		"stray close":       "NP: {NN>}",
		"bad regexp":        "NP: {<NN>(}",
	}
	for name, src := range errCases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseGrammar(src)
			assert.Error(t, err)
		})
	}
}

func TestCompileTagPattern(t *testing.T) {
	re, err := compileTagPattern("<DT>? <JJ.*|NN.*>+")
	require.NoError(t, err)

	assert.True(t, re.MatchString("<DT><JJ><NNS>"))
	assert.Equal(t, "<NN>", re.FindString("<NN><VBD>"))
	assert.Empty(t, re.FindString("<VB><IN>"))
}

func TestChunker_Parse(t *testing.T) {
	c := MustParseGrammar(DefaultGrammar)

	tests := []struct {
		name   string
		tokens []Token
		want   string
	}{
		{
			name: "noun phrases inside a verb phrase",
			tokens: tokens("The", "DT", "quick", "JJ", "fox", "NN", "jumped", "VBD",
				"over", "IN", "the", "DT", "lazy", "JJ", "dog", "NN", ".", "."),
			want: "(S (NP The/DT quick/JJ fox/NN) (VP jumped/VBD over/IN (NP the/DT lazy/JJ dog/NN)) ./.)",
		},
		{
			name:   "prepositional phrase",
			tokens: tokens("the", "DT", "cup", "NN", "of", "IN", "coffee", "NN"),
			want:   "(S (PP the/DT cup/NN of/IN coffee/NN))",
		},
		{
			name:   "adverb before verb",
			tokens: tokens("quickly", "RB", "ran", "VBD"),
			want:   "(S (VP quickly/RB ran/VBD))",
		},
		{
			name:   "no chunks",
			tokens: tokens("and", "CC", ",", ","),
			want:   "(S and/CC ,/,)",
		},
		{
			name:   "empty",
			tokens: nil,
			want:   "(S)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Parse(tt.tokens).String())
		})
	}
}

func TestTree_Subtrees(t *testing.T) {
	c := MustParseGrammar(DefaultGrammar)
	tree := c.Parse(tokens("The", "DT", "quick", "JJ", "fox", "NN", "jumped", "VBD",
		"over", "IN", "the", "DT", "lazy", "JJ", "dog", "NN"))

	var labels []string
	for _, s := range tree.Subtrees() {
		labels = append(labels, s.Label)
	}
	assert.Equal(t, []string{"S", "NP", "VP", "NP"}, labels)

	vp := tree.Subtrees()[2]
	var words []string
	for _, leaf := range vp.Leaves() {
		words = append(words, leaf.Text)
	}
	assert.Equal(t, []string{"jumped", "over", "the", "lazy", "dog"}, words)
}

func TestMustParseGrammar_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseGrammar("{<NN>}") })
}
