package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryForTag(t *testing.T) {
	tests := map[string]Category{
		"JJ":  Adjective,
		"JJS": Adjective,
		"VBD": Verb,
		"VB":  Verb,
		"NN":  Noun,
		"NNP": Noun,
		"RB":  Adverb,
		"RBR": Adverb,
		"DT":  None,
		"IN":  None,
		"CD":  None,
		"":    None,
	}
	for tag, want := range tests {
		assert.Equal(t, want, CategoryForTag(tag), tag)
	}
}

// mapLexicon maps inflected forms to their base forms; base forms list themselves.
type mapLexicon map[string][]string

func (m mapLexicon) InDict(word string) bool { _, ok := m[word]; return ok }

func (m mapLexicon) Lemmas(word string) []string {
	if l, ok := m[word]; ok {
		return l
	}
	return []string{word}
}

func TestLemmatize_Rules(t *testing.T) {
	lex := mapLexicon{
		"houses":   {"house"},
		"running":  {"run", "running"},
		"studied":  {"study"},
		"happier":  {"happy"},
		"data":     {"datum"},
		"analysis": {"analysis"},
		"leaves":   {"leave", "leaf"},
	}

	tests := []struct {
		word string
		cat  Category
		want string
	}{
		{"houses", Noun, "house"},
		{"houses", Verb, "house"},
		{"running", Verb, "run"},
		{"studied", Verb, "study"},
		{"happier", Adjective, "happy"},
		// no rule reaches the lexicon lemma
		{"data", Noun, "data"},
		{"analysis", Noun, "analysis"},
		// exception tables win over the lexicon
		{"leaves", Noun, "leaf"},
		// unknown words are never clipped
		{"canvas", Noun, "canvas"},
		{"blorks", Noun, "blorks"},
		{"houses", None, "houses"},
		{"", Noun, ""},
	}

	for _, tt := range tests {
		t.Run(tt.word+"/"+tt.cat.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, lemmatize(lex, tt.word, tt.cat))
		})
	}
}

func TestLemmatize(t *testing.T) {
	tests := []struct {
		word string
		cat  Category
		want string
	}{
		{"cats", Noun, "cat"},
		{"studies", Noun, "study"},
		{"glasses", Noun, "glass"},
		{"foxes", Noun, "fox"},
		{"class", Noun, "class"},
		{"children", Noun, "child"},
		{"houses", Noun, "house"},
		{"causes", Noun, "cause"},
		{"problems", Noun, "problem"},
		{"analysis", Noun, "analysis"},
		{"basis", Noun, "basis"},
		{"crisis", Noun, "crisis"},
		{"bus", Noun, "bus"},
		{"canvas", Noun, "canvas"},
		{"running", Verb, "run"},
		{"making", Verb, "make"},
		{"played", Verb, "play"},
		{"jumped", Verb, "jump"},
		{"caused", Verb, "cause"},
		{"studied", Verb, "study"},
		{"went", Verb, "go"},
		{"was", Verb, "be"},
		{"better", Adjective, "good"},
		{"bigger", Adjective, "big"},
		{"happier", Adjective, "happy"},
		{"larger", Adjective, "large"},
		{"faster", Adjective, "fast"},
		{"quick", Adjective, "quick"},
		{"quickly", Adverb, "quickly"},
		{"better", Adverb, "well"},
		{"running", None, "running"},
		{"", Noun, ""},
	}

	for _, tt := range tests {
		t.Run(tt.word+"/"+tt.cat.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Lemmatize(tt.word, tt.cat))
		})
	}
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "noun", Noun.String())
	assert.Equal(t, "verb", Verb.String())
	assert.Equal(t, "adjective", Adjective.String())
	assert.Equal(t, "adverb", Adverb.String())
	assert.Equal(t, "none", None.String())
}
