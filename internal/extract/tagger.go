package extract

import "github.com/jdkato/prose/tag"

// Token is a word together with its Penn Treebank part-of-speech tag.
type Token struct {
	Text string `json:"text"`
	Tag  string `json:"tag"`
}

// Tagger assigns part-of-speech tags to a token sequence.
// Implementations return exactly one Token per input word, in order.
type Tagger interface {
	Tag(words []string) []Token
}

type perceptronTagger struct {
	t *tag.PerceptronTagger
}

// NewPerceptronTagger loads the averaged perceptron model bundled with prose.
// Loading is relatively slow; build one tagger per process and share it.
func NewPerceptronTagger() Tagger {
	return &perceptronTagger{t: tag.NewPerceptronTagger()}
}

func (p *perceptronTagger) Tag(words []string) []Token {
	if len(words) == 0 {
		return nil
	}
	tagged := p.t.Tag(words)
	out := make([]Token, len(tagged))
	for i, tok := range tagged {
		out[i] = Token{Text: tok.Text, Tag: tok.Tag}
	}
	return out
}
