package extract

import (
	"strings"

	"github.com/jdkato/prose/tokenize"
)

// tokenPattern recognises, in priority order: abbreviations (U.S.A.), words with
// internal hyphens, currency and percentages ($12.40, 82%), ellipsis, and single
// punctuation marks.
const tokenPattern = `(?:[A-Z]\.)+` +
	`|[\p{L}\p{N}_]+(?:-[\p{L}\p{N}_]+)*` +
	`|\$?\d+(?:\.\d+)?%?` +
	`|\.\.\.` +
	"|[\\]\\[.,;\"'?():_`-]"

// punctuation holds the characters emitted as standalone tokens.
const punctuation = "[].,;\"'?():_`-"

var tokenizer = tokenize.NewRegexpTokenizer(tokenPattern, false, false)

// Tokenize splits text into lexical tokens. Characters not covered by the
// token pattern are dropped.
func Tokenize(text string) []string {
	return tokenizer.Tokenize(text)
}

// IsPunctuation reports whether tok is a single punctuation token.
func IsPunctuation(tok string) bool {
	return len(tok) == 1 && strings.Contains(punctuation, tok)
}

// words returns tokens without punctuation tokens.
func words(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !IsPunctuation(t) {
			out = append(out, t)
		}
	}
	return out
}
