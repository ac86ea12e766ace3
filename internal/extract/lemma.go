package extract

import (
	"fmt"
	"strings"
	"sync"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// Category is the coarse word class that drives lemmatization.
type Category int

const (
	None Category = iota
	Noun
	Verb
	Adjective
	Adverb
)

func (c Category) String() string {
	switch c {
	case Noun:
		return "noun"
	case Verb:
		return "verb"
	case Adjective:
		return "adjective"
	case Adverb:
		return "adverb"
	default:
		return "none"
	}
}

// CategoryForTag maps a Penn Treebank tag to a lemmatization category.
func CategoryForTag(tag string) Category {
	switch {
	case strings.HasPrefix(tag, "J"):
		return Adjective
	case strings.HasPrefix(tag, "V"):
		return Verb
	case strings.HasPrefix(tag, "N"):
		return Noun
	case strings.HasPrefix(tag, "R"):
		return Adverb
	default:
		return None
	}
}

type detachment struct {
	suffix, ending string
	// undouble also proposes the base with a trailing doubled consonant reduced (running -> run).
	undouble bool
}

var detachments = map[Category][]detachment{
	Noun: {
		{suffix: "s"},
		{suffix: "ses", ending: "s"},
		{suffix: "xes", ending: "x"},
		{suffix: "zes", ending: "z"},
		{suffix: "ches", ending: "ch"},
		{suffix: "shes", ending: "sh"},
		{suffix: "men", ending: "man"},
		{suffix: "ies", ending: "y"},
	},
	Verb: {
		{suffix: "s"},
		{suffix: "ies", ending: "y"},
		{suffix: "ied", ending: "y"},
		{suffix: "es", ending: "e"},
		{suffix: "es"},
		{suffix: "ed", ending: "e"},
		{suffix: "ed", undouble: true},
		{suffix: "ing", ending: "e"},
		{suffix: "ing", undouble: true},
	},
	Adjective: {
		{suffix: "er", undouble: true},
		{suffix: "est", undouble: true},
		{suffix: "er", ending: "e"},
		{suffix: "est", ending: "e"},
		{suffix: "ier", ending: "y"},
		{suffix: "iest", ending: "y"},
	},
}

// Lexicon knows the base forms of English words.
// *golem.Lemmatizer satisfies it.
type Lexicon interface {
	InDict(word string) bool
	Lemmas(word string) []string
}

var (
	englishOnce sync.Once
	english     Lexicon
)

// English returns the lexicon backed by golem's English language pack, loaded on first use.
func English() Lexicon {
	englishOnce.Do(func() {
		l, err := golem.New(en.New())
		if err != nil {
			panic(fmt.Sprintf("extract: load english lexicon: %v", err))
		}
		english = l
	})
	return english
}

// Lemmatize returns the dictionary form of a lowercase word for the given category,
// using the English lexicon.
func Lemmatize(word string, cat Category) string {
	return lemmatize(English(), word, cat)
}

// lemmatize resolves irregular forms from the exception tables first. Otherwise the
// word itself and the candidates proposed by the suffix rules of cat are kept only
// when lex lists them as base forms of the word, and the shortest survivor wins.
// Words unknown to lex, words without a surviving candidate and words of category
// None are returned unchanged.
func lemmatize(lex Lexicon, word string, cat Category) string {
	if cat == None || word == "" {
		return word
	}
	if base, ok := exceptions[cat][word]; ok {
		return base
	}
	if !lex.InDict(word) {
		return word
	}

	known := make(map[string]bool)
	for _, l := range lex.Lemmas(word) {
		known[l] = true
	}

	best := ""
	if known[word] {
		best = word
	}
	for _, r := range detachments[cat] {
		if !strings.HasSuffix(word, r.suffix) || len(word) <= len(r.suffix) {
			continue
		}
		base := word[:len(word)-len(r.suffix)]
		for _, cand := range candidates(base, r) {
			if known[cand] && (best == "" || len(cand) < len(best)) {
				best = cand
			}
		}
	}
	if best == "" {
		return word
	}
	return best
}

func candidates(base string, r detachment) []string {
	out := []string{base + r.ending}
	if r.undouble && hasDoubledConsonant(base) {
		out = append(out, base[:len(base)-1])
	}
	return out
}

func hasDoubledConsonant(s string) bool {
	n := len(s)
	if n < 3 {
		return false
	}
	c := s[n-1]
	return c == s[n-2] && !strings.ContainsRune("aeiou", rune(c))
}
