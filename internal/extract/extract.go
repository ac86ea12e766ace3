package extract

import (
	"strings"
	"unicode/utf8"
)

// Word length bounds, in characters, for a token to become a dictionary term.
const (
	MinWordLen = 2
	MaxWordLen = 40
)

// Result is the outcome of running the extraction pipeline over a text.
type Result struct {
	// Lemmas are the distinct normalized acceptable words, in order of first appearance.
	Lemmas []string `json:"lemmas"`
	// Phrases are the distinct chunk strings: every leaf of a chunk, normalized and space separated.
	Phrases []string `json:"phrases"`
	// Terms hold, per chunk, its normalized acceptable words. Chunks without any are omitted.
	Terms [][]string `json:"terms"`
}

// WordPair is a directed word-to-word relation.
type WordPair struct {
	Main    string `json:"main"`
	Related string `json:"related"`
}

// PhraseMember links a phrase to a word it contains.
type PhraseMember struct {
	Phrase string `json:"phrase"`
	Word   string `json:"word"`
}

// Extractor turns free text into lemmas, phrases and the relations between them.
// It is safe for concurrent use when its Tagger is.
type Extractor struct {
	tagger  Tagger
	chunker *Chunker
}

// New builds an Extractor. A nil chunker selects DefaultGrammar.
func New(tagger Tagger, chunker *Chunker) *Extractor {
	if chunker == nil {
		chunker = MustParseGrammar(DefaultGrammar)
	}
	return &Extractor{tagger: tagger, chunker: chunker}
}

// Acceptable reports whether word is long enough, short enough and not a stopword.
func Acceptable(word string) bool {
	n := utf8.RuneCountInString(word)
	return n >= MinWordLen && n <= MaxWordLen && !IsStopword(word)
}

// Normalize lowercases word, tags it in isolation and lemmatizes it with the
// category of that tag.
func (e *Extractor) Normalize(word string) string {
	lower := strings.ToLower(word)
	tagged := e.tagger.Tag([]string{lower})
	if len(tagged) == 0 {
		return lower
	}
	return Lemmatize(lower, CategoryForTag(tagged[0].Tag))
}

// Lemmas returns the normalized acceptable words of text, punctuation removed,
// duplicates included.
func (e *Extractor) Lemmas(text string) []string {
	var out []string
	for _, w := range words(Tokenize(text)) {
		if !Acceptable(w) {
			continue
		}
		if l := e.Normalize(w); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// Chunk tags the tokens of text and returns its shallow parse.
func (e *Extractor) Chunk(text string) *Tree {
	return e.chunker.Parse(e.tagger.Tag(Tokenize(text)))
}

// Extract runs the whole pipeline.
func (e *Extractor) Extract(text string) Result {
	res := Result{Lemmas: distinct(e.Lemmas(text))}

	var phrases []string
	for _, sub := range e.Chunk(text).Subtrees() {
		if sub.Label == RootLabel {
			continue
		}
		leaves := sub.Leaves()
		all := make([]string, 0, len(leaves))
		var term []string
		for _, leaf := range leaves {
			if leaf.Text == "" {
				continue
			}
			n := e.Normalize(leaf.Text)
			all = append(all, n)
			if Acceptable(leaf.Text) {
				term = append(term, n)
			}
		}
		if len(all) > 0 {
			phrases = append(phrases, strings.Join(all, " "))
		}
		if len(term) > 0 {
			res.Terms = append(res.Terms, term)
		}
	}
	res.Phrases = distinct(phrases)
	return res
}

// WordPairs lists, for every lemma, a relation in both directions to each other
// acceptable word of every term containing it. Pairs are distinct.
func (r Result) WordPairs() []WordPair {
	seen := make(map[WordPair]bool)
	var out []WordPair
	add := func(p WordPair) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, lemma := range r.Lemmas {
		for _, term := range r.Terms {
			if !contains(term, lemma) {
				continue
			}
			for _, w := range term {
				if w == lemma || !Acceptable(w) {
					continue
				}
				add(WordPair{Main: lemma, Related: w})
				add(WordPair{Main: w, Related: lemma})
			}
		}
	}
	return out
}

// PhraseMembers links every lemma to each phrase having it as one of its words.
func (r Result) PhraseMembers() []PhraseMember {
	var out []PhraseMember
	for _, lemma := range r.Lemmas {
		for _, phrase := range r.Phrases {
			if contains(strings.Fields(phrase), lemma) {
				out = append(out, PhraseMember{Phrase: phrase, Word: lemma})
			}
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func distinct(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
