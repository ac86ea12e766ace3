// Package model contains the dictionary domain types. No business logic here.
package model

// Word is a lemma in a user's dictionary.
// This is a pure domain model with no database-specific dependencies or tags.
type Word struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	UserID int64  `json:"user_id"`
}

// Phrase is a key phrase extracted from a text.
type Phrase struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PhraseWord is a word related to another word through a shared phrase.
type PhraseWord struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// WordDetail is a word together with the phrases containing it and its related words.
type WordDetail struct {
	Word        Word         `json:"word"`
	Phrases     []Phrase     `json:"phrases"`
	PhraseWords []PhraseWord `json:"phrase_words"`
}

// WordLink is a directed word-to-word relation, by word name.
type WordLink struct {
	Main    string `json:"main"`
	Related string `json:"related"`
}

// PhraseLink records that a phrase contains a word, by name.
type PhraseLink struct {
	Phrase string `json:"phrase"`
	Word   string `json:"word"`
}

// Extraction is everything to persist for one submitted text, owned by UserID.
type Extraction struct {
	UserID      int64        `json:"user_id"`
	Words       []string     `json:"words"`
	Phrases     []string     `json:"phrases"`
	WordLinks   []WordLink   `json:"word_links"`
	PhraseLinks []PhraseLink `json:"phrase_links"`
	// ArchiveKey is the object storage key of the archived source text, if any.
	ArchiveKey string `json:"archive_key,omitempty"`
}

// ExtractionSummary reports how many rows an extraction added.
type ExtractionSummary struct {
	Words       int `json:"words"`
	Phrases     int `json:"phrases"`
	WordLinks   int `json:"word_links"`
	PhraseLinks int `json:"phrase_links"`
}
