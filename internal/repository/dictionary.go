package repository

import (
	"context"

	"dictapi/internal/model"
)

// DictionaryRepository defines data access for words, phrases and their relations.
// Persistence operations only; no business logic.
// Lookups of missing rows return sql.ErrNoRows; uniqueness violations return ErrConflict.
type DictionaryRepository interface {
	// ListWords returns a page of words ordered by name, with the total word count.
	ListWords(ctx context.Context, pq PageQuery) (*PageResult[model.Word], error)

	// FindWordByID returns a word by its ID.
	FindWordByID(ctx context.Context, id int64) (*model.Word, error)

	// PhrasesForWord returns the distinct phrases linked to a word.
	PhrasesForWord(ctx context.Context, wordID int64) ([]model.Phrase, error)

	// FindPhraseForWord returns a phrase only if it is linked to the word.
	FindPhraseForWord(ctx context.Context, wordID, phraseID int64) (*model.Phrase, error)

	// PhraseWordsForWord returns the distinct words related to a word.
	PhraseWordsForWord(ctx context.Context, wordID int64) ([]model.PhraseWord, error)

	// CreateWord inserts a word; an existing name for the same user is a conflict.
	CreateWord(ctx context.Context, userID int64, name string) (*model.Word, error)

	// RenameWord changes the name of a word.
	RenameWord(ctx context.Context, id int64, name string) error

	// SaveExtraction stores the words, phrases and relations of one text in a single
	// transaction. Existing rows are kept; relations join only rows of ex.UserID.
	SaveExtraction(ctx context.Context, ex *model.Extraction) (*model.ExtractionSummary, error)

	// LinkPhraseWord makes sure a word named name exists for the user and relates it
	// to wordID in both directions. It returns the related word.
	LinkPhraseWord(ctx context.Context, userID, wordID int64, name string) (*model.Word, error)

	// DeleteWord removes a word along with its word relations and phrase memberships.
	DeleteWord(ctx context.Context, id int64) error

	// DeletePhrase removes a phrase along with its memberships.
	DeletePhrase(ctx context.Context, phraseID int64) error

	// DeletePhraseWordLink removes the relation between two words in both directions.
	DeletePhraseWordLink(ctx context.Context, wordID, phraseWordID int64) error
}

// UserRepository defines data access for accounts.
type UserRepository interface {
	// CreateUser inserts an account; a taken username is a conflict.
	CreateUser(ctx context.Context, username, passwordHash string) (*model.User, error)

	FindUserByUsername(ctx context.Context, username string) (*model.User, error)

	FindUserByID(ctx context.Context, id int64) (*model.User, error)
}
