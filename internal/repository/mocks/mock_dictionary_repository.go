package mocks

import (
	"context"

	"dictapi/internal/model"
	"dictapi/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockDictionaryRepository struct {
	mock.Mock
}

func (m *MockDictionaryRepository) ListWords(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Word], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Word]), args.Error(1)
}

func (m *MockDictionaryRepository) FindWordByID(ctx context.Context, id int64) (*model.Word, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Word), args.Error(1)
}

func (m *MockDictionaryRepository) PhrasesForWord(ctx context.Context, wordID int64) ([]model.Phrase, error) {
	args := m.Called(ctx, wordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Phrase), args.Error(1)
}

func (m *MockDictionaryRepository) FindPhraseForWord(ctx context.Context, wordID, phraseID int64) (*model.Phrase, error) {
	args := m.Called(ctx, wordID, phraseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Phrase), args.Error(1)
}

func (m *MockDictionaryRepository) PhraseWordsForWord(ctx context.Context, wordID int64) ([]model.PhraseWord, error) {
	args := m.Called(ctx, wordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PhraseWord), args.Error(1)
}

func (m *MockDictionaryRepository) CreateWord(ctx context.Context, userID int64, name string) (*model.Word, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Word), args.Error(1)
}

func (m *MockDictionaryRepository) RenameWord(ctx context.Context, id int64, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockDictionaryRepository) SaveExtraction(ctx context.Context, ex *model.Extraction) (*model.ExtractionSummary, error) {
	args := m.Called(ctx, ex)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExtractionSummary), args.Error(1)
}

func (m *MockDictionaryRepository) LinkPhraseWord(ctx context.Context, userID, wordID int64, name string) (*model.Word, error) {
	args := m.Called(ctx, userID, wordID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Word), args.Error(1)
}

func (m *MockDictionaryRepository) DeleteWord(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDictionaryRepository) DeletePhrase(ctx context.Context, phraseID int64) error {
	args := m.Called(ctx, phraseID)
	return args.Error(0)
}

func (m *MockDictionaryRepository) DeletePhraseWordLink(ctx context.Context, wordID, phraseWordID int64) error {
	args := m.Called(ctx, wordID, phraseWordID)
	return args.Error(0)
}
