package mocks

import (
	"context"

	"dictapi/internal/model"
	"dictapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockDictionaryService struct {
	mock.Mock
}

func (m *MockDictionaryService) ListWords(ctx context.Context, limit, offset int) (*service.WordListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.WordListResult), args.Error(1)
}

func (m *MockDictionaryService) ViewWord(ctx context.Context, id int64) (*model.WordDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WordDetail), args.Error(1)
}

func (m *MockDictionaryService) AddFromText(ctx context.Context, userID int64, text string) (*service.ExtractionResult, error) {
	args := m.Called(ctx, userID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExtractionResult), args.Error(1)
}

func (m *MockDictionaryService) AddFromURL(ctx context.Context, userID int64, rawURL string) (*service.ExtractionResult, error) {
	args := m.Called(ctx, userID, rawURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExtractionResult), args.Error(1)
}

func (m *MockDictionaryService) AddWord(ctx context.Context, userID int64, word string) (*model.Word, error) {
	args := m.Called(ctx, userID, word)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Word), args.Error(1)
}

func (m *MockDictionaryService) EditWord(ctx context.Context, userID, id int64, name string) (*model.Word, error) {
	args := m.Called(ctx, userID, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Word), args.Error(1)
}

func (m *MockDictionaryService) AddPhraseWord(ctx context.Context, userID, id int64, word string) (*model.Word, error) {
	args := m.Called(ctx, userID, id, word)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Word), args.Error(1)
}

func (m *MockDictionaryService) DeleteWord(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockDictionaryService) DeletePhrase(ctx context.Context, userID, wordID, phraseID int64) error {
	args := m.Called(ctx, userID, wordID, phraseID)
	return args.Error(0)
}

func (m *MockDictionaryService) DeletePhraseWord(ctx context.Context, userID, wordID, phraseWordID int64) error {
	args := m.Called(ctx, userID, wordID, phraseWordID)
	return args.Error(0)
}
