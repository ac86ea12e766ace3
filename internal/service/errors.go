package service

import (
	"errors"
	"fmt"
)

var (
	ErrTextRequired = errors.New("text is required")
	ErrWordRequired = errors.New("word is required")
	ErrTextTooLarge = errors.New("text exceeds the size limit")
	ErrNoLemma      = errors.New("word has no acceptable dictionary form")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("word already exists")
	ErrForbidden    = errors.New("word belongs to another user")
	ErrInvalidURL   = errors.New("url must be absolute http or https")
	ErrFetchFailed  = errors.New("fetch failed")

	ErrCredentialsRequired = errors.New("username and password are required")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrUnauthenticated     = errors.New("authentication required")
)

// Entities reported by NotFoundError.
const (
	EntityWord   = "word"
	EntityPhrase = "phrase"
)

// NotFoundError reports a missing word, or a phrase not linked to its word.
// It matches ErrNotFound with errors.Is.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
