// Package repository contains data access layer abstractions.
// Implementations live in subpackages (sqlite, postgres) inside this directory.
package repository

import "errors"

// ErrConflict is returned when a write violates a uniqueness constraint.
var ErrConflict = errors.New("unique constraint violated")

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
