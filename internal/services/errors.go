package services

import "github.com/pkg/errors"

var (
	// ErrNotFound is returned when an identity lookup does not resolve
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a write would break a uniqueness rule
	ErrConflict = errors.New("conflict")
	// ErrReferentialBlock is returned when a hive is still referenced by observations
	ErrReferentialBlock = errors.New("referenced by observations")
	// ErrValidation is returned for missing or malformed input
	ErrValidation = errors.New("invalid input")
)
