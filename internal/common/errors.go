// Package common defines shared constants and sentinel errors used across
// the CampusHub client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Mutation-level errors.
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrCapacity   = errors.New("event is at capacity")

	// Store-level errors.
	ErrPersistence = errors.New("persistence failed")
	ErrDecode      = errors.New("stored document unreadable")

	// Auth errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
