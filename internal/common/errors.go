// Package common defines shared sentinel errors and small helpers used across
// the wallet client. Callers should use errors.Is to match the errors.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Validation errors.
	ErrorInvalidInput = errors.New("invalid input")
)
