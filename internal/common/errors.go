// Package common defines shared constants and sentinel errors used across
// investrack components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Ledger-level errors.
	ErrorNotFound = errors.New("not found")

	// Directory-level errors.
	ErrorEmailAlreadyExists = errors.New("email already exists")
)
