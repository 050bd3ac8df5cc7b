// Package common defines shared constants and sentinel errors used across
// the CLI and the task server. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository / store-level errors.
	ErrorNotFound = errors.New("not found")

	// Generic internal flow control.
	ErrorInternal = errors.New("internal error")

	// Vault errors.
	ErrVaultLocked = errors.New("vault is locked")
	ErrInvalidPIN  = errors.New("invalid pin")

	// Validation errors for user-supplied task fields.
	ErrValidation = errors.New("validation error")
)
