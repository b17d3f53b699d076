// Package common defines sentinel errors and small helpers shared by the
// Back2Me stores and the terminal client. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound           = errors.New("not found")
	ErrorStorageUnavailable = errors.New("storage unavailable")

	// Input errors. validation.Errors matches ErrorValidation.
	ErrorValidation = errors.New("validation error")

	// Account errors.
	ErrorDuplicateEmail     = errors.New("email already registered")
	ErrorDuplicateUsername  = errors.New("username already taken")
	ErrorInvalidCredentials = errors.New("invalid email or password")
	ErrorWrongPassword      = errors.New("current password is incorrect")

	// Session token errors.
	ErrInvalidToken = errors.New("invalid token")
)
