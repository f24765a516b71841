package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
// The file store also returns it for absent or unreadable slots, so callers
// can fall back to the seeded default state.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidCredentials indicates a failed username/password match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNoSession indicates that no user is currently authenticated.
var ErrNoSession = errors.New("no active session")
