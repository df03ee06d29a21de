package errs

import "errors"

// Sentinel error kinds for cross-layer signaling. Services wrap these
// with fmt.Errorf("...: %w", kind) and handlers discriminate with
// errors.Is to pick a response status.
var (
	ErrNotFound            = errors.New("not found")
	ErrAlreadyExists       = errors.New("already exists")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidUsername     = errors.New("invalid username")
	ErrInvalidPassword     = errors.New("invalid password")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAccessDenied        = errors.New("access denied")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrExceedsCapacity     = errors.New("exceeds capacity")
	ErrUnauthenticated     = errors.New("unauthenticated")
)
