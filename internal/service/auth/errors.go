package auth

import (
	"errors"
	"strings"
)

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the token is not yet valid (nbf claim in the future)
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidCredentials indicates a failed login. Unknown usernames
	// and wrong passwords both map here so the two cases cannot be told
	// apart by the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// RegistrationError carries the provider-reported reasons a registration
// was rejected (weak password, duplicate username, ...). The API layer
// surfaces the reasons to the client.
type RegistrationError struct {
	Reasons []string
}

// Error implements the error interface for RegistrationError.
func (e *RegistrationError) Error() string {
	return "registration rejected: " + strings.Join(e.Reasons, "; ")
}

// IsRegistrationError checks whether the error is a RegistrationError
// and returns it if so.
func IsRegistrationError(err error) (*RegistrationError, bool) {
	var regErr *RegistrationError
	if errors.As(err, &regErr) {
		return regErr, true
	}
	return nil, false
}
