package federated

import "errors"

var (
	// the callback payload lacks a required claim (at minimum the email)
	ErrMissingClaims = errors.New("callback is missing required claims")

	// the local account could not be created for the claimed identity
	ErrAccountCreation = errors.New("failed to create account for external login")
)
