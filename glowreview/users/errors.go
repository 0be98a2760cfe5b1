package users

import "errors"

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")

	// the (provider, provider_key) pair is already bound to a different user
	ErrLinkConflict = errors.New("external login already linked to another account")
)
