package accounts

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")

	// the account is locked until its cooldown elapses, regardless of
	// password correctness
	ErrLockedOut = errors.New("account locked out")

	// the account cannot authenticate locally (no password is set)
	ErrNotAllowed = errors.New("local sign-in not allowed for this account")
)

// WeakPasswordError carries every policy rule the password violated.
type WeakPasswordError struct {
	Issues []string
}

func (e *WeakPasswordError) Error() string {
	return "password rejected: " + strings.Join(e.Issues, "; ")
}
