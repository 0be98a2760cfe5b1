package roles

import "errors"

var ErrRoleNotFound = errors.New("role not found")
