package products

import "errors"

var ErrNotFound = errors.New("product not found")
