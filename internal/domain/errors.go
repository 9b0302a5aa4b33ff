// Package domain defines the core business entities and errors.
package domain

import "errors"

// ErrValidation is the common parent for entity validation failures. Loaders
// wrap the entity-specific errors with it so callers can test for either.
var ErrValidation = errors.New("validation failed")
