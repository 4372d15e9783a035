package service

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services.
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserDisabled       = errors.New("user disabled")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrSlugExists         = errors.New("slug already exists")
	ErrNameTooLong        = errors.New("name too long")
	ErrCategoryInUse      = errors.New("category has subcategories")
	ErrSubcategoryInUse   = errors.New("subcategory has products")
)

// Validation error kinds.
const (
	ValidationRequired   = "required"
	ValidationNotFound   = "not_found"
	ValidationOutOfRange = "out_of_range"
	ValidationDuplicate  = "duplicate"
)

// ValidationError is a field-scoped input error. Handlers surface it as an
// HTTP 400 keyed by Field; callers must correct the input, it is never
// retried automatically.
type ValidationError struct {
	Kind    string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(kind, field, message string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Message: message}
}
