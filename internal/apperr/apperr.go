package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors for store-level failure categories. Repositories wrap the
// driver error with one of these so upper layers can pick a status code
// without inspecting driver types.
var (
	// ErrIntegrity marks a constraint violation the schema validation did
	// not catch (unique, check, foreign key).
	ErrIntegrity = errors.New("data integrity violation")

	// ErrUnavailable marks a store that cannot be reached or used. Clients
	// may treat this as transient.
	ErrUnavailable = errors.New("database unavailable")
)

// NotFoundError reports that a requested entity has no live row, or that a
// write referenced a parent entity that does not exist.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Resource, e.ID)
}

// NotFound marks the error for interface-based checks.
func (e *NotFoundError) NotFound() {}

// NewNotFound builds a NotFoundError for the given resource kind and id.
func NewNotFound(resource string, id uint) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
