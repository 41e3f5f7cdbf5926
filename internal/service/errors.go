package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/store"
)

// ServiceError wraps unexpected errors from a service with context.
// Callers use errors.Is/errors.As on the wrapped error; the API layer maps
// anything that is not a validation or not-found error to a 500.
type ServiceError struct {
	// Service is the service that failed (e.g., "set_item")
	Service string
	// Operation is the operation that failed (e.g., "create", "update")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// wrapError returns validation, not-found and invalid-entity errors unchanged
// and wraps everything else in a ServiceError.
func wrapError(service, operation, message string, err error) error {
	if err == nil {
		return nil
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) ||
		errors.Is(err, store.ErrNotFound) ||
		errors.Is(err, store.ErrInvalidEntity) {
		return err
	}

	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
