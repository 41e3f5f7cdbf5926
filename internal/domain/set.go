package domain

import (
	"strings"
	"time"
)

// Set is a named collection of set items.
type Set struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the fields a caller must supply.
func (s *Set) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return NewValidationError("name", "is required", ErrEmptyField)
	}
	if strings.TrimSpace(s.Description) == "" {
		return NewValidationError("description", "is required", ErrEmptyField)
	}
	return nil
}
