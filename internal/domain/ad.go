package domain

import (
	"strings"
	"time"
)

// Ad is promotional content attached to a product.
type Ad struct {
	ID        int64
	ProductID int64
	Title     string
	Content   string
	// ImageURL is optional; nil means no image.
	ImageURL  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the fields a caller must supply.
func (a *Ad) Validate() error {
	if a.ProductID <= 0 {
		return NewValidationError("product_id", "must be a positive integer", ErrInvalidID)
	}
	if strings.TrimSpace(a.Title) == "" {
		return NewValidationError("title", "is required", ErrEmptyField)
	}
	if strings.TrimSpace(a.Content) == "" {
		return NewValidationError("content", "is required", ErrEmptyField)
	}
	return nil
}
