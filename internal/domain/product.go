package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item in the catalog.
type Product struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the fields a caller must supply. The ID is assigned by the
// store and is not checked here.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return NewValidationError("name", "is required", ErrEmptyField)
	}
	if strings.TrimSpace(p.Description) == "" {
		return NewValidationError("description", "is required", ErrEmptyField)
	}
	return nil
}
