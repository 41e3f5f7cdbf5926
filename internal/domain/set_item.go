package domain

import (
	"strings"
	"time"
)

// Item types with a known backing table. ItemType is free-form, so other
// values are accepted but never resolved.
const (
	ItemTypeProduct = "product"
	ItemTypeAd      = "ad"
)

// SetItem places a product, an ad or any other typed item in a set.
// ItemID is interpreted according to ItemType and is not a foreign key.
type SetItem struct {
	ID        int64
	SetID     int64
	ItemType  string
	ItemID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the fields a caller must supply.
func (si *SetItem) Validate() error {
	if si.SetID <= 0 {
		return NewValidationError("set_id", "must be a positive integer", ErrInvalidID)
	}
	if strings.TrimSpace(si.ItemType) == "" {
		return NewValidationError("item_type", "is required", ErrEmptyField)
	}
	if si.ItemID <= 0 {
		return NewValidationError("item_id", "must be a positive integer", ErrInvalidID)
	}
	return nil
}

// NormalizedItemType returns ItemType lower-cased and trimmed, the form used
// when matching against the known item types.
func (si *SetItem) NormalizedItemType() string {
	return strings.ToLower(strings.TrimSpace(si.ItemType))
}
