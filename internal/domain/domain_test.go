package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidationErrorUnwrap(t *testing.T) {
	t.Parallel()

	err := NewValidationError("name", "is required", ErrEmptyField)

	if !errors.Is(err, ErrValidation) {
		t.Error("Expected ValidationError to match ErrValidation")
	}
	if !errors.Is(err, ErrEmptyField) {
		t.Error("Expected ValidationError to match the wrapped cause")
	}
	if !IsValidationError(err) {
		t.Error("Expected IsValidationError to be true")
	}
	if got, want := err.Error(), "validation failed: name is required"; got != want {
		t.Errorf("Expected message %q, got %q", want, got)
	}

	bare := NewValidationError("", "bad input", nil)
	if !errors.Is(bare, ErrValidation) {
		t.Error("Expected ValidationError without cause to match ErrValidation")
	}
}

func TestProductValidate(t *testing.T) {
	t.Parallel()

	valid := Product{Name: "Test Product", Price: decimal.RequireFromString("19.99"), Description: "x"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	missingName := valid
	missingName.Name = "  "
	assertField(t, missingName.Validate(), "name")

	missingDescription := valid
	missingDescription.Description = ""
	assertField(t, missingDescription.Validate(), "description")

	// Price is not bounded.
	for _, price := range []string{"0", "-5.25"} {
		p := valid
		p.Price = decimal.RequireFromString(price)
		if err := p.Validate(); err != nil {
			t.Errorf("Expected price %s to be accepted, got %v", price, err)
		}
	}
}

func TestAdValidate(t *testing.T) {
	t.Parallel()

	valid := Ad{ProductID: 1, Title: "Test Ad", Content: "This is a test ad."}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Expected no error for ad without image, got %v", err)
	}

	noProduct := valid
	noProduct.ProductID = 0
	assertField(t, noProduct.Validate(), "product_id")

	noTitle := valid
	noTitle.Title = ""
	assertField(t, noTitle.Validate(), "title")

	noContent := valid
	noContent.Content = ""
	assertField(t, noContent.Validate(), "content")
}

func TestSetValidate(t *testing.T) {
	t.Parallel()

	valid := Set{Name: "Set 1", Description: "Description for Set 1"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	noName := valid
	noName.Name = ""
	assertField(t, noName.Validate(), "name")
}

func TestSetItemValidate(t *testing.T) {
	t.Parallel()

	valid := SetItem{SetID: 1, ItemType: "ad", ItemID: 2}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Free-form item types are accepted.
	custom := valid
	custom.ItemType = "bundle"
	if err := custom.Validate(); err != nil {
		t.Fatalf("Expected free-form item type to validate, got %v", err)
	}

	noSet := valid
	noSet.SetID = -1
	assertField(t, noSet.Validate(), "set_id")

	noType := valid
	noType.ItemType = ""
	assertField(t, noType.Validate(), "item_type")

	noItem := valid
	noItem.ItemID = 0
	assertField(t, noItem.Validate(), "item_id")

	mixed := SetItem{ItemType: "  Product "}
	if got := mixed.NormalizedItemType(); got != ItemTypeProduct {
		t.Errorf("Expected normalized item type %q, got %q", ItemTypeProduct, got)
	}
}

func assertField(t *testing.T, err error, field string) {
	t.Helper()

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Expected *ValidationError, got %T (%v)", err, err)
	}
	if vErr.Field != field {
		t.Errorf("Expected field %q, got %q", field, vErr.Field)
	}
}
