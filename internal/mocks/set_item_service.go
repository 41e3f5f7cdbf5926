package mocks

import (
	"context"

	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/service"
)

// MockSetItemService implements service.SetItemService for testing.
// Without function fields it forwards to Store.
type MockSetItemService struct {
	CreateFn func(ctx context.Context, si *domain.SetItem) error
	UpdateFn func(ctx context.Context, si *domain.SetItem) error

	Store *MockSetItemStore
}

var _ service.SetItemService = (*MockSetItemService)(nil)

// NewMockSetItemService creates a service mock that writes to items.
func NewMockSetItemService(items *MockSetItemStore) *MockSetItemService {
	return &MockSetItemService{Store: items}
}

// Create implements the SetItemService interface
func (m *MockSetItemService) Create(ctx context.Context, si *domain.SetItem) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, si)
	}
	return m.Store.Create(ctx, si)
}

// Update implements the SetItemService interface
func (m *MockSetItemService) Update(ctx context.Context, si *domain.SetItem) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, si)
	}
	return m.Store.Update(ctx, si)
}
