package mocks

import (
	"context"
	"database/sql"
	"time"

	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/paging"
	"github.com/phrazzld/catalog-api/internal/store"
)

// MockSetItemStore implements store.SetItemStore for testing
type MockSetItemStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, si *domain.SetItem) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.SetItem, error)
	UpdateFn  func(ctx context.Context, si *domain.SetItem) error
	DeleteFn  func(ctx context.Context, id int64) error
	ListFn    func(ctx context.Context, page paging.PageRequest) ([]*domain.SetItem, error)

	// LastPage records the page request of the most recent List call
	LastPage paging.PageRequest

	rows *table[domain.SetItem]
}

// NewMockSetItemStore creates a new mock store backed by an empty in-memory table
func NewMockSetItemStore() *MockSetItemStore {
	return &MockSetItemStore{rows: newTable[domain.SetItem]()}
}

var _ store.SetItemStore = (*MockSetItemStore)(nil)

// Create implements the SetItemStore interface
func (m *MockSetItemStore) Create(ctx context.Context, si *domain.SetItem) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, si)
	}
	if err := si.Validate(); err != nil {
		return err
	}
	m.rows.insert(func(id int64, now time.Time) domain.SetItem {
		si.ID, si.CreatedAt, si.UpdatedAt = id, now, now
		return *si
	})
	return nil
}

// GetByID implements the SetItemStore interface
func (m *MockSetItemStore) GetByID(ctx context.Context, id int64) (*domain.SetItem, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	row, ok := m.rows.get(id)
	if !ok {
		return nil, store.ErrSetItemNotFound
	}
	return &row, nil
}

// Update implements the SetItemStore interface
func (m *MockSetItemStore) Update(ctx context.Context, si *domain.SetItem) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, si)
	}
	if err := si.Validate(); err != nil {
		return err
	}
	existing, ok := m.rows.get(si.ID)
	if !ok {
		return store.ErrSetItemNotFound
	}
	si.CreatedAt = existing.CreatedAt
	si.UpdatedAt = time.Now().UTC()
	m.rows.replace(si.ID, *si)
	return nil
}

// Delete implements the SetItemStore interface
func (m *MockSetItemStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if !m.rows.remove(id) {
		return store.ErrSetItemNotFound
	}
	return nil
}

// List implements the SetItemStore interface
func (m *MockSetItemStore) List(ctx context.Context, page paging.PageRequest) ([]*domain.SetItem, error) {
	m.LastPage = page
	if m.ListFn != nil {
		return m.ListFn(ctx, page)
	}
	rows := m.rows.page(page)
	out := make([]*domain.SetItem, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

// WithTx returns the mock itself; the in-memory table has no transactions
func (m *MockSetItemStore) WithTx(tx *sql.Tx) store.SetItemStore {
	return m
}
