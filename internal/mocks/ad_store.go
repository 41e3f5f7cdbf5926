package mocks

import (
	"context"
	"database/sql"
	"time"

	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/paging"
	"github.com/phrazzld/catalog-api/internal/store"
)

// MockAdStore implements store.AdStore for testing
type MockAdStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, a *domain.Ad) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.Ad, error)
	UpdateFn  func(ctx context.Context, a *domain.Ad) error
	DeleteFn  func(ctx context.Context, id int64) error
	ListFn    func(ctx context.Context, page paging.PageRequest) ([]*domain.Ad, error)

	// LastPage records the page request of the most recent List call
	LastPage paging.PageRequest

	rows *table[domain.Ad]
}

// NewMockAdStore creates a new mock store backed by an empty in-memory table
func NewMockAdStore() *MockAdStore {
	return &MockAdStore{rows: newTable[domain.Ad]()}
}

var _ store.AdStore = (*MockAdStore)(nil)

// Create implements the AdStore interface
func (m *MockAdStore) Create(ctx context.Context, a *domain.Ad) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	if err := a.Validate(); err != nil {
		return err
	}
	m.rows.insert(func(id int64, now time.Time) domain.Ad {
		a.ID, a.CreatedAt, a.UpdatedAt = id, now, now
		return *a
	})
	return nil
}

// GetByID implements the AdStore interface
func (m *MockAdStore) GetByID(ctx context.Context, id int64) (*domain.Ad, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	row, ok := m.rows.get(id)
	if !ok {
		return nil, store.ErrAdNotFound
	}
	return &row, nil
}

// Update implements the AdStore interface
func (m *MockAdStore) Update(ctx context.Context, a *domain.Ad) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, a)
	}
	if err := a.Validate(); err != nil {
		return err
	}
	existing, ok := m.rows.get(a.ID)
	if !ok {
		return store.ErrAdNotFound
	}
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = time.Now().UTC()
	m.rows.replace(a.ID, *a)
	return nil
}

// Delete implements the AdStore interface
func (m *MockAdStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if !m.rows.remove(id) {
		return store.ErrAdNotFound
	}
	return nil
}

// List implements the AdStore interface
func (m *MockAdStore) List(ctx context.Context, page paging.PageRequest) ([]*domain.Ad, error) {
	m.LastPage = page
	if m.ListFn != nil {
		return m.ListFn(ctx, page)
	}
	rows := m.rows.page(page)
	out := make([]*domain.Ad, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

// WithTx returns the mock itself; the in-memory table has no transactions
func (m *MockAdStore) WithTx(tx *sql.Tx) store.AdStore {
	return m
}
