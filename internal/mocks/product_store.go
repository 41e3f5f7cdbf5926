package mocks

import (
	"context"
	"database/sql"
	"time"

	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/paging"
	"github.com/phrazzld/catalog-api/internal/store"
)

// MockProductStore implements store.ProductStore for testing
type MockProductStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, p *domain.Product) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.Product, error)
	UpdateFn  func(ctx context.Context, p *domain.Product) error
	DeleteFn  func(ctx context.Context, id int64) error
	ListFn    func(ctx context.Context, page paging.PageRequest) ([]*domain.Product, error)

	// LastPage records the page request of the most recent List call
	LastPage paging.PageRequest

	rows *table[domain.Product]
}

// NewMockProductStore creates a new mock store backed by an empty in-memory table
func NewMockProductStore() *MockProductStore {
	return &MockProductStore{rows: newTable[domain.Product]()}
}

var _ store.ProductStore = (*MockProductStore)(nil)

// Create implements the ProductStore interface
func (m *MockProductStore) Create(ctx context.Context, p *domain.Product) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	m.rows.insert(func(id int64, now time.Time) domain.Product {
		p.ID, p.CreatedAt, p.UpdatedAt = id, now, now
		return *p
	})
	return nil
}

// GetByID implements the ProductStore interface
func (m *MockProductStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	row, ok := m.rows.get(id)
	if !ok {
		return nil, store.ErrProductNotFound
	}
	return &row, nil
}

// Update implements the ProductStore interface
func (m *MockProductStore) Update(ctx context.Context, p *domain.Product) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, p)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	existing, ok := m.rows.get(p.ID)
	if !ok {
		return store.ErrProductNotFound
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	m.rows.replace(p.ID, *p)
	return nil
}

// Delete implements the ProductStore interface
func (m *MockProductStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if !m.rows.remove(id) {
		return store.ErrProductNotFound
	}
	return nil
}

// List implements the ProductStore interface
func (m *MockProductStore) List(ctx context.Context, page paging.PageRequest) ([]*domain.Product, error) {
	m.LastPage = page
	if m.ListFn != nil {
		return m.ListFn(ctx, page)
	}
	rows := m.rows.page(page)
	out := make([]*domain.Product, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

// WithTx returns the mock itself; the in-memory table has no transactions
func (m *MockProductStore) WithTx(tx *sql.Tx) store.ProductStore {
	return m
}
