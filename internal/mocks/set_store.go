package mocks

import (
	"context"
	"database/sql"
	"time"

	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/paging"
	"github.com/phrazzld/catalog-api/internal/store"
)

// MockSetStore implements store.SetStore for testing
type MockSetStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, s *domain.Set) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.Set, error)
	UpdateFn  func(ctx context.Context, s *domain.Set) error
	DeleteFn  func(ctx context.Context, id int64) error
	ListFn    func(ctx context.Context, page paging.PageRequest) ([]*domain.Set, error)

	// LastPage records the page request of the most recent List call
	LastPage paging.PageRequest

	rows *table[domain.Set]
}

// NewMockSetStore creates a new mock store backed by an empty in-memory table
func NewMockSetStore() *MockSetStore {
	return &MockSetStore{rows: newTable[domain.Set]()}
}

var _ store.SetStore = (*MockSetStore)(nil)

// Create implements the SetStore interface
func (m *MockSetStore) Create(ctx context.Context, s *domain.Set) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	if err := s.Validate(); err != nil {
		return err
	}
	m.rows.insert(func(id int64, now time.Time) domain.Set {
		s.ID, s.CreatedAt, s.UpdatedAt = id, now, now
		return *s
	})
	return nil
}

// GetByID implements the SetStore interface
func (m *MockSetStore) GetByID(ctx context.Context, id int64) (*domain.Set, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	row, ok := m.rows.get(id)
	if !ok {
		return nil, store.ErrSetNotFound
	}
	return &row, nil
}

// Update implements the SetStore interface
func (m *MockSetStore) Update(ctx context.Context, s *domain.Set) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, s)
	}
	if err := s.Validate(); err != nil {
		return err
	}
	existing, ok := m.rows.get(s.ID)
	if !ok {
		return store.ErrSetNotFound
	}
	s.CreatedAt = existing.CreatedAt
	s.UpdatedAt = time.Now().UTC()
	m.rows.replace(s.ID, *s)
	return nil
}

// Delete implements the SetStore interface
func (m *MockSetStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if !m.rows.remove(id) {
		return store.ErrSetNotFound
	}
	return nil
}

// List implements the SetStore interface
func (m *MockSetStore) List(ctx context.Context, page paging.PageRequest) ([]*domain.Set, error) {
	m.LastPage = page
	if m.ListFn != nil {
		return m.ListFn(ctx, page)
	}
	rows := m.rows.page(page)
	out := make([]*domain.Set, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

// WithTx returns the mock itself; the in-memory table has no transactions
func (m *MockSetStore) WithTx(tx *sql.Tx) store.SetStore {
	return m
}
