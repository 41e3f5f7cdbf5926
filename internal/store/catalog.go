package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/paging"
)

// Sortable columns per entity. List requests may only order by these.
var (
	ProductSortColumns = []string{"id", "name", "price", "description", "created_at", "updated_at"}
	AdSortColumns      = []string{"id", "product_id", "title", "content", "image_url", "created_at", "updated_at"}
	SetSortColumns     = []string{"id", "name", "description", "created_at", "updated_at"}
	SetItemSortColumns = []string{"id", "set_id", "item_type", "item_id", "created_at", "updated_at"}
)

// ProductStore defines the interface for product persistence.
type ProductStore interface {
	// Create inserts p and fills in its ID and timestamps.
	Create(ctx context.Context, p *domain.Product) error

	// GetByID returns ErrProductNotFound if the product does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// Update replaces every writable field of the product with p.ID and
	// refreshes p from the stored row. Returns ErrProductNotFound if the
	// product does not exist.
	Update(ctx context.Context, p *domain.Product) error

	// Delete returns ErrProductNotFound if the product does not exist.
	// Ads of the product are removed by the schema's cascade.
	Delete(ctx context.Context, id int64) error

	// List returns at most page.Limit products in page order, starting after
	// page.Cursor. The result is never nil.
	List(ctx context.Context, page paging.PageRequest) ([]*domain.Product, error)

	// WithTx returns a ProductStore bound to tx.
	WithTx(tx *sql.Tx) ProductStore
}

// AdStore defines the interface for ad persistence.
// Semantics mirror ProductStore; a product_id that does not reference a
// product yields ErrInvalidEntity.
type AdStore interface {
	Create(ctx context.Context, a *domain.Ad) error
	GetByID(ctx context.Context, id int64) (*domain.Ad, error)
	Update(ctx context.Context, a *domain.Ad) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, page paging.PageRequest) ([]*domain.Ad, error)
	WithTx(tx *sql.Tx) AdStore
}

// SetStore defines the interface for set persistence.
type SetStore interface {
	Create(ctx context.Context, s *domain.Set) error
	GetByID(ctx context.Context, id int64) (*domain.Set, error)
	Update(ctx context.Context, s *domain.Set) error

	// Delete removes the set and, through the schema's cascade, its items.
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, page paging.PageRequest) ([]*domain.Set, error)
	WithTx(tx *sql.Tx) SetStore
}

// SetItemStore defines the interface for set item persistence.
// A set_id that does not reference a set yields ErrInvalidEntity; item_id is
// stored as given.
type SetItemStore interface {
	Create(ctx context.Context, si *domain.SetItem) error
	GetByID(ctx context.Context, id int64) (*domain.SetItem, error)
	Update(ctx context.Context, si *domain.SetItem) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, page paging.PageRequest) ([]*domain.SetItem, error)
	WithTx(tx *sql.Tx) SetItemStore
}
