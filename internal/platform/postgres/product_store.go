package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/paging"
	"github.com/phrazzld/catalog-api/internal/platform/logger"
	"github.com/phrazzld/catalog-api/internal/store"
)

const productColumns = "id, name, price, description, created_at, updated_at"

// PostgresProductStore implements the store.ProductStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProductStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProductStore creates a new PostgreSQL implementation of the ProductStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresProductStore(db store.DBTX, logger *slog.Logger) *PostgresProductStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProductStore{
		db:     db,
		logger: logger.With(slog.String("component", "product_store")),
	}
}

// Ensure PostgresProductStore implements store.ProductStore interface
var _ store.ProductStore = (*PostgresProductStore)(nil)

// WithTx implements store.ProductStore.WithTx
func (s *PostgresProductStore) WithTx(tx *sql.Tx) store.ProductStore {
	return &PostgresProductStore{db: tx, logger: s.logger}
}

// Create implements store.ProductStore.Create
func (s *PostgresProductStore) Create(ctx context.Context, p *domain.Product) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := p.Validate(); err != nil {
		log.Warn("product validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO products (name, price, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	err := s.db.QueryRowContext(ctx, query, p.Name, p.Price, p.Description).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		log.Error("failed to create product", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("product created", slog.Int64("product_id", p.ID))
	return nil
}

// GetByID implements store.ProductStore.GetByID
func (s *PostgresProductStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		err = mapNotFound(err, store.ErrProductNotFound)
		if store.IsNotFoundError(err) {
			log.Debug("product not found", slog.Int64("product_id", id))
		} else {
			log.Error("failed to get product", slog.String("error", err.Error()), slog.Int64("product_id", id))
		}
		return nil, err
	}

	return p, nil
}

// Update implements store.ProductStore.Update
func (s *PostgresProductStore) Update(ctx context.Context, p *domain.Product) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := p.Validate(); err != nil {
		log.Warn("product validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("product_id", p.ID))
		return err
	}

	query := `
		UPDATE products
		SET name = $1, price = $2, description = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING created_at, updated_at
	`
	err := s.db.QueryRowContext(ctx, query, p.Name, p.Price, p.Description, p.ID).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		err = mapNotFound(err, store.ErrProductNotFound)
		if store.IsNotFoundError(err) {
			log.Debug("product not found for update", slog.Int64("product_id", p.ID))
		} else {
			log.Error("failed to update product", slog.String("error", err.Error()), slog.Int64("product_id", p.ID))
		}
		return err
	}

	log.Info("product updated", slog.Int64("product_id", p.ID))
	return nil
}

// Delete implements store.ProductStore.Delete
func (s *PostgresProductStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete product", slog.String("error", err.Error()), slog.Int64("product_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrProductNotFound); err != nil {
		log.Debug("product not found for delete", slog.Int64("product_id", id))
		return err
	}

	log.Info("product deleted", slog.Int64("product_id", id))
	return nil
}

// List implements store.ProductStore.List
func (s *PostgresProductStore) List(ctx context.Context, page paging.PageRequest) ([]*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := buildListQuery("products", productColumns, store.ProductSortColumns, page)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list products", slog.String("error", err.Error()))
		return nil, store.NewStoreError("product", "list", "query failed", MapError(err))
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	products := make([]*domain.Product, 0, page.Limit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Error("failed to scan product row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("product", "list", "scan failed", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning product rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("product", "list", "row iteration failed", err)
	}

	log.Debug("listed products", slog.Int("count", len(products)))
	return products, nil
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
