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

const adColumns = "id, product_id, title, content, image_url, created_at, updated_at"

// PostgresAdStore implements the store.AdStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAdStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAdStore creates a new PostgreSQL implementation of the AdStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresAdStore(db store.DBTX, logger *slog.Logger) *PostgresAdStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAdStore{
		db:     db,
		logger: logger.With(slog.String("component", "ad_store")),
	}
}

// Ensure PostgresAdStore implements store.AdStore interface
var _ store.AdStore = (*PostgresAdStore)(nil)

// WithTx implements store.AdStore.WithTx
func (s *PostgresAdStore) WithTx(tx *sql.Tx) store.AdStore {
	return &PostgresAdStore{db: tx, logger: s.logger}
}

// Create implements store.AdStore.Create.
// A product_id with no matching product is rejected by the foreign key and
// reported as store.ErrInvalidEntity.
func (s *PostgresAdStore) Create(ctx context.Context, a *domain.Ad) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := a.Validate(); err != nil {
		log.Warn("ad validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO ads (product_id, title, content, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := s.db.QueryRowContext(ctx, query, a.ProductID, a.Title, a.Content, nullString(a.ImageURL)).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		log.Error("failed to create ad",
			slog.String("error", err.Error()),
			slog.Int64("product_id", a.ProductID))
		return MapError(err)
	}

	log.Info("ad created", slog.Int64("ad_id", a.ID), slog.Int64("product_id", a.ProductID))
	return nil
}

// GetByID implements store.AdStore.GetByID
func (s *PostgresAdStore) GetByID(ctx context.Context, id int64) (*domain.Ad, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + adColumns + ` FROM ads WHERE id = $1`

	a, err := scanAd(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		err = mapNotFound(err, store.ErrAdNotFound)
		if store.IsNotFoundError(err) {
			log.Debug("ad not found", slog.Int64("ad_id", id))
		} else {
			log.Error("failed to get ad", slog.String("error", err.Error()), slog.Int64("ad_id", id))
		}
		return nil, err
	}

	return a, nil
}

// Update implements store.AdStore.Update
func (s *PostgresAdStore) Update(ctx context.Context, a *domain.Ad) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := a.Validate(); err != nil {
		log.Warn("ad validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("ad_id", a.ID))
		return err
	}

	query := `
		UPDATE ads
		SET product_id = $1, title = $2, content = $3, image_url = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING created_at, updated_at
	`
	err := s.db.QueryRowContext(ctx, query, a.ProductID, a.Title, a.Content, nullString(a.ImageURL), a.ID).
		Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		err = mapNotFound(err, store.ErrAdNotFound)
		if store.IsNotFoundError(err) {
			log.Debug("ad not found for update", slog.Int64("ad_id", a.ID))
		} else {
			log.Error("failed to update ad", slog.String("error", err.Error()), slog.Int64("ad_id", a.ID))
		}
		return err
	}

	log.Info("ad updated", slog.Int64("ad_id", a.ID))
	return nil
}

// Delete implements store.AdStore.Delete
func (s *PostgresAdStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM ads WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete ad", slog.String("error", err.Error()), slog.Int64("ad_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrAdNotFound); err != nil {
		log.Debug("ad not found for delete", slog.Int64("ad_id", id))
		return err
	}

	log.Info("ad deleted", slog.Int64("ad_id", id))
	return nil
}

// List implements store.AdStore.List
func (s *PostgresAdStore) List(ctx context.Context, page paging.PageRequest) ([]*domain.Ad, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := buildListQuery("ads", adColumns, store.AdSortColumns, page)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list ads", slog.String("error", err.Error()))
		return nil, store.NewStoreError("ad", "list", "query failed", MapError(err))
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	ads := make([]*domain.Ad, 0, page.Limit)
	for rows.Next() {
		a, err := scanAd(rows)
		if err != nil {
			log.Error("failed to scan ad row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("ad", "list", "scan failed", err)
		}
		ads = append(ads, a)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning ad rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("ad", "list", "row iteration failed", err)
	}

	log.Debug("listed ads", slog.Int("count", len(ads)))
	return ads, nil
}

func scanAd(row rowScanner) (*domain.Ad, error) {
	var (
		a        domain.Ad
		imageURL sql.NullString
	)
	if err := row.Scan(&a.ID, &a.ProductID, &a.Title, &a.Content, &imageURL, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	if imageURL.Valid {
		a.ImageURL = &imageURL.String
	}
	return &a, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
