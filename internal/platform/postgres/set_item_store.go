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

const setItemColumns = "id, set_id, item_type, item_id, created_at, updated_at"

// PostgresSetItemStore implements the store.SetItemStore interface
// using a PostgreSQL database as the storage backend.
//
// item_id is stored as given. Whether it names an existing record is checked,
// when at all, by service.SetItemService.
type PostgresSetItemStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSetItemStore creates a new PostgreSQL implementation of the SetItemStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresSetItemStore(db store.DBTX, logger *slog.Logger) *PostgresSetItemStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSetItemStore{
		db:     db,
		logger: logger.With(slog.String("component", "set_item_store")),
	}
}

// Ensure PostgresSetItemStore implements store.SetItemStore interface
var _ store.SetItemStore = (*PostgresSetItemStore)(nil)

// WithTx implements store.SetItemStore.WithTx
func (s *PostgresSetItemStore) WithTx(tx *sql.Tx) store.SetItemStore {
	return &PostgresSetItemStore{db: tx, logger: s.logger}
}

// Create implements store.SetItemStore.Create
func (s *PostgresSetItemStore) Create(ctx context.Context, si *domain.SetItem) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := si.Validate(); err != nil {
		log.Warn("set item validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO set_items (set_id, item_type, item_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	err := s.db.QueryRowContext(ctx, query, si.SetID, si.ItemType, si.ItemID).
		Scan(&si.ID, &si.CreatedAt, &si.UpdatedAt)
	if err != nil {
		log.Error("failed to create set item",
			slog.String("error", err.Error()),
			slog.Int64("set_id", si.SetID))
		return MapError(err)
	}

	log.Info("set item created",
		slog.Int64("set_item_id", si.ID),
		slog.Int64("set_id", si.SetID),
		slog.String("item_type", si.ItemType))
	return nil
}

// GetByID implements store.SetItemStore.GetByID
func (s *PostgresSetItemStore) GetByID(ctx context.Context, id int64) (*domain.SetItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + setItemColumns + ` FROM set_items WHERE id = $1`

	si, err := scanSetItem(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		err = mapNotFound(err, store.ErrSetItemNotFound)
		if store.IsNotFoundError(err) {
			log.Debug("set item not found", slog.Int64("set_item_id", id))
		} else {
			log.Error("failed to get set item", slog.String("error", err.Error()), slog.Int64("set_item_id", id))
		}
		return nil, err
	}

	return si, nil
}

// Update implements store.SetItemStore.Update
func (s *PostgresSetItemStore) Update(ctx context.Context, si *domain.SetItem) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := si.Validate(); err != nil {
		log.Warn("set item validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("set_item_id", si.ID))
		return err
	}

	query := `
		UPDATE set_items
		SET set_id = $1, item_type = $2, item_id = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING created_at, updated_at
	`
	err := s.db.QueryRowContext(ctx, query, si.SetID, si.ItemType, si.ItemID, si.ID).
		Scan(&si.CreatedAt, &si.UpdatedAt)
	if err != nil {
		err = mapNotFound(err, store.ErrSetItemNotFound)
		if store.IsNotFoundError(err) {
			log.Debug("set item not found for update", slog.Int64("set_item_id", si.ID))
		} else {
			log.Error("failed to update set item", slog.String("error", err.Error()), slog.Int64("set_item_id", si.ID))
		}
		return err
	}

	log.Info("set item updated", slog.Int64("set_item_id", si.ID))
	return nil
}

// Delete implements store.SetItemStore.Delete
func (s *PostgresSetItemStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM set_items WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete set item", slog.String("error", err.Error()), slog.Int64("set_item_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrSetItemNotFound); err != nil {
		log.Debug("set item not found for delete", slog.Int64("set_item_id", id))
		return err
	}

	log.Info("set item deleted", slog.Int64("set_item_id", id))
	return nil
}

// List implements store.SetItemStore.List
func (s *PostgresSetItemStore) List(ctx context.Context, page paging.PageRequest) ([]*domain.SetItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := buildListQuery("set_items", setItemColumns, store.SetItemSortColumns, page)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list set items", slog.String("error", err.Error()))
		return nil, store.NewStoreError("set_item", "list", "query failed", MapError(err))
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	items := make([]*domain.SetItem, 0, page.Limit)
	for rows.Next() {
		si, err := scanSetItem(rows)
		if err != nil {
			log.Error("failed to scan set item row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("set_item", "list", "scan failed", err)
		}
		items = append(items, si)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning set item rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("set_item", "list", "row iteration failed", err)
	}

	log.Debug("listed set items", slog.Int("count", len(items)))
	return items, nil
}

func scanSetItem(row rowScanner) (*domain.SetItem, error) {
	var si domain.SetItem
	if err := row.Scan(&si.ID, &si.SetID, &si.ItemType, &si.ItemID, &si.CreatedAt, &si.UpdatedAt); err != nil {
		return nil, err
	}
	return &si, nil
}
