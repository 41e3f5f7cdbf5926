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

const setColumns = "id, name, description, created_at, updated_at"

// PostgresSetStore implements store.SetStore on PostgreSQL.
type PostgresSetStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSetStore creates a new PostgresSetStore.
func NewPostgresSetStore(db store.DBTX, logger *slog.Logger) *PostgresSetStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSetStore{
		db:     db,
		logger: logger.With(slog.String("component", "set_store")),
	}
}

var _ store.SetStore = (*PostgresSetStore)(nil)

func (s *PostgresSetStore) WithTx(tx *sql.Tx) store.SetStore {
	return &PostgresSetStore{db: tx, logger: s.logger}
}

func (s *PostgresSetStore) Create(ctx context.Context, set *domain.Set) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := set.Validate(); err != nil {
		log.Warn("set validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO sets (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`
	err := s.db.QueryRowContext(ctx, query, set.Name, set.Description).
		Scan(&set.ID, &set.CreatedAt, &set.UpdatedAt)
	if err != nil {
		log.Error("failed to create set", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("set created", slog.Int64("set_id", set.ID))
	return nil
}

func (s *PostgresSetStore) GetByID(ctx context.Context, id int64) (*domain.Set, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + setColumns + ` FROM sets WHERE id = $1`

	set, err := scanSet(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		err = mapNotFound(err, store.ErrSetNotFound)
		if store.IsNotFoundError(err) {
			log.Debug("set not found", slog.Int64("set_id", id))
		} else {
			log.Error("failed to get set", slog.String("error", err.Error()), slog.Int64("set_id", id))
		}
		return nil, err
	}

	return set, nil
}

func (s *PostgresSetStore) Update(ctx context.Context, set *domain.Set) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := set.Validate(); err != nil {
		log.Warn("set validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("set_id", set.ID))
		return err
	}

	query := `
		UPDATE sets
		SET name = $1, description = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING created_at, updated_at
	`
	err := s.db.QueryRowContext(ctx, query, set.Name, set.Description, set.ID).
		Scan(&set.CreatedAt, &set.UpdatedAt)
	if err != nil {
		err = mapNotFound(err, store.ErrSetNotFound)
		if store.IsNotFoundError(err) {
			log.Debug("set not found for update", slog.Int64("set_id", set.ID))
		} else {
			log.Error("failed to update set", slog.String("error", err.Error()), slog.Int64("set_id", set.ID))
		}
		return err
	}

	log.Info("set updated", slog.Int64("set_id", set.ID))
	return nil
}

// Delete removes the set. Its items go with it (ON DELETE CASCADE).
func (s *PostgresSetStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM sets WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete set", slog.String("error", err.Error()), slog.Int64("set_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrSetNotFound); err != nil {
		log.Debug("set not found for delete", slog.Int64("set_id", id))
		return err
	}

	log.Info("set deleted", slog.Int64("set_id", id))
	return nil
}

func (s *PostgresSetStore) List(ctx context.Context, page paging.PageRequest) ([]*domain.Set, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := buildListQuery("sets", setColumns, store.SetSortColumns, page)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list sets", slog.String("error", err.Error()))
		return nil, store.NewStoreError("set", "list", "query failed", MapError(err))
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	sets := make([]*domain.Set, 0, page.Limit)
	for rows.Next() {
		set, err := scanSet(rows)
		if err != nil {
			log.Error("failed to scan set row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("set", "list", "scan failed", err)
		}
		sets = append(sets, set)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning set rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("set", "list", "row iteration failed", err)
	}

	return sets, nil
}

func scanSet(row rowScanner) (*domain.Set, error) {
	var set domain.Set
	if err := row.Scan(&set.ID, &set.Name, &set.Description, &set.CreatedAt, &set.UpdatedAt); err != nil {
		return nil, err
	}
	return &set, nil
}
