package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/platform/logger"
	"github.com/phrazzld/catalog-api/internal/store"
)

// SetItemService creates and updates set items, optionally checking that the
// set and the referenced item exist.
type SetItemService interface {
	// Create stores si and fills in its ID and timestamps.
	Create(ctx context.Context, si *domain.SetItem) error

	// Update replaces the set item with si.ID.
	Update(ctx context.Context, si *domain.SetItem) error
}

// SetItemStores groups the stores a SetItemService reads and writes.
type SetItemStores struct {
	SetItems store.SetItemStore
	Sets     store.SetStore
	Products store.ProductStore
	Ads      store.AdStore
}

type setItemServiceImpl struct {
	db         *sql.DB
	stores     SetItemStores
	verifyRefs bool
	logger     *slog.Logger
}

// NewSetItemService creates a new SetItemService.
//
// With verifyRefs unset, set items are written as given and the database's
// foreign key is the only check on set_id. With verifyRefs set, each write runs
// in a transaction that first checks set_id and, for the "product" and "ad"
// item types, item_id; a missing reference is reported as a
// *domain.ValidationError. Other item types are not checked.
func NewSetItemService(
	db *sql.DB,
	stores SetItemStores,
	verifyRefs bool,
	logger *slog.Logger,
) (SetItemService, error) {
	if stores.SetItems == nil {
		return nil, &ServiceError{Service: "set_item", Operation: "create_service", Message: "set item store cannot be nil"}
	}
	if verifyRefs {
		if db == nil || stores.Sets == nil || stores.Products == nil || stores.Ads == nil {
			return nil, &ServiceError{
				Service:   "set_item",
				Operation: "create_service",
				Message:   "reference checks need a database and the set, product and ad stores",
			}
		}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &setItemServiceImpl{
		db:         db,
		stores:     stores,
		verifyRefs: verifyRefs,
		logger:     logger.With(slog.String("component", "set_item_service")),
	}, nil
}

func (s *setItemServiceImpl) Create(ctx context.Context, si *domain.SetItem) error {
	if err := si.Validate(); err != nil {
		return err
	}

	if !s.verifyRefs {
		return wrapError("set_item", "create", "failed to create set item", s.stores.SetItems.Create(ctx, si))
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.checkReferences(ctx, tx, si); err != nil {
			return err
		}
		return s.stores.SetItems.WithTx(tx).Create(ctx, si)
	})
	return wrapError("set_item", "create", "failed to create set item", err)
}

func (s *setItemServiceImpl) Update(ctx context.Context, si *domain.SetItem) error {
	if err := si.Validate(); err != nil {
		return err
	}

	if !s.verifyRefs {
		return wrapError("set_item", "update", "failed to update set item", s.stores.SetItems.Update(ctx, si))
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.checkReferences(ctx, tx, si); err != nil {
			return err
		}
		return s.stores.SetItems.WithTx(tx).Update(ctx, si)
	})
	return wrapError("set_item", "update", "failed to update set item", err)
}

// checkReferences verifies that the set and, where the item type has a
// backing table, the item exist.
func (s *setItemServiceImpl) checkReferences(ctx context.Context, tx *sql.Tx, si *domain.SetItem) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.stores.Sets.WithTx(tx).GetByID(ctx, si.SetID); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("set item references missing set", slog.Int64("set_id", si.SetID))
			return domain.NewValidationError("set_id", "references a set that does not exist", domain.ErrInvalidID)
		}
		return fmt.Errorf("failed to look up set: %w", err)
	}

	var err error
	switch si.NormalizedItemType() {
	case domain.ItemTypeProduct:
		_, err = s.stores.Products.WithTx(tx).GetByID(ctx, si.ItemID)
	case domain.ItemTypeAd:
		_, err = s.stores.Ads.WithTx(tx).GetByID(ctx, si.ItemID)
	default:
		return nil
	}
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("set item references missing item",
				slog.String("item_type", si.ItemType),
				slog.Int64("item_id", si.ItemID))
			return domain.NewValidationError(
				"item_id",
				fmt.Sprintf("references a %s that does not exist", si.NormalizedItemType()),
				domain.ErrInvalidID,
			)
		}
		return fmt.Errorf("failed to look up %s: %w", si.NormalizedItemType(), err)
	}

	return nil
}
