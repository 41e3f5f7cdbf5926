package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/paging"
	"github.com/phrazzld/catalog-api/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func strPtr(s string) *string { return &s }

func TestStoreConstructors(t *testing.T) {
	db, _ := newMock(t)

	tests := []struct {
		name string
		ctor func(store.DBTX) any
	}{
		{"product", func(d store.DBTX) any { return NewPostgresProductStore(d, nil) }},
		{"ad", func(d store.DBTX) any { return NewPostgresAdStore(d, nil) }},
		{"set", func(d store.DBTX) any { return NewPostgresSetStore(d, nil) }},
		{"set_item", func(d store.DBTX) any { return NewPostgresSetItemStore(d, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.ctor(db))
			assert.Panics(t, func() { tt.ctor(nil) })
		})
	}
}

func TestProductStoreCreate(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostgresProductStore(db, nil)

	mock.ExpectQuery(`INSERT INTO products`).
		WithArgs("Lamp", decimal.RequireFromString("19.99"), "A desk lamp").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(1), fixedTime, fixedTime))

	p := &domain.Product{Name: "Lamp", Price: decimal.RequireFromString("19.99"), Description: "A desk lamp"}
	err := s.Create(context.Background(), p)

	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, fixedTime, p.CreatedAt)
	assert.Equal(t, fixedTime, p.UpdatedAt)
}

func TestProductStoreCreateValidation(t *testing.T) {
	db, _ := newMock(t)
	s := NewPostgresProductStore(db, nil)

	err := s.Create(context.Background(), &domain.Product{Price: decimal.NewFromInt(1), Description: "x"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProductStoreGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresProductStore(db, nil)

		mock.ExpectQuery(`SELECT id, name, price, description, created_at, updated_at FROM products WHERE id = \$1`).
			WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "description", "created_at", "updated_at"}).
				AddRow(int64(4), "Chair", "49.50", "Oak chair", fixedTime, fixedTime))

		p, err := s.GetByID(context.Background(), 4)

		require.NoError(t, err)
		assert.Equal(t, "Chair", p.Name)
		assert.True(t, decimal.RequireFromString("49.5").Equal(p.Price))
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresProductStore(db, nil)

		mock.ExpectQuery(`FROM products WHERE id`).WithArgs(int64(99)).WillReturnError(sql.ErrNoRows)

		p, err := s.GetByID(context.Background(), 99)

		assert.Nil(t, p)
		assert.ErrorIs(t, err, store.ErrProductNotFound)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("database error", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresProductStore(db, nil)

		mock.ExpectQuery(`FROM products WHERE id`).WithArgs(int64(1)).WillReturnError(errors.New("connection refused"))

		_, err := s.GetByID(context.Background(), 1)

		require.Error(t, err)
		assert.False(t, store.IsNotFoundError(err))
	})
}

func TestProductStoreUpdate(t *testing.T) {
	t.Run("updates and refreshes timestamps", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresProductStore(db, nil)
		later := fixedTime.Add(time.Hour)

		mock.ExpectQuery(`UPDATE products`).
			WithArgs("Lamp", decimal.RequireFromString("25"), "Brighter", int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(fixedTime, later))

		p := &domain.Product{ID: 2, Name: "Lamp", Price: decimal.RequireFromString("25"), Description: "Brighter"}
		require.NoError(t, s.Update(context.Background(), p))
		assert.Equal(t, later, p.UpdatedAt)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresProductStore(db, nil)

		mock.ExpectQuery(`UPDATE products`).WillReturnError(sql.ErrNoRows)

		p := &domain.Product{ID: 2, Name: "Lamp", Price: decimal.NewFromInt(1), Description: "d"}
		assert.ErrorIs(t, s.Update(context.Background(), p), store.ErrProductNotFound)
	})
}

func TestProductStoreDelete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresProductStore(db, nil)

		mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, s.Delete(context.Background(), 3))
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresProductStore(db, nil)

		mock.ExpectExec(`DELETE FROM products`).WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, s.Delete(context.Background(), 3), store.ErrProductNotFound)
	})
}

func TestProductStoreList(t *testing.T) {
	t.Run("returns rows in page order", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresProductStore(db, nil)

		mock.ExpectQuery(`SELECT .+ FROM "products" WHERE \("name", id\) > \(SELECT "name", id FROM "products" WHERE id = \$1\) ORDER BY "name" ASC, id ASC LIMIT \$2`).
			WithArgs(int64(5), 2).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "description", "created_at", "updated_at"}).
				AddRow(int64(6), "B", "1", "b", fixedTime, fixedTime).
				AddRow(int64(2), "C", "2", "c", fixedTime, fixedTime))

		cur := int64(5)
		products, err := s.List(context.Background(), paging.PageRequest{
			Cursor: &cur, Limit: 2, OrderByField: "name", OrderByDirection: paging.Asc,
		})

		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, int64(6), products[0].ID)
		assert.Equal(t, int64(2), products[1].ID)
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresProductStore(db, nil)

		mock.ExpectQuery(`FROM "products"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "description", "created_at", "updated_at"}))

		products, err := s.List(context.Background(), paging.PageRequest{Limit: 10, OrderByField: "id"})

		require.NoError(t, err)
		assert.NotNil(t, products)
		assert.Empty(t, products)
	})

	t.Run("unknown sort field never reaches the database", func(t *testing.T) {
		db, _ := newMock(t)
		s := NewPostgresProductStore(db, nil)

		_, err := s.List(context.Background(), paging.PageRequest{Limit: 10, OrderByField: "title"})

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("query error is a store error", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresProductStore(db, nil)

		mock.ExpectQuery(`FROM "products"`).WillReturnError(errors.New("boom"))

		_, err := s.List(context.Background(), paging.PageRequest{Limit: 10, OrderByField: "id"})

		var storeErr *store.StoreError
		require.ErrorAs(t, err, &storeErr)
		assert.Equal(t, "list", storeErr.Operation)
	})
}

func TestAdStoreCreate(t *testing.T) {
	t.Run("nil image url is stored as NULL", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresAdStore(db, nil)

		mock.ExpectQuery(`INSERT INTO ads`).
			WithArgs(int64(1), "Sale", "Half off", nil).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(10), fixedTime, fixedTime))

		a := &domain.Ad{ProductID: 1, Title: "Sale", Content: "Half off"}
		require.NoError(t, s.Create(context.Background(), a))
		assert.Equal(t, int64(10), a.ID)
	})

	t.Run("image url is stored", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresAdStore(db, nil)

		mock.ExpectQuery(`INSERT INTO ads`).
			WithArgs(int64(1), "Sale", "Half off", "https://img.example.com/a.png").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(11), fixedTime, fixedTime))

		a := &domain.Ad{ProductID: 1, Title: "Sale", Content: "Half off", ImageURL: strPtr("https://img.example.com/a.png")}
		require.NoError(t, s.Create(context.Background(), a))
	})

	t.Run("missing product is an invalid entity", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresAdStore(db, nil)

		mock.ExpectQuery(`INSERT INTO ads`).
			WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "ads_product_id_fkey"})

		err := s.Create(context.Background(), &domain.Ad{ProductID: 999, Title: "t", Content: "c"})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestAdStoreGetByIDNullImage(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostgresAdStore(db, nil)

	mock.ExpectQuery(`FROM ads WHERE id`).WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "title", "content", "image_url", "created_at", "updated_at"}).
			AddRow(int64(1), int64(2), "t", "c", nil, fixedTime, fixedTime))

	a, err := s.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Nil(t, a.ImageURL)
	assert.Equal(t, int64(2), a.ProductID)
}

func TestAdStoreDeleteNotFound(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostgresAdStore(db, nil)

	mock.ExpectExec(`DELETE FROM ads`).WithArgs(int64(8)).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, s.Delete(context.Background(), 8), store.ErrAdNotFound)
}

func TestSetStoreCRUD(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostgresSetStore(db, nil)
	ctx := context.Background()

	mock.ExpectQuery(`INSERT INTO sets`).WithArgs("Summer", "Summer picks").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(1), fixedTime, fixedTime))
	mock.ExpectQuery(`UPDATE sets`).WithArgs("Winter", "Winter picks", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(fixedTime, fixedTime))
	mock.ExpectQuery(`FROM sets WHERE id`).WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "created_at", "updated_at"}).
			AddRow(int64(1), "Winter", "Winter picks", fixedTime, fixedTime))
	mock.ExpectExec(`DELETE FROM sets`).WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`FROM sets WHERE id`).WithArgs(int64(1)).WillReturnError(sql.ErrNoRows)

	set := &domain.Set{Name: "Summer", Description: "Summer picks"}
	require.NoError(t, s.Create(ctx, set))

	set.Name, set.Description = "Winter", "Winter picks"
	require.NoError(t, s.Update(ctx, set))

	got, err := s.GetByID(ctx, set.ID)
	require.NoError(t, err)
	assert.Equal(t, "Winter", got.Name)

	require.NoError(t, s.Delete(ctx, set.ID))

	_, err = s.GetByID(ctx, set.ID)
	assert.ErrorIs(t, err, store.ErrSetNotFound)
}

func TestSetItemStore(t *testing.T) {
	t.Run("create with missing set is an invalid entity", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresSetItemStore(db, nil)

		mock.ExpectQuery(`INSERT INTO set_items`).WithArgs(int64(42), "product", int64(1)).
			WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "set_items_set_id_fkey"})

		err := s.Create(context.Background(), &domain.SetItem{SetID: 42, ItemType: "product", ItemID: 1})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})

	t.Run("list by item_id descending", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresSetItemStore(db, nil)

		mock.ExpectQuery(`FROM "set_items" ORDER BY "item_id" DESC, id DESC LIMIT \$1`).WithArgs(3).
			WillReturnRows(sqlmock.NewRows([]string{"id", "set_id", "item_type", "item_id", "created_at", "updated_at"}).
				AddRow(int64(1), int64(1), "ad", int64(9), fixedTime, fixedTime).
				AddRow(int64(2), int64(1), "product", int64(4), fixedTime, fixedTime))

		items, err := s.List(context.Background(), paging.PageRequest{Limit: 3, OrderByField: "item_id", OrderByDirection: paging.Desc})

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, int64(9), items[0].ItemID)
	})

	t.Run("update not found", func(t *testing.T) {
		db, mock := newMock(t)
		s := NewPostgresSetItemStore(db, nil)

		mock.ExpectQuery(`UPDATE set_items`).WillReturnError(sql.ErrNoRows)

		err := s.Update(context.Background(), &domain.SetItem{ID: 5, SetID: 1, ItemType: "ad", ItemID: 1})
		assert.ErrorIs(t, err, store.ErrSetItemNotFound)
	})
}

func TestWithTxUsesTransaction(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM set_items`).WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	s := NewPostgresSetItemStore(db, nil).WithTx(tx)
	require.NoError(t, s.Delete(context.Background(), 1))
	require.NoError(t, tx.Commit())
}
