package paging_test

import (
	"net/url"
	"testing"

	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/paging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productColumns = []string{"id", "name", "price", "description", "created_at", "updated_at"}

func int64Ptr(v int64) *int64 { return &v }

func TestResolveDefaults(t *testing.T) {
	t.Parallel()

	r := paging.NewResolver(paging.DefaultLimit, paging.DefaultMaxLimit)

	page, err := r.Resolve(url.Values{}, productColumns)

	require.NoError(t, err)
	assert.Nil(t, page.Cursor)
	assert.Equal(t, 10, page.Limit)
	assert.Equal(t, "id", page.OrderByField)
	assert.Equal(t, paging.Asc, page.OrderByDirection)
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  paging.PageRequest
	}{
		{
			name:  "all parameters",
			query: "cursor=42&limit=12&orderByField=name&orderByDirection=desc",
			want:  paging.PageRequest{Cursor: int64Ptr(42), Limit: 12, OrderByField: "name", OrderByDirection: paging.Desc},
		},
		{
			name:  "empty values fall back to defaults",
			query: "cursor=&limit=&orderByField=&orderByDirection=",
			want:  paging.PageRequest{Limit: 10, OrderByField: "id", OrderByDirection: paging.Asc},
		},
		{
			name:  "zero limit clamps to one",
			query: "limit=0",
			want:  paging.PageRequest{Limit: 1, OrderByField: "id", OrderByDirection: paging.Asc},
		},
		{
			name:  "negative limit clamps to one",
			query: "limit=-5",
			want:  paging.PageRequest{Limit: 1, OrderByField: "id", OrderByDirection: paging.Asc},
		},
		{
			name:  "non-numeric limit clamps to one",
			query: "limit=abc",
			want:  paging.PageRequest{Limit: 1, OrderByField: "id", OrderByDirection: paging.Asc},
		},
		{
			name:  "fractional limit truncates",
			query: "limit=12.7",
			want:  paging.PageRequest{Limit: 12, OrderByField: "id", OrderByDirection: paging.Asc},
		},
		{
			name:  "limit above max clamps to max",
			query: "limit=5000",
			want:  paging.PageRequest{Limit: 100, OrderByField: "id", OrderByDirection: paging.Asc},
		},
		{
			name:  "overflowing limit clamps to max",
			query: "limit=99999999999999999999999",
			want:  paging.PageRequest{Limit: 100, OrderByField: "id", OrderByDirection: paging.Asc},
		},
		{
			name:  "unknown direction falls back to asc",
			query: "orderByDirection=sideways",
			want:  paging.PageRequest{Limit: 10, OrderByField: "id", OrderByDirection: paging.Asc},
		},
		{
			name:  "desc direction",
			query: "orderByDirection=desc&orderByField=price",
			want:  paging.PageRequest{Limit: 10, OrderByField: "price", OrderByDirection: paging.Desc},
		},
		{
			name:  "uppercase direction falls back to asc",
			query: "orderByDirection=DESC&orderByField=price",
			want:  paging.PageRequest{Limit: 10, OrderByField: "price", OrderByDirection: paging.Asc},
		},
		{
			name:  "mixed case direction falls back to asc",
			query: "orderByDirection=Desc",
			want:  paging.PageRequest{Limit: 10, OrderByField: "id", OrderByDirection: paging.Asc},
		},
		{
			name:  "cursor zero is allowed",
			query: "cursor=0",
			want:  paging.PageRequest{Cursor: int64Ptr(0), Limit: 10, OrderByField: "id", OrderByDirection: paging.Asc},
		},
	}

	r := paging.NewResolver(paging.DefaultLimit, paging.DefaultMaxLimit)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got, err := r.Resolve(q, productColumns)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		field string
	}{
		{name: "non-numeric cursor", query: "cursor=abc", field: paging.ParamCursor},
		{name: "negative cursor", query: "cursor=-1", field: paging.ParamCursor},
		{name: "fractional cursor", query: "cursor=1.5", field: paging.ParamCursor},
		{name: "cursor beyond int64", query: "cursor=9999999999999999999", field: paging.ParamCursor},
		{name: "unknown sort column", query: "orderByField=password", field: paging.ParamOrderByField},
		{name: "sql in sort column", query: "orderByField=id%20desc%2C%20name", field: paging.ParamOrderByField},
	}

	r := paging.NewResolver(paging.DefaultLimit, paging.DefaultMaxLimit)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			_, err = r.Resolve(q, productColumns)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			if tt.field == paging.ParamOrderByField {
				assert.Equal(t, paging.NewSortFieldError(productColumns).Error(), err.Error())
			}

			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestNewResolverNormalizesBounds(t *testing.T) {
	t.Parallel()

	r := paging.NewResolver(50, 20)
	page, err := r.Resolve(url.Values{}, productColumns)
	require.NoError(t, err)
	assert.Equal(t, 20, page.Limit, "default limit must not exceed max limit")

	r = paging.NewResolver(0, 0)
	page, err = r.Resolve(url.Values{"limit": {"1000"}}, productColumns)
	require.NoError(t, err)
	assert.Equal(t, paging.DefaultMaxLimit, page.Limit)
}

func TestIsSortable(t *testing.T) {
	t.Parallel()

	assert.True(t, paging.IsSortable("price", productColumns))
	assert.False(t, paging.IsSortable("title", productColumns))
}
