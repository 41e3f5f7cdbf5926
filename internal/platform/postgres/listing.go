package postgres

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/phrazzld/catalog-api/internal/paging"
)

// buildListQuery renders a keyset pagination query over table.
//
// Rows are ordered by (orderByField, id) in the requested direction so that
// ties on the sort column have a deterministic order. With a cursor, only rows
// strictly after the cursor row in that order are returned; a cursor that names
// no row produces an empty page. The sort field must be one of sortable.
func buildListQuery(table, columns string, sortable []string, page paging.PageRequest) (string, []any, error) {
	field := page.OrderByField
	if field == "" {
		field = paging.DefaultOrderByField
	}
	if !paging.IsSortable(field, sortable) {
		return "", nil, paging.NewSortFieldError(sortable)
	}

	limit := page.Limit
	if limit <= 0 {
		limit = paging.DefaultLimit
	}

	dir, cmp := "ASC", ">"
	if page.OrderByDirection == paging.Desc {
		dir, cmp = "DESC", "<"
	}

	col := pgx.Identifier{field}.Sanitize()
	tbl := pgx.Identifier{table}.Sanitize()

	var b strings.Builder
	args := make([]any, 0, 2)

	fmt.Fprintf(&b, "SELECT %s FROM %s", columns, tbl)

	if page.Cursor != nil {
		args = append(args, *page.Cursor)
		// The cursor row is looked up even when ordering by id, so a cursor
		// that names no row compares as NULL and yields an empty page.
		if field == paging.DefaultOrderByField {
			fmt.Fprintf(&b, " WHERE id %s (SELECT id FROM %s WHERE id = $1)", cmp, tbl)
		} else {
			fmt.Fprintf(&b, " WHERE (%s, id) %s (SELECT %s, id FROM %s WHERE id = $1)", col, cmp, col, tbl)
		}
	}

	if field == paging.DefaultOrderByField {
		fmt.Fprintf(&b, " ORDER BY id %s", dir)
	} else {
		fmt.Fprintf(&b, " ORDER BY %s %s, id %s", col, dir, dir)
	}

	args = append(args, limit)
	fmt.Fprintf(&b, " LIMIT $%d", len(args))

	return b.String(), args, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
