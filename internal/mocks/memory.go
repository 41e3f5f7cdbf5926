package mocks

import (
	"sort"
	"sync"
	"time"

	"github.com/phrazzld/catalog-api/internal/paging"
)

// table is the in-memory storage behind the default mock behavior.
// Listing ignores the sort field and always orders by id.
type table[T any] struct {
	mu     sync.Mutex
	rows   map[int64]T
	nextID int64
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int64]T)}
}

func (t *table[T]) insert(build func(id int64, now time.Time) T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nextID++
	t.rows[t.nextID] = build(t.nextID, time.Now().UTC())
}

func (t *table[T]) get(id int64) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) replace(id int64, row T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	t.rows[id] = row
	return true
}

func (t *table[T]) remove(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

func (t *table[T]) page(page paging.PageRequest) []T {
	t.mu.Lock()
	defer t.mu.Unlock()

	ids := make([]int64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if page.OrderByDirection == paging.Desc {
		sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	}

	out := make([]T, 0)
	if page.Cursor != nil {
		if _, ok := t.rows[*page.Cursor]; !ok {
			return out
		}
	}
	for _, id := range ids {
		if page.Cursor != nil {
			if page.OrderByDirection == paging.Desc && id >= *page.Cursor {
				continue
			}
			if page.OrderByDirection != paging.Desc && id <= *page.Cursor {
				continue
			}
		}
		if page.Limit > 0 && len(out) == page.Limit {
			break
		}
		out = append(out, t.rows[id])
	}
	return out
}
