// Package mocks provides centralized mock implementations for testing.
//
// Every mock has a function field per interface method. When the field is
// set it is called; otherwise the mock falls back to a small in-memory
// implementation, so handler tests can exercise a full create-read-update-delete
// cycle without configuring anything.
//
//	import "github.com/phrazzld/catalog-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    products := mocks.NewMockProductStore()
//	    products.GetByIDFn = func(ctx context.Context, id int64) (*domain.Product, error) {
//	        return nil, store.ErrProductNotFound
//	    }
//	    // Use the mock in your test...
//	}
package mocks
