package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/catalog-api/internal/api"
	"github.com/phrazzld/catalog-api/internal/api/middleware"
	"github.com/phrazzld/catalog-api/internal/mocks"
	"github.com/phrazzld/catalog-api/internal/paging"
	"github.com/stretchr/testify/require"
)

// testEnv bundles the router under test with the mocks behind it.
type testEnv struct {
	router   http.Handler
	products *mocks.MockProductStore
	ads      *mocks.MockAdStore
	sets     *mocks.MockSetStore
	items    *mocks.MockSetItemStore
	itemSvc  *mocks.MockSetItemService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	pages := paging.NewResolver(paging.DefaultLimit, paging.DefaultMaxLimit)

	env := &testEnv{
		products: mocks.NewMockProductStore(),
		ads:      mocks.NewMockAdStore(),
		sets:     mocks.NewMockSetStore(),
		items:    mocks.NewMockSetItemStore(),
	}
	env.itemSvc = mocks.NewMockSetItemService(env.items)

	handlers := &api.Handlers{
		Products: api.NewProductHandler(env.products, pages, log),
		Ads:      api.NewAdHandler(env.ads, pages, log),
		Sets:     api.NewSetHandler(env.sets, pages, log),
		SetItems: api.NewSetItemHandler(env.items, env.itemSvc, pages, log),
	}

	r := chi.NewRouter()
	r.Use(middleware.TraceMiddleware(log))
	r.Route("/api/v1", handlers.Register)
	env.router = r
	return env
}

// do sends a request with an optional JSON body and returns the recorder.
func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals the recorder body into a value of type T.
func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

type errorBody struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id"`
}

// mustField returns the raw JSON of a top-level field of the response body.
func mustField(t *testing.T, rec *httptest.ResponseRecorder, name string) json.RawMessage {
	t.Helper()
	fields := decode[map[string]json.RawMessage](t, rec)
	raw, ok := fields[name]
	require.True(t, ok, "field %q missing from %s", name, rec.Body.String())
	return raw
}
