// Package postgres provides the PostgreSQL implementations of the catalog
// store interfaces defined in internal/store, together with the embedded
// goose migrations that create the schema they run against.
//
// All stores accept a store.DBTX so they can run on a *sql.DB or inside a
// transaction via WithTx. Database errors are translated into store errors by
// MapError; List queries are built by buildListQuery, which implements keyset
// pagination over (sort column, id).
package postgres
