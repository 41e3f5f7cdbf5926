// Package testdb provides helpers for integration tests that need a real
// PostgreSQL database.
//
// Tests get a migrated connection from GetTestDBWithT, which skips the test
// when DATABASE_URL is not set, and run their work inside WithTx. The
// transaction is rolled back when the function returns, so tests can run in
// parallel against the same schema without cleaning up after themselves.
//
//	func TestProductStore(t *testing.T) {
//	    t.Parallel()
//	    db := testdb.GetTestDBWithT(t)
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        products := postgres.NewPostgresProductStore(tx, nil)
//	        // ...
//	    })
//	}
package testdb
