// Package testdb opens a migrated PostgreSQL database for integration tests
// and runs each test inside a transaction that is always rolled back.
//
// Tests that use it skip themselves unless DATABASE_URL (or NANI_TEST_DB_URL)
// is set:
//
//	db := testdb.GetTestDBWithT(t)
//	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	    books := postgres.NewPostgresBookStore(tx, nil)
//	    ...
//	})
package testdb
