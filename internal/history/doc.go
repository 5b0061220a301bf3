// Package history persists per-item drain outcomes in a SQLite ledger.
//
// The ledger is informational: the pipeline never reads it to decide what to
// process (idempotency is keyed on output artifact existence), so deleting
// the database is always safe. Schema changes bump the version in schema.go.
package history
