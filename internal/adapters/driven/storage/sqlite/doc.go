// Package sqlite provides the SQLite-backed run history store.
//
// It uses modernc.org/sqlite, a pure Go SQLite implementation, so the
// binary cross-compiles without CGO.
//
// # Schema
//
// The schema is managed through versioned migrations in the migrations/
// directory. Applied versions are tracked in schema_migrations.
//
// # Data Location
//
// By default the database is stored at ~/.relnote/data/history.db.
package sqlite
