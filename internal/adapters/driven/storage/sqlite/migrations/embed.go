// Package migrations embeds the SQL migrations for the run history database.
package migrations

import "embed"

// FS holds the migration files. Files are named NNN_name.up.sql and
// applied in version order.
//
//go:embed *.sql
var FS embed.FS
