package migrations

import "embed"

// FS contains embedded SQLite migrations for wiki storage.
//
//go:embed *.sql
var FS embed.FS
