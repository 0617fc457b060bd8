package db

import "embed"

// MigrationFS holds the SQL migrations applied by internal/db/migrate and the integration tests.
//
//go:embed migrations/*.sql
var MigrationFS embed.FS
