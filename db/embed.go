// Package db embeds the SQL migration files so production builds can
// run migrations without shipping the db/migrations directory.
package db

import "embed"

//go:embed migrations
var Migrations embed.FS
