// Package migrations embeds the SQL schema consumed by golang-migrate.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
