// Package migrations embeds the versioned SQL schema migrations shared by
// the SQLite and PostgreSQL stores.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
