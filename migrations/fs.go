// Package migrations embeds the SQL schema files so the server binary can
// run standalone.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
