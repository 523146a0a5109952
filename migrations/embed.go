// Package migrations embeds the goose SQL migrations so the binary can
// migrate without shipping the files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
