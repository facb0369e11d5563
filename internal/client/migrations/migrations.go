// Package migrations embeds the client's local schema migrations applied
// with goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
