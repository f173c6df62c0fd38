// Package migrations embeds the schema. Every migration is idempotent and is
// applied in file name order on start-up.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
