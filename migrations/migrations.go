// Package migrations holds the schema applied by the e2e harness.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
