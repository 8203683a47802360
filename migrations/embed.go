// Package migrations holds the embedded schema files, one directory per
// database driver.
package migrations

import "embed"

//go:embed sqlite/*.sql
var FS embed.FS
