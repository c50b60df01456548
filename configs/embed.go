// Package configs ships the JSON schemas used to validate world data files.
package configs

import "embed"

// Schemas holds schemas/*.schema.json, addressed as "schemas/<name>".
//
//go:embed schemas/*.json
var Schemas embed.FS
