// Package gamedata provides embedded unit class and team data and
// utilities for loading it.
package gamedata

import "embed"

// dataFS embeds the class and team definitions at build time.
//
//go:embed classes.json teams.json
var dataFS embed.FS
