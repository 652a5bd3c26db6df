package assets

import (
	"embed"
	"io/fs"
)

//go:embed all:levels
var levelFS embed.FS

// LevelFS exposes the embedded level files (TMX lanes) for parsing.
func LevelFS() fs.FS {
	return levelFS
}
