package assets

import (
	"embed"
	"io/fs"
)

var (
	//go:embed all:levels
	levelFS embed.FS
)

// Levels returns the embedded level files. Paths inside start with
// "levels/".
func Levels() fs.FS {
	return levelFS
}
