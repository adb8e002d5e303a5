package diagfmt

import (
	"path/filepath"

	"tjs/internal/source"
)

func displayName(f *source.File, mode PathMode) string {
	if f == nil || f.Name == "" {
		return "<input>"
	}
	if mode == PathModeBasename {
		return filepath.Base(f.Name)
	}
	return f.Name
}
