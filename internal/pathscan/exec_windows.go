//go:build windows

package pathscan

import (
	"os"
	"path/filepath"
	"strings"
)

const defaultPathExt = ".COM;.EXE;.BAT;.CMD"

// isExecutable reports whether path has one of the extensions in PATHEXT.
func isExecutable(path string, info os.FileInfo) bool {
	ext := strings.ToUpper(filepath.Ext(path))
	if ext == "" {
		return false
	}

	pathExt := os.Getenv("PATHEXT")
	if pathExt == "" {
		pathExt = defaultPathExt
	}

	for _, candidate := range filepath.SplitList(pathExt) {
		if strings.ToUpper(strings.TrimSpace(candidate)) == ext {
			return true
		}
	}
	return false
}
