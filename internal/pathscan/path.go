package pathscan

import (
	"os"
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/shell"
)

// SplitSearchPath splits a PATH-style value into directories. Empty elements
// and repeated directories are dropped, keeping the first occurrence. Leading
// "~" and $VAR references are expanded using getenv.
func SplitSearchPath(value string, getenv func(string) string) []string {
	if getenv == nil {
		getenv = os.Getenv
	}

	seen := make(map[string]bool)
	var dirs []string
	for _, entry := range filepath.SplitList(value) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		dir := expandEntry(entry, getenv)
		if dir == "" || seen[dir] {
			continue
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}

	return dirs
}

// expandEntry expands a single search path element. Entries that fail to
// expand are returned unchanged.
func expandEntry(entry string, getenv func(string) string) string {
	if entry == "~" || strings.HasPrefix(entry, "~/") {
		if home := getenv("HOME"); home != "" {
			entry = home + entry[1:]
		}
	}

	if !strings.Contains(entry, "$") {
		return entry
	}

	expanded, err := shell.Expand(entry, getenv)
	if err != nil {
		return entry
	}
	return expanded
}
