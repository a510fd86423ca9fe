// Package pathscan enumerates the executables visible on the shell's search
// path and holds them in a sorted, deduplicated Index.
package pathscan

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Scanner lists executables in a sequence of directories.
type Scanner struct {
	logger *zap.Logger

	// readDir and stat are variables so tests can simulate unreadable
	// directories and broken entries.
	readDir func(name string) ([]os.DirEntry, error)
	stat    func(name string) (os.FileInfo, error)
}

// NewScanner creates a Scanner. The logger is optional (can be nil).
func NewScanner(logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{
		logger:  logger,
		readDir: os.ReadDir,
		stat:    os.Stat,
	}
}

// Scan is a convenience wrapper around a Scanner without logging.
func Scan(dirs []string) Index {
	return NewScanner(nil).Scan(context.Background(), dirs)
}

// Scan lists every directory in order and returns the names of the
// executable, non-directory entries. Missing or unreadable directories are
// skipped. If ctx is cancelled the commands found so far are returned.
func (s *Scanner) Scan(ctx context.Context, dirs []string) Index {
	var names []string

	for _, dir := range dirs {
		if ctx.Err() != nil {
			s.logger.Debug("scan cancelled", zap.Error(ctx.Err()))
			break
		}

		entries, err := s.readDir(dir)
		if err != nil {
			s.logger.Debug("skipping search path directory", zap.String("dir", dir), zap.Error(err))
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			path := filepath.Join(dir, entry.Name())

			// Stat rather than entry.Info so symlinks resolve to their target.
			info, err := s.stat(path)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}

			if isExecutable(path, info) {
				names = append(names, entry.Name())
			}
		}
	}

	index := NewIndex(names)
	s.logger.Debug("scanned search path",
		zap.Int("dirs", len(dirs)),
		zap.Int("commands", index.Len()),
	)
	return index
}
