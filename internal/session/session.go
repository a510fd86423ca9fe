// Package session holds the per-run launcher state: the command index and
// the active completion cycle. Both input backends drive a Session, which
// keeps the completion behaviour independent of any UI.
package session

import (
	"context"

	"github.com/atinylittleshell/launchbox/internal/completion"
	"github.com/atinylittleshell/launchbox/internal/pathscan"
	"go.uber.org/zap"
)

// Scanner builds a command index from search path directories.
type Scanner interface {
	Scan(ctx context.Context, dirs []string) pathscan.Index
}

// Session owns the command index and the current completion state.
// It is not safe for concurrent use; callers drive it from a single event loop.
type Session struct {
	index  pathscan.Index
	state  *completion.State
	logger *zap.Logger
}

// New creates a Session over index. The logger is optional (can be nil).
func New(index pathscan.Index, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		index:  index,
		logger: logger,
	}
}

// Index returns the current command index.
func (s *Session) Index() pathscan.Index {
	return s.index
}

// State returns the active completion state, or nil if none.
func (s *Session) State() *completion.State {
	return s.state
}

// Complete performs one completion step on text. A new cycle begins when
// there is no active one or text is not what the active cycle last produced.
// It returns the new text and false when there is no candidate.
func (s *Session) Complete(text string, dir completion.Direction) (string, bool) {
	if !s.state.Valid(text) {
		s.state = completion.Begin(text, s.index)
		s.logger.Debug("completion started",
			zap.String("prefix", s.state.Prefix()),
			zap.Int("matches", s.state.Len()),
		)
	}

	result, ok := s.state.Advance(dir)
	if !ok {
		s.logger.Debug("no completion match", zap.String("prefix", s.state.Prefix()))
	}
	return result, ok
}

// Invalidate drops the active completion cycle.
func (s *Session) Invalidate() {
	s.state = nil
}

// Clear drops the completion cycle and returns the empty text the input
// should now hold.
func (s *Session) Clear() string {
	s.Invalidate()
	return ""
}

// Refresh rescans the search path and replaces the index. Any active
// completion cycle is dropped because its matches came from the old index.
func (s *Session) Refresh(ctx context.Context, scanner Scanner, dirs []string) {
	s.index = scanner.Scan(ctx, dirs)
	s.Invalidate()
	s.logger.Info("command index refreshed", zap.Int("commands", s.index.Len()))
}
