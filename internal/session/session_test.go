package session

import (
	"context"
	"testing"

	"github.com/atinylittleshell/launchbox/internal/completion"
	"github.com/atinylittleshell/launchbox/internal/pathscan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScanner struct {
	names []string
	dirs  []string
}

func (f *fakeScanner) Scan(ctx context.Context, dirs []string) pathscan.Index {
	f.dirs = dirs
	return pathscan.NewIndex(f.names)
}

func newTestSession(names ...string) *Session {
	return New(pathscan.NewIndex(names), nil)
}

func TestSessionCompleteCycles(t *testing.T) {
	s := newTestSession("ls", "lsof", "lscpu")

	text := "ls"
	var seen []string
	for i := 0; i < 4; i++ {
		var ok bool
		text, ok = s.Complete(text, completion.Forward)
		require.True(t, ok)
		seen = append(seen, text)
	}

	assert.Equal(t, []string{"ls", "lscpu", "lsof", "ls"}, seen)
}

func TestSessionEditRestartsCycle(t *testing.T) {
	s := newTestSession("ls", "lsof", "lscpu", "lsblk")

	text, _ := s.Complete("ls", completion.Forward)
	text, _ = s.Complete(text, completion.Forward)
	require.Equal(t, "lsblk", text)

	// The user edits the line to "lso"; the next tab completes "lso", not the stale "ls".
	text, ok := s.Complete("lso", completion.Forward)
	require.True(t, ok)
	assert.Equal(t, "lsof", text)
	assert.Equal(t, "lso", s.State().Prefix())
}

func TestSessionNoMatchLeavesTextUnchanged(t *testing.T) {
	s := New(pathscan.Index{}, nil)

	text, ok := s.Complete("whatever", completion.Forward)
	assert.False(t, ok)
	assert.Equal(t, "whatever", text)

	text, ok = s.Complete("whatever", completion.Backward)
	assert.False(t, ok)
	assert.Equal(t, "whatever", text)
}

func TestSessionInvalidateAndClear(t *testing.T) {
	s := newTestSession("ls", "lsof")

	s.Complete("ls", completion.Forward)
	require.NotNil(t, s.State())

	s.Invalidate()
	assert.Nil(t, s.State())

	s.Complete("ls", completion.Forward)
	assert.Equal(t, "", s.Clear())
	assert.Nil(t, s.State())
}

func TestSessionInvalidateRestartsFromSameText(t *testing.T) {
	s := newTestSession("ls", "lsof")

	text, _ := s.Complete("ls", completion.Forward)
	require.Equal(t, "ls", text)
	text, _ = s.Complete(text, completion.Forward)
	require.Equal(t, "lsof", text)

	s.Invalidate()
	text, _ = s.Complete(text, completion.Forward)
	assert.Equal(t, "lsof", text, "a fresh cycle on \"lsof\" only matches itself")
}

func TestSessionRefresh(t *testing.T) {
	s := newTestSession("old")
	s.Complete("o", completion.Forward)

	scanner := &fakeScanner{names: []string{"new", "newer"}}
	s.Refresh(context.Background(), scanner, []string{"/bin"})

	assert.Equal(t, []string{"/bin"}, scanner.dirs)
	assert.Equal(t, []string{"new", "newer"}, s.Index().Names())
	assert.Nil(t, s.State())

	text, ok := s.Complete("n", completion.Backward)
	assert.True(t, ok)
	assert.Equal(t, "newer", text)
}
