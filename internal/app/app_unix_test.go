//go:build !windows

package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/atinylittleshell/launchbox/internal/completion"
	"github.com/atinylittleshell/launchbox/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeExecutable(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"), 0755))
}

func TestNewScansSearchPath(t *testing.T) {
	home := t.TempDir()
	bin := filepath.Join(home, "bin")
	require.NoError(t, os.Mkdir(bin, 0755))
	writeExecutable(t, bin, "lsof")
	writeExecutable(t, bin, "ls")

	env := map[string]string{
		"HOME":  home,
		"PATH":  "~/bin:" + filepath.Join(home, "missing"),
		"SHELL": "/bin/zsh",
	}
	a := New(context.Background(), config.DefaultConfig(), nil, func(k string) string { return env[k] })

	assert.Equal(t, []string{"ls", "lsof"}, a.Session.Index().Names())

	text, ok := a.Session.Complete("ls", completion.Backward)
	assert.True(t, ok)
	assert.Equal(t, "lsof", text)
}

func TestRescanPicksUpNewCommands(t *testing.T) {
	bin := t.TempDir()
	writeExecutable(t, bin, "old")

	env := map[string]string{"PATH": bin}
	a := New(context.Background(), config.DefaultConfig(), nil, func(k string) string { return env[k] })
	require.Equal(t, 1, a.Session.Index().Len())

	writeExecutable(t, bin, "new")
	a.Rescan(context.Background(), a.Session)
	assert.Equal(t, []string{"new", "old"}, a.Session.Index().Names())
}
