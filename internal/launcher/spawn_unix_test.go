//go:build !windows

package launcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunchStartsDetachedProcess(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh not available")
	}

	marker := filepath.Join(t.TempDir(), "ran")
	l := New("/bin/sh")
	require.NoError(t, l.Launch(context.Background(), "touch "+marker))

	assert.Eventually(t, func() bool {
		_, err := os.Stat(marker)
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)
}

func TestDetachedAttrStartsNewSession(t *testing.T) {
	assert.True(t, detachedAttr().Setsid)
}
