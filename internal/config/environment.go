package config

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Getenv looks up an environment variable. os.Getenv satisfies it; tests pass
// a map-backed function.
type Getenv func(key string) string

// ResolveShell picks the shell for running submitted lines: the configured
// shell, then $SHELL, then the platform default.
func (c *Config) ResolveShell(getenv Getenv) string {
	if c.Shell != "" {
		return c.Shell
	}
	if shell := strings.TrimSpace(getenv("SHELL")); shell != "" {
		return shell
	}
	return DefaultShell()
}

// ResolveLogLevel returns the log level, letting LAUNCHBOX_LOG_LEVEL override
// the configured one. Unknown values fall back to info.
func (c *Config) ResolveLogLevel(getenv Getenv) zap.AtomicLevel {
	level := c.LogLevel
	if env := getenv("LAUNCHBOX_LOG_LEVEL"); env != "" {
		level = env
	}

	parsed, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return zap.NewAtomicLevelAt(parsed)
}
