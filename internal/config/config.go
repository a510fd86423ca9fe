// Package config provides configuration management for launchbox.
// It handles loading the optional YAML config file and resolving the
// environment-derived settings (shell, search path, log level).
package config

import (
	"fmt"
	"runtime"
	"strings"
)

// Backend names accepted by the backend setting and the --backend flag.
const (
	BackendTUI  = "tui"
	BackendLine = "line"
)

// Config holds all launcher configuration.
type Config struct {
	// Shell is the shell used to run submitted lines. Empty means $SHELL,
	// falling back to the platform default.
	Shell string `yaml:"shell,omitempty"`

	// Backend selects the input frontend (tui or line).
	Backend string `yaml:"backend,omitempty"`

	// Prompt is shown before the input text.
	Prompt string `yaml:"prompt,omitempty"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `yaml:"log_level,omitempty"`

	// Bell rings when a completion request has no match.
	Bell bool `yaml:"bell"`

	// CheckSyntax parses the line as POSIX shell before launching it.
	CheckSyntax bool `yaml:"check_syntax"`

	// MaxVisible is the number of completion rows shown in the popup.
	MaxVisible int `yaml:"max_visible,omitempty"`

	// Keys overrides key bindings, keyed by action name
	// (e.g. "complete": ["tab"]).
	Keys map[string][]string `yaml:"keys,omitempty"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Backend:    BackendTUI,
		Prompt:     "run: ",
		LogLevel:   "info",
		Bell:       true,
		MaxVisible: 5,
		Keys:       map[string][]string{},
	}
}

// Validate reports configuration values that cannot be used.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendTUI, BackendLine:
	default:
		return fmt.Errorf("unknown backend %q (want %q or %q)", c.Backend, BackendTUI, BackendLine)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}

	if c.MaxVisible < 1 {
		return fmt.Errorf("max_visible must be at least 1, got %d", c.MaxVisible)
	}

	return nil
}

// DefaultShell is used when neither the config nor $SHELL names a shell.
func DefaultShell() string {
	if runtime.GOOS == "windows" {
		return "cmd.exe"
	}
	return "/bin/sh"
}
