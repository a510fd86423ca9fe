// Package launcher runs a submitted command line through the user's shell
// without waiting for it.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"mvdan.cc/sh/v3/syntax"
)

// ErrEmptyLine is returned when asked to launch a blank line.
var ErrEmptyLine = errors.New("empty command line")

// Launcher spawns `<shell> -c <line>` detached from the launcher.
type Launcher struct {
	shell       string
	checkSyntax bool
	logger      *zap.Logger

	// start is swapped out in tests.
	start func(*exec.Cmd) error
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Launcher) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithSyntaxCheck makes Launch parse the line as a POSIX shell program
// before spawning it.
func WithSyntaxCheck(enabled bool) Option {
	return func(l *Launcher) {
		l.checkSyntax = enabled
	}
}

// New creates a Launcher that runs lines through shell.
func New(shell string, opts ...Option) *Launcher {
	l := &Launcher{
		shell:  shell,
		logger: zap.NewNop(),
		start:  startDetached,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Shell returns the shell program lines are run with.
func (l *Launcher) Shell() string {
	return l.shell
}

// Check reports whether line parses as a shell program. It always succeeds
// when syntax checking is disabled.
func (l *Launcher) Check(line string) error {
	if !l.checkSyntax {
		return nil
	}
	if _, err := syntax.NewParser().Parse(strings.NewReader(line), ""); err != nil {
		return fmt.Errorf("failed to parse command: %w", err)
	}
	return nil
}

// Launch starts line in the shell and returns once the process has been
// started. The child inherits the environment and standard streams and is
// never waited on.
func (l *Launcher) Launch(ctx context.Context, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(line) == "" {
		return ErrEmptyLine
	}
	if err := l.Check(line); err != nil {
		return err
	}

	cmd := l.Command(line)
	if err := l.start(cmd); err != nil {
		l.logger.Error("failed to start command",
			zap.String("shell", l.shell),
			zap.String("line", line),
			zap.Error(err),
		)
		return fmt.Errorf("failed to start %s: %w", l.shell, err)
	}

	l.logger.Info("command launched",
		zap.String("shell", l.shell),
		zap.String("line", line),
	)
	return nil
}

// Command builds the command that runs line.
func (l *Launcher) Command(line string) *exec.Cmd {
	cmd := exec.Command(l.shell, commandFlag(l.shell), line)
	cmd.Env = os.Environ()
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.SysProcAttr = detachedAttr()
	return cmd
}

// commandFlag returns the flag that makes shell run its next argument.
func commandFlag(shell string) string {
	base := strings.ToLower(filepath.Base(shell))
	if base == "cmd.exe" || base == "cmd" {
		return "/C"
	}
	return "-c"
}

// startDetached starts cmd and releases it so the launcher can exit
// without reaping it.
func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
