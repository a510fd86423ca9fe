// Package line is the plain terminal backend. It reads one command line with
// readline and drives the same completion session as the popup.
package line

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atinylittleshell/launchbox/internal/session"
	"github.com/atinylittleshell/launchbox/internal/styles"
	"github.com/chzyer/readline"
	"go.uber.org/zap"
)

// Config holds configuration for a line prompt.
type Config struct {
	// Session drives completion. Required.
	Session *session.Session

	// Prompt is the prompt string to display.
	Prompt string

	// Bell is called when a completion request has no match. Optional.
	Bell func()

	// Rescan rebuilds the session's command index. Optional.
	Rescan func(*session.Session)

	// Validate checks a line before it is submitted. A rejected line is
	// reported and the prompt is shown again. Optional.
	Validate func(string) error

	// Stdin and Stdout override the terminal. Optional.
	Stdin  io.ReadCloser
	Stdout io.Writer
	Stderr io.Writer

	Logger *zap.Logger
}

const hint = "tab: next · ctrl+p: previous · ctrl+u: clear · ctrl+r: rescan · ctrl+c: close"

// Result is the outcome of a line prompt.
type Result struct {
	// Submitted is false when the user cancelled.
	Submitted bool
	// Value is the trimmed command line.
	Value string
}

// Run shows the prompt until the user submits a non-blank line or cancels
// with Ctrl+C or Ctrl+D.
func Run(cfg Config) (Result, error) {
	if cfg.Session == nil {
		return Result{}, errors.New("line: session is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ed := newEditor(cfg.Session, cfg.Bell, cfg.Rescan, logger)
	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 styles.PROMPT(cfg.Prompt),
		HistoryLimit:           -1,
		DisableAutoSaveHistory: true,
		Listener:               ed,
		FuncFilterInputRune:    ed.filter,
		InterruptPrompt:        "^C",
		Stdin:                  cfg.Stdin,
		Stdout:                 cfg.Stdout,
		Stderr:                 cfg.Stderr,
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to initialize line editor: %w", err)
	}
	defer rl.Close()

	fmt.Fprintln(rl.Stdout(), styles.HINT(hint))

	for {
		input, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt), errors.Is(err, io.EOF):
			logger.Debug("line prompt cancelled")
			return Result{}, nil
		case err != nil:
			return Result{}, fmt.Errorf("failed to read line: %w", err)
		}

		text := strings.TrimSpace(input)
		if text == "" {
			continue
		}

		if cfg.Validate != nil {
			if err := cfg.Validate(text); err != nil {
				logger.Debug("line rejected", zap.String("line", text), zap.Error(err))
				fmt.Fprintln(rl.Stderr(), styles.ERROR(err.Error()))
				continue
			}
		}

		return Result{Submitted: true, Value: text}, nil
	}
}
