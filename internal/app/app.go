// Package app wires configuration, logging, the command index, the input
// backends and the launcher together.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atinylittleshell/launchbox/internal/config"
	"github.com/atinylittleshell/launchbox/internal/launcher"
	"github.com/atinylittleshell/launchbox/internal/notify"
	"github.com/atinylittleshell/launchbox/internal/pathscan"
	"github.com/atinylittleshell/launchbox/internal/session"
	"github.com/atinylittleshell/launchbox/internal/styles"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// ErrNoTerminal is returned when stdin or stdout is not a terminal.
var ErrNoTerminal = errors.New("launchbox must be run in an interactive terminal")

// Launcher starts submitted command lines.
type Launcher interface {
	Check(line string) error
	Launch(ctx context.Context, line string) error
}

// Notifier gives feedback outside the input line.
type Notifier interface {
	Bell()
	LaunchFailed(line string, err error)
}

// Prompter shows one input backend and returns the submitted line.
// submitted is false when the user closed it without running anything.
type Prompter func(ctx context.Context, a *App) (line string, submitted bool, err error)

// App is one launcher run.
type App struct {
	Config   *config.Config
	Logger   *zap.Logger
	Session  *session.Session
	Launcher Launcher
	Notifier Notifier

	scanner session.Scanner
	dirs    []string
	stderr  io.Writer
}

// New scans the search path from getenv and builds an App ready to run.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger, getenv config.Getenv) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	dirs := pathscan.SplitSearchPath(getenv("PATH"), getenv)
	scanner := pathscan.NewScanner(logger)
	index := scanner.Scan(ctx, dirs)
	logger.Info("command index built",
		zap.Int("dirs", len(dirs)),
		zap.Int("commands", index.Len()),
	)

	shell := cfg.ResolveShell(getenv)
	logger.Debug("resolved shell", zap.String("shell", shell))

	return &App{
		Config:  cfg,
		Logger:  logger,
		Session: session.New(index, logger),
		Launcher: launcher.New(shell,
			launcher.WithLogger(logger),
			launcher.WithSyntaxCheck(cfg.CheckSyntax),
		),
		Notifier: notify.New(cfg.Bell, logger),
		scanner:  scanner,
		dirs:     dirs,
		stderr:   os.Stderr,
	}
}

// Rescan rebuilds the command index of s from the search path.
func (a *App) Rescan(ctx context.Context, s *session.Session) {
	s.Refresh(ctx, a.scanner, a.dirs)
}

// Run checks the terminal, shows the configured backend and launches the
// submitted line.
func (a *App) Run(ctx context.Context) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return ErrNoTerminal
	}

	prompt, err := a.prompter()
	if err != nil {
		return err
	}
	return a.run(ctx, prompt)
}

func (a *App) prompter() (Prompter, error) {
	switch a.Config.Backend {
	case config.BackendTUI:
		return runPopup, nil
	case config.BackendLine:
		return runLine, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", a.Config.Backend)
	}
}

func (a *App) run(ctx context.Context, prompt Prompter) error {
	line, submitted, err := prompt(ctx, a)
	if err != nil {
		return err
	}
	if !submitted {
		a.Logger.Info("closed without running a command")
		return nil
	}

	a.launch(ctx, line)
	return nil
}

// launch runs line and reports failures. The UI is already gone, so a
// failure is not an error of the run itself.
func (a *App) launch(ctx context.Context, line string) {
	err := a.Launcher.Launch(ctx, line)
	if err == nil {
		return
	}

	a.Logger.Error("launch failed", zap.String("line", line), zap.Error(err))
	a.Notifier.LaunchFailed(line, err)
	if a.Config.Backend == config.BackendLine {
		fmt.Fprintln(a.stderr, styles.ERROR(err.Error()))
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
