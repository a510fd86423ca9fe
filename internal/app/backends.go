package app

import (
	"context"
	"fmt"

	"github.com/atinylittleshell/launchbox/internal/session"
	"github.com/atinylittleshell/launchbox/internal/ui/input"
	"github.com/atinylittleshell/launchbox/internal/ui/line"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap builds the popup key bindings with the configured overrides.
func keyMap(a *App) (*input.KeyMap, error) {
	km := input.DefaultKeyMap()
	if err := km.ApplyOverrides(a.Config.Keys); err != nil {
		return nil, fmt.Errorf("invalid key bindings: %w", err)
	}
	return km, nil
}

func popupConfig(ctx context.Context, a *App, km *input.KeyMap) input.Config {
	return input.Config{
		Session:    a.Session,
		Prompt:     a.Config.Prompt,
		KeyMap:     km,
		MaxVisible: a.Config.MaxVisible,
		Bell:       a.Notifier.Bell,
		Rescan: func(s *session.Session) {
			a.Rescan(ctx, s)
		},
		Validate: a.Launcher.Check,
		Logger:   a.Logger,
	}
}

func runPopup(ctx context.Context, a *App) (string, bool, error) {
	km, err := keyMap(a)
	if err != nil {
		return "", false, err
	}

	p := tea.NewProgram(input.New(popupConfig(ctx, a, km)), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("popup failed: %w", err)
	}

	result := final.(input.Model).Result()
	return result.Value, result.Type == input.ResultSubmit, nil
}

func runLine(ctx context.Context, a *App) (string, bool, error) {
	result, err := line.Run(line.Config{
		Session: a.Session,
		Prompt:  a.Config.Prompt,
		Bell:    a.Notifier.Bell,
		Rescan: func(s *session.Session) {
			a.Rescan(ctx, s)
		},
		Validate: a.Launcher.Check,
		Logger:   a.Logger,
	})
	if err != nil {
		return "", false, err
	}
	return result.Value, result.Submitted, nil
}
