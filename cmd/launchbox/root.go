package main

import (
	"context"
	"fmt"
	"os"

	"github.com/atinylittleshell/launchbox/internal/app"
	"github.com/atinylittleshell/launchbox/internal/config"
	"github.com/atinylittleshell/launchbox/internal/core"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	backend    string
	configPath string
	version    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "launchbox",
		Short: "launchbox - a minimal command launcher",
		Long: `launchbox - a minimal command launcher

Type a command line, cycle through completions of the last word with Tab
and Shift+Tab, and press Enter to run it through your shell.

Keys:
  Tab / Shift+Tab          cycle completions forward / backward
  Shift+Backspace, Ctrl+U  clear the line
  Ctrl+R                   rescan the search path
  Enter                    run the line
  Esc                      close without running`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.version {
				fmt.Fprintln(cmd.OutOrStdout(), BUILD_VERSION)
				return nil
			}
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.backend, "backend", "b", "",
		fmt.Sprintf("input backend: %s or %s (default from config, else %s)", config.BackendTUI, config.BackendLine, config.BackendTUI))
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (default ~/.launchbox/config.yaml)")
	cmd.Flags().BoolVar(&opts.version, "version", false, "display build version")

	return cmd
}

func run(ctx context.Context, opts *rootOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	configPath := opts.configPath
	if configPath == "" {
		configPath = core.ConfigFile()
	}

	cfg, err := app.LoadConfig(configPath, opts.backend)
	if err != nil {
		return err
	}

	logger, err := app.NewLogger(cfg, os.Getenv, BUILD_VERSION)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync() // Flush any buffered log entries

	logger.Info("-------- new launchbox session --------",
		zap.Any("args", os.Args),
		zap.String("backend", cfg.Backend),
	)

	a := app.New(ctx, cfg, logger, os.Getenv)
	if err := a.Run(ctx); err != nil {
		logger.Error("run failed", zap.Error(err))
		return err
	}
	return nil
}
