package app

import (
	"github.com/atinylittleshell/launchbox/internal/config"
	"github.com/atinylittleshell/launchbox/internal/core"
	"go.uber.org/zap"
)

// NewLogger builds the file logger. Logs never go to the terminal, which
// belongs to the UI; use `tail -f ~/.launchbox/launchbox.log` to follow them.
func NewLogger(cfg *config.Config, getenv config.Getenv, version string) (*zap.Logger, error) {
	logLevel := cfg.ResolveLogLevel(getenv)
	if version == "dev" {
		logLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = logLevel
	loggerConfig.OutputPaths = []string{
		core.LogFile(),
	}
	loggerConfig.ErrorOutputPaths = []string{
		core.LogFile(),
	}

	return loggerConfig.Build()
}

// LoadConfig reads the config file at path and applies the backend flag,
// which wins over the file when non-empty.
func LoadConfig(path, backend string) (*config.Config, error) {
	cfg, err := config.NewLoader(nil).LoadFromFile(path)
	if err != nil {
		return nil, err
	}

	if backend != "" {
		cfg.Backend = backend
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
