package core

import (
	"io"
	"log/slog"
)

// StageConfig defines settings shared by streaming pipeline stages.
type StageConfig struct {
	// Name identifies the stage instance in log records.
	Name string

	// Logger receives per-frame debug records. Never nil after
	// ApplyStageOptions.
	Logger *slog.Logger
}

// StageOption mutates a StageConfig.
type StageOption func(*StageConfig)

// DefaultStageConfig returns a config with a discarding logger.
func DefaultStageConfig() StageConfig {
	return StageConfig{
		Name:   "stage",
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithName sets the stage name used in log records.
func WithName(name string) StageOption {
	return func(cfg *StageConfig) {
		if name != "" {
			cfg.Name = name
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) StageOption {
	return func(cfg *StageConfig) {
		if logger != nil {
			cfg.Logger = logger
		}
	}
}

// ApplyStageOptions applies zero or more options to the default config.
func ApplyStageOptions(opts ...StageOption) StageConfig {
	cfg := DefaultStageConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
