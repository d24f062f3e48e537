package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pablasso/pairwise/internal/config"
	"github.com/pablasso/pairwise/internal/logging"
)

// loadSettings resolves the config for cmd: file and environment first,
// then any flag the user set explicitly.
func loadSettings(cmd *cobra.Command, flags *globalFlags) (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}

	pf := cmd.Flags()
	if pf.Changed("generation-dir") {
		cfg.GenerationDir = flags.generationDir
	}
	if pf.Changed("output-dir") {
		cfg.OutputDir = flags.outputDir
	}
	if pf.Changed("seed") {
		cfg.Seed = flags.seed
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, flags.verbose)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logger, nil
}
