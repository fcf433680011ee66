package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/pecheck/internal/config"
	"github.com/vvka-141/pecheck/pkg/pecheck"
)

// loadEffectiveConfig loads .env, the config file and environment overrides.
// The implicit ./pecheck.yaml is optional; a --config path that does not
// exist is an error.
func loadEffectiveConfig(configPath string) (*config.Config, error) {
	_ = godotenv.Load()

	explicit := configPath != ""
	if !explicit {
		configPath = pecheck.ConfigFileName
	}

	cfg, err := config.Load(configPath)
	switch {
	case errors.Is(err, config.ErrConfigNotFound) && !explicit:
		cfg = &config.Config{}
	case errors.Is(err, config.ErrConfigNotFound):
		return nil, fmt.Errorf("%w: config file %s not found", pecheck.ErrInvalidConfig, configPath)
	case err != nil:
		return nil, fmt.Errorf("failed to load %s: %w", configPath, err)
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveContextMode prefers the flag when it was set explicitly.
func resolveContextMode(cmd *cobra.Command, cfg *config.Config, flagValue string) (pecheck.ContextMode, error) {
	if cmd.Flags().Changed("context-mode") {
		return pecheck.ParseContextMode(flagValue)
	}
	return cfg.Mode()
}
