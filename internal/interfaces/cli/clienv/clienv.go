// Package clienv bootstraps configuration, logging and the database for the
// one-shot CLI commands.
package clienv

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/config"
	"github.com/tosinajy/carrier-code-verify/internal/infrastructure/database"
	"github.com/tosinajy/carrier-code-verify/internal/shared/biztime"
	"github.com/tosinajy/carrier-code-verify/internal/shared/constants"
	"github.com/tosinajy/carrier-code-verify/internal/shared/logger"
)

// Flags are the persistent flags shared by every maintenance command.
type Flags struct {
	Env        string
	ConfigPath string
}

// Bind registers --env and --config on cmd.
func (f *Flags) Bind(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&f.Env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&f.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
}

// Init loads the configuration and the logger. When withDB is set the global
// database connection is opened too; callers release it with Close.
func (f *Flags) Init(withDB bool) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(f.Env, f.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, f.Env == constants.EnvDevelopment); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if withDB {
		if err := database.Init(&cfg.Database); err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
	}

	return cfg, logger.NewLogger(), nil
}

// Close flushes the logger and closes the database if it was opened.
func Close() {
	_ = database.Close()
	_ = logger.Sync()
}
