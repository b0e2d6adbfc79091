package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmynk/costtracker/internal/config"
	"github.com/mmynk/costtracker/internal/storage/sqlite"
	"github.com/mmynk/costtracker/pkg/logging"
)

// app carries state shared by every subcommand.
type app struct {
	configPath string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "costtracker",
		Short:         "Personal cost tracking with spending limits and forecasts",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			logging.Setup(cfg.Log.Level)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to the YAML configuration file")

	root.AddCommand(
		newServeCmd(a),
		newUserCmd(a),
		newTokenCmd(a),
		newStatsCmd(a),
		newForecastCmd(a),
		newOutboxCmd(a),
	)
	return root
}

// openStore opens the configured database.
func (a *app) openStore() (*sqlite.SQLiteStore, error) {
	store, err := sqlite.New(a.cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	return store, nil
}
