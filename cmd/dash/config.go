package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cartoon-dash/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective tunables as YAML",
	Long: `Print the tunables a run would use, after --config and --difficulty
are applied. The output is a valid config file.

Examples:
  dash config > ~/.dash/configs/dash.yaml
  dash config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadTunables()
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
