// dash is Cartoon Dash, a side-scrolling star collector for the terminal.
//
// Usage:
//
//	dash play                - Play a run
//	dash sim                 - Run headless games and print a report
//	dash replays             - Browse, watch, verify or delete recorded runs
//	dash config              - Print the effective tunables as YAML
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set replay database path (default: ~/.dash/replays.db)
//	--config <path>       - Load tunables from a YAML file
//	--difficulty <preset> - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cartoon-dash/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dash",
	Short: "Cartoon Dash - collect stars, dodge spikes",
	Long: `Cartoon Dash is a side-scrolling arcade game for your terminal.
Run, jump over spikes and grab as many stars as you can in 60 seconds.

Available commands:
  play     - Play a run
  sim      - Run headless games and print a report
  replays  - Browse and watch recorded runs
  config   - Print the effective tunables

Examples:
  dash play
  dash play --difficulty hard --record
  dash sim --runs 10 --autopilot
  dash replays
  dash config --difficulty easy`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dash/replays.db", "Path to replay database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tunables YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(configCmd)
}

// loadTunables resolves the tunables from --config and --difficulty.
func loadTunables() (config.DashConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.DashConfig{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.DashConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.DashConfig{}, err
	}
	return cfg, nil
}

// resolveSeed turns the zero seed into a time-based one.
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
