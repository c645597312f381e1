package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cartoon-dash/internal/core"
	"github.com/vovakirdan/cartoon-dash/internal/games/dash"
	"github.com/vovakirdan/cartoon-dash/internal/platform/tui"
	"github.com/vovakirdan/cartoon-dash/internal/replay"
	"github.com/vovakirdan/cartoon-dash/internal/storage"
)

var flagRecord bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run of Cartoon Dash.

Controls:
  Left/A, Right/D  - Move
  Space/Up/W       - Jump
  P/Esc            - Pause
  R                - Restart (after the run ends)
  Ctrl+S           - Save a screenshot
  Ctrl+Y           - Copy the frame to the clipboard
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, longer hit cooldown
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  dash play
  dash play --difficulty hard
  dash play --seed 42 --record
  dash play --config ./my-dash.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Save each run to the replay database")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadTunables()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := fileLogger("play")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     resolveSeed(flagSeed),
	}

	game := dash.New(cfg, runtime)
	opts := tui.Options{Runtime: runtime, Logger: logger}
	var sim tui.Sim = game

	if flagRecord {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open replay database: %v\n", err)
			logger.Warn("recording disabled", "err", err)
		} else {
			defer store.Close()
			rec := replay.NewRecorder(game)
			opts.Store = store
			opts.Recorder = rec
			sim = rec
		}
	}

	session, err := tui.Run(sim, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("session over", "runs", session.Runs, "best", session.Best)
	if session.Runs > 0 {
		fmt.Printf("Runs: %d  Best score: %d\n", session.Runs, session.Best)
	}
}
