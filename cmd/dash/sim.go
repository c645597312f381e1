package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cartoon-dash/internal/config"
	"github.com/vovakirdan/cartoon-dash/internal/core"
	"github.com/vovakirdan/cartoon-dash/internal/games/dash"
	"github.com/vovakirdan/cartoon-dash/internal/replay"
	"github.com/vovakirdan/cartoon-dash/internal/sim"
	"github.com/vovakirdan/cartoon-dash/internal/storage"
)

var (
	flagSimRuns      int
	flagSimSeconds   float64
	flagSimSeedStep  int64
	flagSimAutopilot bool
	flagSimRecord    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless games and print a report",
	Long: `Run one or more games without a terminal and print a report.

Each run uses seed --seed + i*--seed-step, steps at --fps and ticks the
countdown once per simulated second. Without --autopilot the player
stands still.

Examples:
  dash sim
  dash sim --runs 20 --autopilot --seed 1
  dash sim --difficulty hard --autopilot --record`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 5, "Number of runs")
	simCmd.Flags().Float64Var(&flagSimSeconds, "seconds", 120, "Simulated seconds per run")
	simCmd.Flags().Int64Var(&flagSimSeedStep, "seed-step", 1, "Seed increment between runs")
	simCmd.Flags().BoolVar(&flagSimAutopilot, "autopilot", false, "Let the autopilot play")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save each run to the replay database")
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagSimRuns <= 0 {
		return fmt.Errorf("--runs must be > 0")
	}
	if flagSimSeconds <= 0 {
		return fmt.Errorf("--seconds must be > 0")
	}

	cfg, err := loadTunables()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "sim")
	if err != nil {
		return err
	}

	var store *storage.Store
	if flagSimRecord {
		if store, err = storage.Open(flagDBPath); err != nil {
			return err
		}
		defer store.Close()
	}

	out := cmd.OutOrStdout()
	seedBase := resolveSeed(flagSeed)
	fmt.Fprintf(out, "=== Headless Dash Report ===\n")
	fmt.Fprintf(out, "runs=%d seconds=%.0f fps=%d autopilot=%t seed_base=%d seed_step=%d\n\n",
		flagSimRuns, flagSimSeconds, flagFPS, flagSimAutopilot, seedBase, flagSimSeedStep)

	opts := sim.Options{Seconds: flagSimSeconds, FPS: flagFPS, Autopilot: flagSimAutopilot}
	all := make([]sim.Result, 0, flagSimRuns)
	for i := 0; i < flagSimRuns; i++ {
		seed := seedBase + int64(i)*flagSimSeedStep
		res, err := simulate(cfg, seed, opts, store, logger)
		if err != nil {
			return err
		}
		all = append(all, res)
		printRun(out, i+1, res)
	}

	printAggregate(out, aggregate(all))
	return nil
}

// simulate plays one run and, with a store, saves its recording.
func simulate(cfg config.DashConfig, seed int64, opts sim.Options, store *storage.Store, logger *log.Logger) (sim.Result, error) {
	runtime := core.DefaultConfig()
	runtime.TickRate = opts.FPS
	runtime.Seed = seed
	game := dash.New(cfg, runtime)

	if store == nil {
		return sim.Run(game, opts), nil
	}

	rec := replay.NewRecorder(game)
	res := sim.Run(rec, opts)
	id, err := store.SaveReplay(rec.Recording())
	if err != nil {
		return res, err
	}
	logger.Debug("recorded run", "id", id, "seed", seed, "score", res.State.Score)
	return res, nil
}

// summary aggregates a batch of runs.
type summary struct {
	runs      int
	timedOut  int
	gameOver  int
	bestScore int
	meanScore float64
	meanLives float64
	meanSecs  float64
	hits      int
	jumps     int
}

func aggregate(all []sim.Result) summary {
	s := summary{runs: len(all)}
	if s.runs == 0 {
		return s
	}
	for _, r := range all {
		switch {
		case r.State.Phase != core.PhaseEnded:
		case r.State.Lives <= 0:
			s.gameOver++
		default:
			s.timedOut++
		}
		s.bestScore = max(s.bestScore, r.State.Score)
		s.meanScore += float64(r.State.Score)
		s.meanLives += float64(r.State.Lives)
		s.meanSecs += r.Elapsed
		s.hits += r.Hits
		s.jumps += r.Jumps
	}
	n := float64(s.runs)
	s.meanScore /= n
	s.meanLives /= n
	s.meanSecs /= n
	return s
}

// outcome names how a run finished.
func outcome(st core.GameState) string {
	switch {
	case st.Phase != core.PhaseEnded:
		return "unfinished"
	case st.Lives <= 0:
		return "game_over"
	default:
		return "time_up"
	}
}

func printRun(w io.Writer, index int, r sim.Result) {
	fmt.Fprintf(w, "--- Run %d (seed=%d) ---\n", index, r.Seed)
	fmt.Fprintf(w, "  outcome=%s score=%d lives=%d time_left=%ds\n",
		outcome(r.State), r.State.Score, r.State.Lives, r.State.TimeLeft)
	fmt.Fprintf(w, "  frames=%d elapsed=%.2fs jumps=%d collects=%d hits=%d\n\n",
		r.Frames, r.Elapsed, r.Jumps, r.Collects, r.Hits)
}

func printAggregate(w io.Writer, s summary) {
	fmt.Fprintf(w, "=== Aggregate (%d runs) ===\n", s.runs)
	fmt.Fprintf(w, "  time_up=%d game_over=%d\n", s.timedOut, s.gameOver)
	fmt.Fprintf(w, "  best_score=%d mean_score=%.1f mean_lives=%.2f mean_elapsed=%.1fs\n",
		s.bestScore, s.meanScore, s.meanLives, s.meanSecs)
	fmt.Fprintf(w, "  total_jumps=%d total_hits=%d\n", s.jumps, s.hits)
}
