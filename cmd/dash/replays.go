package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cartoon-dash/internal/core"
	"github.com/vovakirdan/cartoon-dash/internal/platform/tui"
	"github.com/vovakirdan/cartoon-dash/internal/replay"
	"github.com/vovakirdan/cartoon-dash/internal/storage"
)

var flagReplaysLimit int

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "Browse recorded runs",
	Long: `Browse recorded runs and watch one.

Without a subcommand an interactive browser opens; pick a run with Enter
to watch it.

Examples:
  dash replays
  dash replays list --limit 20
  dash replays show 3
  dash replays verify 3
  dash replays delete 3`,
	Args: cobra.NoArgs,
	RunE: runReplayBrowser,
}

var replaysListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs",
	Args:  cobra.NoArgs,
	RunE:  runReplaysList,
}

var replaysShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Watch a recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplaysShow,
}

var replaysVerifyCmd = &cobra.Command{
	Use:   "verify <id>",
	Short: "Replay a run headlessly and check it ends the same way",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplaysVerify,
}

var replaysDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplaysDelete,
}

func init() {
	replaysListCmd.Flags().IntVar(&flagReplaysLimit, "limit", 10, "Number of replays to show")

	replaysCmd.AddCommand(replaysListCmd)
	replaysCmd.AddCommand(replaysShowCmd)
	replaysCmd.AddCommand(replaysVerifyCmd)
	replaysCmd.AddCommand(replaysDeleteCmd)
}

func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid replay id %q", s)
	}
	return id, nil
}

// loadReplay opens the store and fetches one recording.
func loadReplay(arg string) (*storage.Store, replay.Recording, error) {
	id, err := parseID(arg)
	if err != nil {
		return nil, replay.Recording{}, err
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, replay.Recording{}, err
	}
	rec, err := store.Replay(id)
	if err != nil {
		store.Close()
		return nil, replay.Recording{}, err
	}
	if rec == nil {
		store.Close()
		return nil, replay.Recording{}, fmt.Errorf("replay #%d not found", id)
	}
	return store, *rec, nil
}

func runReplayBrowser(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	width, height := terminalSize()
	id, err := tui.RunBrowser(store, width, height)
	if err != nil || id == 0 {
		return err
	}

	rec, err := store.Replay(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("replay #%d not found", id)
	}
	return watch(*rec, width, height)
}

func runReplaysList(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	infos, err := store.Replays(flagReplaysLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(infos) == 0 {
		fmt.Fprintln(out, "No replays recorded yet.")
		fmt.Fprintln(out, "Run 'dash play --record' to make one!")
		return nil
	}

	fmt.Fprintln(out, "Recorded runs:")
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCORE\tLIVES\tTIME\tLENGTH\tSEED\tDATE")
	fmt.Fprintln(w, "--\t-----\t-----\t----\t------\t----\t----")
	for _, r := range infos {
		fmt.Fprintf(w, "#%d\t%d\t%d\t%ds\t%.1fs\t%d\t%s\n",
			r.ID, r.Score, r.Lives, r.TimeLeft, r.Duration.Seconds(), r.Seed,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func runReplaysShow(cmd *cobra.Command, args []string) error {
	store, rec, err := loadReplay(args[0])
	if err != nil {
		return err
	}
	store.Close()

	width, height := terminalSize()
	return watch(rec, width, height)
}

func watch(rec replay.Recording, width, height int) error {
	logger, closer, err := fileLogger("replay")
	if err != nil {
		return err
	}
	defer closer.Close()

	runtime := core.RuntimeConfig{ScreenW: width, ScreenH: height, TickRate: flagFPS, Seed: rec.Seed}
	logger.Info("watching replay", "id", rec.ID, "frames", rec.Frames())
	return tui.RunPlayback(replay.NewPlayer(rec), tui.Options{Runtime: runtime, Logger: logger})
}

func runReplaysVerify(cmd *cobra.Command, args []string) error {
	store, rec, err := loadReplay(args[0])
	if err != nil {
		return err
	}
	store.Close()

	got, err := replay.Verify(rec)
	if errors.Is(err, replay.ErrDiverged) {
		fmt.Fprintf(cmd.OutOrStdout(), "Replay #%d DIVERGED: recorded score %d, replayed %d\n",
			rec.ID, rec.Final.Score, got.Score)
		return err
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Replay #%d OK: %d frames, score %d, lives %d\n",
		rec.ID, rec.Frames(), got.Score, got.Lives)
	return nil
}

func runReplaysDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteReplay(id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted replay #%d\n", id)
	return nil
}
