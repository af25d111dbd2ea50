package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-stickhero/internal/core"
	"github.com/vovakirdan/tui-stickhero/internal/games/stickhero"
	"github.com/vovakirdan/tui-stickhero/internal/storage"
)

var (
	flagReplayFrame bool
	flagReplayW     int
	flagReplayH     int
)

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Replay a recorded run headless",
	Long: `Rebuild a recorded run from its seed and inputs and print the result.
The run is replayed with the tuning it was recorded under, so --config has
no effect here. Any unique prefix of the run ID is accepted.

Examples:
  stickhero replay 3f2a9c1d
  stickhero replay 3f2a9c1d --frame --width 100 --height 30`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayFrame, "frame", false, "Also print the final frame")
	replayCmd.Flags().IntVar(&flagReplayW, "width", 80, "Frame width in cells")
	replayCmd.Flags().IntVar(&flagReplayH, "height", 24, "Frame height in cells")
}

func runReplay(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	return replayRun(os.Stdout, store, args[0])
}

// replayRun resolves a run ID prefix, replays the journal under its stored
// tuning and reports the final state.
func replayRun(w io.Writer, store *storage.Store, prefix string) error {
	id, err := store.ResolveRunID(prefix)
	if err != nil {
		return err
	}
	run, err := store.Run(id)
	if err != nil {
		return err
	}

	m := stickhero.Replay(run.Config, run.Journal)

	fmt.Fprintf(w, "Run      %s\n", run.ID)
	fmt.Fprintf(w, "Recorded %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Seed     %d\n", run.Journal.Seed)
	fmt.Fprintf(w, "Events   %d (%d presses)\n", len(run.Journal.Events), run.Journal.Count(stickhero.EventPress))
	fmt.Fprintf(w, "Score    %d\n", m.Score())
	fmt.Fprintf(w, "Phase    %s\n", m.Phase())
	fmt.Fprintf(w, "Over     %v\n", m.Over())

	if flagReplayFrame {
		screen := core.NewScreen(flagReplayW, flagReplayH)
		stickhero.NewRenderer(run.Config).Render(screen, m)
		fmt.Fprintln(w)
		fmt.Fprintln(w, screen.String())
	}
	return nil
}
