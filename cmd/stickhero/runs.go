package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-stickhero/internal/platform/tui"
	"github.com/vovakirdan/tui-stickhero/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsPlain bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse recorded runs",
	Long: `List recently recorded runs by seed, input count and date. Scores are
not stored; replay a run to see how it ended.

In a terminal this opens an interactive browser; pick a run with Enter to
replay it. Use --plain (or redirect output) for a plain listing.

Examples:
  stickhero runs
  stickhero runs --plain --limit 5`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Maximum number of runs to list (at most 50)")
	runsCmd.Flags().BoolVar(&flagRunsPlain, "plain", false, "Print a plain listing instead of the browser")
}

func runRuns(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := tui.LoadRuns(store, flagRunsLimit)
	if err != nil {
		return err
	}

	fd := int(os.Stdout.Fd())
	if flagRunsPlain || !term.IsTerminal(fd) {
		printRuns(os.Stdout, runs)
		return nil
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(fd); termErr == nil {
		width, height = w, h
	}

	id, err := tui.BrowseRuns(runs, width, height)
	if err != nil {
		return err
	}
	if id == "" {
		return nil
	}
	return replayRun(os.Stdout, store, id)
}

// printRuns writes a plain table of runs.
func printRuns(w io.Writer, runs []storage.RunEntry) {
	fmt.Fprintln(w, "Recorded Runs - Stick Hero")
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'stickhero play' and finish a run to record one!")
		return
	}

	fmt.Fprintf(w, "  %-36s  %-20s  %-6s  %s\n", "Run", "Seed", "Events", "Date")
	fmt.Fprintf(w, "  %-36s  %-20s  %-6s  %s\n", "---", "----", "------", "----")

	for _, r := range runs {
		fmt.Fprintf(w, "  %-36s  %-20d  %-6d  %s\n",
			r.ID,
			r.Journal.Seed,
			r.EventCount,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
}
