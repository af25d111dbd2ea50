// stickhero is the stick hero arcade game for the terminal.
//
// Usage:
//
//	stickhero                - Play (same as "stickhero play")
//	stickhero play           - Play in this terminal
//	stickhero serve          - Start SSH server for remote play
//	stickhero runs           - Browse recorded runs
//	stickhero replay <id>    - Replay a recorded run headless
//	stickhero config         - Print the default (or --effective) game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible platforms
//	--db <path>           - Set run database path (default: ~/.stickhero/runs.db)
//	--config <path>       - Load game tuning from a YAML file
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stickhero",
	Short: "Stick Hero - Bridge the gaps in your terminal",
	Long: `Stick Hero is a one-button arcade game. Hold to grow a stick, let go to
drop it across the gap, and walk to the next platform. Too short or too long
and the hero falls.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  runs     - Browse recorded runs
  replay   - Replay a recorded run headless
  config   - Print the default (or --effective) game config

Examples:
  stickhero
  stickhero play --seed 42
  stickhero serve --ssh :2222
  stickhero runs --plain
  stickhero replay 3f2a9c1d`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.stickhero/runs.db", "Path to run database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with audio cues muted")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
}
