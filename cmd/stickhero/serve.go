package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-stickhero/internal/config"
	"github.com/vovakirdan/tui-stickhero/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stick hero SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game. Finished runs are recorded in the
server's run database.

Settings come from the environment and are overridden by flags:
  STICKHERO_SSH_ADDR       - listen address (default :23234)
  STICKHERO_HOST_KEY       - host key path (default ~/.stickhero/host_key)
  STICKHERO_DB             - run database path
  STICKHERO_IDLE_TIMEOUT   - idle timeout (default 30m)
  STICKHERO_MUTE           - start sessions muted
  STICKHERO_BELL           - ring the terminal bell for cues (default true)

Examples:
  stickhero serve                           # Listen on :23234 with auto-generated key
  stickhero serve --ssh :2222               # Listen on port 2222
  stickhero serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("stickhero-ssh", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.LoadServerConfig()
	if err != nil {
		return err
	}
	applyServeFlags(cmd, &cfg)

	gameCfg, err := config.LoadStickHero(flagConfig)
	if err != nil {
		return err
	}

	audioCfg := config.LoadAudioConfig()
	if flagMute {
		audioCfg.Muted = true
	}

	server, err := tui.NewSSHServer(cfg, gameCfg, audioCfg, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting stick hero SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(ctx)
}

// applyServeFlags lets explicitly set flags win over the environment.
func applyServeFlags(cmd *cobra.Command, cfg *config.ServerConfig) {
	flags := cmd.Flags()
	if flags.Changed("ssh") {
		cfg.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		cfg.HostKeyPath = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		cfg.IdleTimeout = flagIdleTimeout
	}
	if flags.Changed("db") {
		cfg.DBPath = flagDBPath
	}
	if flags.Changed("fps") {
		cfg.TickRate = flagFPS
	}
}
