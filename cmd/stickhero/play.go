package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-stickhero/internal/audio"
	"github.com/vovakirdan/tui-stickhero/internal/config"
	"github.com/vovakirdan/tui-stickhero/internal/core"
	"github.com/vovakirdan/tui-stickhero/internal/platform/tui"
	"github.com/vovakirdan/tui-stickhero/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Terminals do not report key releases, so the action key toggles:
press once to start growing the stick and again to drop it. With a
mouse, hold the left button instead.

Controls:
  Space/Enter  - Stretch / drop the stick
  Mouse        - Hold to stretch, release to drop
  R            - Restart
  M            - Toggle audio cues
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Examples:
  stickhero play
  stickhero play --seed 42
  stickhero play --config ./my-stickhero.yaml
  stickhero play --log-file /tmp/stickhero.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The game owns the terminal, so logs go nowhere unless --log-file is set
	logger, closeLog, err := newLogger("stickhero", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, err := config.LoadStickHero(flagConfig)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	audioCfg := config.LoadAudioConfig()
	var backend audio.Backend
	if audioCfg.Bell {
		backend = audio.NewBell(os.Stderr, audio.CueDrop, audio.CueFall)
	}
	sw := audio.NewSwitch(backend, audioCfg.Muted || flagMute, logger)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Game: gameCfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:  store,
		Audio:  sw,
		Logger: logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
