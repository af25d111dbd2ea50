// Package stickhero implements the stick hero game: stretch a stick to the
// right length, lay it across the gap and walk to the next platform.
package stickhero

import (
	"math/rand"

	"github.com/vovakirdan/tui-stickhero/internal/audio"
	"github.com/vovakirdan/tui-stickhero/internal/config"
	"github.com/vovakirdan/tui-stickhero/internal/core"
)

// ID is the game's identifier, used for journals and screenshots.
const ID = "stickhero"

// Game wraps the machine with a journal of the current run and a renderer.
// It is what the platform layer drives.
type Game struct {
	machine  *Machine
	journal  Journal
	renderer *Renderer
}

// New creates a game with the given configuration and audio player.
// Call Reset before the first frame to pick a seed.
func New(cfg config.StickHeroConfig, cues audio.Player) *Game {
	return &Game{
		machine:  NewSeededMachine(cfg, 0, cues),
		renderer: NewRenderer(cfg),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Stick Hero"
}

// Reset starts a new run with platforms generated from seed.
func (g *Game) Reset(seed int64) {
	g.machine.SetSource(rand.New(rand.NewSource(seed)))
	g.machine.Reset()
	g.journal = Journal{Seed: seed}
}

// Press forwards a press and records it if it was accepted.
func (g *Game) Press(now float64) bool {
	if !g.machine.Press() {
		return false
	}
	g.journal.Record(EventPress, now)
	return true
}

// Release forwards a release and records it if it was accepted.
func (g *Game) Release(now float64) bool {
	if !g.machine.Release() {
		return false
	}
	g.journal.Record(EventRelease, now)
	return true
}

// Tick advances one frame and reports whether another must be scheduled.
func (g *Game) Tick(now float64) bool {
	if !g.machine.Running() {
		return false
	}
	g.journal.Record(EventTick, now)
	return g.machine.Tick(now)
}

// Epoch identifies the current tick loop. See Machine.
func (g *Game) Epoch() uint64 {
	return g.machine.Epoch()
}

// Machine returns the underlying state machine.
func (g *Game) Machine() *Machine {
	return g.machine
}

// Journal returns a copy of the current run's journal.
func (g *Game) Journal() Journal {
	return Journal{
		Seed:   g.journal.Seed,
		Events: append([]Event(nil), g.journal.Events...),
	}
}

// State returns the summary shown by the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.machine.Score(),
		Phase:    g.machine.Phase().String(),
		GameOver: g.machine.Over(),
	}
}

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	g.renderer.Render(dst, g.machine)
}
