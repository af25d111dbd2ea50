package stickhero

import (
	"github.com/vovakirdan/tui-stickhero/internal/config"
	"github.com/vovakirdan/tui-stickhero/internal/core"
)

// Platform is a ground block the hero can stand on. Immutable once created.
type Platform struct {
	X     float64 // Left edge
	Width float64
}

// Right returns the x-coordinate of the far edge.
func (p Platform) Right() float64 {
	return p.X + p.Width
}

// Span returns the platform's extent on the world axis.
func (p Platform) Span() core.Span {
	return core.Span{Lo: p.X, Hi: p.Right()}
}

// Stick is a bridge attempt anchored at the edge the hero stands on.
// Rotation is in degrees: 0 points up, 90 lies flat, 180 hangs down.
type Stick struct {
	X        float64
	Length   float64
	Rotation float64
}

// Tip returns the x-coordinate the stick reaches once laid flat.
func (s Stick) Tip() float64 {
	return s.X + s.Length
}

// Hero is the walking character. Y is the drop below ground level (0 = standing).
type Hero struct {
	X float64
	Y float64
}

// Scene holds the camera and the score.
type Scene struct {
	CameraOffset float64
	Score        int
}

// World is the full entity model. It only stores data; Machine mutates it.
type World struct {
	Platforms []Platform
	Sticks    []Stick
	Hero      Hero
	Scene     Scene
}

// Reset rebuilds the start configuration: the origin platform, generated
// platforms up to cfg.Platforms.Initial, the hero at the origin's far edge
// and one empty stick at that edge.
func (w *World) Reset(cfg config.StickHeroConfig, gen *Generator) {
	origin := Platform{X: cfg.Platforms.OriginX, Width: cfg.Platforms.OriginWidth}

	w.Platforms = make([]Platform, 0, cfg.Platforms.Initial+8)
	w.Platforms = append(w.Platforms, origin)
	for len(w.Platforms) < cfg.Platforms.Initial {
		w.appendPlatform(gen)
	}

	edge := origin.Right()
	w.Hero = Hero{X: edge - cfg.Hero.EdgeOffset, Y: 0}
	w.Sticks = []Stick{{X: edge}}
	w.Scene = Scene{}
}

// appendPlatform generates the next platform after the last one.
func (w *World) appendPlatform(gen *Generator) {
	w.Platforms = append(w.Platforms, gen.Next(w.Platforms[len(w.Platforms)-1]))
}

// ActiveStick returns the stick currently being used. It is always the last one.
func (w *World) ActiveStick() *Stick {
	return &w.Sticks[len(w.Sticks)-1]
}

// Clone returns a deep copy safe to hand to readers.
func (w World) Clone() World {
	c := w
	c.Platforms = append([]Platform(nil), w.Platforms...)
	c.Sticks = append([]Stick(nil), w.Sticks...)
	return c
}
