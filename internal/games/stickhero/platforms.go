package stickhero

import (
	"github.com/vovakirdan/tui-stickhero/internal/config"
	"github.com/vovakirdan/tui-stickhero/internal/core"
)

// RandSource yields uniform draws in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// Generator produces the platform after a given one. Apart from its random
// source it keeps no state.
type Generator struct {
	src      RandSource
	minGap   float64
	maxGap   float64
	minWidth float64
	maxWidth float64
}

// NewGenerator creates a generator over the configured ranges.
func NewGenerator(cfg config.PlatformsConfig, src RandSource) *Generator {
	return &Generator{
		src:      src,
		minGap:   cfg.MinGap,
		maxGap:   cfg.MaxGap,
		minWidth: cfg.MinWidth,
		maxWidth: cfg.MaxWidth,
	}
}

// SetSource replaces the random source.
func (g *Generator) SetSource(src RandSource) {
	g.src = src
}

// Next returns a platform placed a random gap after prev, with a random width.
// The gap is drawn before the width.
func (g *Generator) Next(prev Platform) Platform {
	gap := g.minGap + g.draw()*(g.maxGap-g.minGap)
	width := g.minWidth + g.draw()*(g.maxWidth-g.minWidth)
	return Platform{
		X:     prev.Right() + gap,
		Width: width,
	}
}

// draw returns the next value from the source, clamped into [0, 1].
func (g *Generator) draw() float64 {
	return core.ClampF(g.src.Float64(), 0, 1)
}

// SequenceSource replays a fixed list of draws, cycling when exhausted.
type SequenceSource struct {
	values []float64
	next   int
}

// NewSequenceSource creates a source over the given values.
// With no values it always returns 0.
func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{values: values}
}

// Float64 returns the next value in the sequence.
func (s *SequenceSource) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}
