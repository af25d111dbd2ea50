package stickhero

import (
	"math/rand"

	"github.com/vovakirdan/tui-stickhero/internal/audio"
	"github.com/vovakirdan/tui-stickhero/internal/config"
)

// EventKind names an input applied to the machine.
type EventKind string

const (
	EventPress   EventKind = "press"
	EventRelease EventKind = "release"
	EventTick    EventKind = "tick"
)

// Event is one applied input. At is the timestamp in milliseconds.
type Event struct {
	Kind EventKind `json:"k"`
	At   float64   `json:"t"`
}

// Journal is everything needed to reproduce a run: the seed the platforms
// were generated from and the inputs in order.
type Journal struct {
	Seed   int64
	Events []Event
}

// Record appends an event.
func (j *Journal) Record(kind EventKind, at float64) {
	j.Events = append(j.Events, Event{Kind: kind, At: at})
}

// Count returns how many events of the given kind were recorded.
func (j Journal) Count(kind EventKind) int {
	n := 0
	for _, e := range j.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// NewSeededMachine creates a machine whose platforms come from seed.
func NewSeededMachine(cfg config.StickHeroConfig, seed int64, cues audio.Player) *Machine {
	return NewMachine(cfg, rand.New(rand.NewSource(seed)), cues)
}

// Replay rebuilds the state a journal leads to, without audio.
func Replay(cfg config.StickHeroConfig, j Journal) *Machine {
	m := NewSeededMachine(cfg, j.Seed, nil)
	for _, e := range j.Events {
		switch e.Kind {
		case EventPress:
			m.Press()
		case EventRelease:
			m.Release()
		case EventTick:
			m.Tick(e.At)
		}
	}
	return m
}
