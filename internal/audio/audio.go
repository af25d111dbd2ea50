// Package audio plays the game's sound cues. Playback is fire-and-forget:
// a cue that fails to play is dropped without telling the caller.
package audio

import (
	"github.com/charmbracelet/log"
)

// Cue names a sound effect.
type Cue string

// Cues raised by the game.
const (
	CueStretch Cue = "stretch"
	CueDrop    Cue = "drop"
	CueWalk    Cue = "walk"
	CueFall    Cue = "fall"
)

// Cues lists every cue the game can raise.
var Cues = []Cue{CueStretch, CueDrop, CueWalk, CueFall}

// Player plays cues. Play must not block and must not fail the caller.
type Player interface {
	Play(c Cue)
}

// Backend drives an actual output device.
type Backend interface {
	// Rewind moves the cue back to its start, stopping it if it is playing.
	Rewind(c Cue) error
	// Start begins playback from the current position without waiting for it to end.
	Start(c Cue) error
}

// Switch is the game's Player: it owns the global mute flag and restarts a
// cue from the beginning on every request instead of queueing it.
type Switch struct {
	backend Backend
	muted   bool
	logger  *log.Logger
}

// NewSwitch wraps a backend. A nil logger discards playback errors silently.
func NewSwitch(backend Backend, muted bool, logger *log.Logger) *Switch {
	return &Switch{
		backend: backend,
		muted:   muted,
		logger:  logger,
	}
}

// Play restarts the cue unless audio is muted.
func (s *Switch) Play(c Cue) {
	if s == nil || s.muted || s.backend == nil {
		return
	}
	if err := s.backend.Rewind(c); err != nil {
		s.debug(c, err)
	}
	if err := s.backend.Start(c); err != nil {
		s.debug(c, err)
	}
}

// SetMuted sets the mute flag.
func (s *Switch) SetMuted(muted bool) {
	s.muted = muted
}

// Toggle flips the mute flag and returns the new value.
func (s *Switch) Toggle() bool {
	s.muted = !s.muted
	return s.muted
}

// Muted reports whether playback is suppressed.
func (s *Switch) Muted() bool {
	return s.muted
}

func (s *Switch) debug(c Cue, err error) {
	if s.logger != nil {
		s.logger.Debug("cue playback failed", "cue", c, "error", err)
	}
}

// Nop is a Player that plays nothing.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Cue) {}

// Recorder is a Player that remembers the cues it was asked to play.
type Recorder struct {
	Played []Cue
}

// Play appends the cue.
func (r *Recorder) Play(c Cue) {
	r.Played = append(r.Played, c)
}

// Count returns how many times c was played.
func (r *Recorder) Count(c Cue) int {
	n := 0
	for _, p := range r.Played {
		if p == c {
			n++
		}
	}
	return n
}

// Reset forgets recorded cues.
func (r *Recorder) Reset() {
	r.Played = r.Played[:0]
}
