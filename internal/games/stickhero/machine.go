package stickhero

import (
	"math"

	"github.com/vovakirdan/tui-stickhero/internal/audio"
	"github.com/vovakirdan/tui-stickhero/internal/config"
)

// Phase is the authoritative stage of a bridge attempt.
type Phase int

const (
	PhaseWaiting       Phase = iota // Idle, waiting for a press
	PhaseStretching                 // Stick grows while held
	PhaseTurning                    // Stick rotates down to 90°
	PhaseWalking                    // Hero walks along the stick
	PhaseTransitioning              // Camera scrolls to the landed platform
	PhaseFalling                    // Hero drops; terminal
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhaseStretching:
		return "stretching"
	case PhaseTurning:
		return "turning"
	case PhaseWalking:
		return "walking"
	case PhaseTransitioning:
		return "transitioning"
	case PhaseFalling:
		return "falling"
	default:
		return "unknown"
	}
}

// flatRotation is the rotation of a stick lying across a gap.
const flatRotation = 90.0

// Machine owns the world and advances it one frame at a time.
//
// Scheduling contract: the owner calls Tick with a monotonically increasing
// timestamp in milliseconds. Whenever Tick (or Press) returns true, exactly
// one more Tick must be scheduled; when it returns false the machine is idle
// until the next input. Ticks must be tagged with Epoch() at scheduling time
// and dropped if the epoch has moved on, which is how Reset and Press cancel
// a loop that is still in flight.
type Machine struct {
	cfg   config.StickHeroConfig
	gen   *Generator
	cues  audio.Player
	world World
	phase Phase

	target    Platform // Platform the stick landed on, valid when hasTarget
	hasTarget bool

	last    float64 // Timestamp of the previous tick
	hasLast bool    // False until the first tick of a timed run
	over    bool    // Fall finished; only Reset leaves this state
	epoch   uint64
}

// NewMachine creates a machine in the reset state. A nil cues player is
// replaced by audio.Nop.
func NewMachine(cfg config.StickHeroConfig, src RandSource, cues audio.Player) *Machine {
	if cues == nil {
		cues = audio.Nop{}
	}
	m := &Machine{
		cfg:  cfg,
		gen:  NewGenerator(cfg.Platforms, src),
		cues: cues,
	}
	m.Reset()
	return m
}

// SetSource replaces the platform generator's random source. It takes
// effect from the next generated platform; call Reset to regenerate all.
func (m *Machine) SetSource(src RandSource) {
	m.gen.SetSource(src)
}

// Reset reinitialises every entity and returns to waiting. Any tick loop
// started before the reset is invalidated.
//
// Generated platforms keep drawing from the current source, so two resets
// produce the same world only if the source is reseeded in between (as
// Game.Reset does).
func (m *Machine) Reset() {
	m.world.Reset(m.cfg, m.gen)
	m.phase = PhaseWaiting
	m.target = Platform{}
	m.hasTarget = false
	m.last = 0
	m.hasLast = false
	m.over = false
	m.epoch++
}

// Press starts stretching the stick. It is ignored unless the machine is
// waiting. A true result means a new tick loop must be started.
func (m *Machine) Press() bool {
	if m.phase != PhaseWaiting {
		return false
	}
	m.phase = PhaseStretching
	m.hasLast = false
	m.epoch++
	m.cues.Play(audio.CueStretch)
	return true
}

// Release stops stretching and lets the stick fall. It is ignored unless
// the machine is stretching. The running tick loop carries on.
func (m *Machine) Release() bool {
	if m.phase != PhaseStretching {
		return false
	}
	m.phase = PhaseTurning
	m.cues.Play(audio.CueDrop)
	return true
}

// Tick advances the world to timestamp now and reports whether another tick
// must be scheduled. The first tick of a timed run only records the baseline.
func (m *Machine) Tick(now float64) bool {
	if !m.Running() {
		return false
	}
	if !m.hasLast {
		m.last = now
		m.hasLast = true
		return true
	}

	dt := now - m.last
	if dt < 0 {
		dt = 0
	}
	m.last = now

	switch m.phase {
	case PhaseStretching:
		m.world.ActiveStick().Length += dt / m.cfg.Speeds.Stretch
	case PhaseTurning:
		m.turn(dt)
	case PhaseWalking:
		m.walk(dt)
	case PhaseTransitioning:
		m.transition(dt)
	case PhaseFalling:
		m.fall(dt)
	}

	return m.Running()
}

// turn rotates the stick and resolves the landing once it lies flat.
func (m *Machine) turn(dt float64) {
	stick := m.world.ActiveStick()
	stick.Rotation += dt / m.cfg.Speeds.Turn
	if stick.Rotation < flatRotation {
		return
	}
	stick.Rotation = flatRotation

	if p, ok := Resolve(m.world.Sticks, m.world.Platforms); ok {
		m.world.Scene.Score++
		m.world.appendPlatform(m.gen)
		m.target = p
		m.hasTarget = true
	}
	m.phase = PhaseWalking
	m.cues.Play(audio.CueWalk)
}

// walk moves the hero toward the landed platform's edge or the stick's tip.
func (m *Machine) walk(dt float64) {
	m.world.Hero.X += dt / m.cfg.Speeds.Walk

	if m.hasTarget {
		maxX := m.target.Right() - m.cfg.Hero.EdgeOffset
		if m.world.Hero.X > maxX {
			m.world.Hero.X = maxX
			m.phase = PhaseTransitioning
		}
		return
	}

	maxX := m.world.ActiveStick().Tip()
	if m.world.Hero.X > maxX {
		m.world.Hero.X = maxX
		m.phase = PhaseFalling
		m.cues.Play(audio.CueFall)
	}
}

// transition scrolls the camera until the landed edge nears the left side,
// then plants a fresh stick there.
func (m *Machine) transition(dt float64) {
	m.world.Scene.CameraOffset += dt / m.cfg.Speeds.Transition

	edge := m.target.Right()
	if edge-m.world.Scene.CameraOffset < m.cfg.Rules.CameraProximity {
		m.world.Sticks = append(m.world.Sticks, Stick{X: edge})
		m.target = Platform{}
		m.hasTarget = false
		m.phase = PhaseWaiting
	}
}

// fall drops the hero. The stick keeps swinging down as decoration.
func (m *Machine) fall(dt float64) {
	m.world.Hero.Y += dt / m.cfg.Speeds.Fall

	stick := m.world.ActiveStick()
	if stick.Rotation < m.cfg.Rules.MaxRotation {
		stick.Rotation = math.Min(m.cfg.Rules.MaxRotation, stick.Rotation+dt/m.cfg.Speeds.Turn)
	}

	if m.world.Hero.Y > m.cfg.Canvas.PlatformHeight+m.cfg.Rules.FallMargin {
		m.over = true
	}
}

// Running reports whether the machine wants ticks.
func (m *Machine) Running() bool {
	return m.phase != PhaseWaiting && !m.over
}

// Epoch identifies the current tick loop.
func (m *Machine) Epoch() uint64 {
	return m.epoch
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Over reports whether the run has ended.
func (m *Machine) Over() bool {
	return m.over
}

// Score returns the number of successful landings since the last reset.
func (m *Machine) Score() int {
	return m.world.Scene.Score
}

// Target returns the platform the current stick landed on, if any.
func (m *Machine) Target() (Platform, bool) {
	return m.target, m.hasTarget
}

// World returns a snapshot of the entity model.
func (m *Machine) World() World {
	return m.world.Clone()
}

// view exposes the live world to the renderer without copying.
func (m *Machine) view() *World {
	return &m.world
}

// Config returns the configuration the machine runs with.
func (m *Machine) Config() config.StickHeroConfig {
	return m.cfg
}

// Drive runs the scheduling contract without a display: it delivers a tick
// at start, start+step, ... for as long as the machine asks for more, up to
// maxFrames ticks. It returns the number of ticks delivered and the last
// timestamp used.
func Drive(m *Machine, start, step float64, maxFrames int) (int, float64) {
	now := start
	for frames := 1; frames <= maxFrames; frames++ {
		if !m.Tick(now) || frames == maxFrames {
			return frames, now
		}
		now += step
	}
	return 0, start
}
