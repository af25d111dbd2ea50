package stickhero

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-stickhero/internal/audio"
	"github.com/vovakirdan/tui-stickhero/internal/config"
)

// newTestMachine returns a machine whose generated platforms are all
// 60 wide with 120 gaps: [50,100] [220,280] [400,460] [580,640] [760,820].
func newTestMachine(t *testing.T) (*Machine, *audio.Recorder) {
	t.Helper()
	rec := &audio.Recorder{}
	return NewMachine(config.DefaultStickHeroConfig(), NewSequenceSource(0.5), rec), rec
}

// stretchTo presses, establishes the baseline at t=0 and stretches the
// stick by length units (4ms per unit). Returns the current timestamp.
func stretchTo(t *testing.T, m *Machine, length float64) float64 {
	t.Helper()
	if !m.Press() {
		t.Fatalf("Press() rejected in phase %s", m.Phase())
	}
	if !m.Tick(0) {
		t.Fatal("baseline tick should schedule another")
	}
	now := length * 4
	m.Tick(now)
	return now
}

func TestResetState(t *testing.T) {
	m, _ := newTestMachine(t)
	w := m.World()

	if len(w.Platforms) != 5 {
		t.Errorf("platforms = %d, expected 5", len(w.Platforms))
	}
	if w.Platforms[0] != (Platform{X: 50, Width: 50}) {
		t.Errorf("first platform = %+v, expected origin {50 50}", w.Platforms[0])
	}
	if len(w.Sticks) != 1 {
		t.Fatalf("sticks = %d, expected 1", len(w.Sticks))
	}
	if w.Sticks[0] != (Stick{X: 100}) {
		t.Errorf("stick = %+v, expected empty stick at 100", w.Sticks[0])
	}
	if w.Hero != (Hero{X: 70}) {
		t.Errorf("hero = %+v, expected {70 0}", w.Hero)
	}
	if w.Scene != (Scene{}) {
		t.Errorf("scene = %+v, expected zero", w.Scene)
	}
	if m.Phase() != PhaseWaiting {
		t.Errorf("phase = %s, expected waiting", m.Phase())
	}
	if m.Running() {
		t.Error("fresh machine should not want ticks")
	}
}

func TestResetIsIdempotent(t *testing.T) {
	m, _ := newTestMachine(t)

	now := stretchTo(t, m, 150)
	m.Release()
	Drive(m, now+16, 16, 1000)

	m.SetSource(rand.New(rand.NewSource(5)))
	m.Reset()
	first := m.World()

	m.SetSource(rand.New(rand.NewSource(5)))
	m.Reset()
	second := m.World()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Reset twice with the same seed differs:\n%+v\n%+v", first, second)
	}

	// Without reseeding the generator keeps drawing new platforms
	m.Reset()
	if reflect.DeepEqual(first.Platforms, m.World().Platforms) {
		t.Error("Reset without reseeding repeated the same platforms")
	}
	if m.Phase() != PhaseWaiting || m.Over() {
		t.Errorf("after reset phase = %s, over = %v", m.Phase(), m.Over())
	}
}

func TestFirstTickOnlySetsBaseline(t *testing.T) {
	m, _ := newTestMachine(t)
	m.Press()

	if !m.Tick(1000) {
		t.Fatal("baseline tick must still schedule the next tick")
	}
	if l := m.World().Sticks[0].Length; l != 0 {
		t.Errorf("baseline tick changed length to %v", l)
	}

	m.Tick(1100)
	if l := m.World().Sticks[0].Length; l != 25 {
		t.Errorf("length = %v, expected 25 after 100ms", l)
	}
}

func TestStretchingGrowsByDelta(t *testing.T) {
	deltas := []float64{0, 1, 16, 16.7, 250, 1000}

	m, _ := newTestMachine(t)
	m.Press()
	now := 500.0
	m.Tick(now)

	for _, dt := range deltas {
		before := m.World().Sticks[0].Length
		now += dt
		m.Tick(now)
		after := m.World().Sticks[0].Length

		if math.Abs((after-before)-dt/4) > 1e-9 {
			t.Errorf("dt=%v: length grew by %v, expected %v", dt, after-before, dt/4)
		}
		if after < 0 {
			t.Errorf("dt=%v: negative length %v", dt, after)
		}
	}
}

func TestBackwardTimestampIsZeroDelta(t *testing.T) {
	m, _ := newTestMachine(t)
	m.Press()
	m.Tick(100)
	m.Tick(50)

	if l := m.World().Sticks[0].Length; l != 0 {
		t.Errorf("length = %v, expected 0 for a backwards timestamp", l)
	}
}

func TestTurningClampsAt90(t *testing.T) {
	m, _ := newTestMachine(t)
	now := stretchTo(t, m, 150)
	m.Release()

	// 100000ms would rotate far past 90
	m.Tick(now + 100000)

	if r := m.World().Sticks[0].Rotation; r != 90 {
		t.Errorf("rotation = %v, expected exactly 90", r)
	}
	if m.Phase() != PhaseWalking {
		t.Errorf("phase = %s, expected walking", m.Phase())
	}
}

func TestTurningBelow90StaysTurning(t *testing.T) {
	m, _ := newTestMachine(t)
	now := stretchTo(t, m, 150)
	m.Release()

	m.Tick(now + 200) // 50 degrees
	if r := m.World().Sticks[0].Rotation; r != 50 {
		t.Errorf("rotation = %v, expected 50", r)
	}
	if m.Phase() != PhaseTurning {
		t.Errorf("phase = %s, expected turning", m.Phase())
	}
}

func TestSuccessfulCrossing(t *testing.T) {
	m, rec := newTestMachine(t)

	now := stretchTo(t, m, 150) // tip at 250, inside [220, 280]
	if !m.Release() {
		t.Fatal("Release() rejected while stretching")
	}

	now += 360 // 90 degrees
	m.Tick(now)

	if m.Phase() != PhaseWalking {
		t.Fatalf("phase = %s, expected walking", m.Phase())
	}
	if m.Score() != 1 {
		t.Errorf("score = %d, expected 1", m.Score())
	}
	if n := len(m.World().Platforms); n != 6 {
		t.Errorf("platforms = %d, expected 6 after landing", n)
	}
	target, ok := m.Target()
	if !ok || target.X != 220 {
		t.Errorf("target = %+v (%v), expected platform at 220", target, ok)
	}

	// Hero walks from 70 to 280-30 = 250; 800ms would reach 270
	now += 800
	m.Tick(now)
	if x := m.World().Hero.X; x != 250 {
		t.Errorf("hero x = %v, expected clamp at 250", x)
	}
	if m.Phase() != PhaseTransitioning {
		t.Fatalf("phase = %s, expected transitioning", m.Phase())
	}

	// Camera moves 200 units: 280-200 = 80 < 100
	now += 400
	more := m.Tick(now)
	if more {
		t.Error("machine should go idle after the transition")
	}
	if m.Phase() != PhaseWaiting {
		t.Fatalf("phase = %s, expected waiting", m.Phase())
	}

	w := m.World()
	if w.Scene.CameraOffset != 200 {
		t.Errorf("camera offset = %v, expected 200", w.Scene.CameraOffset)
	}
	if len(w.Sticks) != 2 {
		t.Fatalf("sticks = %d, expected 2", len(w.Sticks))
	}
	if w.Sticks[0].Rotation != 90 {
		t.Errorf("previous stick rotation = %v, expected frozen at 90", w.Sticks[0].Rotation)
	}
	if w.Sticks[1] != (Stick{X: 280}) {
		t.Errorf("new stick = %+v, expected empty stick at 280", w.Sticks[1])
	}
	if _, ok := m.Target(); ok {
		t.Error("target should be cleared once waiting")
	}

	if rec.Count(audio.CueStretch) != 1 || rec.Count(audio.CueDrop) != 1 || rec.Count(audio.CueWalk) != 1 {
		t.Errorf("cues = %v, expected one stretch, drop and walk", rec.Played)
	}
	if rec.Count(audio.CueFall) != 0 {
		t.Error("no fall cue expected on a successful crossing")
	}
}

func TestTransitionWaitsForProximity(t *testing.T) {
	m, _ := newTestMachine(t)
	now := stretchTo(t, m, 150)
	m.Release()
	now += 360
	m.Tick(now)
	now += 800
	m.Tick(now)

	// 100 units of camera: 280-100 = 180, not yet close enough
	now += 200
	if !m.Tick(now) {
		t.Error("transition should keep ticking")
	}
	if m.Phase() != PhaseTransitioning {
		t.Errorf("phase = %s, expected transitioning", m.Phase())
	}
}

func TestMissedCrossingFalls(t *testing.T) {
	m, rec := newTestMachine(t)

	now := stretchTo(t, m, 50) // tip at 150, in the gap
	m.Release()
	now += 360
	m.Tick(now)

	if m.Phase() != PhaseWalking {
		t.Fatalf("phase = %s, expected walking", m.Phase())
	}
	if m.Score() != 0 {
		t.Errorf("score = %d, expected 0", m.Score())
	}
	if n := len(m.World().Platforms); n != 5 {
		t.Errorf("platforms = %d, expected no new platform", n)
	}
	if _, ok := m.Target(); ok {
		t.Error("missed stick should not bind a target")
	}

	// Walk past the tip at 150
	now += 400
	m.Tick(now)
	if x := m.World().Hero.X; x != 150 {
		t.Errorf("hero x = %v, expected clamp at the tip 150", x)
	}
	if m.Phase() != PhaseFalling {
		t.Fatalf("phase = %s, expected falling", m.Phase())
	}
	if rec.Count(audio.CueFall) != 1 {
		t.Errorf("fall cue played %d times, expected 1", rec.Count(audio.CueFall))
	}

	// 300ms: hero drops 150, stick swings 90+75
	now += 300
	if !m.Tick(now) {
		t.Error("fall should continue until past the margin")
	}
	w := m.World()
	if w.Hero.Y != 150 {
		t.Errorf("hero y = %v, expected 150", w.Hero.Y)
	}
	if w.Sticks[0].Rotation != 165 {
		t.Errorf("falling stick rotation = %v, expected 165", w.Sticks[0].Rotation)
	}

	// Past 100+100
	now += 200
	if m.Tick(now) {
		t.Error("finished fall must not schedule more ticks")
	}
	if !m.Over() {
		t.Error("run should be over")
	}
	if r := m.World().Sticks[0].Rotation; r != 180 {
		t.Errorf("falling stick rotation = %v, expected cap 180", r)
	}
}

func TestFallingIsTerminal(t *testing.T) {
	m, _ := newTestMachine(t)
	now := stretchTo(t, m, 10)
	m.Release()
	Drive(m, now+16, 16, 10000)

	if !m.Over() || m.Phase() != PhaseFalling {
		t.Fatalf("expected finished fall, phase = %s over = %v", m.Phase(), m.Over())
	}

	before := m.World()
	for i := 0; i < 10; i++ {
		if m.Tick(now + 100000 + float64(i)*16) {
			t.Error("Tick after the fall should not schedule")
		}
	}
	if m.Press() || m.Release() {
		t.Error("input should be ignored after the fall")
	}
	if m.Phase() != PhaseFalling {
		t.Errorf("phase = %s, expected falling", m.Phase())
	}
	if !reflect.DeepEqual(before, m.World()) {
		t.Error("ticks after the fall changed the world")
	}

	m.Reset()
	if m.Phase() != PhaseWaiting || m.Over() {
		t.Error("Reset should leave the terminal state")
	}
}

func TestInputOutsidePhaseIsIgnored(t *testing.T) {
	m, rec := newTestMachine(t)

	if m.Release() {
		t.Error("Release while waiting should be ignored")
	}

	now := stretchTo(t, m, 150)
	if m.Press() {
		t.Error("Press while stretching should be ignored")
	}

	m.Release()
	if m.Release() {
		t.Error("Release while turning should be ignored")
	}
	now += 360
	m.Tick(now)

	epoch := m.Epoch()
	if m.Press() {
		t.Error("Press while walking should be ignored")
	}
	if m.Epoch() != epoch {
		t.Error("ignored press must not start a new loop")
	}
	if m.Phase() != PhaseWalking {
		t.Errorf("phase = %s, expected walking", m.Phase())
	}
	if rec.Count(audio.CueStretch) != 1 || rec.Count(audio.CueDrop) != 1 {
		t.Errorf("ignored input played cues: %v", rec.Played)
	}
}

func TestTickWhileWaitingIsIdle(t *testing.T) {
	m, _ := newTestMachine(t)
	before := m.World()

	if m.Tick(10) || m.Tick(20) {
		t.Error("waiting machine should not schedule ticks")
	}
	if !reflect.DeepEqual(before, m.World()) {
		t.Error("ticks while waiting changed the world")
	}
}

func TestEpochAdvances(t *testing.T) {
	m, _ := newTestMachine(t)
	e0 := m.Epoch()

	m.Press()
	e1 := m.Epoch()
	if e1 == e0 {
		t.Error("Press should start a new epoch")
	}

	m.Reset()
	if m.Epoch() == e1 {
		t.Error("Reset should start a new epoch")
	}
}

func TestHeroNeverMovesBackward(t *testing.T) {
	m, _ := newTestMachine(t)
	now := stretchTo(t, m, 150)
	m.Release()

	prev := m.World().Hero.X
	for i := 0; i < 2000 && m.Running(); i++ {
		now += 7.3
		m.Tick(now)
		x := m.World().Hero.X
		if x < prev {
			t.Fatalf("hero moved backward from %v to %v", prev, x)
		}
		prev = x
	}
}

func TestScoreMatchesLandings(t *testing.T) {
	m, _ := newTestMachine(t)

	// Every gap is 120 with 60-wide platforms, so 150 lands each time
	now := 0.0
	for landing := 1; landing <= 3; landing++ {
		m.Press()
		m.Tick(now)
		now += 600
		m.Tick(now)
		m.Release()
		_, now = Drive(m, now+16, 16, 10000)

		if m.Phase() != PhaseWaiting {
			t.Fatalf("landing %d: phase = %s, expected waiting", landing, m.Phase())
		}
		if m.Score() != landing {
			t.Errorf("score = %d, expected %d", m.Score(), landing)
		}
		w := m.World()
		if len(w.Platforms) != 5+landing {
			t.Errorf("platforms = %d, expected %d", len(w.Platforms), 5+landing)
		}
		if len(w.Sticks) != landing+1 {
			t.Errorf("sticks = %d, expected %d", len(w.Sticks), landing+1)
		}
		for i, s := range w.Sticks[:len(w.Sticks)-1] {
			if s.Rotation != 90 {
				t.Errorf("frozen stick %d rotation = %v", i, s.Rotation)
			}
		}
		now += 16
	}
}

func TestDriveStopsWhenIdle(t *testing.T) {
	m, _ := newTestMachine(t)

	frames, _ := Drive(m, 0, 16, 100)
	if frames != 1 {
		t.Errorf("idle machine took %d frames, expected 1", frames)
	}

	m.Press()
	frames, last := Drive(m, 0, 16, 10)
	if frames != 10 {
		t.Errorf("stretching machine took %d frames, expected the cap 10", frames)
	}
	if last != 144 {
		t.Errorf("last timestamp = %v, expected 144", last)
	}
}

func TestPhaseString(t *testing.T) {
	names := map[Phase]string{
		PhaseWaiting:       "waiting",
		PhaseStretching:    "stretching",
		PhaseTurning:       "turning",
		PhaseWalking:       "walking",
		PhaseTransitioning: "transitioning",
		PhaseFalling:       "falling",
		Phase(42):          "unknown",
	}
	for p, want := range names {
		if p.String() != want {
			t.Errorf("Phase(%d).String() = %q, expected %q", int(p), p.String(), want)
		}
	}
}
