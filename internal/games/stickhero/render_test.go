package stickhero

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-stickhero/internal/core"
)

func renderTestMachine(t *testing.T) (*Machine, *Renderer, *core.Screen) {
	t.Helper()
	m, _ := newTestMachine(t)
	return m, NewRenderer(m.Config()), core.NewScreen(80, 24)
}

func TestRenderInitialFrame(t *testing.T) {
	m, r, scr := renderTestMachine(t)
	r.Render(scr, m)

	if !strings.Contains(scr.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected score", scr.Row(0))
	}
	if !strings.Contains(scr.Row(0), "SPACE to stretch") {
		t.Errorf("HUD row = %q, expected waiting hint", scr.Row(0))
	}

	// Origin platform [50,100] maps to columns 10..20, ground from row 17
	if c := scr.GetCell(15, 20); c.Rune != PlatformChar || c.Color != core.ColorWhite {
		t.Errorf("expected platform at (15,20), got %+v", c)
	}
	if c := scr.GetCell(15, 10); c.Rune != ' ' {
		t.Errorf("expected sky above the platform, got %+v", c)
	}

	// Hero [70,90] x [245,275] maps to columns 14..18, row 16
	if c := scr.GetCell(15, 16); c.Rune != HeroChar || c.Color != core.ColorRed {
		t.Errorf("expected hero at (15,16), got %+v", c)
	}
}

func TestRenderFlatStick(t *testing.T) {
	m, r, scr := renderTestMachine(t)
	m.world.Sticks[0] = Stick{X: 100, Length: 100, Rotation: 90}
	r.Render(scr, m)

	// Flat from x=100 to x=200 along the ground row 17
	if c := scr.GetCell(30, 17); c.Rune != StickFlat {
		t.Errorf("expected flat stick at (30,17), got %+v", c)
	}
	if c := scr.GetCell(50, 17); c.Rune == StickFlat {
		t.Error("stick drawn past its tip")
	}
}

func TestRenderUprightStick(t *testing.T) {
	m, r, scr := renderTestMachine(t)
	m.world.Sticks[0] = Stick{X: 100, Length: 150}
	r.Render(scr, m)

	// Column of x=100 is 21; the stick rises from the ground row
	found := 0
	for y := 1; y < 17; y++ {
		if scr.Get(21, y) == StickUpright {
			found++
		}
	}
	if found < 5 {
		t.Errorf("expected a vertical stick in column 21, found %d cells", found)
	}
}

func TestRenderCameraOffset(t *testing.T) {
	m, r, scr := renderTestMachine(t)
	m.world.Scene.CameraOffset = 375
	r.Render(scr, m)

	// Platform [400,460] shifted by 375 maps to columns 5..18
	if c := scr.GetCell(8, 20); c.Rune != PlatformChar {
		t.Errorf("expected shifted platform at (8,20), got %+v", c)
	}
}

func TestRenderGameOver(t *testing.T) {
	m, r, scr := renderTestMachine(t)
	now := stretchTo(t, m, 10)
	m.Release()
	Drive(m, now+16, 16, 10000)

	r.Render(scr, m)
	if !strings.Contains(scr.String(), "GAME OVER") {
		t.Error("expected game over box")
	}
	if !strings.Contains(scr.Row(0), "R to restart") {
		t.Errorf("HUD row = %q, expected restart hint", scr.Row(0))
	}
}

func TestRenderTinyScreen(t *testing.T) {
	m, r, _ := renderTestMachine(t)

	// Must not panic
	r.Render(core.NewScreen(1, 1), m)
	r.Render(core.NewScreen(0, 0), m)
}

func TestStickRune(t *testing.T) {
	tests := []struct {
		rotation float64
		want     rune
	}{
		{0, StickUpright},
		{45, StickRising},
		{90, StickFlat},
		{135, StickSinking},
		{180, StickUpright},
	}
	for _, tc := range tests {
		if got := stickRune(tc.rotation); got != tc.want {
			t.Errorf("stickRune(%v) = %q, expected %q", tc.rotation, got, tc.want)
		}
	}
}
