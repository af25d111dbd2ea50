package stickhero

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-stickhero/internal/config"
	"github.com/vovakirdan/tui-stickhero/internal/core"
)

// Visual characters for rendering
const (
	PlatformChar = '█'
	HeroChar     = '█'
	HeroHeadChar = '▄'
	StickUpright = '│'
	StickFlat    = '─'
	StickRising  = '╱'
	StickSinking = '╲'
)

// hudRows is the number of rows reserved above the play field.
const hudRows = 1

// Renderer paints the world into a screen buffer. It maps canvas units to
// cells by scaling each axis independently, so the whole canvas always fits.
// It only reads state.
type Renderer struct {
	cfg config.StickHeroConfig
}

// NewRenderer creates a renderer for the given canvas.
func NewRenderer(cfg config.StickHeroConfig) *Renderer {
	return &Renderer{cfg: cfg}
}

// viewport converts canvas coordinates to screen cells.
type viewport struct {
	sx, sy float64 // Cells per canvas unit
	offset float64 // Camera offset in canvas units
}

func (v viewport) col(x float64) int {
	return int(math.Floor((x - v.offset) * v.sx))
}

func (v viewport) row(y float64) int {
	return hudRows + int(math.Floor(y*v.sy))
}

// cellRect converts a canvas rectangle to at least one screen cell.
func (v viewport) cellRect(x0, y0, x1, y1 float64) core.Rect {
	c0, c1 := v.col(x0), v.col(x1)
	r0, r1 := v.row(y0), v.row(y1)
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}
	return core.NewRect(c0, r0, c1-c0, r1-r0)
}

// Render draws the full frame: platforms, hero, sticks, HUD and overlays.
func (r *Renderer) Render(dst *core.Screen, m *Machine) {
	dst.Clear()

	w := m.view()
	field := dst.Height() - hudRows
	if dst.Width() <= 0 || field <= 0 {
		return
	}

	vp := viewport{
		sx:     float64(dst.Width()) / r.cfg.Canvas.Width,
		sy:     float64(field) / r.cfg.Canvas.Height,
		offset: w.Scene.CameraOffset,
	}
	ground := r.cfg.Canvas.Height - r.cfg.Canvas.PlatformHeight

	for _, p := range w.Platforms {
		rect := vp.cellRect(p.X, ground, p.Right(), r.cfg.Canvas.Height)
		dst.DrawRect(rect, PlatformChar, core.ColorWhite)
	}

	r.drawHero(dst, vp, w.Hero, ground)

	for i, s := range w.Sticks {
		color := core.ColorYellow
		if i == len(w.Sticks)-1 {
			color = core.ColorBrightYellow
		}
		r.drawStick(dst, vp, s, ground, color)
	}

	r.drawHUD(dst, m)

	if m.Over() {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", m.Score()))
	}
}

// drawHero draws the hero as a rectangle standing on the ground, lowered by Y.
func (r *Renderer) drawHero(dst *core.Screen, vp viewport, h Hero, ground float64) {
	bottom := ground + h.Y
	top := bottom - r.cfg.Hero.Height
	body := vp.cellRect(h.X, top, h.X+r.cfg.Hero.Width, bottom)
	dst.DrawRect(body, HeroChar, core.ColorRed)

	// Head sits on the body's top row when there is room for it
	if body.H > 1 {
		dst.DrawHLine(body.X, body.Y, body.W, HeroHeadChar, core.ColorBrightRed)
	}
}

// drawStick samples the rotated segment from its base and plots each cell once.
func (r *Renderer) drawStick(dst *core.Screen, vp viewport, s Stick, ground float64, color core.Color) {
	if s.Length <= 0 {
		return
	}

	theta := s.Rotation * math.Pi / 180
	dx, dy := math.Sin(theta), -math.Cos(theta)
	ch := stickRune(s.Rotation)

	// Half a cell on the finer axis keeps the line gap-free
	step := 0.5 / math.Max(vp.sx, vp.sy)
	for d := 0.0; d <= s.Length; d += step {
		x := s.X + d*dx
		y := ground + d*dy
		dst.SetColored(vp.col(x), vp.row(y), ch, color)
	}
}

// stickRune picks a line character for a rotation in degrees.
func stickRune(rotation float64) rune {
	switch {
	case rotation < 22.5 || rotation >= 157.5:
		return StickUpright
	case rotation < 67.5:
		return StickRising
	case rotation < 112.5:
		return StickFlat
	default:
		return StickSinking
	}
}

// drawHUD draws the score and the control hint for the current phase.
func (r *Renderer) drawHUD(dst *core.Screen, m *Machine) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", m.Score()), core.ColorBrightWhite)

	var hint string
	switch m.Phase() {
	case PhaseWaiting:
		hint = "SPACE to stretch"
	case PhaseStretching:
		hint = "SPACE to drop"
	case PhaseFalling:
		hint = "R to restart"
	}
	if hint != "" {
		dst.DrawTextColored(dst.Width()-len(hint)-1, 0, hint, core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawTextCentered(boxY+3, subtitle)
}
