package stickhero

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-stickhero/internal/config"
)

func TestGeneratorRanges(t *testing.T) {
	cfg := config.DefaultStickHeroConfig().Platforms
	prev := Platform{X: 50, Width: 50}

	draws := []float64{0, 0.25, 0.5, 0.75, 0.999999}
	for _, gapDraw := range draws {
		for _, widthDraw := range draws {
			gen := NewGenerator(cfg, NewSequenceSource(gapDraw, widthDraw))
			p := gen.Next(prev)

			gap := p.X - prev.Right()
			if gap < cfg.MinGap || gap > cfg.MaxGap {
				t.Errorf("draws (%v, %v): gap %v outside [%v, %v]", gapDraw, widthDraw, gap, cfg.MinGap, cfg.MaxGap)
			}
			if p.Width < cfg.MinWidth || p.Width > cfg.MaxWidth {
				t.Errorf("draws (%v, %v): width %v outside [%v, %v]", gapDraw, widthDraw, p.Width, cfg.MinWidth, cfg.MaxWidth)
			}
		}
	}
}

func TestGeneratorExactLayout(t *testing.T) {
	cfg := config.DefaultStickHeroConfig().Platforms
	gen := NewGenerator(cfg, NewSequenceSource(0.5, 0.25))

	p := gen.Next(Platform{X: 50, Width: 50})

	// gap = 40 + 0.5*160 = 120, width = 20 + 0.25*80 = 40
	if p.X != 220 {
		t.Errorf("X = %v, expected 220", p.X)
	}
	if p.Width != 40 {
		t.Errorf("Width = %v, expected 40", p.Width)
	}
}

func TestGeneratorClampsBadDraws(t *testing.T) {
	cfg := config.DefaultStickHeroConfig().Platforms
	gen := NewGenerator(cfg, NewSequenceSource(-3, 7))

	p := gen.Next(Platform{X: 0, Width: 10})
	if p.X != 10+cfg.MinGap {
		t.Errorf("negative draw should clamp to min gap, X = %v", p.X)
	}
	if p.Width != cfg.MaxWidth {
		t.Errorf("draw above 1 should clamp to max width, Width = %v", p.Width)
	}
}

func TestGeneratorNeverOverlaps(t *testing.T) {
	cfg := config.DefaultStickHeroConfig().Platforms
	gen := NewGenerator(cfg, rand.New(rand.NewSource(99)))

	prev := Platform{X: 50, Width: 50}
	for i := 0; i < 500; i++ {
		next := gen.Next(prev)
		if next.X < prev.Right() {
			t.Fatalf("platform %d overlaps previous: %+v vs %+v", i, next, prev)
		}
		if next.X-prev.Right() < cfg.MinGap {
			t.Fatalf("platform %d gap %v below minimum", i, next.X-prev.Right())
		}
		prev = next
	}
}

func TestSequenceSourceCycles(t *testing.T) {
	s := NewSequenceSource(0.1, 0.2)
	got := []float64{s.Float64(), s.Float64(), s.Float64()}
	if got[0] != 0.1 || got[1] != 0.2 || got[2] != 0.1 {
		t.Errorf("sequence = %v, expected [0.1 0.2 0.1]", got)
	}

	if NewSequenceSource().Float64() != 0 {
		t.Error("empty sequence should yield 0")
	}
}
