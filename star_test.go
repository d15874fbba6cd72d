package yuletide

import (
	"math"
	"testing"
)

func TestBuildStarOutline(t *testing.T) {
	cfg := DefaultStarConfig()
	s := BuildStar(cfg)
	if len(s.Outline) != 10 || len(s.Vertices) != 11 || len(s.Indices) != 30 {
		t.Fatalf("outline %d vertices %d indices %d", len(s.Outline), len(s.Vertices), len(s.Indices))
	}
	for i, p := range s.Outline {
		want := cfg.OuterRadius
		if i%2 == 1 {
			want = cfg.InnerRadius
		}
		if r := math.Hypot(float64(p.X()), float64(p.Y())); !approx(r, want, 1e-5) {
			t.Errorf("vertex %d radius %v, want %v", i, r, want)
		}
		if p.Z() != 0 {
			t.Errorf("vertex %d off plane", i)
		}
	}
	if !approx(float64(s.Outline[0].Y()), cfg.OuterRadius, 1e-6) {
		t.Errorf("first point %v should be the top", s.Outline[0])
	}
	for i, idx := range s.Indices {
		if int(idx) >= len(s.Vertices) {
			t.Fatalf("index %d = %d", i, idx)
		}
	}
}

func TestStarBob(t *testing.T) {
	cfg := DefaultStarConfig()
	s := BuildStar(cfg)
	if s.Y != cfg.BaseY {
		t.Errorf("initial Y = %v", s.Y)
	}
	s.Update(math.Pi / 4) // sin(pi/2) = 1 at rate 2
	if !approx(s.Y, cfg.BaseY+cfg.BobAmplitude, 1e-9) {
		t.Errorf("Y = %v, want crest", s.Y)
	}
	for e := 0.0; e < 20; e += 0.1 {
		s.Update(e)
		if math.Abs(s.Y-cfg.BaseY) > cfg.BobAmplitude+1e-12 {
			t.Fatalf("bob at %v = %v", e, s.Y)
		}
	}
}

func TestBuildStarMinimumPoints(t *testing.T) {
	cfg := DefaultStarConfig()
	cfg.Points = 0
	if s := BuildStar(cfg); len(s.Outline) != 4 {
		t.Errorf("outline = %d, want 4", len(s.Outline))
	}
}
