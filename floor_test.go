package yuletide

import (
	"math"
	"testing"
)

func TestPlaceConfettiFlat(t *testing.T) {
	cfg := DefaultConfettiConfig()
	b := PlaceConfetti(cfg, testRNG())
	if b.Len() != 400 || b.Kind != KindConfetti {
		t.Fatalf("confetti = %d", b.Len())
	}
	for i, in := range b.Instances {
		y := float64(in.Position.Y())
		if y < cfg.FloorY+cfg.Lift-1e-5 || y > cfg.FloorY+cfg.Lift+cfg.LiftJitter+1e-5 {
			t.Fatalf("flake %d y = %v", i, y)
		}
		if in.Rotation.X() != float32(-math.Pi/2) || in.Rotation.Y() != 0 {
			t.Fatalf("flake %d not flat: %v", i, in.Rotation)
		}
		r := math.Hypot(float64(in.Position.X()), float64(in.Position.Z()))
		if r < cfg.Annulus.Min-1e-4 || r > cfg.Annulus.Max+1e-4 {
			t.Fatalf("flake %d at radius %v", i, r)
		}
	}
}

func TestPlanFloorRibbonsRestOnFloor(t *testing.T) {
	cfg := DefaultFloorRibbonConfig()
	r := PlanFloorRibbons(cfg, testRNG())
	if r.Batch.Len() != 14 || len(r.Curves) != 14 || len(r.Shapes) != 14 {
		t.Fatalf("ribbons = %d", r.Batch.Len())
	}
	for i, in := range r.Batch.Instances {
		s := float64(in.Scale.X())
		want := cfg.FloorY + cfg.TubeRadius*s + cfg.Epsilon
		if !approx(float64(in.Position.Y()), want, 1e-5) {
			t.Errorf("ribbon %d y = %v, want %v", i, in.Position.Y(), want)
		}
		for _, p := range r.Curves[i].Samples(16) {
			if math.Abs(float64(p.Y())) > 1e-6 {
				t.Fatalf("ribbon %d curve leaves the floor plane: %v", i, p)
			}
		}
	}
}

func TestPlanFloorRibbonsShapes(t *testing.T) {
	cfg := DefaultFloorRibbonConfig()
	cfg.SpiralChance = 1
	for _, s := range PlanFloorRibbons(cfg, testRNG()).Shapes {
		if s != RibbonSpiral {
			t.Fatalf("shape %v, want spiral", s)
		}
	}
	cfg.SpiralChance = 0
	for _, s := range PlanFloorRibbons(cfg, testRNG()).Shapes {
		if s != RibbonSnake {
			t.Fatalf("shape %v, want snake", s)
		}
	}
}

func TestRibbonPointsSpiralWidens(t *testing.T) {
	pts := ribbonPoints(RibbonSpiral, 12, testRNG())
	first := math.Hypot(float64(pts[0].X()), float64(pts[0].Z()))
	last := math.Hypot(float64(pts[11].X()), float64(pts[11].Z()))
	if last <= first {
		t.Errorf("spiral radius %v -> %v does not widen", first, last)
	}
}
