package yuletide

import (
	"math"
	"testing"
)

func TestBuildTinselSpiral(t *testing.T) {
	cfg := DefaultTinselConfig()
	tin := BuildTinsel(testSilhouette, cfg)

	pts := tin.Curve.ControlPoints()
	if len(pts) != cfg.Loops*cfg.PointsPerLoop+1 {
		t.Fatalf("control points = %d", len(pts))
	}
	if !approx(float64(pts[0].Y()), 5, 1e-5) || !approx(float64(pts[len(pts)-1].Y()), -6, 1e-5) {
		t.Errorf("garland spans %v to %v, want 5 to -6", pts[0].Y(), pts[len(pts)-1].Y())
	}
	for i, p := range pts {
		r := math.Hypot(float64(p.X()), float64(p.Z()))
		want := testSilhouette.Radius(float64(p.Y())) + cfg.Standoff
		if !approx(r, want, 1e-3) {
			t.Fatalf("point %d radius %v, want %v", i, r, want)
		}
	}
	if tin.Tube.Segments != cfg.Segments || tin.Tube.Radius != cfg.TubeRadius {
		t.Errorf("tube %d segments radius %v", tin.Tube.Segments, tin.Tube.Radius)
	}
	if tin.Color != Hex("#ffd700") {
		t.Errorf("tinsel color %+v", tin.Color)
	}
}

func TestBuildTinselNoLoops(t *testing.T) {
	cfg := DefaultTinselConfig()
	cfg.Loops = 0
	tin := BuildTinsel(testSilhouette, cfg)
	if n := len(tin.Curve.ControlPoints()); n != 1 {
		t.Errorf("control points = %d, want 1", n)
	}
}
