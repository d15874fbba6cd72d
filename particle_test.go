package yuletide

import (
	"math"
	"testing"
)

func TestGenerateCanopyEmpty(t *testing.T) {
	cfg := DefaultCanopyConfig()
	cfg.Count = 0
	f := GenerateCanopy(cfg, testRNG())
	if f.Len() != 0 || len(f.Positions) != 0 || len(f.Colors) != 0 {
		t.Errorf("empty canopy has %d points, %d floats", f.Len(), len(f.Positions))
	}
	f.Shimmer(1, 0.15) // must not panic
}

func TestGenerateCanopyInsideSilhouette(t *testing.T) {
	cfg := DefaultCanopyConfig()
	cfg.Count = 1000
	f := GenerateCanopy(cfg, testRNG())
	if f.Len() != 1000 || len(f.Positions) != 3000 || len(f.Sizes) != 1000 {
		t.Fatalf("buffer sizes: %d points, %d positions", f.Len(), len(f.Positions))
	}
	for i := 0; i < f.Len(); i++ {
		x, y, z := f.Position(i)
		if y < -6-1e-4 || y > 6+1e-4 {
			t.Fatalf("point %d y = %v outside tree height", i, y)
		}
		r := math.Hypot(float64(x), float64(z))
		if limit := RadiusAt(float64(y), 12, 4.5); r > limit+1e-3 {
			t.Fatalf("point %d radius %v exceeds silhouette %v", i, r, limit)
		}
		for k := 0; k < 3; k++ {
			if c := f.Colors[i*3+k]; c < 0 || c > 1 {
				t.Fatalf("point %d color %v out of range", i, c)
			}
		}
		if f.BaseSizes[i] <= 0 {
			t.Fatalf("point %d size %v", i, f.BaseSizes[i])
		}
	}
	if f.BlendMode != BlendNormal {
		t.Errorf("canopy blend = %v", f.BlendMode)
	}
}

func TestGenerateCanopyDeterministic(t *testing.T) {
	cfg := DefaultCanopyConfig()
	cfg.Count = 200
	a := GenerateCanopy(cfg, testRNG())
	b := GenerateCanopy(cfg, testRNG())
	for i := range a.Positions {
		if a.Positions[i] != b.Positions[i] {
			t.Fatalf("position %d differs: %v vs %v", i, a.Positions[i], b.Positions[i])
		}
	}
}

func TestShimmerKeepsBaseSizes(t *testing.T) {
	cfg := DefaultCanopyConfig()
	cfg.Count = 300
	f := GenerateCanopy(cfg, testRNG())
	base := append([]float32(nil), f.BaseSizes...)

	f.ClearDirty()
	f.Shimmer(12.5, 0.15)
	if !f.SizesDirty() {
		t.Error("Shimmer did not mark sizes dirty")
	}
	for i := range f.Sizes {
		if f.BaseSizes[i] != base[i] {
			t.Fatalf("base size %d mutated", i)
		}
		lo, hi := base[i]*0.85-1e-6, base[i]*1.15+1e-6
		if f.Sizes[i] < lo || f.Sizes[i] > hi {
			t.Fatalf("size %d = %v outside [%v,%v]", i, f.Sizes[i], lo, hi)
		}
	}
}

func TestGenerateLightsOnSurface(t *testing.T) {
	cfg := DefaultLightConfig()
	f := GenerateLights(cfg, testRNG())
	if f.Len() != 500 {
		t.Fatalf("lights = %d, want 500", f.Len())
	}
	if f.BlendMode != BlendAdd {
		t.Errorf("lights blend = %v, want additive", f.BlendMode)
	}
	for i := 0; i < f.Len(); i++ {
		x, y, z := f.Position(i)
		r := math.Hypot(float64(x), float64(z))
		surface := RadiusAt(float64(y), cfg.Height, cfg.MaxRadius)
		if r < surface+0.1-1e-3 || r > surface+0.5+1e-3 {
			t.Fatalf("light %d radius %v, surface %v", i, r, surface)
		}
	}
}

func TestBlinkTwoLevels(t *testing.T) {
	cfg := DefaultLightConfig()
	cfg.Count = 100
	f := GenerateLights(cfg, testRNG())
	f.Blink(3.7, cfg.Dim)
	for i := range f.Sizes {
		on := f.BaseSizes[i]
		off := float32(float64(f.BaseSizes[i]) * cfg.Dim)
		if f.Sizes[i] != on && f.Sizes[i] != off {
			t.Fatalf("light %d size %v is neither %v nor %v", i, f.Sizes[i], on, off)
		}
	}
}
