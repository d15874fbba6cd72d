package yuletide

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBuildTubeCounts(t *testing.T) {
	c := NewCurve([]mgl32.Vec3{{0, 0, 0}, {10, 0, 0}})
	tube := BuildTube(c, 10, 0.5, 8)
	if len(tube.Positions) != 11*9 || len(tube.Normals) != 99 || len(tube.UVs) != 99 {
		t.Fatalf("vertices = %d", len(tube.Positions))
	}
	if len(tube.Indices) != 10*8*6 {
		t.Fatalf("indices = %d", len(tube.Indices))
	}
	for i, idx := range tube.Indices {
		if int(idx) >= len(tube.Positions) {
			t.Fatalf("index %d = %d out of range", i, idx)
		}
	}
}

func TestBuildTubeRadius(t *testing.T) {
	c := NewCurve([]mgl32.Vec3{{0, 0, 0}, {10, 0, 0}})
	tube := BuildTube(c, 10, 0.5, 8)
	for i, p := range tube.Positions {
		d := math.Hypot(float64(p.Y()), float64(p.Z()))
		if !approx(d, 0.5, 1e-4) {
			t.Fatalf("vertex %d at distance %v from axis", i, d)
		}
		n := tube.Normals[i]
		if !approx(float64(n.Len()), 1, 1e-4) || math.Abs(float64(n.X())) > 1e-4 {
			t.Fatalf("normal %d = %v", i, n)
		}
	}
	ring := tube.Ring(3)
	if len(ring) != 9 || !vecApprox(ring[0], ring[8], 1e-6) {
		t.Errorf("ring seam not duplicated: %v vs %v", ring[0], ring[len(ring)-1])
	}
}

func TestBuildTubeNoTwist(t *testing.T) {
	c := BuildDrapedCurve(mgl32.Vec3{-4, 0, 0}, mgl32.Vec3{4, 0, 0}, 1)
	tube := BuildTube(c, 40, 0.1, 6)
	n := tube.Radial + 1
	for i := 1; i <= tube.Segments; i++ {
		a := tube.Normals[(i-1)*n]
		b := tube.Normals[i*n]
		if a.Dot(b) < 0.9 {
			t.Fatalf("frame flips between rings %d and %d: %v %v", i-1, i, a, b)
		}
	}
}

func TestBuildTubeClamps(t *testing.T) {
	c := NewCurve([]mgl32.Vec3{{0, 0, 0}, {0, 1, 0}})
	small := BuildTube(c, 0, 0.1, 2)
	if small.Segments != 1 || small.Radial != 3 {
		t.Errorf("clamped to %d segments, %d radial", small.Segments, small.Radial)
	}
	big := BuildTube(c, 100000, 0.1, 16)
	if len(big.Positions) > math.MaxUint16+1 {
		t.Errorf("vertex count %d overflows uint16 indices", len(big.Positions))
	}
}
