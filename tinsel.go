package yuletide

import "github.com/go-gl/mathgl/mgl32"

// TinselConfig controls the garland spiraling down the tree.
type TinselConfig struct {
	Loops         int     `yaml:"loops"`
	PointsPerLoop int     `yaml:"pointsPerLoop"`
	// TopOffset is how far below the apex the garland starts.
	TopOffset float64 `yaml:"topOffset"`
	// Standoff is added to the silhouette radius so the garland wraps the
	// canopy surface.
	Standoff     float64 `yaml:"standoff"`
	Segments     int     `yaml:"segments"`
	TubeRadius   float32 `yaml:"tubeRadius"`
	RadialDetail int     `yaml:"radialDetail"`
	Color        Color   `yaml:"-"`
}

// DefaultTinselConfig returns the garland used by the default scene.
func DefaultTinselConfig() TinselConfig {
	return TinselConfig{
		Loops:         9,
		PointsPerLoop: 40,
		TopOffset:     1.0,
		Standoff:      0.2,
		Segments:      400,
		TubeRadius:    0.08,
		RadialDetail:  16,
		Color:         Hex("#ffd700"),
	}
}

// Tinsel is the garland centerline and its swept tube.
type Tinsel struct {
	Curve *Curve
	Tube  *Tube
	Color Color
}

// BuildTinsel spirals a garland from just below the apex to the base of sil.
// Zero loops or points yield a degenerate single-point curve.
func BuildTinsel(sil Silhouette, cfg TinselConfig) *Tinsel {
	total := max(cfg.Loops, 0) * max(cfg.PointsPerLoop, 0)
	startY := sil.Top() - cfg.TopOffset
	endY := -sil.Height / 2
	span := startY - endY

	pts := make([]mgl32.Vec3, total+1)
	for i := range pts {
		t := 0.0
		if total > 0 {
			t = float64(i) / float64(total)
		}
		y := startY - t*span
		r := sil.Radius(y) + cfg.Standoff
		pts[i] = polar(t*float64(cfg.Loops)*twoPi, r, y)
	}
	c := NewCurve(pts)
	return &Tinsel{
		Curve: c,
		Tube:  BuildTube(c, cfg.Segments, cfg.TubeRadius, cfg.RadialDetail),
		Color: cfg.Color,
	}
}
