package yuletide

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// StarConfig controls the star on top of the tree.
type StarConfig struct {
	Points      int     `yaml:"points"`
	OuterRadius float64 `yaml:"outerRadius"`
	InnerRadius float64 `yaml:"innerRadius"`
	// BaseY is the resting height; the star bobs around it by BobAmplitude
	// at BobRate radians per second.
	BaseY        float64 `yaml:"baseY"`
	BobAmplitude float64 `yaml:"bobAmplitude"`
	BobRate      float64 `yaml:"bobRate"`
	Color        Color   `yaml:"-"`
	Glow         Color   `yaml:"-"`
}

// DefaultStarConfig returns the star used by the default scene.
func DefaultStarConfig() StarConfig {
	return StarConfig{
		Points:       5,
		OuterRadius:  0.6,
		InnerRadius:  0.25,
		BaseY:        6,
		BobAmplitude: 0.05,
		BobRate:      2,
		Color:        Hex("#ffd700"),
		Glow:         Hex("#ff8c00"),
	}
}

// Star is a flat star polygon in the local XY plane. Outline alternates
// outer and inner vertices starting at the top point; Indices triangulate it
// as a fan around the center vertex stored at Vertices[0].
type Star struct {
	Outline  []mgl32.Vec3
	Vertices []mgl32.Vec3
	Indices  []uint16
	Color    Color
	Glow     Color

	// Y is the current bobbed height, recomputed by Update.
	Y   float64
	cfg StarConfig
}

// BuildStar builds the star outline and fan mesh. Fewer than two points are
// raised to two.
func BuildStar(cfg StarConfig) *Star {
	n := max(cfg.Points, 2) * 2
	s := &Star{
		Outline:  make([]mgl32.Vec3, n),
		Vertices: make([]mgl32.Vec3, n+1),
		Indices:  make([]uint16, n*3),
		Color:    cfg.Color,
		Glow:     cfg.Glow,
		Y:        cfg.BaseY,
		cfg:      cfg,
	}
	for i := range s.Outline {
		a := float64(i) * twoPi / float64(n)
		r := cfg.OuterRadius
		if i%2 == 1 {
			r = cfg.InnerRadius
		}
		s.Outline[i] = vec3(math.Sin(a)*r, math.Cos(a)*r, 0)
		s.Vertices[i+1] = s.Outline[i]
	}
	for i := 0; i < n; i++ {
		s.Indices[i*3] = 0
		s.Indices[i*3+1] = uint16(i + 1)
		s.Indices[i*3+2] = uint16((i+1)%n + 1)
	}
	return s
}

// Update sets the bobbed height for the given elapsed time. The bob is time
// based and does not scale with the animation speed.
func (s *Star) Update(elapsed float64) {
	s.Y = s.cfg.BaseY + math.Sin(elapsed*s.cfg.BobRate)*s.cfg.BobAmplitude
}
