package yuletide

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// ConfettiConfig controls the flat flakes scattered on the floor.
type ConfettiConfig struct {
	Count   int     `yaml:"count"`
	Annulus Range   `yaml:"annulus"`
	FloorY  float64 `yaml:"floorY"`
	// Lift raises every flake off the floor; LiftJitter adds a per-flake
	// random amount on top so coplanar flakes do not flicker.
	Lift       float64 `yaml:"lift"`
	LiftJitter float64 `yaml:"liftJitter"`
	Scale      Range   `yaml:"scale"`
	Palette    []Color `yaml:"-"`
}

// DefaultConfettiConfig returns the confetti used by the default scene.
func DefaultConfettiConfig() ConfettiConfig {
	return ConfettiConfig{
		Count:      400,
		Annulus:    Range{1.5, 9},
		FloorY:     -6,
		Lift:       0.001,
		LiftJitter: 0.0008,
		Scale:      Range{0.04, 0.09},
		Palette: []Color{
			Hex("#ef4444"), Hex("#fbbf24"), Hex("#22c55e"),
			Hex("#3b82f6"), Hex("#ec4899"), Hex("#ffffff"),
		},
	}
}

// PlaceConfetti fills a batch of unit quads lying flat on the floor.
func PlaceConfetti(cfg ConfettiConfig, rng *rand.Rand) *Batch {
	b := newBatch(KindConfetti, cfg.Count)
	for i := range b.Instances {
		in := &b.Instances[i]
		x, z := annulusPoint(cfg.Annulus, rng)
		in.Position = vec3(x, cfg.FloorY+cfg.Lift+rng.Float64()*cfg.LiftJitter, z)
		in.Rotation = vec3(-math.Pi/2, 0, rng.Float64()*twoPi)
		s := float32(cfg.Scale.Random(rng))
		in.Scale = mgl32.Vec3{s, s, s}
		in.Color = pick(rng, cfg.Palette)
	}
	b.Commit()
	return b
}

// RibbonShape is the parametric curve a floor ribbon follows.
type RibbonShape uint8

const (
	RibbonSpiral RibbonShape = iota // flat curl widening outward
	RibbonSnake                     // sinusoidal wiggle
)

func (s RibbonShape) String() string {
	switch s {
	case RibbonSpiral:
		return "spiral"
	case RibbonSnake:
		return "snake"
	}
	return "unknown"
}

// FloorRibbonConfig controls the curled ribbon strips on the floor.
type FloorRibbonConfig struct {
	Count   int     `yaml:"count"`
	Annulus Range   `yaml:"annulus"`
	FloorY  float64 `yaml:"floorY"`
	// Samples is the number of points each ribbon curve is fit through.
	Samples    int     `yaml:"samples"`
	TubeRadius float64 `yaml:"tubeRadius"`
	Scale      Range   `yaml:"scale"`
	// SpiralChance is the probability a ribbon is a spiral rather than a snake.
	SpiralChance float64 `yaml:"spiralChance"`
	Epsilon      float64 `yaml:"epsilon"`
	Palette      []Color `yaml:"-"`
}

// DefaultFloorRibbonConfig returns the floor ribbons used by the default scene.
func DefaultFloorRibbonConfig() FloorRibbonConfig {
	return FloorRibbonConfig{
		Count:        14,
		Annulus:      Range{2.5, 8},
		FloorY:       -6,
		Samples:      12,
		TubeRadius:   0.025,
		Scale:        Range{0.8, 1.3},
		SpiralChance: 0.5,
		Epsilon:      0.003,
		Palette:      []Color{Hex("#ffd700"), Hex("#ef4444"), Hex("#c0c0c0"), Hex("#22c55e")},
	}
}

// FloorRibbons is the generated set of floor ribbons. Curves[i] is the local
// centerline of Batch.Instances[i], lying in the y = 0 plane.
type FloorRibbons struct {
	Batch  *Batch
	Curves []*Curve
	Shapes []RibbonShape
}

// PlanFloorRibbons builds each ribbon's centerline and places it on the floor.
// The vertical offset is the tube radius times the ribbon's scale, so the tube
// rests on the floor instead of sinking into it.
func PlanFloorRibbons(cfg FloorRibbonConfig, rng *rand.Rand) *FloorRibbons {
	b := newBatch(KindFloorRibbon, cfg.Count)
	r := &FloorRibbons{
		Batch:  b,
		Curves: make([]*Curve, b.Len()),
		Shapes: make([]RibbonShape, b.Len()),
	}
	samples := max(cfg.Samples, 2)

	for i := range b.Instances {
		shape := RibbonSnake
		if rng.Float64() < cfg.SpiralChance {
			shape = RibbonSpiral
		}
		r.Shapes[i] = shape
		r.Curves[i] = NewCurve(ribbonPoints(shape, samples, rng))

		in := &b.Instances[i]
		s := cfg.Scale.Random(rng)
		x, z := annulusPoint(cfg.Annulus, rng)
		in.Position = vec3(x, cfg.FloorY+cfg.TubeRadius*s+cfg.Epsilon, z)
		in.Rotation = vec3(0, rng.Float64()*twoPi, 0)
		in.Scale = vec3(s, s, s)
		in.Color = pick(rng, cfg.Palette)
	}
	b.Commit()
	return r
}

// ribbonPoints samples n points of the given shape in the y = 0 plane.
func ribbonPoints(shape RibbonShape, n int, rng *rand.Rand) []mgl32.Vec3 {
	pts := make([]mgl32.Vec3, n)
	switch shape {
	case RibbonSpiral:
		turns := 1.5 + rng.Float64()
		inner := 0.05
		outer := 0.25 + rng.Float64()*0.15
		for i := range pts {
			t := float64(i) / float64(n-1)
			a := t * turns * twoPi
			rad := lerp(inner, outer, t)
			pts[i] = vec3(math.Cos(a)*rad, 0, math.Sin(a)*rad)
		}
	default:
		length := 0.8 + rng.Float64()*0.6
		waves := 1.5 + rng.Float64()*1.5
		amp := 0.06 + rng.Float64()*0.06
		for i := range pts {
			t := float64(i) / float64(n-1)
			pts[i] = vec3(t*length-length/2, 0, math.Sin(t*waves*twoPi)*amp)
		}
	}
	return pts
}
