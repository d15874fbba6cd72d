package yuletide

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// CanePlacement is how a candy cane sits in the scene.
type CanePlacement uint8

const (
	CaneUpright CanePlacement = iota // standing on the floor
	CaneFlat                         // lying on the floor
	CaneOnGift                       // lying on top of a gift
)

func (c CanePlacement) String() string {
	switch c {
	case CaneUpright:
		return "upright"
	case CaneFlat:
		return "flat"
	case CaneOnGift:
		return "on-gift"
	}
	return "unknown"
}

// CaneConfig controls candy cane placement.
type CaneConfig struct {
	Count   int     `yaml:"count"`
	Annulus Range   `yaml:"annulus"`
	FloorY  float64 `yaml:"floorY"`
	Scale   Range   `yaml:"scale"`
	// UprightChance and FlatChance are cumulative thresholds on one uniform
	// draw; anything above FlatChance rests on a gift.
	UprightChance float64 `yaml:"uprightChance"`
	FlatChance    float64 `yaml:"flatChance"`
	// Tilt is the maximum lean of an upright cane on X and Z.
	Tilt float64 `yaml:"tilt"`
	// FlatJitter is the maximum roll of a lying cane.
	FlatJitter float64 `yaml:"flatJitter"`
	// HostInset keeps a cane inside this fraction of its host gift footprint.
	HostInset float64 `yaml:"hostInset"`
	// Epsilon lifts every cane off its support to avoid z-fighting.
	Epsilon float64 `yaml:"epsilon"`
	// Variants is the number of stripe textures; cane i uses i % Variants.
	Variants int `yaml:"variants"`
}

// DefaultCaneConfig returns the candy canes used by the default scene.
func DefaultCaneConfig() CaneConfig {
	return CaneConfig{
		Count:         40,
		Annulus:       Range{3, 7},
		FloorY:        -6,
		Scale:         Range{0.8, 1.2},
		UprightChance: 0.3,
		FlatChance:    0.6,
		Tilt:          0.25,
		FlatJitter:    0.05,
		HostInset:     0.6,
		Epsilon:       0.005,
		Variants:      len(DefaultCaneStripes),
	}
}

// CaneTubeRadius is the radius of the unit cane tube.
const CaneTubeRadius = 0.06

// CaneCurve returns the hook-shaped centerline of the unit cane.
func CaneCurve() *Curve {
	return NewCurve([]mgl32.Vec3{
		{0, 0, 0},
		{0, 1.0, 0},
		{0.1, 1.3, 0},
		{0.35, 1.35, 0},
		{0.5, 1.1, 0},
	})
}

// CanePlan is the generated set of candy canes.
type CanePlan struct {
	Canes      *Batch
	Placements []CanePlacement
	// Hosts holds the gift index a CaneOnGift cane rests on, else -1.
	Hosts []int
}

// PlanCanes places candy canes on the floor and on gifts. A nil or empty gift
// plan turns every on-gift draw into a flat cane.
func PlanCanes(cfg CaneConfig, gifts *GiftPlan, rng *rand.Rand) *CanePlan {
	b := newBatch(KindCandyCane, cfg.Count)
	p := &CanePlan{
		Canes:      b,
		Placements: make([]CanePlacement, b.Len()),
		Hosts:      make([]int, b.Len()),
	}
	variants := max(cfg.Variants, 1)

	for i := range b.Instances {
		in := &b.Instances[i]
		scale := cfg.Scale.Random(rng)
		in.Scale = vec3(scale, scale, scale)
		in.Variant = i % variants
		lift := CaneTubeRadius*scale + cfg.Epsilon
		p.Hosts[i] = -1

		mode := CaneOnGift
		switch u := rng.Float64(); {
		case u < cfg.UprightChance:
			mode = CaneUpright
		case u < cfg.FlatChance:
			mode = CaneFlat
		}
		if mode == CaneOnGift && (gifts == nil || gifts.Len() == 0) {
			mode = CaneFlat
		}
		p.Placements[i] = mode

		switch mode {
		case CaneUpright:
			x, z := annulusPoint(cfg.Annulus, rng)
			tiltX := centered(rng, cfg.Tilt)
			tiltZ := centered(rng, cfg.Tilt)
			// A leaning tube dips its rim by r*sin(tilt); lift it clear.
			dip := CaneTubeRadius * scale * math.Sin(math.Max(math.Abs(tiltX), math.Abs(tiltZ)))
			in.Position = vec3(x, cfg.FloorY+dip+cfg.Epsilon, z)
			in.Rotation = vec3(tiltX, rng.Float64()*twoPi, tiltZ)

		case CaneFlat:
			x, z := annulusPoint(cfg.Annulus, rng)
			in.Position = vec3(x, cfg.FloorY+lift, z)
			in.Rotation = vec3(math.Pi/2, rng.Float64()*twoPi, centered(rng, cfg.FlatJitter))

		case CaneOnGift:
			host := rng.IntN(gifts.Len())
			g := &gifts.Gifts[host]
			s := g.Size()
			x := float64(g.Box.Position.X()) + centered(rng, cfg.HostInset*float64(s.X())/2)
			z := float64(g.Box.Position.Z()) + centered(rng, cfg.HostInset*float64(s.Z())/2)
			in.Position = vec3(x, float64(g.Top())+lift, z)
			in.Rotation = vec3(math.Pi/2, rng.Float64()*twoPi, centered(rng, cfg.FlatJitter))
			in.Parent = host
			p.Hosts[i] = host
		}
	}
	b.Commit()
	return p
}
