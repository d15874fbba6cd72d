package yuletide

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// SurfaceConfig places discrete ornaments on the canopy surface.
type SurfaceConfig struct {
	Count int `yaml:"count"`
	// Band is the normalized height band, 0 = apex, 1 = base.
	Band Range `yaml:"band"`
	// BandExponent skews samples inside Band; 1 is uniform.
	BandExponent float64 `yaml:"bandExponent"`
	// Inset pulls ornaments inside the silhouette so they nest in the canopy.
	Inset float64 `yaml:"inset"`
	Scale Range   `yaml:"scale"`
	Palette []Color `yaml:"-"`
}

// OrnamentConfig groups the surface ornament batches.
type OrnamentConfig struct {
	Baubles   SurfaceConfig `yaml:"baubles"`
	Bells     SurfaceConfig `yaml:"bells"`
	Stockings SurfaceConfig `yaml:"stockings"`
	// BellTilt is the fixed X and Z lean of every bell.
	BellTilt float64 `yaml:"bellTilt"`
	// StockingVariants is the number of fabric textures to choose from.
	StockingVariants int `yaml:"stockingVariants"`
}

// DefaultOrnamentConfig returns the ornaments used by the default scene.
func DefaultOrnamentConfig() OrnamentConfig {
	return OrnamentConfig{
		Baubles: SurfaceConfig{
			Count:        45,
			Band:         Range{0.15, 1},
			BandExponent: 0.9,
			Inset:        0.3,
			Scale:        Range{0.15, 0.30},
			Palette: []Color{
				Hex("#ef4444"), Hex("#fbbf24"), Hex("#3b82f6"), Hex("#ec4899"),
				Hex("#8b5cf6"), Hex("#10b981"), Hex("#f43f5e"),
			},
		},
		Bells: SurfaceConfig{
			Count:        20,
			Band:         Range{0.2, 0.9},
			BandExponent: 1,
			Inset:        0.2,
			Scale:        Range{1, 1},
			Palette:      []Color{Hex("#ffd700")},
		},
		Stockings: SurfaceConfig{
			Count:        18,
			Band:         Range{0.1, 0.7},
			BandExponent: 1,
			Inset:        0.2,
			Scale:        Range{0.8, 1.2},
		},
		BellTilt:         0.1,
		StockingVariants: len(DefaultFabrics),
	}
}

// surfacePoint samples a height in the band and returns a point on the
// silhouette pulled inward by the inset, together with its angle.
func surfacePoint(sil Silhouette, cfg *SurfaceConfig, rng *rand.Rand) (mgl32.Vec3, float64) {
	exp := cfg.BandExponent
	if exp <= 0 {
		exp = 1
	}
	yNorm := cfg.Band.Min + math.Pow(rng.Float64(), exp)*(cfg.Band.Max-cfg.Band.Min)
	y := sil.YAt(yNorm)
	radius := math.Max(0, sil.Radius(y)-cfg.Inset)
	angle := rng.Float64() * twoPi
	return polar(angle, radius, y), angle
}

// PlaceBaubles fills a batch of spheres nested into the canopy.
func PlaceBaubles(sil Silhouette, cfg SurfaceConfig, rng *rand.Rand) *Batch {
	b := newBatch(KindBauble, cfg.Count)
	for i := range b.Instances {
		in := &b.Instances[i]
		in.Position, _ = surfacePoint(sil, &cfg, rng)
		s := float32(cfg.Scale.Random(rng))
		in.Scale = mgl32.Vec3{s, s, s}
		in.Color = pick(rng, cfg.Palette)
	}
	b.Commit()
	return b
}

// PlaceBells fills a batch of bells. Every bell keeps the same small tilt on
// X and Z so it reads as hanging.
func PlaceBells(sil Silhouette, cfg SurfaceConfig, tilt float64, rng *rand.Rand) *Batch {
	b := newBatch(KindBell, cfg.Count)
	for i := range b.Instances {
		in := &b.Instances[i]
		in.Position, _ = surfacePoint(sil, &cfg, rng)
		in.Rotation = vec3(tilt, rng.Float64()*math.Pi, tilt)
		s := float32(cfg.Scale.Random(rng))
		in.Scale = mgl32.Vec3{s, s, s}
		in.Color = pick(rng, cfg.Palette)
	}
	b.Commit()
	return b
}

// PlaceStockings fills a batch of stockings facing away from the trunk, each
// with a randomly chosen fabric variant.
func PlaceStockings(sil Silhouette, cfg SurfaceConfig, variants int, rng *rand.Rand) *Batch {
	b := newBatch(KindStocking, cfg.Count)
	for i := range b.Instances {
		in := &b.Instances[i]
		var angle float64
		in.Position, angle = surfacePoint(sil, &cfg, rng)
		in.Rotation = vec3(0, -angle, 0)
		s := float32(cfg.Scale.Random(rng))
		in.Scale = mgl32.Vec3{s, s, s}
		if variants > 0 {
			in.Variant = rng.IntN(variants)
		}
	}
	b.Commit()
	return b
}
