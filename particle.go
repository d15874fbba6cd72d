package yuletide

import (
	"math"
	"math/rand/v2"
)

// PointField is a fixed-size point cloud stored as flat buffers the renderer
// can upload directly. Buffers are allocated once by the generator and only
// mutated in place afterwards.
type PointField struct {
	// Positions holds x, y, z per point.
	Positions []float32
	// Colors holds r, g, b per point.
	Colors []float32
	// BaseSizes is the generation-time size of each point. Never mutated.
	BaseSizes []float32
	// Sizes is the displayed size, recomputed every frame.
	Sizes []float32
	// Speeds and Offsets form each point's animation Phase.
	Speeds  []float32
	Offsets []float32

	// BlendMode tells the renderer how to composite the points.
	BlendMode BlendMode

	sizesDirty     bool
	positionsDirty bool
}

func newPointField(count int) *PointField {
	if count < 0 {
		count = 0
	}
	return &PointField{
		Positions: make([]float32, count*3),
		Colors:    make([]float32, count*3),
		BaseSizes: make([]float32, count),
		Sizes:     make([]float32, count),
		Speeds:    make([]float32, count),
		Offsets:   make([]float32, count),
	}
}

// Len returns the number of points.
func (f *PointField) Len() int {
	return len(f.BaseSizes)
}

// Position returns the i-th point position.
func (f *PointField) Position(i int) (x, y, z float32) {
	return f.Positions[i*3], f.Positions[i*3+1], f.Positions[i*3+2]
}

// Phase returns the i-th point's animation phase.
func (f *PointField) Phase(i int) Phase {
	return Phase{Speed: float64(f.Speeds[i]), Offset: float64(f.Offsets[i])}
}

// SizesDirty reports whether Sizes changed since the last ClearDirty.
func (f *PointField) SizesDirty() bool { return f.sizesDirty }

// PositionsDirty reports whether Positions changed since the last ClearDirty.
func (f *PointField) PositionsDirty() bool { return f.positionsDirty }

// ClearDirty resets the dirty flags after the renderer re-uploads buffers.
func (f *PointField) ClearDirty() {
	f.sizesDirty = false
	f.positionsDirty = false
}

func (f *PointField) set(i int, x, y, z float64, c Color, size float64, p Phase) {
	f.Positions[i*3] = float32(x)
	f.Positions[i*3+1] = float32(y)
	f.Positions[i*3+2] = float32(z)
	f.Colors[i*3] = float32(c.R)
	f.Colors[i*3+1] = float32(c.G)
	f.Colors[i*3+2] = float32(c.B)
	f.BaseSizes[i] = float32(size)
	f.Sizes[i] = float32(size)
	f.Speeds[i] = float32(p.Speed)
	f.Offsets[i] = float32(p.Offset)
}

// Shimmer recomputes every displayed size as a smooth pulse around its base.
func (f *PointField) Shimmer(elapsed, amplitude float64) {
	for i := range f.Sizes {
		f.Sizes[i] = float32(ShimmerSize(float64(f.BaseSizes[i]), elapsed, f.Phase(i), amplitude))
	}
	f.sizesDirty = true
}

// Blink recomputes every displayed size with the hard on/off policy.
func (f *PointField) Blink(elapsed, dim float64) {
	for i := range f.Sizes {
		f.Sizes[i] = float32(BlinkSize(float64(f.BaseSizes[i]), elapsed, f.Phase(i), dim))
	}
	f.sizesDirty = true
}

// --- Canopy ---

// CanopyConfig controls the dense point cloud forming the tree volume.
type CanopyConfig struct {
	Count     int     `yaml:"count"`
	Height    float64 `yaml:"height"`
	MaxRadius float64 `yaml:"maxRadius"`
	// DensityExponent skews sampled heights; < 1 packs points toward the base.
	DensityExponent float64 `yaml:"densityExponent"`
	// RadialExponent skews the radial fraction; < 1 biases toward the surface.
	RadialExponent float64 `yaml:"radialExponent"`
	// Helical streaks: angle += y*SpiralFactor + (i%SpiralModulo)*SpiralStep.
	SpiralFactor float64 `yaml:"spiralFactor"`
	SpiralModulo int     `yaml:"spiralModulo"`
	SpiralStep   float64 `yaml:"spiralStep"`
	BaseSize     Range   `yaml:"baseSize"`
	Speed        Range   `yaml:"speed"`
	Offset       Range   `yaml:"offset"`
	// Color variance.
	MixJitter   float64 `yaml:"mixJitter"`
	HeightTint  float64 `yaml:"heightTint"`
	HueJitter   float64 `yaml:"hueJitter"`
	LightJitter float64 `yaml:"lightJitter"`
	// ShimmerAmplitude is the fractional size pulse applied every frame.
	ShimmerAmplitude float64 `yaml:"shimmerAmplitude"`
	Palette          CanopyPalette `yaml:"-"`
}

// DefaultCanopyConfig returns the canopy used by the default scene.
func DefaultCanopyConfig() CanopyConfig {
	return CanopyConfig{
		Count:            25000,
		Height:           12,
		MaxRadius:        4.5,
		DensityExponent:  0.45,
		RadialExponent:   0.4,
		SpiralFactor:     2.5,
		SpiralModulo:     8,
		SpiralStep:       0.5,
		BaseSize:         Range{0.05, 0.20},
		Speed:            Range{0.1, 0.3},
		Offset:           Range{0, twoPi},
		MixJitter:        0.1,
		HeightTint:       0.15,
		HueJitter:        0.03,
		LightJitter:      0.08,
		ShimmerAmplitude: 0.15,
		Palette:          DefaultCanopyPalette,
	}
}

// Silhouette returns the cone the canopy fills.
func (c CanopyConfig) Silhouette() Silhouette {
	return Silhouette{Height: c.Height, MaxRadius: c.MaxRadius}
}

// GenerateCanopy builds the canopy field. Count 0 yields empty buffers.
func GenerateCanopy(cfg CanopyConfig, rng *rand.Rand) *PointField {
	f := newPointField(cfg.Count)
	f.BlendMode = BlendNormal
	sil := cfg.Silhouette()
	mod := cfg.SpiralModulo
	if mod <= 0 {
		mod = 1
	}

	for i := 0; i < f.Len(); i++ {
		y := sil.YAt(math.Pow(rng.Float64(), cfg.DensityExponent))
		rAt := sil.Radius(y)

		rNorm := math.Pow(rng.Float64(), cfg.RadialExponent)
		r := rNorm * rAt

		angle := rng.Float64()*twoPi + y*cfg.SpiralFactor + float64(i%mod)*cfg.SpiralStep
		x := math.Cos(angle) * r
		z := math.Sin(angle) * r

		c := canopyColor(cfg.Palette, rNorm, sil.HeightFraction(y), &cfg, rng)
		size := cfg.BaseSize.Random(rng) * (1.3 - rNorm*0.5)
		p := Phase{Speed: cfg.Speed.Random(rng), Offset: cfg.Offset.Random(rng)}
		f.set(i, x, y, z, c, size, p)
	}
	return f
}

// --- Twinkle lights ---

// LightConfig controls the sparse surface-hugging twinkle lights.
type LightConfig struct {
	Count     int     `yaml:"count"`
	Height    float64 `yaml:"height"`
	MaxRadius float64 `yaml:"maxRadius"`
	// DensityExponent skews sampled heights toward the upper canopy.
	DensityExponent float64 `yaml:"densityExponent"`
	// Outward is added to the silhouette radius so lights sit on the surface.
	Outward Range `yaml:"outward"`
	Size    Range `yaml:"size"`
	Speed   Range `yaml:"speed"`
	Offset  Range `yaml:"offset"`
	// Dim is the fraction of the base size shown while a light is off.
	Dim     float64 `yaml:"dim"`
	Palette []Color `yaml:"-"`
}

// DefaultLightPalette is the saturated twinkle palette.
var DefaultLightPalette = []Color{
	Hex("#ff0000"), Hex("#00ffff"), Hex("#ffff00"), Hex("#ff00ff"), Hex("#ffffff"),
}

// DefaultLightConfig returns the twinkle lights used by the default scene.
func DefaultLightConfig() LightConfig {
	return LightConfig{
		Count:           500,
		Height:          12,
		MaxRadius:       4.5,
		DensityExponent: 0.7,
		Outward:         Range{0.1, 0.5},
		Size:            Range{0.2, 0.6},
		Speed:           Range{1, 4},
		Offset:          Range{0, twoPi},
		Dim:             0.2,
		Palette:         DefaultLightPalette,
	}
}

// GenerateLights builds the twinkle light field. Count 0 yields empty buffers.
func GenerateLights(cfg LightConfig, rng *rand.Rand) *PointField {
	f := newPointField(cfg.Count)
	f.BlendMode = BlendAdd
	sil := Silhouette{Height: cfg.Height, MaxRadius: cfg.MaxRadius}

	for i := 0; i < f.Len(); i++ {
		y := sil.YAt(math.Pow(rng.Float64(), cfg.DensityExponent))
		angle := rng.Float64() * twoPi
		radius := sil.Radius(y) + cfg.Outward.Random(rng)

		c := pick(rng, cfg.Palette)
		p := Phase{Speed: cfg.Speed.Random(rng), Offset: cfg.Offset.Random(rng)}
		f.set(i, math.Cos(angle)*radius, y, math.Sin(angle)*radius, c, cfg.Size.Random(rng), p)
	}
	return f
}
