package yuletide

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// StrandSpec describes one draped light strand between two wall anchors.
type StrandSpec struct {
	Start  [3]float32 `yaml:"start"`
	End    [3]float32 `yaml:"end"`
	Drop   float32    `yaml:"drop"`
	Bulbs  int        `yaml:"bulbs"`
	Offset float64    `yaml:"offset"`
}

// StrandConfig controls the string lights on the walls.
type StrandConfig struct {
	Strands []StrandSpec `yaml:"strands"`
	// BlinkRate, On and Dim parameterize each bulb's two-level intensity.
	BlinkRate float64 `yaml:"blinkRate"`
	On        float64 `yaml:"on"`
	Dim       float64 `yaml:"dim"`
	// BulbOffset bounds the random per-bulb phase offset.
	BulbOffset float64 `yaml:"bulbOffset"`
	BulbRadius float64 `yaml:"bulbRadius"`
	WireRadius float32 `yaml:"wireRadius"`
	Palette    []Color `yaml:"-"`
}

// DefaultStrandPalette is cycled by bulb index along each strand.
var DefaultStrandPalette = []Color{
	Hex("#ff0000"), Hex("#00ff00"), Hex("#0000ff"),
	Hex("#ffff00"), Hex("#ff00ff"), Hex("#ffaa00"),
}

// StrandWireColor is the dark insulation color of every strand wire.
var StrandWireColor = Hex("#1f2937")

// Wall planes the default strands hang against.
const (
	backWallZ = -12 + 0.2
	leftWallX = -12 + 0.2
)

// DefaultStrandConfig returns the swags on the back and left walls.
func DefaultStrandConfig() StrandConfig {
	return StrandConfig{
		Strands: []StrandSpec{
			{Start: [3]float32{-12, 8, backWallZ}, End: [3]float32{-4, 7, backWallZ}, Drop: 1.5, Bulbs: 12, Offset: 0},
			{Start: [3]float32{-4, 7, backWallZ}, End: [3]float32{4, 8, backWallZ}, Drop: 1.5, Bulbs: 12, Offset: 1},
			{Start: [3]float32{4, 8, backWallZ}, End: [3]float32{12, 7, backWallZ}, Drop: 1.5, Bulbs: 12, Offset: 2},
			{Start: [3]float32{-8, 4, backWallZ}, End: [3]float32{0, 3, backWallZ}, Drop: 1.2, Bulbs: 10, Offset: 3},
			{Start: [3]float32{0, 3, backWallZ}, End: [3]float32{8, 4, backWallZ}, Drop: 1.2, Bulbs: 10, Offset: 4},
			{Start: [3]float32{leftWallX, 9, -12}, End: [3]float32{leftWallX, 7.5, -4}, Drop: 2, Bulbs: 14, Offset: 5},
			{Start: [3]float32{leftWallX, 7.5, -4}, End: [3]float32{leftWallX, 8.5, 4}, Drop: 2, Bulbs: 14, Offset: 6},
			{Start: [3]float32{leftWallX, 5, -8}, End: [3]float32{leftWallX, 4, 0}, Drop: 1.5, Bulbs: 10, Offset: 7},
			{Start: [3]float32{leftWallX, 4, 0}, End: [3]float32{leftWallX, 5, 8}, Drop: 1.5, Bulbs: 10, Offset: 8},
		},
		BlinkRate:  3,
		On:         1.5,
		Dim:        0.2,
		BulbOffset: 10,
		BulbRadius: 0.08,
		WireRadius: 0.01,
		Palette:    DefaultStrandPalette,
	}
}

// Strand is one string of bulbs hanging along a draped curve. Bulb positions
// are fixed at generation; only their colors animate.
type Strand struct {
	Curve *Curve
	Wire  *Tube
	Bulbs *Batch
	// BaseColors holds the unanimated color of each bulb.
	BaseColors []Color
	// Offsets holds each bulb's phase offset.
	Offsets      []float64
	StrandOffset float64

	rate, on, dim float64
}

// BuildStrand drapes a strand and spaces its bulbs evenly by arc length. A
// single bulb sits at the start anchor.
func BuildStrand(spec StrandSpec, cfg *StrandConfig, rng *rand.Rand) *Strand {
	start := mgl32.Vec3(spec.Start)
	end := mgl32.Vec3(spec.End)
	c := BuildDrapedCurve(start, end, spec.Drop)
	b := newBatch(KindBulb, spec.Bulbs)
	s := &Strand{
		Curve:        c,
		Wire:         BuildTube(c, DrapeSegments, cfg.WireRadius, 4),
		Bulbs:        b,
		BaseColors:   make([]Color, b.Len()),
		Offsets:      make([]float64, b.Len()),
		StrandOffset: spec.Offset,
		rate:         cfg.BlinkRate,
		on:           cfg.On,
		dim:          cfg.Dim,
	}
	n := b.Len()
	r := float32(cfg.BulbRadius)
	for i := range b.Instances {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		base := ColorWhite
		if len(cfg.Palette) > 0 {
			base = cfg.Palette[i%len(cfg.Palette)]
		}
		s.BaseColors[i] = base
		s.Offsets[i] = rng.Float64() * cfg.BulbOffset

		in := &b.Instances[i]
		in.Position = c.PointAt(t)
		in.Scale = mgl32.Vec3{r, r, r}
		in.Color = base
	}
	b.Commit()
	return s
}

// Update rewrites every bulb color for the elapsed time. Matrices are left
// untouched.
func (s *Strand) Update(elapsed float64) {
	for i, base := range s.BaseColors {
		k := BulbIntensity(elapsed, s.rate, s.Offsets[i], s.StrandOffset, s.on, s.dim)
		s.Bulbs.SetColorAt(i, base.Scale(k))
	}
}

// BuildStrands builds every strand in cfg in order.
func BuildStrands(cfg StrandConfig, rng *rand.Rand) []*Strand {
	out := make([]*Strand, len(cfg.Strands))
	for i, spec := range cfg.Strands {
		out[i] = BuildStrand(spec, &cfg, rng)
	}
	return out
}
