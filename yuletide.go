package yuletide

import (
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGB color with components in [0, 1], plus alpha.
// Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Hex parses a "#rrggbb" string into an opaque Color. Invalid input yields
// opaque black; palettes in this package are compile-time constants.
func Hex(s string) Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{0, 0, 0, 1}
	}
	return Color{c.R, c.G, c.B, 1}
}

// Lerp returns the color linearly interpolated from c toward to by t.
func (c Color) Lerp(to Color, t float64) Color {
	return Color{
		R: lerp(c.R, to.R, t),
		G: lerp(c.G, to.G, t),
		B: lerp(c.B, to.B, t),
		A: lerp(c.A, to.A, t),
	}
}

// Scale multiplies the RGB components by k, leaving alpha unchanged.
func (c Color) Scale(k float64) Color {
	return Color{c.R * k, c.G * k, c.B * k, c.A}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Range is a general-purpose min/max range used by every generator config.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max) drawn from rng.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// centered returns a random value in [-half, half).
func centered(rng *rand.Rand, half float64) float64 {
	return (rng.Float64() - 0.5) * 2 * half
}

// pick returns a uniformly chosen palette entry.
func pick(rng *rand.Rand, palette []Color) Color {
	if len(palette) == 0 {
		return ColorWhite
	}
	return palette[rng.IntN(len(palette))]
}

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                     // additive / lighter
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	default:
		return ebiten.BlendSourceOver
	}
}

// Kind tags a placed instance with its ornament type.
type Kind uint8

const (
	KindBauble    Kind = iota // reflective sphere nested in the canopy
	KindBell                  // tilted lathe bell
	KindStocking              // extruded sock with a fabric variant
	KindGift                  // wrapped box
	KindRibbon                // ribbon band wrapped around a gift
	KindBowKnot               // flattened sphere at the bow center
	KindBowLoop               // torus loop of a bow
	KindBowTail               // flat tail of a bow
	KindCandyCane             // striped tube hook
	KindConfetti              // flat floor flake
	KindFloorRibbon           // curled ribbon strip on the floor
	KindBulb                  // string-light bulb
)

var kindNames = [...]string{
	KindBauble:      "bauble",
	KindBell:        "bell",
	KindStocking:    "stocking",
	KindGift:        "gift",
	KindRibbon:      "ribbon",
	KindBowKnot:     "bow-knot",
	KindBowLoop:     "bow-loop",
	KindBowTail:     "bow-tail",
	KindCandyCane:   "candy-cane",
	KindConfetti:    "confetti",
	KindFloorRibbon: "floor-ribbon",
	KindBulb:        "bulb",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Category is a user-facing visibility toggle covering one or more groups.
type Category uint8

const (
	CategoryGifts        Category = iota // boxes, ribbons, bows, candy canes
	CategoryStockings                    // stockings on the tree
	CategoryBells                        // bells on the tree
	CategorySnow                         // falling snow field
	CategoryStringLights                 // wall strands
	CategoryFloorDecor                   // confetti and floor ribbons
	numCategories
)

var categoryNames = [...]string{
	CategoryGifts:        "gifts",
	CategoryStockings:    "stockings",
	CategoryBells:        "bells",
	CategorySnow:         "snow",
	CategoryStringLights: "string-lights",
	CategoryFloorDecor:   "floor-decor",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// finite replaces NaN and ±Inf with 0.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

const twoPi = 2 * math.Pi
