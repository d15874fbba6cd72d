package yuletide

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"math/rand/v2"

	"golang.org/x/image/vector"
)

// FabricPattern selects the knit overlay drawn on a stocking texture.
type FabricPattern uint8

const (
	FabricSolid   FabricPattern = iota // base color only
	FabricStriped                      // horizontal accent bands
	FabricDotted                       // checkerboard of accent dots
)

// FabricSpec describes one tileable stocking fabric.
type FabricSpec struct {
	Base    Color
	Accent  Color
	Pattern FabricPattern
}

// DefaultFabrics are the stocking fabrics; Instance.Variant indexes into it.
var DefaultFabrics = []FabricSpec{
	{Base: Hex("#dc2626"), Accent: Hex("#ffffff"), Pattern: FabricSolid},
	{Base: Hex("#16a34a"), Accent: Hex("#ffffff"), Pattern: FabricSolid},
	{Base: Hex("#dc2626"), Accent: Hex("#ffffff"), Pattern: FabricStriped},
	{Base: Hex("#16a34a"), Accent: Hex("#dc2626"), Pattern: FabricStriped},
	{Base: Hex("#ffffff"), Accent: Hex("#dc2626"), Pattern: FabricDotted},
}

// StripeSpec describes a diagonal candy stripe texture.
type StripeSpec struct {
	Base   Color
	Stripe Color
}

// DefaultCaneStripes are the candy cane textures; cane i uses i % len.
var DefaultCaneStripes = []StripeSpec{
	{Base: Hex("#ffffff"), Stripe: Hex("#dc2626")},
	{Base: Hex("#ffffff"), Stripe: Hex("#15803d")},
	{Base: Hex("#ffffff"), Stripe: Hex("#b45309")},
}

// Texture sizes in pixels.
const (
	FabricSize = 128
	StripeSize = 64
	SpriteSize = 32
)

const (
	woolSpecks     = 4000
	woolSpeckSize  = 2
	woolSpeckAlpha = 0.05
	knitBand       = 16
	knitDotCell    = 16
	knitDotRadius  = 4
	stripeWidth    = 16
)

// nrgba converts c to an 8-bit non-premultiplied color.
func (c Color) nrgba() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func fill(dst draw.Image, c Color) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c.nrgba()), image.Point{}, draw.Src)
}

// KnitTexture renders a tileable knitted fabric: the base color, a scatter
// of faint wool specks, then the pattern overlay.
func KnitTexture(spec FabricSpec, rng *rand.Rand) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, FabricSize, FabricSize))
	fill(img, spec.Base)

	speck := image.NewUniform(Color{1, 1, 1, woolSpeckAlpha}.nrgba())
	z := vector.NewRasterizer(woolSpeckSize+1, woolSpeckSize+1)
	for i := 0; i < woolSpecks; i++ {
		x := rng.Float32() * (FabricSize - woolSpeckSize - 1)
		y := rng.Float32() * (FabricSize - woolSpeckSize - 1)
		ox, oy := float32(math.Floor(float64(x))), float32(math.Floor(float64(y)))
		z.Reset(woolSpeckSize+1, woolSpeckSize+1)
		rect(z, x-ox, y-oy, woolSpeckSize, woolSpeckSize)
		r := image.Rect(int(ox), int(oy), int(ox)+woolSpeckSize+1, int(oy)+woolSpeckSize+1)
		z.Draw(img, r, speck, image.Point{})
	}

	accent := image.NewUniform(spec.Accent.nrgba())
	z = vector.NewRasterizer(FabricSize, FabricSize)
	switch spec.Pattern {
	case FabricStriped:
		for y := 0; y < FabricSize; y += knitBand * 2 {
			rect(z, 0, float32(y), FabricSize, knitBand)
		}
		z.Draw(img, img.Bounds(), accent, image.Point{})
	case FabricDotted:
		cells := FabricSize / knitDotCell
		for i := 0; i < cells; i++ {
			for j := 0; j < cells; j++ {
				if (i+j)%2 == 0 {
					circle(z, float32(i*knitDotCell+knitDotCell/2), float32(j*knitDotCell+knitDotCell/2), knitDotRadius)
				}
			}
		}
		z.Draw(img, img.Bounds(), accent, image.Point{})
	}
	return img
}

// StripeTexture renders 45 degree stripes that tile in both directions. A
// pixel is striped when x+y falls in the first half of a stripe period.
func StripeTexture(spec StripeSpec) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, StripeSize, StripeSize))
	fill(img, spec.Base)
	z := vector.NewRasterizer(StripeSize, StripeSize)
	for a := float32(0); a < 2*StripeSize; a += stripeWidth * 2 {
		band := clipBand(StripeSize, a, a+stripeWidth)
		if len(band) < 3 {
			continue
		}
		z.MoveTo(band[0][0], band[0][1])
		for _, p := range band[1:] {
			z.LineTo(p[0], p[1])
		}
		z.ClosePath()
	}
	z.Draw(img, img.Bounds(), image.NewUniform(spec.Stripe.nrgba()), image.Point{})
	return img
}

// clipBand returns the part of the size by size square where lo <= x+y <= hi.
// Paths handed to the rasterizer must stay inside its bounds.
func clipBand(size, lo, hi float32) [][2]float32 {
	poly := [][2]float32{{0, 0}, {size, 0}, {size, size}, {0, size}}
	poly = clipHalfPlane(poly, func(p [2]float32) float32 { return p[0] + p[1] - lo })
	return clipHalfPlane(poly, func(p [2]float32) float32 { return hi - p[0] - p[1] })
}

// clipHalfPlane keeps the part of a convex polygon where f >= 0.
func clipHalfPlane(poly [][2]float32, f func([2]float32) float32) [][2]float32 {
	var out [][2]float32
	for i, cur := range poly {
		prev := poly[(i+len(poly)-1)%len(poly)]
		fc, fp := f(cur), f(prev)
		if (fc >= 0) != (fp >= 0) {
			t := fp / (fp - fc)
			out = append(out, [2]float32{
				prev[0] + (cur[0]-prev[0])*t,
				prev[1] + (cur[1]-prev[1])*t,
			})
		}
		if fc >= 0 {
			out = append(out, cur)
		}
	}
	return out
}

// glowStops is the radial falloff of the light sprite: (distance, alpha).
var glowStops = [...][2]float64{{0, 1}, {0.2, 0.8}, {0.5, 0.2}, {1, 0}}

// GlowTexture renders the soft white sprite used for twinkle lights.
func GlowTexture() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, SpriteSize, SpriteSize))
	const half = SpriteSize / 2
	for y := 0; y < SpriteSize; y++ {
		for x := 0; x < SpriteSize; x++ {
			dx := float64(x) + 0.5 - half
			dy := float64(y) + 0.5 - half
			a := glowAlpha(math.Hypot(dx, dy) / half)
			img.SetRGBA(x, y, color.RGBA{R: uint8(a * 255), G: uint8(a * 255), B: uint8(a * 255), A: uint8(a * 255)})
		}
	}
	return img
}

// glowAlpha interpolates glowStops at normalized distance d.
func glowAlpha(d float64) float64 {
	if d >= 1 {
		return 0
	}
	for i := 1; i < len(glowStops); i++ {
		if d <= glowStops[i][0] {
			lo, hi := glowStops[i-1], glowStops[i]
			return lerp(lo[1], hi[1], (d-lo[0])/(hi[0]-lo[0]))
		}
	}
	return 0
}

// SnowTexture renders the solid white disc used for snowflakes.
func SnowTexture() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, SpriteSize, SpriteSize))
	z := vector.NewRasterizer(SpriteSize, SpriteSize)
	circle(z, SpriteSize/2, SpriteSize/2, 12)
	z.Draw(img, img.Bounds(), image.White, image.Point{})
	return img
}

func rect(z *vector.Rasterizer, x, y, w, h float32) {
	z.MoveTo(x, y)
	z.LineTo(x+w, y)
	z.LineTo(x+w, y+h)
	z.LineTo(x, y+h)
	z.ClosePath()
}

// circle appends a circle approximated by four cubic Béziers.
func circle(z *vector.Rasterizer, cx, cy, r float32) {
	const k = 0.5522848
	kr := k * r
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+kr, cx+kr, cy+r, cx, cy+r)
	z.CubeTo(cx-kr, cy+r, cx-r, cy+kr, cx-r, cy)
	z.CubeTo(cx-r, cy-kr, cx-kr, cy-r, cx, cy-r)
	z.CubeTo(cx+kr, cy-r, cx+r, cy-kr, cx+r, cy)
	z.ClosePath()
}

// Textures holds every generated texture, addressed by Instance.Variant for
// the kinds that have variants.
type Textures struct {
	Fabrics []*image.RGBA
	Stripes []*image.RGBA
	Glow    *image.RGBA
	Snow    *image.RGBA
}

// GenerateTextures renders the default texture set.
func GenerateTextures(rng *rand.Rand) *Textures {
	t := &Textures{
		Fabrics: make([]*image.RGBA, len(DefaultFabrics)),
		Stripes: make([]*image.RGBA, len(DefaultCaneStripes)),
		Glow:    GlowTexture(),
		Snow:    SnowTexture(),
	}
	for i, f := range DefaultFabrics {
		t.Fabrics[i] = KnitTexture(f, rng)
	}
	for i, s := range DefaultCaneStripes {
		t.Stripes[i] = StripeTexture(s)
	}
	return t
}
