package yuletide

import (
	"math"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// CanopyPalette holds the five ordered hues the canopy blends through, from
// the shadowed core out to the frosted tips.
type CanopyPalette struct {
	Deep    Color
	Shadow  Color
	Main    Color
	Vibrant Color
	Frost   Color
}

// DefaultCanopyPalette is the evergreen gradient used by the canopy field.
var DefaultCanopyPalette = CanopyPalette{
	Deep:    Hex("#011406"),
	Shadow:  Hex("#0a4f18"),
	Main:    Hex("#20a334"),
	Vibrant: Hex("#55ff6e"),
	Frost:   Hex("#d4ffdc"),
}

// Blend region boundaries on the [0,1] mix domain.
const (
	blendShadowEdge  = 0.25
	blendMainEdge    = 0.60
	blendVibrantEdge = 0.85
)

// Blend maps mix in [0,1] through the palette piecewise-linearly. The result
// is continuous at every region boundary.
func (p CanopyPalette) Blend(mix float64) Color {
	mix = clamp01(mix)
	switch {
	case mix < blendShadowEdge:
		return p.Deep.Lerp(p.Shadow, mix/blendShadowEdge)
	case mix < blendMainEdge:
		return p.Shadow.Lerp(p.Main, (mix-blendShadowEdge)/(blendMainEdge-blendShadowEdge))
	case mix < blendVibrantEdge:
		return p.Main.Lerp(p.Vibrant, (mix-blendMainEdge)/(blendVibrantEdge-blendMainEdge))
	default:
		return p.Vibrant.Lerp(p.Frost, (mix-blendVibrantEdge)/(1-blendVibrantEdge))
	}
}

// jitterHSL perturbs hue by dh (in turns, wrapped) and lightness by dl
// (clamped). Saturation is preserved.
func jitterHSL(c Color, dh, dl float64) Color {
	h, s, l := c.colorful().Hsl()
	h = math.Mod(h+dh*360, 360)
	if h < 0 {
		h += 360
	}
	out := colorful.Hsl(h, s, clamp01(l+dl))
	return Color{clamp01(out.R), clamp01(out.G), clamp01(out.B), c.A}
}

// canopyColor computes a canopy point color from its radial fraction and
// normalized height.
func canopyColor(p CanopyPalette, rNorm, hNorm float64, cfg *CanopyConfig, rng *rand.Rand) Color {
	mix := clamp01(rNorm + centered(rng, cfg.MixJitter))
	c := p.Blend(mix)
	c = c.Lerp(p.Vibrant, clamp01(hNorm)*cfg.HeightTint)
	return jitterHSL(c, centered(rng, cfg.HueJitter), centered(rng, cfg.LightJitter))
}
