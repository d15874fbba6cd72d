package yuletide

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Config aggregates every generator and animation setting of a scene.
// Palettes are not loaded from YAML; they always come from the defaults.
type Config struct {
	// Seed drives every random draw; equal seeds generate identical scenes.
	Seed  uint64  `yaml:"seed"`
	Speed float64 `yaml:"speed"`
	Debug bool    `yaml:"debug"`

	Canopy       CanopyConfig      `yaml:"canopy"`
	Lights       LightConfig       `yaml:"lights"`
	Snow         SnowConfig        `yaml:"snow"`
	Ornaments    OrnamentConfig    `yaml:"ornaments"`
	Gifts        GiftConfig        `yaml:"gifts"`
	Canes        CaneConfig        `yaml:"canes"`
	Confetti     ConfettiConfig    `yaml:"confetti"`
	FloorRibbons FloorRibbonConfig `yaml:"floorRibbons"`
	Tinsel       TinselConfig      `yaml:"tinsel"`
	Star         StarConfig        `yaml:"star"`
	Strands      StrandConfig      `yaml:"strands"`
	Rates        GroupRates        `yaml:"rates"`
	// Hidden lists categories that start hidden, by name.
	Hidden []string `yaml:"hidden"`
}

// DefaultConfig returns the full default scene.
func DefaultConfig() Config {
	return Config{
		Seed:         1225,
		Speed:        0.2,
		Canopy:       DefaultCanopyConfig(),
		Lights:       DefaultLightConfig(),
		Snow:         DefaultSnowConfig(),
		Ornaments:    DefaultOrnamentConfig(),
		Gifts:        DefaultGiftConfig(),
		Canes:        DefaultCaneConfig(),
		Confetti:     DefaultConfettiConfig(),
		FloorRibbons: DefaultFloorRibbonConfig(),
		Tinsel:       DefaultTinselConfig(),
		Star:         DefaultStarConfig(),
		Strands:      DefaultStrandConfig(),
		Rates:        DefaultGroupRates(),
	}
}

// LoadConfig parses YAML over the defaults, so a document only needs the
// keys it changes. The result is sanitized.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	for _, name := range cfg.Hidden {
		if _, ok := ParseCategory(name); !ok {
			return Config{}, fmt.Errorf("parse config: unknown category %q", name)
		}
	}
	cfg.Sanitize()
	return cfg, nil
}

// ParseCategory returns the category with the given name.
func ParseCategory(name string) (Category, bool) {
	for c := Category(0); c < numCategories; c++ {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}

// Sanitize replaces values that would produce non-finite geometry or
// negative allocations. Degenerate but finite values (zero counts, zero
// height) are left alone; they collapse to empty output.
func (c *Config) Sanitize() {
	c.Speed = clamp01(finite(c.Speed))

	counts := []*int{
		&c.Canopy.Count, &c.Lights.Count, &c.Snow.Count,
		&c.Ornaments.Baubles.Count, &c.Ornaments.Bells.Count, &c.Ornaments.Stockings.Count,
		&c.Gifts.BaseCount, &c.Gifts.StackedCount, &c.Gifts.FillerCount,
		&c.Canes.Count, &c.Confetti.Count, &c.FloorRibbons.Count,
		&c.Tinsel.Loops, &c.Tinsel.PointsPerLoop,
	}
	for _, n := range counts {
		*n = max(*n, 0)
	}
	for i := range c.Strands.Strands {
		c.Strands.Strands[i].Bulbs = max(c.Strands.Strands[i].Bulbs, 0)
	}

	floats := []*float64{
		&c.Canopy.Height, &c.Canopy.MaxRadius, &c.Lights.Height, &c.Lights.MaxRadius,
		&c.Snow.Area, &c.Snow.Floor, &c.Snow.Ceiling, &c.Snow.Jitter,
		&c.Gifts.FloorY, &c.Gifts.Overlap, &c.Canes.FloorY, &c.Confetti.FloorY,
		&c.FloorRibbons.FloorY, &c.Star.BaseY,
	}
	for _, f := range floats {
		*f = finite(*f)
	}
	c.Snow.Jitter = math.Max(c.Snow.Jitter, 0)

	// Sampling exponents must be positive or points leave the silhouette.
	canopy, lights := DefaultCanopyConfig(), DefaultLightConfig()
	c.Canopy.DensityExponent = positiveOr(c.Canopy.DensityExponent, canopy.DensityExponent)
	c.Canopy.RadialExponent = positiveOr(c.Canopy.RadialExponent, canopy.RadialExponent)
	c.Lights.DensityExponent = positiveOr(c.Lights.DensityExponent, lights.DensityExponent)

	if c.Ornaments.StockingVariants <= 0 || c.Ornaments.StockingVariants > len(DefaultFabrics) {
		c.Ornaments.StockingVariants = len(DefaultFabrics)
	}
	if c.Canes.Variants <= 0 || c.Canes.Variants > len(DefaultCaneStripes) {
		c.Canes.Variants = len(DefaultCaneStripes)
	}
	if c.Rates == nil {
		c.Rates = DefaultGroupRates()
	}
	for k, v := range c.Rates {
		c.Rates[k] = finite(v)
	}
}

// positiveOr returns v if it is finite and positive, else def.
func positiveOr(v, def float64) float64 {
	if v > 0 && !math.IsInf(v, 1) {
		return v
	}
	return def
}
