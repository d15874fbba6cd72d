package yuletide

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// GiftConfig controls the gift pile under the tree.
type GiftConfig struct {
	BaseCount    int `yaml:"baseCount"`
	StackedCount int `yaml:"stackedCount"`
	FillerCount  int `yaml:"fillerCount"`
	// Annulus bounds the horizontal distance from the trunk for floor boxes.
	Annulus Range   `yaml:"annulus"`
	FloorY  float64 `yaml:"floorY"`
	Width   Range   `yaml:"width"`
	Height  Range   `yaml:"height"`
	Depth   Range   `yaml:"depth"`
	// StackedScale shrinks stacked boxes relative to the base ranges.
	StackedScale float64 `yaml:"stackedScale"`
	// FillerSize is the edge range of the tiny filler boxes.
	FillerSize Range `yaml:"fillerSize"`
	// Overlap sinks a stacked box into its parent so it nests rather than floats.
	Overlap float64 `yaml:"overlap"`
	// Jitter offsets a stacked box by this fraction of the parent footprint.
	Jitter float64 `yaml:"jitter"`
	// StackableChance is the probability a stacked box can itself be a parent.
	StackableChance float64 `yaml:"stackableChance"`
	Wrapping        []Color `yaml:"-"`
	Ribbons         []Color `yaml:"-"`
}

// DefaultGiftConfig returns the gift pile used by the default scene.
func DefaultGiftConfig() GiftConfig {
	return GiftConfig{
		BaseCount:       70,
		StackedCount:    80,
		FillerCount:     12,
		Annulus:         Range{2, 7},
		FloorY:          -6,
		Width:           Range{0.5, 1.1},
		Height:          Range{0.4, 0.9},
		Depth:           Range{0.5, 1.1},
		StackedScale:    0.7,
		FillerSize:      Range{0.15, 0.30},
		Overlap:         0.05,
		Jitter:          0.3,
		StackableChance: 0.5,
		Wrapping: []Color{
			Hex("#ef4444"), Hex("#166534"), Hex("#1e40af"), Hex("#fbbf24"),
			Hex("#ffffff"), Hex("#4c1d95"), Hex("#9f1239"),
		},
		Ribbons: []Color{Hex("#ffd700"), Hex("#c0c0c0"), Hex("#ffffff"), Hex("#fcd34d")},
	}
}

// GiftLayer records which generation pass produced a box.
type GiftLayer uint8

const (
	LayerBase    GiftLayer = iota // resting on the floor
	LayerStacked                  // resting on another box
	LayerFiller                   // tiny box scattered on the floor
)

// Gift is one wrapped box. Box.Scale holds the width, height and depth.
type Gift struct {
	Box         Instance
	RibbonColor Color
	// BowAngle rotates the bow on top of the box relative to the box yaw.
	BowAngle  float64
	Layer     GiftLayer
	Stackable bool
}

// Size returns the box dimensions (width, height, depth).
func (g *Gift) Size() mgl32.Vec3 {
	return g.Box.Scale
}

// Top returns the height of the box's upper face.
func (g *Gift) Top() float32 {
	return g.Box.Position.Y() + g.Box.Scale.Y()/2
}

// Bottom returns the height of the box's lower face.
func (g *Gift) Bottom() float32 {
	return g.Box.Position.Y() - g.Box.Scale.Y()/2
}

// GiftPlan is the generated pile. Gifts is the arena; Box.Parent indexes into
// it. The derived batches hold the ribbon and bow parts computed from each box.
type GiftPlan struct {
	Gifts []Gift

	Boxes    *Batch
	Ribbons  *Batch // two bands per gift, Gifts[i] owns 2i and 2i+1
	BowKnots *Batch // one per gift
	BowLoops *Batch // two per gift
	BowTails *Batch // two per gift
}

// Len returns the number of gifts.
func (p *GiftPlan) Len() int {
	return len(p.Gifts)
}

// Batches returns every batch in the plan in draw order.
func (p *GiftPlan) Batches() []*Batch {
	return []*Batch{p.Boxes, p.Ribbons, p.BowKnots, p.BowLoops, p.BowTails}
}

// PlanGifts generates the base, stacked and filler layers and derives all
// ribbon and bow transforms.
func PlanGifts(cfg GiftConfig, rng *rand.Rand) *GiftPlan {
	base := max(cfg.BaseCount, 0)
	stacked := max(cfg.StackedCount, 0)
	filler := max(cfg.FillerCount, 0)

	p := &GiftPlan{Gifts: make([]Gift, 0, base+stacked+filler)}
	eligible := make([]int, 0, base+stacked)

	for i := 0; i < base; i++ {
		x, z := annulusPoint(cfg.Annulus, rng)
		g := newGift(&cfg, rng, 1)
		g.Layer = LayerBase
		g.Stackable = true
		h := g.Box.Scale.Y()
		g.Box.Position = mgl32.Vec3{float32(x), float32(cfg.FloorY) + h/2, float32(z)}
		eligible = append(eligible, len(p.Gifts))
		p.Gifts = append(p.Gifts, g)
	}

	// Eligible only ever holds indices already in p.Gifts, so a parent is
	// never a forward reference and never the box being placed.
	if len(eligible) > 0 {
		for i := 0; i < stacked; i++ {
			parentIdx := eligible[rng.IntN(len(eligible))]
			parent := &p.Gifts[parentIdx]
			ps := parent.Size()

			g := newGift(&cfg, rng, cfg.StackedScale)
			g.Layer = LayerStacked
			g.Box.Parent = parentIdx
			h := g.Box.Scale.Y()
			x := parent.Box.Position.X() + float32(centered(rng, cfg.Jitter*float64(ps.X())/2))
			z := parent.Box.Position.Z() + float32(centered(rng, cfg.Jitter*float64(ps.Z())/2))
			rest := parent.Top() - float32(cfg.Overlap)
			g.Box.Position = mgl32.Vec3{x, rest + h/2, z}

			idx := len(p.Gifts)
			p.Gifts = append(p.Gifts, g)
			if rng.Float64() < cfg.StackableChance {
				p.Gifts[idx].Stackable = true
				eligible = append(eligible, idx)
			}
		}
	}

	for i := 0; i < filler; i++ {
		x, z := annulusPoint(cfg.Annulus, rng)
		g := newGift(&cfg, rng, 1)
		g.Layer = LayerFiller
		w := float32(cfg.FillerSize.Random(rng))
		h := float32(cfg.FillerSize.Random(rng))
		d := float32(cfg.FillerSize.Random(rng))
		g.Box.Scale = mgl32.Vec3{w, h, d}
		g.Box.Position = mgl32.Vec3{float32(x), float32(cfg.FloorY) + h/2, float32(z)}
		p.Gifts = append(p.Gifts, g)
	}

	p.derive()
	return p
}

// newGift draws size, yaw, colors and bow angle for a single box.
func newGift(cfg *GiftConfig, rng *rand.Rand, scale float64) Gift {
	box := newInstance(KindGift)
	box.Scale = vec3(
		cfg.Width.Random(rng)*scale,
		cfg.Height.Random(rng)*scale,
		cfg.Depth.Random(rng)*scale,
	)
	box.Rotation = vec3(0, rng.Float64()*twoPi, 0)
	box.Color = pick(rng, cfg.Wrapping)
	return Gift{
		Box:         box,
		RibbonColor: pick(rng, cfg.Ribbons),
		BowAngle:    rng.Float64() * math.Pi,
	}
}

// annulusPoint samples a point on the floor plane between the annulus radii.
func annulusPoint(r Range, rng *rand.Rand) (x, z float64) {
	angle := rng.Float64() * twoPi
	radius := r.Random(rng)
	return math.Cos(angle) * radius, math.Sin(angle) * radius
}

// Ribbon band and bow proportions relative to the box.
const (
	ribbonThickness = 0.15
	ribbonPad       = 0.01
)

// derive fills the box, ribbon and bow batches. Every part is a pure function
// of its box, so parts stay attached whatever the box transform.
func (p *GiftPlan) derive() {
	n := len(p.Gifts)
	p.Boxes = newBatch(KindGift, n)
	p.Ribbons = newBatch(KindRibbon, n*2)
	p.BowKnots = newBatch(KindBowKnot, n)
	p.BowLoops = newBatch(KindBowLoop, n*2)
	p.BowTails = newBatch(KindBowTail, n*2)

	for i := range p.Gifts {
		g := &p.Gifts[i]
		p.Boxes.Instances[i] = g.Box
		bands := ribbonBands(g)
		p.Ribbons.Instances[i*2] = bands[0]
		p.Ribbons.Instances[i*2+1] = bands[1]

		knot, loops, tails := bowParts(g)
		p.BowKnots.Instances[i] = knot
		p.BowLoops.Instances[i*2] = loops[0]
		p.BowLoops.Instances[i*2+1] = loops[1]
		p.BowTails.Instances[i*2] = tails[0]
		p.BowTails.Instances[i*2+1] = tails[1]
	}
	for _, b := range p.Batches() {
		b.Commit()
	}
}

// ribbonBands returns the two crossing bands wrapped around the box: one
// spanning width and height, one spanning depth and height.
func ribbonBands(g *Gift) [2]Instance {
	s := g.Size()
	var out [2]Instance
	for i := range out {
		out[i] = newInstance(KindRibbon)
		out[i].Position = g.Box.Position
		out[i].Rotation = g.Box.Rotation
		out[i].Color = g.RibbonColor
	}
	out[0].Scale = mgl32.Vec3{s.X() + ribbonPad, s.Y() + ribbonPad, s.Z() * ribbonThickness}
	out[1].Scale = mgl32.Vec3{s.X() * ribbonThickness, s.Y() + ribbonPad, s.Z() + ribbonPad}
	return out
}

// bowParts returns the knot, two loops and two tails sitting on the box's top
// center, oriented by the box yaw plus the bow angle. Unit meshes: knot is a
// unit sphere, loops a unit-radius torus, tails a unit cube.
func bowParts(g *Gift) (Instance, [2]Instance, [2]Instance) {
	s := g.Size()
	unit := 0.25 * min(s.X(), s.Z())
	yaw := g.Box.Rotation.Y() + float32(g.BowAngle)
	top := mgl32.Vec3{g.Box.Position.X(), g.Top(), g.Box.Position.Z()}

	knot := newInstance(KindBowKnot)
	knot.Position = top.Add(mgl32.Vec3{0, unit * 0.15, 0})
	knot.Rotation = mgl32.Vec3{0, yaw, 0}
	knot.Scale = mgl32.Vec3{unit * 0.35, unit * 0.2, unit * 0.35}
	knot.Color = g.RibbonColor

	var loops, tails [2]Instance
	for i, side := range [2]float32{-1, 1} {
		l := newInstance(KindBowLoop)
		l.Position = top.Add(rotateY(mgl32.Vec3{side * unit * 0.5, unit * 0.35, 0}, yaw))
		l.Rotation = mgl32.Vec3{0, yaw, side * 0.6}
		l.Scale = mgl32.Vec3{unit * 0.45, unit * 0.45, unit * 0.45}
		l.Color = g.RibbonColor
		loops[i] = l

		t := newInstance(KindBowTail)
		t.Position = top.Add(rotateY(mgl32.Vec3{side * unit * 0.3, unit * 0.02, unit * 0.45}, yaw))
		t.Rotation = mgl32.Vec3{0, yaw + side*0.4, 0}
		t.Scale = mgl32.Vec3{unit * 0.18, unit * 0.02, unit * 0.7}
		t.Color = g.RibbonColor
		tails[i] = t
	}
	return knot, loops, tails
}
