package yuletide

import (
	"math/rand/v2"
	"time"
)

// Random stream identifiers. Each component draws from its own stream of the
// scene seed, so changing one component's count leaves the others unchanged.
const (
	streamCanopy uint64 = iota + 1
	streamLights
	streamSnow
	streamBaubles
	streamBells
	streamStockings
	streamGifts
	streamCanes
	streamConfetti
	streamFloorRibbons
	streamStrands
	streamTextures
)

// Layer pairs an instance batch with the group whose rotation and
// visibility it follows.
type Layer struct {
	Group *Group
	Batch *Batch
}

// Scene owns every generated field, batch and curve of the holiday scene and
// advances them once per frame. Generation is memoized: it runs on the first
// Generate or Update call and again only after SetConfig.
//
// Single-threaded, no sync.
type Scene struct {
	cfg       Config
	generated bool
	debug     bool
	sink      EventSink

	speed   *SpeedControl
	groups  map[string]*Group
	ordered []*Group

	canopy       *PointField
	lights       *PointField
	snow         *SnowField
	baubles      *Batch
	bells        *Batch
	stockings    *Batch
	gifts        *GiftPlan
	canes        *CanePlan
	confetti     *Batch
	floorRibbons *FloorRibbons
	tinsel       *Tinsel
	star         *Star
	strands      []*Strand
	textures     *Textures
	layers       []Layer

	stats debugStats
}

// NewScene creates a scene for cfg. Nothing is generated until the first
// Generate or Update call.
func NewScene(cfg Config) *Scene {
	cfg.Sanitize()
	s := &Scene{cfg: cfg, debug: cfg.Debug}
	s.speed = NewSpeedControl(cfg.Speed)
	s.buildGroups()
	for _, name := range cfg.Hidden {
		if c, ok := ParseCategory(name); ok {
			s.setCategoryVisible(c, false)
		}
	}
	return s
}

func (s *Scene) buildGroups() {
	s.groups = make(map[string]*Group, len(groupOrder))
	s.ordered = s.ordered[:0]
	for _, name := range groupOrder {
		g := NewGroup(name, s.cfg.Rates[name])
		s.groups[name] = g
		s.ordered = append(s.ordered, g)
	}
}

// Config returns the scene's configuration.
func (s *Scene) Config() Config {
	return s.cfg
}

// SetConfig replaces the configuration and invalidates the generated scene.
// Group angles and visibility carry over.
func (s *Scene) SetConfig(cfg Config) {
	cfg.Sanitize()
	s.cfg = cfg
	s.generated = false
	for name, g := range s.groups {
		g.Rate = cfg.Rates[name]
	}
}

// Generated reports whether the scene content currently exists.
func (s *Scene) Generated() bool {
	return s.generated
}

func (s *Scene) stream(id uint64) *rand.Rand {
	return rand.New(rand.NewPCG(s.cfg.Seed, id))
}

// Generate builds every field, batch and curve. It does nothing if the scene
// is already generated for the current configuration.
func (s *Scene) Generate() {
	if s.generated {
		return
	}
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	cfg := &s.cfg
	sil := cfg.Canopy.Silhouette()
	orn := &cfg.Ornaments

	s.canopy = GenerateCanopy(cfg.Canopy, s.stream(streamCanopy))
	s.lights = GenerateLights(cfg.Lights, s.stream(streamLights))
	s.snow = GenerateSnow(cfg.Snow, s.stream(streamSnow))
	s.baubles = PlaceBaubles(sil, orn.Baubles, s.stream(streamBaubles))
	s.bells = PlaceBells(sil, orn.Bells, orn.BellTilt, s.stream(streamBells))
	s.stockings = PlaceStockings(sil, orn.Stockings, orn.StockingVariants, s.stream(streamStockings))
	s.gifts = PlanGifts(cfg.Gifts, s.stream(streamGifts))
	s.canes = PlanCanes(cfg.Canes, s.gifts, s.stream(streamCanes))
	s.confetti = PlaceConfetti(cfg.Confetti, s.stream(streamConfetti))
	s.floorRibbons = PlanFloorRibbons(cfg.FloorRibbons, s.stream(streamFloorRibbons))
	s.tinsel = BuildTinsel(sil, cfg.Tinsel)
	s.star = BuildStar(cfg.Star)
	s.strands = BuildStrands(cfg.Strands, s.stream(streamStrands))
	s.textures = GenerateTextures(s.stream(streamTextures))

	s.layers = s.layers[:0]
	s.addLayer(GroupBaubles, s.baubles)
	s.addLayer(GroupBells, s.bells)
	s.addLayer(GroupStockings, s.stockings)
	for _, b := range s.gifts.Batches() {
		s.addLayer(GroupGifts, b)
	}
	s.addLayer(GroupGifts, s.canes.Canes)
	s.addLayer(GroupFloor, s.confetti)
	s.addLayer(GroupFloor, s.floorRibbons.Batch)
	for _, st := range s.strands {
		s.addLayer(GroupStrands, st.Bulbs)
	}

	s.generated = true
	s.stats = debugStats{}
	if s.debug {
		s.debugGenerated(time.Since(t0))
	}
	s.emit(SceneEvent{Type: EventGenerated, Instances: s.InstanceCount()})
}

func (s *Scene) addLayer(group string, b *Batch) {
	s.layers = append(s.layers, Layer{Group: s.groups[group], Batch: b})
}

// Update advances the scene to elapsed seconds, delta seconds after the
// previous frame. Rotation accumulates from delta and the eased speed;
// shimmer, blink and bulb intensity are pure functions of elapsed. Hidden
// snow and strands are not simulated. No buffers are reallocated.
func (s *Scene) Update(elapsed, delta float64) {
	s.Generate()
	elapsed = finite(elapsed)
	delta = finite(delta)
	if delta < 0 {
		delta = 0
	}
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	speed := s.speed.Update(delta)
	for _, g := range s.ordered {
		g.Advance(delta, speed)
	}

	s.canopy.Shimmer(elapsed, s.cfg.Canopy.ShimmerAmplitude)
	s.lights.Blink(elapsed, s.cfg.Lights.Dim)
	if s.groups[GroupSnow].Visible() {
		s.snow.Update(elapsed, delta)
	}
	if s.groups[GroupStrands].Visible() {
		for _, st := range s.strands {
			st.Update(elapsed)
		}
	}
	s.star.Update(elapsed)

	if s.debug {
		s.debugFrame(time.Since(t0))
	}
}

// SetSpeed eases the global animation speed toward v, clamped to [0,1].
func (s *Scene) SetSpeed(v float64) {
	before := s.speed.Target()
	s.speed.Set(v)
	if s.speed.Target() != before {
		s.emit(SceneEvent{Type: EventSpeed, Speed: s.speed.Target()})
	}
}

// Speed returns the current eased speed.
func (s *Scene) Speed() float64 {
	return s.speed.Current()
}

// SetVisible shows or hides a category. Generated data and rotation phase
// are kept; nothing is regenerated.
func (s *Scene) SetVisible(c Category, visible bool) {
	if c >= numCategories || s.Visible(c) == visible {
		return
	}
	s.setCategoryVisible(c, visible)
	s.emit(SceneEvent{Type: EventVisibility, Category: c, Visible: visible})
}

func (s *Scene) setCategoryVisible(c Category, visible bool) {
	for _, name := range categoryGroups[c] {
		s.groups[name].SetVisible(visible)
	}
}

// Visible reports whether a category is shown.
func (s *Scene) Visible(c Category) bool {
	if c >= numCategories {
		return false
	}
	for _, name := range categoryGroups[c] {
		if !s.groups[name].Visible() {
			return false
		}
	}
	return true
}

// SetEventSink sets the optional ECS bridge.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
}

func (s *Scene) emit(e SceneEvent) {
	if s.sink != nil {
		s.sink.EmitEvent(e)
	}
}

// SetDebugMode enables or disables debug logging. When enabled, generation
// and periodic update timings are printed to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Group returns the named group, or nil.
func (s *Scene) Group(name string) *Group {
	return s.groups[name]
}

// Groups returns every group in a fixed order. The returned slice MUST NOT be
// mutated.
func (s *Scene) Groups() []*Group {
	return s.ordered
}

// Layers returns every instance batch with its group, in draw order. Valid
// after generation; the returned slice MUST NOT be mutated.
func (s *Scene) Layers() []Layer {
	s.Generate()
	return s.layers
}

// InstanceCount returns the total number of placed instances.
func (s *Scene) InstanceCount() int {
	n := 0
	for _, l := range s.layers {
		n += l.Batch.Len()
	}
	return n
}

// PointCount returns the total number of particles across all fields.
func (s *Scene) PointCount() int {
	if !s.generated {
		return 0
	}
	return s.canopy.Len() + s.lights.Len() + s.snow.Len()
}

// Accessors generate the scene on first use.

func (s *Scene) Canopy() *PointField { s.Generate(); return s.canopy }
func (s *Scene) Lights() *PointField { s.Generate(); return s.lights }
func (s *Scene) Snow() *SnowField    { s.Generate(); return s.snow }
func (s *Scene) Baubles() *Batch     { s.Generate(); return s.baubles }
func (s *Scene) Bells() *Batch       { s.Generate(); return s.bells }
func (s *Scene) Stockings() *Batch   { s.Generate(); return s.stockings }
func (s *Scene) Gifts() *GiftPlan    { s.Generate(); return s.gifts }
func (s *Scene) Canes() *CanePlan    { s.Generate(); return s.canes }
func (s *Scene) Confetti() *Batch    { s.Generate(); return s.confetti }
func (s *Scene) FloorRibbons() *FloorRibbons {
	s.Generate()
	return s.floorRibbons
}
func (s *Scene) Tinsel() *Tinsel       { s.Generate(); return s.tinsel }
func (s *Scene) Star() *Star           { s.Generate(); return s.star }
func (s *Scene) Strands() []*Strand    { s.Generate(); return s.strands }
func (s *Scene) Textures() *Textures   { s.Generate(); return s.textures }
