package yuletide

import (
	"image"
	"image/draw"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// commandKind distinguishes the two primitive types the renderer emits.
type commandKind uint8

const (
	cmdSprite   commandKind = iota // camera-facing textured quad
	cmdTriangle                    // flat-shaded world triangle
)

// sprite atlas regions.
type spriteID uint8

const (
	spriteGlow spriteID = iota
	spriteDisc
	spriteWhite
)

// color32 is a compact RGBA color using float32, for draw commands only.
type color32 struct {
	R, G, B, A float32
}

// drawCommand is one projected primitive, sorted back to front before
// submission.
type drawCommand struct {
	kind   commandKind
	sprite spriteID
	depth  float32
	order  int
	color  color32

	// Sprite center and half size in pixels.
	x, y, half float32
	// Triangle corners in pixels.
	tri [3][2]float32
}

const (
	atlasCell = SpriteSize
	// maxBatchVerts keeps every batch addressable by uint16 indices.
	maxBatchVerts = math.MaxUint16 - 3
)

// kindRadius is the world radius of the sprite drawn for each sphere-like
// kind at unit scale.
var kindRadius = [...]float32{
	KindBauble:   1,
	KindBell:     0.22,
	KindStocking: 0.3,
	KindBowKnot:  1,
	KindBowLoop:  1,
	KindConfetti: 0.7,
	KindBulb:     1.6,
}

// cubeCorners and cubeFaces describe the unit cube used for boxes.
var cubeCorners = [8]mgl32.Vec3{
	{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5},
	{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5},
}

var cubeFaces = [6][4]int{
	{0, 1, 2, 3}, {5, 4, 7, 6}, {4, 0, 3, 7},
	{1, 5, 6, 2}, {3, 2, 6, 7}, {4, 5, 1, 0},
}

// Renderer projects a Scene through a Camera and draws it with
// ebiten.DrawTriangles. Shading is a single directional term; the renderer
// exists to display the generated buffers, not to reproduce materials.
//
// Single-threaded, no sync.
type Renderer struct {
	Background Color
	// PointScale multiplies every particle's world size.
	PointScale float64

	atlas *ebiten.Image
	light mgl32.Vec3

	cmds     []drawCommand
	sortBuf  []drawCommand
	additive []drawCommand
	verts    []ebiten.Vertex
	inds     []uint16

	// Geometry cached per generation, keyed on the gift plan identity.
	source      *GiftPlan
	caneTube    *Tube
	ribbonTubes []*Tube

	drawCalls int
}

// NewRenderer returns a renderer with the default night background.
func NewRenderer() *Renderer {
	return &Renderer{
		Background: Hex("#020617"),
		PointScale: 1,
		light:      mgl32.Vec3{0.5, 0.8, 0.4}.Normalize(),
	}
}

// DrawCalls returns the number of DrawTriangles calls made by the last Draw.
func (r *Renderer) DrawCalls() int { return r.drawCalls }

// ensureAtlas packs the glow sprite, the snow disc and a white block into
// one image so a whole pass shares a single source texture.
func (r *Renderer) ensureAtlas(tex *Textures) {
	if r.atlas != nil {
		return
	}
	img := image.NewRGBA(image.Rect(0, 0, atlasCell*3, atlasCell))
	draw.Draw(img, image.Rect(0, 0, atlasCell, atlasCell), tex.Glow, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(atlasCell, 0, atlasCell*2, atlasCell), tex.Snow, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(atlasCell*2, 0, atlasCell*3, atlasCell), image.White, image.Point{}, draw.Src)
	r.atlas = ebiten.NewImageFromImage(img)
}

// ensureGeometry builds the meshes shared by every instance of a kind.
func (r *Renderer) ensureGeometry(s *Scene) {
	gifts := s.Gifts()
	if r.source == gifts {
		return
	}
	r.source = gifts
	r.caneTube = BuildTube(CaneCurve(), 16, CaneTubeRadius, 8)
	fr := s.FloorRibbons()
	r.ribbonTubes = make([]*Tube, len(fr.Curves))
	tubeRadius := float32(s.Config().FloorRibbons.TubeRadius)
	for i, c := range fr.Curves {
		r.ribbonTubes[i] = BuildTube(c, 36, tubeRadius, 6)
	}
}

// Draw renders one frame of s onto screen.
func (r *Renderer) Draw(screen *ebiten.Image, s *Scene, cam *Camera) {
	r.ensureAtlas(s.Textures())
	screen.Fill(r.Background.nrgba())

	b := screen.Bounds()
	vp := cam.Viewport(b.Dx(), b.Dy())
	r.Collect(s, &vp)
	r.mergeSort()

	r.drawCalls = 0
	r.submit(screen, r.cmds, BlendNormal)
	r.submit(screen, r.additive, BlendAdd)
}

// Collect projects every visible element of s into draw commands. Normal
// commands are depth sorted by Draw; additive commands are order
// independent and drawn in a second pass.
func (r *Renderer) Collect(s *Scene, vp *Viewport) {
	r.ensureGeometry(s)
	r.cmds = r.cmds[:0]
	r.additive = r.additive[:0]

	r.collectField(s.Canopy(), s.Group(GroupCanopy), vp, spriteDisc)
	r.collectField(s.Lights(), s.Group(GroupLights), vp, spriteGlow)
	if g := s.Group(GroupSnow); g.Visible() {
		r.collectField(s.Snow().PointField, g, vp, spriteDisc)
	}

	for _, l := range s.Layers() {
		if !l.Group.Visible() {
			continue
		}
		r.collectBatch(l.Batch, l.Group, vp)
	}

	if g := s.Group(GroupTinsel); g.Visible() {
		tin := s.Tinsel()
		r.collectTube(tin.Tube, rotationY(g.Angle()), tin.Color, vp, nil)
	}
	if g := s.Group(GroupStrands); g.Visible() {
		for _, st := range s.Strands() {
			r.collectTube(st.Wire, mgl32.Ident4(), StrandWireColor, vp, nil)
		}
	}
	r.collectStar(s.Star(), s.Group(GroupStar), vp)
}

func rotationY(angle float64) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(float32(angle))
}

// collectField emits one sprite per point, rotated with the field's group.
func (r *Renderer) collectField(f *PointField, g *Group, vp *Viewport, sprite spriteID) {
	sin, cos := math.Sincos(g.Angle())
	s32, c32 := float32(sin), float32(cos)
	for i := 0; i < f.Len(); i++ {
		x, y, z := f.Position(i)
		// HomogRotate3DY convention: x' = x cos + z sin, z' = -x sin + z cos.
		p := mgl32.Vec3{x*c32 + z*s32, y, -x*s32 + z*c32}
		c := color32{f.Colors[i*3], f.Colors[i*3+1], f.Colors[i*3+2], 1}
		r.addSprite(p, float64(f.Sizes[i])*r.PointScale/2, c, sprite, f.BlendMode, vp)
	}
}

func (r *Renderer) addSprite(p mgl32.Vec3, radius float64, c color32, sprite spriteID, blend BlendMode, vp *Viewport) {
	sx, sy, depth, ok := vp.Project(p)
	if !ok {
		return
	}
	half := vp.PixelSize(radius, depth)
	if half < 0.35 {
		return
	}
	cmd := drawCommand{
		kind: cmdSprite, sprite: sprite, depth: float32(depth), color: c,
		x: float32(sx), y: float32(sy), half: float32(half),
	}
	if blend == BlendAdd {
		r.additive = append(r.additive, cmd)
		return
	}
	cmd.order = len(r.cmds)
	r.cmds = append(r.cmds, cmd)
}

func (r *Renderer) addTriangle(a, b, c mgl32.Vec3, col Color, vp *Viewport) {
	var cmd drawCommand
	var depth float64
	for k, p := range [3]mgl32.Vec3{a, b, c} {
		sx, sy, d, ok := vp.Project(p)
		if !ok {
			return
		}
		cmd.tri[k] = [2]float32{float32(sx), float32(sy)}
		depth += d
	}
	n := b.Sub(a).Cross(c.Sub(a))
	shade := 0.45
	if l := n.Len(); l > 1e-9 {
		shade += 0.55 * math.Abs(float64(n.Mul(1/l).Dot(r.light)))
	}
	cmd.kind = cmdTriangle
	cmd.sprite = spriteWhite
	cmd.depth = float32(depth / 3)
	cmd.color = color32{float32(col.R * shade), float32(col.G * shade), float32(col.B * shade), 1}
	cmd.order = len(r.cmds)
	r.cmds = append(r.cmds, cmd)
}

// collectBatch emits the primitives for every instance of a batch.
func (r *Renderer) collectBatch(b *Batch, g *Group, vp *Viewport) {
	rot := rotationY(g.Angle())
	for i := range b.Instances {
		in := &b.Instances[i]
		m := rot.Mul4(b.Matrices[i])
		col := Color{float64(b.Colors[i*3]), float64(b.Colors[i*3+1]), float64(b.Colors[i*3+2]), 1}

		switch b.Kind {
		case KindGift, KindRibbon, KindBowTail:
			r.collectCube(m, col, vp)
		case KindCandyCane:
			stripe := DefaultCaneStripes[in.Variant%len(DefaultCaneStripes)]
			r.collectTube(r.caneTube, m, stripe.Base, vp, &stripe.Stripe)
		case KindFloorRibbon:
			if i < len(r.ribbonTubes) {
				r.collectTube(r.ribbonTubes[i], m, col, vp, nil)
			}
		case KindStocking:
			fabric := DefaultFabrics[in.Variant%len(DefaultFabrics)]
			c := fabric.Base
			r.addSprite(transformPoint(m, mgl32.Vec3{}), r.instanceRadius(in), color32{float32(c.R), float32(c.G), float32(c.B), 1}, spriteDisc, BlendNormal, vp)
		case KindBulb:
			c := color32{float32(col.R), float32(col.G), float32(col.B), 1}
			r.addSprite(transformPoint(m, mgl32.Vec3{}), r.instanceRadius(in), c, spriteGlow, BlendAdd, vp)
		default:
			c := color32{float32(col.R), float32(col.G), float32(col.B), 1}
			r.addSprite(transformPoint(m, mgl32.Vec3{}), r.instanceRadius(in), c, spriteDisc, BlendNormal, vp)
		}
	}
}

func (r *Renderer) instanceRadius(in *Instance) float64 {
	k := float32(1)
	if int(in.Kind) < len(kindRadius) && kindRadius[in.Kind] > 0 {
		k = kindRadius[in.Kind]
	}
	s := max(in.Scale.X(), in.Scale.Y(), in.Scale.Z())
	return float64(s * k)
}

func (r *Renderer) collectCube(m mgl32.Mat4, col Color, vp *Viewport) {
	var w [8]mgl32.Vec3
	for i, c := range cubeCorners {
		w[i] = transformPoint(m, c)
	}
	for _, f := range cubeFaces {
		r.addTriangle(w[f[0]], w[f[1]], w[f[2]], col, vp)
		r.addTriangle(w[f[0]], w[f[2]], w[f[3]], col, vp)
	}
}

// collectTube emits every triangle of t under m. A non-nil stripe alternates
// the color every other pair of rings.
func (r *Renderer) collectTube(t *Tube, m mgl32.Mat4, col Color, vp *Viewport, stripe *Color) {
	ringVerts := t.Radial + 1
	for i := 0; i+2 < len(t.Indices); i += 3 {
		a := transformPoint(m, t.Positions[t.Indices[i]])
		b := transformPoint(m, t.Positions[t.Indices[i+1]])
		c := transformPoint(m, t.Positions[t.Indices[i+2]])
		fc := col
		if stripe != nil && (int(t.Indices[i])/ringVerts/2)%2 == 1 {
			fc = *stripe
		}
		r.addTriangle(a, b, c, fc, vp)
	}
}

func (r *Renderer) collectStar(st *Star, g *Group, vp *Viewport) {
	m := mgl32.Translate3D(0, float32(st.Y), 0).Mul4(rotationY(g.Angle()))
	for i := 0; i+2 < len(st.Indices); i += 3 {
		a := transformPoint(m, st.Vertices[st.Indices[i]])
		b := transformPoint(m, st.Vertices[st.Indices[i+1]])
		c := transformPoint(m, st.Vertices[st.Indices[i+2]])
		r.addTriangle(a, b, c, st.Color, vp)
	}
	glow := color32{float32(st.Glow.R), float32(st.Glow.G), float32(st.Glow.B), 1}
	r.addSprite(transformPoint(m, mgl32.Vec3{}), 1.2, glow, spriteGlow, BlendAdd, vp)
}

// commandLessOrEqual returns true if a should draw before or with b: farther
// first, then emission order for stability.
func commandLessOrEqual(a, b *drawCommand) bool {
	if a.depth != b.depth {
		return a.depth > b.depth
	}
	return a.order <= b.order
}

// mergeSort sorts r.cmds in place using r.sortBuf as scratch space.
// Bottom-up merge sort: zero allocations after the sort buffer reaches its
// high-water mark.
func (r *Renderer) mergeSort() {
	n := len(r.cmds)
	if n <= 1 {
		return
	}
	if cap(r.sortBuf) < n {
		r.sortBuf = make([]drawCommand, n)
	}
	r.sortBuf = r.sortBuf[:n]

	a, b := r.cmds, r.sortBuf
	swapped := false
	for width := 1; width < n; width *= 2 {
		for lo := 0; lo < n; lo += 2 * width {
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}
	if swapped {
		copy(r.cmds, r.sortBuf)
	}
}

// mergeRun merges the sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []drawCommand, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if commandLessOrEqual(&src[i], &src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	k += copy(dst[k:hi], src[i:mid])
	copy(dst[k:hi], src[j:hi])
}

// submit batches commands into as few DrawTriangles calls as uint16
// indices allow.
func (r *Renderer) submit(dst *ebiten.Image, cmds []drawCommand, blend BlendMode) {
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
	opts := &ebiten.DrawTrianglesOptions{Blend: blend.EbitenBlend()}

	flush := func() {
		if len(r.inds) == 0 {
			return
		}
		dst.DrawTriangles(r.verts, r.inds, r.atlas, opts)
		r.drawCalls++
		r.verts = r.verts[:0]
		r.inds = r.inds[:0]
	}

	for i := range cmds {
		if len(r.verts) >= maxBatchVerts {
			flush()
		}
		c := &cmds[i]
		base := uint16(len(r.verts))
		switch c.kind {
		case cmdSprite:
			u0 := float32(int(c.sprite) * atlasCell)
			u1 := u0 + atlasCell
			r.verts = append(r.verts,
				vertex(c.x-c.half, c.y-c.half, u0, 0, c.color),
				vertex(c.x+c.half, c.y-c.half, u1, 0, c.color),
				vertex(c.x+c.half, c.y+c.half, u1, atlasCell, c.color),
				vertex(c.x-c.half, c.y+c.half, u0, atlasCell, c.color),
			)
			r.inds = append(r.inds, base, base+1, base+2, base, base+2, base+3)
		case cmdTriangle:
			// Sample the middle of the white block so filtering never bleeds.
			u := float32(atlasCell*2 + atlasCell/2)
			v := float32(atlasCell / 2)
			for _, p := range c.tri {
				r.verts = append(r.verts, vertex(p[0], p[1], u, v, c.color))
			}
			r.inds = append(r.inds, base, base+1, base+2)
		}
	}
	flush()
}

func vertex(x, y, u, v float32, c color32) ebiten.Vertex {
	return ebiten.Vertex{
		DstX: x, DstY: y, SrcX: u, SrcY: v,
		ColorR: c.R, ColorG: c.G, ColorB: c.B, ColorA: c.A,
	}
}
