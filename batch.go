package yuletide

import "github.com/go-gl/mathgl/mgl32"

// Instance is one placed ornament. Every field is always present regardless
// of Kind; unused fields keep their zero value.
type Instance struct {
	Kind     Kind
	Position mgl32.Vec3
	// Rotation holds Euler angles in radians, applied in XYZ order.
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
	Color    Color
	// Variant selects a texture or pattern for kinds that have several.
	Variant int
	// Parent is the index of what this instance rests on, in the batch or
	// arena it rests on (a gift in GiftPlan.Gifts for canes), or -1. Only
	// meaningful during generation.
	Parent int
}

// newInstance returns an Instance with unit scale, white color and no parent.
func newInstance(kind Kind) Instance {
	return Instance{
		Kind:   kind,
		Scale:  mgl32.Vec3{1, 1, 1},
		Color:  ColorWhite,
		Parent: -1,
	}
}

// Matrix returns the instance's model matrix.
func (in *Instance) Matrix() mgl32.Mat4 {
	return composeTransform(in.Position, in.Rotation, in.Scale)
}

// Batch is a fixed-length, index-addressed set of instances of one kind,
// rendered with a single instanced draw. Instances keep their generation
// order; the renderer addresses them by index.
type Batch struct {
	Kind      Kind
	Instances []Instance

	// Matrices and Colors are the committed per-instance buffers, rebuilt in
	// one pass by Commit.
	Matrices []mgl32.Mat4
	Colors   []float32

	dirty bool
}

// newBatch preallocates a batch of n instances of the given kind.
func newBatch(kind Kind, n int) *Batch {
	if n < 0 {
		n = 0
	}
	b := &Batch{
		Kind:      kind,
		Instances: make([]Instance, n),
		Matrices:  make([]mgl32.Mat4, n),
		Colors:    make([]float32, n*3),
	}
	for i := range b.Instances {
		b.Instances[i] = newInstance(kind)
	}
	return b
}

// Len returns the number of instances.
func (b *Batch) Len() int {
	return len(b.Instances)
}

// Commit recomputes every matrix and color from the instance records and
// flags the batch for re-upload. This is the only path by which instance data
// reaches the renderer.
func (b *Batch) Commit() {
	for i := range b.Instances {
		in := &b.Instances[i]
		b.Matrices[i] = composeTransform(in.Position, in.Rotation, in.Scale)
		b.Colors[i*3] = float32(in.Color.R)
		b.Colors[i*3+1] = float32(in.Color.G)
		b.Colors[i*3+2] = float32(in.Color.B)
	}
	b.dirty = true
}

// SetColorAt overwrites the committed color of instance i without touching
// its matrix. Used by per-frame animation.
func (b *Batch) SetColorAt(i int, c Color) {
	b.Colors[i*3] = float32(c.R)
	b.Colors[i*3+1] = float32(c.G)
	b.Colors[i*3+2] = float32(c.B)
	b.dirty = true
}

// Dirty reports whether the committed buffers changed since ClearDirty.
func (b *Batch) Dirty() bool { return b.dirty }

// ClearDirty resets the dirty flag after the renderer uploads the buffers.
func (b *Batch) ClearDirty() { b.dirty = false }
