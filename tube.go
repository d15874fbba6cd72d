package yuletide

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Tube is an indexed triangle mesh swept around a curve. Vertices are laid out
// ring by ring: ring i holds Radial+1 vertices (the seam is duplicated so UVs
// wrap cleanly). Geometry is built once and never mutated.
type Tube struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	// UVs holds u along the curve (0..1) and v around the ring (0..1).
	UVs     []mgl32.Vec2
	Indices []uint16

	Segments int
	Radial   int
	Radius   float32
}

// maxTubeVertices is the largest vertex count addressable by uint16 indices.
const maxTubeVertices = math.MaxUint16 + 1

// BuildTube sweeps a circle of the given radius along c. Segments and radial
// are clamped to at least 1 and 3; the segment count is reduced if the mesh
// would overflow 16-bit indices.
//
// Ring orientation uses parallel-transport frames: each ring's normal is the
// previous ring's normal rotated by the minimal rotation between successive
// tangents, so the tube never twists around its own axis.
func BuildTube(c *Curve, segments int, radius float32, radial int) *Tube {
	segments = max(segments, 1)
	radial = max(radial, 3)
	if (segments+1)*(radial+1) > maxTubeVertices {
		segments = maxTubeVertices/(radial+1) - 1
	}
	rings := segments + 1
	ringVerts := radial + 1

	t := &Tube{
		Positions: make([]mgl32.Vec3, rings*ringVerts),
		Normals:   make([]mgl32.Vec3, rings*ringVerts),
		UVs:       make([]mgl32.Vec2, rings*ringVerts),
		Indices:   make([]uint16, segments*radial*6),
		Segments:  segments,
		Radial:    radial,
		Radius:    radius,
	}

	tangent := c.TangentAt(0)
	normal := initialNormal(tangent)
	for i := 0; i < rings; i++ {
		u := float64(i) / float64(segments)
		center := c.PointAt(u)
		if i > 0 {
			next := c.TangentAt(u)
			normal = transportNormal(normal, tangent, next)
			tangent = next
		}
		binormal := tangent.Cross(normal).Normalize()

		for j := 0; j < ringVerts; j++ {
			v := float64(j) / float64(radial)
			a := v * twoPi
			sin, cos := math.Sincos(a)
			n := normal.Mul(float32(cos)).Add(binormal.Mul(float32(sin)))
			k := i*ringVerts + j
			t.Normals[k] = n
			t.Positions[k] = center.Add(n.Mul(radius))
			t.UVs[k] = mgl32.Vec2{float32(u), float32(v)}
		}
	}

	for i := 0; i < segments; i++ {
		for j := 0; j < radial; j++ {
			a := uint16(i*ringVerts + j)
			b := uint16((i+1)*ringVerts + j)
			ii := (i*radial + j) * 6
			t.Indices[ii+0] = a
			t.Indices[ii+1] = b
			t.Indices[ii+2] = a + 1
			t.Indices[ii+3] = b
			t.Indices[ii+4] = b + 1
			t.Indices[ii+5] = a + 1
		}
	}
	return t
}

// Ring returns the vertex positions of ring i.
func (t *Tube) Ring(i int) []mgl32.Vec3 {
	n := t.Radial + 1
	return t.Positions[i*n : (i+1)*n]
}

// initialNormal picks any unit vector perpendicular to tangent.
func initialNormal(tangent mgl32.Vec3) mgl32.Vec3 {
	ref := mgl32.Vec3{0, 1, 0}
	if math.Abs(float64(tangent.Dot(ref))) > 0.9 {
		ref = mgl32.Vec3{1, 0, 0}
	}
	return tangent.Cross(ref).Normalize()
}

// transportNormal rotates normal by the rotation taking prev onto next and
// re-orthogonalizes it against next.
func transportNormal(normal, prev, next mgl32.Vec3) mgl32.Vec3 {
	if prev.Dot(next) < 0.99999 {
		q := mgl32.QuatBetweenVectors(prev, next)
		normal = q.Rotate(normal)
	}
	n := normal.Sub(next.Mul(normal.Dot(next)))
	if n.Len() < 1e-6 {
		return initialNormal(next)
	}
	return n.Normalize()
}
