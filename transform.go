package yuletide

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// composeTransform builds the model matrix for a position, Euler XYZ rotation
// and non-uniform scale.
//
// Composition order:
//
//	Scale -> RotateZ -> RotateY -> RotateX -> Translate
//
// which is T * Rx * Ry * Rz * S when applied to column vectors.
func composeTransform(pos, rot, scale mgl32.Vec3) mgl32.Mat4 {
	m := mgl32.Translate3D(pos[0], pos[1], pos[2])
	if rot[0] != 0 {
		m = m.Mul4(mgl32.HomogRotate3DX(rot[0]))
	}
	if rot[1] != 0 {
		m = m.Mul4(mgl32.HomogRotate3DY(rot[1]))
	}
	if rot[2] != 0 {
		m = m.Mul4(mgl32.HomogRotate3DZ(rot[2]))
	}
	return m.Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2]))
}

// rotateY rotates v about the vertical axis by angle radians.
func rotateY(v mgl32.Vec3, angle float32) mgl32.Vec3 {
	return mgl32.HomogRotate3DY(angle).Mul4x1(v.Vec4(1)).Vec3()
}

// transformPoint applies m to the point v.
func transformPoint(m mgl32.Mat4, v mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(v.Vec4(1)).Vec3()
}

// vec3 converts float64 components to an mgl32.Vec3.
func vec3(x, y, z float64) mgl32.Vec3 {
	return mgl32.Vec3{float32(x), float32(y), float32(z)}
}

// polar returns the point at angle and radius around the vertical axis at
// height y.
func polar(angle, radius, y float64) mgl32.Vec3 {
	return vec3(math.Cos(angle)*radius, y, math.Sin(angle)*radius)
}
