package yuletide

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// arcDivisions is the resolution of the arc-length lookup table.
const arcDivisions = 200

// Curve is an immutable centripetal Catmull-Rom spline through a set of
// control points. Point samples by spline parameter; PointAt samples by
// normalized arc length.
type Curve struct {
	points []mgl32.Vec3
	cumLen []float64 // arc length at each of arcDivisions+1 parameter steps
}

// NewCurve builds a spline passing through every point. Fewer than two points
// produce a degenerate curve that always returns the first point (or the
// origin when empty).
func NewCurve(points []mgl32.Vec3) *Curve {
	c := &Curve{points: append([]mgl32.Vec3(nil), points...)}
	c.cumLen = make([]float64, arcDivisions+1)
	prev := c.Point(0)
	for i := 1; i <= arcDivisions; i++ {
		p := c.Point(float64(i) / arcDivisions)
		c.cumLen[i] = c.cumLen[i-1] + float64(p.Sub(prev).Len())
		prev = p
	}
	return c
}

// DrapeSegments is the number of straight samples a draped curve is fit
// through.
const DrapeSegments = 20

// BuildDrapedCurve returns a sagging curve between two anchors. Samples are
// linearly interpolated from start to end with a parabolic drop of
// 4t(1-t)*drop subtracted from Y, peaking at the midpoint.
func BuildDrapedCurve(start, end mgl32.Vec3, drop float32) *Curve {
	pts := make([]mgl32.Vec3, DrapeSegments+1)
	for i := range pts {
		t := float32(i) / DrapeSegments
		p := start.Add(end.Sub(start).Mul(t))
		p[1] -= 4 * t * (1 - t) * drop
		pts[i] = p
	}
	return NewCurve(pts)
}

// ControlPoints returns a copy of the points the curve interpolates.
func (c *Curve) ControlPoints() []mgl32.Vec3 {
	return append([]mgl32.Vec3(nil), c.points...)
}

// Length returns the approximate arc length.
func (c *Curve) Length() float64 {
	return c.cumLen[len(c.cumLen)-1]
}

// Point returns the spline position at parameter t in [0,1].
func (c *Curve) Point(t float64) mgl32.Vec3 {
	n := len(c.points)
	switch n {
	case 0:
		return mgl32.Vec3{}
	case 1:
		return c.points[0]
	}
	t = clamp01(t)

	p := float64(n-1) * t
	seg := int(math.Floor(p))
	w := p - float64(seg)
	if seg >= n-1 {
		seg = n - 2
		w = 1
	}

	p1 := c.points[seg]
	p2 := c.points[seg+1]
	var p0, p3 mgl32.Vec3
	if seg > 0 {
		p0 = c.points[seg-1]
	} else {
		p0 = p1.Mul(2).Sub(p2)
	}
	if seg+2 < n {
		p3 = c.points[seg+2]
	} else {
		p3 = p2.Mul(2).Sub(p1)
	}

	// Centripetal knot spacing: |p_i+1 - p_i|^0.5.
	dt0 := math.Pow(float64(p1.Sub(p0).LenSqr()), 0.25)
	dt1 := math.Pow(float64(p2.Sub(p1).LenSqr()), 0.25)
	dt2 := math.Pow(float64(p3.Sub(p2).LenSqr()), 0.25)
	if dt1 < 1e-4 {
		dt1 = 1
	}
	if dt0 < 1e-4 {
		dt0 = dt1
	}
	if dt2 < 1e-4 {
		dt2 = dt1
	}

	var out mgl32.Vec3
	for k := 0; k < 3; k++ {
		out[k] = float32(nonuniformCatmullRom(
			float64(p0[k]), float64(p1[k]), float64(p2[k]), float64(p3[k]),
			dt0, dt1, dt2, w))
	}
	return out
}

// nonuniformCatmullRom evaluates one coordinate of the segment p1..p2 at w.
func nonuniformCatmullRom(x0, x1, x2, x3, dt0, dt1, dt2, w float64) float64 {
	t1 := (x1-x0)/dt0 - (x2-x0)/(dt0+dt1) + (x2-x1)/dt1
	t2 := (x2-x1)/dt1 - (x3-x1)/(dt1+dt2) + (x3-x2)/dt2
	t1 *= dt1
	t2 *= dt1

	c0 := x1
	c1 := t1
	c2 := -3*x1 + 3*x2 - 2*t1 - t2
	c3 := 2*x1 - 2*x2 + t1 + t2
	return c0 + c1*w + c2*w*w + c3*w*w*w
}

// paramAt maps normalized arc length u to the spline parameter.
func (c *Curve) paramAt(u float64) float64 {
	total := c.Length()
	if total <= 0 {
		return clamp01(u)
	}
	target := clamp01(u) * total
	i := sort.SearchFloat64s(c.cumLen, target)
	if i <= 0 {
		return 0
	}
	if i > arcDivisions {
		return 1
	}
	before := c.cumLen[i-1]
	segLen := c.cumLen[i] - before
	frac := 0.0
	if segLen > 0 {
		frac = (target - before) / segLen
	}
	return (float64(i-1) + frac) / arcDivisions
}

// PointAt returns the position at normalized arc length u in [0,1], so equal
// steps in u are equal distances along the curve.
func (c *Curve) PointAt(u float64) mgl32.Vec3 {
	return c.Point(c.paramAt(u))
}

// TangentAt returns the unit tangent at normalized arc length u.
func (c *Curve) TangentAt(u float64) mgl32.Vec3 {
	const h = 1e-3
	t := c.paramAt(u)
	t0 := math.Max(0, t-h)
	t1 := math.Min(1, t+h)
	d := c.Point(t1).Sub(c.Point(t0))
	if d.Len() < 1e-9 {
		return mgl32.Vec3{0, 1, 0}
	}
	return d.Normalize()
}

// Samples returns n+1 evenly spaced points by arc length.
func (c *Curve) Samples(n int) []mgl32.Vec3 {
	if n < 1 {
		n = 1
	}
	out := make([]mgl32.Vec3, n+1)
	for i := range out {
		out[i] = c.PointAt(float64(i) / float64(n))
	}
	return out
}
