package yuletide

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// zoomAnim drives an animated distance change.
type zoomAnim struct {
	tween *gween.Tween
}

// Camera is a perspective camera orbiting the tree's vertical axis. It
// auto-rotates at a rate proportional to the scene speed; interactive orbit
// control belongs to the host.
type Camera struct {
	Target mgl32.Vec3
	// Distance is the horizontal distance from Target; Height is the eye
	// height above Target.
	Distance float64
	Height   float64
	Azimuth  float64

	FOV       float64 // vertical field of view in degrees
	Near, Far float64
	// MinDistance and MaxDistance clamp Distance.
	MinDistance, MaxDistance float64
	// AutoRotate is the orbit rate in radians per second at speed 1.
	AutoRotate float64

	zoom *zoomAnim
}

// NewCamera returns the default view: eye at (0, 3, 25) looking at the
// origin with a 50 degree field of view.
func NewCamera() *Camera {
	return &Camera{
		Distance:    25,
		Height:      3,
		Azimuth:     math.Pi / 2,
		FOV:         50,
		Near:        0.1,
		Far:         200,
		MinDistance: 8,
		MaxDistance: 40,
		AutoRotate:  twoPi / 60 * 0.5,
	}
}

// ZoomTo animates Distance to d over duration seconds.
func (c *Camera) ZoomTo(d float64, duration float32, easeFn ease.TweenFunc) {
	d = c.clampDistance(d)
	c.zoom = &zoomAnim{tween: gween.New(float32(c.Distance), float32(d), duration, easeFn)}
}

func (c *Camera) clampDistance(d float64) float64 {
	return math.Min(math.Max(d, c.MinDistance), c.MaxDistance)
}

// Update advances the zoom animation and the auto-rotation.
func (c *Camera) Update(dt, speed float64) {
	if c.zoom != nil {
		val, done := c.zoom.tween.Update(float32(dt))
		c.Distance = float64(val)
		if done {
			c.zoom = nil
		}
	}
	c.Distance = c.clampDistance(c.Distance)
	c.Azimuth = math.Mod(c.Azimuth+dt*c.AutoRotate*speed, twoPi)
}

// Eye returns the camera position.
func (c *Camera) Eye() mgl32.Vec3 {
	return c.Target.Add(vec3(math.Cos(c.Azimuth)*c.Distance, c.Height, math.Sin(c.Azimuth)*c.Distance))
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(), c.Target, mgl32.Vec3{0, 1, 0})
}

// Projection returns the perspective matrix for the given aspect ratio.
func (c *Camera) Projection(aspect float64) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(float32(c.FOV)), float32(aspect), float32(c.Near), float32(c.Far))
}

// Viewport converts world positions to screen pixels for one frame.
type Viewport struct {
	ViewProj mgl32.Mat4
	View     mgl32.Mat4
	Width    float64
	Height   float64
	// Focal is the projection scale in pixels for an object one unit wide
	// at unit view depth.
	Focal float64
}

// Viewport builds the projection state for a w by h pixel target.
func (c *Camera) Viewport(w, h int) Viewport {
	aspect := float64(w) / math.Max(float64(h), 1)
	view := c.View()
	return Viewport{
		ViewProj: c.Projection(aspect).Mul4(view),
		View:     view,
		Width:    float64(w),
		Height:   float64(h),
		Focal:    float64(h) / 2 / math.Tan(float64(mgl32.DegToRad(float32(c.FOV)))/2),
	}
}

// Project maps a world point to screen pixels. depth is the view-space
// distance in front of the camera; ok is false for points behind the near
// plane.
func (v *Viewport) Project(p mgl32.Vec3) (sx, sy, depth float64, ok bool) {
	clip := v.ViewProj.Mul4x1(p.Vec4(1))
	w := float64(clip.W())
	if w <= 1e-6 {
		return 0, 0, 0, false
	}
	nx := float64(clip.X()) / w
	ny := float64(clip.Y()) / w
	sx = (nx + 1) / 2 * v.Width
	sy = (1 - ny) / 2 * v.Height
	return sx, sy, w, true
}

// PixelSize returns the on-screen size of a world length at a view depth.
func (v *Viewport) PixelSize(size, depth float64) float64 {
	if depth <= 1e-6 {
		return 0
	}
	return size * v.Focal / depth
}
