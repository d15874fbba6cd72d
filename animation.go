package yuletide

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// SpeedTweenDuration is how long a speed change takes to settle, in seconds.
const SpeedTweenDuration = 0.6

// SpeedControl eases the global animation speed toward its target instead of
// snapping, so dragging a speed control never jerks the rotation groups.
//
// There is no global animation manager; the scene calls Update every frame.
type SpeedControl struct {
	current float64
	target  float64
	tween   *gween.Tween
	ease    ease.TweenFunc
}

// NewSpeedControl starts at speed v, clamped to [0,1].
func NewSpeedControl(v float64) *SpeedControl {
	v = clamp01(finite(v))
	return &SpeedControl{current: v, target: v, ease: ease.OutCubic}
}

// Set begins easing toward v, clamped to [0,1]. Setting the current target
// again is a no-op.
func (c *SpeedControl) Set(v float64) {
	v = clamp01(finite(v))
	if v == c.target {
		return
	}
	c.target = v
	c.tween = gween.New(float32(c.current), float32(v), SpeedTweenDuration, c.ease)
}

// Snap jumps straight to v without easing.
func (c *SpeedControl) Snap(v float64) {
	v = clamp01(finite(v))
	c.current, c.target, c.tween = v, v, nil
}

// Update advances the easing by dt seconds and returns the current speed.
func (c *SpeedControl) Update(dt float64) float64 {
	if c.tween == nil {
		return c.current
	}
	val, finished := c.tween.Update(float32(dt))
	c.current = clamp01(float64(val))
	if finished {
		c.current = c.target
		c.tween = nil
	}
	return c.current
}

// Current returns the eased speed.
func (c *SpeedControl) Current() float64 { return c.current }

// Target returns the speed being eased toward.
func (c *SpeedControl) Target() float64 { return c.target }

// Settled reports whether no easing is in progress.
func (c *SpeedControl) Settled() bool { return c.tween == nil }
