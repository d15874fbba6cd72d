package yuletide

import "math"

// Phase is the per-element (angular speed, offset) pair that drives blink and
// shimmer. It is drawn once at generation and never changes.
type Phase struct {
	Speed  float64
	Offset float64
}

// Wave returns sin(elapsed*speed + offset). It is stateless: the same inputs
// always produce the same value, so long runtimes accumulate no error.
func (p Phase) Wave(elapsed float64) float64 {
	return math.Sin(elapsed*p.Speed + p.Offset)
}

// ShimmerSize returns base scaled by a smooth pulse of the given amplitude.
func ShimmerSize(base, elapsed float64, p Phase, amplitude float64) float64 {
	return base * (1 + p.Wave(elapsed)*amplitude)
}

// BlinkSize returns base while the wave is positive and dim*base otherwise.
// Twinkle lights use this hard on/off policy.
func BlinkSize(base, elapsed float64, p Phase, dim float64) float64 {
	if p.Wave(elapsed) > 0 {
		return base
	}
	return base * dim
}

// BulbIntensity returns the color multiplier for a string-light bulb: on
// while sin(elapsed*rate + offset + strandOffset) is positive, dim otherwise.
// The strand offset keeps neighboring strands out of lockstep.
func BulbIntensity(elapsed, rate, offset, strandOffset, on, dim float64) float64 {
	if math.Sin(elapsed*rate+offset+strandOffset) > 0 {
		return on
	}
	return dim
}
