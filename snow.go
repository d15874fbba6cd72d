package yuletide

import (
	"math"
	"math/rand/v2"
)

// SnowConfig controls the falling snow field.
type SnowConfig struct {
	Count int `yaml:"count"`
	// Area is the side length of the square the flakes fall through.
	Area float64 `yaml:"area"`
	// InitialY is the height band flakes start in.
	InitialY Range `yaml:"initialY"`
	Velocity Range `yaml:"velocity"`
	// Floor is the height below which a flake is recycled to Ceiling.
	Floor float64 `yaml:"floor"`
	// Ceiling and Jitter bound the respawn height: [Ceiling, Ceiling+Jitter).
	Ceiling float64 `yaml:"ceiling"`
	Jitter  float64 `yaml:"jitter"`
	// SwayRate is the horizontal drift in units per second at the crest of
	// the sway wave; SwayFrequency is the wave's angular speed.
	SwayRate      float64 `yaml:"swayRate"`
	SwayFrequency float64 `yaml:"swayFrequency"`
	Size          float64 `yaml:"size"`
}

// DefaultSnowConfig returns the snow used by the default scene.
func DefaultSnowConfig() SnowConfig {
	return SnowConfig{
		Count:         2500,
		Area:          60,
		InitialY:      Range{-5, 25},
		Velocity:      Range{0.4, 1.2},
		Floor:         -8,
		Ceiling:       20,
		Jitter:        5,
		SwayRate:      1.2,
		SwayFrequency: 0.5,
		Size:          0.25,
	}
}

// SnowField simulates falling flakes with wraparound recycling: a flake that
// drops below the floor is moved back above the ceiling rather than being
// destroyed, so the buffers never change size.
type SnowField struct {
	*PointField
	// Velocities is the immutable fall speed of each flake.
	Velocities []float32

	cfg SnowConfig
	rng *rand.Rand
}

// GenerateSnow builds the snow field. The rng is retained for respawns.
func GenerateSnow(cfg SnowConfig, rng *rand.Rand) *SnowField {
	f := newPointField(cfg.Count)
	f.BlendMode = BlendNormal
	s := &SnowField{
		PointField: f,
		Velocities: make([]float32, f.Len()),
		cfg:        cfg,
		rng:        rng,
	}
	for i := 0; i < f.Len(); i++ {
		x, z := s.randomXZ()
		p := Phase{Speed: cfg.SwayFrequency, Offset: rng.Float64() * twoPi}
		f.set(i, x, cfg.InitialY.Random(rng), z, ColorWhite, cfg.Size, p)
		s.Velocities[i] = float32(cfg.Velocity.Random(rng))
	}
	return s
}

func (s *SnowField) randomXZ() (float64, float64) {
	return centered(s.rng, s.cfg.Area/2), centered(s.rng, s.cfg.Area/2)
}

// Update advances every flake by delta seconds. Motion is scaled by delta, so
// the result does not depend on the frame rate.
func (s *SnowField) Update(elapsed, delta float64) {
	floor := float32(s.cfg.Floor)
	for i := range s.Velocities {
		pi := i * 3
		s.Positions[pi+1] -= s.Velocities[i] * float32(delta)

		sway := float32(math.Sin(elapsed*s.cfg.SwayFrequency+float64(s.Offsets[i])) * s.cfg.SwayRate * delta)
		s.Positions[pi] += sway
		s.Positions[pi+2] += sway

		if s.Positions[pi+1] < floor {
			x, z := s.randomXZ()
			s.Positions[pi] = float32(x)
			s.Positions[pi+1] = s.respawnY()
			s.Positions[pi+2] = float32(z)
		}
	}
	s.positionsDirty = true
}

// respawnY returns a height in [Ceiling, Ceiling+Jitter) at float32
// precision. When the jitter is lost to rounding the flake respawns exactly
// at Ceiling; a draw that rounds onto the upper bound steps just below it.
func (s *SnowField) respawnY() float32 {
	lo := float32(s.cfg.Ceiling)
	hi := float32(s.cfg.Ceiling + s.cfg.Jitter)
	if hi <= lo {
		return lo
	}
	y := float32(s.cfg.Ceiling + s.rng.Float64()*s.cfg.Jitter)
	if y >= hi {
		y = math.Nextafter32(hi, lo)
	}
	return max(y, lo)
}

// Config returns the configuration the field was generated with.
func (s *SnowField) Config() SnowConfig {
	return s.cfg
}
