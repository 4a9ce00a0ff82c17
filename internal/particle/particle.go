// internal/particle/particle.go
package particle

import (
	"math"

	"lab-backdrop/internal/config"
)

// Particle — одна точка фона. Only position and velocity change after spawn.
type Particle struct {
	X, Y   float64
	VX, VY float64

	Radius      float64
	BaseOpacity float64
	PulseSpeed  float64
	PulsePhase  float64
}

// Rand is the randomness the simulator needs; utils.PRNGService implements it.
type Rand interface {
	// Range returns a value in [min, max).
	Range(min, max float64) float64
	// Spread returns a value in [-amplitude, amplitude).
	Spread(amplitude float64) float64
}

// Count returns how many particles a width x height surface holds.
func Count(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return width * height / config.AreaPerParticle
}

// Spawn generates a fresh particle set for a width x height surface.
func Spawn(rng Rand, width, height int) []Particle {
	n := Count(width, height)
	particles := make([]Particle, n)
	w, h := float64(width), float64(height)
	for i := range particles {
		particles[i] = Particle{
			X:           rng.Range(0, w),
			Y:           rng.Range(0, h),
			VX:          rng.Spread(config.SpawnVelocity),
			VY:          rng.Spread(config.SpawnVelocity),
			Radius:      rng.Range(config.MinRadius, config.MaxRadius),
			BaseOpacity: rng.Range(config.MinBaseOpacity, config.MaxBaseOpacity),
			PulseSpeed:  rng.Range(config.MinPulseSpeed, config.MaxPulseSpeed),
			PulsePhase:  rng.Range(0, 2*math.Pi),
		}
	}
	return particles
}

// Pulse returns the unclamped opacity and radius of p at simulated time t.
func (p *Particle) Pulse(t float64) (opacity, radius float64) {
	opacity = p.BaseOpacity + math.Sin(t*p.PulseSpeed+p.PulsePhase)*config.PulseOpacityWave
	radius = p.Radius + math.Sin(t*p.PulseSpeed*2+p.PulsePhase)*config.PulseRadiusWave
	return opacity, radius
}
