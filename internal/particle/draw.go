// internal/particle/draw.go
package particle

import (
	"math"

	"lab-backdrop/internal/config"
	"lab-backdrop/internal/utils"
	"lab-backdrop/pkg/render"
)

// drawParticle renders the core dot and, for the larger particles, a soft halo.
func drawParticle(s render.Surface, pal render.Palette, p *Particle, t float64) {
	opacity, radius := p.Pulse(t)
	alpha := utils.Clamp(opacity, config.MinDrawOpacity, config.MaxDrawOpacity)

	s.FillCircle(p.X, p.Y, math.Max(config.MinDrawRadius, radius), pal.Alpha(alpha))

	if p.Radius > config.GlowMinBaseRadius {
		glow := math.Max(config.GlowMinOpacity, opacity*config.GlowOpacityFactor)
		s.FillCircle(p.X, p.Y, radius*config.GlowRadiusFactor, pal.Alpha(glow))
	}
}

// drawConnections links particles[i] to every later particle closer than the
// connection distance, so each unordered pair is considered once.
func drawConnections(s render.Surface, pal render.Palette, particles []Particle, i int) {
	a := &particles[i]
	for j := i + 1; j < len(particles); j++ {
		b := &particles[j]
		dist := math.Hypot(a.X-b.X, a.Y-b.Y)
		if dist < config.ConnectionDistance {
			alpha := ConnectionAlpha(dist)
			s.StrokeLine(a.X, a.Y, b.X, b.Y, config.ConnectionLineWidth, pal.Alpha(alpha))
		}
	}
}

// ConnectionAlpha is the opacity of a line between two particles dist apart.
func ConnectionAlpha(dist float64) float64 {
	return (1 - dist/config.ConnectionDistance) * config.ConnectionOpacity
}
