// internal/particle/physics.go
package particle

import (
	"math"

	"lab-backdrop/internal/config"
	"lab-backdrop/internal/utils"
)

// pointerState — позиция курсора в координатах поверхности.
type pointerState struct {
	x, y  float64
	valid bool
}

// advance moves p by one fixed step inside a w x h surface.
func advance(p *Particle, ptr pointerState, rng Rand, w, h float64) {
	// Курсор притягивает частицы (не отталкивает)
	if ptr.valid {
		dx := ptr.x - p.X
		dy := ptr.y - p.Y
		dist := math.Hypot(dx, dy)
		if dist < config.PointerRadius && dist > 0 {
			force := (config.PointerRadius - dist) / config.PointerRadius * config.PointerStrength
			p.VX += dx / dist * force
			p.VY += dy / dist * force
		}
	}

	p.VX += rng.Spread(config.JitterAmplitude)
	p.VY += rng.Spread(config.JitterAmplitude)

	p.X += p.VX
	p.Y += p.VY

	if p.X < 0 || p.X > w {
		p.VX *= config.WallRestitution
		p.X = utils.Clamp(p.X, 0, w)
	}
	if p.Y < 0 || p.Y > h {
		p.VY *= config.WallRestitution
		p.Y = utils.Clamp(p.Y, 0, h)
	}

	p.VX *= config.Friction
	p.VY *= config.Friction

	// never let a particle come to rest
	if math.Abs(p.VX) < config.MinSpeed {
		p.VX += rng.Spread(config.MinSpeedKick)
	}
	if math.Abs(p.VY) < config.MinSpeed {
		p.VY += rng.Spread(config.MinSpeedKick)
	}
}
