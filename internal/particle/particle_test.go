package particle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lab-backdrop/internal/config"
	"lab-backdrop/internal/utils"
	"lab-backdrop/pkg/render"
)

// calmRand returns the midpoint of every range, so physics is deterministic.
type calmRand struct{}

func (calmRand) Range(min, max float64) float64 { return (min + max) / 2 }
func (calmRand) Spread(float64) float64         { return 0 }

func TestCount(t *testing.T) {
	cases := []struct {
		w, h, want int
	}{
		{1000, 1000, 100},
		{99, 99, 0},
		{1920, 1080, 207},
		{0, 500, 0},
		{-10, 500, 0},
		{100, 100, 1},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Count(c.w, c.h), "%dx%d", c.w, c.h)
	}
}

func TestSpawnRanges(t *testing.T) {
	rng := utils.NewPRNGService(1)
	particles := Spawn(rng, 800, 600)
	require.Len(t, particles, 48)

	for _, p := range particles {
		assert.True(t, p.X >= 0 && p.X < 800)
		assert.True(t, p.Y >= 0 && p.Y < 600)
		assert.True(t, p.VX >= -0.4 && p.VX < 0.4)
		assert.True(t, p.VY >= -0.4 && p.VY < 0.4)
		assert.True(t, p.Radius >= 1 && p.Radius < 3)
		assert.True(t, p.BaseOpacity >= 0.3 && p.BaseOpacity < 0.8)
		assert.True(t, p.PulseSpeed >= 0.01 && p.PulseSpeed < 0.03)
		assert.True(t, p.PulsePhase >= 0 && p.PulsePhase < 2*math.Pi)
	}
}

func TestAdvanceReflectsOffRightWall(t *testing.T) {
	p := Particle{X: 99, Y: 50, VX: 2, VY: 0.5}
	advance(&p, pointerState{}, calmRand{}, 100, 100)

	assert.Equal(t, 100.0, p.X, "position clamped back into bounds")
	assert.InDelta(t, 2*config.WallRestitution*config.Friction, p.VX, 1e-12)
	assert.Less(t, p.VX, 0.0)
	assert.InDelta(t, 50.5, p.Y, 1e-12)
}

func TestAdvanceReflectsOffTopWall(t *testing.T) {
	p := Particle{X: 50, Y: 0.5, VX: 0.5, VY: -3}
	advance(&p, pointerState{}, calmRand{}, 100, 100)

	assert.Equal(t, 0.0, p.Y)
	assert.Greater(t, p.VY, 0.0)
	assert.InDelta(t, 3*0.6*config.Friction, p.VY, 1e-12)
}

func TestAdvanceAttractsTowardPointer(t *testing.T) {
	p := Particle{X: 100, Y: 100, VX: 0.5, VY: 0.5}
	advance(&p, pointerState{x: 175, y: 100, valid: true}, calmRand{}, 400, 400)

	// dist 75: force = (150-75)/150*0.015 = 0.0075 along +x
	assert.InDelta(t, (0.5+0.0075)*config.Friction, p.VX, 1e-12)
	assert.InDelta(t, 0.5*config.Friction, p.VY, 1e-12)
}

func TestAdvanceIgnoresFarOrCoincidentPointer(t *testing.T) {
	far := Particle{X: 100, Y: 100, VX: 0.5, VY: 0.5}
	advance(&far, pointerState{x: 300, y: 100, valid: true}, calmRand{}, 400, 400)
	assert.InDelta(t, 0.5*config.Friction, far.VX, 1e-12)

	same := Particle{X: 100, Y: 100, VX: 0, VY: 0}
	// the particle moves by its velocity first, so the pointer sits on it only
	// when velocity is zero
	advance(&same, pointerState{x: 100, y: 100, valid: true}, calmRand{}, 400, 400)
	assert.False(t, math.IsNaN(same.VX) || math.IsNaN(same.VY))
}

func TestAdvanceKicksSlowParticles(t *testing.T) {
	p := Particle{X: 50, Y: 50, VX: 0.01, VY: -0.05}
	rng := utils.NewPRNGService(3)
	moved := false
	for i := 0; i < 20; i++ {
		advance(&p, pointerState{}, rng, 100, 100)
		if math.Abs(p.VX) > 0.02 || math.Abs(p.VY) > 0.06 {
			moved = true
		}
	}
	assert.True(t, moved, "min-speed floor must perturb slow particles")
}

func TestBoundsHoldOverManySteps(t *testing.T) {
	rng := utils.NewPRNGService(11)
	const w, h = 640.0, 480.0
	particles := Spawn(rng, int(w), int(h))
	ptr := pointerState{x: 320, y: 240, valid: true}
	for step := 0; step < 2000; step++ {
		for i := range particles {
			p := &particles[i]
			advance(p, ptr, rng, w, h)
			require.True(t, p.X >= 0 && p.X <= w, "x out of bounds: %v", p.X)
			require.True(t, p.Y >= 0 && p.Y <= h, "y out of bounds: %v", p.Y)
		}
	}
}

func TestDrawParticleClampsPulse(t *testing.T) {
	pal := config.DefaultPalettes().Get(config.PrimaryOnDark)
	rec := render.NewRecorder(100, 100)

	// base opacity near the top of its range and the smallest radius, sampled
	// across a full pulse period
	p := Particle{X: 10, Y: 10, Radius: 1.0, BaseOpacity: 0.79, PulseSpeed: 0.03, PulsePhase: 0}
	for step := 0; step < 20000; step += 7 {
		rec.Clear()
		drawParticle(rec, pal, &p, float64(step)*config.TimeStep*10)
		require.Len(t, rec.Circles, 1, "no halo for small particles")
		c := rec.Circles[0]
		assert.GreaterOrEqual(t, c.Radius, config.MinDrawRadius)
		assert.GreaterOrEqual(t, c.Paint.A, config.MinDrawOpacity)
		assert.LessOrEqual(t, c.Paint.A, config.MaxDrawOpacity)
	}

	low := Particle{X: 10, Y: 10, Radius: 2.5, BaseOpacity: 0.3, PulseSpeed: 0.01, PulsePhase: 3 * math.Pi / 2}
	rec.Clear()
	drawParticle(rec, pal, &low, 0)
	require.Len(t, rec.Circles, 2, "large particles get a halo")
	assert.Equal(t, config.MinDrawOpacity, rec.Circles[0].Paint.A)
	assert.InDelta(t, (2.5-0.25)*2, rec.Circles[1].Radius, 1e-9)
	assert.Equal(t, config.GlowMinOpacity, rec.Circles[1].Paint.A)
	assert.Equal(t, pal.Base.R, rec.Circles[1].Paint.R)
}

func TestConnectionsOncePerPair(t *testing.T) {
	pal := config.DefaultPalettes().Get(config.PrimaryOnDark)
	rec := render.NewRecorder(500, 500)
	particles := []Particle{
		{X: 0, Y: 0},
		{X: 60, Y: 80}, // 100 from #0
		{X: 200, Y: 0}, // 200 from #0, ~161 from #1
		{X: 320, Y: 0}, // exactly 120 from #2
	}
	for i := range particles {
		drawConnections(rec, pal, particles, i)
	}

	require.Len(t, rec.Lines, 1)
	l := rec.Lines[0]
	assert.Equal(t, [4]float64{0, 0, 60, 80}, [4]float64{l.X1, l.Y1, l.X2, l.Y2})
	assert.InDelta(t, (1-100.0/120)*0.35, l.Paint.A, 1e-12)
	assert.Equal(t, config.ConnectionLineWidth, l.Width)
}

func TestConnectionAlpha(t *testing.T) {
	assert.InDelta(t, 0.35, ConnectionAlpha(0), 1e-12)
	assert.InDelta(t, 0.175, ConnectionAlpha(60), 1e-12)
	assert.InDelta(t, 0, ConnectionAlpha(120), 1e-12)
}
