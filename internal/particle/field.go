// internal/particle/field.go
package particle

import (
	"go.uber.org/zap"

	"lab-backdrop/internal/config"
	"lab-backdrop/internal/event"
	"lab-backdrop/internal/frame"
	"lab-backdrop/pkg/render"
)

// Field animates a set of particles on one surface. Every public method is a
// no-op until Initialize has bound a ready surface, and again after Dispose.
// Field is driven by a single frame loop and is not safe for concurrent use.
type Field struct {
	sched    frame.Scheduler
	events   *event.Dispatcher
	rng      Rand
	palettes config.Palettes
	logger   *zap.Logger

	surface   render.Surface
	mode      config.ColorMode
	palette   render.Palette
	particles []Particle
	pointer   pointerState
	time      float64

	handle    frame.Handle
	scheduled bool
	disposers []func()
}

// NewField creates an unbound simulator. events may be nil when the host feeds
// pointer and resize notifications by calling the methods directly.
func NewField(sched frame.Scheduler, events *event.Dispatcher, rng Rand, palettes config.Palettes, logger *zap.Logger) *Field {
	if logger == nil {
		logger = zap.NewNop()
	}
	if palettes == nil {
		palettes = config.DefaultPalettes()
	}
	return &Field{
		sched:    sched,
		events:   events,
		rng:      rng,
		palettes: palettes,
		logger:   logger,
	}
}

// Initialize binds the field to surface, generates the particles and starts the
// frame loop. An unavailable surface leaves the field inert.
func (f *Field) Initialize(surface render.Surface, mode config.ColorMode) {
	if f.surface != nil {
		f.Dispose()
	}
	if surface == nil || !surface.Ready() {
		f.logger.Debug("surface not ready, particle field stays inert")
		return
	}

	f.surface = surface
	f.applyMode(mode)
	f.time = 0
	f.pointer = pointerState{}

	if f.events != nil {
		f.disposers = append(f.disposers,
			f.events.Subscribe(event.PointerMoved, event.ListenerFunc(func(e event.Event) {
				if p, ok := e.Data.(event.Pointer); ok {
					f.OnPointerMove(p.ClientX, p.ClientY)
				}
			})),
			f.events.Subscribe(event.SurfaceResized, event.ListenerFunc(func(event.Event) {
				f.OnSurfaceResize()
			})),
			f.events.Subscribe(event.ColorModeChanged, event.ListenerFunc(func(e event.Event) {
				if m, ok := e.Data.(config.ColorMode); ok {
					f.SetColorMode(m)
				}
			})),
		)
	}

	f.OnSurfaceResize()
	f.schedule()
}

// OnSurfaceResize resizes the surface to its layout box and replaces the whole
// particle collection.
func (f *Field) OnSurfaceResize() {
	if f.surface == nil {
		return
	}
	box := f.surface.Box()
	w, h := int(box.W), int(box.H)
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	f.surface.SetSize(w, h)
	f.particles = Spawn(f.rng, w, h)

	f.logger.Debug("particles regenerated",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Int("count", len(f.particles)))
}

// OnPointerMove stores the pointer in surface-local coordinates.
func (f *Field) OnPointerMove(clientX, clientY float64) {
	if f.surface == nil {
		return
	}
	box := f.surface.Box()
	f.pointer = pointerState{x: clientX - box.X, y: clientY - box.Y, valid: true}
}

// SetColorMode switches the palette used from the next frame on. Unknown modes
// fall back to primary-on-dark.
func (f *Field) SetColorMode(mode config.ColorMode) {
	if f.surface == nil {
		return
	}
	f.applyMode(mode)
}

func (f *Field) applyMode(mode config.ColorMode) {
	if !mode.Valid() {
		f.logger.Debug("unknown color mode, using default", zap.String("mode", string(mode)))
		mode = config.PrimaryOnDark
	}
	f.mode = mode
	f.palette = f.palettes.Get(mode)
}

// Tick advances simulated time by one fixed step, moves and draws every
// particle, then schedules itself for the next frame.
func (f *Field) Tick() {
	if f.surface == nil {
		return
	}
	f.time += config.TimeStep

	w, h := f.surface.Size()
	fw, fh := float64(w), float64(h)
	f.surface.Clear()

	// f.particles is re-read every frame: a resize replaces the slice
	particles := f.particles
	for i := range particles {
		p := &particles[i]
		advance(p, f.pointer, f.rng, fw, fh)
		drawParticle(f.surface, f.palette, p, f.time)
		drawConnections(f.surface, f.palette, particles, i)
	}

	f.schedule()
}

func (f *Field) schedule() {
	if f.sched == nil {
		return
	}
	if f.scheduled {
		f.sched.Cancel(f.handle)
	}
	f.handle = f.sched.Request(f.Tick)
	f.scheduled = true
}

// Dispose cancels the pending frame and drops all subscriptions. It is safe to
// call more than once.
func (f *Field) Dispose() {
	if f.scheduled {
		f.sched.Cancel(f.handle)
		f.scheduled = false
	}
	for _, dispose := range f.disposers {
		dispose()
	}
	f.disposers = nil

	if f.surface != nil {
		f.logger.Debug("particle field disposed", zap.Float64("time", f.time))
	}
	f.surface = nil
	f.particles = nil
	f.pointer = pointerState{}
}

// Bound reports whether the field is attached to a surface.
func (f *Field) Bound() bool { return f.surface != nil }

// Mode returns the active color mode.
func (f *Field) Mode() config.ColorMode { return f.mode }

// Time returns the simulated time.
func (f *Field) Time() float64 { return f.time }

// Particles returns a copy of the current particle collection.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Pointer returns the pointer in surface coordinates; ok is false before the
// first pointer event.
func (f *Field) Pointer() (x, y float64, ok bool) {
	return f.pointer.x, f.pointer.y, f.pointer.valid
}
