// internal/app/terminal.go
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"lab-backdrop/internal/carousel"
	"lab-backdrop/internal/config"
	"lab-backdrop/internal/event"
	"lab-backdrop/internal/frame"
	"lab-backdrop/internal/particle"
	"lab-backdrop/internal/utils"
	"lab-backdrop/pkg/render"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// Terminal runs the backdrop inside a terminal. The bottom row holds the logo
// marquee, the rest of the screen is the particle surface.
type Terminal struct {
	screen   tcell.Screen
	loop     *frame.Loop
	events   *event.Dispatcher
	surface  *render.TermSurface
	field    *particle.Field
	carousel *carousel.Carousel
	palettes config.Palettes
	mode     config.ColorMode
	changes  <-chan config.Settings
	logger   *zap.Logger
	cellW    int
}

func NewTerminal(screen tcell.Screen, settings config.Settings, changes <-chan config.Settings, logger *zap.Logger) *Terminal {
	if logger == nil {
		logger = zap.NewNop()
	}
	loop := frame.NewLoop()
	events := event.NewDispatcher()
	palettes := config.Palettes{}
	for mode, pal := range settings.ResolvedPalettes() {
		palettes[mode] = pal
	}
	rng := utils.NewPRNGService(settings.Seed)
	cellW, cellH := settings.Terminal.CellWidth, settings.Terminal.CellHeight

	t := &Terminal{
		screen:   screen,
		loop:     loop,
		events:   events,
		surface:  render.NewTermSurface(screen, cellW, cellH, palettes.Get(settings.ColorMode).Background),
		field:    particle.NewField(loop, events, rng, palettes, logger),
		carousel: carousel.New(settings.Carousel.Logos, settings.Carousel.ItemWidth),
		palettes: palettes,
		mode:     settings.ColorMode,
		changes:  changes,
		logger:   logger,
		cellW:    cellW,
	}
	events.Subscribe(event.ColorModeChanged, event.ListenerFunc(func(e event.Event) {
		if m, ok := e.Data.(config.ColorMode); ok {
			t.surface.SetBackground(t.palettes.Get(m).Background)
		}
	}))
	return t
}

// Field exposes the simulator, mostly for inspection.
func (t *Terminal) Field() *particle.Field { return t.field }

// Run blocks until ctx is done or the user quits with q, Esc or Ctrl-C.
func (t *Terminal) Run(ctx context.Context) error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal: %w", err)
	}
	t.screen.EnableMouse(tcell.MouseMotionEvents)
	t.screen.HideCursor()

	eventCh := make(chan tcell.Event, 100)
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return // экран закрыт
			}
			select {
			case eventCh <- ev:
			case <-done:
				return
			}
		}
	}()
	defer func() {
		close(done)
		t.screen.Fini()
		wg.Wait()
	}()

	t.layout()
	t.field.Initialize(t.surface, t.mode)
	t.carousel.Start(t.loop)
	defer t.field.Dispose()
	defer t.carousel.Dispose()

	err := frame.Run(ctx, t.loop, frameInterval, eventCh, t.handleEvent, t.present)
	if errors.Is(err, frame.ErrStopped) || ctx.Err() != nil {
		return nil
	}
	return err
}

func (t *Terminal) layout() bool {
	cols, rows := t.screen.Size()
	if rows > 0 {
		rows-- // последняя строка под бегущую строку
	}
	return t.surface.SetGrid(cols, rows)
}

func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
		if t.layout() {
			if !t.field.Bound() {
				t.field.Initialize(t.surface, t.mode)
			} else {
				t.events.Dispatch(event.Event{Type: event.SurfaceResized})
			}
		}
	case *tcell.EventMouse:
		if x, y, ok := t.pointerAt(ev.Position()); ok {
			t.events.Dispatch(event.NewPointerMoved(x, y))
		}
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'c':
			t.setMode(t.mode.Toggle())
		}
	}
	return true
}

// pointerAt converts a mouse cell to viewport pixels. Cells outside the
// particle surface (the marquee row) are not pointer positions.
func (t *Terminal) pointerAt(col, row int) (float64, float64, bool) {
	x, y := t.surface.CellCenter(col, row)
	if !t.surface.Box().Contains(x, y) {
		return 0, 0, false
	}
	return x, y, true
}

func (t *Terminal) setMode(mode config.ColorMode) {
	t.mode = mode
	t.events.Dispatch(event.NewColorModeChanged(mode))
}

// present runs after every pumped frame.
func (t *Terminal) present() {
	if t.changes != nil {
		select {
		case s := <-t.changes:
			for mode, pal := range s.ResolvedPalettes() {
				t.palettes[mode] = pal
			}
			t.setMode(s.ColorMode)
			t.logger.Debug("settings applied", zap.String("color_mode", string(s.ColorMode)))
		default:
		}
	}
	t.drawMarquee()
	t.screen.Show()
}

func (t *Terminal) drawMarquee() {
	cols, rows := t.screen.Size()
	if rows == 0 {
		return
	}
	row := rows - 1
	pal := t.palettes.Get(t.mode)
	style := tcell.StyleDefault.
		Background(tcell.NewRGBColor(int32(pal.Background.R), int32(pal.Background.G), int32(pal.Background.B))).
		Foreground(tcell.NewRGBColor(int32(pal.Base.R), int32(pal.Base.G), int32(pal.Base.B)))
	for col := 0; col < cols; col++ {
		t.screen.SetContent(col, row, ' ', nil, style)
	}

	slotCols := int(t.carousel.ItemWidth()) / t.cellW
	for _, slot := range t.carousel.Visible(float64(cols * t.cellW)) {
		label := []rune(slot.Label)
		start := int(slot.X)/t.cellW + (slotCols-len(label))/2
		for i, r := range label {
			col := start + i
			if col >= 0 && col < cols {
				t.screen.SetContent(col, row, r, nil, style)
			}
		}
	}
}

// RunTerminal opens the real terminal and runs the backdrop on it.
func RunTerminal(ctx context.Context, settings config.Settings, changes <-chan config.Settings, logger *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	return NewTerminal(screen, settings, changes, logger).Run(ctx)
}
