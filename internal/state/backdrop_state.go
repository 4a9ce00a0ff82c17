// internal/state/backdrop_state.go
package state

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"lab-backdrop/internal/carousel"
	"lab-backdrop/internal/config"
	"lab-backdrop/internal/event"
	"lab-backdrop/internal/frame"
	"lab-backdrop/internal/particle"
	"lab-backdrop/internal/ui"
	"lab-backdrop/internal/utils"
	"lab-backdrop/pkg/render"
)

// BackdropState — главный экран: фон из частиц, лента логотипов и
// переключатель палитры.
type BackdropState struct {
	loop     *frame.Loop
	events   *event.Dispatcher
	surface  *ui.EbitenSurface
	field    *particle.Field
	carousel *carousel.Carousel
	strip    *ui.LogoStrip

	indicator *ui.ModeIndicator
	palettes  config.Palettes
	mode      config.ColorMode
	changes   <-chan config.Settings
	logger    *zap.Logger

	cursorX, cursorY int
	cursorSeen       bool
}

// NewBackdropState wires the view. changes may be nil when the config file is
// not watched.
func NewBackdropState(settings config.Settings, changes <-chan config.Settings, logger *zap.Logger) *BackdropState {
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
	logger.Info("backdrop state created", zap.Int64("seed", rng.Seed()), zap.String("color_mode", string(settings.ColorMode)))

	c := carousel.New(settings.Carousel.Logos, settings.Carousel.ItemWidth)
	return &BackdropState{
		loop:      loop,
		events:    events,
		surface:   ui.NewEbitenSurface(),
		field:     particle.NewField(loop, events, rng, palettes, logger),
		carousel:  c,
		strip:     ui.NewLogoStrip(c, config.CarouselHeight),
		indicator: ui.NewModeIndicator(float32(settings.Window.Width-config.IndicatorOffsetX), config.IndicatorOffsetX, config.IndicatorRadius),
		palettes:  palettes,
		mode:      settings.ColorMode,
		changes:   changes,
		logger:    logger,
	}
}

func (b *BackdropState) Enter() {
	b.carousel.Start(b.loop)
	b.field.Initialize(b.surface, b.mode) // до первого Layout поле останется пустым
}

// Resize receives the window size from Layout.
func (b *BackdropState) Resize(width, height int) {
	box := render.Rect{W: float64(width), H: float64(height)}
	if !b.surface.SetLayout(box) {
		return
	}
	b.indicator.X = float32(width - config.IndicatorOffsetX)
	b.events.Dispatch(event.Event{Type: event.SurfaceResized})
}

// Update ignores deltaTime: the field and the carousel advance one fixed step per frame.
func (b *BackdropState) Update(deltaTime float64) {
	b.drainSettings()

	if !b.field.Bound() && b.surface.Ready() {
		b.field.Initialize(b.surface, b.mode)
	}

	x, y := ebiten.CursorPosition()
	if !b.cursorSeen || x != b.cursorX || y != b.cursorY {
		b.cursorX, b.cursorY, b.cursorSeen = x, y, true
		b.events.Dispatch(event.NewPointerMoved(float64(x), float64(y)))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		b.setMode(b.mode.Toggle())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) &&
		b.indicator.IsClicked(float32(x), float32(y)) &&
		b.indicator.HandleClick(time.Now()) {
		b.setMode(b.mode.Toggle())
	}

	// Кадр: тик поля и карусели
	b.loop.Pump()
}

func (b *BackdropState) drainSettings() {
	if b.changes == nil {
		return
	}
	select {
	case s := <-b.changes:
		for mode, pal := range s.ResolvedPalettes() {
			b.palettes[mode] = pal
		}
		b.setMode(s.ColorMode)
	default:
	}
}

func (b *BackdropState) setMode(mode config.ColorMode) {
	b.mode = mode
	b.events.Dispatch(event.NewColorModeChanged(mode))
	b.logger.Debug("color mode changed", zap.String("mode", string(mode)))
}

func (b *BackdropState) Draw(screen *ebiten.Image) {
	pal := b.palettes.Get(b.mode)
	screen.Fill(pal.Background)
	b.surface.Draw(screen)

	band, textColor := config.CarouselBandDark, config.TextLightColor
	if b.mode == config.AccentOnLight {
		band, textColor = config.CarouselBandLight, config.TextDarkColor
	}
	height := screen.Bounds().Dy()
	b.strip.Draw(screen, float32(height)-b.strip.Height, band, textColor)
	b.indicator.Draw(screen, pal.Base)
}

func (b *BackdropState) Exit() {
	b.field.Dispose()
	b.carousel.Dispose()
}
