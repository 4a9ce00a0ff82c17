// internal/app/bench.go
package app

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"lab-backdrop/internal/carousel"
	"lab-backdrop/internal/config"
	"lab-backdrop/internal/event"
	"lab-backdrop/internal/frame"
	"lab-backdrop/internal/particle"
	"lab-backdrop/internal/utils"
	"lab-backdrop/pkg/render"
)

// BenchReport summarizes a headless run.
type BenchReport struct {
	Width, Height  int
	Frames         int
	Particles      int
	Circles        int // всего за прогон
	Lines          int
	MaxLines       int // максимум за кадр
	CarouselOffset float64
	Seed           int64
	Elapsed        time.Duration
}

// LinesPerFrame is the mean number of connection lines drawn per frame.
func (r BenchReport) LinesPerFrame() float64 {
	if r.Frames == 0 {
		return 0
	}
	return float64(r.Lines) / float64(r.Frames)
}

// RunBench drives the particle field and the carousel on a headless surface
// for the given number of frames. The pointer circles the surface center so
// the attraction path is exercised too.
func RunBench(settings config.Settings, width, height, frames int, logger *zap.Logger) (BenchReport, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if width <= 0 || height <= 0 {
		return BenchReport{}, fmt.Errorf("invalid bench surface %dx%d", width, height)
	}
	if frames <= 0 {
		return BenchReport{}, fmt.Errorf("invalid frame count %d", frames)
	}

	loop := frame.NewLoop()
	events := event.NewDispatcher()
	rng := utils.NewPRNGService(settings.Seed)
	surface := render.NewRecorder(width, height)

	field := particle.NewField(loop, events, rng, settings.ResolvedPalettes(), logger)
	field.Initialize(surface, settings.ColorMode)
	defer field.Dispose()

	c := carousel.New(settings.Carousel.Logos, settings.Carousel.ItemWidth)
	c.Start(loop)
	defer c.Dispose()

	report := BenchReport{
		Width:     width,
		Height:    height,
		Frames:    frames,
		Particles: len(field.Particles()),
		Seed:      rng.Seed(),
	}

	cx, cy := float64(width)/2, float64(height)/2
	orbit := math.Min(cx, cy) / 2
	start := time.Now()
	for i := 0; i < frames; i++ {
		angle := float64(i) * 0.02
		events.Dispatch(event.NewPointerMoved(cx+orbit*math.Cos(angle), cy+orbit*math.Sin(angle)))

		loop.Pump()

		report.Circles += len(surface.Circles)
		report.Lines += len(surface.Lines)
		if len(surface.Lines) > report.MaxLines {
			report.MaxLines = len(surface.Lines)
		}
	}
	report.Elapsed = time.Since(start)
	report.CarouselOffset = c.Offset()

	logger.Info("bench finished",
		zap.Int("particles", report.Particles),
		zap.Int("frames", report.Frames),
		zap.Int("circles", report.Circles),
		zap.Int("lines", report.Lines),
		zap.Int("max_lines", report.MaxLines),
		zap.Duration("elapsed", report.Elapsed))
	return report, nil
}
