package render_test

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lab-backdrop/pkg/render"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	blue  = render.Palette{Base: color.RGBA{0, 0, 255, 255}, Background: black}
)

func TestPaintNRGBA(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 128}, render.Paint{R: 1, G: 2, B: 3, A: 0.5}.NRGBA())
	assert.Equal(t, uint8(255), render.Paint{A: 3}.NRGBA().A)
	assert.Equal(t, uint8(0), render.Paint{A: -1}.NRGBA().A)
	assert.Equal(t, render.Paint{R: 0, G: 0, B: 255, A: 0.25}, blue.Alpha(0.25))
}

func TestRectContains(t *testing.T) {
	r := render.Rect{X: 10, Y: 10, W: 5, H: 5}
	assert.True(t, r.Contains(10, 10))
	assert.False(t, r.Contains(15, 12))
}

func TestRecorderKeepsLastFrame(t *testing.T) {
	rec := render.NewRecorder(10, 10)
	require.True(t, rec.Ready())
	rec.FillCircle(1, 1, 1, blue.Alpha(1))
	rec.StrokeLine(0, 0, 1, 1, 1, blue.Alpha(1))
	rec.Clear()
	rec.FillCircle(2, 2, 1, blue.Alpha(1))

	assert.Len(t, rec.Circles, 1)
	assert.Empty(t, rec.Lines)
	assert.Equal(t, 1, rec.Clears)
	assert.False(t, render.NewUnmountedRecorder().Ready())
}

func newTermSurface(t *testing.T) (*render.TermSurface, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(10, 5)

	s := render.NewTermSurface(screen, 8, 16, black)
	require.False(t, s.Ready())
	require.True(t, s.SetGrid(10, 5))
	require.False(t, s.SetGrid(10, 5))
	box := s.Box()
	s.SetSize(int(box.W), int(box.H))
	s.Clear()
	return s, screen
}

func TestTermSurfacePlotsCircleInCell(t *testing.T) {
	s, screen := newTermSurface(t)
	require.True(t, s.Ready())

	s.FillCircle(12, 20, 2.8, blue.Alpha(1))
	r, _, style, _ := screen.GetContent(1, 1)
	assert.Equal(t, '●', r)
	fg, _, _ := style.Decompose()
	red, green, b := fg.RGB()
	assert.Equal(t, [3]int32{0, 0, 255}, [3]int32{red, green, b})

	s.FillCircle(20, 4, 1.0, blue.Alpha(0.5))
	r, _, style, _ = screen.GetContent(2, 0)
	assert.Equal(t, '·', r)
	fg, _, _ = style.Decompose()
	_, _, b = fg.RGB()
	assert.InDelta(t, 128, b, 2, "half alpha blends halfway to the background")
}

func TestTermSurfaceStrongerInkWins(t *testing.T) {
	s, screen := newTermSurface(t)

	s.FillCircle(4, 4, 2.0, blue.Alpha(0.6))
	s.StrokeLine(0, 4, 30, 4, 1, blue.Alpha(0.2))

	r, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, '•', r, "faint line must not hide the particle")
	for col := 1; col <= 3; col++ {
		r, _, _, _ = screen.GetContent(col, 0)
		assert.Equal(t, '∙', r)
	}
	r, _, _, _ = screen.GetContent(4, 0)
	assert.Equal(t, ' ', r)
}

func TestTermSurfaceIgnoresOutside(t *testing.T) {
	s, _ := newTermSurface(t)
	assert.NotPanics(t, func() {
		s.FillCircle(-5, -5, 1, blue.Alpha(1))
		s.FillCircle(1000, 1000, 1, blue.Alpha(1))
		s.StrokeLine(-50, -50, 500, 500, 1, blue.Alpha(1))
	})
}

func TestTermSurfaceCellCenter(t *testing.T) {
	s, _ := newTermSurface(t)
	x, y := s.CellCenter(2, 1)
	assert.Equal(t, 20.0, x)
	assert.Equal(t, 24.0, y)
}
