// internal/ui/surface.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"lab-backdrop/pkg/render"
)

// EbitenSurface is a render.Surface that draws into an offscreen image which
// is blitted to the window in Draw. Drawing happens during Update; the image
// keeps the last frame until the next Draw.
type EbitenSurface struct {
	box    render.Rect
	canvas *ebiten.Image
	width  int
	height int
}

func NewEbitenSurface() *EbitenSurface {
	return &EbitenSurface{}
}

// Ready — поверхность готова после первого Layout с ненулевым размером.
func (s *EbitenSurface) Ready() bool {
	return s.box.W > 0 && s.box.H > 0
}

func (s *EbitenSurface) Box() render.Rect { return s.box }

// SetLayout records the window area the surface occupies. It returns true when
// the box changed, so the caller can raise a resize notification.
func (s *EbitenSurface) SetLayout(box render.Rect) bool {
	if box == s.box {
		return false
	}
	s.box = box
	return true
}

func (s *EbitenSurface) Size() (int, int) { return s.width, s.height }

func (s *EbitenSurface) SetSize(w, h int) {
	if w == s.width && h == s.height && s.canvas != nil {
		return
	}
	if s.canvas != nil {
		s.canvas.Deallocate()
		s.canvas = nil
	}
	s.width, s.height = w, h
	if w <= 0 || h <= 0 {
		return
	}
	s.canvas = ebiten.NewImage(w, h)
}

func (s *EbitenSurface) Clear() {
	if s.canvas != nil {
		s.canvas.Clear()
	}
}

func (s *EbitenSurface) FillCircle(x, y, radius float64, paint render.Paint) {
	if s.canvas == nil {
		return
	}
	vector.DrawFilledCircle(s.canvas, float32(x), float32(y), float32(radius), paint.NRGBA(), true)
}

func (s *EbitenSurface) StrokeLine(x1, y1, x2, y2, width float64, paint render.Paint) {
	if s.canvas == nil {
		return
	}
	vector.StrokeLine(s.canvas, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), paint.NRGBA(), true)
}

// Draw blits the last rendered frame to the screen at the layout box origin.
func (s *EbitenSurface) Draw(screen *ebiten.Image) {
	if s.canvas == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(s.box.X, s.box.Y)
	screen.DrawImage(s.canvas, op)
}
