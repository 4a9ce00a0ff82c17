// pkg/render/term_surface.go
package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ink — что уже нарисовано в ячейке за текущий кадр.
type ink struct {
	alpha float64
	glyph rune
}

// TermSurface maps surface pixels onto terminal cells. Each cell covers
// cellW x cellH surface pixels; colors are blended over the background since a
// terminal cell has no alpha channel.
type TermSurface struct {
	screen tcell.Screen
	cellW  int
	cellH  int
	box    Rect
	width  int
	height int
	bg     colorful.Color
	cells  []ink
}

func NewTermSurface(screen tcell.Screen, cellW, cellH int, background color.RGBA) *TermSurface {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	s := &TermSurface{screen: screen, cellW: cellW, cellH: cellH}
	s.SetBackground(background)
	return s
}

// SetBackground changes the color the surface clears to and blends against.
func (s *TermSurface) SetBackground(c color.RGBA) {
	s.bg, _ = colorful.MakeColor(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
}

func (s *TermSurface) Ready() bool {
	return s.screen != nil && s.box.W > 0 && s.box.H > 0
}

func (s *TermSurface) Box() Rect { return s.box }

// SetGrid lays the surface over cols x rows terminal cells starting at the top
// left corner. It returns true when the box changed.
func (s *TermSurface) SetGrid(cols, rows int) bool {
	box := Rect{W: float64(cols * s.cellW), H: float64(rows * s.cellH)}
	if box == s.box {
		return false
	}
	s.box = box
	return true
}

// CellCenter converts a terminal cell to viewport pixel coordinates.
func (s *TermSurface) CellCenter(col, row int) (float64, float64) {
	return float64(col*s.cellW) + float64(s.cellW)/2, float64(row*s.cellH) + float64(s.cellH)/2
}

func (s *TermSurface) Size() (int, int) { return s.width, s.height }

func (s *TermSurface) SetSize(w, h int) {
	s.width, s.height = w, h
	s.cells = make([]ink, s.cols()*s.rows())
}

func (s *TermSurface) cols() int { return s.width / s.cellW }
func (s *TermSurface) rows() int { return s.height / s.cellH }

func (s *TermSurface) Clear() {
	for i := range s.cells {
		s.cells[i] = ink{}
	}
	style := tcell.StyleDefault.Background(s.tcellColor(s.bg))
	for row := 0; row < s.rows(); row++ {
		for col := 0; col < s.cols(); col++ {
			s.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (s *TermSurface) FillCircle(x, y, radius float64, paint Paint) {
	glyph := '·'
	switch {
	case radius >= 2.5:
		glyph = '●'
	case radius >= 1.5:
		glyph = '•'
	}
	col, row := s.cellOf(x, y)
	s.plot(col, row, glyph, paint)
}

func (s *TermSurface) StrokeLine(x1, y1, x2, y2, _ float64, paint Paint) {
	c0, r0 := s.cellOf(x1, y1)
	c1, r1 := s.cellOf(x2, y2)

	// Брезенхэм по ячейкам
	dc := absInt(c1 - c0)
	dr := -absInt(r1 - r0)
	sc, sr := 1, 1
	if c0 > c1 {
		sc = -1
	}
	if r0 > r1 {
		sr = -1
	}
	err := dc + dr
	for {
		s.plot(c0, r0, '∙', paint)
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * err
		if e2 >= dr {
			err += dr
			c0 += sc
		}
		if e2 <= dc {
			err += dc
			r0 += sr
		}
	}
}

func (s *TermSurface) cellOf(x, y float64) (int, int) {
	return int(math.Floor(x / float64(s.cellW))), int(math.Floor(y / float64(s.cellH)))
}

// plot keeps the strongest ink per cell, so a faint line never hides a particle.
func (s *TermSurface) plot(col, row int, glyph rune, paint Paint) {
	cols, rows := s.cols(), s.rows()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	i := row*cols + col
	if paint.A <= s.cells[i].alpha {
		return
	}
	s.cells[i] = ink{alpha: paint.A, glyph: glyph}

	base, _ := colorful.MakeColor(color.NRGBA{R: paint.R, G: paint.G, B: paint.B, A: 255})
	fg := s.bg.BlendRgb(base, math.Min(1, paint.A)).Clamped()
	style := tcell.StyleDefault.Foreground(s.tcellColor(fg)).Background(s.tcellColor(s.bg))
	s.screen.SetContent(col, row, glyph, nil, style)
}

func (s *TermSurface) tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
