// internal/ui/logo_strip.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"lab-backdrop/internal/carousel"
)

// LogoStrip рисует бегущую строку партнёров поверх фона.
type LogoStrip struct {
	carousel *carousel.Carousel
	face     font.Face
	Height   float32
}

func NewLogoStrip(c *carousel.Carousel, height float32) *LogoStrip {
	return &LogoStrip{
		carousel: c,
		face:     basicfont.Face7x13,
		Height:   height,
	}
}

// Draw renders the band at y across the whole screen width.
func (s *LogoStrip) Draw(screen *ebiten.Image, y float32, band, textColor color.Color) {
	width := screen.Bounds().Dx()
	vector.DrawFilledRect(screen, 0, y, float32(width), s.Height, band, false)

	itemWidth := s.carousel.ItemWidth()
	for _, slot := range s.carousel.Visible(float64(width)) {
		bounds := text.BoundString(s.face, slot.Label)
		// Центрируем подпись внутри слота
		tx := int(slot.X + (itemWidth-float64(bounds.Dx()))/2)
		ty := int(y + (s.Height+float32(bounds.Dy()))/2)
		text.Draw(screen, slot.Label, s.face, tx, ty, textColor)
	}
}
