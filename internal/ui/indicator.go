// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"lab-backdrop/internal/config"
)

// ModeIndicator — кружок в углу окна, показывает текущую палитру и
// переключает её по клику.
type ModeIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewModeIndicator(x, y, radius float32) *ModeIndicator {
	return &ModeIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw отрисовывает индикатор, с коротким "пульсом" после клика
func (i *ModeIndicator) Draw(screen *ebiten.Image, fill color.Color) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, fill, true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1, config.IndicatorStroke, true)
}

// IsClicked проверяет, был ли клик внутри индикатора
func (i *ModeIndicator) IsClicked(x, y float32) bool {
	dx := x - i.X
	dy := y - i.Y
	return dx*dx+dy*dy <= i.Radius*i.Radius
}

// HandleClick registers a click unless it falls within the cooldown of the
// previous one. It reports whether the click was accepted.
func (i *ModeIndicator) HandleClick(now time.Time) bool {
	if now.Sub(i.LastClickTime) < time.Duration(config.ClickCooldown)*time.Millisecond {
		return false
	}
	i.LastClickTime = now
	return true
}
