// internal/event/types.go
package event

import "lab-backdrop/internal/config"

const (
	PointerMoved     EventType = "PointerMoved"     // курсор сдвинулся, Data: Pointer
	SurfaceResized   EventType = "SurfaceResized"   // layout box поверхности изменился
	ColorModeChanged EventType = "ColorModeChanged" // Data: config.ColorMode
)

// Pointer is a pointer position in viewport coordinates.
type Pointer struct {
	ClientX, ClientY float64
}

// NewPointerMoved builds a PointerMoved event.
func NewPointerMoved(x, y float64) Event {
	return Event{Type: PointerMoved, Data: Pointer{ClientX: x, ClientY: y}}
}

// NewColorModeChanged builds a ColorModeChanged event.
func NewColorModeChanged(mode config.ColorMode) Event {
	return Event{Type: ColorModeChanged, Data: mode}
}
