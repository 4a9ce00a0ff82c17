// pkg/render/surface.go
package render

// Rect — прямоугольник в координатах окна (viewport).
type Rect struct {
	X, Y float64
	W, H float64
}

// Contains reports whether the viewport point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Surface is a rectangular 2D drawing target. Coordinates passed to the drawing
// primitives are surface-local pixels in [0, width] x [0, height].
type Surface interface {
	// Ready is false until the host has mounted the surface.
	Ready() bool
	// Box is the on-screen layout box in viewport coordinates.
	Box() Rect
	Size() (width, height int)
	SetSize(width, height int)
	Clear()
	FillCircle(x, y, radius float64, paint Paint)
	StrokeLine(x1, y1, x2, y2, width float64, paint Paint)
}
