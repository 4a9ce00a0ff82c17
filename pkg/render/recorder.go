// pkg/render/recorder.go
package render

// Circle is a recorded FillCircle call.
type Circle struct {
	X, Y, Radius float64
	Paint        Paint
}

// Line is a recorded StrokeLine call.
type Line struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Paint          Paint
}

// Recorder is a headless Surface. It keeps the draw calls issued since the last
// Clear, so a frame can be inspected after it has been rendered.
type Recorder struct {
	box     Rect
	width   int
	height  int
	mounted bool

	Circles []Circle
	Lines   []Line
	Clears  int
}

// NewRecorder returns a mounted recorder whose layout box is w x h at the origin.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{
		box:     Rect{W: float64(w), H: float64(h)},
		mounted: true,
	}
}

// NewUnmountedRecorder returns a recorder that reports Ready() == false.
func NewUnmountedRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Ready() bool { return r.mounted }

func (r *Recorder) Box() Rect { return r.box }

// SetBox moves or resizes the layout box, as a host layout pass would.
func (r *Recorder) SetBox(box Rect) { r.box = box }

func (r *Recorder) Size() (int, int) { return r.width, r.height }

func (r *Recorder) SetSize(w, h int) {
	r.width, r.height = w, h
}

func (r *Recorder) Clear() {
	r.Circles = r.Circles[:0]
	r.Lines = r.Lines[:0]
	r.Clears++
}

func (r *Recorder) FillCircle(x, y, radius float64, paint Paint) {
	r.Circles = append(r.Circles, Circle{X: x, Y: y, Radius: radius, Paint: paint})
}

func (r *Recorder) StrokeLine(x1, y1, x2, y2, width float64, paint Paint) {
	r.Lines = append(r.Lines, Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width, Paint: paint})
}
