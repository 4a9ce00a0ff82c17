// internal/carousel/carousel.go
package carousel

import (
	"lab-backdrop/internal/config"
	"lab-backdrop/internal/frame"
)

// Slot is one visible item: its label and left edge relative to the strip.
type Slot struct {
	Label string
	X     float64
}

// Carousel is an endless marquee. The item list is repeated CarouselCopies
// times and the offset wraps after one full set, so the wrap is invisible.
type Carousel struct {
	items     []string
	setCount  int
	itemWidth float64
	step      float64
	offset    float64

	sched     frame.Scheduler
	handle    frame.Handle
	scheduled bool
}

func New(labels []string, itemWidth float64) *Carousel {
	items := make([]string, 0, len(labels)*config.CarouselCopies)
	for i := 0; i < config.CarouselCopies; i++ {
		items = append(items, labels...)
	}
	return &Carousel{
		items:     items,
		setCount:  len(labels),
		itemWidth: itemWidth,
		step:      config.CarouselStep,
	}
}

// Items returns the repeated item list.
func (c *Carousel) Items() []string { return c.items }

// Offset is the current horizontal scroll in pixels.
func (c *Carousel) Offset() float64 { return c.offset }

// ItemWidth is the width of one slot.
func (c *Carousel) ItemWidth() float64 { return c.itemWidth }

// SetWidth is the width of one full set of items.
func (c *Carousel) SetWidth() float64 {
	return c.itemWidth * float64(c.setCount)
}

// Advance moves the strip by one step, wrapping to zero after a full set.
func (c *Carousel) Advance() {
	c.offset += c.step
	if c.offset >= c.SetWidth() {
		c.offset = 0
	}
}

// Start advances the strip once per frame until Dispose.
func (c *Carousel) Start(sched frame.Scheduler) {
	c.Dispose()
	c.sched = sched
	c.schedule()
}

func (c *Carousel) tick() {
	c.scheduled = false
	c.Advance()
	c.schedule()
}

func (c *Carousel) schedule() {
	if c.sched == nil {
		return
	}
	c.handle = c.sched.Request(c.tick)
	c.scheduled = true
}

// Dispose stops the loop. Safe to call more than once.
func (c *Carousel) Dispose() {
	if c.scheduled {
		c.sched.Cancel(c.handle)
		c.scheduled = false
	}
	c.sched = nil
}

// Visible lists the slots that intersect [0, viewWidth).
func (c *Carousel) Visible(viewWidth float64) []Slot {
	var slots []Slot
	for i, label := range c.items {
		x := float64(i)*c.itemWidth - c.offset
		if x+c.itemWidth <= 0 {
			continue
		}
		if x >= viewWidth {
			break
		}
		slots = append(slots, Slot{Label: label, X: x})
	}
	return slots
}
