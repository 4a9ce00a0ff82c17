// internal/frame/loop.go
package frame

import (
	"context"
	"errors"
	"sort"
	"time"
)

// Handle identifies a requested frame callback.
type Handle uint64

// Scheduler is the display-refresh scheduler: a callback requested now runs
// once, on the next frame.
type Scheduler interface {
	Request(cb func()) Handle
	Cancel(h Handle)
}

// Loop is a Scheduler pumped by the host once per displayed frame. It is not
// safe for concurrent use; the host calls it from its frame goroutine only.
type Loop struct {
	next    Handle
	pending map[Handle]func()
	frames  uint64
}

func NewLoop() *Loop {
	return &Loop{pending: make(map[Handle]func())}
}

func (l *Loop) Request(cb func()) Handle {
	l.next++
	l.pending[l.next] = cb
	return l.next
}

// Cancel drops a pending callback. Unknown or already-run handles are ignored.
func (l *Loop) Cancel(h Handle) {
	delete(l.pending, h)
}

// Pending returns the number of callbacks waiting for the next frame.
func (l *Loop) Pending() int {
	return len(l.pending)
}

// Frames returns how many times Pump has run.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Pump runs the callbacks requested before this call, in request order.
// Callbacks requested while pumping wait for the next Pump. A callback
// cancelled by an earlier one in the same batch does not run.
func (l *Loop) Pump() {
	l.frames++
	if len(l.pending) == 0 {
		return
	}
	handles := make([]Handle, 0, len(l.pending))
	for h := range l.pending {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })

	for _, h := range handles {
		cb, ok := l.pending[h]
		if !ok {
			continue
		}
		delete(l.pending, h)
		cb()
	}
}

// ErrStopped is returned by Run when the event handler asked to stop.
var ErrStopped = errors.New("frame loop stopped")

// Run pumps the loop every interval until ctx is done, the events channel is
// closed or handle returns false. Events are handled on the same goroutine as
// the pump, between frames. after, if not nil, runs right after each pump
// (presenting the frame, for example).
func Run[E any](ctx context.Context, loop *Loop, interval time.Duration, events <-chan E, handle func(E) bool, after func()) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if handle != nil && !handle(ev) {
				return ErrStopped
			}
		case <-ticker.C:
			loop.Pump()
			if after != nil {
				after()
			}
		}
	}
}
