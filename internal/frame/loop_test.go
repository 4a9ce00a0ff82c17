package frame_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"lab-backdrop/internal/frame"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPumpRunsOnlyPreviouslyRequested(t *testing.T) {
	loop := frame.NewLoop()
	var calls []string

	var reschedule func()
	reschedule = func() {
		calls = append(calls, "tick")
		loop.Request(reschedule)
	}
	loop.Request(reschedule)
	loop.Request(func() { calls = append(calls, "once") })

	loop.Pump()
	assert.Equal(t, []string{"tick", "once"}, calls)
	assert.Equal(t, 1, loop.Pending(), "self-scheduled callback waits for the next frame")

	loop.Pump()
	assert.Equal(t, []string{"tick", "once", "tick"}, calls)
	assert.Equal(t, uint64(2), loop.Frames())
}

func TestCancel(t *testing.T) {
	loop := frame.NewLoop()
	ran := false
	h := loop.Request(func() { ran = true })
	loop.Cancel(h)
	loop.Cancel(h)
	loop.Cancel(frame.Handle(999))

	loop.Pump()
	assert.False(t, ran)
	assert.Zero(t, loop.Pending())
}

func TestCancelWithinBatch(t *testing.T) {
	loop := frame.NewLoop()
	var second frame.Handle
	ran := false
	loop.Request(func() { loop.Cancel(second) })
	second = loop.Request(func() { ran = true })

	loop.Pump()
	assert.False(t, ran, "callback cancelled earlier in the same frame must not run")
}

func TestRunStopsOnContext(t *testing.T) {
	loop := frame.NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan int)

	presented := 0
	loop.Request(func() { cancel() })
	err := frame.Run(ctx, loop, time.Millisecond, events, nil, func() { presented++ })

	require.ErrorIs(t, err, context.Canceled)
	assert.GreaterOrEqual(t, presented, 1)
}

func TestRunStopsOnHandler(t *testing.T) {
	loop := frame.NewLoop()
	events := make(chan int, 2)
	events <- 1
	events <- 2

	var seen []int
	err := frame.Run(context.Background(), loop, time.Hour, events, func(ev int) bool {
		seen = append(seen, ev)
		return ev < 2
	}, nil)

	require.ErrorIs(t, err, frame.ErrStopped)
	assert.Equal(t, []int{1, 2}, seen)
}

func TestRunStopsOnClosedEvents(t *testing.T) {
	events := make(chan int)
	close(events)
	err := frame.Run(context.Background(), frame.NewLoop(), time.Hour, events, nil, nil)
	require.NoError(t, err)
}
