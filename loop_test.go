package vblank

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopRunsTasksInOrder(t *testing.T) {
	loop := NewLoop()
	go loop.Run()
	defer loop.Stop()

	var got []int
	done := make(chan struct{})
	for i := 0; i < 100; i++ {
		i := i
		loop.Post(func() { got = append(got, i) })
	}
	loop.Post(func() { close(done) })
	<-done

	require.Len(t, got, 100)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestLoopWakesAfterIdle(t *testing.T) {
	loop := NewLoop()
	go loop.Run()
	defer loop.Stop()

	for i := 0; i < 3; i++ {
		done := make(chan struct{})
		loop.Post(func() { close(done) })
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatalf("task %d never ran", i)
		}
		// Let the loop drain back to its idle select.
		time.Sleep(time.Millisecond)
	}
}

func TestLoopStopReturns(t *testing.T) {
	loop := NewLoop()
	returned := make(chan struct{})
	go func() {
		loop.Run()
		close(returned)
	}()

	loop.Stop()
	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}

	// Stop is idempotent.
	loop.Stop()
}
