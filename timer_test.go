package vblank

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerFiresOnLoop(t *testing.T) {
	loop := NewLoop()
	go loop.Run()
	defer loop.Stop()

	var tm Timer
	fired := make(chan struct{})
	loop.Post(func() {
		tm.Arm(loop, time.Millisecond, func() {
			assert.False(t, tm.Armed(), "timer must be inert by the time its callback runs")
			close(fired)
		})
		assert.True(t, tm.Armed())
	})

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timer never fired")
	}
}

func TestTimerDoubleArmPanics(t *testing.T) {
	loop := NewLoop()

	var tm Timer
	tm.Arm(loop, time.Hour, func() {})
	require.Panics(t, func() { tm.Arm(loop, time.Hour, func() {}) })
}

func TestTimerReusableAfterFiring(t *testing.T) {
	loop := NewLoop()
	go loop.Run()
	defer loop.Stop()

	var tm Timer
	for i := 0; i < 3; i++ {
		fired := make(chan struct{})
		loop.Post(func() {
			tm.Arm(loop, time.Millisecond, func() { close(fired) })
		})
		select {
		case <-fired:
		case <-time.After(time.Second):
			t.Fatalf("arm %d never fired", i)
		}
	}
}
