package vblank

import "time"

// Timer is a cooperative one-shot timer. Its callback runs on the loop
// goroutine, so it never overlaps with other loop work. The zero value
// is ready to use.
//
// A Timer is an exclusively owned resource: Arm must be called on the
// loop goroutine, and arming a timer that is already armed is a
// programmer error and panics. There is no cancellation; an armed timer
// always runs to completion and fires its callback.
type Timer struct {
	armed bool
}

// Arm schedules fn to run on loop after d has elapsed.
func (t *Timer) Arm(loop *Loop, d time.Duration, fn func()) {
	if t.armed {
		panic("vblank: timer armed while already armed")
	}
	t.armed = true
	time.AfterFunc(d, func() {
		loop.Post(func() {
			t.armed = false
			fn()
		})
	})
}

// Armed reports whether the timer is waiting to fire.
func (t *Timer) Armed() bool { return t.armed }
