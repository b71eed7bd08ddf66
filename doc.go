/*
Package vblank schedules vblank notifications for X11 compositing
clients, using the Present extension as the event source.

A vblank scheduler turns the server's asynchronous, sometimes-unreliable
PresentCompleteNotify events into a clean "this vblank has ended"
callback, invoked exactly once per confirmed refresh interval. The
owning renderer uses it to pace frames to the display without tearing
or frame drops: render, call Schedule, and render again when the
callback fires.

The scheduler does not drive itself. The owner reads events from the X
connection and forwards every Present completion into
HandlePresentCompleteNotify; the scheduler then either invokes the
callback synchronously, or, when the server signaled completion before
the interval's declared end time, arms a one-shot timer so the callback
still lands after the vblank has really ended. Firing early would let
the consumer believe it has a full interval of headroom when it does
not, which is how frames get dropped.

All scheduler state lives on a single Loop goroutine. Both the
notification handler and the timer expiry run there with
run-to-completion semantics, so callbacks are delivered in strictly
increasing msc order and never overlap.

Usage looks like:

	c, err := xconn.Connect("")
	if err != nil {
		log.Fatal(err)
	}
	c.SelectVblankEvents(c.Root())

	loop := vblank.NewLoop()
	var sched vblank.Scheduler
	sched = vblank.NewPresent(func(ev vblank.Event) {
		// Render a frame, then ask for the next vblank.
		sched.Schedule(c.Root(), c)
	})

	go func() {
		for {
			ev, xerr := c.Conn().WaitForEvent()
			if ev == nil && xerr == nil {
				return
			}
			if cne, ok := ev.(present.CompleteNotifyEvent); ok {
				loop.Post(func() {
					vblank.HandlePresentCompleteNotify(sched, loop, c, cne)
				})
			}
		}
	}()

	loop.Post(func() { sched.Schedule(c.Root(), c) })
	loop.Run()

A complete program can be found in examples/framepacer.
*/
package vblank
