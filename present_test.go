package vblank

import (
	"testing"
	"time"

	"github.com/jezek/xgb/xproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xsched/vblank/present"
)

// fakeConn implements Connection with a settable clock and a record of
// every vblank request, standing in for a real X server the way the
// xgb tests stand in a dummy net.Conn for one.
type fakeConn struct {
	now      uint64
	requests []vblankRequest
}

type vblankRequest struct {
	window    xproto.Window
	targetMsc uint64
}

func (f *fakeConn) RequestVblankEvent(window xproto.Window, targetMsc uint64) {
	f.requests = append(f.requests, vblankRequest{window, targetMsc})
}

func (f *fakeConn) NowMicroseconds() uint64 { return f.now }

func completeNotify(msc, ust uint64, window xproto.Window) present.CompleteNotifyEvent {
	return present.CompleteNotifyEvent{
		Kind:   present.CompleteKindNotifyMSC,
		Window: window,
		Msc:    msc,
		Ust:    ust,
	}
}

func TestScheduleRequestsNextMsc(t *testing.T) {
	c := &fakeConn{now: 10_000_000}
	s := NewPresent(func(Event) {}).(*presentScheduler)

	require.True(t, s.Schedule(10, c))
	require.Equal(t, []vblankRequest{{10, 1}}, c.requests)

	// Accept an event so lastMsc moves, then the next request must
	// target lastMsc+1.
	s.handleCompleteNotify(nil, c, completeNotify(100, 5_000_000, 10))
	require.True(t, s.Schedule(10, c))
	assert.Equal(t, vblankRequest{10, 101}, c.requests[1])
}

// The upstream C scheduler documents that schedule must do nothing and
// return false while a request is outstanding, but its implementation
// always issued one anyway. The documented contract is the one
// implemented here.
func TestScheduleWhileRequestPending(t *testing.T) {
	c := &fakeConn{}
	s := NewPresent(func(Event) {})

	require.True(t, s.Schedule(10, c))
	require.False(t, s.Schedule(10, c))
	assert.Len(t, c.requests, 1)
}

func TestImmediateFire(t *testing.T) {
	var fired []Event
	c := &fakeConn{now: 5_000_500}
	s := NewPresent(func(ev Event) { fired = append(fired, ev) }).(*presentScheduler)

	require.True(t, s.Schedule(10, c))
	s.handleCompleteNotify(nil, c, completeNotify(100, 4_980_000, 10))
	require.True(t, s.Schedule(10, c))
	s.handleCompleteNotify(nil, c, completeNotify(101, 5_000_000, 10))

	require.Equal(t, []Event{{100, 4_980_000}, {101, 5_000_000}}, fired)
	assert.False(t, s.timer.Armed())
	assert.Equal(t, uint64(101), s.lastMsc)
	assert.Equal(t, uint64(5_000_000), s.lastUst)
}

func TestDelayedFire(t *testing.T) {
	loop := NewLoop()
	go loop.Run()
	defer loop.Stop()

	fired := make(chan Event, 1)
	c := &fakeConn{now: 4_999_000}
	s := NewPresent(func(ev Event) { fired <- ev }).(*presentScheduler)

	handled := make(chan struct{})
	loop.Post(func() {
		s.Schedule(10, c)
		s.handleCompleteNotify(loop, c, completeNotify(101, 5_000_000, 10))
		assert.True(t, s.timer.Armed(), "notification before ust must arm the timer")
		close(handled)
	})
	<-handled

	select {
	case ev := <-fired:
		assert.Equal(t, Event{Msc: 101, Ust: 5_000_000}, ev)
	case <-time.After(time.Second):
		t.Fatal("timer callback never fired")
	}

	select {
	case ev := <-fired:
		t.Fatalf("callback fired twice, second event %+v", ev)
	case <-time.After(10 * time.Millisecond):
	}
}

func TestRejectStaleEvent(t *testing.T) {
	fired := 0
	c := &fakeConn{now: 10_000_000}
	s := NewPresent(func(Event) { fired++ }).(*presentScheduler)

	require.True(t, s.Schedule(10, c))
	s.handleCompleteNotify(nil, c, completeNotify(100, 5_000_000, 10))
	require.Equal(t, 1, fired)

	require.True(t, s.Schedule(10, c))
	c.requests = nil
	s.handleCompleteNotify(nil, c, completeNotify(100, 6_000_000, 10))

	assert.Equal(t, 1, fired, "stale event must not invoke the callback")
	assert.Equal(t, uint64(100), s.lastMsc)
	assert.Equal(t, uint64(5_000_000), s.lastUst)
	assert.Equal(t, []vblankRequest{{10, 101}}, c.requests, "stale event must trigger exactly one retry")
}

func TestRejectZeroTimestampEvent(t *testing.T) {
	fired := 0
	c := &fakeConn{now: 10_000_000}
	s := NewPresent(func(Event) { fired++ }).(*presentScheduler)

	require.True(t, s.Schedule(10, c))
	c.requests = nil
	s.handleCompleteNotify(nil, c, completeNotify(105, 0, 10))

	assert.Zero(t, fired)
	assert.Zero(t, s.lastMsc)
	assert.Zero(t, s.lastUst)
	assert.Equal(t, []vblankRequest{{10, 1}}, c.requests)
}

// Retries are issued against the window named in the bogus event, not
// the window schedule was last called with.
func TestRetryUsesEventWindow(t *testing.T) {
	c := &fakeConn{now: 10_000_000}
	s := NewPresent(func(Event) {}).(*presentScheduler)

	require.True(t, s.Schedule(10, c))
	c.requests = nil
	s.handleCompleteNotify(nil, c, completeNotify(7, 0, 42))
	assert.Equal(t, []vblankRequest{{42, 1}}, c.requests)
}

func TestIgnoresNonMscCompletions(t *testing.T) {
	fired := 0
	c := &fakeConn{now: 10_000_000}
	s := NewPresent(func(Event) { fired++ }).(*presentScheduler)

	require.True(t, s.Schedule(10, c))
	c.requests = nil

	ev := completeNotify(101, 5_000_000, 10)
	ev.Kind = present.CompleteKindPixmap
	s.handleCompleteNotify(nil, c, ev)

	assert.Zero(t, fired)
	assert.Empty(t, c.requests)
	assert.Zero(t, s.lastMsc)
	assert.True(t, s.eventRequested, "a pixmap completion must not consume the pending request")
}

func TestMonotonicDelivery(t *testing.T) {
	var fired []Event
	c := &fakeConn{now: 1}
	s := NewPresent(func(ev Event) { fired = append(fired, ev) }).(*presentScheduler)

	// Interleave valid events with duplicates and out-of-order msc
	// values; only the strictly increasing ones may be delivered.
	mscs := []uint64{3, 3, 7, 5, 9}
	for _, msc := range mscs {
		s.Schedule(10, c)
		ust := msc * 16_000
		c.now = ust + 100
		s.handleCompleteNotify(nil, c, completeNotify(msc, ust, 10))
	}

	require.Len(t, fired, 3)
	last := uint64(0)
	for _, ev := range fired {
		assert.Greater(t, ev.Msc, last)
		assert.Equal(t, ev.Msc*16_000, ev.Ust)
		last = ev.Msc
	}
	assert.Equal(t, uint64(9), s.lastMsc)
}

func TestCompleteNotifyWithoutRequestPanics(t *testing.T) {
	c := &fakeConn{now: 10_000_000}
	s := NewPresent(func(Event) {}).(*presentScheduler)

	require.Panics(t, func() {
		s.handleCompleteNotify(nil, c, completeNotify(1, 1, 10))
	})
}

func TestHandleOnVideoSyncSchedulerPanics(t *testing.T) {
	s := New(VideoSyncKind, nil)
	require.Panics(t, func() {
		HandlePresentCompleteNotify(s, nil, &fakeConn{}, completeNotify(1, 1, 10))
	})
}
