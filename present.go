package vblank

import (
	"time"

	"github.com/jezek/xgb/xproto"

	"github.com/xsched/vblank/present"
)

// presentScheduler drives the callback from Present CompleteNotify
// events, compensating with a timer when the server signals completion
// before the interval's declared end time.
type presentScheduler struct {
	callback Callback

	// Most recently accepted event. An incoming msc at or below
	// lastMsc is stale.
	lastMsc uint64
	lastUst uint64

	// Whether a NotifyMSC request is outstanding.
	eventRequested bool

	timer Timer
}

func newPresentScheduler(cb Callback) *presentScheduler {
	return &presentScheduler{callback: cb}
}

func (s *presentScheduler) Kind() Kind { return PresentKind }

func (*presentScheduler) implementsScheduler() {}

func (s *presentScheduler) Schedule(window xproto.Window, c Connection) bool {
	if s.eventRequested {
		return false
	}
	c.RequestVblankEvent(window, s.lastMsc+1)
	s.eventRequested = true
	return true
}

func (s *presentScheduler) handleCompleteNotify(loop *Loop, c Connection, ev present.CompleteNotifyEvent) {
	if ev.Kind != present.CompleteKindNotifyMSC {
		return
	}
	if !s.eventRequested {
		panic("vblank: CompleteNotify received with no request outstanding")
	}

	// The server sometimes sends duplicate or bogus MSC events, with
	// a zero timestamp, typically right after the screen has been
	// turned off. Treat these as not receiving a vblank event at all
	// and ask for a new one.
	//
	// See: https://gitlab.freedesktop.org/xorg/xserver/-/issues/1418
	if ev.Msc <= s.lastMsc || ev.Ust == 0 {
		Logger.Debug("invalid CompleteNotify event", "msc", ev.Msc, "ust", ev.Ust)
		c.RequestVblankEvent(ev.Window, s.lastMsc+1)
		return
	}

	s.eventRequested = false
	s.lastMsc = ev.Msc
	s.lastUst = ev.Ust

	now := c.NowMicroseconds()
	if now > ev.Ust {
		s.callback(Event{Msc: ev.Msc, Ust: ev.Ust})
		return
	}

	// Wait until the end of the current vblank before invoking the
	// callback. Called too early, the consumer can mistakenly think
	// the render missed the vblank and skip scheduling for the next
	// one, causing frame drops.
	delivered := Event{Msc: ev.Msc, Ust: ev.Ust}
	Logger.Debug("vblank ends in the future", "us", ev.Ust-now)
	s.timer.Arm(loop, time.Duration(ev.Ust-now)*time.Microsecond, func() {
		s.callback(delivered)
	})
}
