package vblank

import (
	"fmt"

	"github.com/jezek/xgb/xproto"

	"github.com/xsched/vblank/present"
)

// Event describes one completed refresh interval.
type Event struct {
	// Msc is the media stream counter, a server-maintained integer
	// identifying successive refresh intervals of a drawable. It is
	// strictly increasing across delivered events.
	Msc uint64

	// Ust is the timestamp for the end of the interval, in
	// microseconds of the server's clock domain. It is comparable
	// with Connection.NowMicroseconds.
	Ust uint64
}

// Callback receives one Event per confirmed refresh interval. It is
// always invoked on the loop goroutine, never concurrently and never
// reentrantly.
type Callback func(Event)

// Kind selects the vblank event source of a scheduler.
type Kind byte

const (
	// PresentKind uses X Present extension completion events.
	PresentKind Kind = iota

	// VideoSyncKind is reserved for a GLX_SGI_video_sync based
	// source, for servers without usable Present events. It is not
	// implemented; a scheduler of this kind never schedules anything.
	VideoSyncKind
)

func (k Kind) String() string {
	switch k {
	case PresentKind:
		return "present"
	case VideoSyncKind:
		return "video-sync"
	}
	return fmt.Sprintf("Kind(%d)", byte(k))
}

// Connection is the slice of an X connection a scheduler needs: a
// fire-and-forget vblank request and a clock comparable with the Ust
// values the server reports. *xconn.Connection implements it.
type Connection interface {
	// RequestVblankEvent asks the server for a completion
	// notification once the refresh interval identified by targetMsc,
	// or the next one after it, ends.
	RequestVblankEvent(window xproto.Window, targetMsc uint64)

	// NowMicroseconds reads a monotonic microsecond clock in the same
	// domain as Event.Ust.
	NowMicroseconds() uint64
}

// Scheduler delivers a callback at the end of requested refresh
// intervals. Implementations are owned by this package; the set of
// kinds is closed.
//
// A Scheduler is not safe for concurrent use. Schedule and the
// notification handler must run on the loop goroutine.
type Scheduler interface {
	// Schedule requests that the callback fire when the current or
	// next refresh interval of window ends. It reports whether a new
	// request was issued; it returns false and does nothing when the
	// scheduler cannot service a request, or when one is already
	// outstanding.
	Schedule(window xproto.Window, c Connection) bool

	// Kind reports the event source this scheduler uses.
	Kind() Kind

	implementsScheduler()
}

// New creates a scheduler of the given kind. cb is retained for the
// lifetime of the scheduler. Unknown kinds panic.
func New(kind Kind, cb Callback) Scheduler {
	switch kind {
	case PresentKind:
		return newPresentScheduler(cb)
	case VideoSyncKind:
		return &videoSyncScheduler{}
	}
	panic(fmt.Sprintf("vblank: unknown scheduler kind %d", byte(kind)))
}

// NewPresent creates a Present-based scheduler.
func NewPresent(cb Callback) Scheduler {
	return newPresentScheduler(cb)
}

// HandlePresentCompleteNotify feeds a Present completion event into s.
// The owner must call it, on the loop goroutine, for every
// CompleteNotify event it reads from the connection; the scheduler does
// no event reading of its own.
//
// Delivering the event to a scheduler that is not Present-based is a
// programmer error and panics.
func HandlePresentCompleteNotify(s Scheduler, loop *Loop, c Connection, ev present.CompleteNotifyEvent) {
	ps, ok := s.(*presentScheduler)
	if !ok {
		panic(fmt.Sprintf("vblank: CompleteNotify delivered to a %v scheduler", s.Kind()))
	}
	ps.handleCompleteNotify(loop, c, ev)
}
