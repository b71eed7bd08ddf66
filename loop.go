package vblank

import (
	"sync"

	"github.com/eapache/queue"
)

// Loop is a single-goroutine task loop with run-to-completion
// semantics. Confining all scheduler state to the loop goroutine is
// what lets the scheduler go without locks: notification handling and
// timer expiry are both delivered as posted tasks, so they can never
// overlap.
type Loop struct {
	mu    sync.Mutex
	tasks *queue.Queue

	wake     chan struct{}
	quit     chan struct{}
	quitOnce sync.Once
	done     chan struct{}
}

// NewLoop creates a loop. It does not run until Run is called.
func NewLoop() *Loop {
	return &Loop{
		tasks: queue.New(),
		wake:  make(chan struct{}, 1),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
	}
}

// Post queues fn to run on the loop goroutine. It is safe to call from
// any goroutine; tasks run one at a time, in the order they were
// posted.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.tasks.Add(fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Run executes posted tasks until Stop is called. It must be called
// from exactly one goroutine, which becomes the loop goroutine.
func (l *Loop) Run() {
	defer close(l.done)
	for {
		for {
			l.mu.Lock()
			if l.tasks.Length() == 0 {
				l.mu.Unlock()
				break
			}
			fn := l.tasks.Remove().(func())
			l.mu.Unlock()
			fn()
		}

		select {
		case <-l.wake:
		case <-l.quit:
			return
		}
	}
}

// Stop makes Run return once the task it is currently executing
// finishes, and waits for it to do so. Tasks still queued are dropped.
// Stop must not be called from the loop goroutine.
func (l *Loop) Stop() {
	l.quitOnce.Do(func() { close(l.quit) })
	<-l.done
}
