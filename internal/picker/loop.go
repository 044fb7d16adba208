package picker

import (
	"context"
	"sync"
)

// Loop runs posted functions one at a time on a single goroutine. It serves
// as the event loop for headless pickers, where no UI framework owns one.
type Loop struct {
	queue    chan func()
	stopped  chan struct{}
	stopOnce sync.Once
}

// NewLoop creates a loop whose queue holds size pending functions.
func NewLoop(size int) *Loop {
	if size <= 0 {
		size = 1
	}
	return &Loop{
		queue:   make(chan func(), size),
		stopped: make(chan struct{}),
	}
}

// Post schedules f. It blocks while the queue is full and drops f once the
// loop has stopped.
func (l *Loop) Post(f func()) {
	select {
	case <-l.stopped:
		return
	default:
	}
	select {
	case l.queue <- f:
	case <-l.stopped:
	}
}

// Run executes posted functions until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) {
	defer l.stopOnce.Do(func() { close(l.stopped) })
	for {
		select {
		case f := <-l.queue:
			f()
		case <-ctx.Done():
			return
		}
	}
}

// Stopped is closed once Run returns.
func (l *Loop) Stopped() <-chan struct{} {
	return l.stopped
}
