// Package outbox runs calls to a remote peer one at a time, in the order they were posted.
package outbox

import (
	"context"
	"sync"

	projectderrors "github.com/uber/projectd/src/projectd/internal/errors"
)

// ClosedError is returned by Do once the outbox is closed.
var ClosedError = projectderrors.New("outbox closed")

// Outbox queues calls and runs them on a single goroutine started by Run.
// Posting never blocks on the calls themselves.
type Outbox struct {
	mu     sync.Mutex
	queue  []func(ctx context.Context)
	closed bool
	wake   chan struct{}
	done   chan struct{}
}

// New creates an empty Outbox.
func New() *Outbox {
	return &Outbox{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Post queues fn. It reports false, and drops fn, once the outbox is closed.
func (o *Outbox) Post(fn func(ctx context.Context)) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return false
	}
	o.queue = append(o.queue, fn)
	o.signal()
	return true
}

// Do queues fn behind every call posted so far and waits for its result.
// fn runs with ctx, not with the context given to Run.
func (o *Outbox) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	result := make(chan error, 1)
	if !o.Post(func(context.Context) { result <- fn(ctx) }) {
		return ClosedError
	}
	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run drains the queue until Close. It must be called once.
func (o *Outbox) Run(ctx context.Context) {
	defer close(o.done)
	for {
		o.mu.Lock()
		queue := o.queue
		o.queue = nil
		closed := o.closed
		o.mu.Unlock()

		for _, fn := range queue {
			fn(ctx)
		}
		if closed {
			return
		}
		<-o.wake
	}
}

// Close stops accepting calls and waits until Run has finished the queued ones.
// Without a running Run, queued calls are dropped.
func (o *Outbox) Close(started bool) {
	o.mu.Lock()
	o.closed = true
	if !started {
		o.queue = nil
	}
	o.signal()
	o.mu.Unlock()

	if started {
		<-o.done
	}
}

func (o *Outbox) signal() {
	select {
	case o.wake <- struct{}{}:
	default:
	}
}
