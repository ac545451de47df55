// Package feed provides the live-query handle the record stores hand out:
// a cancellable subscription delivering a full, consistent snapshot of the
// matching record set on every underlying change. Readers never see a
// partial update; each emission replaces the previous one wholesale.
package feed

import (
	"context"
	"sync"
)

// Feed is a single live subscription. It is not restartable itself;
// callers re-issue the query for a fresh one.
type Feed[T any] struct {
	updates chan []T
	errs    chan error
	cancel  context.CancelFunc

	closeOnce sync.Once
	done      chan struct{}
}

// New returns a feed plus the producer half used by the store goroutine.
// The update channel carries one element of buffering so a producer is
// never blocked by a reader that has not caught up with the latest
// snapshot; Publish drops the stale snapshot in that case.
func New[T any](cancel context.CancelFunc) (*Feed[T], *Producer[T]) {
	f := &Feed[T]{
		updates: make(chan []T, 1),
		errs:    make(chan error, 1),
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	return f, &Producer[T]{feed: f}
}

// Updates yields one full snapshot per emission. The channel is closed
// when the feed ends, whether by Close or by a terminal error.
func (f *Feed[T]) Updates() <-chan []T {
	return f.updates
}

// Err yields at most one terminal error. Closed without a value on a
// clean shutdown.
func (f *Feed[T]) Err() <-chan error {
	return f.errs
}

// Close cancels the underlying query. Idempotent; safe to call from any
// goroutine, including after the feed has already failed.
func (f *Feed[T]) Close() {
	f.cancel()
}

// Producer is the store-side handle. Exactly one goroutine uses it.
type Producer[T any] struct {
	feed *Feed[T]
}

// Publish replaces any undelivered snapshot with the given one. Snapshots
// are full record sets, so skipping an intermediate one is safe.
func (p *Producer[T]) Publish(records []T) {
	select {
	case <-p.feed.done:
		return
	default:
	}
	for {
		select {
		case p.feed.updates <- records:
			return
		default:
			// Drop the stale pending snapshot and retry with the new one.
			select {
			case <-p.feed.updates:
			default:
			}
		}
	}
}

// Fail delivers a terminal error and closes the feed.
func (p *Producer[T]) Fail(err error) {
	p.feed.closeOnce.Do(func() {
		close(p.feed.done)
		if err != nil {
			p.feed.errs <- err
		}
		close(p.feed.errs)
		close(p.feed.updates)
	})
}

// Done closes the feed cleanly.
func (p *Producer[T]) Done() {
	p.Fail(nil)
}
