package feed

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFeedDeliversSnapshots(t *testing.T) {
	_, cancel := context.WithCancel(context.Background())
	defer cancel()
	f, p := New[int](cancel)

	p.Publish([]int{1})
	got := <-f.Updates()
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("unexpected snapshot %v", got)
	}

	p.Publish([]int{1, 2})
	got = <-f.Updates()
	if len(got) != 2 {
		t.Fatalf("unexpected snapshot %v", got)
	}
}

func TestFeedDropsStaleSnapshot(t *testing.T) {
	_, cancel := context.WithCancel(context.Background())
	defer cancel()
	f, p := New[int](cancel)

	// Nobody is reading: the second publish replaces the first.
	p.Publish([]int{1})
	p.Publish([]int{1, 2})

	got := <-f.Updates()
	if len(got) != 2 {
		t.Fatalf("expected latest snapshot, got %v", got)
	}
}

func TestFeedCloseCancelsQuery(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	f, p := New[int](cancel)

	f.Close()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatalf("Close did not cancel the query context")
	}

	// Producer shuts down after observing cancellation.
	p.Done()
	if _, ok := <-f.Updates(); ok {
		t.Fatalf("updates channel should be closed")
	}
	if err, ok := <-f.Err(); ok || err != nil {
		t.Fatalf("clean shutdown should close Err without a value, got %v", err)
	}
}

func TestFeedTerminalError(t *testing.T) {
	_, cancel := context.WithCancel(context.Background())
	defer cancel()
	f, p := New[int](cancel)

	want := errors.New("listen failed")
	p.Fail(want)

	if err := <-f.Err(); !errors.Is(err, want) {
		t.Fatalf("got %v, want %v", err, want)
	}
	if _, ok := <-f.Updates(); ok {
		t.Fatalf("updates channel should be closed after failure")
	}

	// Double shutdown is a no-op.
	p.Done()
	f.Close()
}
