package keyedmutex

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestWithLockSerializesSameKey(t *testing.T) {
	m := New()
	ctx := context.Background()

	var counter int
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.WithLock(ctx, "acct-1", func() error {
				// Unsynchronized read-modify-write: only safe if the lock
				// actually serializes.
				v := counter
				time.Sleep(time.Microsecond)
				counter = v + 1
				return nil
			})
		}()
	}
	wg.Wait()
	if counter != 50 {
		t.Fatalf("lost updates under same-key lock: got=%d want=50", counter)
	}
}

func TestDistinctKeysProceedInParallel(t *testing.T) {
	m := New()
	ctx := context.Background()

	release := make(chan struct{})
	held := make(chan struct{})
	go func() {
		_ = m.WithLock(ctx, "acct-a", func() error {
			close(held)
			<-release
			return nil
		})
	}()
	<-held

	done := make(chan struct{})
	go func() {
		_ = m.WithLock(ctx, "acct-b", func() error { return nil })
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("lock on a different key blocked behind acct-a")
	}
	close(release)
}

func TestFIFOOrderPerKey(t *testing.T) {
	m := New()
	ctx := context.Background()

	if err := m.Lock(ctx, "k"); err != nil {
		t.Fatalf("initial lock: %v", err)
	}

	var mu sync.Mutex
	var order []int
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.WithLock(ctx, "k", func() error {
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
				return nil
			})
		}()
		// Ensure waiter i is enqueued before starting waiter i+1.
		for m.queued("k") != i+1 {
			time.Sleep(time.Millisecond)
		}
	}

	m.Unlock("k")
	wg.Wait()
	for i, got := range order {
		if got != i {
			t.Fatalf("waiters granted out of order: %v", order)
		}
	}
}

func TestCancelledWaiterDoesNotWedgeKey(t *testing.T) {
	m := New()
	ctx := context.Background()

	if err := m.Lock(ctx, "k"); err != nil {
		t.Fatalf("initial lock: %v", err)
	}

	waitCtx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- m.Lock(waitCtx, "k")
	}()
	for m.queued("k") != 1 {
		time.Sleep(time.Millisecond)
	}
	cancel()
	if err := <-errCh; err == nil {
		t.Fatalf("expected cancellation error from waiting Lock")
	}

	m.Unlock("k")
	if err := m.WithLock(context.Background(), "k", func() error { return nil }); err != nil {
		t.Fatalf("key wedged after cancelled waiter: %v", err)
	}
}

func TestLockAllOrdersAndReleases(t *testing.T) {
	m := New()
	ctx := context.Background()

	release, err := m.LockAll(ctx, []string{"charlie", "alice", "bob", "alice"})
	if err != nil {
		t.Fatalf("lock all: %v", err)
	}

	locked := make(chan struct{})
	go func() {
		_ = m.WithLock(ctx, "alice", func() error { return nil })
		close(locked)
	}()
	select {
	case <-locked:
		t.Fatalf("alice acquired while LockAll held it")
	case <-time.After(50 * time.Millisecond):
	}

	release()
	select {
	case <-locked:
	case <-time.After(2 * time.Second):
		t.Fatalf("alice not released by LockAll release func")
	}
}

func TestLockAllCancellationReleasesAcquired(t *testing.T) {
	m := New()

	if err := m.Lock(context.Background(), "b"); err != nil {
		t.Fatalf("hold b: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := m.LockAll(ctx, []string{"a", "b"})
		errCh <- err
	}()
	for m.queued("b") != 1 {
		time.Sleep(time.Millisecond)
	}
	cancel()
	if err := <-errCh; err == nil {
		t.Fatalf("expected LockAll to surface cancellation")
	}

	// "a" was acquired before the wait on "b" and must have been released.
	if err := m.WithLock(context.Background(), "a", func() error { return nil }); err != nil {
		t.Fatalf("key a leaked by cancelled LockAll: %v", err)
	}
	m.Unlock("b")
}
