// Package keyedmutex serializes work per string key. Distinct keys proceed in
// parallel, waiters on one key are granted the lock in FIFO order, and a
// waiter whose context is cancelled leaves the queue without wedging the key.
//
// The mutex is not re-entrant: callers must not acquire a key they already
// hold. Engine code that runs inside an already-held account lock uses the
// engines' *Locked variants instead of nesting.
package keyedmutex

import (
	"context"
	"sort"
	"sync"
)

type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*lockState
}

type lockState struct {
	held    bool
	waiters []chan struct{}
}

func New() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*lockState)}
}

// Lock acquires key, blocking until it is free or ctx is done.
func (m *KeyedMutex) Lock(ctx context.Context, key string) error {
	m.mu.Lock()
	st, ok := m.locks[key]
	if !ok {
		st = &lockState{}
		m.locks[key] = st
	}
	if !st.held {
		st.held = true
		m.mu.Unlock()
		return nil
	}
	ch := make(chan struct{})
	st.waiters = append(st.waiters, ch)
	m.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		m.mu.Lock()
		for i, w := range st.waiters {
			if w == ch {
				st.waiters = append(st.waiters[:i], st.waiters[i+1:]...)
				m.mu.Unlock()
				return ctx.Err()
			}
		}
		// The grant raced the cancellation: we own the lock and must pass
		// it on before reporting the cancellation.
		m.unlockLocked(key)
		m.mu.Unlock()
		return ctx.Err()
	}
}

// Unlock releases key, handing it to the oldest waiter if any.
func (m *KeyedMutex) Unlock(key string) {
	m.mu.Lock()
	m.unlockLocked(key)
	m.mu.Unlock()
}

func (m *KeyedMutex) unlockLocked(key string) {
	st, ok := m.locks[key]
	if !ok || !st.held {
		panic("keyedmutex: unlock of unheld key " + key)
	}
	if len(st.waiters) > 0 {
		ch := st.waiters[0]
		st.waiters = st.waiters[1:]
		close(ch) // ownership transfers; held stays true
		return
	}
	delete(m.locks, key)
}

// WithLock runs fn while holding key. The lock is released on every exit
// path, including panics.
func (m *KeyedMutex) WithLock(ctx context.Context, key string, fn func() error) error {
	if err := m.Lock(ctx, key); err != nil {
		return err
	}
	defer m.Unlock(key)
	return fn()
}

// LockAll acquires every distinct key in ascending order, the deadlock-free
// order required for multi-account operations. The returned release function
// unlocks in reverse order.
func (m *KeyedMutex) LockAll(ctx context.Context, keys []string) (func(), error) {
	uniq := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		uniq = append(uniq, k)
	}
	sort.Strings(uniq)

	acquired := make([]string, 0, len(uniq))
	release := func() {
		for i := len(acquired) - 1; i >= 0; i-- {
			m.Unlock(acquired[i])
		}
	}
	for _, k := range uniq {
		if err := m.Lock(ctx, k); err != nil {
			release()
			return nil, err
		}
		acquired = append(acquired, k)
	}
	return release, nil
}

// queued reports the number of goroutines waiting on key. Test hook.
func (m *KeyedMutex) queued(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.locks[key]
	if !ok {
		return 0
	}
	return len(st.waiters)
}
