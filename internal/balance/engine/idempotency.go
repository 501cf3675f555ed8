package engine

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/cardroomlabs/balanced/internal/balance"
	"github.com/cardroomlabs/balanced/internal/balance/store"
)

// envelope is the cached outcome of an idempotent operation. Both successes
// and domain failures are cached so a retried request observes the exact
// outcome of the first attempt. Infrastructure errors are never cached.
type envelope struct {
	OK     bool            `json:"ok"`
	Error  *balance.Error  `json:"error,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
}

// withIdempotency replays the cached outcome for key, or runs fn exactly once
// under the key's lock and caches what it returns. The double check after
// acquiring the lock covers the race where a concurrent duplicate finished
// while this request was waiting.
func withIdempotency[T any](ctx context.Context, e *Engine, key string, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if key == "" {
		return zero, balance.NewError(balance.CodeMissingIdempotencyKey, "idempotency key is required")
	}

	if out, err, ok := replay[T](ctx, e, key); ok {
		e.metrics.ObserveIdempotencyLookup(true)
		return out, err
	}
	e.metrics.ObserveIdempotencyLookup(false)

	if err := e.locks.Lock(ctx, idemLockKey(key)); err != nil {
		return zero, err
	}
	defer e.locks.Unlock(idemLockKey(key))

	if out, err, ok := replay[T](ctx, e, key); ok {
		e.metrics.ObserveIdempotencyLookup(true)
		return out, err
	}

	out, err := fn(ctx)
	if err != nil {
		if de, ok := balance.AsError(err); ok && !balance.Transient(err) {
			e.cacheOutcome(ctx, key, &envelope{OK: false, Error: de})
		}
		return zero, err
	}

	raw, merr := json.Marshal(out)
	if merr != nil {
		e.log.Warn("idempotency result not cacheable", zap.String("key", key), zap.Error(merr))
		return out, nil
	}
	e.cacheOutcome(ctx, key, &envelope{OK: true, Result: raw})
	return out, nil
}

// replay loads a cached envelope, falling back to the archive when the cache
// tier misses. A corrupt envelope is treated as a miss so the operation
// re-executes.
func replay[T any](ctx context.Context, e *Engine, key string) (T, error, bool) {
	var zero T
	blob, err := e.store.GetIdempotency(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		blob, err = e.archive.LookupIdempotency(ctx, key)
	}
	if err != nil {
		return zero, nil, false
	}

	var env envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		e.log.Warn("discarding corrupt idempotency envelope", zap.String("key", key), zap.Error(err))
		return zero, nil, false
	}
	if !env.OK {
		if env.Error == nil {
			return zero, nil, false
		}
		return zero, env.Error, true
	}
	var out T
	if err := json.Unmarshal(env.Result, &out); err != nil {
		e.log.Warn("discarding corrupt idempotency result", zap.String("key", key), zap.Error(err))
		return zero, nil, false
	}
	return out, nil, true
}

func (e *Engine) cacheOutcome(ctx context.Context, key string, env *envelope) {
	blob, err := json.Marshal(env)
	if err != nil {
		e.log.Warn("encode idempotency envelope", zap.String("key", key), zap.Error(err))
		return
	}
	if err := e.store.PutIdempotency(ctx, key, blob, e.cfg.IdempotencyTTL); err != nil {
		e.log.Warn("store idempotency envelope", zap.String("key", key), zap.Error(err))
	}
	if err := e.archive.RecordIdempotency(ctx, key, blob, e.cfg.IdempotencyTTL); err != nil {
		e.log.Warn("archive idempotency envelope", zap.String("key", key), zap.Error(err))
	}
}
