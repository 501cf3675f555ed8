// Package engine implements the accounting, reservation, and settlement
// logic of the balance service. Engines serialize conflicting work with
// per-key FIFO mutexes, persist through the store, and replay completed
// outcomes through the idempotency cache.
package engine

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cardroomlabs/balanced/internal/balance/store"
	"github.com/cardroomlabs/balanced/internal/platform/clock"
	"github.com/cardroomlabs/balanced/internal/platform/keyedmutex"
)

// Config carries the engine tunables.
type Config struct {
	ReservationTimeout time.Duration
	IdempotencyTTL     time.Duration
	RakeBasisPoints    int64
	RakeCap            int64
	RakeMinPot         int64
}

type Engine struct {
	store   store.Store
	archive *store.Archive
	locks   *keyedmutex.KeyedMutex
	clk     clock.Clock
	log     *zap.Logger
	metrics *Metrics
	cfg     Config

	// newID is swappable in tests for deterministic identifiers.
	newID func() string
}

func New(st store.Store, archive *store.Archive, clk clock.Clock, log *zap.Logger, metrics *Metrics, cfg Config) *Engine {
	if clk == nil {
		clk = clock.RealClock{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.ReservationTimeout <= 0 {
		cfg.ReservationTimeout = 30 * time.Second
	}
	if cfg.IdempotencyTTL <= 0 {
		cfg.IdempotencyTTL = 24 * time.Hour
	}
	return &Engine{
		store:   st,
		archive: archive,
		locks:   keyedmutex.New(),
		clk:     clk,
		log:     log,
		metrics: metrics,
		cfg:     cfg,
		newID:   uuid.NewString,
	}
}

func (e *Engine) now() time.Time { return e.clk.Now() }

func (e *Engine) transactionID() string { return "tx-" + e.newID() }
func (e *Engine) entryID() string       { return "led-" + e.newID() }
func (e *Engine) reservationID() string { return "rsv-" + e.newID() }

func accountLockKey(accountID string) string { return "account:" + accountID }
func resvLockKey(reservationID string) string { return "reservation:" + reservationID }
func potLockKey(potID string) string         { return "pot:" + potID }
func idemLockKey(key string) string          { return "idem:" + key }
