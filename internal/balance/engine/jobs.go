package engine

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// StartReservationExpiryJob sweeps overdue reservations on a fixed interval
// until ctx is cancelled. Overlapping sweeps are safe, the per-reservation
// locks make each transition unique.
func (e *Engine) StartReservationExpiryJob(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := e.ProcessExpiredReservations(ctx); err != nil && ctx.Err() == nil {
					e.log.Warn("reservation expiry sweep failed", zap.Error(err))
				}
			}
		}
	}()
}

// StartLedgerVerificationJob re-verifies every account's hash chain on a
// fixed interval. A broken chain is logged with the first bad entry and
// counted; it never blocks traffic.
func (e *Engine) StartLedgerVerificationJob(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				e.runLedgerVerification(ctx)
			}
		}
	}()
}

func (e *Engine) runLedgerVerification(ctx context.Context) {
	res, err := e.VerifyAllLedgers(ctx)
	if err != nil {
		if ctx.Err() == nil {
			e.log.Warn("ledger verification sweep failed", zap.Error(err))
			e.metrics.ObserveLedgerVerification(0, err)
		}
		return
	}
	invalid := 0
	for accountID, r := range res.Results {
		if r.Valid {
			continue
		}
		invalid++
		e.log.Error("ledger chain invalid",
			zap.String("accountId", accountID),
			zap.Int("entriesChecked", r.EntriesChecked),
			zap.String("firstInvalidEntry", r.FirstInvalidEntry))
	}
	e.metrics.ObserveLedgerVerification(invalid, nil)
}
