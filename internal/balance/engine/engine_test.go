package engine

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/cardroomlabs/balanced/internal/balance"
	"github.com/cardroomlabs/balanced/internal/balance/store"
	"github.com/cardroomlabs/balanced/internal/platform/clock"
)

func newTestEngine(t *testing.T) (*Engine, *store.Memory, *clock.Fixed) {
	t.Helper()
	clk := &clock.Fixed{T: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	st := store.NewMemory(clk, 1000)
	e := New(st, nil, clk, zap.NewNop(), nil, Config{
		ReservationTimeout: 30 * time.Second,
		IdempotencyTTL:     24 * time.Hour,
		RakeBasisPoints:    500,
		RakeCap:            5,
		RakeMinPot:         20,
	})
	var seq int
	e.newID = func() string {
		seq++
		return fmt.Sprintf("%06d", seq)
	}
	return e, st, clk
}

func mustDeposit(t *testing.T, e *Engine, accountID string, amount int64, key string) *balance.Transaction {
	t.Helper()
	tx, err := e.ProcessDeposit(context.Background(), accountID, amount, balance.SourcePurchase, key)
	if err != nil {
		t.Fatalf("deposit %d to %s: %v", amount, accountID, err)
	}
	return tx
}

func mustEnsure(t *testing.T, e *Engine, accountID string, initial int64) {
	t.Helper()
	if _, _, err := e.EnsureAccount(context.Background(), accountID, initial); err != nil {
		t.Fatalf("ensure %s: %v", accountID, err)
	}
}

// conflictStore wraps the memory store and fails the next N version CAS
// writes so the retry loop is exercised.
type conflictStore struct {
	*store.Memory
	conflictsLeft int
}

func (s *conflictStore) UpdateAccountWithVersion(ctx context.Context, acct *balance.Account, expected int64) error {
	if s.conflictsLeft > 0 {
		s.conflictsLeft--
		return store.ErrVersionConflict
	}
	return s.Memory.UpdateAccountWithVersion(ctx, acct, expected)
}
