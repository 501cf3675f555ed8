package engine

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/cardroomlabs/balanced/internal/balance/ledger"
)

// VerifyLedger walks one account's hash chain from GENESIS.
func (e *Engine) VerifyLedger(ctx context.Context, accountID string) (*ledger.VerifyResult, error) {
	entries, err := e.store.LedgerEntries(ctx, accountID)
	if err != nil {
		return nil, err
	}
	res := ledger.Verify(entries)
	return &res, nil
}

// AllLedgersResult aggregates a bulk verification sweep.
type AllLedgersResult struct {
	Valid   bool                           `json:"valid"`
	Results map[string]ledger.VerifyResult `json:"results"`
}

// VerifyAllLedgers verifies every account's chain, a bounded number in
// parallel. Accounts are independent, so a bad chain in one does not stop
// the others.
func (e *Engine) VerifyAllLedgers(ctx context.Context) (*AllLedgersResult, error) {
	ids, err := e.store.ListAccountIDs(ctx)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	out := &AllLedgersResult{Valid: true, Results: make(map[string]ledger.VerifyResult, len(ids))}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, id := range ids {
		accountID := id
		g.Go(func() error {
			res, err := e.VerifyLedger(gctx, accountID)
			if err != nil {
				return err
			}
			mu.Lock()
			out.Results[accountID] = *res
			if !res.Valid {
				out.Valid = false
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
