package engine

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/cardroomlabs/balanced/internal/balance"
	"github.com/cardroomlabs/balanced/internal/balance/store"
	"github.com/cardroomlabs/balanced/internal/platform/clock"
)

func TestEnsureAccountClampsAndIsStable(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	acct, created, err := e.EnsureAccount(ctx, "p1", -50)
	if err != nil || !created {
		t.Fatalf("ensure: created=%v err=%v", created, err)
	}
	if acct.Balance != 0 || acct.Version != 0 {
		t.Fatalf("negative initial balance not clamped: %+v", acct)
	}

	again, created, err := e.EnsureAccount(ctx, "p1", 9999)
	if err != nil || created {
		t.Fatalf("second ensure: created=%v err=%v", created, err)
	}
	if again.Balance != 0 {
		t.Fatalf("existing account mutated by ensure: %+v", again)
	}

	if _, _, err := e.EnsureAccount(ctx, "", 0); balance.CodeOf(err) != balance.CodeInvalidAccountID {
		t.Fatalf("empty account id: %v", err)
	}
}

func TestDepositSourceMapping(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	mustEnsure(t, e, "p1", 0)

	cases := []struct {
		source balance.DepositSource
		want   balance.TransactionType
	}{
		{balance.SourcePurchase, balance.TxDeposit},
		{balance.SourceFreeroll, balance.TxDeposit},
		{balance.SourceAdmin, balance.TxDeposit},
		{balance.SourceBonus, balance.TxBonus},
		{balance.SourceReferral, balance.TxReferral},
	}
	for i, tc := range cases {
		tx, err := e.ProcessDeposit(ctx, "p1", 100, tc.source, "dep-"+string(tc.source))
		if err != nil {
			t.Fatalf("case %d: %v", i, err)
		}
		if tx.Type != tc.want {
			t.Fatalf("source %s mapped to %s, want %s", tc.source, tx.Type, tc.want)
		}
		if tx.Metadata.Source != string(tc.source) {
			t.Fatalf("source not recorded in metadata: %+v", tx.Metadata)
		}
	}
}

func TestDepositValidation(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	mustEnsure(t, e, "p1", 0)

	if _, err := e.ProcessDeposit(ctx, "p1", 100, "", "k"); balance.CodeOf(err) != balance.CodeMissingSource {
		t.Fatalf("missing source: %v", err)
	}
	if _, err := e.ProcessDeposit(ctx, "p1", 100, "LOTTERY", "k"); balance.CodeOf(err) != balance.CodeMissingSource {
		t.Fatalf("unknown source: %v", err)
	}
	if _, err := e.ProcessDeposit(ctx, "p1", 0, balance.SourcePurchase, "k"); balance.CodeOf(err) != balance.CodeInvalidAmount {
		t.Fatalf("zero amount: %v", err)
	}
	if _, err := e.ProcessDeposit(ctx, "p1", -5, balance.SourcePurchase, "k"); balance.CodeOf(err) != balance.CodeInvalidAmount {
		t.Fatalf("negative amount: %v", err)
	}
	if _, err := e.ProcessDeposit(ctx, "p1", 100, balance.SourcePurchase, ""); balance.CodeOf(err) != balance.CodeMissingIdempotencyKey {
		t.Fatalf("missing key: %v", err)
	}
	if _, err := e.ProcessDeposit(ctx, "ghost", 100, balance.SourcePurchase, "k-ghost"); balance.CodeOf(err) != balance.CodeAccountNotFound {
		t.Fatalf("absent account: %v", err)
	}
}

func TestWithdrawalHonorsAvailableBalance(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	mustEnsure(t, e, "p1", 0)
	mustDeposit(t, e, "p1", 5000, "k1")

	if _, err := e.ReserveForBuyIn(ctx, "p1", "T", 2000, "k2", 0); err != nil {
		t.Fatalf("reserve: %v", err)
	}

	// 5000 balance, 2000 held: a 3500 withdrawal must bounce with the
	// available amount.
	_, err := e.ProcessWithdrawal(ctx, "p1", 3500, "payout", "k3")
	de, ok := balance.AsError(err)
	if !ok || de.Code != balance.CodeInsufficientBalance {
		t.Fatalf("expected INSUFFICIENT_BALANCE, got %v", err)
	}
	if de.AvailableBalance == nil || *de.AvailableBalance != 3000 {
		t.Fatalf("available balance not reported: %+v", de)
	}

	tx, err := e.ProcessWithdrawal(ctx, "p1", 3000, "payout", "k4")
	if err != nil {
		t.Fatalf("withdraw within available: %v", err)
	}
	if tx.BalanceAfter != 2000 {
		t.Fatalf("balance after withdrawal: %d", tx.BalanceAfter)
	}
}

func TestIdempotentReplayReturnsFirstOutcome(t *testing.T) {
	e, st, _ := newTestEngine(t)
	ctx := context.Background()
	mustEnsure(t, e, "p1", 0)

	first := mustDeposit(t, e, "p1", 1000, "same")
	second := mustDeposit(t, e, "p1", 1000, "same")
	if first.TransactionID != second.TransactionID {
		t.Fatalf("replay produced a different transaction: %s vs %s", first.TransactionID, second.TransactionID)
	}
	bal, err := e.GetBalance(ctx, "p1")
	if err != nil || bal.Balance != 1000 {
		t.Fatalf("replay moved chips twice: %+v err=%v", bal, err)
	}
	entries, err := st.LedgerEntries(ctx, "p1")
	if err != nil || len(entries) != 1 {
		t.Fatalf("replay appended a second ledger entry: len=%d err=%v", len(entries), err)
	}
}

func TestIdempotencyCachesDomainFailures(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	mustEnsure(t, e, "p1", 0)
	mustDeposit(t, e, "p1", 100, "k1")

	_, err := e.ProcessWithdrawal(ctx, "p1", 500, "", "wk")
	if balance.CodeOf(err) != balance.CodeInsufficientBalance {
		t.Fatalf("first attempt: %v", err)
	}

	// Funding the account does not change the cached outcome for the key.
	mustDeposit(t, e, "p1", 10000, "k2")
	_, err = e.ProcessWithdrawal(ctx, "p1", 500, "", "wk")
	if balance.CodeOf(err) != balance.CodeInsufficientBalance {
		t.Fatalf("replayed attempt should observe the cached failure, got %v", err)
	}

	// A fresh key sees the funded account.
	if _, err := e.ProcessWithdrawal(ctx, "p1", 500, "", "wk2"); err != nil {
		t.Fatalf("fresh key: %v", err)
	}
}

func TestConcurrentDepositsSameKey(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	mustEnsure(t, e, "p4", 0)

	const callers = 5
	txIDs := make([]string, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tx, err := e.ProcessDeposit(ctx, "p4", 1000, balance.SourcePurchase, "samekey")
			if err != nil {
				t.Errorf("caller %d: %v", i, err)
				return
			}
			txIDs[i] = tx.TransactionID
		}(i)
	}
	wg.Wait()

	for i := 1; i < callers; i++ {
		if txIDs[i] != txIDs[0] {
			t.Fatalf("callers observed different transactions: %v", txIDs)
		}
	}
	bal, err := e.GetBalance(ctx, "p4")
	if err != nil || bal.Balance != 1000 {
		t.Fatalf("balance after racing duplicates: %+v err=%v", bal, err)
	}
}

func TestVersionConflictRetries(t *testing.T) {
	clk := &clock.Fixed{T: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	cs := &conflictStore{Memory: store.NewMemory(clk, 1000), conflictsLeft: 4}
	e := New(cs, nil, clk, zap.NewNop(), nil, Config{})
	ctx := context.Background()

	if _, _, err := e.EnsureAccount(ctx, "p1", 0); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	tx, err := e.CreditBalance(ctx, "p1", 100, balance.TxDeposit, "k1", balance.Metadata{})
	if err != nil {
		t.Fatalf("credit should survive transient conflicts: %v", err)
	}
	if tx.BalanceAfter != 100 {
		t.Fatalf("balance after retried credit: %d", tx.BalanceAfter)
	}

	// More conflicts than the retry budget surfaces VERSION_CONFLICT.
	cs.conflictsLeft = maxBalanceUpdateAttempts + 1
	_, err = e.CreditBalance(ctx, "p1", 100, balance.TxDeposit, "k2", balance.Metadata{})
	if balance.CodeOf(err) != balance.CodeVersionConflict {
		t.Fatalf("expected VERSION_CONFLICT after exhausted retries, got %v", err)
	}
}

func TestLedgerInvariantsAfterMixedTraffic(t *testing.T) {
	e, st, _ := newTestEngine(t)
	ctx := context.Background()
	mustEnsure(t, e, "a", 0)
	mustDeposit(t, e, "a", 10000, "seed")

	amounts := []int64{100, -40, 250, -10, 75, -300, 500, -1, 999, -60}
	for i, amt := range amounts {
		var err error
		key := "mix-" + string(rune('a'+i))
		if amt > 0 {
			_, err = e.CreditBalance(ctx, "a", amt, balance.TxDeposit, key, balance.Metadata{})
		} else {
			_, err = e.DebitBalance(ctx, "a", -amt, balance.TxWithdraw, key, balance.Metadata{}, true)
		}
		if err != nil {
			t.Fatalf("op %d: %v", i, err)
		}
	}

	res, err := e.VerifyLedger(ctx, "a")
	if err != nil || !res.Valid {
		t.Fatalf("chain invalid after mixed traffic: %+v err=%v", res, err)
	}
	if res.EntriesChecked != len(amounts)+1 {
		t.Fatalf("entries checked: %d", res.EntriesChecked)
	}

	entries, _ := st.LedgerEntries(ctx, "a")
	var sum int64
	prevAfter := int64(0)
	for i, en := range entries {
		if en.BalanceAfter != en.BalanceBefore+en.Amount {
			t.Fatalf("entry %d arithmetic broken: %+v", i, en)
		}
		if en.BalanceBefore != prevAfter {
			t.Fatalf("entry %d does not chain from predecessor: %+v", i, en)
		}
		prevAfter = en.BalanceAfter
		sum += en.Amount
	}
	bal, _ := e.GetBalance(ctx, "a")
	if bal.Balance != sum {
		t.Fatalf("balance %d != ledger sum %d", bal.Balance, sum)
	}

	latest, _ := st.LatestChecksum(ctx, "a")
	if latest != entries[len(entries)-1].Checksum {
		t.Fatalf("latest checksum out of step with chain tail")
	}
}

func TestListTransactionsAndLedger(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	mustEnsure(t, e, "p1", 0)
	mustDeposit(t, e, "p1", 100, "k1")
	mustDeposit(t, e, "p1", 200, "k2")
	if _, err := e.ProcessWithdrawal(ctx, "p1", 50, "", "k3"); err != nil {
		t.Fatalf("withdraw: %v", err)
	}

	txs, total, err := e.ListTransactions(ctx, "p1", store.TransactionFilter{Type: balance.TxDeposit})
	if err != nil || total != 2 || len(txs) != 2 {
		t.Fatalf("deposit filter: total=%d len=%d err=%v", total, len(txs), err)
	}

	entries, total, latest, err := e.ListLedgerEntries(ctx, "p1", store.LedgerFilter{})
	if err != nil || total != 3 || len(entries) != 3 {
		t.Fatalf("ledger page: total=%d len=%d err=%v", total, len(entries), err)
	}
	if latest != entries[len(entries)-1].Checksum {
		t.Fatalf("latest checksum mismatch")
	}
}
