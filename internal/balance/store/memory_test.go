package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cardroomlabs/balanced/internal/balance"
	"github.com/cardroomlabs/balanced/internal/balance/ledger"
	"github.com/cardroomlabs/balanced/internal/platform/clock"
)

func memStore(t *testing.T) (*Memory, *clock.Fixed) {
	t.Helper()
	clk := &clock.Fixed{T: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	return NewMemory(clk, 100), clk
}

func TestAccountCreateGetAndVersionCAS(t *testing.T) {
	s, _ := memStore(t)
	ctx := context.Background()

	acct := &balance.Account{AccountID: "p1", Balance: 100, Currency: balance.Currency, Version: 0}
	created, err := s.CreateAccount(ctx, acct)
	if err != nil || !created {
		t.Fatalf("create: created=%v err=%v", created, err)
	}
	created, err = s.CreateAccount(ctx, &balance.Account{AccountID: "p1", Balance: 999})
	if err != nil || created {
		t.Fatalf("second create should be a no-op: created=%v err=%v", created, err)
	}
	got, err := s.GetAccount(ctx, "p1")
	if err != nil || got.Balance != 100 {
		t.Fatalf("get after duplicate create: %+v err=%v", got, err)
	}

	got.Balance = 150
	got.Version = 1
	if err := s.UpdateAccountWithVersion(ctx, got, 0); err != nil {
		t.Fatalf("cas with matching version: %v", err)
	}
	stale := *got
	stale.Balance = 999
	stale.Version = 1
	if err := s.UpdateAccountWithVersion(ctx, &stale, 0); !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("expected version conflict, got %v", err)
	}
	if _, err := s.GetAccount(ctx, "absent"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestTransactionListingNewestFirstWithFilter(t *testing.T) {
	s, _ := memStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		typ := balance.TxDeposit
		if i%2 == 1 {
			typ = balance.TxWithdraw
		}
		_ = s.PutTransaction(ctx, &balance.Transaction{
			TransactionID: fmt.Sprintf("tx-%d", i),
			AccountID:     "p1",
			Type:          typ,
			Amount:        int64(i + 1),
		})
	}

	txs, total, err := s.ListTransactions(ctx, "p1", TransactionFilter{Limit: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 5 || len(txs) != 2 || txs[0].TransactionID != "tx-4" {
		t.Fatalf("unexpected page: total=%d len=%d first=%s", total, len(txs), txs[0].TransactionID)
	}

	deps, total, err := s.ListTransactions(ctx, "p1", TransactionFilter{Type: balance.TxDeposit})
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	if total != 3 || len(deps) != 3 {
		t.Fatalf("type filter wrong: total=%d len=%d", total, len(deps))
	}
	for _, tx := range deps {
		if tx.Type != balance.TxDeposit {
			t.Fatalf("filter leaked type %s", tx.Type)
		}
	}
}

func TestReservationIndexes(t *testing.T) {
	s, _ := memStore(t)
	ctx := context.Background()

	put := func(id string, status balance.ReservationStatus, expMs int64) {
		t.Helper()
		if err := s.PutReservation(ctx, &balance.Reservation{
			ReservationID: id, AccountID: "p1", Amount: 10,
			Status: status, ExpiresAtMs: expMs,
		}); err != nil {
			t.Fatalf("put %s: %v", id, err)
		}
	}
	put("r1", balance.ReservationHeld, 1000)
	put("r2", balance.ReservationHeld, 500)
	put("r3", balance.ReservationReleased, 100)

	held, err := s.HeldReservations(ctx, "p1")
	if err != nil || len(held) != 2 {
		t.Fatalf("held reservations: len=%d err=%v", len(held), err)
	}

	due, err := s.DueReservationIDs(ctx, 600, 10)
	if err != nil {
		t.Fatalf("due: %v", err)
	}
	if len(due) != 1 || due[0] != "r2" {
		t.Fatalf("due set wrong: %v", due)
	}

	// Transitioning r2 out of HELD removes it from both indexes.
	put("r2", balance.ReservationExpired, 500)
	due, _ = s.DueReservationIDs(ctx, 2000, 10)
	if len(due) != 1 || due[0] != "r1" {
		t.Fatalf("expired reservation still due: %v", due)
	}
	held, _ = s.HeldReservations(ctx, "p1")
	if len(held) != 1 || held[0].ReservationID != "r1" {
		t.Fatalf("held index stale: %v", held)
	}
}

func TestLedgerAppendAndLatestChecksum(t *testing.T) {
	s, _ := memStore(t)
	ctx := context.Background()

	if sum, err := s.LatestChecksum(ctx, "p1"); err != nil || sum != ledger.Genesis {
		t.Fatalf("empty chain checksum: %q err=%v", sum, err)
	}

	e := &balance.LedgerEntry{EntryID: "led-1", AccountID: "p1", Amount: 10, PreviousChecksum: ledger.Genesis}
	e.Checksum = ledger.Checksum(e)
	if err := s.AppendLedgerEntry(ctx, e); err != nil {
		t.Fatalf("append: %v", err)
	}
	sum, _ := s.LatestChecksum(ctx, "p1")
	if sum != e.Checksum {
		t.Fatalf("latest checksum not updated: %q", sum)
	}
	entries, err := s.LedgerEntries(ctx, "p1")
	if err != nil || len(entries) != 1 || entries[0].EntryID != "led-1" {
		t.Fatalf("chain read back wrong: len=%d err=%v", len(entries), err)
	}
}

func TestIdempotencyTTLAndCap(t *testing.T) {
	clk := &clock.Fixed{T: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	s := NewMemory(clk, 3)
	ctx := context.Background()

	if err := s.PutIdempotency(ctx, "k1", []byte("one"), time.Minute); err != nil {
		t.Fatalf("put: %v", err)
	}
	blob, err := s.GetIdempotency(ctx, "k1")
	if err != nil || string(blob) != "one" {
		t.Fatalf("get live key: %q err=%v", blob, err)
	}

	clk.Advance(2 * time.Minute)
	if _, err := s.GetIdempotency(ctx, "k1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expired key should be absent, got err=%v", err)
	}

	// Fill to the cap with live keys; the next put evicts the oldest.
	for i := 0; i < 3; i++ {
		_ = s.PutIdempotency(ctx, fmt.Sprintf("cap-%d", i), []byte("x"), time.Hour)
		clk.Advance(time.Second)
	}
	_ = s.PutIdempotency(ctx, "cap-3", []byte("x"), time.Hour)
	if _, err := s.GetIdempotency(ctx, "cap-0"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("oldest key should have been evicted, got err=%v", err)
	}
	if _, err := s.GetIdempotency(ctx, "cap-3"); err != nil {
		t.Fatalf("newest key missing after eviction: %v", err)
	}
}

func TestPotCreateAndVersionCAS(t *testing.T) {
	s, _ := memStore(t)
	ctx := context.Background()

	pot := &balance.TablePot{
		PotID: "T1:H1", TableID: "T1", HandID: "H1",
		Contributions: map[int]int64{0: 50},
		Status:        balance.PotActive,
	}
	created, err := s.CreatePot(ctx, pot)
	if err != nil || !created {
		t.Fatalf("create pot: created=%v err=%v", created, err)
	}
	created, _ = s.CreatePot(ctx, pot)
	if created {
		t.Fatalf("duplicate pot create should be a no-op")
	}

	got, err := s.GetPot(ctx, "T1:H1")
	if err != nil {
		t.Fatalf("get pot: %v", err)
	}
	got.Contributions[1] = 25
	got.Version = 1
	if err := s.UpdatePotWithVersion(ctx, got, 0); err != nil {
		t.Fatalf("pot cas: %v", err)
	}
	if err := s.UpdatePotWithVersion(ctx, got, 0); !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("expected pot version conflict, got %v", err)
	}

	// The copy returned by GetPot must not alias store state.
	fresh, _ := s.GetPot(ctx, "T1:H1")
	fresh.Contributions[9] = 999
	again, _ := s.GetPot(ctx, "T1:H1")
	if _, ok := again.Contributions[9]; ok {
		t.Fatalf("GetPot leaked internal map")
	}
}
