package engine

import (
	"context"
	"testing"
	"time"

	"github.com/cardroomlabs/balanced/internal/balance"
)

func TestPlanCommitTransitions(t *testing.T) {
	nowMs := int64(1_000_000)
	held := &balance.Reservation{Status: balance.ReservationHeld, ExpiresAtMs: nowMs + 5000}
	if p := planCommit(held, nowMs, "now"); p.action != commitDebitThenCommit {
		t.Fatalf("held not expired: %+v", p)
	}

	overdue := &balance.Reservation{Status: balance.ReservationHeld, ExpiresAtMs: nowMs}
	p := planCommit(overdue, nowMs, "now")
	if p.action != commitExpireThenReject || p.err.Code != balance.CodeReservationExpired {
		t.Fatalf("held expired: %+v", p)
	}
	if p.updated == nil || p.updated.Status != balance.ReservationExpired {
		t.Fatalf("expire update missing: %+v", p)
	}

	cases := []struct {
		status balance.ReservationStatus
		action commitAction
		code   balance.Code
	}{
		{balance.ReservationCommitted, commitAlreadyCommitted, ""},
		{balance.ReservationReleased, commitReject, balance.CodeReservationNotHeld},
		{balance.ReservationExpired, commitReject, balance.CodeReservationExpired},
	}
	for _, tc := range cases {
		p := planCommit(&balance.Reservation{Status: tc.status}, nowMs, "now")
		if p.action != tc.action {
			t.Fatalf("status %s: action %v", tc.status, p.action)
		}
		if tc.code != "" && (p.err == nil || p.err.Code != tc.code) {
			t.Fatalf("status %s: err %+v", tc.status, p.err)
		}
	}
}

func TestPlanReleaseTransitions(t *testing.T) {
	if p := planRelease(&balance.Reservation{Status: balance.ReservationHeld}, "now"); p.action != releaseDo {
		t.Fatalf("held: %+v", p)
	}
	if p := planRelease(&balance.Reservation{Status: balance.ReservationReleased}, "now"); p.action != releaseAlreadyReleased {
		t.Fatalf("released: %+v", p)
	}
	if p := planRelease(&balance.Reservation{Status: balance.ReservationExpired}, "now"); p.action != releaseAlreadyReleased {
		t.Fatalf("expired: %+v", p)
	}
	p := planRelease(&balance.Reservation{Status: balance.ReservationCommitted}, "now")
	if p.action != releaseReject || p.err.Code != balance.CodeAlreadyCommitted {
		t.Fatalf("committed: %+v", p)
	}
}

func TestTwoPhaseBuyInThenCommit(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	mustEnsure(t, e, "p1", 0)
	mustDeposit(t, e, "p1", 10000, "k1")

	res, err := e.ReserveForBuyIn(ctx, "p1", "T", 1000, "k2", 30)
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if res.AvailableBalance != 9000 {
		t.Fatalf("available after hold: %d", res.AvailableBalance)
	}

	bal, _ := e.GetBalance(ctx, "p1")
	if bal.Balance != 10000 || bal.AvailableBalance != 9000 {
		t.Fatalf("hold must not move chips: %+v", bal)
	}

	commit, err := e.CommitReservation(ctx, res.ReservationID)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if commit.NewBalance != 9000 {
		t.Fatalf("balance after commit: %d", commit.NewBalance)
	}

	bal, _ = e.GetBalance(ctx, "p1")
	if bal.Balance != 9000 || bal.AvailableBalance != 9000 {
		t.Fatalf("commit must release the hold: %+v", bal)
	}

	// Committing again is an idempotent success with the same transaction.
	again, err := e.CommitReservation(ctx, res.ReservationID)
	if err != nil {
		t.Fatalf("recommit: %v", err)
	}
	if again.TransactionID != commit.TransactionID || again.NewBalance != 9000 {
		t.Fatalf("recommit drifted: %+v vs %+v", again, commit)
	}
}

func TestReleaseRestoresAvailability(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	mustEnsure(t, e, "p2", 0)
	mustDeposit(t, e, "p2", 5000, "k1")

	res, err := e.ReserveForBuyIn(ctx, "p2", "T", 2000, "k3", 0)
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if res.AvailableBalance != 3000 {
		t.Fatalf("available after hold: %d", res.AvailableBalance)
	}

	rel, err := e.ReleaseReservation(ctx, res.ReservationID, "seat_taken")
	if err != nil {
		t.Fatalf("release: %v", err)
	}
	if rel.AvailableBalance != 5000 {
		t.Fatalf("available after release: %d", rel.AvailableBalance)
	}

	// Releasing again stays a success.
	if _, err := e.ReleaseReservation(ctx, res.ReservationID, "retry"); err != nil {
		t.Fatalf("double release: %v", err)
	}
	// But the released hold can no longer be committed.
	if _, err := e.CommitReservation(ctx, res.ReservationID); balance.CodeOf(err) != balance.CodeReservationNotHeld {
		t.Fatalf("commit after release: %v", err)
	}
}

func TestReserveValidation(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	mustEnsure(t, e, "p1", 0)
	mustDeposit(t, e, "p1", 100, "k1")

	if _, err := e.ReserveForBuyIn(ctx, "p1", "T", 0, "k2", 0); balance.CodeOf(err) != balance.CodeInvalidAmount {
		t.Fatalf("zero amount: %v", err)
	}
	_, err := e.ReserveForBuyIn(ctx, "p1", "T", 500, "k3", 0)
	de, ok := balance.AsError(err)
	if !ok || de.Code != balance.CodeInsufficientBalance || de.AvailableBalance == nil || *de.AvailableBalance != 100 {
		t.Fatalf("insufficient: %v", err)
	}
	if _, err := e.ReserveForBuyIn(ctx, "ghost", "T", 10, "k4", 0); balance.CodeOf(err) != balance.CodeAccountNotFound {
		t.Fatalf("absent account: %v", err)
	}
	if _, err := e.CommitReservation(ctx, "rsv-missing"); balance.CodeOf(err) != balance.CodeReservationNotFound {
		t.Fatalf("missing reservation: %v", err)
	}
	if _, err := e.ReleaseReservation(ctx, "rsv-missing", ""); balance.CodeOf(err) != balance.CodeReservationNotFound {
		t.Fatalf("missing reservation release: %v", err)
	}
}

func TestReservationExpirySweep(t *testing.T) {
	e, _, clk := newTestEngine(t)
	ctx := context.Background()
	mustEnsure(t, e, "p3", 0)
	mustDeposit(t, e, "p3", 1000, "k1")

	res, err := e.ReserveForBuyIn(ctx, "p3", "T", 500, "k4", 1)
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	bal, _ := e.GetBalance(ctx, "p3")
	if bal.AvailableBalance != 500 {
		t.Fatalf("available while held: %d", bal.AvailableBalance)
	}

	// Not yet due.
	n, err := e.ProcessExpiredReservations(ctx)
	if err != nil || n != 0 {
		t.Fatalf("premature expiry: n=%d err=%v", n, err)
	}

	clk.Advance(2 * time.Second)
	n, err = e.ProcessExpiredReservations(ctx)
	if err != nil || n != 1 {
		t.Fatalf("expiry sweep: n=%d err=%v", n, err)
	}
	// Second sweep is a no-op, the transition already happened.
	n, _ = e.ProcessExpiredReservations(ctx)
	if n != 0 {
		t.Fatalf("sweep re-expired: n=%d", n)
	}

	if _, err := e.CommitReservation(ctx, res.ReservationID); balance.CodeOf(err) != balance.CodeReservationExpired {
		t.Fatalf("commit after expiry: %v", err)
	}
	bal, _ = e.GetBalance(ctx, "p3")
	if bal.AvailableBalance != bal.Balance {
		t.Fatalf("expiry must restore availability: %+v", bal)
	}
}

func TestCommitOverdueReservationExpiresIt(t *testing.T) {
	e, st, clk := newTestEngine(t)
	ctx := context.Background()
	mustEnsure(t, e, "p1", 0)
	mustDeposit(t, e, "p1", 1000, "k1")

	res, err := e.ReserveForBuyIn(ctx, "p1", "T", 500, "k2", 1)
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	clk.Advance(5 * time.Second)

	if _, err := e.CommitReservation(ctx, res.ReservationID); balance.CodeOf(err) != balance.CodeReservationExpired {
		t.Fatalf("overdue commit: %v", err)
	}
	r, err := st.GetReservation(ctx, res.ReservationID)
	if err != nil || r.Status != balance.ReservationExpired {
		t.Fatalf("overdue commit must persist EXPIRED: %+v err=%v", r, err)
	}
}

func TestCommitReplaySerializesWithAccountMutations(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	mustEnsure(t, e, "p1", 0)
	mustDeposit(t, e, "p1", 1000, "k1")

	res, err := e.ReserveForBuyIn(ctx, "p1", "T", 400, "k2", 0)
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if _, err := e.CommitReservation(ctx, res.ReservationID); err != nil {
		t.Fatalf("commit: %v", err)
	}

	// A recommit replay reads the balance under the account lock, so it must
	// wait out a concurrent holder instead of reading mid-mutation.
	if err := e.locks.Lock(ctx, accountLockKey("p1")); err != nil {
		t.Fatalf("lock: %v", err)
	}
	done := make(chan *CommitResult, 1)
	go func() {
		replayed, rerr := e.CommitReservation(ctx, res.ReservationID)
		if rerr != nil {
			t.Errorf("recommit: %v", rerr)
		}
		done <- replayed
	}()
	select {
	case <-done:
		t.Fatalf("replay did not wait for the account lock")
	case <-time.After(50 * time.Millisecond):
	}
	e.locks.Unlock(accountLockKey("p1"))

	replayed := <-done
	if replayed == nil || replayed.NewBalance != 600 {
		t.Fatalf("replayed commit: %+v", replayed)
	}
}
