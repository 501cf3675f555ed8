package engine

import (
	"context"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/cardroomlabs/balanced/internal/balance"
	"github.com/cardroomlabs/balanced/internal/balance/store"
	"github.com/cardroomlabs/balanced/internal/platform/clock"
)

func TestCalculatePotsSidePots(t *testing.T) {
	// Short stack all-in for 100, two deeper stacks at 300 each.
	pots := CalculatePots(map[int]int64{0: 100, 1: 300, 2: 300}, nil)
	want := []balance.Pot{
		{Amount: 300, EligibleSeatIDs: []int{0, 1, 2}},
		{Amount: 400, EligibleSeatIDs: []int{1, 2}},
	}
	if !reflect.DeepEqual(pots, want) {
		t.Fatalf("side pots:\n got=%+v\nwant=%+v", pots, want)
	}
}

func TestCalculatePotsConservesChipsAndSkipsFolded(t *testing.T) {
	contributions := map[int]int64{0: 50, 1: 120, 2: 120, 3: 80}
	folded := map[int]bool{1: true}
	pots := CalculatePots(contributions, folded)

	var total, potSum int64
	for _, amt := range contributions {
		total += amt
	}
	for _, p := range pots {
		potSum += p.Amount
		for _, seat := range p.EligibleSeatIDs {
			if folded[seat] {
				t.Fatalf("folded seat %d still eligible: %+v", seat, p)
			}
		}
	}
	if potSum != total {
		t.Fatalf("pot layering lost chips: %d != %d", potSum, total)
	}
}

func TestCalculateRake(t *testing.T) {
	e, _, _ := newTestEngine(t)
	cases := []struct {
		totalPot int64
		want     int64
	}{
		{0, 0},
		{20, 0},  // at the minimum, not raked
		{21, 1},  // floor(1.05)
		{60, 3},  // floor(3.0)
		{100, 5}, // exactly the cap
		{390, 5}, // 19.5 clamped to the cap
	}
	for _, tc := range cases {
		if got := e.CalculateRake(tc.totalPot); got != tc.want {
			t.Fatalf("rake(%d) = %d, want %d", tc.totalPot, got, tc.want)
		}
	}

	// Rake disabled when bps or cap are zero.
	off := New(store.NewMemory(nil, 10), nil, nil, zap.NewNop(), nil, Config{RakeBasisPoints: 0, RakeCap: 5})
	if off.CalculateRake(1000) != 0 {
		t.Fatalf("zero bps must disable rake")
	}
}

func TestNormalizeWinners(t *testing.T) {
	winners := []balance.Winner{
		{SeatID: 2, AccountID: "c", Amount: 100},
		{SeatID: 0, AccountID: "a", Amount: 100},
		{SeatID: 1, AccountID: "b", Amount: 100},
	}
	out := NormalizeWinners(winners, 100)
	var sum int64
	for _, w := range out {
		sum += w.Amount
	}
	if sum != 100 {
		t.Fatalf("normalized sum %d != 100", sum)
	}
	// 100/3 floors to 33 each; the single remainder chip lands on the lowest
	// seat, and the output is seat-ascending.
	if out[0].SeatID != 0 || out[0].Amount != 34 {
		t.Fatalf("remainder not given to lowest seat: %+v", out)
	}
	if out[1].Amount != 33 || out[2].Amount != 33 {
		t.Fatalf("base amounts wrong: %+v", out)
	}

	// No remainder keeps the input order.
	even := NormalizeWinners([]balance.Winner{
		{SeatID: 5, Amount: 50},
		{SeatID: 1, Amount: 50},
	}, 100)
	if even[0].SeatID != 5 || even[0].Amount != 50 {
		t.Fatalf("even split reordered: %+v", even)
	}

	// Degenerate inputs zero out.
	zeroed := NormalizeWinners([]balance.Winner{{SeatID: 0, Amount: 0}}, 100)
	if zeroed[0].Amount != 0 {
		t.Fatalf("zero request not zeroed: %+v", zeroed)
	}
	zeroed = NormalizeWinners([]balance.Winner{{SeatID: 0, Amount: 10}}, 0)
	if zeroed[0].Amount != 0 {
		t.Fatalf("zero target not zeroed: %+v", zeroed)
	}
}

func contribute(t *testing.T, e *Engine, tableID, handID string, seat int, accountID string, amount int64, key string) *ContributionResult {
	t.Helper()
	res, err := e.RecordContribution(context.Background(), tableID, handID, seat, accountID, amount, "BET", key)
	if err != nil {
		t.Fatalf("contribute seat %d: %v", seat, err)
	}
	return res
}

func TestRecordContributionBookkeeping(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	mustEnsure(t, e, "alice", 0)
	mustDeposit(t, e, "alice", 1000, "seed")

	res := contribute(t, e, "T1", "H1", 0, "alice", 50, "c1")
	if res.TotalPot != 50 || res.SeatContribution != 50 {
		t.Fatalf("first contribution: %+v", res)
	}
	res = contribute(t, e, "T1", "H1", 0, "alice", 25, "c2")
	if res.TotalPot != 75 || res.SeatContribution != 75 {
		t.Fatalf("second contribution: %+v", res)
	}

	// Contributions are pot bookkeeping only, never an account debit.
	bal, _ := e.GetBalance(ctx, "alice")
	if bal.Balance != 1000 {
		t.Fatalf("contribution debited the account: %+v", bal)
	}

	// Replay returns the state as of the first execution.
	replayed, err := e.RecordContribution(ctx, "T1", "H1", 0, "alice", 25, "BET", "c2")
	if err != nil || replayed.TotalPot != 75 {
		t.Fatalf("replay: %+v err=%v", replayed, err)
	}
}

func TestSettlePotWithRakeAndIdempotentReplay(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	mustEnsure(t, e, "alice", 0)

	contribute(t, e, "t", "h", 0, "alice", 180, "c0")
	contribute(t, e, "t", "h", 1, "bob", 30, "c1")
	contribute(t, e, "t", "h", 2, "carol", 180, "c2")

	winners := []balance.Winner{{SeatID: 0, AccountID: "alice", Amount: 390}}
	res, err := e.SettlePot(ctx, "t", "h", winners, "sk")
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	// 390 total, 500 bps = 19.5 clamped to the 5 cap; alice nets 385.
	if res.RakeAmount != 5 {
		t.Fatalf("rake: %d", res.RakeAmount)
	}
	if len(res.Results) != 1 || res.Results[0].Amount != 385 {
		t.Fatalf("payout: %+v", res.Results)
	}
	bal, _ := e.GetBalance(ctx, "alice")
	if bal.Balance != 385 {
		t.Fatalf("alice balance: %d", bal.Balance)
	}

	// Replay under the same key returns the first outcome and pays nothing.
	again, err := e.SettlePot(ctx, "t", "h", []balance.Winner{{SeatID: 9, AccountID: "mallory", Amount: 9999}}, "sk")
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !reflect.DeepEqual(again, res) {
		t.Fatalf("replay drifted:\n got=%+v\nwant=%+v", again, res)
	}
	bal, _ = e.GetBalance(ctx, "alice")
	if bal.Balance != 385 {
		t.Fatalf("replay paid twice: %d", bal.Balance)
	}

	// A fresh key against the now SETTLED pot is an idempotent empty result.
	empty, err := e.SettlePot(ctx, "t", "h", winners, "sk2")
	if err != nil || len(empty.Results) != 0 {
		t.Fatalf("settled pot resettled: %+v err=%v", empty, err)
	}
}

func TestSettleRejectsNegativeWinnerAmounts(t *testing.T) {
	e, st, _ := newTestEngine(t)
	ctx := context.Background()

	contribute(t, e, "t", "h", 0, "alice", 50, "c0")
	contribute(t, e, "t", "h", 1, "bob", 50, "c1")

	// A negative leg must not reach normalization, where flooring would
	// inflate the positive legs past the pot.
	_, err := e.SettlePot(ctx, "t", "h", []balance.Winner{
		{SeatID: 0, AccountID: "alice", Amount: -50},
		{SeatID: 1, AccountID: "bob", Amount: 100},
	}, "sk-neg")
	if balance.CodeOf(err) != balance.CodeInvalidAmount {
		t.Fatalf("negative winner amount: %v", err)
	}
	pot, perr := st.GetPot(ctx, balance.PotID("t", "h"))
	if perr != nil || pot.Status != balance.PotActive {
		t.Fatalf("pot must stay ACTIVE: %+v err=%v", pot, perr)
	}
	if bal, _ := e.GetBalance(ctx, "bob"); bal != nil && bal.Balance != 0 {
		t.Fatalf("rejected settlement moved chips: %+v", bal)
	}

	// The pot settles normally afterwards and conserves chips.
	res, err := e.SettlePot(ctx, "t", "h", []balance.Winner{
		{SeatID: 1, AccountID: "bob", Amount: 100},
	}, "sk-ok")
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	var paid int64
	for _, p := range res.Results {
		paid += p.Amount
	}
	if paid+res.RakeAmount != 100 {
		t.Fatalf("chips not conserved: paid=%d rake=%d", paid, res.RakeAmount)
	}
}

func TestSettleSidePotsPayouts(t *testing.T) {
	e, st, _ := newTestEngine(t)
	ctx := context.Background()

	contribute(t, e, "t", "h", 0, "short", 100, "c0")
	contribute(t, e, "t", "h", 1, "medium", 300, "c1")
	contribute(t, e, "t", "h", 2, "deep", 300, "c2")

	mustEnsure(t, e, "medium", 0)
	mediumBefore, _ := e.GetBalance(ctx, "medium")

	// Main pot 300 to the short stack, side pot 400 to the deep stack.
	res, err := e.SettlePot(ctx, "t", "h", []balance.Winner{
		{SeatID: 0, AccountID: "short", Amount: 300},
		{SeatID: 2, AccountID: "deep", Amount: 400},
	}, "sk")
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if res.RakeAmount != 5 {
		t.Fatalf("rake: %d", res.RakeAmount)
	}

	var paid int64
	for _, p := range res.Results {
		paid += p.Amount
	}
	if paid+res.RakeAmount != 700 {
		t.Fatalf("chips not conserved: paid=%d rake=%d", paid, res.RakeAmount)
	}

	shortBal, _ := e.GetBalance(ctx, "short")
	deepBal, _ := e.GetBalance(ctx, "deep")
	if shortBal.Balance+deepBal.Balance != 695 {
		t.Fatalf("winner balances: short=%d deep=%d", shortBal.Balance, deepBal.Balance)
	}
	mediumAfter, _ := e.GetBalance(ctx, "medium")
	if mediumAfter.Balance != mediumBefore.Balance {
		t.Fatalf("losing seat balance moved: %d -> %d", mediumBefore.Balance, mediumAfter.Balance)
	}

	// The settled pot records its side-pot layering.
	pot, perr := st.GetPot(ctx, balance.PotID("t", "h"))
	if perr != nil {
		t.Fatalf("get pot: %v", perr)
	}
	wantPots := []balance.Pot{
		{Amount: 300, EligibleSeatIDs: []int{0, 1, 2}},
		{Amount: 400, EligibleSeatIDs: []int{1, 2}},
	}
	if !reflect.DeepEqual(pot.Pots, wantPots) {
		t.Fatalf("settled layering:\n got=%+v\nwant=%+v", pot.Pots, wantPots)
	}
}

func TestSettlePotErrors(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	if _, err := e.SettlePot(ctx, "t", "missing", nil, "sk-missing"); balance.CodeOf(err) != balance.CodePotNotFound {
		t.Fatalf("missing pot: %v", err)
	}

	contribute(t, e, "t", "h", 0, "a", 100, "c0")
	if err := e.CancelPot(ctx, "t", "h", "hand_void"); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := e.SettlePot(ctx, "t", "h", nil, "sk-cancelled"); balance.CodeOf(err) != balance.CodePotNotActive {
		t.Fatalf("cancelled pot: %v", err)
	}
	// Cancelling again stays a success; settling stays rejected.
	if err := e.CancelPot(ctx, "t", "h", "again"); err != nil {
		t.Fatalf("double cancel: %v", err)
	}
	if err := e.CancelPot(ctx, "x", "y", "nope"); balance.CodeOf(err) != balance.CodePotNotFound {
		t.Fatalf("cancel missing: %v", err)
	}
}

// failingAccountStore fails every CAS write for one account so settlement is
// forced into its rollback path.
type failingAccountStore struct {
	*store.Memory
	failAccountID string
}

func (s *failingAccountStore) UpdateAccountWithVersion(ctx context.Context, acct *balance.Account, expected int64) error {
	if acct.AccountID == s.failAccountID {
		return store.ErrVersionConflict
	}
	return s.Memory.UpdateAccountWithVersion(ctx, acct, expected)
}

func TestSettleRollbackOnPartialFailure(t *testing.T) {
	clk := &clock.Fixed{T: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	fs := &failingAccountStore{Memory: store.NewMemory(clk, 1000), failAccountID: "bob"}
	e := New(fs, nil, clk, zap.NewNop(), nil, Config{
		ReservationTimeout: 30 * time.Second,
		IdempotencyTTL:     24 * time.Hour,
	})
	ctx := context.Background()

	contribute(t, e, "t", "h", 0, "alice", 200, "c0")
	contribute(t, e, "t", "h", 1, "bob", 200, "c1")

	_, err := e.SettlePot(ctx, "t", "h", []balance.Winner{
		{SeatID: 0, AccountID: "alice", Amount: 200},
		{SeatID: 1, AccountID: "bob", Amount: 200},
	}, "sk")
	if balance.CodeOf(err) != balance.CodeVersionConflict {
		t.Fatalf("expected the failing credit to surface, got %v", err)
	}

	// Alice's credit was compensated, the pot stayed ACTIVE.
	aliceBal, berr := e.GetBalance(ctx, "alice")
	if berr != nil || aliceBal.Balance != 0 {
		t.Fatalf("rollback incomplete: %+v err=%v", aliceBal, berr)
	}
	pot, perr := fs.GetPot(ctx, balance.PotID("t", "h"))
	if perr != nil || pot.Status != balance.PotActive {
		t.Fatalf("pot must stay ACTIVE after failed settlement: %+v err=%v", pot, perr)
	}

	// Transient failures are not cached; retrying under the same key
	// re-executes, replays the inner credit envelopes, and surfaces the same
	// conflict while it persists. Alice's balance stays compensated.
	_, err = e.SettlePot(ctx, "t", "h", []balance.Winner{
		{SeatID: 0, AccountID: "alice", Amount: 200},
		{SeatID: 1, AccountID: "bob", Amount: 200},
	}, "sk")
	if balance.CodeOf(err) != balance.CodeVersionConflict {
		t.Fatalf("retried settlement: %v", err)
	}
	aliceBal, _ = e.GetBalance(ctx, "alice")
	if aliceBal.Balance != 0 {
		t.Fatalf("retry double-credited: %d", aliceBal.Balance)
	}
}
