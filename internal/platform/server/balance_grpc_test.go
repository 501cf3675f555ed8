package server

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	balancev1 "github.com/cardroomlabs/balanced/gen/balance/v1"
	"github.com/cardroomlabs/balanced/internal/balance"
	"github.com/cardroomlabs/balanced/internal/balance/engine"
	"github.com/cardroomlabs/balanced/internal/balance/store"
	"github.com/cardroomlabs/balanced/internal/platform/auth"
	"github.com/cardroomlabs/balanced/internal/platform/clock"
)

func newTestService(t *testing.T) (*BalanceService, *clock.Fixed) {
	t.Helper()
	clk := &clock.Fixed{T: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	st := store.NewMemory(clk, 1000)
	eng := engine.New(st, nil, clk, zap.NewNop(), nil, engine.Config{
		ReservationTimeout: 30 * time.Second,
		IdempotencyTTL:     24 * time.Hour,
		RakeBasisPoints:    500,
		RakeCap:            5,
		RakeMinPot:         20,
	})
	return NewBalanceService(eng, zap.NewNop()), clk
}

func ensureFunded(t *testing.T, svc *BalanceService, accountID string, amount int64) {
	t.Helper()
	resp, err := svc.Deposit(context.Background(), &balancev1.DepositRequest{
		AccountId:      accountID,
		Amount:         amount,
		Source:         "PURCHASE",
		IdempotencyKey: fmt.Sprintf("fund-%s-%d", accountID, amount),
	})
	if err != nil || !resp.GetOk() {
		t.Fatalf("fund %s: err=%v resp=%+v", accountID, err, resp)
	}
}

func TestGetBalanceInBandNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	resp, err := svc.GetBalance(ctx, &balancev1.GetBalanceRequest{AccountId: "ghost"})
	if err != nil {
		t.Fatalf("unknown account must not be a transport error: %v", err)
	}
	if resp.GetOk() || resp.GetError().GetCode() != "ACCOUNT_NOT_FOUND" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	if _, err := svc.GetBalance(ctx, &balancev1.GetBalanceRequest{}); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("empty account_id: want InvalidArgument, got %v", err)
	}
}

func TestDepositWithdrawRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	ensureFunded(t, svc, "p1", 5000)

	wd, err := svc.Withdraw(ctx, &balancev1.WithdrawRequest{
		AccountId:      "p1",
		Amount:         1500,
		Reason:         "cashout",
		IdempotencyKey: "wd-1",
	})
	if err != nil || !wd.GetOk() {
		t.Fatalf("withdraw: err=%v resp=%+v", err, wd)
	}
	if wd.GetTransaction().GetBalanceAfter() != 3500 {
		t.Fatalf("balance after withdraw = %d", wd.GetTransaction().GetBalanceAfter())
	}

	bal, err := svc.GetBalance(ctx, &balancev1.GetBalanceRequest{AccountId: "p1"})
	if err != nil || !bal.GetOk() {
		t.Fatalf("get balance: err=%v resp=%+v", err, bal)
	}
	if bal.GetBalance() != 3500 || bal.GetAvailableBalance() != 3500 {
		t.Fatalf("balance = %d available = %d", bal.GetBalance(), bal.GetAvailableBalance())
	}

	over, err := svc.Withdraw(ctx, &balancev1.WithdrawRequest{
		AccountId:      "p1",
		Amount:         9999,
		IdempotencyKey: "wd-2",
	})
	if err != nil {
		t.Fatalf("overdraw must be in-band: %v", err)
	}
	if over.GetOk() || over.GetError().GetCode() != "INSUFFICIENT_BALANCE" {
		t.Fatalf("unexpected overdraw response: %+v", over)
	}
	if over.GetError().GetAvailableBalance() != 3500 {
		t.Fatalf("error available balance = %d", over.GetError().GetAvailableBalance())
	}
}

func TestIdempotencyKeyFromMetadata(t *testing.T) {
	svc, _ := newTestService(t)
	md := metadata.Pairs("idempotency-key", "meta-dep-1")
	ctx := metadata.NewIncomingContext(context.Background(), md)

	first, err := svc.Deposit(ctx, &balancev1.DepositRequest{AccountId: "p1", Amount: 700, Source: "PURCHASE"})
	if err != nil || !first.GetOk() {
		t.Fatalf("deposit: err=%v resp=%+v", err, first)
	}
	second, err := svc.Deposit(ctx, &balancev1.DepositRequest{AccountId: "p1", Amount: 700, Source: "PURCHASE"})
	if err != nil || !second.GetOk() {
		t.Fatalf("replay: err=%v resp=%+v", err, second)
	}
	if first.GetTransaction().GetTransactionId() != second.GetTransaction().GetTransactionId() {
		t.Fatalf("metadata key did not dedupe: %s vs %s",
			first.GetTransaction().GetTransactionId(), second.GetTransaction().GetTransactionId())
	}

	missing, err := svc.Deposit(context.Background(), &balancev1.DepositRequest{AccountId: "p1", Amount: 700, Source: "PURCHASE"})
	if err != nil {
		t.Fatalf("missing key must be in-band: %v", err)
	}
	if missing.GetOk() || missing.GetError().GetCode() != "MISSING_IDEMPOTENCY_KEY" {
		t.Fatalf("unexpected response without key: %+v", missing)
	}
}

func TestReservationLifecycleOverGRPC(t *testing.T) {
	svc, clk := newTestService(t)
	ctx := context.Background()
	ensureFunded(t, svc, "p1", 10000)

	res, err := svc.ReserveForBuyIn(ctx, &balancev1.ReserveForBuyInRequest{
		AccountId:      "p1",
		TableId:        "t1",
		Amount:         4000,
		IdempotencyKey: "rsv-1",
	})
	if err != nil || !res.GetOk() {
		t.Fatalf("reserve: err=%v resp=%+v", err, res)
	}
	if res.GetAvailableBalance() != 6000 {
		t.Fatalf("available after hold = %d", res.GetAvailableBalance())
	}
	if want := balance.FormatTime(clk.Now().Add(30 * time.Second)); res.GetExpiresAt() != want {
		t.Fatalf("expires_at = %q, want %q", res.GetExpiresAt(), want)
	}

	commit, err := svc.CommitReservation(ctx, &balancev1.CommitReservationRequest{ReservationId: res.GetReservationId()})
	if err != nil || !commit.GetOk() {
		t.Fatalf("commit: err=%v resp=%+v", err, commit)
	}
	if commit.GetNewBalance() != 6000 {
		t.Fatalf("balance after commit = %d", commit.GetNewBalance())
	}

	rel, err := svc.ReleaseReservation(ctx, &balancev1.ReleaseReservationRequest{ReservationId: res.GetReservationId()})
	if err != nil {
		t.Fatalf("release committed must be in-band: %v", err)
	}
	if rel.GetOk() || rel.GetError().GetCode() != "ALREADY_COMMITTED" {
		t.Fatalf("unexpected release response: %+v", rel)
	}
}

func TestSettlePotOverGRPC(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	ensureFunded(t, svc, "alice", 1000)
	ensureFunded(t, svc, "bob", 1000)

	for i, c := range []struct {
		seat    int32
		account string
		amount  int64
	}{{0, "alice", 195}, {1, "bob", 195}} {
		resp, err := svc.RecordContribution(ctx, &balancev1.RecordContributionRequest{
			TableId:          "t1",
			HandId:           "h1",
			SeatId:           c.seat,
			AccountId:        c.account,
			Amount:           c.amount,
			ContributionType: "bet",
			IdempotencyKey:   fmt.Sprintf("contrib-%d", i),
		})
		if err != nil || !resp.GetOk() {
			t.Fatalf("contribute seat %d: err=%v resp=%+v", c.seat, err, resp)
		}
	}

	if _, err := svc.SettlePot(ctx, &balancev1.SettlePotRequest{
		TableId:        "t1",
		HandId:         "h1",
		Winners:        []*balancev1.Winner{{SeatId: 0, AccountId: "alice", Amount: -10}},
		IdempotencyKey: "settle-neg",
	}); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("negative winner amount: want InvalidArgument, got %v", err)
	}

	settle, err := svc.SettlePot(ctx, &balancev1.SettlePotRequest{
		TableId:        "t1",
		HandId:         "h1",
		Winners:        []*balancev1.Winner{{SeatId: 0, AccountId: "alice", Amount: 390}},
		IdempotencyKey: "settle-1",
	})
	if err != nil || !settle.GetOk() {
		t.Fatalf("settle: err=%v resp=%+v", err, settle)
	}
	if settle.GetRakeAmount() != 5 {
		t.Fatalf("rake = %d", settle.GetRakeAmount())
	}
	if len(settle.GetResults()) != 1 || settle.GetResults()[0].GetAmount() != 385 {
		t.Fatalf("unexpected payouts: %+v", settle.GetResults())
	}
	if settle.GetResults()[0].GetNewBalance() != 1385 {
		t.Fatalf("winner balance = %d", settle.GetResults()[0].GetNewBalance())
	}

	cancel, err := svc.CancelPot(ctx, &balancev1.CancelPotRequest{TableId: "t1", HandId: "h1", Reason: "void"})
	if err != nil {
		t.Fatalf("cancel settled must be in-band: %v", err)
	}
	if cancel.GetOk() || cancel.GetError().GetCode() != "POT_NOT_ACTIVE" {
		t.Fatalf("unexpected cancel response: %+v", cancel)
	}
}

func TestVerifyLedgerOverGRPC(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	ensureFunded(t, svc, "p1", 2500)

	resp, err := svc.VerifyLedger(ctx, &balancev1.VerifyLedgerRequest{AccountId: "p1"})
	if err != nil || !resp.GetOk() {
		t.Fatalf("verify: err=%v resp=%+v", err, resp)
	}
	if !resp.GetValid() || resp.GetEntriesChecked() != 1 {
		t.Fatalf("unexpected verification: %+v", resp)
	}
}

func TestForwardResponseStatusMapping(t *testing.T) {
	cases := []struct {
		msg  proto.Message
		want int
	}{
		{&balancev1.GetBalanceResponse{Ok: false, Error: &balancev1.DomainError{Code: "ACCOUNT_NOT_FOUND"}}, 404},
		{&balancev1.CommitReservationResponse{Ok: false, Error: &balancev1.DomainError{Code: "RESERVATION_EXPIRED"}}, 400},
		{&balancev1.SettlePotResponse{Ok: false, Error: &balancev1.DomainError{Code: "POT_NOT_FOUND"}}, 404},
		{&balancev1.EnsureAccountResponse{Ok: true, Created: true}, 201},
		{&balancev1.GetBalanceResponse{Ok: true}, 200},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		if err := ForwardResponse(context.Background(), rec, c.msg); err != nil {
			t.Fatalf("forward: %v", err)
		}
		if rec.Code != c.want {
			t.Fatalf("status = %d, want %d", rec.Code, c.want)
		}
	}
}

func TestPlayerActorScoping(t *testing.T) {
	svc, _ := newTestService(t)
	ensureFunded(t, svc, "p1", 1000)
	player := auth.WithActor(context.Background(), auth.Actor{ID: "p1", Type: auth.ActorTypePlayer})

	if _, err := svc.GetBalance(player, &balancev1.GetBalanceRequest{AccountId: "p1"}); err != nil {
		t.Fatalf("own account: %v", err)
	}
	if _, err := svc.GetBalance(player, &balancev1.GetBalanceRequest{AccountId: "p2"}); status.Code(err) != codes.PermissionDenied {
		t.Fatalf("foreign account: want PermissionDenied, got %v", err)
	}
	if _, err := svc.VerifyLedger(player, &balancev1.VerifyLedgerRequest{AccountId: "p1"}); status.Code(err) != codes.PermissionDenied {
		t.Fatalf("verify by player: want PermissionDenied, got %v", err)
	}
	if _, err := svc.SettlePot(player, &balancev1.SettlePotRequest{TableId: "t1", HandId: "h1"}); status.Code(err) != codes.PermissionDenied {
		t.Fatalf("settle by player: want PermissionDenied, got %v", err)
	}

	service := auth.WithActor(context.Background(), auth.Actor{ID: "svc-game", Type: auth.ActorTypeService})
	if _, err := svc.GetBalance(service, &balancev1.GetBalanceRequest{AccountId: "p1"}); err != nil {
		t.Fatalf("service actor: %v", err)
	}
}

func TestIncomingHeaderMatcher(t *testing.T) {
	if k, ok := IncomingHeaderMatcher("Idempotency-Key"); !ok || k != "idempotency-key" {
		t.Fatalf("idempotency header not forwarded: %q %v", k, ok)
	}
	if _, ok := IncomingHeaderMatcher("Authorization"); !ok {
		t.Fatalf("default gateway headers must still pass")
	}
}
