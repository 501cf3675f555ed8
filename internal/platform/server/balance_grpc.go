package server

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	balancev1 "github.com/cardroomlabs/balanced/gen/balance/v1"
	"github.com/cardroomlabs/balanced/internal/balance"
	"github.com/cardroomlabs/balanced/internal/balance/engine"
	"github.com/cardroomlabs/balanced/internal/balance/store"
	"github.com/cardroomlabs/balanced/internal/platform/auth"
)

const defaultPageLimit = 50

// BalanceService exposes the engines over gRPC and, through the gateway,
// HTTP. Domain refusals travel in-band as ok=false plus a structured error;
// transport status codes are reserved for malformed requests and internal
// failures.
type BalanceService struct {
	balancev1.UnimplementedBalanceServiceServer

	engine *engine.Engine
	log    *zap.Logger
}

func NewBalanceService(eng *engine.Engine, log *zap.Logger) *BalanceService {
	if log == nil {
		log = zap.NewNop()
	}
	return &BalanceService{engine: eng, log: log}
}

// idempotencyKey prefers the request field and falls back to the
// Idempotency-Key header the gateway forwards as metadata.
func idempotencyKey(ctx context.Context, fromRequest string) string {
	if fromRequest != "" {
		return fromRequest
	}
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	for _, k := range []string{"idempotency-key", "grpcgateway-idempotency-key"} {
		if vals := md.Get(k); len(vals) > 0 && vals[0] != "" {
			return vals[0]
		}
	}
	return ""
}

// authorizeAccount restricts player actors to their own account. Service and
// operator actors pass, as does every call when auth is disabled and no actor
// is bound.
func authorizeAccount(ctx context.Context, accountID string) error {
	actor, ok := auth.ActorFromContext(ctx)
	if !ok || actor.Type != auth.ActorTypePlayer {
		return nil
	}
	if actor.ID != accountID {
		return status.Error(codes.PermissionDenied, "account access denied")
	}
	return nil
}

// requireNonPlayer gates operator and service surfaces.
func requireNonPlayer(ctx context.Context) error {
	if actor, ok := auth.ActorFromContext(ctx); ok && actor.Type == auth.ActorTypePlayer {
		return status.Error(codes.PermissionDenied, "access denied")
	}
	return nil
}

func domainError(err error) *balancev1.DomainError {
	de, ok := balance.AsError(err)
	if !ok {
		return nil
	}
	out := &balancev1.DomainError{Code: string(de.Code), Message: de.Message}
	if de.AvailableBalance != nil {
		v := *de.AvailableBalance
		out.AvailableBalance = &v
	}
	return out
}

// internalError hides store and infrastructure details from clients.
func (s *BalanceService) internalError(op string, err error) error {
	s.log.Error("internal failure", zap.String("op", op), zap.Error(err))
	return status.Error(codes.Internal, op+" failed")
}

func txProto(tx *balance.Transaction) *balancev1.Transaction {
	if tx == nil {
		return nil
	}
	return &balancev1.Transaction{
		TransactionId: tx.TransactionID,
		Type:          string(tx.Type),
		Amount:        tx.Amount,
		BalanceBefore: tx.BalanceBefore,
		BalanceAfter:  tx.BalanceAfter,
		Status:        string(tx.Status),
		CreatedAt:     tx.CreatedAt,
		CompletedAt:   tx.CompletedAt,
	}
}

func entryProto(e *balance.LedgerEntry) *balancev1.LedgerEntry {
	return &balancev1.LedgerEntry{
		EntryId:          e.EntryID,
		TransactionId:    e.TransactionID,
		AccountId:        e.AccountID,
		Type:             string(e.Type),
		Amount:           e.Amount,
		BalanceBefore:    e.BalanceBefore,
		BalanceAfter:     e.BalanceAfter,
		Timestamp:        e.Timestamp,
		PreviousChecksum: e.PreviousChecksum,
		Checksum:         e.Checksum,
	}
}

func (s *BalanceService) GetBalance(ctx context.Context, req *balancev1.GetBalanceRequest) (*balancev1.GetBalanceResponse, error) {
	if req.GetAccountId() == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}
	if err := authorizeAccount(ctx, req.GetAccountId()); err != nil {
		return nil, err
	}
	bal, err := s.engine.GetBalance(ctx, req.GetAccountId())
	if err != nil {
		if de := domainError(err); de != nil {
			return &balancev1.GetBalanceResponse{Ok: false, Error: de}, nil
		}
		return nil, s.internalError("get balance", err)
	}
	return &balancev1.GetBalanceResponse{
		Ok:               true,
		AccountId:        bal.AccountID,
		Balance:          bal.Balance,
		AvailableBalance: bal.AvailableBalance,
		Currency:         bal.Currency,
		Version:          bal.Version,
	}, nil
}

func (s *BalanceService) EnsureAccount(ctx context.Context, req *balancev1.EnsureAccountRequest) (*balancev1.EnsureAccountResponse, error) {
	if req.GetAccountId() == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}
	if err := authorizeAccount(ctx, req.GetAccountId()); err != nil {
		return nil, err
	}
	acct, created, err := s.engine.EnsureAccount(ctx, req.GetAccountId(), req.GetInitialBalance())
	if err != nil {
		if de := domainError(err); de != nil {
			return &balancev1.EnsureAccountResponse{Ok: false, Error: de}, nil
		}
		return nil, s.internalError("ensure account", err)
	}
	return &balancev1.EnsureAccountResponse{
		Ok:        true,
		AccountId: acct.AccountID,
		Balance:   acct.Balance,
		Currency:  acct.Currency,
		Version:   acct.Version,
		Created:   created,
	}, nil
}

func (s *BalanceService) Deposit(ctx context.Context, req *balancev1.DepositRequest) (*balancev1.DepositResponse, error) {
	if req.GetAccountId() == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}
	if err := authorizeAccount(ctx, req.GetAccountId()); err != nil {
		return nil, err
	}
	key := idempotencyKey(ctx, req.GetIdempotencyKey())
	tx, err := s.engine.ProcessDeposit(ctx, req.GetAccountId(), req.GetAmount(), balance.DepositSource(req.GetSource()), key)
	if err != nil {
		if de := domainError(err); de != nil {
			return &balancev1.DepositResponse{Ok: false, Error: de}, nil
		}
		return nil, s.internalError("deposit", err)
	}
	return &balancev1.DepositResponse{Ok: true, Transaction: txProto(tx)}, nil
}

func (s *BalanceService) Withdraw(ctx context.Context, req *balancev1.WithdrawRequest) (*balancev1.WithdrawResponse, error) {
	if req.GetAccountId() == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}
	if err := authorizeAccount(ctx, req.GetAccountId()); err != nil {
		return nil, err
	}
	key := idempotencyKey(ctx, req.GetIdempotencyKey())
	tx, err := s.engine.ProcessWithdrawal(ctx, req.GetAccountId(), req.GetAmount(), req.GetReason(), key)
	if err != nil {
		if de := domainError(err); de != nil {
			return &balancev1.WithdrawResponse{Ok: false, Error: de}, nil
		}
		return nil, s.internalError("withdraw", err)
	}
	return &balancev1.WithdrawResponse{Ok: true, Transaction: txProto(tx)}, nil
}

func (s *BalanceService) ListTransactions(ctx context.Context, req *balancev1.ListTransactionsRequest) (*balancev1.ListTransactionsResponse, error) {
	if req.GetAccountId() == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}
	if err := authorizeAccount(ctx, req.GetAccountId()); err != nil {
		return nil, err
	}
	limit := int(req.GetLimit())
	if limit <= 0 {
		limit = defaultPageLimit
	}
	offset := int(req.GetOffset())
	if offset < 0 {
		offset = 0
	}
	txs, total, err := s.engine.ListTransactions(ctx, req.GetAccountId(), store.TransactionFilter{
		Type:   balance.TransactionType(req.GetType()),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, s.internalError("list transactions", err)
	}
	out := make([]*balancev1.Transaction, 0, len(txs))
	for _, tx := range txs {
		out = append(out, txProto(tx))
	}
	return &balancev1.ListTransactionsResponse{
		Ok:           true,
		Transactions: out,
		Total:        int32(total),
		Limit:        int32(limit),
		Offset:       int32(offset),
	}, nil
}

func (s *BalanceService) ListLedger(ctx context.Context, req *balancev1.ListLedgerRequest) (*balancev1.ListLedgerResponse, error) {
	if req.GetAccountId() == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}
	if err := authorizeAccount(ctx, req.GetAccountId()); err != nil {
		return nil, err
	}
	limit := int(req.GetLimit())
	if limit <= 0 {
		limit = defaultPageLimit
	}
	entries, total, latest, err := s.engine.ListLedgerEntries(ctx, req.GetAccountId(), store.LedgerFilter{
		From:  req.GetFrom(),
		To:    req.GetTo(),
		Limit: limit,
	})
	if err != nil {
		return nil, s.internalError("list ledger", err)
	}
	out := make([]*balancev1.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryProto(e))
	}
	return &balancev1.ListLedgerResponse{
		Ok:             true,
		Entries:        out,
		Total:          int32(total),
		LatestChecksum: latest,
	}, nil
}

func (s *BalanceService) VerifyLedger(ctx context.Context, req *balancev1.VerifyLedgerRequest) (*balancev1.VerifyLedgerResponse, error) {
	if req.GetAccountId() == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}
	if err := requireNonPlayer(ctx); err != nil {
		return nil, err
	}
	res, err := s.engine.VerifyLedger(ctx, req.GetAccountId())
	if err != nil {
		return nil, s.internalError("verify ledger", err)
	}
	return &balancev1.VerifyLedgerResponse{
		Ok:                true,
		Valid:             res.Valid,
		EntriesChecked:    int32(res.EntriesChecked),
		FirstInvalidEntry: res.FirstInvalidEntry,
	}, nil
}

func (s *BalanceService) ReserveForBuyIn(ctx context.Context, req *balancev1.ReserveForBuyInRequest) (*balancev1.ReserveForBuyInResponse, error) {
	if req.GetAccountId() == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}
	if err := authorizeAccount(ctx, req.GetAccountId()); err != nil {
		return nil, err
	}
	key := idempotencyKey(ctx, req.GetIdempotencyKey())
	res, err := s.engine.ReserveForBuyIn(ctx, req.GetAccountId(), req.GetTableId(), req.GetAmount(), key, int(req.GetTimeoutSeconds()))
	if err != nil {
		if de := domainError(err); de != nil {
			return &balancev1.ReserveForBuyInResponse{Ok: false, Error: de}, nil
		}
		return nil, s.internalError("reserve for buy-in", err)
	}
	return &balancev1.ReserveForBuyInResponse{
		Ok:               true,
		ReservationId:    res.ReservationID,
		AvailableBalance: res.AvailableBalance,
		ExpiresAt:        res.ExpiresAt,
	}, nil
}

func (s *BalanceService) CommitReservation(ctx context.Context, req *balancev1.CommitReservationRequest) (*balancev1.CommitReservationResponse, error) {
	if req.GetReservationId() == "" {
		return nil, status.Error(codes.InvalidArgument, "reservation_id is required")
	}
	res, err := s.engine.CommitReservation(ctx, req.GetReservationId())
	if err != nil {
		if de := domainError(err); de != nil {
			return &balancev1.CommitReservationResponse{Ok: false, Error: de}, nil
		}
		return nil, s.internalError("commit reservation", err)
	}
	return &balancev1.CommitReservationResponse{
		Ok:            true,
		TransactionId: res.TransactionID,
		NewBalance:    res.NewBalance,
	}, nil
}

func (s *BalanceService) ReleaseReservation(ctx context.Context, req *balancev1.ReleaseReservationRequest) (*balancev1.ReleaseReservationResponse, error) {
	if req.GetReservationId() == "" {
		return nil, status.Error(codes.InvalidArgument, "reservation_id is required")
	}
	res, err := s.engine.ReleaseReservation(ctx, req.GetReservationId(), req.GetReason())
	if err != nil {
		if de := domainError(err); de != nil {
			return &balancev1.ReleaseReservationResponse{Ok: false, Error: de}, nil
		}
		return nil, s.internalError("release reservation", err)
	}
	return &balancev1.ReleaseReservationResponse{Ok: true, AvailableBalance: res.AvailableBalance}, nil
}

func (s *BalanceService) ProcessCashOut(ctx context.Context, req *balancev1.ProcessCashOutRequest) (*balancev1.ProcessCashOutResponse, error) {
	if req.GetAccountId() == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}
	if err := requireNonPlayer(ctx); err != nil {
		return nil, err
	}
	key := idempotencyKey(ctx, req.GetIdempotencyKey())
	tx, err := s.engine.ProcessCashOut(ctx, req.GetAccountId(), req.GetTableId(), req.GetSeatId(), req.GetAmount(), req.GetHandId(), key)
	if err != nil {
		if de := domainError(err); de != nil {
			return &balancev1.ProcessCashOutResponse{Ok: false, Error: de}, nil
		}
		return nil, s.internalError("cash out", err)
	}
	return &balancev1.ProcessCashOutResponse{Ok: true, Transaction: txProto(tx)}, nil
}

func (s *BalanceService) RecordContribution(ctx context.Context, req *balancev1.RecordContributionRequest) (*balancev1.RecordContributionResponse, error) {
	if req.GetTableId() == "" || req.GetHandId() == "" {
		return nil, status.Error(codes.InvalidArgument, "table_id and hand_id are required")
	}
	if err := requireNonPlayer(ctx); err != nil {
		return nil, err
	}
	key := idempotencyKey(ctx, req.GetIdempotencyKey())
	res, err := s.engine.RecordContribution(ctx, req.GetTableId(), req.GetHandId(), int(req.GetSeatId()), req.GetAccountId(), req.GetAmount(), req.GetContributionType(), key)
	if err != nil {
		if de := domainError(err); de != nil {
			return &balancev1.RecordContributionResponse{Ok: false, Error: de}, nil
		}
		return nil, s.internalError("record contribution", err)
	}
	return &balancev1.RecordContributionResponse{
		Ok:               true,
		TotalPot:         res.TotalPot,
		SeatContribution: res.SeatContribution,
	}, nil
}

func (s *BalanceService) SettlePot(ctx context.Context, req *balancev1.SettlePotRequest) (*balancev1.SettlePotResponse, error) {
	if req.GetTableId() == "" || req.GetHandId() == "" {
		return nil, status.Error(codes.InvalidArgument, "table_id and hand_id are required")
	}
	if err := requireNonPlayer(ctx); err != nil {
		return nil, err
	}
	key := idempotencyKey(ctx, req.GetIdempotencyKey())
	winners := make([]balance.Winner, 0, len(req.GetWinners()))
	for _, w := range req.GetWinners() {
		if w.GetAmount() < 0 {
			return nil, status.Error(codes.InvalidArgument, "winner amounts must be non-negative")
		}
		winners = append(winners, balance.Winner{
			SeatID:    int(w.GetSeatId()),
			AccountID: w.GetAccountId(),
			Amount:    w.GetAmount(),
		})
	}
	res, err := s.engine.SettlePot(ctx, req.GetTableId(), req.GetHandId(), winners, key)
	if err != nil {
		if de := domainError(err); de != nil {
			return &balancev1.SettlePotResponse{Ok: false, Error: de}, nil
		}
		return nil, s.internalError("settle pot", err)
	}
	out := make([]*balancev1.SettlementResult, 0, len(res.Results))
	for _, p := range res.Results {
		out = append(out, &balancev1.SettlementResult{
			AccountId:     p.AccountID,
			SeatId:        int32(p.SeatID),
			TransactionId: p.TransactionID,
			Amount:        p.Amount,
			NewBalance:    p.NewBalance,
		})
	}
	return &balancev1.SettlePotResponse{Ok: true, Results: out, RakeAmount: res.RakeAmount}, nil
}

func (s *BalanceService) CancelPot(ctx context.Context, req *balancev1.CancelPotRequest) (*balancev1.CancelPotResponse, error) {
	if req.GetTableId() == "" || req.GetHandId() == "" {
		return nil, status.Error(codes.InvalidArgument, "table_id and hand_id are required")
	}
	if err := requireNonPlayer(ctx); err != nil {
		return nil, err
	}
	if err := s.engine.CancelPot(ctx, req.GetTableId(), req.GetHandId(), req.GetReason()); err != nil {
		if de := domainError(err); de != nil {
			return &balancev1.CancelPotResponse{Ok: false, Error: de}, nil
		}
		return nil, s.internalError("cancel pot", err)
	}
	return &balancev1.CancelPotResponse{Ok: true}, nil
}
