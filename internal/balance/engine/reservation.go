package engine

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/cardroomlabs/balanced/internal/balance"
	"github.com/cardroomlabs/balanced/internal/balance/store"
)

// The reservation state machine is split into a pure planner and a driver.
// Planners look at a reservation and the current time and decide the
// transition; the driver applies it under the reservation lock and binds the
// commit transition to an accounting debit.

type commitAction int

const (
	commitAlreadyCommitted commitAction = iota
	commitReject
	commitExpireThenReject
	commitDebitThenCommit
)

type commitPlan struct {
	action      commitAction
	err         *balance.Error
	updated     *balance.Reservation
	committedAt string
}

func planCommit(r *balance.Reservation, nowMs int64, nowIso string) commitPlan {
	switch r.Status {
	case balance.ReservationCommitted:
		return commitPlan{action: commitAlreadyCommitted}
	case balance.ReservationReleased:
		return commitPlan{action: commitReject, err: balance.NewError(balance.CodeReservationNotHeld, "reservation was released")}
	case balance.ReservationExpired:
		return commitPlan{action: commitReject, err: balance.NewError(balance.CodeReservationExpired, "reservation expired")}
	}
	if r.ExpiresAtMs <= nowMs {
		updated := *r
		updated.Status = balance.ReservationExpired
		return commitPlan{
			action:  commitExpireThenReject,
			err:     balance.NewError(balance.CodeReservationExpired, "reservation expired"),
			updated: &updated,
		}
	}
	return commitPlan{action: commitDebitThenCommit, committedAt: nowIso}
}

type releaseAction int

const (
	releaseAlreadyReleased releaseAction = iota
	releaseReject
	releaseDo
)

type releasePlan struct {
	action     releaseAction
	err        *balance.Error
	releasedAt string
}

func planRelease(r *balance.Reservation, nowIso string) releasePlan {
	switch r.Status {
	case balance.ReservationReleased, balance.ReservationExpired:
		return releasePlan{action: releaseAlreadyReleased}
	case balance.ReservationCommitted:
		return releasePlan{action: releaseReject, err: balance.NewError(balance.CodeAlreadyCommitted, "reservation already committed")}
	}
	return releasePlan{action: releaseDo, releasedAt: nowIso}
}

type expirePlan struct {
	updated *balance.Reservation
}

func planExpire(r *balance.Reservation, nowMs int64) expirePlan {
	if r.Status != balance.ReservationHeld || r.ExpiresAtMs > nowMs {
		return expirePlan{}
	}
	updated := *r
	updated.Status = balance.ReservationExpired
	return expirePlan{updated: &updated}
}

// ReserveResult is the outcome of a successful buy-in hold.
type ReserveResult struct {
	ReservationID    string `json:"reservationId"`
	AvailableBalance int64  `json:"availableBalance"`
	ExpiresAt        string `json:"expiresAt"`
}

// ReserveForBuyIn places a time-bounded hold on the account without moving
// chips. The hold reduces available balance until committed, released, or
// expired. timeoutSeconds zero uses the configured default.
func (e *Engine) ReserveForBuyIn(ctx context.Context, accountID, tableID string, amount int64, idemKey string, timeoutSeconds int) (*ReserveResult, error) {
	if amount <= 0 {
		return nil, balance.NewError(balance.CodeInvalidAmount, "amount must be positive")
	}
	return withIdempotency(ctx, e, idemKey, func(ctx context.Context) (*ReserveResult, error) {
		if err := e.locks.Lock(ctx, accountLockKey(accountID)); err != nil {
			return nil, err
		}
		defer e.locks.Unlock(accountLockKey(accountID))

		bal, err := e.balanceLocked(ctx, accountID)
		if err != nil {
			return nil, err
		}
		if bal.AvailableBalance < amount {
			return nil, balance.InsufficientBalance(bal.AvailableBalance)
		}

		now := e.now()
		timeout := e.cfg.ReservationTimeout
		if timeoutSeconds > 0 {
			timeout = time.Duration(timeoutSeconds) * time.Second
		}
		expires := now.Add(timeout)
		r := &balance.Reservation{
			ReservationID:  e.reservationID(),
			AccountID:      accountID,
			Amount:         amount,
			TableID:        tableID,
			IdempotencyKey: idemKey,
			ExpiresAt:      balance.FormatTime(expires),
			ExpiresAtMs:    expires.UnixMilli(),
			Status:         balance.ReservationHeld,
			CreatedAt:      balance.FormatTime(now),
		}
		if err := e.store.PutReservation(ctx, r); err != nil {
			return nil, err
		}
		e.log.Info("reservation held",
			zap.String("reservationId", r.ReservationID),
			zap.String("accountId", accountID),
			zap.Int64("amount", amount),
			zap.String("tableId", tableID))
		return &ReserveResult{
			ReservationID:    r.ReservationID,
			AvailableBalance: bal.AvailableBalance - amount,
			ExpiresAt:        r.ExpiresAt,
		}, nil
	})
}

// CommitResult is the outcome of a committed reservation: the buy-in debit.
type CommitResult struct {
	TransactionID string `json:"transactionId"`
	NewBalance    int64  `json:"newBalance"`
}

// CommitReservation turns a HELD reservation into a BUY_IN debit. Committing
// an already committed reservation is an idempotent success.
func (e *Engine) CommitReservation(ctx context.Context, reservationID string) (*CommitResult, error) {
	if err := e.locks.Lock(ctx, resvLockKey(reservationID)); err != nil {
		return nil, err
	}
	defer e.locks.Unlock(resvLockKey(reservationID))

	r, err := e.store.GetReservation(ctx, reservationID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, balance.NewError(balance.CodeReservationNotFound, "reservation "+reservationID+" does not exist")
	}
	if err != nil {
		return nil, err
	}

	now := e.now()
	plan := planCommit(r, now.UnixMilli(), balance.FormatTime(now))
	switch plan.action {
	case commitAlreadyCommitted:
		return e.committedResult(ctx, r)
	case commitReject:
		return nil, plan.err
	case commitExpireThenReject:
		if err := e.store.PutReservation(ctx, plan.updated); err != nil {
			return nil, err
		}
		e.metrics.ObserveReservationsExpired(1)
		return nil, plan.err
	}

	commitKey := "commit-" + reservationID
	tx, err := e.DebitBalance(ctx, r.AccountID, r.Amount, balance.TxBuyIn, commitKey, balance.Metadata{
		TableID:       r.TableID,
		ReservationID: reservationID,
	}, false)
	if err != nil {
		return nil, err
	}

	updated := *r
	updated.Status = balance.ReservationCommitted
	updated.CommittedAt = plan.committedAt
	updated.TransactionID = tx.TransactionID
	if err := e.store.PutReservation(ctx, &updated); err != nil {
		return nil, err
	}
	e.log.Info("reservation committed",
		zap.String("reservationId", reservationID),
		zap.String("transactionId", tx.TransactionID))
	return &CommitResult{TransactionID: tx.TransactionID, NewBalance: tx.BalanceAfter}, nil
}

// committedResult rebuilds the commit outcome for a reservation that is
// already COMMITTED: the recorded transaction id, then the commit debit's
// idempotency envelope, then a synthetic committed-<id> marker.
func (e *Engine) committedResult(ctx context.Context, r *balance.Reservation) (*CommitResult, error) {
	if err := e.locks.Lock(ctx, accountLockKey(r.AccountID)); err != nil {
		return nil, err
	}
	defer e.locks.Unlock(accountLockKey(r.AccountID))

	acct, err := e.store.GetAccount(ctx, r.AccountID)
	if err != nil {
		return nil, err
	}
	txID := r.TransactionID
	if txID == "" {
		if tx, terr, ok := replay[*balance.Transaction](ctx, e, "commit-"+r.ReservationID); ok && terr == nil && tx != nil {
			txID = tx.TransactionID
		}
	}
	if txID == "" {
		txID = "committed-" + r.ReservationID
	}
	return &CommitResult{TransactionID: txID, NewBalance: acct.Balance}, nil
}

// ReleaseResult reports the availability restored by a release.
type ReleaseResult struct {
	AvailableBalance int64 `json:"availableBalance"`
}

// ReleaseReservation drops a hold. Releasing a reservation that already left
// HELD by release or expiry is an idempotent success.
func (e *Engine) ReleaseReservation(ctx context.Context, reservationID, reason string) (*ReleaseResult, error) {
	if err := e.locks.Lock(ctx, resvLockKey(reservationID)); err != nil {
		return nil, err
	}
	defer e.locks.Unlock(resvLockKey(reservationID))

	r, err := e.store.GetReservation(ctx, reservationID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, balance.NewError(balance.CodeReservationNotFound, "reservation "+reservationID+" does not exist")
	}
	if err != nil {
		return nil, err
	}

	plan := planRelease(r, balance.FormatTime(e.now()))
	switch plan.action {
	case releaseReject:
		return nil, plan.err
	case releaseDo:
		updated := *r
		updated.Status = balance.ReservationReleased
		updated.ReleasedAt = plan.releasedAt
		if err := e.store.PutReservation(ctx, &updated); err != nil {
			return nil, err
		}
		e.log.Info("reservation released",
			zap.String("reservationId", reservationID),
			zap.String("accountId", r.AccountID),
			zap.String("reason", reason))
	}

	bal, err := e.GetBalance(ctx, r.AccountID)
	if err != nil {
		return nil, err
	}
	return &ReleaseResult{AvailableBalance: bal.AvailableBalance}, nil
}

// ProcessExpiredReservations transitions overdue HELD reservations to
// EXPIRED and returns how many moved. Each candidate is re-read under its
// lock, so a commit or release racing the sweep wins cleanly.
func (e *Engine) ProcessExpiredReservations(ctx context.Context) (int, error) {
	nowMs := e.now().UnixMilli()
	ids, err := e.store.DueReservationIDs(ctx, nowMs, 500)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, id := range ids {
		moved, err := e.expireOne(ctx, id, nowMs)
		if err != nil {
			if ctx.Err() != nil {
				return expired, ctx.Err()
			}
			e.log.Warn("expire reservation", zap.String("reservationId", id), zap.Error(err))
			continue
		}
		if moved {
			expired++
		}
	}
	if expired > 0 {
		e.metrics.ObserveReservationsExpired(expired)
		e.log.Info("reservations expired", zap.Int("count", expired))
	}
	return expired, nil
}

func (e *Engine) expireOne(ctx context.Context, reservationID string, nowMs int64) (bool, error) {
	if err := e.locks.Lock(ctx, resvLockKey(reservationID)); err != nil {
		return false, err
	}
	defer e.locks.Unlock(resvLockKey(reservationID))

	r, err := e.store.GetReservation(ctx, reservationID)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	plan := planExpire(r, nowMs)
	if plan.updated == nil {
		return false, nil
	}
	if err := e.store.PutReservation(ctx, plan.updated); err != nil {
		return false, err
	}
	return true, nil
}
