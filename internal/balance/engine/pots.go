package engine

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/cardroomlabs/balanced/internal/balance"
	"github.com/cardroomlabs/balanced/internal/balance/store"
)

// ContributionResult reports the pot after a recorded contribution.
type ContributionResult struct {
	TotalPot         int64 `json:"totalPot"`
	SeatContribution int64 `json:"seatContribution"`
}

// RecordContribution adds chips to a hand's pot bookkeeping. It does not
// touch account balances: chips committed to a hand flow through the account
// paths (buy-in, cash-out, settlement), the pot only tracks what each seat
// has put in.
func (e *Engine) RecordContribution(ctx context.Context, tableID, handID string, seatID int, accountID string, amount int64, contributionType, idemKey string) (*ContributionResult, error) {
	if amount <= 0 {
		return nil, balance.NewError(balance.CodeInvalidAmount, "amount must be positive")
	}
	potID := balance.PotID(tableID, handID)
	if err := e.locks.Lock(ctx, potLockKey(potID)); err != nil {
		return nil, err
	}
	defer e.locks.Unlock(potLockKey(potID))

	return withIdempotency(ctx, e, idemKey, func(ctx context.Context) (*ContributionResult, error) {
		pot, err := e.getOrCreatePot(ctx, potID, tableID, handID)
		if err != nil {
			return nil, err
		}
		if pot.Status != balance.PotActive {
			return nil, balance.NewError(balance.CodePotNotActive, "pot "+potID+" is "+string(pot.Status))
		}

		updated := *pot
		updated.Contributions = make(map[int]int64, len(pot.Contributions)+1)
		for seat, amt := range pot.Contributions {
			updated.Contributions[seat] = amt
		}
		updated.Contributions[seatID] += amount
		updated.Version = pot.Version + 1
		if err := e.store.UpdatePotWithVersion(ctx, &updated, pot.Version); err != nil {
			if errors.Is(err, store.ErrVersionConflict) {
				return nil, balance.NewError(balance.CodeVersionConflict, "pot version conflict")
			}
			return nil, err
		}
		e.log.Debug("contribution recorded",
			zap.String("potId", potID),
			zap.Int("seatId", seatID),
			zap.String("type", contributionType),
			zap.Int64("amount", amount))
		return &ContributionResult{
			TotalPot:         updated.TotalContributions(),
			SeatContribution: updated.Contributions[seatID],
		}, nil
	})
}

func (e *Engine) getOrCreatePot(ctx context.Context, potID, tableID, handID string) (*balance.TablePot, error) {
	pot, err := e.store.GetPot(ctx, potID)
	if err == nil {
		return pot, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	fresh := &balance.TablePot{
		PotID:         potID,
		TableID:       tableID,
		HandID:        handID,
		Contributions: map[int]int64{},
		Status:        balance.PotActive,
		Version:       0,
		CreatedAt:     balance.FormatTime(e.now()),
	}
	created, err := e.store.CreatePot(ctx, fresh)
	if err != nil {
		return nil, err
	}
	if created {
		return fresh, nil
	}
	return e.store.GetPot(ctx, potID)
}

// CalculatePots layers contributions into a main pot and side pots. Each
// all-in level below the deepest stack opens a new layer eligible only to
// seats that matched it.
func CalculatePots(contributions map[int]int64, foldedSeatIDs map[int]bool) []balance.Pot {
	type entry struct {
		seatID int
		amount int64
		folded bool
	}
	entries := make([]entry, 0, len(contributions))
	for seat, amt := range contributions {
		if amt > 0 {
			entries = append(entries, entry{seatID: seat, amount: amt, folded: foldedSeatIDs[seat]})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].amount != entries[j].amount {
			return entries[i].amount < entries[j].amount
		}
		return entries[i].seatID < entries[j].seatID
	})

	var pots []balance.Pot
	var previousLevel int64
	for i, en := range entries {
		if en.amount <= previousLevel {
			continue
		}
		increment := en.amount - previousLevel
		var eligible []int
		for _, rest := range entries[i:] {
			if !rest.folded {
				eligible = append(eligible, rest.seatID)
			}
		}
		sort.Ints(eligible)
		potAmount := increment * int64(len(entries)-i)
		if potAmount > 0 && len(eligible) > 0 {
			pots = append(pots, balance.Pot{Amount: potAmount, EligibleSeatIDs: eligible})
		}
		previousLevel = en.amount
	}
	return pots
}

// CalculateRake takes the configured basis points of the total pot, clamped
// to the cap. Pots at or below the minimum are not raked.
func (e *Engine) CalculateRake(totalPot int64) int64 {
	bps := e.cfg.RakeBasisPoints
	capChips := e.cfg.RakeCap
	if bps <= 0 || capChips <= 0 || totalPot <= e.cfg.RakeMinPot {
		return 0
	}
	rake := totalPot * bps / 10000
	if rake > capChips {
		rake = capChips
	}
	return rake
}

// NormalizeWinners rescales requested payout amounts so they sum exactly to
// targetTotal. Floor division first, then the remainder is handed out one
// chip at a time in ascending seat order, wrapping, so the result is
// deterministic.
func NormalizeWinners(winners []balance.Winner, targetTotal int64) []balance.Winner {
	out := make([]balance.Winner, len(winners))
	copy(out, winners)

	var totalRequested int64
	for _, w := range winners {
		totalRequested += w.Amount
	}
	if totalRequested <= 0 || targetTotal <= 0 {
		for i := range out {
			out[i].Amount = 0
		}
		return out
	}

	var distributed int64
	for i := range out {
		out[i].Amount = winners[i].Amount * targetTotal / totalRequested
		distributed += out[i].Amount
	}
	remainder := targetTotal - distributed
	if remainder <= 0 {
		return out
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SeatID < out[j].SeatID })
	for i := 0; remainder > 0; i = (i + 1) % len(out) {
		out[i].Amount++
		remainder--
	}
	return out
}

// SettlementPayout is one winner's completed credit.
type SettlementPayout struct {
	AccountID     string `json:"accountId"`
	SeatID        int    `json:"seatId"`
	TransactionID string `json:"transactionId"`
	Amount        int64  `json:"amount"`
	NewBalance    int64  `json:"newBalance"`
}

// SettleResult is the outcome of a pot settlement.
type SettleResult struct {
	Results    []SettlementPayout `json:"results"`
	RakeAmount int64              `json:"rakeAmount"`
}

// SettlePot distributes the pot to the winners, all or nothing. Payout
// amounts are normalized against the raked pot total; every winner account
// is locked in ascending id order before any credit lands; a failed credit
// triggers compensating refunds of the credits already made, newest first.
func (e *Engine) SettlePot(ctx context.Context, tableID, handID string, winners []balance.Winner, idemKey string) (*SettleResult, error) {
	for _, w := range winners {
		if w.Amount < 0 {
			return nil, balance.NewError(balance.CodeInvalidAmount, "winner amounts must be non-negative")
		}
	}
	potID := balance.PotID(tableID, handID)
	if err := e.locks.Lock(ctx, potLockKey(potID)); err != nil {
		return nil, err
	}
	defer e.locks.Unlock(potLockKey(potID))

	return withIdempotency(ctx, e, idemKey, func(ctx context.Context) (*SettleResult, error) {
		pot, err := e.store.GetPot(ctx, potID)
		if errors.Is(err, store.ErrNotFound) {
			serr := balance.NewError(balance.CodePotNotFound, "pot "+potID+" does not exist")
			e.metrics.ObserveSettlement(serr)
			return nil, serr
		}
		if err != nil {
			return nil, err
		}
		if pot.Status == balance.PotSettled {
			return &SettleResult{Results: []SettlementPayout{}, RakeAmount: pot.RakeAmount}, nil
		}
		if pot.Status != balance.PotActive {
			serr := balance.NewError(balance.CodePotNotActive, "pot "+potID+" is "+string(pot.Status))
			e.metrics.ObserveSettlement(serr)
			return nil, serr
		}

		totalPot := pot.TotalContributions()
		rake := e.CalculateRake(totalPot)
		net := totalPot - rake
		if net < 0 {
			net = 0
		}

		normalized := NormalizeWinners(winners, net)
		payable := normalized[:0]
		for _, w := range normalized {
			if w.Amount > 0 {
				payable = append(payable, w)
			}
		}
		if len(payable) == 0 {
			if err := e.markPotSettled(ctx, pot, rake); err != nil {
				return nil, err
			}
			e.metrics.ObserveSettlement(nil)
			return &SettleResult{Results: []SettlementPayout{}, RakeAmount: rake}, nil
		}

		accountKeys := make([]string, 0, len(payable))
		for _, w := range payable {
			accountKeys = append(accountKeys, accountLockKey(w.AccountID))
		}
		release, err := e.locks.LockAll(ctx, accountKeys)
		if err != nil {
			return nil, err
		}
		defer release()

		for _, w := range payable {
			if _, _, err := e.EnsureAccount(ctx, w.AccountID, 0); err != nil {
				return nil, err
			}
		}

		payouts, err := e.creditWinners(ctx, tableID, handID, payable, idemKey)
		if err != nil {
			e.metrics.ObserveSettlement(err)
			return nil, err
		}

		if err := e.markPotSettled(ctx, pot, rake); err != nil {
			return nil, err
		}
		e.metrics.ObserveSettlement(nil)
		e.metrics.ObserveRakeCollected(rake)
		e.log.Info("pot settled",
			zap.String("potId", potID),
			zap.Int64("totalPot", totalPot),
			zap.Int64("rake", rake),
			zap.Int("winners", len(payouts)))
		return &SettleResult{Results: payouts, RakeAmount: rake}, nil
	})
}

// creditWinners issues the payout credits in order. On the first failure the
// already completed credits are refunded in reverse order before the failure
// propagates.
func (e *Engine) creditWinners(ctx context.Context, tableID, handID string, payable []balance.Winner, idemKey string) ([]SettlementPayout, error) {
	payouts := make([]SettlementPayout, 0, len(payable))
	for _, w := range payable {
		key := idemKey + ":" + balance.SeatKey(w.SeatID)
		md := balance.Metadata{TableID: tableID, HandID: handID, SeatID: balance.SeatKey(w.SeatID)}
		amount := w.Amount
		accountID := w.AccountID
		tx, err := withIdempotency(ctx, e, key, func(ctx context.Context) (*balance.Transaction, error) {
			return e.creditLocked(ctx, accountID, amount, balance.TxPotWin, key, md)
		})
		if err != nil {
			e.rollbackPayouts(ctx, tableID, handID, payouts, idemKey)
			return nil, err
		}
		payouts = append(payouts, SettlementPayout{
			AccountID:     w.AccountID,
			SeatID:        w.SeatID,
			TransactionID: tx.TransactionID,
			Amount:        w.Amount,
			NewBalance:    tx.BalanceAfter,
		})
	}
	return payouts, nil
}

// rollbackPayouts compensates completed credits in reverse order. A rollback
// that itself fails is logged for operator intervention; the settlement
// failure still propagates and its outcome is cached for replay.
func (e *Engine) rollbackPayouts(ctx context.Context, tableID, handID string, payouts []SettlementPayout, idemKey string) {
	for i := len(payouts) - 1; i >= 0; i-- {
		p := payouts[i]
		key := idemKey + ":rollback:" + balance.SeatKey(p.SeatID)
		md := balance.Metadata{TableID: tableID, HandID: handID, SeatID: balance.SeatKey(p.SeatID), Reason: "settlement_rollback"}
		accountID := p.AccountID
		amount := p.Amount
		_, err := withIdempotency(ctx, e, key, func(ctx context.Context) (*balance.Transaction, error) {
			return e.debitLocked(ctx, accountID, amount, balance.TxRefund, key, md, false)
		})
		e.metrics.ObserveSettlementRollback()
		if err != nil {
			e.log.Error("settlement rollback failed",
				zap.String("accountId", p.AccountID),
				zap.String("transactionId", p.TransactionID),
				zap.Int64("amount", p.Amount),
				zap.Error(err))
		}
	}
}

// markPotSettled records the final state, including the side-pot layering of
// the contributions. Fold state is not visible to the balance service, so
// every contributing seat is recorded as eligible.
func (e *Engine) markPotSettled(ctx context.Context, pot *balance.TablePot, rake int64) error {
	updated := *pot
	updated.Status = balance.PotSettled
	updated.Pots = CalculatePots(pot.Contributions, nil)
	updated.RakeAmount = rake
	updated.SettledAt = balance.FormatTime(e.now())
	updated.Version = pot.Version + 1
	return e.store.UpdatePotWithVersion(ctx, &updated, pot.Version)
}

// CancelPot voids a hand's pot without payouts. Cancelling an already
// cancelled pot is an idempotent success.
func (e *Engine) CancelPot(ctx context.Context, tableID, handID, reason string) error {
	potID := balance.PotID(tableID, handID)
	if err := e.locks.Lock(ctx, potLockKey(potID)); err != nil {
		return err
	}
	defer e.locks.Unlock(potLockKey(potID))

	pot, err := e.store.GetPot(ctx, potID)
	if errors.Is(err, store.ErrNotFound) {
		return balance.NewError(balance.CodePotNotFound, "pot "+potID+" does not exist")
	}
	if err != nil {
		return err
	}
	switch pot.Status {
	case balance.PotCancelled:
		return nil
	case balance.PotActive:
	default:
		return balance.NewError(balance.CodePotNotActive, "pot "+potID+" is "+string(pot.Status))
	}

	updated := *pot
	updated.Status = balance.PotCancelled
	updated.SettledAt = balance.FormatTime(e.now())
	updated.Version = pot.Version + 1
	if err := e.store.UpdatePotWithVersion(ctx, &updated, pot.Version); err != nil {
		return err
	}
	e.log.Info("pot cancelled", zap.String("potId", potID), zap.String("reason", reason))
	return nil
}
