package engine

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cardroomlabs/balanced/internal/balance"
	"github.com/cardroomlabs/balanced/internal/balance/ledger"
	"github.com/cardroomlabs/balanced/internal/balance/store"
)

// maxBalanceUpdateAttempts bounds the CAS retry loop on version conflicts.
const maxBalanceUpdateAttempts = 10

// Balance is the reservation-aware view of an account.
type Balance struct {
	AccountID        string `json:"accountId"`
	Balance          int64  `json:"balance"`
	AvailableBalance int64  `json:"availableBalance"`
	Currency         string `json:"currency"`
	Version          int64  `json:"version"`
}

// EnsureAccount creates the account with the given starting balance if it
// does not exist; an existing account is returned unchanged. Negative
// starting balances are clamped to zero.
func (e *Engine) EnsureAccount(ctx context.Context, accountID string, initialBalance int64) (*balance.Account, bool, error) {
	if accountID == "" {
		return nil, false, balance.NewError(balance.CodeInvalidAccountID, "account id is required")
	}
	if initialBalance < 0 {
		initialBalance = 0
	}
	now := balance.FormatTime(e.now())
	acct := &balance.Account{
		AccountID: accountID,
		Balance:   initialBalance,
		Currency:  balance.Currency,
		Version:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := e.store.CreateAccount(ctx, acct)
	if err != nil {
		return nil, false, err
	}
	if created {
		e.log.Info("account created",
			zap.String("accountId", accountID),
			zap.Int64("initialBalance", initialBalance))
		return acct, true, nil
	}
	existing, err := e.store.GetAccount(ctx, accountID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// GetBalance reads the account and its HELD reservations under the account
// lock so balance and availableBalance are a consistent pair.
func (e *Engine) GetBalance(ctx context.Context, accountID string) (*Balance, error) {
	if err := e.locks.Lock(ctx, accountLockKey(accountID)); err != nil {
		return nil, err
	}
	defer e.locks.Unlock(accountLockKey(accountID))
	return e.balanceLocked(ctx, accountID)
}

func (e *Engine) balanceLocked(ctx context.Context, accountID string) (*Balance, error) {
	acct, err := e.store.GetAccount(ctx, accountID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, balance.NewError(balance.CodeAccountNotFound, "account "+accountID+" does not exist")
	}
	if err != nil {
		return nil, err
	}
	reserved, err := e.reservedLocked(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return &Balance{
		AccountID:        acct.AccountID,
		Balance:          acct.Balance,
		AvailableBalance: acct.Balance - reserved,
		Currency:         acct.Currency,
		Version:          acct.Version,
	}, nil
}

// reservedLocked sums the HELD reservations for an account. Callers hold the
// account lock.
func (e *Engine) reservedLocked(ctx context.Context, accountID string) (int64, error) {
	held, err := e.store.HeldReservations(ctx, accountID)
	if err != nil {
		return 0, err
	}
	var reserved int64
	for _, r := range held {
		reserved += r.Amount
	}
	return reserved, nil
}

// CreditBalance adds amount chips to the account as a completed transaction
// with a ledger entry. Replays under the same idempotency key return the
// first outcome.
func (e *Engine) CreditBalance(ctx context.Context, accountID string, amount int64, typ balance.TransactionType, idemKey string, md balance.Metadata) (*balance.Transaction, error) {
	if amount <= 0 {
		return nil, balance.NewError(balance.CodeInvalidAmount, "amount must be positive")
	}
	return withIdempotency(ctx, e, idemKey, func(ctx context.Context) (*balance.Transaction, error) {
		if err := e.locks.Lock(ctx, accountLockKey(accountID)); err != nil {
			return nil, err
		}
		defer e.locks.Unlock(accountLockKey(accountID))
		return e.creditLocked(ctx, accountID, amount, typ, idemKey, md)
	})
}

// DebitBalance removes amount chips. With useAvailableBalance the debit is
// validated against balance minus HELD reservations; without it, against the
// raw balance (used by reservation commit, which already holds the funds).
func (e *Engine) DebitBalance(ctx context.Context, accountID string, amount int64, typ balance.TransactionType, idemKey string, md balance.Metadata, useAvailableBalance bool) (*balance.Transaction, error) {
	if amount <= 0 {
		return nil, balance.NewError(balance.CodeInvalidAmount, "amount must be positive")
	}
	return withIdempotency(ctx, e, idemKey, func(ctx context.Context) (*balance.Transaction, error) {
		if err := e.locks.Lock(ctx, accountLockKey(accountID)); err != nil {
			return nil, err
		}
		defer e.locks.Unlock(accountLockKey(accountID))
		return e.debitLocked(ctx, accountID, amount, typ, idemKey, md, useAvailableBalance)
	})
}

func (e *Engine) creditLocked(ctx context.Context, accountID string, amount int64, typ balance.TransactionType, idemKey string, md balance.Metadata) (*balance.Transaction, error) {
	return e.applyLocked(ctx, accountID, amount, typ, idemKey, md, nil)
}

func (e *Engine) debitLocked(ctx context.Context, accountID string, amount int64, typ balance.TransactionType, idemKey string, md balance.Metadata, useAvailableBalance bool) (*balance.Transaction, error) {
	validate := func(acct *balance.Account) error {
		if useAvailableBalance {
			reserved, err := e.reservedLocked(ctx, accountID)
			if err != nil {
				return err
			}
			if acct.Balance-reserved < amount {
				return balance.InsufficientBalance(acct.Balance - reserved)
			}
			return nil
		}
		if acct.Balance < amount {
			return balance.InsufficientBalance(acct.Balance)
		}
		return nil
	}
	return e.applyLocked(ctx, accountID, -amount, typ, idemKey, md, validate)
}

// applyLocked commits a balance delta with version CAS, retrying on
// conflicts and re-running the validator against each fresh read, then
// persists the transaction and appends the ledger entry. Callers hold the
// account lock.
func (e *Engine) applyLocked(ctx context.Context, accountID string, delta int64, typ balance.TransactionType, idemKey string, md balance.Metadata, validate func(*balance.Account) error) (*balance.Transaction, error) {
	now := balance.FormatTime(e.now())

	var committed *balance.Account
	for attempt := 0; attempt < maxBalanceUpdateAttempts; attempt++ {
		acct, err := e.store.GetAccount(ctx, accountID)
		if errors.Is(err, store.ErrNotFound) {
			err = balance.NewError(balance.CodeAccountNotFound, "account "+accountID+" does not exist")
			e.metrics.ObserveTransaction(typ, err)
			return nil, err
		}
		if err != nil {
			return nil, fmt.Errorf("read account %s: %w", accountID, err)
		}
		if validate != nil {
			if verr := validate(acct); verr != nil {
				e.metrics.ObserveTransaction(typ, verr)
				return nil, verr
			}
		}
		updated := *acct
		updated.Balance = acct.Balance + delta
		updated.Version = acct.Version + 1
		updated.UpdatedAt = now

		err = e.store.UpdateAccountWithVersion(ctx, &updated, acct.Version)
		if errors.Is(err, store.ErrVersionConflict) {
			e.metrics.ObserveVersionConflictRetry()
			continue
		}
		if err != nil {
			uerr := balance.NewError(balance.CodeUpdateFailed, "balance update failed: "+err.Error())
			e.metrics.ObserveTransaction(typ, uerr)
			return nil, uerr
		}
		committed = &updated
		break
	}
	if committed == nil {
		cerr := balance.NewError(balance.CodeVersionConflict, "balance update did not commit after retries")
		e.metrics.ObserveTransaction(typ, cerr)
		return nil, cerr
	}

	amount := delta
	if amount < 0 {
		amount = -amount
	}
	tx := &balance.Transaction{
		TransactionID:  e.transactionID(),
		IdempotencyKey: idemKey,
		Type:           typ,
		AccountID:      accountID,
		Amount:         amount,
		BalanceBefore:  committed.Balance - delta,
		BalanceAfter:   committed.Balance,
		Metadata:       md,
		Status:         balance.TxCompleted,
		CreatedAt:      now,
		CompletedAt:    now,
	}
	if err := e.store.PutTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("persist transaction %s: %w", tx.TransactionID, err)
	}
	if err := e.appendLedgerEntry(ctx, tx, delta); err != nil {
		return nil, err
	}
	if err := e.archive.RecordTransaction(ctx, tx); err != nil {
		e.log.Warn("archive transaction", zap.String("transactionId", tx.TransactionID), zap.Error(err))
	}

	e.metrics.ObserveTransaction(typ, nil)
	e.log.Info("balance updated",
		zap.String("accountId", accountID),
		zap.String("type", string(typ)),
		zap.Int64("delta", delta),
		zap.Int64("balance", committed.Balance))
	return tx, nil
}

// appendLedgerEntry links the transaction into the account's hash chain.
// The account lock serializes appends, so the latest checksum read here is
// stable until the append lands.
func (e *Engine) appendLedgerEntry(ctx context.Context, tx *balance.Transaction, delta int64) error {
	prev, err := e.store.LatestChecksum(ctx, tx.AccountID)
	if err != nil {
		return fmt.Errorf("read latest checksum for %s: %w", tx.AccountID, err)
	}
	entry := &balance.LedgerEntry{
		EntryID:          e.entryID(),
		TransactionID:    tx.TransactionID,
		AccountID:        tx.AccountID,
		Type:             tx.Type,
		Amount:           delta,
		BalanceBefore:    tx.BalanceBefore,
		BalanceAfter:     tx.BalanceAfter,
		Metadata:         tx.Metadata,
		Timestamp:        tx.CompletedAt,
		PreviousChecksum: prev,
	}
	entry.Checksum = ledger.Checksum(entry)
	if err := e.store.AppendLedgerEntry(ctx, entry); err != nil {
		return fmt.Errorf("append ledger entry for %s: %w", tx.AccountID, err)
	}
	if err := e.archive.RecordLedgerEntry(ctx, entry); err != nil {
		e.log.Warn("archive ledger entry", zap.String("entryId", entry.EntryID), zap.Error(err))
	}
	return nil
}

// ProcessDeposit credits purchased or granted chips. BONUS and REFERRAL
// sources produce their own transaction types so downstream accounting can
// separate promotional chips from purchases.
func (e *Engine) ProcessDeposit(ctx context.Context, accountID string, amount int64, source balance.DepositSource, idemKey string) (*balance.Transaction, error) {
	if source == "" {
		return nil, balance.NewError(balance.CodeMissingSource, "deposit source is required")
	}
	if !balance.ValidDepositSource(source) {
		return nil, balance.NewError(balance.CodeMissingSource, "unknown deposit source "+string(source))
	}
	typ := balance.TxDeposit
	switch source {
	case balance.SourceBonus:
		typ = balance.TxBonus
	case balance.SourceReferral:
		typ = balance.TxReferral
	}
	return e.CreditBalance(ctx, accountID, amount, typ, idemKey, balance.Metadata{Source: string(source)})
}

// ProcessWithdrawal debits against the available balance.
func (e *Engine) ProcessWithdrawal(ctx context.Context, accountID string, amount int64, reason, idemKey string) (*balance.Transaction, error) {
	return e.DebitBalance(ctx, accountID, amount, balance.TxWithdraw, idemKey, balance.Metadata{Reason: reason}, true)
}

// ProcessCashOut credits chips a player takes off a table back to their
// account.
func (e *Engine) ProcessCashOut(ctx context.Context, accountID, tableID, seatID string, amount int64, handID, idemKey string) (*balance.Transaction, error) {
	return e.CreditBalance(ctx, accountID, amount, balance.TxCashOut, idemKey, balance.Metadata{
		TableID: tableID,
		HandID:  handID,
		SeatID:  seatID,
	})
}

// ListTransactions pages an account's history, newest first.
func (e *Engine) ListTransactions(ctx context.Context, accountID string, f store.TransactionFilter) ([]*balance.Transaction, int, error) {
	return e.store.ListTransactions(ctx, accountID, f)
}

// ListLedgerEntries pages an account's chain along with its latest checksum.
func (e *Engine) ListLedgerEntries(ctx context.Context, accountID string, f store.LedgerFilter) ([]*balance.LedgerEntry, int, string, error) {
	entries, total, err := e.store.ListLedgerEntries(ctx, accountID, f)
	if err != nil {
		return nil, 0, "", err
	}
	latest, err := e.store.LatestChecksum(ctx, accountID)
	if err != nil {
		return nil, 0, "", err
	}
	return entries, total, latest, nil
}
