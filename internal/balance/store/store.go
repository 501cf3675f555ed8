// Package store provides typed persistence for the balance service over a
// pluggable backend: an in-memory map store for single-instance deployments
// and tests, and a Redis store for deployments with a cache tier. Mutation
// ordering and serialization are the engines' responsibility (keyed mutexes);
// the store only enforces version checks.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/cardroomlabs/balanced/internal/balance"
)

var (
	ErrNotFound        = errors.New("store: not found")
	ErrVersionConflict = errors.New("store: version conflict")
)

// TransactionFilter narrows ListTransactions. Zero Limit means 50.
type TransactionFilter struct {
	Type   balance.TransactionType
	Limit  int
	Offset int
}

// LedgerFilter narrows ListLedgerEntries by inclusive timestamp bounds.
// Zero Limit means 50.
type LedgerFilter struct {
	From  string
	To    string
	Limit int
}

type Store interface {
	// Accounts. CreateAccount reports whether the account was created; an
	// existing account is left untouched. UpdateAccountWithVersion writes
	// acct only if the stored version equals expected.
	GetAccount(ctx context.Context, accountID string) (*balance.Account, error)
	CreateAccount(ctx context.Context, acct *balance.Account) (bool, error)
	UpdateAccountWithVersion(ctx context.Context, acct *balance.Account, expected int64) error
	ListAccountIDs(ctx context.Context) ([]string, error)

	// Transactions, newest first.
	PutTransaction(ctx context.Context, tx *balance.Transaction) error
	ListTransactions(ctx context.Context, accountID string, f TransactionFilter) ([]*balance.Transaction, int, error)

	// Reservations. HeldReservations returns the HELD set for an account;
	// DueReservationIDs returns ids of HELD reservations whose expiry is at
	// or before nowMs, oldest first.
	PutReservation(ctx context.Context, r *balance.Reservation) error
	GetReservation(ctx context.Context, reservationID string) (*balance.Reservation, error)
	HeldReservations(ctx context.Context, accountID string) ([]*balance.Reservation, error)
	DueReservationIDs(ctx context.Context, nowMs int64, limit int) ([]string, error)

	// Ledger. AppendLedgerEntry pushes to the per-account chain and records
	// the entry's checksum as the account's latest. LatestChecksum returns
	// ledger.Genesis for an empty chain.
	AppendLedgerEntry(ctx context.Context, e *balance.LedgerEntry) error
	LatestChecksum(ctx context.Context, accountID string) (string, error)
	LedgerEntries(ctx context.Context, accountID string) ([]*balance.LedgerEntry, error)
	ListLedgerEntries(ctx context.Context, accountID string, f LedgerFilter) ([]*balance.LedgerEntry, int, error)

	// Pots.
	GetPot(ctx context.Context, potID string) (*balance.TablePot, error)
	CreatePot(ctx context.Context, pot *balance.TablePot) (bool, error)
	UpdatePotWithVersion(ctx context.Context, pot *balance.TablePot, expected int64) error

	// Idempotency blobs with TTL. GetIdempotency returns ErrNotFound for
	// absent or expired keys.
	GetIdempotency(ctx context.Context, key string) ([]byte, error)
	PutIdempotency(ctx context.Context, key string, blob []byte, ttl time.Duration) error

	Ping(ctx context.Context) error
	Close() error
}
