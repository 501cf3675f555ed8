package store

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/cardroomlabs/balanced/internal/balance"
)

// Archive is the optional Postgres write-behind tier. The live store (memory
// or Redis) stays authoritative; the archive keeps a durable copy of
// transactions, ledger entries, and idempotency outcomes for audit and
// reconciliation. A nil *Archive disables archiving, every method is nil-safe.
type Archive struct {
	db  *sql.DB
	log *zap.Logger
}

func OpenArchive(databaseURL string, log *zap.Logger) (*Archive, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(8)
	db.SetConnMaxIdleTime(5 * time.Minute)
	return &Archive{db: db, log: log}, nil
}

func (a *Archive) enabled() bool {
	return a != nil && a.db != nil
}

func (a *Archive) Ping(ctx context.Context) error {
	if !a.enabled() {
		return nil
	}
	return a.db.PingContext(ctx)
}

func (a *Archive) Close() error {
	if !a.enabled() {
		return nil
	}
	return a.db.Close()
}

// RecordTransaction archives a completed or failed transaction. Replays of
// the same transaction id are no-ops.
func (a *Archive) RecordTransaction(ctx context.Context, tx *balance.Transaction) error {
	if !a.enabled() || tx == nil {
		return nil
	}
	const q = `
INSERT INTO balance_transactions (
  transaction_id, idempotency_key, account_id, transaction_type, status,
  amount, balance_before, balance_after,
  table_id, hand_id, seat_id, reservation_id, reason, source,
  created_at, completed_at
)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15::timestamptz,NULLIF($16,'')::timestamptz)
ON CONFLICT (transaction_id) DO NOTHING
`
	_, err := a.db.ExecContext(ctx, q,
		tx.TransactionID,
		tx.IdempotencyKey,
		tx.AccountID,
		string(tx.Type),
		string(tx.Status),
		tx.Amount,
		tx.BalanceBefore,
		tx.BalanceAfter,
		tx.Metadata.TableID,
		tx.Metadata.HandID,
		tx.Metadata.SeatID,
		tx.Metadata.ReservationID,
		tx.Metadata.Reason,
		tx.Metadata.Source,
		tx.CreatedAt,
		tx.CompletedAt,
	)
	return err
}

// RecordLedgerEntry archives one hash-chain link.
func (a *Archive) RecordLedgerEntry(ctx context.Context, e *balance.LedgerEntry) error {
	if !a.enabled() || e == nil {
		return nil
	}
	const q = `
INSERT INTO balance_ledger_entries (
  entry_id, transaction_id, account_id, entry_type,
  amount, balance_before, balance_after,
  entry_timestamp, previous_checksum, checksum
)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8::timestamptz,$9,$10)
ON CONFLICT (entry_id) DO NOTHING
`
	_, err := a.db.ExecContext(ctx, q,
		e.EntryID,
		e.TransactionID,
		e.AccountID,
		string(e.Type),
		e.Amount,
		e.BalanceBefore,
		e.BalanceAfter,
		e.Timestamp,
		e.PreviousChecksum,
		e.Checksum,
	)
	return err
}

// RecordIdempotency archives the response envelope stored for an idempotency
// key so a rebuilt cache tier can replay outcomes issued before the rebuild.
func (a *Archive) RecordIdempotency(ctx context.Context, key string, blob []byte, ttl time.Duration) error {
	if !a.enabled() {
		return nil
	}
	const q = `
INSERT INTO balance_idempotency_keys (idempotency_key, response, expires_at)
VALUES ($1,$2,NOW() + $3::interval)
ON CONFLICT (idempotency_key) DO NOTHING
`
	_, err := a.db.ExecContext(ctx, q, key, blob, ttl.String())
	return err
}

// LookupIdempotency reads an archived envelope, ErrNotFound when absent or
// past its expiry.
func (a *Archive) LookupIdempotency(ctx context.Context, key string) ([]byte, error) {
	if !a.enabled() {
		return nil, ErrNotFound
	}
	const q = `
SELECT response
FROM balance_idempotency_keys
WHERE idempotency_key = $1 AND expires_at > NOW()
`
	var blob []byte
	err := a.db.QueryRowContext(ctx, q, key).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return blob, nil
}

// CleanupExpiredIdempotencyKeys deletes expired rows in batches and returns
// the number deleted.
func (a *Archive) CleanupExpiredIdempotencyKeys(ctx context.Context, batchSize int) (int64, error) {
	if !a.enabled() {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 1000
	}
	const q = `
DELETE FROM balance_idempotency_keys
WHERE idempotency_key IN (
  SELECT idempotency_key FROM balance_idempotency_keys
  WHERE expires_at <= NOW()
  LIMIT $1
)
`
	var total int64
	for {
		res, err := a.db.ExecContext(ctx, q, batchSize)
		if err != nil {
			return total, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return total, err
		}
		total += n
		if n < int64(batchSize) {
			return total, nil
		}
	}
}

// StartIdempotencyCleanupWorker deletes expired idempotency rows on a fixed
// interval until ctx is cancelled.
func (a *Archive) StartIdempotencyCleanupWorker(ctx context.Context, interval time.Duration) {
	if !a.enabled() || interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := a.CleanupExpiredIdempotencyKeys(ctx, 1000)
				if err != nil {
					a.log.Warn("idempotency cleanup failed", zap.Error(err))
					continue
				}
				if n > 0 {
					a.log.Info("idempotency cleanup", zap.Int64("deleted", n))
				}
			}
		}
	}()
}
