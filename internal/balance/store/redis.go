package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cardroomlabs/balanced/internal/balance"
	"github.com/cardroomlabs/balanced/internal/balance/ledger"
)

// Redis keyspace, all under the balance: prefix.
const (
	keyAccounts        = "balance:accounts"
	keyAccountIDs      = "balance:accounts:ids"
	keyTransactions    = "balance:transactions"
	keyReservations    = "balance:reservations"
	keyReservationsDue = "balance:reservations:expiry"
	keyActivePots      = "balance:pots:active"
)

func keyTxByAccount(accountID string) string {
	return "balance:transactions:by-account:" + accountID
}

func keyResvByAccount(accountID string) string {
	return "balance:reservations:by-account:" + accountID
}

func keyLedger(accountID string) string {
	return "balance:ledger:" + accountID
}

func keyLedgerLatest(accountID string) string {
	return "balance:ledger:latest-checksum:" + accountID
}

func keyPot(potID string) string {
	return "balance:pots:" + potID
}

func keyIdempotency(key string) string {
	return "balance:transactions:idempotency:" + key
}

// Redis is the cache-tier backend. Writes assume the single-writer deployment
// documented for the keyed mutexes: version checks are read-compare-write
// under the owning lock, not Redis-side transactions.
type Redis struct {
	client *redis.Client
}

func NewRedis(url string) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &Redis{client: redis.NewClient(opts)}, nil
}

// NewRedisWithClient wires an existing client (tests, sentinel setups).
func NewRedisWithClient(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (s *Redis) GetAccount(ctx context.Context, accountID string) (*balance.Account, error) {
	raw, err := s.client.HGet(ctx, keyAccounts, accountID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get account %s: %w", accountID, err)
	}
	var acct balance.Account
	if err := json.Unmarshal([]byte(raw), &acct); err != nil {
		return nil, fmt.Errorf("decode account %s: %w", accountID, err)
	}
	return &acct, nil
}

func (s *Redis) CreateAccount(ctx context.Context, acct *balance.Account) (bool, error) {
	raw, err := json.Marshal(acct)
	if err != nil {
		return false, fmt.Errorf("encode account: %w", err)
	}
	created, err := s.client.HSetNX(ctx, keyAccounts, acct.AccountID, raw).Result()
	if err != nil {
		return false, fmt.Errorf("create account %s: %w", acct.AccountID, err)
	}
	if created {
		if err := s.client.SAdd(ctx, keyAccountIDs, acct.AccountID).Err(); err != nil {
			return true, fmt.Errorf("index account id %s: %w", acct.AccountID, err)
		}
	}
	return created, nil
}

func (s *Redis) UpdateAccountWithVersion(ctx context.Context, acct *balance.Account, expected int64) error {
	cur, err := s.GetAccount(ctx, acct.AccountID)
	if err != nil {
		return err
	}
	if cur.Version != expected {
		return ErrVersionConflict
	}
	raw, err := json.Marshal(acct)
	if err != nil {
		return fmt.Errorf("encode account: %w", err)
	}
	if err := s.client.HSet(ctx, keyAccounts, acct.AccountID, raw).Err(); err != nil {
		return fmt.Errorf("update account %s: %w", acct.AccountID, err)
	}
	return nil
}

func (s *Redis) ListAccountIDs(ctx context.Context) ([]string, error) {
	ids, err := s.client.SMembers(ctx, keyAccountIDs).Result()
	if err != nil {
		return nil, fmt.Errorf("list account ids: %w", err)
	}
	return ids, nil
}

func (s *Redis) PutTransaction(ctx context.Context, tx *balance.Transaction) error {
	raw, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("encode transaction: %w", err)
	}
	score := float64(time.Now().UnixMilli())
	if t, err := time.Parse(balance.TimeLayout, tx.CreatedAt); err == nil {
		score = float64(t.UnixMilli())
	}
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, keyTransactions, tx.TransactionID, raw)
	pipe.ZAdd(ctx, keyTxByAccount(tx.AccountID), redis.Z{Score: score, Member: tx.TransactionID})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("put transaction %s: %w", tx.TransactionID, err)
	}
	return nil
}

func (s *Redis) ListTransactions(ctx context.Context, accountID string, f TransactionFilter) ([]*balance.Transaction, int, error) {
	ids, err := s.client.ZRevRange(ctx, keyTxByAccount(accountID), 0, -1).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("list transaction ids for %s: %w", accountID, err)
	}
	if len(ids) == 0 {
		return nil, 0, nil
	}
	raws, err := s.client.HMGet(ctx, keyTransactions, ids...).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("load transactions for %s: %w", accountID, err)
	}
	matched := make([]*balance.Transaction, 0, len(raws))
	for _, raw := range raws {
		str, ok := raw.(string)
		if !ok {
			continue
		}
		var tx balance.Transaction
		if err := json.Unmarshal([]byte(str), &tx); err != nil {
			continue
		}
		if f.Type != "" && tx.Type != f.Type {
			continue
		}
		matched = append(matched, &tx)
	}
	total := len(matched)
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	start := f.Offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (s *Redis) PutReservation(ctx context.Context, r *balance.Reservation) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode reservation: %w", err)
	}
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, keyReservations, r.ReservationID, raw)
	pipe.SAdd(ctx, keyResvByAccount(r.AccountID), r.ReservationID)
	if r.Status == balance.ReservationHeld {
		pipe.ZAdd(ctx, keyReservationsDue, redis.Z{Score: float64(r.ExpiresAtMs), Member: r.ReservationID})
	} else {
		pipe.ZRem(ctx, keyReservationsDue, r.ReservationID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("put reservation %s: %w", r.ReservationID, err)
	}
	return nil
}

func (s *Redis) GetReservation(ctx context.Context, reservationID string) (*balance.Reservation, error) {
	raw, err := s.client.HGet(ctx, keyReservations, reservationID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get reservation %s: %w", reservationID, err)
	}
	var r balance.Reservation
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return nil, fmt.Errorf("decode reservation %s: %w", reservationID, err)
	}
	return &r, nil
}

func (s *Redis) HeldReservations(ctx context.Context, accountID string) ([]*balance.Reservation, error) {
	ids, err := s.client.SMembers(ctx, keyResvByAccount(accountID)).Result()
	if err != nil {
		return nil, fmt.Errorf("list reservations for %s: %w", accountID, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	raws, err := s.client.HMGet(ctx, keyReservations, ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("load reservations for %s: %w", accountID, err)
	}
	var out []*balance.Reservation
	for _, raw := range raws {
		str, ok := raw.(string)
		if !ok {
			continue
		}
		var r balance.Reservation
		if err := json.Unmarshal([]byte(str), &r); err != nil {
			continue
		}
		if r.Status == balance.ReservationHeld {
			out = append(out, &r)
		}
	}
	return out, nil
}

func (s *Redis) DueReservationIDs(ctx context.Context, nowMs int64, limit int) ([]string, error) {
	rng := &redis.ZRangeBy{Min: "-inf", Max: strconv.FormatInt(nowMs, 10)}
	if limit > 0 {
		rng.Count = int64(limit)
	}
	ids, err := s.client.ZRangeByScore(ctx, keyReservationsDue, rng).Result()
	if err != nil {
		return nil, fmt.Errorf("list due reservations: %w", err)
	}
	return ids, nil
}

func (s *Redis) AppendLedgerEntry(ctx context.Context, e *balance.LedgerEntry) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode ledger entry: %w", err)
	}
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, keyLedger(e.AccountID), raw)
	pipe.Set(ctx, keyLedgerLatest(e.AccountID), e.Checksum, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append ledger entry %s: %w", e.EntryID, err)
	}
	return nil
}

func (s *Redis) LatestChecksum(ctx context.Context, accountID string) (string, error) {
	sum, err := s.client.Get(ctx, keyLedgerLatest(accountID)).Result()
	if errors.Is(err, redis.Nil) {
		return ledger.Genesis, nil
	}
	if err != nil {
		return "", fmt.Errorf("get latest checksum for %s: %w", accountID, err)
	}
	return sum, nil
}

func (s *Redis) LedgerEntries(ctx context.Context, accountID string) ([]*balance.LedgerEntry, error) {
	raws, err := s.client.LRange(ctx, keyLedger(accountID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read ledger for %s: %w", accountID, err)
	}
	out := make([]*balance.LedgerEntry, 0, len(raws))
	for _, raw := range raws {
		var e balance.LedgerEntry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			return nil, fmt.Errorf("decode ledger entry for %s: %w", accountID, err)
		}
		out = append(out, &e)
	}
	return out, nil
}

func (s *Redis) ListLedgerEntries(ctx context.Context, accountID string, f LedgerFilter) ([]*balance.LedgerEntry, int, error) {
	entries, err := s.LedgerEntries(ctx, accountID)
	if err != nil {
		return nil, 0, err
	}
	var matched []*balance.LedgerEntry
	for _, e := range entries {
		if f.From != "" && e.Timestamp < f.From {
			continue
		}
		if f.To != "" && e.Timestamp > f.To {
			continue
		}
		matched = append(matched, e)
	}
	total := len(matched)
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (s *Redis) GetPot(ctx context.Context, potID string) (*balance.TablePot, error) {
	raw, err := s.client.Get(ctx, keyPot(potID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get pot %s: %w", potID, err)
	}
	var pot balance.TablePot
	if err := json.Unmarshal([]byte(raw), &pot); err != nil {
		return nil, fmt.Errorf("decode pot %s: %w", potID, err)
	}
	return &pot, nil
}

func (s *Redis) CreatePot(ctx context.Context, pot *balance.TablePot) (bool, error) {
	raw, err := json.Marshal(pot)
	if err != nil {
		return false, fmt.Errorf("encode pot: %w", err)
	}
	created, err := s.client.SetNX(ctx, keyPot(pot.PotID), raw, 0).Result()
	if err != nil {
		return false, fmt.Errorf("create pot %s: %w", pot.PotID, err)
	}
	if created {
		if err := s.client.SAdd(ctx, keyActivePots, pot.PotID).Err(); err != nil {
			return true, fmt.Errorf("index active pot %s: %w", pot.PotID, err)
		}
	}
	return created, nil
}

func (s *Redis) UpdatePotWithVersion(ctx context.Context, pot *balance.TablePot, expected int64) error {
	cur, err := s.GetPot(ctx, pot.PotID)
	if err != nil {
		return err
	}
	if cur.Version != expected {
		return ErrVersionConflict
	}
	raw, err := json.Marshal(pot)
	if err != nil {
		return fmt.Errorf("encode pot: %w", err)
	}
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, keyPot(pot.PotID), raw, 0)
	if pot.Status == balance.PotActive {
		pipe.SAdd(ctx, keyActivePots, pot.PotID)
	} else {
		pipe.SRem(ctx, keyActivePots, pot.PotID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("update pot %s: %w", pot.PotID, err)
	}
	return nil
}

func (s *Redis) GetIdempotency(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.client.Get(ctx, keyIdempotency(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get idempotency %s: %w", key, err)
	}
	return raw, nil
}

func (s *Redis) PutIdempotency(ctx context.Context, key string, blob []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, keyIdempotency(key), blob, ttl).Err(); err != nil {
		return fmt.Errorf("put idempotency %s: %w", key, err)
	}
	return nil
}

func (s *Redis) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Redis) Close() error {
	return s.client.Close()
}
