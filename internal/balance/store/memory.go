package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cardroomlabs/balanced/internal/balance"
	"github.com/cardroomlabs/balanced/internal/balance/ledger"
	"github.com/cardroomlabs/balanced/internal/platform/clock"
)

type idemEntry struct {
	blob      []byte
	storedAt  time.Time
	expiresAt time.Time
}

// Memory is the in-memory backend. All returned records are copies; callers
// never alias store state.
type Memory struct {
	clk clock.Clock

	mu              sync.RWMutex
	accounts        map[string]*balance.Account
	accountOrder    []string
	transactions    map[string][]*balance.Transaction // accountID -> newest last
	reservations    map[string]*balance.Reservation
	byAccountResv   map[string][]string // accountID -> reservation ids
	ledgers         map[string][]*balance.LedgerEntry
	latestChecksums map[string]string
	pots            map[string]*balance.TablePot
	idempotency     map[string]idemEntry
	idemMaxEntries  int
}

func NewMemory(clk clock.Clock, idemMaxEntries int) *Memory {
	if clk == nil {
		clk = clock.RealClock{}
	}
	if idemMaxEntries <= 0 {
		idemMaxEntries = 100_000
	}
	return &Memory{
		clk:             clk,
		accounts:        make(map[string]*balance.Account),
		transactions:    make(map[string][]*balance.Transaction),
		reservations:    make(map[string]*balance.Reservation),
		byAccountResv:   make(map[string][]string),
		ledgers:         make(map[string][]*balance.LedgerEntry),
		latestChecksums: make(map[string]string),
		pots:            make(map[string]*balance.TablePot),
		idempotency:     make(map[string]idemEntry),
		idemMaxEntries:  idemMaxEntries,
	}
}

func (s *Memory) GetAccount(_ context.Context, accountID string) (*balance.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acct, ok := s.accounts[accountID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *acct
	return &cp, nil
}

func (s *Memory) CreateAccount(_ context.Context, acct *balance.Account) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[acct.AccountID]; ok {
		return false, nil
	}
	cp := *acct
	s.accounts[acct.AccountID] = &cp
	s.accountOrder = append(s.accountOrder, acct.AccountID)
	return true, nil
}

func (s *Memory) UpdateAccountWithVersion(_ context.Context, acct *balance.Account, expected int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.accounts[acct.AccountID]
	if !ok {
		return ErrNotFound
	}
	if cur.Version != expected {
		return ErrVersionConflict
	}
	cp := *acct
	s.accounts[acct.AccountID] = &cp
	return nil
}

func (s *Memory) ListAccountIDs(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.accountOrder))
	copy(out, s.accountOrder)
	return out, nil
}

func (s *Memory) PutTransaction(_ context.Context, tx *balance.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *tx
	s.transactions[tx.AccountID] = append(s.transactions[tx.AccountID], &cp)
	return nil
}

func (s *Memory) ListTransactions(_ context.Context, accountID string, f TransactionFilter) ([]*balance.Transaction, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.transactions[accountID]
	matched := make([]*balance.Transaction, 0, len(all))
	// Newest first.
	for i := len(all) - 1; i >= 0; i-- {
		if f.Type != "" && all[i].Type != f.Type {
			continue
		}
		matched = append(matched, all[i])
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
	out := make([]*balance.Transaction, 0, end-start)
	for _, tx := range matched[start:end] {
		cp := *tx
		out = append(out, &cp)
	}
	return out, total, nil
}

func (s *Memory) PutReservation(_ context.Context, r *balance.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reservations[r.ReservationID]; !ok {
		s.byAccountResv[r.AccountID] = append(s.byAccountResv[r.AccountID], r.ReservationID)
	}
	cp := *r
	s.reservations[r.ReservationID] = &cp
	return nil
}

func (s *Memory) GetReservation(_ context.Context, reservationID string) (*balance.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reservations[reservationID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (s *Memory) HeldReservations(_ context.Context, accountID string) ([]*balance.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*balance.Reservation
	for _, id := range s.byAccountResv[accountID] {
		r := s.reservations[id]
		if r != nil && r.Status == balance.ReservationHeld {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *Memory) DueReservationIDs(_ context.Context, nowMs int64, limit int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	type due struct {
		id string
		at int64
	}
	var dues []due
	for id, r := range s.reservations {
		if r.Status == balance.ReservationHeld && r.ExpiresAtMs <= nowMs {
			dues = append(dues, due{id: id, at: r.ExpiresAtMs})
		}
	}
	sort.Slice(dues, func(i, j int) bool {
		if dues[i].at != dues[j].at {
			return dues[i].at < dues[j].at
		}
		return dues[i].id < dues[j].id
	})
	if limit > 0 && len(dues) > limit {
		dues = dues[:limit]
	}
	out := make([]string, 0, len(dues))
	for _, d := range dues {
		out = append(out, d.id)
	}
	return out, nil
}

func (s *Memory) AppendLedgerEntry(_ context.Context, e *balance.LedgerEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *e
	s.ledgers[e.AccountID] = append(s.ledgers[e.AccountID], &cp)
	s.latestChecksums[e.AccountID] = e.Checksum
	return nil
}

func (s *Memory) LatestChecksum(_ context.Context, accountID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sum, ok := s.latestChecksums[accountID]; ok {
		return sum, nil
	}
	return ledger.Genesis, nil
}

func (s *Memory) LedgerEntries(_ context.Context, accountID string) ([]*balance.LedgerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := s.ledgers[accountID]
	out := make([]*balance.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (s *Memory) ListLedgerEntries(_ context.Context, accountID string, f LedgerFilter) ([]*balance.LedgerEntry, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*balance.LedgerEntry
	for _, e := range s.ledgers[accountID] {
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
	out := make([]*balance.LedgerEntry, 0, len(matched))
	for _, e := range matched {
		cp := *e
		out = append(out, &cp)
	}
	return out, total, nil
}

func clonePot(p *balance.TablePot) *balance.TablePot {
	cp := *p
	cp.Contributions = make(map[int]int64, len(p.Contributions))
	for seat, amt := range p.Contributions {
		cp.Contributions[seat] = amt
	}
	cp.Pots = make([]balance.Pot, len(p.Pots))
	for i, pot := range p.Pots {
		cp.Pots[i] = balance.Pot{Amount: pot.Amount, EligibleSeatIDs: append([]int(nil), pot.EligibleSeatIDs...)}
	}
	return &cp
}

func (s *Memory) GetPot(_ context.Context, potID string) (*balance.TablePot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pots[potID]
	if !ok {
		return nil, ErrNotFound
	}
	return clonePot(p), nil
}

func (s *Memory) CreatePot(_ context.Context, pot *balance.TablePot) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pots[pot.PotID]; ok {
		return false, nil
	}
	s.pots[pot.PotID] = clonePot(pot)
	return true, nil
}

func (s *Memory) UpdatePotWithVersion(_ context.Context, pot *balance.TablePot, expected int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.pots[pot.PotID]
	if !ok {
		return ErrNotFound
	}
	if cur.Version != expected {
		return ErrVersionConflict
	}
	s.pots[pot.PotID] = clonePot(pot)
	return nil
}

func (s *Memory) GetIdempotency(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.idempotency[key]
	if !ok || s.clk.Now().After(e.expiresAt) {
		return nil, ErrNotFound
	}
	out := make([]byte, len(e.blob))
	copy(out, e.blob)
	return out, nil
}

func (s *Memory) PutIdempotency(_ context.Context, key string, blob []byte, ttl time.Duration) error {
	now := s.clk.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.idempotency) >= s.idemMaxEntries {
		s.pruneIdempotencyLocked(now)
	}
	cp := make([]byte, len(blob))
	copy(cp, blob)
	s.idempotency[key] = idemEntry{blob: cp, storedAt: now, expiresAt: now.Add(ttl)}
	return nil
}

// pruneIdempotencyLocked drops expired entries and, if the cache is still at
// capacity, the oldest live ones.
func (s *Memory) pruneIdempotencyLocked(now time.Time) {
	for k, e := range s.idempotency {
		if now.After(e.expiresAt) {
			delete(s.idempotency, k)
		}
	}
	if len(s.idempotency) < s.idemMaxEntries {
		return
	}
	type aged struct {
		key      string
		storedAt time.Time
	}
	entries := make([]aged, 0, len(s.idempotency))
	for k, e := range s.idempotency {
		entries = append(entries, aged{key: k, storedAt: e.storedAt})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].storedAt.Before(entries[j].storedAt) })
	evict := len(s.idempotency) - s.idemMaxEntries + 1
	for i := 0; i < evict && i < len(entries); i++ {
		delete(s.idempotency, entries[i].key)
	}
}

func (s *Memory) Ping(context.Context) error { return nil }

func (s *Memory) Close() error { return nil }
