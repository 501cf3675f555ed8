// Package balance defines the domain model of the chip balance service:
// accounts, transactions, reservations, table pots, ledger entries, and the
// error taxonomy shared by the engines and the transport layer.
package balance

import (
	"sort"
	"strconv"
	"time"
)

// Currency is the single chip currency tag. Multi-currency is out of scope.
const Currency = "CHIPS"

// TimeLayout renders ISO-8601 timestamps with millisecond precision.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

type TransactionType string

const (
	TxDeposit  TransactionType = "DEPOSIT"
	TxWithdraw TransactionType = "WITHDRAW"
	TxBuyIn    TransactionType = "BUY_IN"
	TxCashOut  TransactionType = "CASH_OUT"
	TxBlind    TransactionType = "BLIND"
	TxBet      TransactionType = "BET"
	TxPotWin   TransactionType = "POT_WIN"
	TxRake     TransactionType = "RAKE"
	TxBonus    TransactionType = "BONUS"
	TxReferral TransactionType = "REFERRAL"
	TxRefund   TransactionType = "REFUND"
)

type TransactionStatus string

const (
	TxPending   TransactionStatus = "PENDING"
	TxCompleted TransactionStatus = "COMPLETED"
	TxFailed    TransactionStatus = "FAILED"
)

type ReservationStatus string

const (
	ReservationHeld      ReservationStatus = "HELD"
	ReservationCommitted ReservationStatus = "COMMITTED"
	ReservationReleased  ReservationStatus = "RELEASED"
	ReservationExpired   ReservationStatus = "EXPIRED"
)

type PotStatus string

const (
	PotActive    PotStatus = "ACTIVE"
	PotSettled   PotStatus = "SETTLED"
	PotCancelled PotStatus = "CANCELLED"
)

// DepositSource tags where deposited chips came from.
type DepositSource string

const (
	SourceFreeroll DepositSource = "FREEROLL"
	SourcePurchase DepositSource = "PURCHASE"
	SourceAdmin    DepositSource = "ADMIN"
	SourceBonus    DepositSource = "BONUS"
	SourceReferral DepositSource = "REFERRAL"
)

func ValidDepositSource(s DepositSource) bool {
	switch s {
	case SourceFreeroll, SourcePurchase, SourceAdmin, SourceBonus, SourceReferral:
		return true
	}
	return false
}

type Account struct {
	AccountID string `json:"accountId"`
	Balance   int64  `json:"balance"`
	Currency  string `json:"currency"`
	Version   int64  `json:"version"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Metadata is the closed set of context tags a transaction or ledger entry
// may carry. The ledger's canonical JSON depends on this being a fixed shape.
type Metadata struct {
	TableID       string `json:"tableId,omitempty"`
	HandID        string `json:"handId,omitempty"`
	SeatID        string `json:"seatId,omitempty"`
	ReservationID string `json:"reservationId,omitempty"`
	Reason        string `json:"reason,omitempty"`
	Source        string `json:"source,omitempty"`
}

// Pairs returns the populated metadata fields as key/value pairs in
// lexicographic key order, the order canonical serialization requires.
func (m Metadata) Pairs() [][2]string {
	fields := map[string]string{
		"handId":        m.HandID,
		"reason":        m.Reason,
		"reservationId": m.ReservationID,
		"seatId":        m.SeatID,
		"source":        m.Source,
		"tableId":       m.TableID,
	}
	keys := make([]string, 0, len(fields))
	for k, v := range fields {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	out := make([][2]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, [2]string{k, fields[k]})
	}
	return out
}

type Transaction struct {
	TransactionID  string            `json:"transactionId"`
	IdempotencyKey string            `json:"idempotencyKey"`
	Type           TransactionType   `json:"type"`
	AccountID      string            `json:"accountId"`
	Amount         int64             `json:"amount"`
	BalanceBefore  int64             `json:"balanceBefore"`
	BalanceAfter   int64             `json:"balanceAfter"`
	Metadata       Metadata          `json:"metadata"`
	Status         TransactionStatus `json:"status"`
	CreatedAt      string            `json:"createdAt"`
	CompletedAt    string            `json:"completedAt,omitempty"`
}

// LedgerEntry is one link of an account's hash chain. Amount is signed:
// positive credits, negative debits.
type LedgerEntry struct {
	EntryID          string          `json:"entryId"`
	TransactionID    string          `json:"transactionId"`
	AccountID        string          `json:"accountId"`
	Type             TransactionType `json:"type"`
	Amount           int64           `json:"amount"`
	BalanceBefore    int64           `json:"balanceBefore"`
	BalanceAfter     int64           `json:"balanceAfter"`
	Metadata         Metadata        `json:"metadata"`
	Timestamp        string          `json:"timestamp"`
	PreviousChecksum string          `json:"previousChecksum"`
	Checksum         string          `json:"checksum"`
}

type Reservation struct {
	ReservationID  string            `json:"reservationId"`
	AccountID      string            `json:"accountId"`
	Amount         int64             `json:"amount"`
	TableID        string            `json:"tableId"`
	IdempotencyKey string            `json:"idempotencyKey"`
	TransactionID  string            `json:"transactionId,omitempty"`
	ExpiresAt      string            `json:"expiresAt"`
	ExpiresAtMs    int64             `json:"expiresAtMs"`
	Status         ReservationStatus `json:"status"`
	CreatedAt      string            `json:"createdAt"`
	CommittedAt    string            `json:"committedAt,omitempty"`
	ReleasedAt     string            `json:"releasedAt,omitempty"`
}

// Pot is one side-pot layer: an amount and the seats eligible to win it.
type Pot struct {
	Amount          int64 `json:"amount"`
	EligibleSeatIDs []int `json:"eligibleSeatIds"`
}

type TablePot struct {
	PotID         string          `json:"potId"`
	TableID       string          `json:"tableId"`
	HandID        string          `json:"handId"`
	Contributions map[int]int64   `json:"contributions"`
	Pots          []Pot           `json:"pots"`
	RakeAmount    int64           `json:"rakeAmount"`
	Status        PotStatus       `json:"status"`
	Version       int64           `json:"version"`
	CreatedAt     string          `json:"createdAt"`
	SettledAt     string          `json:"settledAt,omitempty"`
}

// PotID derives the pot key from its table and hand.
func PotID(tableID, handID string) string {
	return tableID + ":" + handID
}

// TotalContributions sums every seat's contribution.
func (p *TablePot) TotalContributions() int64 {
	var total int64
	for _, amt := range p.Contributions {
		total += amt
	}
	return total
}

// Winner is a settlement payout request for one seat.
type Winner struct {
	SeatID    int    `json:"seatId"`
	AccountID string `json:"accountId"`
	Amount    int64  `json:"amount"`
}

// SeatKey renders a seat id the way idempotency keys and metadata carry it.
func SeatKey(seatID int) string {
	return strconv.Itoa(seatID)
}
