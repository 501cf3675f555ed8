package engine

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/cardroomlabs/balanced/internal/balance"
)

// Metrics collects engine-level counters. A nil *Metrics disables collection,
// every observe method is nil-safe.
type Metrics struct {
	transactionsTotal     *prometheus.CounterVec
	transactionRetries    prometheus.Counter
	idempotencyHitsTotal  *prometheus.CounterVec
	reservationsExpired   prometheus.Counter
	potsSettledTotal      *prometheus.CounterVec
	settlementRollbacks   prometheus.Counter
	rakeCollectedTotal    prometheus.Counter
	ledgerVerifyRunsTotal *prometheus.CounterVec
	ledgerInvalidAccounts prometheus.Gauge
	ledgerVerifyLastUnix  prometheus.Gauge
}

func NewMetrics() *Metrics {
	return &Metrics{
		transactionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "balanced",
				Subsystem: "accounting",
				Name:      "transactions_total",
				Help:      "Total processed transactions by type and result.",
			},
			[]string{"type", "result"},
		),
		transactionRetries: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: "balanced",
				Subsystem: "accounting",
				Name:      "version_conflict_retries_total",
				Help:      "Total balance update retries caused by version conflicts.",
			},
		),
		idempotencyHitsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "balanced",
				Subsystem: "idempotency",
				Name:      "lookups_total",
				Help:      "Total idempotency cache lookups by outcome.",
			},
			[]string{"outcome"},
		),
		reservationsExpired: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: "balanced",
				Subsystem: "reservations",
				Name:      "expired_total",
				Help:      "Total reservations expired by the background sweep.",
			},
		),
		potsSettledTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "balanced",
				Subsystem: "pots",
				Name:      "settlements_total",
				Help:      "Total pot settlements by result.",
			},
			[]string{"result"},
		),
		settlementRollbacks: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: "balanced",
				Subsystem: "pots",
				Name:      "settlement_rollbacks_total",
				Help:      "Total compensating rollbacks after a failed settlement credit.",
			},
		),
		rakeCollectedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: "balanced",
				Subsystem: "pots",
				Name:      "rake_collected_total",
				Help:      "Total chips collected as rake.",
			},
		),
		ledgerVerifyRunsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "balanced",
				Subsystem: "ledger",
				Name:      "verification_runs_total",
				Help:      "Total ledger verification sweeps by result.",
			},
			[]string{"result"},
		),
		ledgerInvalidAccounts: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "balanced",
				Subsystem: "ledger",
				Name:      "invalid_accounts",
				Help:      "Accounts whose hash chain failed the most recent sweep.",
			},
		),
		ledgerVerifyLastUnix: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "balanced",
				Subsystem: "ledger",
				Name:      "verification_last_run_unix",
				Help:      "Unix time of the most recent verification sweep.",
			},
		),
	}
}

func (m *Metrics) ObserveTransaction(typ balance.TransactionType, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
		if code := balance.CodeOf(err); code != "" {
			result = string(code)
		}
	}
	m.transactionsTotal.WithLabelValues(string(typ), result).Inc()
}

func (m *Metrics) ObserveVersionConflictRetry() {
	if m == nil {
		return
	}
	m.transactionRetries.Inc()
}

func (m *Metrics) ObserveIdempotencyLookup(hit bool) {
	if m == nil {
		return
	}
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	m.idempotencyHitsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveReservationsExpired(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.reservationsExpired.Add(float64(n))
}

func (m *Metrics) ObserveSettlement(err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.potsSettledTotal.WithLabelValues("error").Inc()
		return
	}
	m.potsSettledTotal.WithLabelValues("success").Inc()
}

func (m *Metrics) ObserveSettlementRollback() {
	if m == nil {
		return
	}
	m.settlementRollbacks.Inc()
}

func (m *Metrics) ObserveRakeCollected(amount int64) {
	if m == nil || amount <= 0 {
		return
	}
	m.rakeCollectedTotal.Add(float64(amount))
}

func (m *Metrics) ObserveLedgerVerification(invalidAccounts int, err error) {
	if m == nil {
		return
	}
	m.ledgerVerifyLastUnix.Set(float64(time.Now().UTC().Unix()))
	if err != nil {
		m.ledgerVerifyRunsTotal.WithLabelValues("error").Inc()
		return
	}
	if invalidAccounts > 0 {
		m.ledgerVerifyRunsTotal.WithLabelValues("invalid").Inc()
	} else {
		m.ledgerVerifyRunsTotal.WithLabelValues("clean").Inc()
	}
	m.ledgerInvalidAccounts.Set(float64(invalidAccounts))
}
