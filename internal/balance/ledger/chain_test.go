package ledger

import (
	"strings"
	"testing"

	"github.com/cardroomlabs/balanced/internal/balance"
)

func entry(id, prev string, amount, before int64) *balance.LedgerEntry {
	e := &balance.LedgerEntry{
		EntryID:          id,
		TransactionID:    "tx-" + id,
		AccountID:        "acct-1",
		Type:             balance.TxDeposit,
		Amount:           amount,
		BalanceBefore:    before,
		BalanceAfter:     before + amount,
		Metadata:         balance.Metadata{Source: "PURCHASE"},
		Timestamp:        "2026-03-01T10:00:00.000Z",
		PreviousChecksum: prev,
	}
	e.Checksum = Checksum(e)
	return e
}

func TestCanonicalJSONFieldOrder(t *testing.T) {
	e := &balance.LedgerEntry{
		EntryID:          "led-1",
		TransactionID:    "tx-1",
		AccountID:        "acct-1",
		Type:             balance.TxPotWin,
		Amount:           -25,
		BalanceBefore:    100,
		BalanceAfter:     75,
		Metadata:         balance.Metadata{TableID: "T1", HandID: "H9", SeatID: "3"},
		Timestamp:        "2026-03-01T10:00:00.000Z",
		PreviousChecksum: Genesis,
	}
	got := string(CanonicalJSON(e))
	want := `{"entryId":"led-1","transactionId":"tx-1","accountId":"acct-1",` +
		`"type":"POT_WIN","amount":-25,"balanceBefore":100,"balanceAfter":75,` +
		`"metadata":{"handId":"H9","seatId":"3","tableId":"T1"},` +
		`"timestamp":"2026-03-01T10:00:00.000Z","previousChecksum":"GENESIS"}`
	if got != want {
		t.Fatalf("canonical form drifted:\n got=%s\nwant=%s", got, want)
	}
	if strings.Contains(got, " ") {
		t.Fatalf("canonical form contains whitespace: %s", got)
	}
}

func TestChecksumChangesWithPrevious(t *testing.T) {
	a := entry("led-1", Genesis, 100, 0)
	b := entry("led-1", "deadbeef", 100, 0)
	if a.Checksum == b.Checksum {
		t.Fatalf("checksum must cover previousChecksum")
	}
}

func TestVerifyEmptyLedger(t *testing.T) {
	res := Verify(nil)
	if !res.Valid || res.EntriesChecked != 0 {
		t.Fatalf("empty ledger should verify clean: %+v", res)
	}
}

func TestVerifyChainAndTamperDetection(t *testing.T) {
	e1 := entry("led-1", Genesis, 100, 0)
	e2 := entry("led-2", e1.Checksum, -30, 100)
	e3 := entry("led-3", e2.Checksum, 50, 70)

	res := Verify([]*balance.LedgerEntry{e1, e2, e3})
	if !res.Valid || res.EntriesChecked != 3 {
		t.Fatalf("intact chain rejected: %+v", res)
	}

	// Mutating an amount after the fact must break the chain at that entry.
	e2.Amount = -29
	res = Verify([]*balance.LedgerEntry{e1, e2, e3})
	if res.Valid {
		t.Fatalf("tampered chain verified clean")
	}
	if res.EntriesChecked != 1 || res.FirstInvalidEntry != "led-2" {
		t.Fatalf("tamper located wrong entry: %+v", res)
	}
}

func TestVerifyDetectsBrokenLink(t *testing.T) {
	e1 := entry("led-1", Genesis, 100, 0)
	// e2 checksums correctly over a forged previousChecksum.
	e2 := entry("led-2", "forged", -30, 100)
	res := Verify([]*balance.LedgerEntry{e1, e2})
	if res.Valid || res.FirstInvalidEntry != "led-2" {
		t.Fatalf("broken link not detected: %+v", res)
	}
}
