// Package ledger implements the tamper-evident hash chain over per-account
// ledger entries. Every entry embeds the SHA-256 of its own canonical form,
// which includes the previous entry's checksum; the chain is seeded with the
// literal "GENESIS".
package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/cardroomlabs/balanced/internal/balance"
)

// Genesis seeds each account's chain.
const Genesis = "GENESIS"

// Checksum computes the SHA-256 of the entry's canonical JSON. The entry's
// PreviousChecksum must already be set; its Checksum field is ignored.
func Checksum(e *balance.LedgerEntry) string {
	sum := sha256.Sum256(CanonicalJSON(e))
	return hex.EncodeToString(sum[:])
}

// CanonicalJSON renders the checksummed fields in their fixed order with no
// whitespace: entryId, transactionId, accountId, type, amount, balanceBefore,
// balanceAfter, metadata, timestamp, previousChecksum. Metadata keys are
// lexicographic. encoding/json cannot guarantee this ordering, hence the
// hand-built form.
func CanonicalJSON(e *balance.LedgerEntry) []byte {
	var b strings.Builder
	b.WriteByte('{')
	writeStringField(&b, "entryId", e.EntryID, false)
	writeStringField(&b, "transactionId", e.TransactionID, true)
	writeStringField(&b, "accountId", e.AccountID, true)
	writeStringField(&b, "type", string(e.Type), true)
	writeIntField(&b, "amount", e.Amount)
	writeIntField(&b, "balanceBefore", e.BalanceBefore)
	writeIntField(&b, "balanceAfter", e.BalanceAfter)

	b.WriteString(`,"metadata":{`)
	for i, kv := range e.Metadata.Pairs() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escape(kv[0]))
		b.WriteByte(':')
		b.WriteString(escape(kv[1]))
	}
	b.WriteByte('}')

	writeStringField(&b, "timestamp", e.Timestamp, true)
	writeStringField(&b, "previousChecksum", e.PreviousChecksum, true)
	b.WriteByte('}')
	return []byte(b.String())
}

func writeStringField(b *strings.Builder, name, value string, comma bool) {
	if comma {
		b.WriteByte(',')
	}
	b.WriteString(escape(name))
	b.WriteByte(':')
	b.WriteString(escape(value))
}

func writeIntField(b *strings.Builder, name string, value int64) {
	b.WriteByte(',')
	b.WriteString(escape(name))
	b.WriteByte(':')
	b.WriteString(strconv.FormatInt(value, 10))
}

func escape(s string) string {
	out, _ := json.Marshal(s)
	return string(out)
}

// VerifyResult reports a chain walk.
type VerifyResult struct {
	Valid             bool   `json:"valid"`
	EntriesChecked    int    `json:"entriesChecked"`
	FirstInvalidEntry string `json:"firstInvalidEntry,omitempty"`
}

// Verify walks entries in append order, recomputing every link. It stops at
// the first entry whose previousChecksum does not match the carried value or
// whose checksum does not match its canonical form.
func Verify(entries []*balance.LedgerEntry) VerifyResult {
	carried := Genesis
	for i, e := range entries {
		if e.PreviousChecksum != carried || Checksum(e) != e.Checksum {
			return VerifyResult{Valid: false, EntriesChecked: i, FirstInvalidEntry: e.EntryID}
		}
		carried = e.Checksum
	}
	return VerifyResult{Valid: true, EntriesChecked: len(entries)}
}
