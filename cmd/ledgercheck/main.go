// Command ledgercheck verifies the hash chains of one or all account ledgers
// directly against Redis. It exits nonzero if any chain fails verification,
// which makes it usable from cron or an incident runbook.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/cardroomlabs/balanced/internal/balance/ledger"
	"github.com/cardroomlabs/balanced/internal/balance/store"
)

func main() {
	redisURL := flag.String("redis-url", envOr("BALANCE_REDIS_URL", "redis://localhost:6379"), "redis connection url")
	accountID := flag.String("account", "", "verify a single account instead of all")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall deadline")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	st, err := store.NewRedis(*redisURL)
	if err != nil {
		fatalf("connect redis: %v", err)
	}
	defer st.Close()

	ids := []string{*accountID}
	if *accountID == "" {
		ids, err = st.ListAccountIDs(ctx)
		if err != nil {
			fatalf("list accounts: %v", err)
		}
		sort.Strings(ids)
	}

	invalid := 0
	for _, id := range ids {
		entries, err := st.LedgerEntries(ctx, id)
		if err != nil {
			fatalf("read ledger for %s: %v", id, err)
		}
		res := ledger.Verify(entries)
		if res.Valid {
			fmt.Printf("%s: ok (%d entries)\n", id, res.EntriesChecked)
			continue
		}
		invalid++
		fmt.Printf("%s: INVALID at entry %s (%d entries verified before break)\n",
			id, res.FirstInvalidEntry, res.EntriesChecked)
	}

	if invalid > 0 {
		fatalf("%d of %d ledgers failed verification", invalid, len(ids))
	}
	fmt.Printf("all %d ledgers verified\n", len(ids))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
