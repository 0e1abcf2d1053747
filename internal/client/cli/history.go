package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/afriwallet/afriwallet/internal/client/api"
)

const historyPageSize = 10

// History lists the user's transactions. The full list is fetched once;
// type filtering and paging happen on the already-fetched slice.
func (a *App) History(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Sign in first")
		return nil
	}

	txs, err := a.api.Transactions(ctx)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}
	if len(txs) == 0 {
		printlnFn("No transactions yet")
		return nil
	}

	kind, err := getSimpleText(a.reader, "Filter by type (credit/debit, empty for all)", os.Stdout)
	if err != nil {
		return err
	}
	txs = filterTransactions(txs, kind)
	if len(txs) == 0 {
		printlnFn("No transactions match")
		return nil
	}

	for offset := 0; offset < len(txs); offset += historyPageSize {
		for _, tx := range paginate(txs, offset, historyPageSize) {
			printlnFn(formatTransaction(tx))
		}
		if offset+historyPageSize >= len(txs) {
			break
		}
		more, err := getSimpleText(a.reader, "More? (Enter to continue, q to stop)", os.Stdout)
		if err != nil || more == "q" {
			break
		}
	}
	return nil
}

// filterTransactions keeps only transactions of the given type; an empty
// kind means no filtering. Matching is case-insensitive.
func filterTransactions(txs []api.Transaction, kind string) []api.Transaction {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind == "" {
		return txs
	}
	out := make([]api.Transaction, 0, len(txs))
	for _, tx := range txs {
		if strings.ToLower(tx.Type) == kind {
			out = append(out, tx)
		}
	}
	return out
}

// paginate returns the page of size n starting at offset, clamped to the
// slice bounds.
func paginate(txs []api.Transaction, offset, n int) []api.Transaction {
	if offset >= len(txs) {
		return nil
	}
	end := offset + n
	if end > len(txs) {
		end = len(txs)
	}
	return txs[offset:end]
}

func formatTransaction(tx api.Transaction) string {
	sign := "+"
	if strings.EqualFold(tx.Type, "debit") {
		sign = "-"
	}
	return fmt.Sprintf("%s  %s%s %s  %-10s %s",
		tx.CreatedAt.Format("2006-01-02 15:04"),
		sign, formatAmount(tx.Amount), tx.Currency,
		tx.Status, tx.Description)
}
