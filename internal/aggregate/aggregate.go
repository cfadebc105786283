// Package aggregate computes spend totals, cashback and rankings over
// a pre-filtered set of transactions. Callers own the filtering; every
// function here runs a single in-memory pass and never mutates input.
package aggregate

import (
	"errors"
	"sort"

	"svodka/internal/core"
)

// ErrNegativeLimit is returned when a ranking is requested with a
// negative element count. This is programmer misuse, not user input.
var ErrNegativeLimit = errors.New("top limit must not be negative")

// CardGroup is the transactions attributed to one card identifier, in
// first-seen order. LastDigits is empty for single-card ledgers that
// carry no card column.
type CardGroup struct {
	LastDigits   string
	Transactions []core.Transaction
}

// TotalSpendingAndCashback sums the amount field across all records
// and derives cashback. When any record carries an explicit cashback
// value the explicit values are summed (absent ones count as zero);
// otherwise cashback is 1% of the total. Empty input yields (0, 0).
func TotalSpendingAndCashback(txs []core.Transaction) (total, cashback core.Money) {
	explicit := false
	for _, tx := range txs {
		total = total.Add(tx.Amount)
		if tx.HasCashback {
			explicit = true
			cashback = cashback.Add(tx.Cashback)
		}
	}
	if !explicit {
		cashback = total.OnePercent()
	}
	return total, cashback
}

// TopN returns up to n transactions ordered by descending amount
// magnitude. Ties keep their original input order. When n exceeds the
// record count all records are returned sorted.
func TopN(txs []core.Transaction, n int) ([]core.Transaction, error) {
	if n < 0 {
		return nil, ErrNegativeLimit
	}
	ranked := make([]core.Transaction, len(txs))
	copy(ranked, txs)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount.Abs().Cents > ranked[j].Amount.Abs().Cents
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// GroupByCard partitions transactions by card identifier, preserving
// the first-seen order of distinct cards and the input order within
// each group.
func GroupByCard(txs []core.Transaction) []CardGroup {
	index := make(map[string]int)
	var groups []CardGroup
	for _, tx := range txs {
		i, seen := index[tx.CardLastDigits]
		if !seen {
			i = len(groups)
			index[tx.CardLastDigits] = i
			groups = append(groups, CardGroup{LastDigits: tx.CardLastDigits})
		}
		groups[i].Transactions = append(groups[i].Transactions, tx)
	}
	return groups
}

// CashbackByCategory sums explicit cashback per category. Records with
// an empty category or no explicit cashback contribute nothing.
// Categories come back in first-seen order.
func CashbackByCategory(txs []core.Transaction) []CategoryCashback {
	index := make(map[string]int)
	var out []CategoryCashback
	for _, tx := range txs {
		if tx.Category == "" || !tx.HasCashback {
			continue
		}
		i, seen := index[tx.Category]
		if !seen {
			i = len(out)
			index[tx.Category] = i
			out = append(out, CategoryCashback{Category: tx.Category})
		}
		out[i].Cashback = out[i].Cashback.Add(tx.Cashback)
	}
	return out
}

// CategoryCashback is cashback accumulated for one category.
type CategoryCashback struct {
	Category string
	Cashback core.Money
}
