// Package report assembles the JSON-shaped spend reports: it resolves
// the date window, filters the ledger, runs the aggregations and
// merges in greeting and market data.
package report

import (
	"svodka/internal/market"
)

// Report is the response payload. It is built fresh per request and
// owns all nested structures; nothing is shared with the ledger rows.
type Report struct {
	Greeting        string           `json:"greeting"`
	Cards           []CardSummary    `json:"cards"`
	TopTransactions []TopTransaction `json:"top_transactions"`
	CurrencyRates   []market.Rate    `json:"currency_rates"`
	StockPrices     []market.Price   `json:"stock_prices"`
}

// CardSummary is the aggregated spend for one card. LastDigits is
// empty for ledgers with no card column (one synthetic card).
type CardSummary struct {
	LastDigits string  `json:"last_digits"`
	TotalSpent float64 `json:"total_spent"`
	Cashback   float64 `json:"cashback"`
}

// TopTransaction is one ranked transaction in the report.
type TopTransaction struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// Report kinds as stored in the archive.
const (
	KindHome     = "home"
	KindCategory = "category"
)
