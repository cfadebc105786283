// Package market fetches currency rates and stock prices from a
// remote quote service. Lookups degrade per symbol: a transport
// failure or a symbol missing from the response yields a zero-valued
// sentinel entry, never an error, so one bad symbol cannot abort a
// report.
package market

import "context"

// Rate is one currency quote in report order.
type Rate struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
}

// Price is one stock quote in report order.
type Price struct {
	Stock string  `json:"stock"`
	Price float64 `json:"price"`
}

// Unavailable is the sentinel substituted when a lookup fails.
const Unavailable = 0.0

// Source provides quote lookups. Output order matches input order and
// the length always equals the number of requested symbols.
type Source interface {
	FetchRates(ctx context.Context, currencies []string) []Rate
	FetchPrices(ctx context.Context, stocks []string) []Price
}
