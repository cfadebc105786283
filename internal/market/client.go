package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Config holds the quote-service connection settings. Credentials are
// passed in explicitly; the client keeps no process-wide state.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// DefaultTimeout bounds a single quote request. A call that does not
// return within the bound degrades to sentinel entries instead of
// blocking the report.
const DefaultTimeout = 10 * time.Second

// Client talks to an exchange-rates/stock-quotes HTTP API. The rates
// endpoint returns {"rates": {symbol: value}}, the prices endpoint
// {"prices": {symbol: value}}; both are keyed by requested symbol.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient builds a quote client from explicit configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
	}
}

var _ Source = (*Client)(nil)

// FetchRates looks up currency rates for the requested symbols. Every
// requested symbol produces exactly one entry, in request order;
// failures are logged and replaced with the Unavailable sentinel.
func (c *Client) FetchRates(ctx context.Context, currencies []string) []Rate {
	quotes := c.fetch(ctx, "/latest", "rates", currencies)
	out := make([]Rate, len(currencies))
	for i, symbol := range currencies {
		out[i] = Rate{Currency: symbol, Rate: quotes[symbol]}
	}
	return out
}

// FetchPrices looks up stock prices with the same degrade contract as
// FetchRates, against an independent endpoint.
func (c *Client) FetchPrices(ctx context.Context, stocks []string) []Price {
	quotes := c.fetch(ctx, "/prices", "prices", stocks)
	out := make([]Price, len(stocks))
	for i, symbol := range stocks {
		out[i] = Price{Stock: symbol, Price: quotes[symbol]}
	}
	return out
}

// fetch performs one batch lookup and returns a symbol-keyed map that
// is total over the requested symbols: anything the service did not
// return maps to the sentinel.
func (c *Client) fetch(ctx context.Context, path, field string, symbols []string) map[string]float64 {
	quotes := make(map[string]float64, len(symbols))
	for _, s := range symbols {
		quotes[s] = Unavailable
	}
	if len(symbols) == 0 {
		return quotes
	}

	body, err := c.get(ctx, path, symbols)
	if err != nil {
		slog.WarnContext(ctx, "Quote lookup degraded to sentinel values",
			"path", path, "symbols", len(symbols), "error", err)
		return quotes
	}

	// Responses are envelopes with extra metadata fields (success,
	// timestamp, base); only the keyed quote object matters here.
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		slog.WarnContext(ctx, "Quote response malformed, using sentinel values",
			"path", path, "error", err)
		return quotes
	}
	var values map[string]float64
	if raw, ok := envelope[field]; ok {
		if err := json.Unmarshal(raw, &values); err != nil {
			slog.WarnContext(ctx, "Quote response malformed, using sentinel values",
				"path", path, "field", field, "error", err)
			return quotes
		}
	}
	for symbol, value := range values {
		if _, wanted := quotes[symbol]; wanted {
			quotes[symbol] = value
		}
	}
	return quotes
}

func (c *Client) get(ctx context.Context, path string, symbols []string) ([]byte, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("build quote URL: %w", err)
	}
	q := u.Query()
	q.Set("symbols", strings.Join(symbols, ","))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build quote request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call quote service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("quote service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read quote response: %w", err)
	}
	return body, nil
}
