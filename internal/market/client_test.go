package market

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})
	return client, srv
}

func TestFetchRatesPreservesOrder(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("apikey"))
		assert.Equal(t, "USD,EUR", r.URL.Query().Get("symbols"))
		w.Write([]byte(`{"rates":{"EUR":87.08,"USD":73.21}}`))
	})
	defer srv.Close()

	rates := client.FetchRates(context.Background(), []string{"USD", "EUR"})
	require.Len(t, rates, 2)
	assert.Equal(t, Rate{Currency: "USD", Rate: 73.21}, rates[0])
	assert.Equal(t, Rate{Currency: "EUR", Rate: 87.08}, rates[1])
}

func TestFetchRatesMissingSymbolGetsSentinel(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rates":{"USD":73.21}}`))
	})
	defer srv.Close()

	rates := client.FetchRates(context.Background(), []string{"USD", "ZZZ"})
	require.Len(t, rates, 2)
	assert.Equal(t, 73.21, rates[0].Rate)
	assert.Equal(t, Unavailable, rates[1].Rate)
	assert.Equal(t, "ZZZ", rates[1].Currency)
}

func TestFetchRatesIgnoresEnvelopeMetadata(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"timestamp":1724162343,"base":"EUR","date":"2024-08-20","rates":{"USD":73.21,"EUR":87.08}}`))
	})
	defer srv.Close()

	rates := client.FetchRates(context.Background(), []string{"USD", "EUR"})
	require.Len(t, rates, 2)
	assert.Equal(t, Rate{Currency: "USD", Rate: 73.21}, rates[0])
	assert.Equal(t, Rate{Currency: "EUR", Rate: 87.08}, rates[1])
}

func TestFetchRatesNonObjectQuoteFieldDegrades(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"rates":"quota exceeded"}`))
	})
	defer srv.Close()

	rates := client.FetchRates(context.Background(), []string{"USD"})
	require.Len(t, rates, 1)
	assert.Equal(t, Unavailable, rates[0].Rate)
}

func TestFetchRatesServerErrorDegrades(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	defer srv.Close()

	rates := client.FetchRates(context.Background(), []string{"USD", "EUR"})
	require.Len(t, rates, 2)
	for _, rate := range rates {
		assert.Equal(t, Unavailable, rate.Rate)
	}
}

func TestFetchRatesMalformedBodyDegrades(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})
	defer srv.Close()

	rates := client.FetchRates(context.Background(), []string{"USD"})
	require.Len(t, rates, 1)
	assert.Equal(t, Unavailable, rates[0].Rate)
}

func TestFetchRatesUnreachableHostDegrades(t *testing.T) {
	client := NewClient(Config{APIKey: "k", BaseURL: "http://127.0.0.1:1"})
	rates := client.FetchRates(context.Background(), []string{"USD"})
	require.Len(t, rates, 1)
	assert.Equal(t, Unavailable, rates[0].Rate)
}

func TestFetchPrices(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/prices", r.URL.Path)
		w.Write([]byte(`{"prices":{"AAPL":150.12,"AMZN":3173.18}}`))
	})
	defer srv.Close()

	prices := client.FetchPrices(context.Background(), []string{"AAPL", "AMZN", "GOOG"})
	require.Len(t, prices, 3)
	assert.Equal(t, Price{Stock: "AAPL", Price: 150.12}, prices[0])
	assert.Equal(t, Price{Stock: "AMZN", Price: 3173.18}, prices[1])
	assert.Equal(t, Price{Stock: "GOOG", Price: Unavailable}, prices[2])
}

func TestFetchEmptySymbolListSkipsNetwork(t *testing.T) {
	called := false
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	defer srv.Close()

	assert.Empty(t, client.FetchRates(context.Background(), nil))
	assert.Empty(t, client.FetchPrices(context.Background(), nil))
	assert.False(t, called)
}
