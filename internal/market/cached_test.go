package market

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingSource struct {
	rateCalls  int
	priceCalls int
}

func (s *countingSource) FetchRates(_ context.Context, currencies []string) []Rate {
	s.rateCalls++
	out := make([]Rate, len(currencies))
	for i, c := range currencies {
		out[i] = Rate{Currency: c, Rate: float64(s.rateCalls)}
	}
	return out
}

func (s *countingSource) FetchPrices(_ context.Context, stocks []string) []Price {
	s.priceCalls++
	out := make([]Price, len(stocks))
	for i, st := range stocks {
		out[i] = Price{Stock: st, Price: float64(s.priceCalls)}
	}
	return out
}

func TestCachedSourceHitsCacheForSameBatch(t *testing.T) {
	src := &countingSource{}
	cached := NewCachedSource(src, 8, time.Minute)
	ctx := context.Background()

	first := cached.FetchRates(ctx, []string{"USD", "EUR"})
	second := cached.FetchRates(ctx, []string{"USD", "EUR"})
	assert.Equal(t, 1, src.rateCalls)
	assert.Equal(t, first, second)

	// A different batch is a different key.
	cached.FetchRates(ctx, []string{"USD"})
	assert.Equal(t, 2, src.rateCalls)

	// Prices use an independent cache.
	cached.FetchPrices(ctx, []string{"AAPL"})
	cached.FetchPrices(ctx, []string{"AAPL"})
	assert.Equal(t, 1, src.priceCalls)
}

func TestCachedSourceExpiry(t *testing.T) {
	src := &countingSource{}
	cached := NewCachedSource(src, 8, time.Nanosecond)
	ctx := context.Background()

	cached.FetchRates(ctx, []string{"USD"})
	time.Sleep(time.Millisecond)
	cached.FetchRates(ctx, []string{"USD"})
	assert.Equal(t, 2, src.rateCalls)
}

func TestCachedSourceEviction(t *testing.T) {
	src := &countingSource{}
	cached := NewCachedSource(src, 1, time.Minute)
	ctx := context.Background()

	cached.FetchRates(ctx, []string{"USD"})
	cached.FetchRates(ctx, []string{"EUR"}) // evicts USD
	cached.FetchRates(ctx, []string{"USD"})
	assert.Equal(t, 3, src.rateCalls)
}
