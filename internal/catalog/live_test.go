package catalog

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLiveSeed_KnownVectors(t *testing.T) {
	// Hand-computed h = h*31 + c over "<id><bucket>".
	epoch := time.UnixMilli(0) // bucket 0

	// "p0": 'p'=112, '0'=48 -> 112*31+48 = 3520
	assert.Equal(t, int64(3520), liveSeed("p", epoch))
	// "a10": 'a'=97, '1'=49, '0'=48 -> ((97*31)+49)*31+48 = 94784
	assert.Equal(t, int64(94784), liveSeed("a", time.UnixMilli(100_000)))
}

func TestLiveSeed_NonNegative(t *testing.T) {
	now := time.Now()
	for i := 0; i < 200; i++ {
		id := fmt.Sprintf("producto-%d", i)
		assert.GreaterOrEqual(t, liveSeed(id, now), int64(0), "id %s", id)
	}
}

func TestLiveSeed_StableWithinBucket(t *testing.T) {
	base := time.UnixMilli(1_000_000) // bucket 100

	same := liveSeed("montana-94-negro", base.Add(9*time.Second))
	assert.Equal(t, liveSeed("montana-94-negro", base), same)

	// The next bucket hashes a different string.
	next := liveSeed("montana-94-negro", base.Add(10*time.Second))
	assert.NotEqual(t, same, next)
}

func TestLivePriceFromSeed(t *testing.T) {
	cases := []struct {
		seed      int64
		base      int64
		price     int64
		variation float64
	}{
		{seed: 50, base: 1000, price: 1000, variation: 0},
		{seed: 75, base: 1000, price: 1025, variation: 0.025},
		{seed: 0, base: 1000, price: 950, variation: -0.05},
		{seed: 99, base: 1000, price: 1049, variation: 0.049},
		{seed: 120, base: 1000, price: 970, variation: -0.03},
	}

	for _, tc := range cases {
		got := livePriceFromSeed(tc.base, tc.seed)
		assert.Equal(t, tc.price, got.Price, "seed %d", tc.seed)
		assert.InDelta(t, tc.variation, got.Variation, 1e-9, "seed %d", tc.seed)
	}
}

func TestLivePrice_VariationBounds(t *testing.T) {
	now := time.Now()
	for i := 0; i < 500; i++ {
		got := LivePriceAt(fmt.Sprintf("id-%d", i), 10_000, now)
		assert.GreaterOrEqual(t, got.Variation, -0.05)
		assert.Less(t, got.Variation, 0.05)
	}
}

func TestLiveStockFromSeed(t *testing.T) {
	cases := []struct {
		name   string
		seed   int64
		base   int
		stock  int
		status StockStatus
	}{
		// seed%20 = 1 -> delta -4; max(0, 3-4) = 0.
		{"floored to out of stock", 21, 3, 0, StockStatusOut},
		{"low stock boundary", 10, 0, 5, StockStatusLow},
		{"in stock", 19, 10, 24, StockStatusIn},
		{"max negative delta", 0, 5, 0, StockStatusOut},
		{"low stock one", 6, 0, 1, StockStatusLow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := liveStockFromSeed(tc.base, tc.seed)
			assert.Equal(t, tc.stock, got.Stock)
			assert.Equal(t, tc.status, got.Status)
		})
	}
}

func TestLiveStock_DeltaBounds(t *testing.T) {
	now := time.Now()
	base := 20
	for i := 0; i < 500; i++ {
		got := LiveStockAt(fmt.Sprintf("id-%d", i), base, now)
		assert.GreaterOrEqual(t, got.Stock, base-5)
		assert.LessOrEqual(t, got.Stock, base+14)
	}
}
