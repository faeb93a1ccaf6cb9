package catalog

import (
	"math"
	"strconv"
	"time"
)

// The live price/stock feeds are simulated: the perturbation is derived
// from a polynomial hash of the product id and a 10 second time bucket,
// so within one bucket every call returns the same figure and renders
// stay pure, while across buckets the value drifts like a real feed.

const (
	liveBucket        = 10 * time.Second
	lowStockThreshold = 5
)

type StockStatus string

const (
	StockStatusIn  StockStatus = "in_stock"
	StockStatusLow StockStatus = "low_stock"
	StockStatusOut StockStatus = "out_of_stock"
)

type LivePrice struct {
	Price     int64   `json:"price"`
	Variation float64 `json:"variation"`
}

type LiveStock struct {
	Stock  int         `json:"stock"`
	Status StockStatus `json:"status"`
}

// liveSeed hashes "<productID><bucket>" with h = h*31 + c on a wrapping
// 32-bit signed integer, then takes the absolute value. The exact bit
// behavior is load-bearing: it keeps the simulation reproducible across
// runs and implementations.
func liveSeed(productID string, now time.Time) int64 {
	bucket := now.UnixMilli() / liveBucket.Milliseconds()
	var h int32
	for _, c := range productID + strconv.FormatInt(bucket, 10) {
		h = h*31 + int32(c)
	}
	if h < 0 {
		return -int64(h)
	}
	return int64(h)
}

// livePriceFromSeed maps the seed onto a variation in [-0.05, 0.05).
func livePriceFromSeed(basePrice, seed int64) LivePrice {
	variation := float64(seed%100-50) / 1000
	return LivePrice{
		Price:     int64(math.Round(float64(basePrice) * (1 + variation))),
		Variation: variation,
	}
}

// liveStockFromSeed maps the seed onto a delta in [-5, 14], floored at 0.
func liveStockFromSeed(baseStock int, seed int64) LiveStock {
	stock := baseStock + int(seed%20) - 5
	if stock < 0 {
		stock = 0
	}

	status := StockStatusIn
	if stock == 0 {
		status = StockStatusOut
	} else if stock <= lowStockThreshold {
		status = StockStatusLow
	}
	return LiveStock{Stock: stock, Status: status}
}

func LivePriceAt(productID string, basePrice int64, now time.Time) LivePrice {
	return livePriceFromSeed(basePrice, liveSeed(productID, now))
}

func LiveStockAt(productID string, baseStock int, now time.Time) LiveStock {
	return liveStockFromSeed(baseStock, liveSeed(productID, now))
}
