package store

import (
	"math"

	"stockboard/domain"

	"github.com/shopspring/decimal"
)

// ComputeStats derives the stock summary of products. The value total is
// accumulated in decimal so repeated float additions do not drift. Prices
// decimal cannot represent (NaN, ±Inf) are summed as plain floats instead.
func ComputeStats(products []domain.Product) domain.StockStats {
	stats := domain.StockStats{
		TotalProducts: len(products),
		Categories:    []string{},
	}
	total := decimal.Zero
	inexact := 0.0
	seen := make(map[string]struct{})
	for _, p := range products {
		if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
			inexact += p.Value()
		} else {
			total = total.Add(decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(p.Quantity))))
		}
		switch {
		case p.Quantity == 0:
			stats.OutOfStockItems++
		case p.Quantity > 0 && p.Quantity <= p.MinQuantity:
			stats.LowStockItems++
		}
		if _, ok := seen[p.Category]; !ok {
			seen[p.Category] = struct{}{}
			stats.Categories = append(stats.Categories, p.Category)
		}
	}
	stats.TotalValue = total.InexactFloat64() + inexact
	return stats
}
