package store

import (
	"math"
	"testing"

	"stockboard/domain"

	"github.com/stretchr/testify/require"
)

func TestComputeStats(t *testing.T) {
	t.Run("empty collection", func(t *testing.T) {
		stats := ComputeStats(nil)
		require.Equal(t, domain.StockStats{Categories: []string{}}, stats)
	})

	t.Run("stock states are exclusive", func(t *testing.T) {
		stats := ComputeStats([]domain.Product{
			{Category: "A", Quantity: 0, MinQuantity: 0, Price: 5},
			{Category: "A", Quantity: 0, MinQuantity: 10, Price: 5},
			{Category: "B", Quantity: 10, MinQuantity: 10, Price: 1.5},
			{Category: "C", Quantity: 11, MinQuantity: 10, Price: 2},
		})
		require.Equal(t, 4, stats.TotalProducts)
		require.Equal(t, 2, stats.OutOfStockItems)
		require.Equal(t, 1, stats.LowStockItems)
		require.InDelta(t, 37.0, stats.TotalValue, 1e-9)
		require.Equal(t, []string{"A", "B", "C"}, stats.Categories)
	})

	t.Run("decimal accumulation", func(t *testing.T) {
		products := make([]domain.Product, 10)
		for i := range products {
			products[i] = domain.Product{Category: "X", Quantity: 1, Price: 0.1}
		}
		require.Equal(t, 1.0, ComputeStats(products).TotalValue)
	})

	t.Run("non-finite prices", func(t *testing.T) {
		stats := ComputeStats([]domain.Product{
			{Category: "A", Quantity: 2, Price: 10},
			{Category: "B", Quantity: 1, Price: math.Inf(1)},
		})
		require.Equal(t, 2, stats.TotalProducts)
		require.True(t, math.IsInf(stats.TotalValue, 1))

		stats = ComputeStats([]domain.Product{
			{Category: "A", Quantity: 2, Price: 10},
			{Category: "B", Quantity: 1, Price: math.NaN()},
		})
		require.True(t, math.IsNaN(stats.TotalValue))
		require.Equal(t, []string{"A", "B"}, stats.Categories)
	})
}
