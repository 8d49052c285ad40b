// Package analytics derives the read-only chart and trend datasets shown on
// the dashboard from a product snapshot.
package analytics

import (
	"slices"
	"sort"

	"stockboard/domain"
)

// Defaults for dataset sizes.
const (
	DefaultTopQuantity = 8
	DefaultTopValue    = 5
	MaxLabelRunes      = 15
)

// Palette holds the category colours, assigned by first appearance.
var Palette = []string{"#3B82F6", "#8B5CF6", "#10B981", "#F59E0B", "#EF4444", "#6366F1", "#EC4899", "#14B8A6"}

// QuantityPoint is one bar of the stock quantity chart.
type QuantityPoint struct {
	Label       string  `json:"label"`
	Quantity    int     `json:"quantity"`
	MinQuantity int     `json:"minQuantity"`
	Value       float64 `json:"value"`
	Category    string  `json:"category"`
}

// CategorySlice is one slice of the category distribution.
type CategorySlice struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	TotalValue float64 `json:"totalValue"`
	Color      string  `json:"color"`
}

// Health groups products by stock status.
type Health struct {
	Low     []domain.Product `json:"low"`
	Out     []domain.Product `json:"out"`
	Healthy []domain.Product `json:"healthy"`
}

// EvolutionPoint is one month of the stock evolution series, with the
// forecast drawn alongside it.
type EvolutionPoint struct {
	Month      string `json:"month"`
	Stock      int    `json:"stock"`
	Prediction int    `json:"prediction"`
	Simulated  bool   `json:"simulated"`
}

// evolutionBaseline is the simulated history preceding the live month.
var evolutionBaseline = []EvolutionPoint{
	{Month: "Jan", Stock: 45, Prediction: 50, Simulated: true},
	{Month: "Fév", Stock: 52, Prediction: 55, Simulated: true},
	{Month: "Mar", Stock: 48, Prediction: 52, Simulated: true},
	{Month: "Avr", Stock: 61, Prediction: 58, Simulated: true},
	{Month: "Mai", Stock: 55, Prediction: 60, Simulated: true},
}

// livePrediction is the forecast for the live month.
const livePrediction = 65

// TopByQuantity returns the n products with the most units, optionally
// restricted to one category. n <= 0 selects DefaultTopQuantity.
func TopByQuantity(products []domain.Product, n int, category string) []QuantityPoint {
	if n <= 0 {
		n = DefaultTopQuantity
	}
	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if category == "" || p.Category == category {
			filtered = append(filtered, p)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Quantity > filtered[j].Quantity })
	if len(filtered) > n {
		filtered = filtered[:n]
	}

	out := make([]QuantityPoint, 0, len(filtered))
	for _, p := range filtered {
		out = append(out, QuantityPoint{
			Label:       Truncate(p.Name, MaxLabelRunes),
			Quantity:    p.Quantity,
			MinQuantity: p.MinQuantity,
			Value:       p.Value(),
			Category:    p.Category,
		})
	}
	return out
}

// CategoryBreakdown counts products and sums stock value per category, in
// order of first appearance.
func CategoryBreakdown(products []domain.Product) []CategorySlice {
	index := make(map[string]int)
	out := make([]CategorySlice, 0)
	for _, p := range products {
		i, ok := index[p.Category]
		if !ok {
			i = len(out)
			index[p.Category] = i
			out = append(out, CategorySlice{Name: p.Category, Color: Palette[i%len(Palette)]})
		}
		out[i].Count++
		out[i].TotalValue += p.Value()
	}
	return out
}

// StockHealth buckets products by status, keeping collection order.
func StockHealth(products []domain.Product) Health {
	h := Health{Low: []domain.Product{}, Out: []domain.Product{}, Healthy: []domain.Product{}}
	for _, p := range products {
		switch {
		case p.Quantity == 0:
			h.Out = append(h.Out, p)
		case p.Quantity > 0 && p.Quantity <= p.MinQuantity:
			h.Low = append(h.Low, p)
		case p.Quantity > p.MinQuantity:
			h.Healthy = append(h.Healthy, p)
		}
	}
	return h
}

// TopByValue returns the n products with the highest stock value. The input
// slice is left untouched. n <= 0 selects DefaultTopValue.
func TopByValue(products []domain.Product, n int) []domain.Product {
	if n <= 0 {
		n = DefaultTopValue
	}
	sorted := slices.Clone(products)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Value() > sorted[j].Value() })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Evolution returns the simulated baseline followed by the live total
// quantity for the current month.
func Evolution(products []domain.Product) []EvolutionPoint {
	total := 0
	for _, p := range products {
		total += p.Quantity
	}
	out := slices.Clone(evolutionBaseline)
	return append(out, EvolutionPoint{Month: "Juin", Stock: total, Prediction: livePrediction})
}

// Truncate shortens s to limit runes, marking the cut with "...".
func Truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}
