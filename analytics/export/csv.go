// Package export writes dashboard data to CSV and JSON files.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"stockboard/domain"
)

// WriteStatsCSV serialises the stock summary as metric/value rows.
func WriteStatsCSV(w io.Writer, stats domain.StockStats) error {
	writer := csv.NewWriter(w)
	records := [][]string{
		{"Metric", "Value"},
		{"Total Products", strconv.Itoa(stats.TotalProducts)},
		{"Total Value", formatFloat(stats.TotalValue)},
		{"Low Stock Items", strconv.Itoa(stats.LowStockItems)},
		{"Out Of Stock Items", strconv.Itoa(stats.OutOfStockItems)},
		{"Categories", strings.Join(stats.Categories, "|")},
	}
	if err := writer.WriteAll(records); err != nil {
		return err
	}
	return writer.Error()
}

// WriteProductsCSV emits the product table, one row per product.
func WriteProductsCSV(w io.Writer, products []domain.Product) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()
	if err := writer.Write([]string{"ID", "Name", "Category", "Quantity", "Min Quantity", "Price", "Value", "Status", "Description", "Created At", "Updated At"}); err != nil {
		return err
	}
	for _, p := range products {
		if err := writer.Write([]string{
			p.ID,
			p.Name,
			p.Category,
			strconv.Itoa(p.Quantity),
			strconv.Itoa(p.MinQuantity),
			formatFloat(p.Price),
			formatFloat(p.Value()),
			string(p.Status()),
			p.Description,
			p.CreatedAt.UTC().Format(time.RFC3339),
			p.UpdatedAt.UTC().Format(time.RFC3339),
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
