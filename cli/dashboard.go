package cli

import (
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"stockboard/analytics"
	"stockboard/analytics/export"
	"stockboard/analytics/svg"
	"stockboard/domain"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func init() {
	// stats
	var sOutput string
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the stock summary cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats := productStore.Stats()
			if sOutput == "json" {
				return printJSON(cmd.OutOrStdout(), stats)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total products: %d\n", stats.TotalProducts)
			fmt.Fprintf(out, "Total value: %s\n", formatMoney(cfg.Language(), stats.TotalValue, cfg.Currency))
			fmt.Fprintf(out, "Low stock: %d\n", stats.LowStockItems)
			fmt.Fprintf(out, "Out of stock: %d\n", stats.OutOfStockItems)
			fmt.Fprintf(out, "Categories: %d\n", len(stats.Categories))
			return nil
		},
	}
	statsCmd.Flags().StringVar(&sOutput, "output", "", "output format")
	rootCmd.AddCommand(statsCmd)

	// trends
	var tTop int
	var tOutput string
	trendsCmd := &cobra.Command{
		Use:   "trends",
		Short: "Show stock health and the most valuable products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			products, stats := productStore.Snapshot()
			health := analytics.StockHealth(products)
			top := analytics.TopByValue(products, tTop)
			out := cmd.OutOrStdout()
			if tOutput == "json" {
				return printJSON(out, struct {
					Stats  domain.StockStats `json:"stats"`
					Health analytics.Health  `json:"health"`
					Top    []domain.Product  `json:"topByValue"`
				}{stats, health, top})
			}
			fmt.Fprintf(out, "Stock value: %s across %d products\n",
				formatMoney(cfg.Language(), stats.TotalValue, cfg.Currency), stats.TotalProducts)
			fmt.Fprintf(out, "Healthy: %d\n", len(health.Healthy))
			fmt.Fprintf(out, "Low stock: %d\n", len(health.Low))
			for _, p := range health.Low {
				fmt.Fprintf(out, "  %s (%d/%d)\n", p.Name, p.Quantity, p.MinQuantity)
			}
			fmt.Fprintf(out, "Out of stock: %d\n", len(health.Out))
			for _, p := range health.Out {
				fmt.Fprintf(out, "  %s\n", p.Name)
			}
			fmt.Fprintln(out, "Top by value:")
			for i, p := range top {
				fmt.Fprintf(out, "  %d. %s | %s\n", i+1, p.Name, formatMoney(cfg.Language(), p.Value(), cfg.Currency))
			}
			return nil
		},
	}
	trendsCmd.Flags().IntVar(&tTop, "top", analytics.DefaultTopValue, "number of products ranked by value")
	trendsCmd.Flags().StringVar(&tOutput, "output", "", "output format")
	rootCmd.AddCommand(trendsCmd)

	// charts
	var cDir, cCategory string
	var cTop int
	chartsCmd := &cobra.Command{
		Use:   "charts",
		Short: "Render the dashboard charts as SVG files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			products := productStore.Products()
			width, height := cfg.ChartWidth, cfg.ChartHeight

			charts := map[string]func() (template.HTML, error){
				"quantity.svg": func() (template.HTML, error) {
					return quantityChart(products, cTop, cCategory, width, height)
				},
				"categories.svg": func() (template.HTML, error) {
					return categoryChart(products, width, height)
				},
				"evolution.svg": func() (template.HTML, error) {
					return evolutionChart(products, width, height)
				},
			}

			var g errgroup.Group
			for name, render := range charts {
				name, render := name, render
				path := filepath.Join(cDir, name)
				g.Go(func() error {
					doc, err := render()
					if err != nil {
						return fmt.Errorf("%s: %w", name, err)
					}
					if doc == "" {
						slog.Warn("chart skipped", "chart", name, "reason", "no data")
						return nil
					}
					return export.WriteFile(path, func(w io.Writer) error {
						_, err := io.WriteString(w, string(doc))
						return err
					})
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			slog.Info("charts rendered", "dir", cDir, "duration_ms", time.Since(start).Milliseconds())
			fmt.Fprintf(cmd.OutOrStdout(), "charts written to %s\n", cDir)
			return nil
		},
	}
	cf := chartsCmd.Flags()
	cf.StringVar(&cDir, "dir", "charts", "output directory")
	cf.StringVar(&cCategory, "category", "", "restrict the quantity chart to a category")
	cf.IntVar(&cTop, "top", analytics.DefaultTopQuantity, "number of bars in the quantity chart")
	cf.Int("chart-width", svg.DefaultWidth, "chart width in pixels")
	cf.Int("chart-height", svg.DefaultHeight, "chart height in pixels")
	_ = vp.BindPFlag("chart-width", cf.Lookup("chart-width"))
	_ = vp.BindPFlag("chart-height", cf.Lookup("chart-height"))
	rootCmd.AddCommand(chartsCmd)

	// export
	var eFile, eFormat, eCategory string
	var eStats bool
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the products or the stats to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var n int
			var write func(w io.Writer) error
			if eStats {
				stats := productStore.Stats()
				write = func(w io.Writer) error { return export.WriteStatsCSV(w, stats) }
			} else {
				format, err := export.ParseFormat(eFormat, eFile)
				if err != nil {
					return err
				}
				products := productStore.List(domain.ListFilter{Category: eCategory})
				n = len(products)
				write = func(w io.Writer) error { return export.WriteProducts(w, products, format) }
			}
			if err := export.WriteFile(eFile, write); err != nil {
				return fmt.Errorf("export %s: %w", eFile, err)
			}
			slog.Info("export written", "file", eFile, "products", n, "stats", eStats)
			fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", eFile)
			return nil
		},
	}
	ef := exportCmd.Flags()
	ef.StringVar(&eFile, "file", "", "destination file")
	ef.StringVar(&eFormat, "format", "", "json|csv, inferred from the file extension when empty")
	ef.StringVar(&eCategory, "category", "", "only export this category")
	ef.BoolVar(&eStats, "stats", false, "export the stats summary as CSV instead of the products")
	_ = exportCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(exportCmd)
}

// quantityChart renders the stock quantity bars against their reorder
// thresholds. It returns an empty document when there is nothing to plot.
func quantityChart(products []domain.Product, top int, category string, width, height int) (template.HTML, error) {
	points := analytics.TopByQuantity(products, top, category)
	if len(points) == 0 {
		return "", nil
	}
	values := make([]float64, len(points))
	threshold := make([]float64, len(points))
	labels := make([]string, len(points))
	for i, p := range points {
		values[i] = float64(p.Quantity)
		threshold[i] = float64(p.MinQuantity)
		labels[i] = p.Label
	}
	return svg.Bars(width, height, values, threshold, labels, svg.BarOpts{
		Title:       "Stock levels",
		Description: "Units in stock against the reorder threshold",
	})
}

func categoryChart(products []domain.Product, width, height int) (template.HTML, error) {
	parts := analytics.CategoryBreakdown(products)
	if len(parts) == 0 {
		return "", nil
	}
	values := make([]float64, len(parts))
	labels := make([]string, len(parts))
	colors := make([]string, len(parts))
	for i, s := range parts {
		values[i] = float64(s.Count)
		labels[i] = s.Name
		colors[i] = s.Color
	}
	return svg.Pie(width, height, values, labels, svg.PieOpts{
		Title:  "Categories",
		Colors: colors,
	})
}

func evolutionChart(products []domain.Product, width, height int) (template.HTML, error) {
	points := analytics.Evolution(products)
	series := make([]float64, len(points))
	labels := make([]string, len(points))
	dashed := make([]bool, len(points))
	prediction := make([]float64, len(points))
	for i, p := range points {
		series[i] = float64(p.Stock)
		labels[i] = p.Month
		dashed[i] = p.Simulated
		prediction[i] = float64(p.Prediction)
	}
	return svg.Line(width, height, series, labels, svg.LineOpts{
		Title:    "Stock evolution",
		ShowDots: true,
		Dashed:   dashed,
		Overlay:  prediction,
	})
}
