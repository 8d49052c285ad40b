package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"stockboard/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func printProducts(w io.Writer, products []domain.Product) {
	for _, p := range products {
		fmt.Fprintf(w, "%s | %s | %s | %d/%d | %.2f | %s\n",
			p.ID, p.Name, p.Category, p.Quantity, p.MinQuantity, p.Price, p.Status())
	}
}

// printFieldErrors lists every failing form field of in, one per line.
func printFieldErrors(w io.Writer, in domain.ProductInput) {
	errs := domain.FieldErrors(in)
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	for _, field := range fields {
		fmt.Fprintf(w, "  %s: %s\n", field, errs[field])
	}
}

// formatMoney renders v with the grouping and decimal separators of tag.
func formatMoney(tag language.Tag, v float64, currency string) string {
	s := message.NewPrinter(tag).Sprintf("%.2f", v)
	if currency == "" {
		return s
	}
	return s + " " + currency
}

// confirm asks a yes/no question on w and reads the answer from input.
func confirm(w io.Writer, r *bufio.Reader, question string) bool {
	fmt.Fprintf(w, "%s (y/N): ", question)
	resp, err := r.ReadString('\n')
	if err != nil && resp == "" {
		return false
	}
	resp = strings.TrimSpace(resp)
	return resp == "y" || resp == "Y"
}
