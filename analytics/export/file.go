package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"stockboard/domain"
)

// Format names an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat resolves a user-supplied format, falling back to the file
// extension of path when name is empty.
func ParseFormat(name, path string) (Format, error) {
	if name == "" {
		name = filepath.Ext(path)
		if len(name) > 0 {
			name = name[1:]
		}
	}
	switch Format(name) {
	case FormatJSON, FormatCSV:
		return Format(name), nil
	}
	return "", fmt.Errorf("unsupported export format %q", name)
}

// WriteProducts encodes products in format f.
func WriteProducts(w io.Writer, products []domain.Product, f Format) error {
	switch f {
	case FormatCSV:
		return WriteProductsCSV(w, products)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if products == nil {
			products = []domain.Product{}
		}
		return enc.Encode(products)
	}
	return fmt.Errorf("unsupported export format %q", f)
}

// WriteFile renders through fn and writes the result to path atomically:
// the data goes to a temp file first and is renamed into place.
func WriteFile(path string, fn func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
