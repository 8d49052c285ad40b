package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"stockboard/domain"
	"stockboard/store"

	"github.com/stretchr/testify/require"
)

func TestWriteStatsCSV(t *testing.T) {
	buf := &bytes.Buffer{}
	stats := store.ComputeStats(store.DemoSeed())
	require.NoError(t, WriteStatsCSV(buf, stats))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6)
	require.Equal(t, []string{"Total Value", "57539.00"}, records[2])
	require.Equal(t, []string{"Out Of Stock Items", "1"}, records[4])
}

func TestWriteProductsCSV(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, WriteProductsCSV(buf, store.DemoSeed()))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6)
	// the quoted inch mark must survive CSV quoting
	require.Equal(t, `MacBook Pro 14"`, records[2][1])
	require.Equal(t, string(domain.StatusOutOfStock), records[4][7])
	require.Equal(t, "2024-01-15T00:00:00Z", records[1][9])
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("", "out/products.csv")
	require.NoError(t, err)
	require.Equal(t, FormatCSV, f)

	f, err = ParseFormat("json", "out/products.txt")
	require.NoError(t, err)
	require.Equal(t, FormatJSON, f)

	_, err = ParseFormat("", "out/products")
	require.Error(t, err)
}

func TestWriteProductsJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, WriteProducts(buf, nil, FormatJSON))
	require.JSONEq(t, "[]", buf.String())

	buf.Reset()
	require.NoError(t, WriteProducts(buf, store.DemoSeed(), FormatJSON))
	var out []domain.Product
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 5)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "stats.csv")

	require.NoError(t, WriteFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "hello")
		return err
	}))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "hello", string(b))
	_, err = os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err))

	boom := errors.New("boom")
	err = WriteFile(path, func(io.Writer) error { return boom })
	require.ErrorIs(t, err, boom)
	b, _ = os.ReadFile(path)
	require.Equal(t, "hello", string(b), "a failed render must not clobber the file")
}
