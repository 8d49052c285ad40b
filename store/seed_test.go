package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"stockboard/domain"

	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDemoSeed(t *testing.T) {
	seed := DemoSeed()
	require.Len(t, seed, 5)
	requireUniqueIDs(t, seed)

	// each call hands out an independent copy
	seed[0].Name = "changed"
	require.Equal(t, "iPhone 15 Pro", DemoSeed()[0].Name)
}

func TestLoadSeed(t *testing.T) {
	loadedAt := time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC)

	t.Run("valid fixture", func(t *testing.T) {
		path := writeSeed(t, `[
			{"id":"a","name":"Hammer","category":"Tools","quantity":4,"minQuantity":2,"price":12.5},
			{"id":"b","name":"Nails","category":"Tools","quantity":0,"minQuantity":100,"price":0.02,
			 "createdAt":"2024-02-01T00:00:00Z","updatedAt":"2024-03-01T00:00:00Z"}
		]`)
		seed, err := LoadSeed(path, loadedAt)
		require.NoError(t, err)
		require.Len(t, seed, 2)
		require.Equal(t, loadedAt, seed[0].CreatedAt)
		require.Equal(t, loadedAt, seed[0].UpdatedAt)
		require.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), seed[1].UpdatedAt.UTC())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSeed(filepath.Join(t.TempDir(), "none.json"), loadedAt)
		require.Error(t, err)
	})

	t.Run("not json", func(t *testing.T) {
		_, err := LoadSeed(writeSeed(t, "this is not json"), loadedAt)
		require.Error(t, err)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := LoadSeed(writeSeed(t, `[{"name":"A","category":"C","price":1}]`), loadedAt)
		require.True(t, domain.IsInvalidProductError(err), "got %v", err)
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := LoadSeed(writeSeed(t, `[
			{"id":"a","name":"A","category":"C","price":1},
			{"id":"a","name":"B","category":"C","price":2}
		]`), loadedAt)
		require.True(t, domain.IsDuplicateProductError(err), "got %v", err)
	})

	t.Run("invalid fields", func(t *testing.T) {
		_, err := LoadSeed(writeSeed(t, `[{"id":"a","name":"A","category":"C","price":0}]`), loadedAt)
		require.True(t, domain.IsInvalidProductError(err), "got %v", err)
		require.ErrorContains(t, err, "seed entry id=a: invalid product: field=price")
	})
}
