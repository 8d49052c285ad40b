package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"stockboard/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// DemoSeed returns a fresh copy of the demo products a store starts from
// and returns to on reset.
func DemoSeed() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "iPhone 15 Pro",
			Category:    "Électronique",
			Quantity:    25,
			MinQuantity: 10,
			Price:       1199,
			Description: "Smartphone Apple dernière génération",
			CreatedAt:   day(2024, time.January, 15),
			UpdatedAt:   day(2024, time.January, 15),
		},
		{
			ID:          "2",
			Name:        `MacBook Pro 14"`,
			Category:    "Informatique",
			Quantity:    8,
			MinQuantity: 5,
			Price:       2499,
			Description: "Ordinateur portable professionnel",
			CreatedAt:   day(2024, time.January, 10),
			UpdatedAt:   day(2024, time.January, 10),
		},
		{
			ID:          "3",
			Name:        "AirPods Pro",
			Category:    "Audio",
			Quantity:    3,
			MinQuantity: 15,
			Price:       279,
			Description: "Écouteurs sans fil avec réduction de bruit",
			CreatedAt:   day(2024, time.January, 8),
			UpdatedAt:   day(2024, time.January, 8),
		},
		{
			ID:          "4",
			Name:        "iPad Air",
			Category:    "Tablettes",
			Quantity:    0,
			MinQuantity: 8,
			Price:       699,
			Description: "Tablette tactile performante",
			CreatedAt:   day(2024, time.January, 5),
			UpdatedAt:   day(2024, time.January, 5),
		},
		{
			ID:          "5",
			Name:        "Apple Watch Series 9",
			Category:    "Montres connectées",
			Quantity:    15,
			MinQuantity: 10,
			Price:       449,
			Description: "Montre connectée avec ECG",
			CreatedAt:   day(2024, time.January, 3),
			UpdatedAt:   day(2024, time.January, 3),
		},
	}
}

// LoadSeed reads a JSON array of products to use as the seed list. Every
// entry needs an id, ids must be unique, and the remaining fields must pass
// the product form rules. Missing timestamps default to loadedAt.
func LoadSeed(path string, loadedAt time.Time) ([]domain.Product, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	var list []domain.Product
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, fmt.Errorf("decode seed %s: %w", path, err)
	}

	seen := make(map[string]struct{}, len(list))
	for i := range list {
		p := &list[i]
		if p.ID == "" {
			return nil, fmt.Errorf("seed entry %d: %w", i, domain.NewInvalidProductError("id", "cannot be empty", p.ID))
		}
		if _, dup := seen[p.ID]; dup {
			return nil, domain.NewDuplicateProductError(p.ID)
		}
		seen[p.ID] = struct{}{}
		if err := domain.ValidateProduct(p.Input()); err != nil {
			return nil, fmt.Errorf("seed entry id=%s: %w", p.ID, err)
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = loadedAt
		}
		if p.UpdatedAt.IsZero() {
			p.UpdatedAt = p.CreatedAt
		}
	}
	return list, nil
}
