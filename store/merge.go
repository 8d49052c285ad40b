package store

import (
	"time"

	"stockboard/domain"
)

// Merge applies the caller-editable fields of in onto existing.
//
// ID and CreatedAt are owned by the store and always come from existing,
// whatever the caller sent. UpdatedAt becomes now, or one nanosecond past
// the previous value when the clock has not moved forward.
func Merge(existing domain.Product, in domain.ProductInput, now time.Time) domain.Product {
	updated := now
	if !updated.After(existing.UpdatedAt) {
		updated = existing.UpdatedAt.Add(time.Nanosecond)
	}
	return domain.Product{
		ID:          existing.ID,
		Name:        in.Name,
		Category:    in.Category,
		Quantity:    in.Quantity,
		MinQuantity: in.MinQuantity,
		Price:       in.Price,
		Description: in.Description,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   updated,
	}
}
