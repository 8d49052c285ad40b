package domain

import (
	"math"
	"testing"
)

func TestValidateProduct(t *testing.T) {
	tests := []struct {
		name        string
		input       ProductInput
		expectError bool
		errField    string
	}{
		{
			name: "valid product",
			input: ProductInput{
				Name:        "Laptop",
				Category:    "Electronics",
				Quantity:    5,
				MinQuantity: 2,
				Price:       1000,
			},
			expectError: false,
		},
		{
			name:        "zero quantity is allowed",
			input:       ProductInput{Name: "Pen", Category: "Office", Quantity: 0, Price: 1},
			expectError: false,
		},
		{
			name:        "blank name",
			input:       ProductInput{Name: "   ", Category: "Office", Quantity: 1, Price: 10},
			expectError: true,
			errField:    "name",
		},
		{
			name:        "empty category",
			input:       ProductInput{Name: "Book", Quantity: 1, Price: 10},
			expectError: true,
			errField:    "category",
		},
		{
			name:        "negative quantity",
			input:       ProductInput{Name: "Pen", Category: "Office", Quantity: -5, Price: 1},
			expectError: true,
			errField:    "quantity",
		},
		{
			name:        "negative min quantity",
			input:       ProductInput{Name: "Pen", Category: "Office", MinQuantity: -1, Price: 1},
			expectError: true,
			errField:    "minQuantity",
		},
		{
			name:        "zero price",
			input:       ProductInput{Name: "Pen", Category: "Office", Quantity: 1, Price: 0},
			expectError: true,
			errField:    "price",
		},
		{
			name:        "infinite price",
			input:       ProductInput{Name: "Pen", Category: "Office", Quantity: 1, Price: math.Inf(1)},
			expectError: true,
			errField:    "price",
		},
		{
			name:        "NaN price",
			input:       ProductInput{Name: "Pen", Category: "Office", Quantity: 1, Price: math.NaN()},
			expectError: true,
			errField:    "price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProduct(tt.input)

			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}

				ipe, ok := err.(*InvalidProductError)
				if !ok {
					t.Fatalf("expected InvalidProductError, got %T", err)
				}

				if ipe.Field != tt.errField {
					t.Fatalf(
						"expected error field %q, got %q",
						tt.errField,
						ipe.Field,
					)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestFieldErrorsCollectsEveryField(t *testing.T) {
	errs := FieldErrors(ProductInput{Quantity: -1, MinQuantity: -1, Price: -3})
	for _, field := range []string{"name", "category", "quantity", "minQuantity", "price"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected an error for %s, got %v", field, errs)
		}
	}
	if errs["price"] != "must be greater than 0" {
		t.Errorf("unexpected price message %q", errs["price"])
	}

	if got := FieldErrors(ProductInput{Name: "A", Category: "B", Price: math.Inf(1)}); got["price"] != "must be a finite number" {
		t.Errorf("unexpected infinite price message %q", got["price"])
	}
	if got := FieldErrors(ProductInput{Name: "A", Category: "B", Price: 1}); len(got) != 0 {
		t.Fatalf("expected no errors, got %v", got)
	}
}

func TestFormFromInputTrims(t *testing.T) {
	f := FormFromInput(ProductInput{Name: "  Widget ", Category: "\tTools", Description: " d "})
	if f.Name != "Widget" || f.Category != "Tools" || f.Description != "d" {
		t.Fatalf("fields not trimmed: %+v", f)
	}
	if f.Input().Name != "Widget" {
		t.Fatalf("round trip lost the name")
	}
}

func TestProductStatus(t *testing.T) {
	cases := []struct {
		qty, min int
		want     StockStatus
	}{
		{0, 0, StatusOutOfStock},
		{0, 10, StatusOutOfStock},
		{3, 15, StatusLowStock},
		{10, 10, StatusLowStock},
		{11, 10, StatusInStock},
	}
	for _, c := range cases {
		p := Product{Quantity: c.qty, MinQuantity: c.min}
		if got := p.Status(); got != c.want {
			t.Errorf("qty=%d min=%d: expected %s, got %s", c.qty, c.min, c.want, got)
		}
	}
}

func TestParseStockStatus(t *testing.T) {
	for in, want := range map[string]StockStatus{
		"low":          StatusLowStock,
		"out_of_stock": StatusOutOfStock,
		"healthy":      StatusInStock,
	} {
		got, ok := ParseStockStatus(in)
		if !ok || got != want {
			t.Errorf("%q: expected %s, got %s (%v)", in, want, got, ok)
		}
	}
	if _, ok := ParseStockStatus("sold"); ok {
		t.Error("expected unknown status to be rejected")
	}
}

func TestProductValueAndInput(t *testing.T) {
	p := Product{ID: "id", Name: "n", Category: "c", Quantity: 4, MinQuantity: 1, Price: 2.5, Description: "d"}
	if p.Value() != 10 {
		t.Fatalf("expected value 10, got %v", p.Value())
	}
	in := p.Input()
	if in.Name != "n" || in.Category != "c" || in.Quantity != 4 || in.MinQuantity != 1 || in.Price != 2.5 || in.Description != "d" {
		t.Fatalf("unexpected input %+v", in)
	}
}

func TestListFilterZeroValue(t *testing.T) {
	var f ListFilter

	if f.Search != "" || f.Category != "" || f.Status != "" {
		t.Fatalf("expected empty filters")
	}
	if f.SortBy != "" || f.Order != "" {
		t.Fatalf("expected empty sort fields")
	}
}
