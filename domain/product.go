// Package domain defines core business types and interfaces.
package domain

import "time"

// Product represents an inventory product
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Quantity    int       `json:"quantity"`
	MinQuantity int       `json:"minQuantity"`
	Price       float64   `json:"price"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductInput is the payload for adding a product. The store assigns the
// id and both timestamps.
type ProductInput struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	MinQuantity int     `json:"minQuantity"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

// Input returns the caller-editable fields of p.
func (p Product) Input() ProductInput {
	return ProductInput{
		Name:        p.Name,
		Category:    p.Category,
		Quantity:    p.Quantity,
		MinQuantity: p.MinQuantity,
		Price:       p.Price,
		Description: p.Description,
	}
}

// Value is quantity times unit price.
func (p Product) Value() float64 {
	return float64(p.Quantity) * p.Price
}

// StockStatus classifies a product's stock level.
type StockStatus string

const (
	StatusInStock    StockStatus = "in_stock"
	StatusLowStock   StockStatus = "low_stock"
	StatusOutOfStock StockStatus = "out_of_stock"
)

// Status reports the stock status of p. Out of stock takes precedence over
// low stock, so the two never overlap.
func (p Product) Status() StockStatus {
	switch {
	case p.Quantity == 0:
		return StatusOutOfStock
	case p.Quantity <= p.MinQuantity:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// ParseStockStatus maps user input to a StockStatus.
func ParseStockStatus(s string) (StockStatus, bool) {
	switch StockStatus(s) {
	case StatusInStock, StatusLowStock, StatusOutOfStock:
		return StockStatus(s), true
	}
	switch s {
	case "low":
		return StatusLowStock, true
	case "out":
		return StatusOutOfStock, true
	case "ok", "healthy":
		return StatusInStock, true
	}
	return "", false
}

// StockStats is the summary derived from a product collection. It is
// recomputed from the collection on every read and never stored.
type StockStats struct {
	TotalProducts   int      `json:"totalProducts"`
	TotalValue      float64  `json:"totalValue"`
	LowStockItems   int      `json:"lowStockItems"`
	OutOfStockItems int      `json:"outOfStockItems"`
	Categories      []string `json:"categories"`
}

// ListFilter allows filtering and sorting results from List
type ListFilter struct {
	Search   string // matched against name and category, case-insensitive
	Category string
	Status   StockStatus
	SortBy   string // "name", "price", "quantity", "value"
	Order    string // "asc" or "desc"
}

// ProductStore defines the operations the presentation layer calls on the
// stock store. Mutations are total: they never fail.
type ProductStore interface {
	AddProduct(input ProductInput) Product
	UpdateProduct(product Product) (Product, bool)
	DeleteProduct(id string) bool
	ResetStock()
	Get(id string) (Product, error)
	Products() []Product
	List(filter ListFilter) []Product
	Stats() StockStats
	Snapshot() ([]Product, StockStats)
}
