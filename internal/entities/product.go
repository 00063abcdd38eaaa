package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID        int64
	Name      string
	Category  string
	Image     string
	Price     decimal.Decimal
	Stock     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductUpdate replaces the editable fields of a product. A nil Stock keeps the current stock.
type ProductUpdate struct {
	Name     string
	Category string
	Image    string
	Price    decimal.Decimal
	Stock    *int
}

// Snapshot freezes the product into an order item.
func (p Product) Snapshot(quantity int) OrderItem {
	return OrderItem{
		ProductID: p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Image:     p.Image,
		Price:     p.Price,
		Quantity:  quantity,
	}
}

type CartItem struct {
	UserID   int64
	Quantity int
	Product  Product
}

type Favorite struct {
	UserID    int64
	Product   Product
	CreatedAt time.Time
}
