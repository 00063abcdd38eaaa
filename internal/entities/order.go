package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is a snapshot of the product taken when the order was placed.
// Later product changes never touch it.
type OrderItem struct {
	ProductID int64
	Name      string
	Category  string
	Image     string
	Price     decimal.Decimal
	Quantity  int
}

func (i OrderItem) Amount() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Order struct {
	ID             string
	UserID         int64
	Status         Status
	Total          decimal.Decimal
	PaymentMethod  string
	PickupTime     string
	PickupDeadline time.Time
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Items []OrderItem
}

// ItemsTotal sums price * quantity over the items.
func (o *Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Amount())
	}
	return total
}

// Overdue reports whether the order is waiting for pickup past its deadline.
func (o *Order) Overdue(now time.Time) bool {
	return o.Status == StatusReady && o.PickupDeadline.Before(now)
}

type OrderLine struct {
	ProductID int64
	Quantity  int
}

type PlaceOrder struct {
	UserID        int64
	Items         []OrderLine
	PaymentMethod string
	PickupTime    string
	Notes         string
}

// OrderSummary is the slice of an order needed for dashboard statistics.
type OrderSummary struct {
	Status    Status
	Total     decimal.Decimal
	CreatedAt time.Time
}
