package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/entities"
	"github.com/shopspring/decimal"
)

var (
	orderColumns = []string{
		"id", "user_id", "status", "total", "payment_method", "pickup_time",
		"pickup_deadline", "notes", "created_at", "updated_at",
	}
	orderItemColumns = []string{
		"order_id", "position", "product_id", "name", "category", "image", "price", "quantity",
	}
	productColumns = []string{
		"id", "name", "category", "image", "price", "stock", "created_at", "updated_at",
	}
	userColumns = []string{
		"id", "first_name", "last_name", "email", "phone", "role", "created_at",
	}
)

type Order struct {
	ID             string          `db:"id"`
	UserID         int64           `db:"user_id"`
	Status         string          `db:"status"`
	Total          decimal.Decimal `db:"total"`
	PaymentMethod  string          `db:"payment_method"`
	PickupTime     sql.NullString  `db:"pickup_time"`
	PickupDeadline time.Time       `db:"pickup_deadline"`
	Notes          sql.NullString  `db:"notes"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

type OrderItem struct {
	OrderID   string          `db:"order_id"`
	Position  int             `db:"position"`
	ProductID int64           `db:"product_id"`
	Name      string          `db:"name"`
	Category  string          `db:"category"`
	Image     sql.NullString  `db:"image"`
	Price     decimal.Decimal `db:"price"`
	Quantity  int             `db:"quantity"`
}

type OrderSummary struct {
	Status    string          `db:"status"`
	Total     decimal.Decimal `db:"total"`
	CreatedAt time.Time       `db:"created_at"`
}

type Product struct {
	ID        int64           `db:"id"`
	Name      string          `db:"name"`
	Category  string          `db:"category"`
	Image     sql.NullString  `db:"image"`
	Price     decimal.Decimal `db:"price"`
	Stock     int             `db:"stock"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

type User struct {
	ID        int64          `db:"id"`
	FirstName string         `db:"first_name"`
	LastName  string         `db:"last_name"`
	Email     string         `db:"email"`
	Phone     sql.NullString `db:"phone"`
	Role      string         `db:"role"`
	CreatedAt time.Time      `db:"created_at"`
}

type Credentials struct {
	ID           int64          `db:"id"`
	Email        string         `db:"email"`
	Role         string         `db:"role"`
	PasswordHash sql.NullString `db:"password_hash"`
}

// productLine is a cart or favorite row joined with its live product.
type productLine struct {
	UserID    int64           `db:"user_id"`
	Quantity  int             `db:"quantity"`
	AddedAt   time.Time       `db:"added_at"`
	ProductID int64           `db:"product_id"`
	Name      string          `db:"name"`
	Category  string          `db:"category"`
	Image     sql.NullString  `db:"image"`
	Price     decimal.Decimal `db:"price"`
	Stock     int             `db:"stock"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

func OrderItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ProductID: i.ProductID,
		Name:      i.Name,
		Category:  i.Category,
		Image:     nullStringToString(i.Image),
		Price:     i.Price,
		Quantity:  i.Quantity,
	}
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:             o.ID,
		UserID:         o.UserID,
		Status:         entities.Status(o.Status),
		Total:          o.Total,
		PaymentMethod:  o.PaymentMethod,
		PickupTime:     nullStringToString(o.PickupTime),
		PickupDeadline: o.PickupDeadline,
		Notes:          nullStringToString(o.Notes),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, OrderItemToEntity(it))
		}
	}

	return order
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Image:     nullStringToString(p.Image),
		Price:     p.Price,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func UserToEntity(u User) entities.User {
	return entities.User{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     nullStringToString(u.Phone),
		Role:      entities.Role(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func CredentialsToEntity(c Credentials) entities.Credentials {
	return entities.Credentials{
		UserID:       c.ID,
		Email:        c.Email,
		Role:         entities.Role(c.Role),
		PasswordHash: c.PasswordHash.String,
	}
}

func (l productLine) product() entities.Product {
	return entities.Product{
		ID:        l.ProductID,
		Name:      l.Name,
		Category:  l.Category,
		Image:     nullStringToString(l.Image),
		Price:     l.Price,
		Stock:     l.Stock,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
