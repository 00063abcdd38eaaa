package handler

import (
	"reflect"
	"time"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/entities"
	"github.com/SergeyBogomolovv/canteen-order-service/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// newValidator lets numeric tags such as gt=0 apply to decimal fields.
func newValidator() *validator.Validate {
	v := utils.NewValidator()
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// OrderLine one product and quantity in a new order
type OrderLine struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

// PlaceOrderRequest body of POST /api/orders and of place-order Kafka commands
type PlaceOrderRequest struct {
	UserID        int64       `json:"user_id" validate:"required,gt=0"`
	Items         []OrderLine `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string      `json:"payment_method" validate:"required,max=50"`
	PickupTime    string      `json:"pickup_time" validate:"max=50"`
	Notes         string      `json:"notes" validate:"max=500"`
}

func (r PlaceOrderRequest) ToEntity() entities.PlaceOrder {
	lines := make([]entities.OrderLine, 0, len(r.Items))
	for _, it := range r.Items {
		lines = append(lines, entities.OrderLine{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return entities.PlaceOrder{
		UserID:        r.UserID,
		Items:         lines,
		PaymentMethod: r.PaymentMethod,
		PickupTime:    r.PickupTime,
		Notes:         r.Notes,
	}
}

// UpdateStatusRequest body of the status update endpoints
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderItem product snapshot taken when the order was placed
type OrderItem struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Image     string          `json:"image,omitempty"`
	Price     decimal.Decimal `json:"price" swaggertype:"string" example:"50.00"`
	Quantity  int             `json:"quantity"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"100.00"`
}

// Order canteen order
type Order struct {
	ID             string          `json:"id"`
	UserID         int64           `json:"user_id"`
	Status         string          `json:"status" enums:"pending,preparing,ready,delivered,expired"`
	Total          decimal.Decimal `json:"total" swaggertype:"string" example:"115.50"`
	PaymentMethod  string          `json:"payment_method"`
	PickupTime     string          `json:"pickup_time,omitempty"`
	PickupDeadline time.Time       `json:"pickup_deadline"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Items          []OrderItem     `json:"items"`
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Category:  it.Category,
			Image:     it.Image,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Amount:    it.Amount(),
		})
	}

	return Order{
		ID:             o.ID,
		UserID:         o.UserID,
		Status:         o.Status.String(),
		Total:          o.Total,
		PaymentMethod:  o.PaymentMethod,
		PickupTime:     o.PickupTime,
		PickupDeadline: o.PickupDeadline,
		Notes:          o.Notes,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
		Items:          items,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	return res
}

// Product menu item
type Product struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Image     string          `json:"image,omitempty"`
	Price     decimal.Decimal `json:"price" swaggertype:"string" example:"50.00"`
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func ProductEntityToJSON(p entities.Product) Product {
	return Product{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Image:     p.Image,
		Price:     p.Price,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func ProductsEntityToJSON(products []entities.Product) []Product {
	res := make([]Product, 0, len(products))
	for _, p := range products {
		res = append(res, ProductEntityToJSON(p))
	}
	return res
}

// CreateProductRequest body of POST /api/admin/menu/products
type CreateProductRequest struct {
	Name     string          `json:"name" validate:"required,max=100"`
	Category string          `json:"category" validate:"required,max=50"`
	Image    string          `json:"image" validate:"omitempty,url"`
	Price    decimal.Decimal `json:"price" validate:"gt=0" swaggertype:"string" example:"50.00"`
	Stock    int             `json:"stock" validate:"gte=0"`
}

func (r CreateProductRequest) ToEntity() entities.Product {
	return entities.Product{
		Name:     r.Name,
		Category: r.Category,
		Image:    r.Image,
		Price:    r.Price,
		Stock:    r.Stock,
	}
}

// UpdateProductRequest body of PUT /api/admin/menu/products/{productID}; omitted stock keeps the current stock
type UpdateProductRequest struct {
	Name     string          `json:"name" validate:"required,max=100"`
	Category string          `json:"category" validate:"required,max=50"`
	Image    string          `json:"image" validate:"omitempty,url"`
	Price    decimal.Decimal `json:"price" validate:"gt=0" swaggertype:"string" example:"50.00"`
	Stock    *int            `json:"stock,omitempty" validate:"omitempty,gte=0"`
}

func (r UpdateProductRequest) ToEntity() entities.ProductUpdate {
	return entities.ProductUpdate{
		Name:     r.Name,
		Category: r.Category,
		Image:    r.Image,
		Price:    r.Price,
		Stock:    r.Stock,
	}
}

// CartItem product in a user's cart
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// AddToCartRequest body of POST /api/cart/{userID}
type AddToCartRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

// Favorite product saved by a user
type Favorite struct {
	Product Product   `json:"product"`
	AddedAt time.Time `json:"added_at"`
}

// AddFavoriteRequest body of POST /api/favorites/{userID}
type AddFavoriteRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
}

// User canteen customer or staff member
type User struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role" enums:"customer,canteen_staff,admin"`
	CreatedAt time.Time `json:"created_at"`
}

func UserEntityToJSON(u entities.User) User {
	return User{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// CreateUserRequest body of POST /api/admin/users; role defaults to customer
type CreateUserRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"omitempty,e164"`
	Role      string `json:"role" validate:"omitempty,oneof=customer canteen_staff admin"`
}

func (r CreateUserRequest) ToEntity() entities.User {
	return entities.User{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Role:      entities.Role(r.Role),
	}
}

// UpdateUserRequest body of PUT /api/admin/users/{userID}; empty role keeps the current role
type UpdateUserRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Phone     string `json:"phone" validate:"omitempty,e164"`
	Role      string `json:"role" validate:"omitempty,oneof=customer canteen_staff admin"`
}

func (r UpdateUserRequest) ToEntity() entities.UserUpdate {
	return entities.UserUpdate{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Role:      entities.Role(r.Role),
	}
}

// UpdateProfileRequest body of PUT /api/users/{userID}; customers cannot change their role
type UpdateProfileRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Phone     string `json:"phone" validate:"omitempty,e164"`
}

// DashboardStats order counters and revenue; users and products are only filled for admins
type DashboardStats struct {
	TotalOrders     int             `json:"total_orders"`
	PendingOrders   int             `json:"pending_orders"`
	PreparingOrders int             `json:"preparing_orders"`
	ReadyOrders     int             `json:"ready_orders"`
	CompletedOrders int             `json:"completed_orders"`
	ExpiredOrders   int             `json:"expired_orders"`
	OrdersToday     int             `json:"orders_today"`
	CompletedToday  int             `json:"completed_today"`
	TotalRevenue    decimal.Decimal `json:"total_revenue" swaggertype:"string" example:"115.50"`
	RevenueToday    decimal.Decimal `json:"revenue_today" swaggertype:"string" example:"15.50"`
	TotalUsers      int             `json:"total_users,omitempty"`
	TotalProducts   int             `json:"total_products,omitempty"`
}

func StatsEntityToJSON(s entities.DashboardStats) DashboardStats {
	return DashboardStats{
		TotalOrders:     s.TotalOrders,
		PendingOrders:   s.PendingOrders,
		PreparingOrders: s.PreparingOrders,
		ReadyOrders:     s.ReadyOrders,
		CompletedOrders: s.CompletedOrders,
		ExpiredOrders:   s.ExpiredOrders,
		OrdersToday:     s.OrdersToday,
		CompletedToday:  s.CompletedToday,
		TotalRevenue:    s.TotalRevenue.Round(2),
		RevenueToday:    s.RevenueToday.Round(2),
		TotalUsers:      s.TotalUsers,
		TotalProducts:   s.TotalProducts,
	}
}

// SignupRequest body of POST /api/auth/signup; the account is always a customer
type SignupRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"omitempty,e164"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
}

func (r SignupRequest) ToEntity() entities.Signup {
	return entities.Signup{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Password:  r.Password,
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

// SetPasswordRequest body of PUT /api/admin/passwords/{userID}
type SetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// AuthResponse carries the bearer token for staff and admin routes
type AuthResponse struct {
	Message   string    `json:"message"`
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func SessionEntityToJSON(msg string, s entities.Session) AuthResponse {
	return AuthResponse{
		Message:   msg,
		UserID:    s.UserID,
		Email:     s.Email,
		Role:      string(s.Role),
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
	}
}
