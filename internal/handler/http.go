package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/entities"
	"github.com/SergeyBogomolovv/canteen-order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, req entities.PlaceOrder) (entities.Order, error)
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	UserOrders(ctx context.Context, userID int64) ([]entities.Order, error)
	ActiveOrders(ctx context.Context) ([]entities.Order, error)
	AllOrders(ctx context.Context, status string) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status string) (entities.Order, error)
}

type CatalogService interface {
	ListProducts(ctx context.Context, category string) ([]entities.Product, error)
	GetProduct(ctx context.Context, productID int64) (entities.Product, error)
	CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	UpdateProduct(ctx context.Context, productID int64, upd entities.ProductUpdate) (entities.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
}

type UserService interface {
	ListUsers(ctx context.Context) ([]entities.User, error)
	GetUser(ctx context.Context, userID int64) (entities.User, error)
	CreateUser(ctx context.Context, u entities.User) (entities.User, error)
	UpdateUser(ctx context.Context, userID int64, upd entities.UserUpdate) (entities.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

type CartService interface {
	Cart(ctx context.Context, userID int64) ([]entities.CartItem, error)
	AddToCart(ctx context.Context, userID, productID int64, quantity int) error
	RemoveFromCart(ctx context.Context, userID, productID int64) error
	ClearCart(ctx context.Context, userID int64) error
}

type FavoriteService interface {
	Favorites(ctx context.Context, userID int64) ([]entities.Favorite, error)
	AddFavorite(ctx context.Context, userID, productID int64) error
	RemoveFavorite(ctx context.Context, userID, productID int64) error
}

type StatsService interface {
	CanteenDashboard(ctx context.Context) (entities.DashboardStats, error)
	AdminDashboard(ctx context.Context) (entities.DashboardStats, error)
}

type AuthService interface {
	Signup(ctx context.Context, req entities.Signup) (entities.Session, error)
	Login(ctx context.Context, email, password string) (entities.Session, error)
	SetPassword(ctx context.Context, userID int64, password string) error
}

// base holds what every HTTP handler in this package shares.
type base struct {
	logger   *slog.Logger
	validate *validator.Validate
}

func newBase(logger *slog.Logger, name string) base {
	return base{
		logger:   logger.With(slog.String("handler", name)),
		validate: newValidator(),
	}
}

// decode reads and validates a JSON body, writing the 400 response itself on failure.
func (b base) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := utils.DecodeBody(r, v); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := b.validate.Struct(v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}

// pathID parses a positive int64 path parameter, writing the 400 response itself on failure.
func (b base) pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		utils.WriteJSON(w, utils.ValidationErrorResponse{
			Message: "invalid request",
			Fields:  map[string]string{name: "positive integer"},
		}, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// fail maps domain errors to HTTP statuses; anything unrecognized is logged and hidden behind a 500.
func (b base) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, attrs ...any) {
	var stockErr *entities.InsufficientStockError
	switch {
	case errors.As(err, &stockErr):
		utils.WriteJSON(w, InsufficientStockResponse{
			Message:   stockErr.Error(),
			ProductID: stockErr.ProductID,
			Available: stockErr.Available,
			Requested: stockErr.Requested,
		}, http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidCredentials):
		utils.WriteError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, entities.ErrNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidStatus),
		errors.Is(err, entities.ErrEmptyOrder),
		errors.Is(err, entities.ErrInvalidQuantity),
		errors.Is(err, entities.ErrInvalidRole):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrInsufficientStock),
		errors.Is(err, entities.ErrInvalidTransition),
		errors.Is(err, entities.ErrEmailTaken),
		errors.Is(err, entities.ErrUserHasOrders):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	default:
		b.logger.ErrorContext(ctx, msg, append(attrs, slog.Any("error", err))...)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

// InsufficientStockResponse names the product that could not cover the order
// swagger:model InsufficientStockResponse
type InsufficientStockResponse struct {
	Message   string `json:"message"`
	ProductID int64  `json:"product_id"`
	Available int    `json:"available"`
	Requested int    `json:"requested"`
}
