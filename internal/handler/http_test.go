package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/entities"
	"github.com/SergeyBogomolovv/canteen-order-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/canteen-order-service/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type response struct {
	status int
	body   string
}

func serve(t *testing.T, r chi.Router, method, target, body string) response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return response{status: res.StatusCode, body: string(data)}
}

var placedOrder = entities.Order{
	ID:             "8c9f2c1e-5a0b-4f43-b8c4-2f0d6c1c1a01",
	UserID:         7,
	Status:         entities.StatusPending,
	Total:          decimal.RequireFromString("115.50"),
	PaymentMethod:  "cash",
	PickupDeadline: time.Date(2024, 5, 10, 11, 45, 0, 0, time.UTC),
	CreatedAt:      time.Date(2024, 5, 10, 11, 30, 0, 0, time.UTC),
	Items: []entities.OrderItem{
		{ProductID: 1, Name: "Adobo", Price: decimal.RequireFromString("50.00"), Quantity: 2},
		{ProductID: 2, Name: "Juice", Price: decimal.RequireFromString("15.50"), Quantity: 1},
	},
}

func TestOrderHandler_PlaceOrder(t *testing.T) {
	const validBody = `{"user_id":7,"payment_method":"cash","items":[{"product_id":1,"quantity":2},{"product_id":2,"quantity":1}]}`

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "created",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					PlaceOrder(mock.Anything, mock.MatchedBy(func(req entities.PlaceOrder) bool {
						return req.UserID == 7 && len(req.Items) == 2 && req.Items[0].Quantity == 2
					})).
					Return(placedOrder, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"status":"pending"`,
		},
		{
			name:       "malformed json",
			body:       `{"user_id":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid request body"`,
		},
		{
			name:       "unknown field",
			body:       `{"user_id":7,"payment_method":"cash","items":[{"product_id":1,"quantity":1}],"coupon":"x"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid request body"`,
		},
		{
			name:       "no items",
			body:       `{"user_id":7,"payment_method":"cash","items":[]}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"items":"min"`,
		},
		{
			name:       "zero quantity",
			body:       `{"user_id":7,"payment_method":"cash","items":[{"product_id":1,"quantity":0}]}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"quantity":"required"`,
		},
		{
			name: "insufficient stock",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().PlaceOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, &entities.InsufficientStockError{ProductID: 1, Name: "Adobo", Available: 1, Requested: 2}).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"product_id":1`,
		},
		{
			name: "unknown user",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().PlaceOrder(mock.Anything, mock.Anything).Return(entities.Order{}, entities.ErrUserNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"user not found"`,
		},
		{
			name: "internal error",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().PlaceOrder(mock.Anything, mock.Anything).Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}

			r := chi.NewRouter()
			handler.NewOrderHandler(discardLogger(), svc).Init(r)

			res := serve(t, r, http.MethodPost, "/api/orders", tc.body)

			assert.Equal(t, tc.wantStatus, res.status)
			assert.Contains(t, res.body, tc.wantBody)
		})
	}
}

func TestOrderHandler_GetOrderByID(t *testing.T) {
	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: placedOrder.ID,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderByID(mock.Anything, placedOrder.ID).Return(placedOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"` + placedOrder.ID + `"`,
		},
		{
			name:    "not found",
			orderID: "not-exist",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderByID(mock.Anything, "not-exist").Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:    "internal error",
			orderID: "123",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderByID(mock.Anything, "123").Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			r := chi.NewRouter()
			handler.NewOrderHandler(discardLogger(), svc).Init(r)

			res := serve(t, r, http.MethodGet, "/api/orders/"+tc.orderID, "")

			assert.Equal(t, tc.wantStatus, res.status)
			assert.Contains(t, res.body, tc.wantBody)

			if tc.wantStatus == http.StatusOK {
				var got handler.Order
				require.NoError(t, json.Unmarshal([]byte(res.body), &got))
				assert.True(t, placedOrder.Total.Equal(got.Total))
				require.Len(t, got.Items, 2)
				assert.True(t, decimal.RequireFromString("100").Equal(got.Items[0].Amount))
				assert.True(t, placedOrder.PickupDeadline.Equal(got.PickupDeadline))
			}
		})
	}
}

func TestOrderHandler_UserOrders(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().UserOrders(mock.Anything, int64(7)).Return([]entities.Order{placedOrder}, nil).Once()

		r := chi.NewRouter()
		handler.NewOrderHandler(discardLogger(), svc).Init(r)

		res := serve(t, r, http.MethodGet, "/api/orders/user/7", "")
		assert.Equal(t, http.StatusOK, res.status)

		var got []handler.Order
		require.NoError(t, json.Unmarshal([]byte(res.body), &got))
		assert.Len(t, got, 1)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		svc := mocks.NewMockOrderService(t)
		svc.EXPECT().UserOrders(mock.Anything, int64(8)).Return(nil, nil).Once()

		r := chi.NewRouter()
		handler.NewOrderHandler(discardLogger(), svc).Init(r)

		res := serve(t, r, http.MethodGet, "/api/orders/user/8", "")
		assert.Equal(t, http.StatusOK, res.status)
		assert.JSONEq(t, `[]`, res.body)
	})

	t.Run("bad user id", func(t *testing.T) {
		r := chi.NewRouter()
		handler.NewOrderHandler(discardLogger(), mocks.NewMockOrderService(t)).Init(r)

		res := serve(t, r, http.MethodGet, "/api/orders/user/abc", "")
		assert.Equal(t, http.StatusBadRequest, res.status)
		assert.Contains(t, res.body, `"userID"`)
	})
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	preparing := placedOrder
	preparing.Status = entities.StatusPreparing

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"status":"preparing"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateStatus(mock.Anything, placedOrder.ID, "preparing").Return(preparing, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"preparing"`,
		},
		{
			name:       "missing status",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"status":"required"`,
		},
		{
			name: "unknown status",
			body: `{"status":"cooking"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateStatus(mock.Anything, placedOrder.ID, "cooking").
					Return(entities.Order{}, entities.ErrInvalidStatus).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid order status"`,
		},
		{
			name: "illegal transition",
			body: `{"status":"delivered"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateStatus(mock.Anything, placedOrder.ID, "delivered").
					Return(entities.Order{}, entities.ErrInvalidTransition).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"illegal status transition"`,
		},
		{
			name: "unknown order",
			body: `{"status":"ready"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateStatus(mock.Anything, placedOrder.ID, "ready").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}

			r := chi.NewRouter()
			h := handler.NewOrderHandler(discardLogger(), svc)
			h.InitCanteen(r)
			h.InitAdmin(r)

			res := serve(t, r, http.MethodPut, "/api/canteen/orders/"+placedOrder.ID+"/status", tc.body)

			assert.Equal(t, tc.wantStatus, res.status)
			assert.Contains(t, res.body, tc.wantBody)
		})
	}
}

func TestOrderHandler_Queue(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().ActiveOrders(mock.Anything).Return([]entities.Order{placedOrder}, nil).Once()
	svc.EXPECT().AllOrders(mock.Anything, "ready").Return(nil, nil).Once()
	svc.EXPECT().AllOrders(mock.Anything, "bogus").Return(nil, entities.ErrInvalidStatus).Once()
	svc.EXPECT().GetOrderByID(mock.Anything, placedOrder.ID).Return(placedOrder, nil).Twice()

	r := chi.NewRouter()
	h := handler.NewOrderHandler(discardLogger(), svc)
	h.InitCanteen(r)
	h.InitAdmin(r)

	res := serve(t, r, http.MethodGet, "/api/canteen/orders/active", "")
	assert.Equal(t, http.StatusOK, res.status)
	assert.Contains(t, res.body, placedOrder.ID)

	res = serve(t, r, http.MethodGet, "/api/admin/orders?status=ready", "")
	assert.Equal(t, http.StatusOK, res.status)
	assert.JSONEq(t, `[]`, res.body)

	res = serve(t, r, http.MethodGet, "/api/canteen/orders?status=bogus", "")
	assert.Equal(t, http.StatusBadRequest, res.status)

	for _, prefix := range []string{"/api/canteen/orders/", "/api/admin/orders/"} {
		res = serve(t, r, http.MethodGet, prefix+placedOrder.ID, "")
		assert.Equal(t, http.StatusOK, res.status, prefix)
		assert.Contains(t, res.body, `"id":"`+placedOrder.ID+`"`)
	}
}

func TestCatalogHandler(t *testing.T) {
	adobo := entities.Product{ID: 1, Name: "Adobo", Category: "meals", Price: decimal.RequireFromString("50.00"), Stock: 5}

	testCases := []struct {
		name         string
		method       string
		target       string
		body         string
		mockBehavior func(svc *mocks.MockCatalogService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "list by category",
			method: http.MethodGet,
			target: "/api/products?category=meals",
			mockBehavior: func(svc *mocks.MockCatalogService) {
				svc.EXPECT().ListProducts(mock.Anything, "meals").Return([]entities.Product{adobo}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"name":"Adobo"`,
		},
		{
			name:   "get not found",
			method: http.MethodGet,
			target: "/api/products/9",
			mockBehavior: func(svc *mocks.MockCatalogService) {
				svc.EXPECT().GetProduct(mock.Anything, int64(9)).Return(entities.Product{}, entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"product not found"`,
		},
		{
			name:       "get bad id",
			method:     http.MethodGet,
			target:     "/api/products/-1",
			wantStatus: http.StatusBadRequest,
			wantBody:   `"productID"`,
		},
		{
			name:   "create",
			method: http.MethodPost,
			target: "/api/admin/menu/products",
			body:   `{"name":"Adobo","category":"meals","price":"50.00","stock":5}`,
			mockBehavior: func(svc *mocks.MockCatalogService) {
				svc.EXPECT().CreateProduct(mock.Anything, mock.MatchedBy(func(p entities.Product) bool {
					return p.Name == "Adobo" && p.Price.Equal(decimal.RequireFromString("50")) && p.Stock == 5
				})).Return(adobo, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":1`,
		},
		{
			name:       "create with zero price",
			method:     http.MethodPost,
			target:     "/api/admin/menu/products",
			body:       `{"name":"Adobo","category":"meals","price":"0","stock":5}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"price":"gt"`,
		},
		{
			name:       "create with negative stock",
			method:     http.MethodPost,
			target:     "/api/admin/menu/products",
			body:       `{"name":"Adobo","category":"meals","price":"50","stock":-1}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"stock":"gte"`,
		},
		{
			name:   "update without stock keeps it",
			method: http.MethodPut,
			target: "/api/admin/menu/products/1",
			body:   `{"name":"Adobo","category":"meals","price":"55.00"}`,
			mockBehavior: func(svc *mocks.MockCatalogService) {
				svc.EXPECT().UpdateProduct(mock.Anything, int64(1), mock.MatchedBy(func(u entities.ProductUpdate) bool {
					return u.Stock == nil && u.Price.Equal(decimal.RequireFromString("55"))
				})).Return(adobo, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			target: "/api/admin/menu/products/1",
			mockBehavior: func(svc *mocks.MockCatalogService) {
				svc.EXPECT().DeleteProduct(mock.Anything, int64(1)).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockCatalogService(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}

			r := chi.NewRouter()
			h := handler.NewCatalogHandler(discardLogger(), svc)
			h.Init(r)
			h.InitAdmin(r)

			res := serve(t, r, tc.method, tc.target, tc.body)

			assert.Equal(t, tc.wantStatus, res.status)
			assert.Contains(t, res.body, tc.wantBody)
		})
	}
}

func TestUserHandler(t *testing.T) {
	maria := entities.User{ID: 3, FirstName: "Maria", LastName: "Santos", Email: "maria@example.com", Role: entities.RoleCustomer}

	testCases := []struct {
		name         string
		method       string
		target       string
		body         string
		mockBehavior func(svc *mocks.MockUserService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "get",
			method: http.MethodGet,
			target: "/api/users/3",
			mockBehavior: func(svc *mocks.MockUserService) {
				svc.EXPECT().GetUser(mock.Anything, int64(3)).Return(maria, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"role":"customer"`,
		},
		{
			name:   "profile update cannot change role",
			method: http.MethodPut,
			target: "/api/users/3",
			body:   `{"first_name":"Maria","last_name":"Cruz"}`,
			mockBehavior: func(svc *mocks.MockUserService) {
				svc.EXPECT().UpdateUser(mock.Anything, int64(3), entities.UserUpdate{FirstName: "Maria", LastName: "Cruz"}).
					Return(maria, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "profile update rejects role field",
			method:     http.MethodPut,
			target:     "/api/users/3",
			body:       `{"first_name":"Maria","last_name":"Cruz","role":"admin"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "create",
			method: http.MethodPost,
			target: "/api/admin/users",
			body:   `{"first_name":"Maria","last_name":"Santos","email":"maria@example.com"}`,
			mockBehavior: func(svc *mocks.MockUserService) {
				svc.EXPECT().CreateUser(mock.Anything, mock.MatchedBy(func(u entities.User) bool {
					return u.Email == "maria@example.com" && u.Role == ""
				})).Return(maria, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":3`,
		},
		{
			name:       "create with bad email",
			method:     http.MethodPost,
			target:     "/api/admin/users",
			body:       `{"first_name":"Maria","last_name":"Santos","email":"maria"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"email":"email"`,
		},
		{
			name:       "create with unknown role",
			method:     http.MethodPost,
			target:     "/api/admin/users",
			body:       `{"first_name":"Maria","last_name":"Santos","email":"maria@example.com","role":"chef"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"role":"oneof"`,
		},
		{
			name:   "create with taken email",
			method: http.MethodPost,
			target: "/api/admin/users",
			body:   `{"first_name":"Maria","last_name":"Santos","email":"maria@example.com"}`,
			mockBehavior: func(svc *mocks.MockUserService) {
				svc.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(entities.User{}, entities.ErrEmailTaken).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"email already exists"`,
		},
		{
			name:   "delete user with orders",
			method: http.MethodDelete,
			target: "/api/admin/users/3",
			mockBehavior: func(svc *mocks.MockUserService) {
				svc.EXPECT().DeleteUser(mock.Anything, int64(3)).Return(entities.ErrUserHasOrders).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "list",
			method: http.MethodGet,
			target: "/api/admin/users",
			mockBehavior: func(svc *mocks.MockUserService) {
				svc.EXPECT().ListUsers(mock.Anything).Return([]entities.User{maria}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"email":"maria@example.com"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockUserService(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}

			r := chi.NewRouter()
			h := handler.NewUserHandler(discardLogger(), svc)
			h.Init(r)
			h.InitAdmin(r)

			res := serve(t, r, tc.method, tc.target, tc.body)

			assert.Equal(t, tc.wantStatus, res.status)
			assert.Contains(t, res.body, tc.wantBody)
		})
	}
}

func TestCartHandler(t *testing.T) {
	adobo := entities.Product{ID: 1, Name: "Adobo", Price: decimal.RequireFromString("50.00")}

	testCases := []struct {
		name         string
		method       string
		target       string
		body         string
		mockBehavior func(cart *mocks.MockCartService, favorites *mocks.MockFavoriteService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "get cart",
			method: http.MethodGet,
			target: "/api/cart/7",
			mockBehavior: func(cart *mocks.MockCartService, _ *mocks.MockFavoriteService) {
				cart.EXPECT().Cart(mock.Anything, int64(7)).
					Return([]entities.CartItem{{UserID: 7, Quantity: 2, Product: adobo}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"quantity":2`,
		},
		{
			name:   "add to cart",
			method: http.MethodPost,
			target: "/api/cart/7",
			body:   `{"product_id":1,"quantity":2}`,
			mockBehavior: func(cart *mocks.MockCartService, _ *mocks.MockFavoriteService) {
				cart.EXPECT().AddToCart(mock.Anything, int64(7), int64(1), 2).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "add unknown product",
			method: http.MethodPost,
			target: "/api/cart/7",
			body:   `{"product_id":99,"quantity":1}`,
			mockBehavior: func(cart *mocks.MockCartService, _ *mocks.MockFavoriteService) {
				cart.EXPECT().AddToCart(mock.Anything, int64(7), int64(99), 1).Return(entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "remove line",
			method: http.MethodDelete,
			target: "/api/cart/7/1",
			mockBehavior: func(cart *mocks.MockCartService, _ *mocks.MockFavoriteService) {
				cart.EXPECT().RemoveFromCart(mock.Anything, int64(7), int64(1)).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "clear",
			method: http.MethodDelete,
			target: "/api/cart/7",
			mockBehavior: func(cart *mocks.MockCartService, _ *mocks.MockFavoriteService) {
				cart.EXPECT().ClearCart(mock.Anything, int64(7)).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "favorites",
			method: http.MethodGet,
			target: "/api/favorites/7",
			mockBehavior: func(_ *mocks.MockCartService, favorites *mocks.MockFavoriteService) {
				favorites.EXPECT().Favorites(mock.Anything, int64(7)).
					Return([]entities.Favorite{{UserID: 7, Product: adobo}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"name":"Adobo"`,
		},
		{
			name:   "add favorite",
			method: http.MethodPost,
			target: "/api/favorites/7",
			body:   `{"product_id":1}`,
			mockBehavior: func(_ *mocks.MockCartService, favorites *mocks.MockFavoriteService) {
				favorites.EXPECT().AddFavorite(mock.Anything, int64(7), int64(1)).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "remove missing favorite",
			method: http.MethodDelete,
			target: "/api/favorites/7/1",
			mockBehavior: func(_ *mocks.MockCartService, favorites *mocks.MockFavoriteService) {
				favorites.EXPECT().RemoveFavorite(mock.Anything, int64(7), int64(1)).
					Return(errors.Join(errors.New("favorite"), entities.ErrNotFound)).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cart := mocks.NewMockCartService(t)
			favorites := mocks.NewMockFavoriteService(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(cart, favorites)
			}

			r := chi.NewRouter()
			handler.NewCartHandler(discardLogger(), cart, favorites).Init(r)

			res := serve(t, r, tc.method, tc.target, tc.body)

			assert.Equal(t, tc.wantStatus, res.status)
			assert.Contains(t, res.body, tc.wantBody)
		})
	}
}

func TestStatsHandler(t *testing.T) {
	svc := mocks.NewMockStatsService(t)
	svc.EXPECT().CanteenDashboard(mock.Anything).Return(entities.DashboardStats{
		TotalOrders:  4,
		RevenueToday: decimal.RequireFromString("15.50"),
		TotalRevenue: decimal.RequireFromString("115.50"),
	}, nil).Once()
	svc.EXPECT().AdminDashboard(mock.Anything).Return(entities.DashboardStats{}, errors.New("db error")).Once()

	r := chi.NewRouter()
	h := handler.NewStatsHandler(discardLogger(), svc)
	h.InitCanteen(r)
	h.InitAdmin(r)

	res := serve(t, r, http.MethodGet, "/api/canteen/dashboard/stats", "")
	require.Equal(t, http.StatusOK, res.status)

	var got handler.DashboardStats
	require.NoError(t, json.Unmarshal([]byte(res.body), &got))
	assert.Equal(t, 4, got.TotalOrders)
	assert.True(t, decimal.RequireFromString("15.50").Equal(got.RevenueToday))
	assert.True(t, decimal.RequireFromString("115.50").Equal(got.TotalRevenue))
	assert.NotContains(t, res.body, "total_users")

	res = serve(t, r, http.MethodGet, "/api/admin/dashboard/stats", "")
	assert.Equal(t, http.StatusInternalServerError, res.status)
}

func TestAuthHandler(t *testing.T) {
	session := entities.Session{
		UserID:    3,
		Email:     "staff@example.com",
		Role:      entities.RoleCanteenStaff,
		Token:     "signed",
		ExpiresAt: time.Date(2024, 5, 10, 23, 30, 0, 0, time.UTC),
	}

	testCases := []struct {
		name         string
		method       string
		target       string
		body         string
		mockBehavior func(svc *mocks.MockAuthService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "login",
			method: http.MethodPost,
			target: "/api/auth/login",
			body:   `{"email":"staff@example.com","password":"right-password"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().Login(mock.Anything, "staff@example.com", "right-password").Return(session, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"token":"signed"`,
		},
		{
			name:   "login with wrong password",
			method: http.MethodPost,
			target: "/api/auth/login",
			body:   `{"email":"staff@example.com","password":"nope"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().Login(mock.Anything, "staff@example.com", "nope").
					Return(entities.Session{}, entities.ErrInvalidCredentials).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `"invalid email or password"`,
		},
		{
			name:       "login without email",
			method:     http.MethodPost,
			target:     "/api/auth/login",
			body:       `{"password":"right-password"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"email":"required"`,
		},
		{
			name:   "signup",
			method: http.MethodPost,
			target: "/api/auth/signup",
			body:   `{"first_name":"Ana","last_name":"Cruz","email":"ana@example.com","password":"s3cret-pass"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().Signup(mock.Anything, entities.Signup{
					FirstName: "Ana", LastName: "Cruz", Email: "ana@example.com", Password: "s3cret-pass",
				}).Return(entities.Session{UserID: 5, Role: entities.RoleCustomer, Token: "t"}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"role":"customer"`,
		},
		{
			name:       "signup cannot pick a role",
			method:     http.MethodPost,
			target:     "/api/auth/signup",
			body:       `{"first_name":"Ana","last_name":"Cruz","email":"ana@example.com","password":"s3cret-pass","role":"admin"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid request body"`,
		},
		{
			name:       "signup with short password",
			method:     http.MethodPost,
			target:     "/api/auth/signup",
			body:       `{"first_name":"Ana","last_name":"Cruz","email":"ana@example.com","password":"short"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"password":"min"`,
		},
		{
			name:   "set password",
			method: http.MethodPut,
			target: "/api/admin/passwords/3",
			body:   `{"password":"new-password"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().SetPassword(mock.Anything, int64(3), "new-password").Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "set password for unknown user",
			method: http.MethodPut,
			target: "/api/admin/passwords/99",
			body:   `{"password":"new-password"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().SetPassword(mock.Anything, int64(99), "new-password").Return(entities.ErrUserNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockAuthService(t)
			if tc.mockBehavior != nil {
				tc.mockBehavior(svc)
			}

			r := chi.NewRouter()
			h := handler.NewAuthHandler(discardLogger(), svc)
			h.Init(r)
			h.InitAdmin(r)

			res := serve(t, r, tc.method, tc.target, tc.body)

			assert.Equal(t, tc.wantStatus, res.status)
			assert.Contains(t, res.body, tc.wantBody)
		})
	}
}
