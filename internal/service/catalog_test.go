package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/entities"
	"github.com/SergeyBogomolovv/canteen-order-service/internal/service"
	mocks "github.com/SergeyBogomolovv/canteen-order-service/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_CreateProduct(t *testing.T) {
	products := mocks.NewMockProductRepo(t)
	products.EXPECT().CreateProduct(mock.Anything, mock.MatchedBy(func(p entities.Product) bool {
		return p.CreatedAt.Equal(t0) && p.UpdatedAt.Equal(t0)
	})).RunAndReturn(func(_ context.Context, p entities.Product) (entities.Product, error) {
		p.ID = 4
		return p, nil
	}).Once()

	svc := service.NewCatalogService(discardLogger(), products, func() time.Time { return t0 })

	created, err := svc.CreateProduct(context.Background(), entities.Product{
		Name:     "Turon",
		Category: "snacks",
		Price:    decimal.RequireFromString("12.00"),
		Stock:    20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), created.ID)
}

func TestCatalogService_UpdateAndDelete(t *testing.T) {
	stock := 3
	upd := entities.ProductUpdate{Name: "Turon", Category: "snacks", Price: decimal.RequireFromString("15.00"), Stock: &stock}

	products := mocks.NewMockProductRepo(t)
	products.EXPECT().UpdateProduct(mock.Anything, int64(4), upd, t0).Return(entities.Product{ID: 4, Stock: 3}, nil).Once()
	products.EXPECT().DeleteProduct(mock.Anything, int64(5)).Return(entities.ErrProductNotFound).Once()

	svc := service.NewCatalogService(discardLogger(), products, func() time.Time { return t0 })

	updated, err := svc.UpdateProduct(context.Background(), 4, upd)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Stock)

	err = svc.DeleteProduct(context.Background(), 5)
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestUserService_CreateUser(t *testing.T) {
	testCases := []struct {
		name     string
		user     entities.User
		mock     func(users *mocks.MockUserRepo)
		wantErr  error
		wantRole entities.Role
	}{
		{
			name: "defaults to customer",
			user: entities.User{FirstName: "Ana", LastName: "Cruz", Email: "ana@example.com"},
			mock: func(users *mocks.MockUserRepo) {
				users.EXPECT().CreateUser(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, u entities.User) (entities.User, error) {
						u.ID = 1
						return u, nil
					}).Once()
			},
			wantRole: entities.RoleCustomer,
		},
		{
			name:    "unknown role",
			user:    entities.User{Email: "x@example.com", Role: "chef"},
			wantErr: entities.ErrInvalidRole,
		},
		{
			name: "email taken",
			user: entities.User{Email: "ana@example.com", Role: entities.RoleCanteenStaff},
			mock: func(users *mocks.MockUserRepo) {
				users.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(entities.User{}, entities.ErrEmailTaken).Once()
			},
			wantErr: entities.ErrEmailTaken,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			users := mocks.NewMockUserRepo(t)
			if tc.mock != nil {
				tc.mock(users)
			}
			svc := service.NewUserService(discardLogger(), users, func() time.Time { return t0 })

			got, err := svc.CreateUser(context.Background(), tc.user)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantRole, got.Role)
			assert.Equal(t, t0, got.CreatedAt)
		})
	}
}

func TestUserService_UpdateUser_RejectsUnknownRole(t *testing.T) {
	svc := service.NewUserService(discardLogger(), mocks.NewMockUserRepo(t), nil)

	_, err := svc.UpdateUser(context.Background(), 1, entities.UserUpdate{FirstName: "Ana", Role: "root"})
	assert.ErrorIs(t, err, entities.ErrInvalidRole)
}

func TestCartService_AddToCart(t *testing.T) {
	testCases := []struct {
		name     string
		quantity int
		mock     func(cart *mocks.MockCartRepo, products *mocks.MockProductRepo)
		wantErr  error
	}{
		{
			name:     "OK",
			quantity: 2,
			mock: func(cart *mocks.MockCartRepo, products *mocks.MockProductRepo) {
				products.EXPECT().GetProduct(mock.Anything, int64(3)).Return(adobo(5), nil).Once()
				cart.EXPECT().AddCartItem(mock.Anything, int64(1), int64(3), 2, t0).Return(nil).Once()
			},
		},
		{
			name:     "zero quantity",
			quantity: 0,
			wantErr:  entities.ErrInvalidQuantity,
		},
		{
			name:     "unknown product",
			quantity: 1,
			mock: func(_ *mocks.MockCartRepo, products *mocks.MockProductRepo) {
				products.EXPECT().GetProduct(mock.Anything, int64(3)).Return(entities.Product{}, entities.ErrProductNotFound).Once()
			},
			wantErr: entities.ErrProductNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cart := mocks.NewMockCartRepo(t)
			products := mocks.NewMockProductRepo(t)
			if tc.mock != nil {
				tc.mock(cart, products)
			}
			svc := service.NewCartService(discardLogger(), cart, products, func() time.Time { return t0 })

			err := svc.AddToCart(context.Background(), 1, 3, tc.quantity)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFavoriteService(t *testing.T) {
	favorites := mocks.NewMockFavoriteRepo(t)
	products := mocks.NewMockProductRepo(t)

	products.EXPECT().GetProduct(mock.Anything, int64(2)).Return(juice(1), nil).Twice()
	favorites.EXPECT().AddFavorite(mock.Anything, int64(1), int64(2), t0).Return(nil).Twice()
	favorites.EXPECT().Favorites(mock.Anything, int64(1)).
		Return([]entities.Favorite{{UserID: 1, Product: juice(1), CreatedAt: t0}}, nil).Once()
	favorites.EXPECT().RemoveFavorite(mock.Anything, int64(1), int64(9)).Return(entities.ErrNotFound).Once()

	svc := service.NewFavoriteService(discardLogger(), favorites, products, func() time.Time { return t0 })
	ctx := context.Background()

	require.NoError(t, svc.AddFavorite(ctx, 1, 2))
	require.NoError(t, svc.AddFavorite(ctx, 1, 2))

	list, err := svc.Favorites(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	assert.ErrorIs(t, svc.RemoveFavorite(ctx, 1, 9), entities.ErrNotFound)
}
