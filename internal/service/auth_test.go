package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/entities"
	"github.com/SergeyBogomolovv/canteen-order-service/internal/service"
	mocks "github.com/SergeyBogomolovv/canteen-order-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func authConfig() service.AuthConfig {
	return service.AuthConfig{
		TokenTTL:   12 * time.Hour,
		BcryptCost: bcrypt.MinCost,
		Clock:      func() time.Time { return t0 },
	}
}

func TestAuthService_Signup(t *testing.T) {
	testCases := []struct {
		name         string
		mockBehavior func(users *mocks.MockAuthRepo, tokens *mocks.MockTokenIssuer)
		wantErr      error
	}{
		{
			name: "OK",
			mockBehavior: func(users *mocks.MockAuthRepo, tokens *mocks.MockTokenIssuer) {
				users.EXPECT().CreateUser(mock.Anything, mock.MatchedBy(func(u entities.User) bool {
					return u.Role == entities.RoleCustomer && u.Email == "ana@example.com" && u.CreatedAt.Equal(t0)
				})).Return(entities.User{ID: 5, Email: "ana@example.com", Role: entities.RoleCustomer}, nil).Once()
				users.EXPECT().SetPasswordHash(mock.Anything, int64(5), mock.MatchedBy(func(hash string) bool {
					return bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret-pass")) == nil
				})).Return(nil).Once()
				tokens.EXPECT().IssueToken(int64(5), entities.RoleCustomer, 12*time.Hour).Return("signed", nil).Once()
			},
		},
		{
			name: "email taken",
			mockBehavior: func(users *mocks.MockAuthRepo, _ *mocks.MockTokenIssuer) {
				users.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(entities.User{}, entities.ErrEmailTaken).Once()
			},
			wantErr: entities.ErrEmailTaken,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			users := mocks.NewMockAuthRepo(t)
			tokens := mocks.NewMockTokenIssuer(t)
			tc.mockBehavior(users, tokens)

			svc := service.NewAuthService(discardLogger(), passThroughTx(t), users, tokens, authConfig())

			session, err := svc.Signup(context.Background(), entities.Signup{
				FirstName: "Ana",
				LastName:  "Cruz",
				Email:     "ana@example.com",
				Password:  "s3cret-pass",
			})
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.Session{
				UserID:    5,
				Email:     "ana@example.com",
				Role:      entities.RoleCustomer,
				Token:     "signed",
				ExpiresAt: t0.Add(12 * time.Hour),
			}, session)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	staff := entities.Credentials{
		UserID:       3,
		Email:        "staff@example.com",
		Role:         entities.RoleCanteenStaff,
		PasswordHash: hashOf(t, "right-password"),
	}

	testCases := []struct {
		name         string
		password     string
		mockBehavior func(users *mocks.MockAuthRepo, tokens *mocks.MockTokenIssuer)
		wantErr      error
	}{
		{
			name:     "OK",
			password: "right-password",
			mockBehavior: func(users *mocks.MockAuthRepo, tokens *mocks.MockTokenIssuer) {
				users.EXPECT().Credentials(mock.Anything, "staff@example.com").Return(staff, nil).Once()
				tokens.EXPECT().IssueToken(int64(3), entities.RoleCanteenStaff, 12*time.Hour).Return("signed", nil).Once()
			},
		},
		{
			name:     "wrong password",
			password: "wrong-password",
			mockBehavior: func(users *mocks.MockAuthRepo, _ *mocks.MockTokenIssuer) {
				users.EXPECT().Credentials(mock.Anything, "staff@example.com").Return(staff, nil).Once()
			},
			wantErr: entities.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			password: "right-password",
			mockBehavior: func(users *mocks.MockAuthRepo, _ *mocks.MockTokenIssuer) {
				users.EXPECT().Credentials(mock.Anything, "staff@example.com").
					Return(entities.Credentials{}, entities.ErrInvalidCredentials).Once()
			},
			wantErr: entities.ErrInvalidCredentials,
		},
		{
			name:     "signing fails",
			password: "right-password",
			mockBehavior: func(users *mocks.MockAuthRepo, tokens *mocks.MockTokenIssuer) {
				users.EXPECT().Credentials(mock.Anything, "staff@example.com").Return(staff, nil).Once()
				tokens.EXPECT().IssueToken(mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("bad key")).Once()
			},
			wantErr: errors.New("bad key"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			users := mocks.NewMockAuthRepo(t)
			tokens := mocks.NewMockTokenIssuer(t)
			tc.mockBehavior(users, tokens)

			svc := service.NewAuthService(discardLogger(), passThroughTx(t), users, tokens, authConfig())

			session, err := svc.Login(context.Background(), "staff@example.com", tc.password)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "signed", session.Token)
			assert.Equal(t, entities.RoleCanteenStaff, session.Role)
		})
	}
}

func TestAuthService_SetPassword(t *testing.T) {
	users := mocks.NewMockAuthRepo(t)
	users.EXPECT().SetPasswordHash(mock.Anything, int64(3), mock.Anything).Return(nil).Once()
	users.EXPECT().SetPasswordHash(mock.Anything, int64(99), mock.Anything).Return(entities.ErrUserNotFound).Once()

	svc := service.NewAuthService(discardLogger(), passThroughTx(t), users, mocks.NewMockTokenIssuer(t), authConfig())

	require.NoError(t, svc.SetPassword(context.Background(), 3, "new-password"))
	assert.ErrorIs(t, svc.SetPassword(context.Background(), 99, "new-password"), entities.ErrNotFound)
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	testCases := []struct {
		name         string
		mockBehavior func(users *mocks.MockAuthRepo)
	}{
		{
			name: "already able to log in",
			mockBehavior: func(users *mocks.MockAuthRepo) {
				users.EXPECT().Credentials(mock.Anything, "admin@example.com").
					Return(entities.Credentials{UserID: 1, Role: entities.RoleAdmin}, nil).Once()
			},
		},
		{
			name: "created",
			mockBehavior: func(users *mocks.MockAuthRepo) {
				users.EXPECT().Credentials(mock.Anything, "admin@example.com").
					Return(entities.Credentials{}, entities.ErrInvalidCredentials).Once()
				users.EXPECT().CreateUser(mock.Anything, mock.MatchedBy(func(u entities.User) bool {
					return u.Role == entities.RoleAdmin && u.Email == "admin@example.com"
				})).Return(entities.User{ID: 1, Role: entities.RoleAdmin}, nil).Once()
				users.EXPECT().SetPasswordHash(mock.Anything, int64(1), mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "email used by an account without password",
			mockBehavior: func(users *mocks.MockAuthRepo) {
				users.EXPECT().Credentials(mock.Anything, "admin@example.com").
					Return(entities.Credentials{}, entities.ErrInvalidCredentials).Once()
				users.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(entities.User{}, entities.ErrEmailTaken).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			users := mocks.NewMockAuthRepo(t)
			tc.mockBehavior(users)

			svc := service.NewAuthService(discardLogger(), passThroughTx(t), users, mocks.NewMockTokenIssuer(t), authConfig())

			assert.NoError(t, svc.EnsureAdmin(context.Background(), "admin@example.com", "bootstrap-pass"))
		})
	}
}
