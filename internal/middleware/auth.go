package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/entities"
	"github.com/SergeyBogomolovv/canteen-order-service/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
)

type claimsKey struct{}

type Claims struct {
	UserID int64         `json:"user_id"`
	Role   entities.Role `json:"role"`
	jwt.RegisteredClaims
}

// Auth verifies HS256 bearer tokens. Browsers cannot set headers on websocket
// handshakes, so the token is also accepted from the "token" query parameter.
type Auth struct {
	logger *slog.Logger
	secret []byte
}

func NewAuth(logger *slog.Logger, secret string) *Auth {
	return &Auth{
		logger: logger.With(slog.String("middleware", "auth")),
		secret: []byte(secret),
	}
}

// IssueToken signs a token for the given user, valid for ttl.
func (a *Auth) IssueToken(userID int64, role entities.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (a *Auth) parse(raw string) (*Claims, error) {
	claims := new(Claims)
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if _, err := entities.ParseRole(string(claims.Role)); err != nil {
		return nil, err
	}
	return claims, nil
}

// RequireRole rejects requests without a valid token (401) or whose role is not listed (403).
func (a *Auth) RequireRole(roles ...entities.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				utils.WriteError(w, "missing token", http.StatusUnauthorized)
				return
			}

			claims, err := a.parse(raw)
			if err != nil {
				a.logger.Debug("rejected token", slog.Any("error", err))
				msg := "invalid token"
				if errors.Is(err, jwt.ErrTokenExpired) {
					msg = "token expired"
				}
				utils.WriteError(w, msg, http.StatusUnauthorized)
				return
			}

			if !slices.Contains(roles, claims.Role) {
				utils.WriteError(w, "insufficient role", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
		})
	}
}

func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*Claims)
	return claims, ok
}

func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	return r.URL.Query().Get("token")
}
