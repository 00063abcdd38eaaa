package app_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/app"
	"github.com/SergeyBogomolovv/canteen-order-service/internal/config"
	"github.com/SergeyBogomolovv/canteen-order-service/internal/entities"
	"github.com/SergeyBogomolovv/canteen-order-service/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() config.Config {
	cfg := config.New()
	cfg.Http.Host = "127.0.0.1"
	cfg.Http.Port = "0"
	return cfg
}

type routes struct{}

func ok(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func (routes) Init(r chi.Router)        { r.Get("/api/products", ok) }
func (routes) InitCanteen(r chi.Router) { r.Get("/api/canteen/orders", ok) }
func (routes) InitAdmin(r chi.Router)   { r.Get("/api/admin/users", ok) }

func TestApplication_RouteGuards(t *testing.T) {
	auth := middleware.NewAuth(discardLogger(), "test-secret-0123456789")
	a := app.New(discardLogger(), testConfig(), auth)
	a.SetHTTPHandlers(routes{})

	token := func(role entities.Role) string {
		tok, err := auth.IssueToken(1, role, time.Hour)
		require.NoError(t, err)
		return tok
	}

	testCases := []struct {
		name       string
		path       string
		role       entities.Role
		wantStatus int
	}{
		{name: "health", path: "/health", wantStatus: http.StatusOK},
		{name: "public route", path: "/api/products", wantStatus: http.StatusOK},
		{name: "canteen without token", path: "/api/canteen/orders", wantStatus: http.StatusUnauthorized},
		{name: "canteen as customer", path: "/api/canteen/orders", role: entities.RoleCustomer, wantStatus: http.StatusForbidden},
		{name: "canteen as staff", path: "/api/canteen/orders", role: entities.RoleCanteenStaff, wantStatus: http.StatusOK},
		{name: "canteen as admin", path: "/api/canteen/orders", role: entities.RoleAdmin, wantStatus: http.StatusOK},
		{name: "admin as staff", path: "/api/admin/users", role: entities.RoleCanteenStaff, wantStatus: http.StatusForbidden},
		{name: "admin as admin", path: "/api/admin/users", role: entities.RoleAdmin, wantStatus: http.StatusOK},
		{name: "metrics", path: "/metrics", wantStatus: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.role != "" {
				req.Header.Set("Authorization", "Bearer "+token(tc.role))
			}
			rec := httptest.NewRecorder()

			a.Handler().ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

type fakeRunner struct{ stopped atomic.Bool }

func (r *fakeRunner) Run(ctx context.Context) error {
	<-ctx.Done()
	r.stopped.Store(true)
	return nil
}

type fakeStarter struct {
	started atomic.Bool
	stopped atomic.Bool
	err     error
}

func (s *fakeStarter) Start(context.Context) error {
	s.started.Store(true)
	return s.err
}

func (s *fakeStarter) Stop() { s.stopped.Store(true) }

type fakeConsumer struct {
	consumed atomic.Bool
	closed   atomic.Bool
}

func (c *fakeConsumer) Consume(ctx context.Context) {
	c.consumed.Store(true)
	<-ctx.Done()
}

func (c *fakeConsumer) Close() error {
	c.closed.Store(true)
	return nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestApplication_Lifecycle(t *testing.T) {
	a := app.New(discardLogger(), testConfig(), middleware.NewAuth(discardLogger(), "test-secret-0123456789"))

	runner := &fakeRunner{}
	starter := &fakeStarter{}
	consumer := &fakeConsumer{}
	closeErr := errors.New("close failed")

	a.SetRunners(runner)
	a.SetStarters(starter)
	a.SetConsumers(consumer)
	a.SetClosers(closerFunc(func() error { return closeErr }))

	require.NoError(t, a.Start(context.Background()))
	assert.True(t, starter.started.Load())
	require.Eventually(t, consumer.consumed.Load, time.Second, 5*time.Millisecond)

	err := a.Stop()
	assert.ErrorIs(t, err, closeErr)
	assert.True(t, runner.stopped.Load())
	assert.True(t, starter.stopped.Load())
	assert.True(t, consumer.closed.Load())
}

func TestApplication_StartFails(t *testing.T) {
	a := app.New(discardLogger(), testConfig(), middleware.NewAuth(discardLogger(), "test-secret-0123456789"))
	a.SetStarters(&fakeStarter{err: errors.New("warm-up failed")})

	assert.ErrorContains(t, a.Start(context.Background()), "warm-up failed")
}
