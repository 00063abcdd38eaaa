package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/config"
	"github.com/SergeyBogomolovv/canteen-order-service/internal/entities"
	"github.com/SergeyBogomolovv/canteen-order-service/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"
)

type Guard interface {
	RequireRole(roles ...entities.Role) func(next http.Handler) http.Handler
}

type application struct {
	logger *slog.Logger

	router  chi.Router
	httpSrv *http.Server
	guard   Guard

	consumers []KafkaHandler
	runners   []Runner
	starters  []Starter
	closers   []io.Closer

	cancel context.CancelFunc
	group  *errgroup.Group
}

func New(logger *slog.Logger, cfg config.Config, guard Guard) *application {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics)
	router.Use(chimw.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Cors.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	httpSrv := &http.Server{
		Handler:           router,
		Addr:              net.JoinHostPort(cfg.Http.Host, cfg.Http.Port),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &application{
		logger:  logger.With(slog.String("component", "app")),
		httpSrv: httpSrv,
		router:  router,
		guard:   guard,
	}
}

// Handler exposes the router, mainly for tests.
func (a *application) Handler() http.Handler {
	return a.router
}

type HTTPHandler interface {
	Init(r chi.Router)
}

type CanteenHandler interface {
	InitCanteen(r chi.Router)
}

type AdminHandler interface {
	InitAdmin(r chi.Router)
}

// SetHTTPHandlers mounts public routes, and staff or admin routes behind the role guard
// for handlers that provide them.
func (a *application) SetHTTPHandlers(handlers ...any) {
	for _, h := range handlers {
		if h, ok := h.(HTTPHandler); ok {
			h.Init(a.router)
		}
		if h, ok := h.(CanteenHandler); ok {
			a.router.Group(func(r chi.Router) {
				r.Use(a.guard.RequireRole(entities.RoleCanteenStaff, entities.RoleAdmin))
				h.InitCanteen(r)
			})
		}
		if h, ok := h.(AdminHandler); ok {
			a.router.Group(func(r chi.Router) {
				r.Use(a.guard.RequireRole(entities.RoleAdmin))
				h.InitAdmin(r)
			})
		}
	}
}

type KafkaHandler interface {
	Consume(ctx context.Context)
	Close() error
}

func (a *application) SetConsumers(handlers ...KafkaHandler) {
	a.consumers = handlers
}

// Runner blocks until ctx is done.
type Runner interface {
	Run(ctx context.Context) error
}

func (a *application) SetRunners(runners ...Runner) {
	a.runners = runners
}

// Starter launches its own background work and returns.
type Starter interface {
	Start(ctx context.Context) error
}

func (a *application) SetStarters(starters ...Starter) {
	a.starters = starters
}

// SetClosers registers resources released after everything else has stopped.
func (a *application) SetClosers(closers ...io.Closer) {
	a.closers = closers
}

func (a *application) Start(ctx context.Context) error {
	ctx, a.cancel = context.WithCancel(ctx)
	a.group, ctx = errgroup.WithContext(ctx)

	for _, r := range a.runners {
		a.group.Go(func() error {
			return r.Run(ctx)
		})
	}

	for _, s := range a.starters {
		if err := s.Start(ctx); err != nil {
			a.cancel()
			return err
		}
	}

	for _, c := range a.consumers {
		a.group.Go(func() error {
			c.Consume(ctx)
			return nil
		})
	}

	go a.startServer()

	a.logger.Info("application started")
	return nil
}

func (a *application) startServer() {
	a.logger.Info("starting http server", slog.String("addr", a.httpSrv.Addr))
	if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		a.logger.Error("failed to start http server", slog.Any("error", err))
		os.Exit(1)
	}
}

const gracefulShutdownTimeout = 5 * time.Second

type stopper interface {
	Stop()
}

func (a *application) Stop() error {
	var errs []error

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	if err := a.httpSrv.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}

	for _, s := range a.starters {
		if s, ok := s.(stopper); ok {
			s.Stop()
		}
	}

	if a.cancel != nil {
		a.cancel()
		if err := a.group.Wait(); err != nil {
			errs = append(errs, err)
		}
	}

	for _, c := range a.consumers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}

	a.logger.Info("application stopped")
	return nil
}
