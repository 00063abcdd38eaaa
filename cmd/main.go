package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/canteen-order-service/docs"
	"github.com/SergeyBogomolovv/canteen-order-service/internal/app"
	"github.com/SergeyBogomolovv/canteen-order-service/internal/config"
	"github.com/SergeyBogomolovv/canteen-order-service/internal/entities"
	"github.com/SergeyBogomolovv/canteen-order-service/internal/events"
	"github.com/SergeyBogomolovv/canteen-order-service/internal/expiry"
	"github.com/SergeyBogomolovv/canteen-order-service/internal/handler"
	"github.com/SergeyBogomolovv/canteen-order-service/internal/middleware"
	"github.com/SergeyBogomolovv/canteen-order-service/internal/postgres"
	"github.com/SergeyBogomolovv/canteen-order-service/internal/repo"
	"github.com/SergeyBogomolovv/canteen-order-service/internal/service"
	"github.com/SergeyBogomolovv/canteen-order-service/internal/websocket"
	"github.com/SergeyBogomolovv/canteen-order-service/pkg/cache"
	"github.com/SergeyBogomolovv/canteen-order-service/pkg/trm"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

// @title                       Canteen Order Service API
// @version                     1.0
// @description                 Menu, cart and order lifecycle for a school canteen.
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	if conf.Postgres.Migrate {
		panicIfErr("failed to migrate db", postgres.Migrate(ctx, db))
		logger.Info("migrations applied")
	}

	txManager := trm.NewManager(db)
	orderRepo := repo.NewOrderRepo(db)
	productRepo := repo.NewProductRepo(db)
	userRepo := repo.NewUserRepo(db)
	cartRepo := repo.NewCartRepo(db)
	favoriteRepo := repo.NewFavoriteRepo(db)

	var closers []io.Closer
	orderCache := newCache(logger, conf.Cache)
	if c, ok := orderCache.(io.Closer); ok {
		closers = append(closers, c)
	}

	hub := websocket.NewHub(logger)
	sinks := []events.Sink{hub}
	if conf.Kafka.Enabled {
		publisher := events.NewKafkaPublisher(logger, conf.Kafka)
		sinks = append(sinks, publisher)
		closers = append(closers, publisher)
	}
	fanout := events.NewFanout(logger, sinks...)

	orderService := service.NewOrderService(logger, txManager, orderRepo, productRepo, userRepo, orderCache, fanout,
		service.OrderConfig{
			PickupWindow: conf.Orders.PickupWindow,
			Transitions:  entities.TransitionPolicy(conf.Orders.Transitions),
		})
	catalogService := service.NewCatalogService(logger, productRepo, nil)
	userService := service.NewUserService(logger, userRepo, nil)
	cartService := service.NewCartService(logger, cartRepo, productRepo, nil)
	favoriteService := service.NewFavoriteService(logger, favoriteRepo, productRepo, nil)
	statsService := service.NewStatsService(logger, orderRepo, userRepo, productRepo, conf.Orders.Location(), nil)

	auth := middleware.NewAuth(logger, conf.Auth.JWTSecret)
	authService := service.NewAuthService(logger, txManager, userRepo, auth, service.AuthConfig{
		TokenTTL:   conf.Auth.TokenTTL,
		BcryptCost: conf.Auth.BcryptCost,
	})
	if conf.Auth.AdminEmail != "" {
		panicIfErr("failed to bootstrap admin", authService.EnsureAdmin(ctx, conf.Auth.AdminEmail, conf.Auth.AdminPassword))
	}
	handler.RegisterMetrics(prometheus.DefaultRegisterer)

	app := app.New(logger, conf, auth)

	app.SetHTTPHandlers(
		handler.NewOrderHandler(logger, orderService),
		handler.NewCatalogHandler(logger, catalogService),
		handler.NewUserHandler(logger, userService),
		handler.NewCartHandler(logger, cartService, favoriteService),
		handler.NewStatsHandler(logger, statsService),
		handler.NewAuthHandler(logger, authService),
		websocket.NewHandler(logger, hub, orderService, conf.Cors.AllowedOrigins),
	)
	if conf.Kafka.Enabled {
		app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, orderService))
	}
	app.SetRunners(hub)
	app.SetStarters(
		orderCache,
		cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity},
		expiry.NewSweeper(logger, orderService, conf.Orders.ExpirationInterval),
	)
	app.SetClosers(closers...)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type startableCache interface {
	service.Cache
	app.Starter
}

func newCache(logger *slog.Logger, cfg config.Cache) startableCache {
	switch cfg.Driver {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return cache.NewRedisCache(logger, client, "canteen:order:", cfg.TTL)
	default:
		return cache.NewLRUCache(cfg.Capacity, cfg.TTL)
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
