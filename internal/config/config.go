package config

import (
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Cache Cache `validate:"required"`

	Orders Orders `validate:"required"`

	Auth Auth `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	Enabled bool
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`

	// OrdersTopic carries place-order commands, EventsTopic receives order lifecycle events.
	OrdersTopic string `validate:"required"`
	EventsTopic string `validate:"required"`

	ReaderMaxWait  time.Duration `validate:"gte=0"`
	BatchTimeout   time.Duration `validate:"gte=0"`
	PublishTimeout time.Duration `validate:"gt=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`

	ConnectAttempts int `validate:"gte=1"`
	Migrate         bool
}

type Cache struct {
	Driver   string        `validate:"required,oneof=memory redis"`
	Capacity int           `validate:"gt=0"`
	TTL      time.Duration `validate:"gt=0"`

	RedisAddr     string `validate:"required_if=Driver redis"`
	RedisPassword string
	RedisDB       int `validate:"gte=0"`
}

type Orders struct {
	// PickupWindow is added to the creation time to get the pickup deadline.
	PickupWindow       time.Duration `validate:"gt=0"`
	ExpirationInterval time.Duration `validate:"gt=0"`
	Transitions        string        `validate:"required,oneof=strict permissive"`
	Timezone           string        `validate:"required,timezone"`
}

type Auth struct {
	JWTSecret  string        `validate:"required,min=16"`
	TokenTTL   time.Duration `validate:"gt=0"`
	BcryptCost int           `validate:"gte=4,lte=31"`

	// AdminEmail, when set, names the admin account created on startup.
	AdminEmail    string `validate:"omitempty,email"`
	AdminPassword string `validate:"required_with=AdminEmail,omitempty,min=8,max=72"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			Enabled:     envBool("KAFKA_ENABLED", true),
			GroupID:     env("KAFKA_GROUP_ID", "canteen-order-service"),
			OrdersTopic: env("KAFKA_ORDERS_TOPIC", "orders.place"),
			EventsTopic: env("KAFKA_EVENTS_TOPIC", "order-events"),
			Brokers:     strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait:  envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:   envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
			PublishTimeout: envDuration("KAFKA_PUBLISH_TIMEOUT", 2*time.Second),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "canteen"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),

			ConnectAttempts: envInt("POSTGRES_CONNECT_ATTEMPTS", 5),
			Migrate:         envBool("POSTGRES_MIGRATE", true),
		},

		Cache: Cache{
			Driver:   env("CACHE_DRIVER", "memory"),
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 5*time.Minute),

			RedisAddr:     env("REDIS_ADDR", ""),
			RedisPassword: env("REDIS_PASSWORD", ""),
			RedisDB:       envInt("REDIS_DB", 0),
		},

		Orders: Orders{
			PickupWindow:       envDuration("ORDER_PICKUP_WINDOW", 15*time.Minute),
			ExpirationInterval: envDuration("ORDER_EXPIRATION_INTERVAL", time.Minute),
			Transitions:        env("ORDER_TRANSITIONS", "strict"),
			Timezone:           env("ORDER_TIMEZONE", "UTC"),
		},

		Auth: Auth{
			JWTSecret:  env("JWT_SECRET", ""),
			TokenTTL:   envDuration("JWT_TTL", 12*time.Hour),
			BcryptCost: envInt("BCRYPT_COST", 10),

			AdminEmail:    env("ADMIN_EMAIL", ""),
			AdminPassword: env("ADMIN_PASSWORD", ""),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// Location resolves Orders.Timezone, falling back to UTC.
func (o Orders) Location() *time.Location {
	loc, err := time.LoadLocation(o.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
