package config_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/canteen-order-service/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setValidEnv(t *testing.T) {
	t.Setenv("POSTGRES_USER", "canteen")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123")
}

func TestNew_Defaults(t *testing.T) {
	setValidEnv(t)

	conf := config.New()

	require.NoError(t, conf.Validate())
	assert.Equal(t, 15*time.Minute, conf.Orders.PickupWindow)
	assert.Equal(t, time.Minute, conf.Orders.ExpirationInterval)
	assert.Equal(t, "strict", conf.Orders.Transitions)
	assert.Equal(t, "memory", conf.Cache.Driver)
	assert.Equal(t, time.UTC, conf.Orders.Location())
	assert.Equal(t, 12*time.Hour, conf.Auth.TokenTTL)
	assert.Equal(t, 2*time.Second, conf.Kafka.PublishTimeout)
	assert.Empty(t, conf.Auth.AdminEmail)
}

func TestNew_Overrides(t *testing.T) {
	setValidEnv(t)
	t.Setenv("ORDER_PICKUP_WINDOW", "20m")
	t.Setenv("ORDER_EXPIRATION_INTERVAL", "30s")
	t.Setenv("ORDER_TRANSITIONS", "permissive")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("KAFKA_ENABLED", "false")
	t.Setenv("ORDER_TIMEZONE", "Asia/Manila")

	conf := config.New()

	require.NoError(t, conf.Validate())
	assert.Equal(t, 20*time.Minute, conf.Orders.PickupWindow)
	assert.Equal(t, 30*time.Second, conf.Orders.ExpirationInterval)
	assert.Equal(t, "permissive", conf.Orders.Transitions)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, conf.Kafka.Brokers)
	assert.False(t, conf.Kafka.Enabled)
	assert.Equal(t, "Asia/Manila", conf.Orders.Location().String())
}

func TestValidate_Rejects(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown transition policy", env: map[string]string{"ORDER_TRANSITIONS": "loose"}},
		{name: "redis without address", env: map[string]string{"CACHE_DRIVER": "redis"}},
		{name: "short jwt secret", env: map[string]string{"JWT_SECRET": "short"}},
		{name: "unknown env", env: map[string]string{"ENV": "dev"}},
		{name: "bad timezone", env: map[string]string{"ORDER_TIMEZONE": "Mars/Olympus"}},
		{name: "admin email without password", env: map[string]string{"ADMIN_EMAIL": "admin@example.com"}},
		{name: "short admin password", env: map[string]string{"ADMIN_EMAIL": "admin@example.com", "ADMIN_PASSWORD": "short"}},
		{name: "bcrypt cost too low", env: map[string]string{"BCRYPT_COST": "2"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setValidEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			assert.Error(t, config.New().Validate())
		})
	}
}
