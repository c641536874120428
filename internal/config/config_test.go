package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("PORT", "")
	t.Setenv("DB_MAX_OPEN_CONNS", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("STOREFRONT_API_BASE_URL", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("RATE_LIMIT_RPS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "http://localhost:3001", cfg.Storefront.APIBaseURL)
	assert.False(t, cfg.RateLimit.Enabled())
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "8088")
	t.Setenv("DB_MAX_OPEN_CONNS", "4")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://shop.example, https://admin.example ,")
	t.Setenv("STOREFRONT_API_BASE_URL", "https://api.example/")
	t.Setenv("DB_SEED", "TRUE")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8088", cfg.Server.Port)
	assert.Equal(t, 4, cfg.Database.MaxOpenConns)
	assert.Equal(t, []string{"https://shop.example", "https://admin.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "https://api.example", cfg.Storefront.APIBaseURL)
	assert.True(t, cfg.Database.Seed)
}

func TestPortFallsBackToPORT(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("PORT", "9000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Environment: "development",
			Server:      ServerConfig{Port: "3001"},
			Database:    DatabaseConfig{MaxOpenConns: 10},
			RateLimit:   RateLimitConfig{RequestsPerSecond: 1, Burst: 1},
		}
	}

	assert.NoError(t, base().Validate())

	cfg := base()
	cfg.Server.Port = "abc"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Database.MaxOpenConns = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Environment = "production"
	assert.Error(t, cfg.Validate(), "production requires a database password")

	cfg.Database.Password = "secret"
	assert.NoError(t, cfg.Validate())

	cfg = base()
	cfg.RateLimit.Burst = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.RateLimit = RateLimitConfig{}
	assert.NoError(t, cfg.Validate(), "a zero rate disables the limiter")

	cfg.RateLimit.RequestsPerSecond = -1
	assert.Error(t, cfg.Validate())
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: "5432", User: "shop", Password: "pw", Database: "storefront", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=shop password=pw dbname=storefront sslmode=disable", d.DSN())
}

func TestPoolHelpers(t *testing.T) {
	d := DatabaseConfig{MaxOpenConns: 10, MaxIdleConns: 25, MaxLifetime: 300}
	assert.Equal(t, 10, d.IdleConns())
	assert.Equal(t, "5m0s", d.ConnMaxLifetime().String())

	d.MaxLifetime = 0
	assert.Zero(t, d.ConnMaxLifetime())
}
