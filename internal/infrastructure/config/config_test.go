package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "salonsuite", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "salonsuite", cfg.Database.DBName)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)

	assert.Equal(t, "salonsuite", cfg.JWT.Issuer)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TokenExpiration)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SALON_APP_PORT", "9090")
	t.Setenv("SALON_DATABASE_PASSWORD", "s3cret")
	t.Setenv("SALON_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_ProductionRequiresJWTSecret(t *testing.T) {
	t.Setenv("SALON_APP_ENV", "production")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("SALON_JWT_SECRET", "production-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production-secret", cfg.JWT.Secret)
}

func TestDatabaseConfig_ConnectionStrings(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "salon",
		Password: "pw",
		DBName:   "salonsuite",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=salon password=pw dbname=salonsuite sslmode=require",
		cfg.DSN())
	assert.Equal(t,
		"postgres://salon:pw@db.internal:5433/salonsuite?sslmode=require",
		cfg.URL())
}
