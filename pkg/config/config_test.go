package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Abastecimiento-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 365, cfg.Projection.DefaultHorizon)
	assert.Equal(t, 4, cfg.Projection.OverviewWorkers)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.DB.AutoMigrate)
	assert.Equal(t, 10, cfg.DB.MaxConns)
	assert.Equal(t, 1, cfg.DB.MinConns)
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("PROJECTION_DEFAULT_HORIZON", "30")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Projection.DefaultHorizon)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_HorizonteInvalido(t *testing.T) {
	t.Setenv("PROJECTION_DEFAULT_HORIZON", "731")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_PoolInvalido(t *testing.T) {
	t.Setenv("DB_MIN_CONNS", "8")
	t.Setenv("DB_MAX_CONNS", "4")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "planner", Password: "p@ss", DBName: "abastecimiento", SSLMode: "disable"}
	assert.Equal(t, "postgres://planner:p%40ss@db:5432/abastecimiento?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
