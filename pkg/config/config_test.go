package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/store-management-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "store-management", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8000", cfg.HTTP.Addr())
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "StoreManagement", cfg.Mongo.Database)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9001")
	t.Setenv("MONGO_URI", "mongodb+srv://cluster.example.net")
	t.Setenv("MONGO_DATABASE", "StoreManagementTest")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, 9001, cfg.HTTP.Port)
	assert.Equal(t, "mongodb+srv://cluster.example.net", cfg.Mongo.URI)
	assert.Equal(t, "StoreManagementTest", cfg.Mongo.Database)
}

func TestMongoTimeout(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, float64(10), cfg.Mongo.Timeout().Seconds())
}
