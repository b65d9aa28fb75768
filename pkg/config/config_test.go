package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-web/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "catalogo-web", cfg.App.Name)
	assert.Equal(t, config.DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "./catalogo.db", cfg.DB.Path)
	assert.Equal(t, 24, cfg.Catalog.PageSize)
	assert.Equal(t, "aseo", cfg.Catalog.BucketCategory)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_HOST", "db.local")
	t.Setenv("DB_PASSWORD", "p@ss:word")
	t.Setenv("CATALOG_PAGE_SIZE", "16")
	t.Setenv("HTTP_PORT", "no-numero")
	t.Setenv("HTTP_BASE_URL", "https://tienda.example/")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.DriverPostgres, cfg.DB.Driver)
	assert.Equal(t, 16, cfg.Catalog.PageSize)
	assert.Equal(t, 8080, cfg.HTTP.Port, "un entero inválido cae al valor por defecto")
	assert.Equal(t, "https://tienda.example", cfg.HTTP.BaseURL)
	assert.Contains(t, cfg.DB.ConnectionString(), "db.local:5432")
	assert.Contains(t, cfg.DB.ConnectionString(), "p%40ss%3Aword")
}

func TestLoad_DatabaseURLTienePrioridad(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_URL", "postgres://u:p@h:6543/cat")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@h:6543/cat", cfg.DB.ConnectionString())
}

func TestLoad_DriverInvalido(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_DRIVER", "mysql")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_PageSizeInvalido(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CATALOG_PAGE_SIZE", "0")

	_, err := config.Load()
	assert.Error(t, err)
}
