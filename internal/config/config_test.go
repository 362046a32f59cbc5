package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"STOREFRONT_STORAGE", "STOREFRONT_STORAGE_PATH", "STOREFRONT_DATABASE_URL", "STOREFRONT_CART_KEY",
		"STOREFRONT_CATALOG_PATH", "STOREFRONT_LOG_LEVEL", "STOREFRONT_CHECKOUT_URL", "STOREFRONT_CURRENCY",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageBolt, cfg.Storage)
	assert.Equal(t, "storefront.db", cfg.StoragePath)
	assert.Equal(t, "shopping-cart", cfg.CartKey)
	assert.Equal(t, "products.json", cfg.CatalogPath)
	assert.Equal(t, "info", cfg.LogLevel)

	unit, err := cfg.CurrencyUnit()
	require.NoError(t, err)
	assert.Equal(t, currency.USD, unit)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STOREFRONT_STORAGE", " Postgres ")
	t.Setenv("STOREFRONT_DATABASE_URL", "postgres://localhost:5432/storefront")
	t.Setenv("STOREFRONT_CART_KEY", "cart-v2")
	t.Setenv("STOREFRONT_CURRENCY", "EUR")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, "cart-v2", cfg.CartKey)
	assert.Equal(t, "EUR", cfg.Currency)
}

func TestValidate(t *testing.T) {
	valid := Config{Storage: StorageMemory, CartKey: "shopping-cart", Currency: "USD"}

	tests := []struct {
		name      string
		mutate    func(*Config)
		wantError string
	}{
		{
			name:   "memory storage: ok",
			mutate: func(*Config) {},
		},
		{
			name:      "unknown storage: error",
			mutate:    func(c *Config) { c.Storage = "redis" },
			wantError: "storage[redis] is not supported",
		},
		{
			name:      "postgres without url: error",
			mutate:    func(c *Config) { c.Storage = StoragePostgres },
			wantError: "STOREFRONT_DATABASE_URL is required for postgres storage",
		},
		{
			name:      "bolt without path: error",
			mutate:    func(c *Config) { c.Storage = StorageBolt },
			wantError: "STOREFRONT_STORAGE_PATH is required for bolt storage",
		},
		{
			name:      "empty cart key: error",
			mutate:    func(c *Config) { c.CartKey = " " },
			wantError: "STOREFRONT_CART_KEY is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}

	cfg := valid
	cfg.Currency = "dollars"
	require.Error(t, cfg.Validate())
}
