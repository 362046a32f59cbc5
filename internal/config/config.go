package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/currency"
)

const (
	StorageBolt     = "bolt"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Storage     string `env:"STOREFRONT_STORAGE" envDefault:"bolt"`
	StoragePath string `env:"STOREFRONT_STORAGE_PATH" envDefault:"storefront.db"`
	DatabaseURL string `env:"STOREFRONT_DATABASE_URL"`
	CartKey     string `env:"STOREFRONT_CART_KEY" envDefault:"shopping-cart"`
	CatalogPath string `env:"STOREFRONT_CATALOG_PATH" envDefault:"products.json"`
	LogLevel    string `env:"STOREFRONT_LOG_LEVEL" envDefault:"info"`
	CheckoutURL string `env:"STOREFRONT_CHECKOUT_URL" envDefault:"https://www.amazon.com/gp/aws/cart/add.html"`
	Currency    string `env:"STOREFRONT_CURRENCY" envDefault:"USD"`
}

// Load reads configuration from environment variables and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.Storage = strings.ToLower(strings.TrimSpace(cfg.Storage))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Storage {
	case StorageBolt, StorageSQLite:
		if strings.TrimSpace(c.StoragePath) == "" {
			return fmt.Errorf("STOREFRONT_STORAGE_PATH is required for %s storage", c.Storage)
		}
	case StoragePostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("STOREFRONT_DATABASE_URL is required for postgres storage")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("storage[%s] is not supported", c.Storage)
	}

	if strings.TrimSpace(c.CartKey) == "" {
		return fmt.Errorf("STOREFRONT_CART_KEY is empty")
	}

	if _, err := c.CurrencyUnit(); err != nil {
		return err
	}

	return nil
}

func (c Config) CurrencyUnit() (currency.Unit, error) {
	unit, err := currency.ParseISO(c.Currency)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("currency[%s] is not valid: %w", c.Currency, err)
	}
	return unit, nil
}
