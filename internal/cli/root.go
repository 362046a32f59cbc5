// Package cli wires the storefront core into a command line front end.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nikolayk812/storefront/internal/cart"
	"github.com/nikolayk812/storefront/internal/catalog"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/logger"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/spf13/cobra"
)

// RootOptions holds state shared by all commands.
type RootOptions struct {
	// Storage replaces the configured backend when set.
	Storage port.SlotStorage

	cfg          config.Config
	log          *slog.Logger
	closeStorage func() error
	products     []domain.Product
}

// NewRootCommand creates the storefront root command. Its pre-run opens
// the cart store and attaches it to the command context.
func NewRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "storefront",
		Short:         "Shopping cart and catalog search",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.AddCommand(
		NewCartCommand(opts),
		NewSearchCommand(opts),
		NewCheckoutCommand(opts),
	)

	return cmd
}

func (o *RootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}
	o.cfg = cfg
	o.log = logger.New(cmd.ErrOrStderr(), logger.Options{Service: "storefront", Level: cfg.LogLevel})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	storage := o.Storage
	o.closeStorage = func() error { return nil }
	if storage == nil {
		storage, o.closeStorage, err = openStorage(ctx, cfg)
		if err != nil {
			return fmt.Errorf("openStorage: %w", err)
		}
	}

	store := cart.Open(ctx, storage, cart.WithKey(cfg.CartKey), cart.WithLogger(o.log))
	cmd.SetContext(cart.NewContext(ctx, store))

	return nil
}

// Close releases the storage opened by the last command run.
func (o *RootOptions) Close() error {
	if o.closeStorage == nil {
		return nil
	}
	closeStorage := o.closeStorage
	o.closeStorage = nil
	if err := closeStorage(); err != nil {
		return fmt.Errorf("close storage: %w", err)
	}
	return nil
}

// catalog loads the product catalog once per process.
func (o *RootOptions) catalog() ([]domain.Product, error) {
	if o.products != nil {
		return o.products, nil
	}

	products, err := catalog.Load(o.cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("catalog.Load: %w", err)
	}
	o.log.Debug("catalog loaded", "path", o.cfg.CatalogPath, "products", len(products))

	o.products = products
	return products, nil
}
