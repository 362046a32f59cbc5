package cli

import (
	"fmt"

	"github.com/nikolayk812/storefront/internal/cart"
	"github.com/nikolayk812/storefront/internal/checkout"
	"github.com/spf13/cobra"
)

// NewCheckoutCommand creates the checkout command. It only prints the
// redirect; the cart is left as is.
func NewCheckoutCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Hand the cart over to the external store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			unit, err := opts.cfg.CurrencyUnit()
			if err != nil {
				return err
			}

			session, err := checkout.Redirect(cart.FromContext(cmd.Context()).Cart(), checkout.Options{
				BaseURL:  opts.cfg.CheckoutURL,
				Currency: unit,
			})
			if err != nil {
				return fmt.Errorf("checkout.Redirect: %w", err)
			}

			opts.log.Info("checkout redirect", "session", session.ID, "items", session.ItemCount)
			return renderCheckout(cmd.OutOrStdout(), session)
		},
	}
}
