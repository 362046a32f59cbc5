package cli

import (
	"fmt"
	"strconv"

	"github.com/nikolayk812/storefront/internal/cart"
	"github.com/nikolayk812/storefront/internal/catalog"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/spf13/cobra"
)

// NewCartCommand creates the cart command group.
func NewCartCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Inspect and change the shopping cart",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show cart contents and totals",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				store := cart.FromContext(cmd.Context())
				return renderCart(cmd.OutOrStdout(), store.Cart())
			},
		},
		&cobra.Command{
			Use:   "add <product-id>",
			Short: "Add one unit of a catalog product",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return addToCart(cmd, opts, args[0])
			},
		},
		&cobra.Command{
			Use:   "remove <product-id>",
			Short: "Remove a product from the cart",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store := cart.FromContext(cmd.Context())

				title := args[0]
				for _, item := range store.Items() {
					if item.ID == args[0] {
						title = item.Title
					}
				}

				store.RemoveItem(cmd.Context(), args[0])
				fmt.Fprintf(cmd.OutOrStdout(), "%s has been removed from your cart.\n", title)
				return nil
			},
		},
		&cobra.Command{
			Use:   "qty <product-id> <quantity>",
			Short: "Set the quantity of a product; zero or less removes it",
			Args:  cobra.ExactArgs(2),
			// negative quantities such as -1 must not be read as shorthand flags
			DisableFlagParsing: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				quantity, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("quantity[%s] is not a number", args[1])
				}

				store := cart.FromContext(cmd.Context())
				return renderCart(cmd.OutOrStdout(), store.SetQuantity(cmd.Context(), args[0], quantity))
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove every item from the cart",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cart.FromContext(cmd.Context()).Clear(cmd.Context())
				fmt.Fprintln(cmd.OutOrStdout(), "All items have been removed from your cart.")
				return nil
			},
		},
	)

	return cmd
}

func addToCart(cmd *cobra.Command, opts *RootOptions, id string) error {
	products, err := opts.catalog()
	if err != nil {
		return err
	}

	product, ok := catalog.Find(products, id)
	if !ok {
		return fmt.Errorf("product[%s] is not in the catalog", id)
	}

	in, err := domain.NewCartItemInput(product)
	if err != nil {
		return fmt.Errorf("domain.NewCartItemInput: %w", err)
	}

	updated := cart.FromContext(cmd.Context()).AddItem(cmd.Context(), in)
	fmt.Fprintf(cmd.OutOrStdout(), "%s has been added to your cart (%d items).\n", product.Title, updated.TotalItemCount())

	return nil
}
