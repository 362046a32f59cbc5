package cli

import (
	"strings"

	"github.com/nikolayk812/storefront/internal/search"
	"github.com/spf13/cobra"
)

// NewSearchCommand creates the search command.
func NewSearchCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search [query...]",
		Short: "Search the catalog by title, category, brand or description",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := opts.catalog()
			if err != nil {
				return err
			}

			result := search.Run(strings.Join(args, " "), products)
			return renderSearch(cmd.OutOrStdout(), result)
		},
	}
}
