package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nikolayk812/storefront/internal/checkout"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/search"
	"github.com/shopspring/decimal"
)

func renderCart(w io.Writer, c domain.Cart) error {
	if len(c.Items) == 0 {
		_, err := fmt.Fprintln(w, "Your cart is empty")
		return err
	}

	fmt.Fprintf(w, "Shopping Cart (%d items)\n", c.TotalItemCount())

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPRICE\tQTY\tSUBTOTAL")
	for _, item := range c.Items {
		subtotal := item.Price.Amount().Mul(decimal.NewFromInt(int64(item.Quantity)))
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", item.ID, item.Title, priceText(item.Price), item.Quantity, subtotal.StringFixed(2))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Total: %s\n", c.TotalPrice().StringFixed(2))
	return err
}

func renderSearch(w io.Writer, result search.Result) error {
	switch {
	case !result.Searched:
		_, err := fmt.Fprintln(w, "Enter a search term to find products")
		return err
	case len(result.Products) == 0:
		_, err := fmt.Fprintf(w, "No products found for %q\n", result.Query)
		return err
	}

	fmt.Fprintf(w, "Found %d products for %q\n", len(result.Products), result.Query)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tPRICE")
	for _, p := range result.Products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Title, p.Category, priceText(p.Price))
	}
	return tw.Flush()
}

func renderCheckout(w io.Writer, s checkout.Session) error {
	_, err := fmt.Fprintf(w,
		"Redirecting to checkout\nSession: %s\nItems: %d\nTotal: %s %s\nURL: %s\n",
		s.ID, s.ItemCount, s.Total.Amount.StringFixed(2), s.Total.Currency, s.URL,
	)
	return err
}

func priceText(p domain.Price) string {
	if p.IsZero() {
		return "-"
	}
	return p.String()
}
