package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/catalog"
	"github.com/nikolayk812/storefront/internal/checkout"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/search"
	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRenderCart(t *testing.T) {
	tests := []struct {
		name string
		cart domain.Cart
	}{
		{
			name: "cart_empty",
			cart: domain.Cart{},
		},
		{
			name: "cart_with_items",
			cart: domain.Cart{Items: []domain.CartItem{
				{ID: "A1", Title: "Widget", Price: domain.NewPrice("$10.00"), Quantity: 2},
				{ID: "B2", Title: "Gadget, large", Price: domain.Price{Currency: "EUR", Value: "2.5"}, Quantity: 1},
				{ID: "C3", Title: "Mystery box", Price: domain.NewPrice("free"), Quantity: 3},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, renderCart(&buf, tt.cart))
			newGoldie(t).Assert(t, tt.name, buf.Bytes())
		})
	}
}

func TestRenderSearch(t *testing.T) {
	products, err := catalog.Load("testdata/products.json")
	require.NoError(t, err)

	tests := []struct {
		name  string
		query string
	}{
		{name: "search_shoes", query: "shoes"},
		{name: "search_no_match", query: "guitar"},
		{name: "search_blank", query: "   "},
		{name: "search_missing_price", query: "sticker"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, renderSearch(&buf, search.Run(tt.query, products)))
			newGoldie(t).Assert(t, tt.name, buf.Bytes())
		})
	}
}

func TestRenderCheckout(t *testing.T) {
	session := checkout.Session{
		ID:        uuid.MustParse("7f1c8f8e-3c55-4d0e-9a51-0f3b8f0c2d11"),
		URL:       "https://www.amazon.com/gp/aws/cart/add.html?ASIN.1=A1",
		Total:     domain.Money{Amount: decimal.RequireFromString("32.5"), Currency: currency.USD},
		ItemCount: 4,
	}

	var buf bytes.Buffer
	require.NoError(t, renderCheckout(&buf, session))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"Redirecting to checkout",
		"Session: 7f1c8f8e-3c55-4d0e-9a51-0f3b8f0c2d11",
		"Items: 4",
		"Total: 32.50 USD",
		"URL: https://www.amazon.com/gp/aws/cart/add.html?ASIN.1=A1",
	}, lines)
}
