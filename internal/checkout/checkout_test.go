package checkout_test

import (
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/checkout"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestRedirect(t *testing.T) {
	cart := domain.Cart{}.
		AddItem(domain.CartItemInput{ID: "A1", Title: "Widget", Price: domain.NewPrice("$10.00")}).
		AddItem(domain.CartItemInput{ID: "B2", Title: "Gadget", Price: domain.NewPrice("$2.50")}).
		SetQuantity("A1", 3)

	session, err := checkout.Redirect(cart, checkout.Options{
		BaseURL:  "https://www.amazon.com/gp/aws/cart/add.html",
		Currency: currency.USD,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, session.ID)
	assert.Equal(t, 4, session.ItemCount)
	assert.True(t, decimal.RequireFromString("32.5").Equal(session.Total.Amount))
	assert.Equal(t, currency.USD, session.Total.Currency)

	u, err := url.Parse(session.URL)
	require.NoError(t, err)
	assert.Equal(t, "www.amazon.com", u.Host)

	q := u.Query()
	assert.Equal(t, session.ID.String(), q.Get("session"))
	assert.Equal(t, "A1", q.Get("ASIN.1"))
	assert.Equal(t, "3", q.Get("Quantity.1"))
	assert.Equal(t, "B2", q.Get("ASIN.2"))
	assert.Equal(t, "1", q.Get("Quantity.2"))
}

func TestRedirect_Errors(t *testing.T) {
	cart := domain.Cart{}.AddItem(domain.CartItemInput{ID: "A1"})

	tests := []struct {
		name      string
		cart      domain.Cart
		baseURL   string
		wantError string
	}{
		{
			name:      "empty cart: error",
			cart:      domain.Cart{},
			baseURL:   "https://example.com/cart",
			wantError: "cart is empty",
		},
		{
			name:      "relative url: error",
			cart:      cart,
			baseURL:   "/cart",
			wantError: "checkout url[/cart] is not absolute",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := checkout.Redirect(tt.cart, checkout.Options{BaseURL: tt.baseURL})
			require.EqualError(t, err, tt.wantError)
		})
	}
}
