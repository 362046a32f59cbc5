// Package checkout builds the hand-off to an external store's cart page.
// No payment is taken here.
package checkout

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"golang.org/x/text/currency"
)

var ErrEmptyCart = errors.New("cart is empty")

type Options struct {
	BaseURL  string
	Currency currency.Unit
}

type Session struct {
	ID        uuid.UUID
	URL       string
	Total     domain.Money
	ItemCount int
}

// Redirect describes where the shopper is sent to finish the purchase.
// Each line is passed as ASIN.n/Quantity.n pairs; the total currency is taken from opts as is.
func Redirect(cart domain.Cart, opts Options) (Session, error) {
	if len(cart.Items) == 0 {
		return Session{}, ErrEmptyCart
	}

	u, err := url.Parse(opts.BaseURL)
	if err != nil {
		return Session{}, fmt.Errorf("url.Parse: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return Session{}, fmt.Errorf("checkout url[%s] is not absolute", opts.BaseURL)
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return Session{}, fmt.Errorf("uuid.NewRandom: %w", err)
	}

	q := u.Query()
	q.Set("session", id.String())
	for i, item := range cart.Items {
		n := strconv.Itoa(i + 1)
		q.Set("ASIN."+n, item.ID)
		q.Set("Quantity."+n, strconv.Itoa(item.Quantity))
	}
	u.RawQuery = q.Encode()

	return Session{
		ID:  id,
		URL: u.String(),
		Total: domain.Money{
			Amount:   cart.TotalPrice(),
			Currency: opts.Currency,
		},
		ItemCount: cart.TotalItemCount(),
	}, nil
}
