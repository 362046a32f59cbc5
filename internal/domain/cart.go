package domain

import (
	"errors"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrEmptyProductID = errors.New("product id is empty")

type Cart struct {
	Items []CartItem
}

type CartItem struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Price        Price  `json:"price"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Quantity     int    `json:"quantity"`
	DetailURL    string `json:"detailUrl"`
}

// CartItemInput is the narrow shape a product is reduced to before it reaches the cart.
type CartItemInput struct {
	ID           string
	Title        string
	Price        Price
	ThumbnailURL string
	DetailURL    string
}

func NewCartItemInput(p Product) (CartItemInput, error) {
	id := strings.TrimSpace(p.ID)
	if id == "" {
		return CartItemInput{}, ErrEmptyProductID
	}

	price := p.Price
	if price.IsZero() {
		price = NewPrice(DefaultPriceValue)
	}

	return CartItemInput{
		ID:           id,
		Title:        p.Title,
		Price:        price,
		ThumbnailURL: p.ThumbnailURL,
		DetailURL:    p.URL,
	}, nil
}

func (c Cart) indexOf(id string) int {
	return slices.IndexFunc(c.Items, func(item CartItem) bool {
		return item.ID == id
	})
}

func (c Cart) Contains(id string) bool {
	return c.indexOf(id) >= 0
}

// AddItem returns a cart where the matching line gained one unit, or a new line was appended.
func (c Cart) AddItem(in CartItemInput) Cart {
	items := slices.Clone(c.Items)

	if i := c.indexOf(in.ID); i >= 0 {
		items[i].Quantity++
		return Cart{Items: items}
	}

	price := in.Price
	if price.IsZero() {
		price = NewPrice(DefaultPriceValue)
	}

	items = append(items, CartItem{
		ID:           in.ID,
		Title:        in.Title,
		Price:        price,
		ThumbnailURL: in.ThumbnailURL,
		Quantity:     1,
		DetailURL:    in.DetailURL,
	})

	return Cart{Items: items}
}

func (c Cart) RemoveItem(id string) Cart {
	items := make([]CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		if item.ID != id {
			items = append(items, item)
		}
	}

	return Cart{Items: items}
}

// SetQuantity removes the line when quantity <= 0.
func (c Cart) SetQuantity(id string, quantity int) Cart {
	if quantity <= 0 {
		return c.RemoveItem(id)
	}

	items := slices.Clone(c.Items)
	if i := c.indexOf(id); i >= 0 {
		items[i].Quantity = quantity
	}

	return Cart{Items: items}
}

func (c Cart) Clear() Cart {
	return Cart{Items: []CartItem{}}
}

func (c Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Price.Amount().Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return total
}

func (c Cart) TotalItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}
