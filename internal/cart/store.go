// Package cart holds the shopping cart state container.
//
// A Store owns one domain.Cart. Every mutation applies the pure transition
// from package domain and then writes the whole snapshot through to a
// port.SlotStorage. Storage failures never reach the caller: a failed read
// starts an empty cart, a failed write leaves the in-memory state
// authoritative for the rest of the session.
package cart

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/shopspring/decimal"
)

// DefaultKey is the storage slot holding the cart snapshot.
const DefaultKey = "shopping-cart"

// ErrNotInitialized reports a cart operation on a store that was never opened.
var ErrNotInitialized = errors.New("cart store is not initialized")

type Store struct {
	mu      sync.Mutex
	storage port.SlotStorage
	key     string
	logger  *slog.Logger
	cart    domain.Cart
}

type Option func(*Store)

func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Open reads the persisted snapshot once. It never fails: a missing or
// unreadable snapshot yields an empty cart.
func Open(ctx context.Context, storage port.SlotStorage, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		key:     DefaultKey,
		logger:  slog.Default(),
		cart:    domain.Cart{Items: []domain.CartItem{}},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.cart = s.load(ctx)

	return s
}

func (s *Store) load(ctx context.Context) domain.Cart {
	empty := domain.Cart{Items: []domain.CartItem{}}

	if s.storage == nil {
		return empty
	}

	data, err := s.storage.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, port.ErrSlotNotFound) {
			s.logger.WarnContext(ctx, "cart snapshot read failed, starting empty", "key", s.key, "error", err)
		}
		return empty
	}

	cart, err := domain.UnmarshalSnapshot(data)
	if err != nil {
		s.logger.WarnContext(ctx, "cart snapshot is corrupt, starting empty", "key", s.key, "error", err)
		return empty
	}

	s.logger.DebugContext(ctx, "cart snapshot loaded", "key", s.key, "items", len(cart.Items))

	return cart
}

func (s *Store) mustBeOpen() {
	if s == nil {
		panic(ErrNotInitialized)
	}
}

// apply runs transition under the lock, keeps its result and writes it through.
func (s *Store) apply(ctx context.Context, op string, transition func(domain.Cart) domain.Cart) domain.Cart {
	s.mustBeOpen()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = transition(s.cart)
	s.writeThrough(ctx, op)

	return cloneCart(s.cart)
}

func (s *Store) writeThrough(ctx context.Context, op string) {
	if s.storage == nil {
		return
	}

	data, err := domain.MarshalSnapshot(s.cart)
	if err != nil {
		s.logger.ErrorContext(ctx, "cart snapshot encode failed", "op", op, "error", err)
		return
	}

	if err := s.storage.Put(ctx, s.key, data); err != nil {
		s.logger.WarnContext(ctx, "cart snapshot write failed", "op", op, "key", s.key, "error", err)
	}
}

func (s *Store) AddItem(ctx context.Context, in domain.CartItemInput) domain.Cart {
	return s.apply(ctx, "add_item", func(c domain.Cart) domain.Cart {
		return c.AddItem(in)
	})
}

func (s *Store) RemoveItem(ctx context.Context, id string) domain.Cart {
	return s.apply(ctx, "remove_item", func(c domain.Cart) domain.Cart {
		return c.RemoveItem(id)
	})
}

// SetQuantity removes the item when quantity <= 0.
func (s *Store) SetQuantity(ctx context.Context, id string, quantity int) domain.Cart {
	return s.apply(ctx, "set_quantity", func(c domain.Cart) domain.Cart {
		return c.SetQuantity(id, quantity)
	})
}

func (s *Store) Clear(ctx context.Context) domain.Cart {
	return s.apply(ctx, "clear", func(c domain.Cart) domain.Cart {
		return c.Clear()
	})
}

// Cart returns a copy of the current state.
func (s *Store) Cart() domain.Cart {
	s.mustBeOpen()

	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneCart(s.cart)
}

func (s *Store) Items() []domain.CartItem {
	return s.Cart().Items
}

func (s *Store) TotalPrice() decimal.Decimal {
	return s.Cart().TotalPrice()
}

func (s *Store) TotalItemCount() int {
	return s.Cart().TotalItemCount()
}

func cloneCart(c domain.Cart) domain.Cart {
	items := slices.Clone(c.Items)
	if items == nil {
		items = []domain.CartItem{}
	}
	return domain.Cart{Items: items}
}
