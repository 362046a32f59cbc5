package cart

import "context"

type storeKey struct{}

// NewContext returns a copy of ctx carrying store.
func NewContext(ctx context.Context, store *Store) context.Context {
	return context.WithValue(ctx, storeKey{}, store)
}

// FromContext returns the store attached by NewContext. It panics with
// ErrNotInitialized when there is none: that is a wiring bug, not a runtime condition.
func FromContext(ctx context.Context) *Store {
	store, ok := ctx.Value(storeKey{}).(*Store)
	if !ok || store == nil {
		panic(ErrNotInitialized)
	}
	return store
}
