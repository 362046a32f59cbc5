package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/nikolayk812/storefront/internal/port/porttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreContract(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "storefront.db"))
	require.NoError(t, err)
	defer store.Close()

	porttest.RunSlotStorage(t, store)
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("")
	require.EqualError(t, err, "storage path is required")
}

func TestGetHonorsCanceledContext(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "storefront.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err = store.Get(ctx, "shopping-cart")
	require.ErrorIs(t, err, context.Canceled)
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Put(t.Context(), "shopping-cart", []byte(`[]`)))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(t.Context(), "shopping-cart")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)
}
