// Package porttest holds behavior checks shared by every port.SlotStorage adapter.
package porttest

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSlotStorage exercises storage against the SlotStorage contract.
func RunSlotStorage(t *testing.T, storage port.SlotStorage) {
	t.Helper()

	t.Run("get missing key: not found", func(t *testing.T) {
		_, err := storage.Get(t.Context(), gofakeit.UUID())
		require.ErrorIs(t, err, port.ErrSlotNotFound)
	})

	t.Run("put then get: same bytes", func(t *testing.T) {
		key := gofakeit.UUID()
		value := []byte(`[{"id":"` + gofakeit.UUID() + `","quantity":1}]`)

		require.NoError(t, storage.Put(t.Context(), key, value))

		got, err := storage.Get(t.Context(), key)
		require.NoError(t, err)
		assert.Equal(t, value, got)
	})

	t.Run("put twice: last writer wins", func(t *testing.T) {
		key := gofakeit.UUID()

		require.NoError(t, storage.Put(t.Context(), key, []byte(`["first"]`)))
		require.NoError(t, storage.Put(t.Context(), key, []byte(`[]`)))

		got, err := storage.Get(t.Context(), key)
		require.NoError(t, err)
		assert.Equal(t, []byte(`[]`), got)
	})

	t.Run("keys are independent", func(t *testing.T) {
		a, b := gofakeit.UUID(), gofakeit.UUID()

		require.NoError(t, storage.Put(t.Context(), a, []byte(`"a"`)))
		require.NoError(t, storage.Put(t.Context(), b, []byte(`"b"`)))

		got, err := storage.Get(t.Context(), a)
		require.NoError(t, err)
		assert.Equal(t, []byte(`"a"`), got)
	})

	t.Run("empty key: error", func(t *testing.T) {
		err := storage.Put(t.Context(), "", []byte(`[]`))
		require.EqualError(t, err, "key is empty")

		_, err = storage.Get(t.Context(), "")
		require.EqualError(t, err, "key is empty")
	})
}
