package port

import (
	"context"
	"errors"
)

var ErrSlotNotFound = errors.New("slot not found")

// SlotStorage is a durable key-value slot. Put overwrites the whole value.
type SlotStorage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}
