// Package memory keeps slots in process memory; nothing outlives the process.
package memory

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/nikolayk812/storefront/internal/port"
)

type Store struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

var _ port.SlotStorage = (*Store)(nil)

func New() *Store {
	return &Store{slots: make(map[string][]byte)}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.slots[key]
	if !ok {
		return nil, port.ErrSlotNotFound
	}

	return bytes.Clone(value), nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[key] = bytes.Clone(value)

	return nil
}
