package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/port"
)

type slotRepository struct {
	q *db.Queries
}

func NewSlots(pool *pgxpool.Pool) port.SlotStorage {
	return &slotRepository{
		q: db.New(pool),
	}
}

func NewSlotsWithTx(tx pgx.Tx) port.SlotStorage {
	return &slotRepository{
		q: db.New(tx),
	}
}

func (r *slotRepository) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	value, err := r.q.GetSlot(ctx, key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, port.ErrSlotNotFound
		}
		return nil, fmt.Errorf("q.GetSlot: %w", err)
	}

	return value, nil
}

func (r *slotRepository) Put(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	err := r.q.PutSlot(ctx, db.PutSlotParams{
		Key:   key,
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("q.PutSlot: %w", err)
	}

	return nil
}
