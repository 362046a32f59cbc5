package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidSnapshot = errors.New("invalid cart snapshot")

// MarshalSnapshot encodes the cart as the JSON array kept in durable storage.
func MarshalSnapshot(c Cart) ([]byte, error) {
	items := c.Items
	if items == nil {
		items = []CartItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return data, nil
}

// UnmarshalSnapshot decodes a stored snapshot. A payload that would break the
// one-line-per-id or quantity >= 1 invariants is rejected as a whole.
func UnmarshalSnapshot(data []byte) (Cart, error) {
	var items []CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return Cart{}, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}

	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		if strings.TrimSpace(item.ID) == "" {
			return Cart{}, fmt.Errorf("%w: item[%d] id is empty", ErrInvalidSnapshot, i)
		}
		if item.Quantity < 1 {
			return Cart{}, fmt.Errorf("%w: item[%s] quantity[%d] is less than 1", ErrInvalidSnapshot, item.ID, item.Quantity)
		}
		if _, ok := seen[item.ID]; ok {
			return Cart{}, fmt.Errorf("%w: item[%s] is duplicated", ErrInvalidSnapshot, item.ID)
		}
		seen[item.ID] = struct{}{}
	}

	if items == nil {
		items = []CartItem{}
	}

	return Cart{Items: items}, nil
}
