package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// DefaultPriceValue is used for line items whose product carries no price.
const DefaultPriceValue = "0"

// Price is kept exactly as the catalog supplied it. Currency is empty for plain string prices.
type Price struct {
	Value    string
	Currency string
}

func NewPrice(value string) Price {
	return Price{Value: value}
}

func (p Price) IsZero() bool {
	return p.Value == "" && p.Currency == ""
}

func (p Price) String() string {
	if p.Currency == "" {
		return p.Value
	}
	return p.Currency + " " + p.Value
}

// Amount keeps only digits and decimal points of Value and reads the
// longest number prefix, so "$12.99 - $15.99" is 12.9915. Anything that is
// then not a number is zero.
func (p Price) Amount() decimal.Decimal {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, p.Value)

	if first := strings.IndexByte(cleaned, '.'); first >= 0 {
		if second := strings.IndexByte(cleaned[first+1:], '.'); second >= 0 {
			cleaned = cleaned[:first+1+second]
		}
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}

	return amount
}

func (p Price) Money() Money {
	m := Money{Amount: p.Amount()}

	if p.Currency != "" {
		if unit, err := currency.ParseISO(p.Currency); err == nil {
			m.Currency = unit
		}
	}

	return m
}

type structuredPrice struct {
	Currency string          `json:"currency"`
	Value    json.RawMessage `json:"value"`
}

func (p Price) MarshalJSON() ([]byte, error) {
	if p.Currency == "" {
		return json.Marshal(p.Value)
	}

	value, err := json.Marshal(p.Value)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return json.Marshal(structuredPrice{Currency: p.Currency, Value: value})
}

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*p = Price{}
		return nil
	case len(data) > 0 && data[0] == '{':
		var sp structuredPrice
		if err := json.Unmarshal(data, &sp); err != nil {
			return fmt.Errorf("price object: %w", err)
		}

		value, err := priceValueText(sp.Value)
		if err != nil {
			return err
		}

		*p = Price{Value: value, Currency: sp.Currency}
		return nil
	default:
		value, err := priceValueText(data)
		if err != nil {
			return err
		}

		*p = Price{Value: value}
		return nil
	}
}

// priceValueText accepts a JSON string or number and returns its text form.
func priceValueText(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", fmt.Errorf("price value: %w", err)
		}
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("price value[%s] is not a string or number: %w", raw, err)
	}

	return n.String(), nil
}
