// Package catalog loads the static product catalog searched by the storefront.
//
// Records are read leniently: a field of the wrong type is treated as
// absent rather than failing the whole file.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Load reads a catalog file, picking the decoder by extension.
func Load(path string) ([]domain.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".json", "":
		return ParseJSON(data)
	default:
		return nil, fmt.Errorf("catalog format[%s] is not supported", filepath.Ext(path))
	}
}

func ParseJSON(data []byte) ([]domain.Product, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("catalog is not valid JSON")
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("catalog must be a JSON array")
	}

	var products []domain.Product
	root.ForEach(func(_, record gjson.Result) bool {
		if record.IsObject() {
			products = append(products, productFromJSON(record))
		}
		return true
	})

	return products, nil
}

func productFromJSON(r gjson.Result) domain.Product {
	id := jsonString(r.Get("id"))
	if id == "" {
		id = jsonString(r.Get("asin"))
	}

	thumbnail := jsonString(r.Get("thumbnailImage"))
	if thumbnail == "" {
		thumbnail = jsonString(r.Get("thumbnailUrl"))
	}

	return domain.Product{
		ID:           id,
		Title:        jsonString(r.Get("title")),
		Category:     jsonString(r.Get("category")),
		Brand:        jsonString(r.Get("brand")),
		Description:  jsonString(r.Get("description")),
		Price:        jsonPrice(r.Get("price")),
		ThumbnailURL: thumbnail,
		URL:          jsonString(r.Get("url")),
	}
}

func jsonString(r gjson.Result) string {
	if r.Type != gjson.String {
		return ""
	}
	return r.Str
}

func jsonPrice(r gjson.Result) domain.Price {
	switch {
	case r.Type == gjson.String:
		return domain.NewPrice(r.Str)
	case r.Type == gjson.Number:
		return domain.NewPrice(r.Raw)
	case r.IsObject():
		value := r.Get("value")
		text := jsonString(value)
		if value.Type == gjson.Number {
			text = value.Raw
		}
		return domain.Price{Value: text, Currency: jsonString(r.Get("currency"))}
	default:
		return domain.Price{}
	}
}

func ParseYAML(data []byte) ([]domain.Product, error) {
	var records []map[string]any
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	products := make([]domain.Product, 0, len(records))
	for _, record := range records {
		if record == nil {
			continue
		}
		products = append(products, productFromMap(record))
	}

	return products, nil
}

func productFromMap(m map[string]any) domain.Product {
	id := mapString(m, "id")
	if id == "" {
		id = mapString(m, "asin")
	}

	thumbnail := mapString(m, "thumbnailImage")
	if thumbnail == "" {
		thumbnail = mapString(m, "thumbnailUrl")
	}

	return domain.Product{
		ID:           id,
		Title:        mapString(m, "title"),
		Category:     mapString(m, "category"),
		Brand:        mapString(m, "brand"),
		Description:  mapString(m, "description"),
		Price:        mapPrice(m["price"]),
		ThumbnailURL: thumbnail,
		URL:          mapString(m, "url"),
	}
}

func mapString(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func mapPrice(v any) domain.Price {
	switch price := v.(type) {
	case string:
		return domain.NewPrice(price)
	case int:
		return domain.NewPrice(strconv.Itoa(price))
	case float64:
		return domain.NewPrice(strconv.FormatFloat(price, 'f', -1, 64))
	case map[string]any:
		value := mapPrice(price["value"])
		return domain.Price{Value: value.Value, Currency: mapString(price, "currency")}
	default:
		return domain.Price{}
	}
}

// Find returns the product with the given id.
func Find(products []domain.Product, id string) (domain.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}
