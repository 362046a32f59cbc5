// Package search filters a static product catalog by substring.
package search

import (
	"strings"

	"github.com/nikolayk812/storefront/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Result struct {
	Query    string
	Products []domain.Product
	// Searched is false when the query was blank and nothing was matched at all.
	Searched bool
}

// Search returns, in catalog order, the products whose title, category,
// brand or description contains query case-insensitively. A blank query
// yields an empty result. The catalog is never modified.
func Search(query string, catalog []domain.Product) []domain.Product {
	if strings.TrimSpace(query) == "" {
		return []domain.Product{}
	}

	lower := cases.Lower(language.Und)
	needle := lower.String(query)

	results := []domain.Product{}
	for _, p := range catalog {
		if matches(lower, needle, p) {
			results = append(results, p)
		}
	}

	return results
}

func Run(query string, catalog []domain.Product) Result {
	return Result{
		Query:    query,
		Products: Search(query, catalog),
		Searched: strings.TrimSpace(query) != "",
	}
}

func matches(lower cases.Caser, needle string, p domain.Product) bool {
	fields := [...]string{p.Title, p.Category, p.Brand, p.Description}
	for _, field := range fields {
		// absent optional fields never match
		if field == "" {
			continue
		}
		if strings.Contains(lower.String(field), needle) {
			return true
		}
	}
	return false
}
