// Package query derives filtered views of the catalog from declarative
// criteria and from unstructured text.
package query

import (
	"math"
	"strconv"
	"strings"

	"catalog-service/internal/models"
)

// Criteria is a conjunctive structured filter. Every field is optional;
// substring fields match case-insensitively against a single record field.
type Criteria struct {
	Item     string
	Brand    string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// IsZero reports whether no criterion is set.
func (c Criteria) IsZero() bool {
	return c.Item == "" && c.Brand == "" && c.Category == "" &&
		c.MinPrice == nil && c.MaxPrice == nil
}

// PriceValue coerces an item's price text to a float for comparisons.
// Unparsable prices yield NaN, so every comparison against an active price
// bound is false and the record drops out of price-bounded results. Records
// keep their price text as-is for display.
func PriceValue(it models.Item) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(it.Price), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Filter applies the criteria as a conjunction over the given items.
// The item substring is tested against the ITEM field only; the broader
// every-field match is Search.
func Filter(items []models.Item, c Criteria) []models.Item {
	itemQ := strings.ToLower(c.Item)
	brandQ := strings.ToLower(c.Brand)
	catQ := strings.ToLower(c.Category)

	out := make([]models.Item, 0)
	for _, it := range items {
		if itemQ != "" && !strings.Contains(strings.ToLower(it.Item), itemQ) {
			continue
		}
		if brandQ != "" && !strings.Contains(strings.ToLower(it.Brand), brandQ) {
			continue
		}
		if catQ != "" && !strings.Contains(strings.ToLower(it.Category), catQ) {
			continue
		}
		if c.MinPrice != nil && !(PriceValue(it) >= *c.MinPrice) {
			continue
		}
		if c.MaxPrice != nil && !(PriceValue(it) <= *c.MaxPrice) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Search returns every item with at least one field whose string form
// contains q, case-insensitively. All fields participate, including id and
// price.
func Search(items []models.Item, q string) []models.Item {
	needle := strings.ToLower(q)

	out := make([]models.Item, 0)
	for _, it := range items {
		for _, field := range []string{
			strconv.Itoa(it.ID),
			it.SKU,
			it.Pack,
			it.Size,
			it.Brand,
			it.Item,
			it.Category,
			it.Price,
		} {
			if strings.Contains(strings.ToLower(field), needle) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}
