package models

import (
	"errors"
	"fmt"
)

// Item represents a product in the catalog. JSON field names are part of the
// wire contract and must not change.
type Item struct {
	ID       int    `json:"id"`
	SKU      string `json:"SKU"`
	Pack     string `json:"PACK"`
	Size     string `json:"SIZE"`
	Brand    string `json:"BRAND"`
	Item     string `json:"ITEM"`
	Category string `json:"CATEGORY"`
	Price    string `json:"PRICE"`
}

// ItemPatch is a merge-patch update: a nil field is left untouched, a non-nil
// field (including an explicit empty string) overwrites the stored value.
// The id is never patchable.
type ItemPatch struct {
	SKU      *string `json:"SKU"`
	Pack     *string `json:"PACK"`
	Size     *string `json:"SIZE"`
	Brand    *string `json:"BRAND"`
	Item     *string `json:"ITEM"`
	Category *string `json:"CATEGORY"`
	Price    *string `json:"PRICE"`
}

// ErrNotFound is returned when an item lookup misses.
var ErrNotFound = errors.New("item not found")

// ValidationError reports missing required fields on create.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required fields: %v", e.Fields)
}
