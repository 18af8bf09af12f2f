package query

import (
	"fmt"
	"strings"

	"catalog-service/internal/models"
)

// maxChatResults caps the list shown in a chat reply.
const maxChatResults = 10

// FormatResults renders a result set for chat consumption: an explanatory
// string for zero matches, a detail block for exactly one, and a capped list
// with a "more" indicator otherwise.
func FormatResults(items []models.Item) string {
	switch len(items) {
	case 0:
		return "I couldn't find any products matching that. Try a brand, a category keyword, or a price range like \"under $50\"."
	case 1:
		return formatDetail(items[0])
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I found %d matching products:\n", len(items))
	shown := items
	if len(shown) > maxChatResults {
		shown = shown[:maxChatResults]
	}
	for _, it := range shown {
		fmt.Fprintf(&b, "- %s (%s) - $%s\n", it.Item, it.Brand, it.Price)
	}
	if len(items) > maxChatResults {
		fmt.Fprintf(&b, "...and %d more.", len(items)-maxChatResults)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatDetail(it models.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", it.Item)
	fmt.Fprintf(&b, "SKU: %s | Brand: %s | Category: %s\n", it.SKU, it.Brand, it.Category)
	fmt.Fprintf(&b, "Pack: %s | Size: %s | Price: $%s", it.Pack, it.Size, it.Price)
	return b.String()
}
