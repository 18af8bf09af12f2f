package query

import (
	"fmt"
	"strings"
	"testing"

	"catalog-service/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatResultsNoMatch(t *testing.T) {
	got := FormatResults(nil)
	assert.Contains(t, got, "couldn't find any products")
}

func TestFormatResultsSingleMatch(t *testing.T) {
	got := FormatResults(fixture[:1])
	assert.Contains(t, got, "BUTTERMILK BISCUIT MIX")
	assert.Contains(t, got, "SKU: 10050")
	assert.Contains(t, got, "Price: $212")
}

func TestFormatResultsCappedList(t *testing.T) {
	items := make([]models.Item, 15)
	for i := range items {
		items[i] = models.Item{
			ID:    i,
			Item:  fmt.Sprintf("ITEM %d", i),
			Brand: "WESTCO",
			Price: "10",
		}
	}

	got := FormatResults(items)
	assert.Contains(t, got, "I found 15 matching products")
	assert.Contains(t, got, "ITEM 9")
	assert.NotContains(t, got, "ITEM 10")
	assert.Contains(t, got, "and 5 more")
	assert.Equal(t, 10, strings.Count(got, "- ITEM"))
}

func TestFormatResultsSmallList(t *testing.T) {
	got := FormatResults(fixture[:3])
	assert.Contains(t, got, "I found 3 matching products")
	assert.NotContains(t, got, "more.")
}
