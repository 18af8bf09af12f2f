package service

import (
	"context"
	"testing"

	"catalog-service/internal/catalog"
	"catalog-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturingPublisher records published events for assertions.
type capturingPublisher struct {
	created []*models.ItemCreatedEvent
	updated []*models.ItemUpdatedEvent
	deleted []*models.ItemDeletedEvent
}

func (p *capturingPublisher) PublishItemCreated(_ context.Context, e *models.ItemCreatedEvent) error {
	p.created = append(p.created, e)
	return nil
}

func (p *capturingPublisher) PublishItemUpdated(_ context.Context, e *models.ItemUpdatedEvent) error {
	p.updated = append(p.updated, e)
	return nil
}

func (p *capturingPublisher) PublishItemDeleted(_ context.Context, e *models.ItemDeletedEvent) error {
	p.deleted = append(p.deleted, e)
	return nil
}

func strPtr(s string) *string { return &s }

func TestMutationsPublishEvents(t *testing.T) {
	store := catalog.NewStoreWithItems(nil)
	pub := &capturingPublisher{}
	svc := NewCatalogService(store, pub)
	ctx := context.Background()

	created, err := svc.Create(ctx, models.Item{SKU: "1", Item: "A", Category: "X", Price: "10"})
	require.NoError(t, err)
	require.Len(t, pub.created, 1)
	assert.Equal(t, models.EventTypeItemCreated, pub.created[0].EventType)
	assert.Equal(t, created.ID, pub.created[0].ItemID)
	assert.NotEmpty(t, pub.created[0].EventID)

	_, err = svc.Update(ctx, created.ID, models.ItemPatch{Price: strPtr("11")})
	require.NoError(t, err)
	require.Len(t, pub.updated, 1)
	assert.Equal(t, "11", pub.updated[0].Item.Price)

	_, err = svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, pub.deleted, 1)
	assert.Equal(t, created.ID, pub.deleted[0].ItemID)
}

func TestFailedMutationsPublishNothing(t *testing.T) {
	store := catalog.NewStoreWithItems(nil)
	pub := &capturingPublisher{}
	svc := NewCatalogService(store, pub)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.Item{SKU: "1"})
	assert.Error(t, err)
	_, err = svc.Update(ctx, 42, models.ItemPatch{Price: strPtr("1")})
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = svc.Delete(ctx, 42)
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.Empty(t, pub.created)
	assert.Empty(t, pub.updated)
	assert.Empty(t, pub.deleted)
}

func TestNilPublisherIsAllowed(t *testing.T) {
	store := catalog.NewStoreWithItems(nil)
	svc := NewCatalogService(store, nil)

	_, err := svc.Create(context.Background(), models.Item{SKU: "1", Item: "A", Category: "X", Price: "10"})
	assert.NoError(t, err)
}

func TestCategoryPriceAverages(t *testing.T) {
	store := catalog.NewStoreWithItems([]models.Item{
		{ID: 1, SKU: "a", Item: "A", Category: "Alpha", Price: "10"},
		{ID: 2, SKU: "b", Item: "B", Category: "Alpha", Price: "20"},
		{ID: 3, SKU: "c", Item: "C", Category: "Beta", Price: "broken"},
		{ID: 4, SKU: "d", Item: "D", Category: "Beta", Price: "7"},
	})
	svc := NewCatalogService(store, nil)

	labels, values := svc.CategoryPriceAverages(context.Background())
	require.Equal(t, []string{"Alpha", "Beta"}, labels)
	require.Len(t, values, 2)
	assert.Equal(t, 15.0, values[0])
	// Unparsable prices are skipped, not averaged in as zero.
	assert.Equal(t, 7.0, values[1])
}

func TestChatAnswerStructured(t *testing.T) {
	store := catalog.NewStoreWithItems([]models.Item{
		{ID: 1, SKU: "a", Brand: "WESTCO", Item: "CHOC CHIP COOKIE MIX", Category: "Cat 6 Mix Cookie-Biscuit-Pancake-Churro", Price: "30"},
		{ID: 2, SKU: "b", Brand: "NESTLE", Item: "CHOC CHIP COOKIE DOUGH", Category: "Cat 6 Mix Cookie-Biscuit-Pancake-Churro", Price: "90"},
	})
	chat := NewChatService(NewCatalogService(store, nil), nil, nil)

	reply, results := chat.Answer(context.Background(), "chocolate chip cookies under $50")
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].ID)
	assert.Contains(t, reply, "CHOC CHIP COOKIE MIX")
}

func TestChatAnswerFallsBackToSearch(t *testing.T) {
	store := catalog.NewStoreWithItems([]models.Item{
		{ID: 1, SKU: "10050", Brand: "WESTCO", Item: "BUTTERMILK BISCUIT MIX", Category: "Cat 6", Price: "212"},
	})
	chat := NewChatService(NewCatalogService(store, nil), nil, nil)

	// No keyword or price rule fires, so the raw message goes through the
	// catalog-wide search.
	reply, results := chat.Answer(context.Background(), "10050")
	require.Len(t, results, 1)
	assert.Contains(t, reply, "BUTTERMILK BISCUIT MIX")
}

func TestChatAnswerNoMatch(t *testing.T) {
	store := catalog.NewStoreWithItems(nil)
	chat := NewChatService(NewCatalogService(store, nil), nil, nil)

	reply, results := chat.Answer(context.Background(), "nestle cookies")
	assert.Empty(t, results)
	assert.Contains(t, reply, "couldn't find")
}
