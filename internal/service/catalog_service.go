package service

import (
	"context"
	"math"
	"time"

	"catalog-service/internal/catalog"
	"catalog-service/internal/models"
	"catalog-service/internal/query"
	"catalog-service/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ItemEventPublisher publishes catalog change events. Satisfied by
// broker.EventPublisher; a nil publisher disables event publishing.
type ItemEventPublisher interface {
	PublishItemCreated(ctx context.Context, event *models.ItemCreatedEvent) error
	PublishItemUpdated(ctx context.Context, event *models.ItemUpdatedEvent) error
	PublishItemDeleted(ctx context.Context, event *models.ItemDeletedEvent) error
}

// CatalogService handles catalog business logic on top of the in-memory
// store. Mutations publish change events; publish failures are logged and
// never fail the request.
type CatalogService struct {
	store          *catalog.Store
	eventPublisher ItemEventPublisher
	logger         *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(store *catalog.Store, eventPublisher ItemEventPublisher) *CatalogService {
	return &CatalogService{
		store:          store,
		eventPublisher: eventPublisher,
		logger:         util.GetLogger(),
	}
}

// List returns the full catalog in insertion order.
func (s *CatalogService) List(ctx context.Context) []models.Item {
	_, span := util.StartSpan(ctx, "CatalogService.List")
	defer span.End()

	return s.store.GetAll()
}

// Get retrieves a single item by id.
func (s *CatalogService) Get(ctx context.Context, id int) (models.Item, error) {
	_, span := util.StartSpan(ctx, "CatalogService.Get")
	defer span.End()

	return s.store.GetByID(id)
}

// GetBySKU retrieves the first item with the given SKU.
func (s *CatalogService) GetBySKU(ctx context.Context, sku string) (models.Item, error) {
	_, span := util.StartSpan(ctx, "CatalogService.GetBySKU")
	defer span.End()

	return s.store.GetBySKU(sku)
}

// GetByCategory retrieves all items in a category.
func (s *CatalogService) GetByCategory(ctx context.Context, category string) []models.Item {
	_, span := util.StartSpan(ctx, "CatalogService.GetByCategory")
	defer span.End()

	return s.store.GetByCategory(category)
}

// Search runs the catalog-wide every-field substring search.
func (s *CatalogService) Search(ctx context.Context, q string) []models.Item {
	_, span := util.StartSpan(ctx, "CatalogService.Search")
	defer span.End()

	util.SearchesTotal.WithLabelValues("search").Inc()
	return query.Search(s.store.GetAll(), q)
}

// Filter runs the structured conjunctive filter.
func (s *CatalogService) Filter(ctx context.Context, c query.Criteria) []models.Item {
	_, span := util.StartSpan(ctx, "CatalogService.Filter")
	defer span.End()

	util.SearchesTotal.WithLabelValues("filter").Inc()
	return query.Filter(s.store.GetAll(), c)
}

// Categories returns the distinct sorted category projection.
func (s *CatalogService) Categories(ctx context.Context) []string {
	_, span := util.StartSpan(ctx, "CatalogService.Categories")
	defer span.End()

	return s.store.Categories()
}

// Brands returns the distinct sorted non-empty brand projection.
func (s *CatalogService) Brands(ctx context.Context) []string {
	_, span := util.StartSpan(ctx, "CatalogService.Brands")
	defer span.End()

	return s.store.Brands()
}

// Create validates and appends a new item, then publishes ItemCreated.
func (s *CatalogService) Create(ctx context.Context, in models.Item) (models.Item, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.Create")
	defer span.End()

	created, err := s.store.Create(in)
	if err != nil {
		return models.Item{}, err
	}

	util.ItemsCreatedTotal.Inc()
	s.logger.Info("Item created",
		zap.Int("item_id", created.ID),
		zap.String("sku", created.SKU))

	event := &models.ItemCreatedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeItemCreated,
			Timestamp: time.Now(),
		},
		ItemID: created.ID,
		Item:   created,
	}
	if s.eventPublisher != nil {
		if err := s.eventPublisher.PublishItemCreated(ctx, event); err != nil {
			s.logger.Error("Failed to publish ItemCreated event", zap.Error(err))
		}
	}

	return created, nil
}

// Update merge-patches an existing item, then publishes ItemUpdated.
func (s *CatalogService) Update(ctx context.Context, id int, patch models.ItemPatch) (models.Item, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.Update")
	defer span.End()

	updated, err := s.store.Update(id, patch)
	if err != nil {
		return models.Item{}, err
	}

	util.ItemsUpdatedTotal.Inc()
	s.logger.Info("Item updated", zap.Int("item_id", updated.ID))

	event := &models.ItemUpdatedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeItemUpdated,
			Timestamp: time.Now(),
		},
		ItemID: updated.ID,
		Item:   updated,
	}
	if s.eventPublisher != nil {
		if err := s.eventPublisher.PublishItemUpdated(ctx, event); err != nil {
			s.logger.Error("Failed to publish ItemUpdated event", zap.Error(err))
		}
	}

	return updated, nil
}

// Delete removes an item, then publishes ItemDeleted.
func (s *CatalogService) Delete(ctx context.Context, id int) (models.Item, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.Delete")
	defer span.End()

	removed, err := s.store.Delete(id)
	if err != nil {
		return models.Item{}, err
	}

	util.ItemsDeletedTotal.Inc()
	s.logger.Info("Item deleted", zap.Int("item_id", removed.ID))

	event := &models.ItemDeletedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeItemDeleted,
			Timestamp: time.Now(),
		},
		ItemID: removed.ID,
		Item:   removed,
	}
	if s.eventPublisher != nil {
		if err := s.eventPublisher.PublishItemDeleted(ctx, event); err != nil {
			s.logger.Error("Failed to publish ItemDeleted event", zap.Error(err))
		}
	}

	return removed, nil
}

// CategoryPriceAverages returns, per sorted category, the average of the
// parseable prices in that category. Items with unparsable prices are
// skipped; a category with no parseable price averages to zero.
func (s *CatalogService) CategoryPriceAverages(ctx context.Context) ([]string, []float64) {
	_, span := util.StartSpan(ctx, "CatalogService.CategoryPriceAverages")
	defer span.End()

	categories := s.store.Categories()
	items := s.store.GetAll()

	sums := make(map[string]float64, len(categories))
	counts := make(map[string]int, len(categories))
	for _, it := range items {
		v := query.PriceValue(it)
		if math.IsNaN(v) {
			continue
		}
		sums[it.Category] += v
		counts[it.Category]++
	}

	values := make([]float64, len(categories))
	for i, cat := range categories {
		if counts[cat] > 0 {
			values[i] = sums[cat] / float64(counts[cat])
		}
	}
	return categories, values
}
