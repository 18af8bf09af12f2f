package worker

import (
	"context"
	"log"

	"catalog-service/internal/broker"
	"catalog-service/internal/models"

	"go.uber.org/zap"
)

// AuditWorker consumes catalog change events and writes them to the audit
// log. The catalog itself has no durable store; this trail is the only record
// of who changed what within a deployment.
type AuditWorker struct {
	consumer     *broker.Consumer
	eventHandler *broker.EventHandler
	logger       *zap.Logger
}

// NewAuditWorker creates an audit worker wired to the item event topic.
func NewAuditWorker(consumer *broker.Consumer, logger *zap.Logger) *AuditWorker {
	eventHandler := broker.NewEventHandler()
	w := &AuditWorker{
		consumer:     consumer,
		eventHandler: eventHandler,
		logger:       logger,
	}

	eventHandler.OnItemCreated(w.handleCreated)
	eventHandler.OnItemUpdated(w.handleUpdated)
	eventHandler.OnItemDeleted(w.handleDeleted)

	return w
}

// Start starts the worker
func (w *AuditWorker) Start(ctx context.Context) error {
	log.Println("Starting audit worker...")
	return w.consumer.StartConsuming(ctx, w.eventHandler.HandleMessage)
}

// Stop stops the worker
func (w *AuditWorker) Stop() error {
	log.Println("Stopping audit worker...")
	return w.consumer.Close()
}

func (w *AuditWorker) handleCreated(_ context.Context, event *models.ItemCreatedEvent) error {
	w.logger.Info("Audit: item created",
		zap.String("event_id", event.EventID),
		zap.Int("item_id", event.ItemID),
		zap.String("sku", event.Item.SKU),
		zap.String("item", event.Item.Item))
	return nil
}

func (w *AuditWorker) handleUpdated(_ context.Context, event *models.ItemUpdatedEvent) error {
	w.logger.Info("Audit: item updated",
		zap.String("event_id", event.EventID),
		zap.Int("item_id", event.ItemID),
		zap.String("sku", event.Item.SKU))
	return nil
}

func (w *AuditWorker) handleDeleted(_ context.Context, event *models.ItemDeletedEvent) error {
	w.logger.Info("Audit: item deleted",
		zap.String("event_id", event.EventID),
		zap.Int("item_id", event.ItemID),
		zap.String("sku", event.Item.SKU))
	return nil
}
