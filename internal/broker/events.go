package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"catalog-service/internal/models"

	"github.com/segmentio/kafka-go"
)

// EventPublisher handles publishing catalog change events
type EventPublisher struct {
	producer *Producer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(producer *Producer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

// PublishItemCreated publishes an ItemCreated event
func (ep *EventPublisher) PublishItemCreated(ctx context.Context, event *models.ItemCreatedEvent) error {
	key := fmt.Sprintf("item-%d", event.ItemID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// PublishItemUpdated publishes an ItemUpdated event
func (ep *EventPublisher) PublishItemUpdated(ctx context.Context, event *models.ItemUpdatedEvent) error {
	key := fmt.Sprintf("item-%d", event.ItemID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// PublishItemDeleted publishes an ItemDeleted event
func (ep *EventPublisher) PublishItemDeleted(ctx context.Context, event *models.ItemDeletedEvent) error {
	key := fmt.Sprintf("item-%d", event.ItemID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// EventHandler routes incoming catalog events to registered callbacks.
type EventHandler struct {
	onItemCreated func(context.Context, *models.ItemCreatedEvent) error
	onItemUpdated func(context.Context, *models.ItemUpdatedEvent) error
	onItemDeleted func(context.Context, *models.ItemDeletedEvent) error
}

// NewEventHandler creates a new event handler
func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// OnItemCreated registers a handler for ItemCreated events
func (eh *EventHandler) OnItemCreated(handler func(context.Context, *models.ItemCreatedEvent) error) {
	eh.onItemCreated = handler
}

// OnItemUpdated registers a handler for ItemUpdated events
func (eh *EventHandler) OnItemUpdated(handler func(context.Context, *models.ItemUpdatedEvent) error) {
	eh.onItemUpdated = handler
}

// OnItemDeleted registers a handler for ItemDeleted events
func (eh *EventHandler) OnItemDeleted(handler func(context.Context, *models.ItemDeletedEvent) error) {
	eh.onItemDeleted = handler
}

// HandleMessage routes messages to appropriate handlers
func (eh *EventHandler) HandleMessage(ctx context.Context, msg kafka.Message) error {
	var baseEvent models.BaseEvent
	if err := json.Unmarshal(msg.Value, &baseEvent); err != nil {
		return fmt.Errorf("failed to unmarshal base event: %w", err)
	}

	switch baseEvent.EventType {
	case models.EventTypeItemCreated:
		if eh.onItemCreated != nil {
			var event models.ItemCreatedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal ItemCreated event: %w", err)
			}
			return eh.onItemCreated(ctx, &event)
		}

	case models.EventTypeItemUpdated:
		if eh.onItemUpdated != nil {
			var event models.ItemUpdatedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal ItemUpdated event: %w", err)
			}
			return eh.onItemUpdated(ctx, &event)
		}

	case models.EventTypeItemDeleted:
		if eh.onItemDeleted != nil {
			var event models.ItemDeletedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal ItemDeleted event: %w", err)
			}
			return eh.onItemDeleted(ctx, &event)
		}

	default:
		log.Printf("Unhandled event type: %s", baseEvent.EventType)
	}

	return nil
}
