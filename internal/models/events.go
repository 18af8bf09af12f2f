package models

import "time"

// Event types
const (
	EventTypeItemCreated = "ITEM_CREATED"
	EventTypeItemUpdated = "ITEM_UPDATED"
	EventTypeItemDeleted = "ITEM_DELETED"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// ItemCreatedEvent published when an item is added to the catalog
type ItemCreatedEvent struct {
	BaseEvent
	ItemID int  `json:"item_id"`
	Item   Item `json:"item"`
}

// ItemUpdatedEvent published when an item is patched
type ItemUpdatedEvent struct {
	BaseEvent
	ItemID int  `json:"item_id"`
	Item   Item `json:"item"`
}

// ItemDeletedEvent published when an item is removed
type ItemDeletedEvent struct {
	BaseEvent
	ItemID int  `json:"item_id"`
	Item   Item `json:"item"`
}
