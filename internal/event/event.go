package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/TextRealm_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// Domain event types
const (
	ItemBought     Type = domain.EventTypeItemBought
	ItemSold       Type = domain.EventTypeItemSold
	SessionOpened  Type = domain.EventTypeSessionOpened
	SessionClosed  Type = domain.EventTypeSessionClosed
	ShopResupplied Type = domain.EventTypeShopResupplied
)

// Typed event payloads for type safety

// ItemTradePayloadV1 is the payload for item.bought and item.sold
type ItemTradePayloadV1 struct {
	UserID    string `json:"user_id"`
	ShopID    string `json:"shop_id"`
	ItemID    string `json:"item_id"`
	Price     int    `json:"price"`
	ExpGained int    `json:"exp_gained,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// SessionPayloadV1 is the payload for session lifecycle events
type SessionPayloadV1 struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// ShopResuppliedPayloadV1 is the payload for shop.resupplied
type ShopResuppliedPayloadV1 struct {
	ShopID  string `json:"shop_id"`
	Entries int    `json:"entries"`
}

// Type-safe event constructors

// NewItemBoughtEvent creates an item.bought event
func NewItemBoughtEvent(userID, shopID, itemID string, price int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemBought,
		Payload: ItemTradePayloadV1{
			UserID:    userID,
			ShopID:    shopID,
			ItemID:    itemID,
			Price:     price,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewItemSoldEvent creates an item.sold event
func NewItemSoldEvent(userID, shopID, itemID string, price, expGained int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemSold,
		Payload: ItemTradePayloadV1{
			UserID:    userID,
			ShopID:    shopID,
			ItemID:    itemID,
			Price:     price,
			ExpGained: expGained,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewSessionEvent creates a session.opened or session.closed event
func NewSessionEvent(t Type, sessionID, userID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: SessionPayloadV1{
			SessionID: sessionID,
			UserID:    userID,
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			"session_id": sessionID,
		},
	}
}

// NewShopResuppliedEvent creates a shop.resupplied event
func NewShopResuppliedEvent(shopID string, entries int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ShopResupplied,
		Payload: ShopResuppliedPayloadV1{ShopID: shopID, Entries: entries},
	}
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously, collecting their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe registers a handler for an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
