package event

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		if event.Type != eventType {
			t.Errorf("Expected event type %s, got %s", eventType, event.Type)
		}
		if event.Payload.(string) != "payload" {
			t.Errorf("Expected payload 'payload', got %v", event.Payload)
		}
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 handlers to be called, got %d", count)
	}
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err == nil {
		t.Error("Expected error from Publish, got nil")
	}
}

func TestDecodePayload(t *testing.T) {
	evt := NewItemBoughtEvent("u1", "bakery", "bread", 5)

	got, err := DecodePayload[ItemTradePayloadV1](evt.Payload)
	if err != nil {
		t.Fatalf("DecodePayload returned error: %v", err)
	}
	if got.ItemID != "bread" || got.Price != 5 {
		t.Errorf("unexpected payload %+v", got)
	}

	fromMap, err := DecodePayload[ItemTradePayloadV1](map[string]interface{}{"item_id": "apple", "price": 2})
	if err != nil {
		t.Fatalf("DecodePayload returned error: %v", err)
	}
	if fromMap.ItemID != "apple" || fromMap.Price != 2 {
		t.Errorf("unexpected payload %+v", fromMap)
	}

	ptr, err := DecodePayload[ItemTradePayloadV1](&ItemTradePayloadV1{ItemID: "arrow"})
	if err != nil || ptr.ItemID != "arrow" {
		t.Errorf("pointer payload: got %+v, %v", ptr, err)
	}

	if _, err := DecodePayload[ItemTradePayloadV1](nil); err == nil {
		t.Error("expected error for nil payload")
	}
}

func TestNewSessionEvent_Metadata(t *testing.T) {
	evt := NewSessionEvent(SessionOpened, "sock-1", "")
	if evt.GetMetadataValue("session_id") != "sock-1" {
		t.Errorf("expected session_id metadata, got %v", evt.GetMetadataValue("session_id"))
	}
	if evt.GetMetadataValue("missing") != nil {
		t.Error("expected nil for missing key")
	}
}
