package metrics

import (
	"context"

	"github.com/osse101/TextRealm_Go/internal/event"
	"github.com/osse101/TextRealm_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.ItemBought,
		event.ItemSold,
		event.SessionOpened,
		event.SessionClosed,
		event.ShopResupplied,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.ItemBought, event.ItemSold:
		payload, err := event.DecodePayload[event.ItemTradePayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadUndecodable, "type", evt.Type, "error", err)
			return nil
		}
		if evt.Type == event.ItemBought {
			ItemsBought.WithLabelValues(payload.ItemID).Inc()
			MoneySpent.Add(float64(payload.Price))
		} else {
			ItemsSold.WithLabelValues(payload.ItemID).Inc()
			MoneyEarned.Add(float64(payload.Price))
		}

	case event.SessionOpened:
		SessionsConnected.Inc()

	case event.SessionClosed:
		SessionsConnected.Dec()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
