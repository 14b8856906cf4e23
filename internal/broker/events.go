package broker

import (
	"context"
	"encoding/json"
	"fmt"

	"catalog-service/internal/models"
	"catalog-service/internal/util"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// EventPublisher handles publishing catalog events
type EventPublisher struct {
	producer *Producer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(producer *Producer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

// PublishCatalogSeeded publishes CatalogSeeded event
func (ep *EventPublisher) PublishCatalogSeeded(ctx context.Context, event *models.CatalogSeededEvent) error {
	return ep.producer.PublishEvent(ctx, "catalog", event)
}

// EventHandler handles incoming events
type EventHandler struct {
	onCatalogSeeded func(context.Context, *models.CatalogSeededEvent) error
	logger          *zap.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler() *EventHandler {
	return &EventHandler{logger: util.Component("broker")}
}

// OnCatalogSeeded registers a handler for CatalogSeeded events
func (eh *EventHandler) OnCatalogSeeded(handler func(context.Context, *models.CatalogSeededEvent) error) {
	eh.onCatalogSeeded = handler
}

// HandleMessage routes messages to appropriate handlers
func (eh *EventHandler) HandleMessage(ctx context.Context, msg kafka.Message) error {
	var baseEvent models.BaseEvent
	if err := json.Unmarshal(msg.Value, &baseEvent); err != nil {
		return fmt.Errorf("failed to unmarshal base event: %w", err)
	}

	eh.logger.Debug("Handling event",
		zap.String("type", baseEvent.EventType),
		zap.String("id", baseEvent.EventID))

	switch baseEvent.EventType {
	case models.EventTypeCatalogSeeded:
		if eh.onCatalogSeeded != nil {
			var event models.CatalogSeededEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal CatalogSeeded event: %w", err)
			}
			return eh.onCatalogSeeded(ctx, &event)
		}

	default:
		eh.logger.Info("Unhandled event type", zap.String("type", baseEvent.EventType))
	}

	return nil
}
