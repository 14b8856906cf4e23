package broker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"catalog-service/internal/models"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockWriter struct {
	Err      error
	messages []kafka.Message
	closed   bool
}

func (m *MockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if m.Err != nil {
		return m.Err
	}
	m.messages = append(m.messages, msgs...)
	return nil
}

func (m *MockWriter) Close() error {
	m.closed = true
	return nil
}

func seededEvent() *models.CatalogSeededEvent {
	return &models.CatalogSeededEvent{
		BaseEvent: models.BaseEvent{
			EventID:   "evt-1",
			EventType: models.EventTypeCatalogSeeded,
			Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		ProductCount: 25,
		PlanCount:    125,
		Families:     []string{"Google Pixel 9 Pro"},
	}
}

func TestPublishCatalogSeeded(t *testing.T) {
	writer := &MockWriter{}
	publisher := NewEventPublisher(NewProducerWithWriter(writer))

	require.NoError(t, publisher.PublishCatalogSeeded(context.Background(), seededEvent()))

	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	assert.Equal(t, "catalog", string(msg.Key))

	var decoded models.CatalogSeededEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "evt-1", decoded.EventID)
	assert.Equal(t, 25, decoded.ProductCount)
}

func TestPublishFailure(t *testing.T) {
	producer := NewProducerWithWriter(&MockWriter{Err: errors.New("leader not available")})

	err := producer.PublishEvent(context.Background(), "catalog", seededEvent())
	assert.ErrorContains(t, err, "failed to write message to kafka")
}

func TestHandleMessage(t *testing.T) {
	raw, err := json.Marshal(seededEvent())
	require.NoError(t, err)

	var received *models.CatalogSeededEvent
	handler := NewEventHandler()
	handler.OnCatalogSeeded(func(ctx context.Context, event *models.CatalogSeededEvent) error {
		received = event
		return nil
	})

	require.NoError(t, handler.HandleMessage(context.Background(), kafka.Message{Value: raw}))
	require.NotNil(t, received)
	assert.Equal(t, 125, received.PlanCount)
}

func TestHandleMessageIgnoresUnknownTypes(t *testing.T) {
	handler := NewEventHandler()
	called := false
	handler.OnCatalogSeeded(func(ctx context.Context, event *models.CatalogSeededEvent) error {
		called = true
		return nil
	})

	msg := kafka.Message{Value: []byte(`{"event_id":"x","event_type":"PRICE_CHANGED"}`)}
	assert.NoError(t, handler.HandleMessage(context.Background(), msg))
	assert.False(t, called)
}

func TestHandleMessageRejectsGarbage(t *testing.T) {
	handler := NewEventHandler()
	assert.Error(t, handler.HandleMessage(context.Background(), kafka.Message{Value: []byte("{")}))
}
