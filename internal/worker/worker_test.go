package worker

import (
	"context"
	"errors"
	"testing"

	"catalog-service/internal/models"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

type MockInvalidator struct {
	Removed int
	Err     error
	calls   int
}

func (m *MockInvalidator) InvalidateCatalog(ctx context.Context) (int, error) {
	m.calls++
	return m.Removed, m.Err
}

func TestHandleCatalogSeeded(t *testing.T) {
	cache := &MockInvalidator{Removed: 12}
	w := NewCacheInvalidationWorker(nil, cache)

	event := &models.CatalogSeededEvent{
		BaseEvent:    models.BaseEvent{EventID: "evt-1", EventType: models.EventTypeCatalogSeeded},
		ProductCount: 25,
	}

	assert.NoError(t, w.HandleCatalogSeeded(context.Background(), event))
	assert.Equal(t, 1, cache.calls)
}

func TestHandleCatalogSeededFailure(t *testing.T) {
	cache := &MockInvalidator{Err: errors.New("redis down")}
	w := NewCacheInvalidationWorker(nil, cache)

	err := w.HandleCatalogSeeded(context.Background(), &models.CatalogSeededEvent{})
	assert.Error(t, err)
}

func TestSeededMessageRoutesToInvalidation(t *testing.T) {
	cache := &MockInvalidator{}
	w := NewCacheInvalidationWorker(nil, cache)

	msg := kafka.Message{Value: []byte(`{"event_id":"evt-2","event_type":"CATALOG_SEEDED","product_count":3}`)}
	assert.NoError(t, w.eventHandler.HandleMessage(context.Background(), msg))
	assert.Equal(t, 1, cache.calls)
}
