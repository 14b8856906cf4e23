package worker

import (
	"context"

	"catalog-service/internal/broker"
	"catalog-service/internal/models"
	"catalog-service/internal/util"

	"go.uber.org/zap"
)

// CacheInvalidator drops every cached catalog entry
type CacheInvalidator interface {
	InvalidateCatalog(ctx context.Context) (int, error)
}

// CacheInvalidationWorker purges the product cache whenever the catalog is reseeded
type CacheInvalidationWorker struct {
	consumer     *broker.Consumer
	eventHandler *broker.EventHandler
	cache        CacheInvalidator
	logger       *zap.Logger
}

// NewCacheInvalidationWorker creates a new cache invalidation worker
func NewCacheInvalidationWorker(consumer *broker.Consumer, cache CacheInvalidator) *CacheInvalidationWorker {
	w := &CacheInvalidationWorker{
		consumer:     consumer,
		eventHandler: broker.NewEventHandler(),
		cache:        cache,
		logger:       util.Component("worker"),
	}
	w.eventHandler.OnCatalogSeeded(w.HandleCatalogSeeded)
	return w
}

// HandleCatalogSeeded invalidates the cache for a CatalogSeeded event
func (w *CacheInvalidationWorker) HandleCatalogSeeded(ctx context.Context, event *models.CatalogSeededEvent) error {
	ctx, span := util.StartSpan(ctx, "CacheInvalidationWorker.HandleCatalogSeeded")
	defer span.End()

	removed, err := w.cache.InvalidateCatalog(ctx)
	if err != nil {
		util.SpanError(span, err)
		w.logger.Error("Failed to invalidate catalog cache",
			zap.String("event_id", event.EventID),
			zap.Error(err))
		return err
	}

	util.CacheInvalidationsTotal.Inc()
	w.logger.Info("Catalog cache invalidated",
		zap.String("event_id", event.EventID),
		zap.Int("product_count", event.ProductCount),
		zap.Int("keys_removed", removed))
	return nil
}

// Start starts the worker
func (w *CacheInvalidationWorker) Start(ctx context.Context) error {
	w.logger.Info("Starting cache invalidation worker")
	return w.consumer.StartConsuming(ctx, w.eventHandler.HandleMessage)
}

// Stop stops the worker
func (w *CacheInvalidationWorker) Stop() error {
	w.logger.Info("Stopping cache invalidation worker")
	return w.consumer.Close()
}
