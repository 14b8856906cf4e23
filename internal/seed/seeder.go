package seed

import (
	"context"
	"fmt"
	"time"

	"catalog-service/internal/models"
	"catalog-service/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogWriter replaces the whole catalog atomically
type CatalogWriter interface {
	ReplaceCatalog(ctx context.Context, products []models.Product) ([]models.Product, error)
}

// EventPublisher announces a replaced catalog
type EventPublisher interface {
	PublishCatalogSeeded(ctx context.Context, event *models.CatalogSeededEvent) error
}

// Result reports what a seed run wrote
type Result struct {
	Products []models.Product
	Plans    int
}

// Seeder clears the catalog and recreates it from family definitions.
// It must not run concurrently with live traffic.
type Seeder struct {
	writer    CatalogWriter
	publisher EventPublisher
	logger    *zap.Logger
}

// NewSeeder creates a seeder; a nil publisher skips the seeded event
func NewSeeder(writer CatalogWriter, publisher EventPublisher) *Seeder {
	return &Seeder{
		writer:    writer,
		publisher: publisher,
		logger:    util.Component("seed"),
	}
}

// Run expands the families, replaces the catalog and publishes CATALOG_SEEDED
func (s *Seeder) Run(ctx context.Context, families []Family) (*Result, error) {
	ctx, span := util.StartSpan(ctx, "Seeder.Run")
	defer span.End()

	products, err := Expand(families)
	if err != nil {
		util.SpanError(span, err)
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	created, err := s.writer.ReplaceCatalog(ctx, products)
	if err != nil {
		util.SpanError(span, err)
		return nil, fmt.Errorf("failed to replace catalog: %w", err)
	}

	result := &Result{Products: created}
	for _, p := range created {
		result.Plans += len(p.EMIPlans)
		s.logger.Debug("Created product", zap.Int64("product_id", p.ID), zap.String("slug", p.Slug))
	}
	util.SeededProducts.Set(float64(len(created)))

	s.logger.Info("Catalog seeded",
		zap.Int("products", len(created)),
		zap.Int("plans", result.Plans),
		zap.Int("families", len(families)))

	if s.publisher != nil {
		event := &models.CatalogSeededEvent{
			BaseEvent: models.BaseEvent{
				EventID:   uuid.New().String(),
				EventType: models.EventTypeCatalogSeeded,
				Timestamp: time.Now(),
			},
			ProductCount: len(created),
			PlanCount:    result.Plans,
			Families:     familyNames(families),
		}
		if err := s.publisher.PublishCatalogSeeded(ctx, event); err != nil {
			s.logger.Error("Failed to publish CatalogSeeded event", zap.Error(err))
		}
	}

	return result, nil
}

func familyNames(families []Family) []string {
	names := make([]string, len(families))
	for i, f := range families {
		names[i] = f.Name
	}
	return names
}
