package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"catalog-service/internal/models"
	"catalog-service/internal/redisclient"
	"catalog-service/internal/store"
	"catalog-service/internal/util"

	"go.uber.org/zap"
)

var (
	// ErrProductNotFound is returned when no product matches the lookup key
	ErrProductNotFound = errors.New("product not found")
	// ErrPlanNotFound is returned when the product has no plan with the requested tenure
	ErrPlanNotFound = errors.New("emi plan not found")
)

// ProductStore is the read side of the catalog store
type ProductStore interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	ListProductsByName(ctx context.Context, name string) ([]models.Product, error)
	ListVariants(ctx context.Context, name string) ([]models.VariantOption, error)
}

// ProductCache stores JSON encoded lookup results
type ProductCache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// CatalogService answers product lookups, backed by the store and an optional cache
type CatalogService struct {
	store    ProductStore
	cache    ProductCache
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewCatalogService creates a new catalog service. A nil cache disables caching.
func NewCatalogService(store ProductStore, cache ProductCache, cacheTTL time.Duration) *CatalogService {
	return &CatalogService{
		store:    store,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   util.Component("catalog"),
	}
}

// GetAll returns every product with its EMI plans, ordered by id
func (s *CatalogService) GetAll(ctx context.Context) ([]models.Product, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.GetAll")
	defer span.End()

	products, err := readThrough(ctx, s, "get_all", redisclient.Key("products", "all"),
		func(ctx context.Context) ([]models.Product, error) {
			return s.store.ListProducts(ctx)
		})
	if err != nil {
		util.SpanError(span, err)
		return nil, err
	}
	return products, nil
}

// GetByID returns a product with its plans and family variants.
// Input that is not a positive integer is reported as ErrProductNotFound.
func (s *CatalogService) GetByID(ctx context.Context, rawID string) (*models.ProductDetail, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.GetByID")
	defer span.End()

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		s.observe("get_by_id", ErrProductNotFound)
		return nil, ErrProductNotFound
	}

	detail, err := readThrough(ctx, s, "get_by_id", redisclient.Key("product", "id", strconv.FormatInt(id, 10)),
		func(ctx context.Context) (*models.ProductDetail, error) {
			product, err := s.store.GetProductByID(ctx, id)
			if err != nil {
				return nil, err
			}
			return s.withVariants(ctx, product)
		})
	if err != nil {
		util.SpanError(span, err)
		return nil, err
	}
	return detail, nil
}

// GetBySlug returns a product with its plans and family variants
func (s *CatalogService) GetBySlug(ctx context.Context, slug string) (*models.ProductDetail, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.GetBySlug")
	defer span.End()

	detail, err := readThrough(ctx, s, "get_by_slug", redisclient.Key("product", "slug", slug),
		func(ctx context.Context) (*models.ProductDetail, error) {
			product, err := s.store.GetProductBySlug(ctx, slug)
			if err != nil {
				return nil, err
			}
			return s.withVariants(ctx, product)
		})
	if err != nil {
		util.SpanError(span, err)
		return nil, err
	}
	return detail, nil
}

// GetByName returns every product of the named family, matching case-insensitively.
// An empty family is reported as ErrProductNotFound.
func (s *CatalogService) GetByName(ctx context.Context, name string) ([]models.Product, error) {
	ctx, span := util.StartSpan(ctx, "CatalogService.GetByName")
	defer span.End()

	key := redisclient.Key("products", "name", strings.ToLower(name))
	products, err := readThrough(ctx, s, "get_by_name", key,
		func(ctx context.Context) ([]models.Product, error) {
			products, err := s.store.ListProductsByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if len(products) == 0 {
				return nil, ErrProductNotFound
			}
			return products, nil
		})
	if err != nil {
		util.SpanError(span, err)
		return nil, err
	}
	return products, nil
}

// Summary returns the acquisition summary for the product's plan with the given tenure
func (s *CatalogService) Summary(ctx context.Context, rawID string, tenure int) (*AcquisitionSummary, error) {
	detail, err := s.GetByID(ctx, rawID)
	if err != nil {
		return nil, err
	}

	plan, err := SelectPlan(&detail.Product, tenure)
	if err != nil {
		return nil, err
	}

	summary := BuildSummary(&detail.Product, plan)
	return &summary, nil
}

// VariantChange is a requested switch of exactly one variant dimension
type VariantChange struct {
	Color   string
	Storage string
}

// Resolution is the outcome of a variant change
type Resolution struct {
	ProductID int64  `json:"productId"`
	Slug      string `json:"slug"`
	Changed   bool   `json:"changed"`
}

// Resolve finds the sibling to navigate to for a color or storage change.
// When no sibling matches, the current product is kept and Changed is false.
func (s *CatalogService) Resolve(ctx context.Context, rawID string, change VariantChange) (*Resolution, error) {
	detail, err := s.GetByID(ctx, rawID)
	if err != nil {
		return nil, err
	}

	current := detail.Option()

	var (
		target    models.VariantOption
		ok        bool
		dimension string
	)
	if change.Color != "" {
		dimension = "color"
		target, ok = ResolveColor(current, detail.Variants, change.Color)
	} else {
		dimension = "storage"
		target, ok = ResolveStorage(current, detail.Variants, change.Storage)
	}

	if !ok {
		util.VariantResolutionsTotal.WithLabelValues(dimension, "unmatched").Inc()
		s.logger.Debug("Variant change matched no sibling",
			zap.Int64("product_id", current.ID),
			zap.String("color", change.Color),
			zap.String("storage", change.Storage))
		return &Resolution{ProductID: current.ID, Slug: current.Slug}, nil
	}

	util.VariantResolutionsTotal.WithLabelValues(dimension, "matched").Inc()
	return &Resolution{
		ProductID: target.ID,
		Slug:      target.Slug,
		Changed:   target.ID != current.ID,
	}, nil
}

// withVariants attaches the family siblings, read separately from the product itself
func (s *CatalogService) withVariants(ctx context.Context, product *models.Product) (*models.ProductDetail, error) {
	variants, err := s.store.ListVariants(ctx, product.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to load variants: %w", err)
	}
	return &models.ProductDetail{Product: *product, Variants: variants}, nil
}

func (s *CatalogService) observe(operation string, err error) {
	result := "ok"
	switch {
	case errors.Is(err, ErrProductNotFound):
		result = "not_found"
	case err != nil:
		result = "error"
	}
	util.CatalogLookupsTotal.WithLabelValues(operation, result).Inc()
}

// readThrough serves key from the cache, falling back to load and caching its result.
// Cache faults are logged and never fail the lookup.
func readThrough[T any](ctx context.Context, s *CatalogService, operation, key string, load func(context.Context) (T, error)) (T, error) {
	start := time.Now()
	defer func() {
		util.CatalogLookupLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	var value T
	if s.cache != nil {
		err := s.cache.GetJSON(ctx, key, &value)
		switch {
		case err == nil:
			util.CacheHitsTotal.WithLabelValues(operation).Inc()
			s.observe(operation, nil)
			return value, nil
		case errors.Is(err, redisclient.ErrCacheMiss):
			util.CacheMissesTotal.WithLabelValues(operation).Inc()
		default:
			util.CacheErrorsTotal.Inc()
			s.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	value, err := load(ctx)
	if errors.Is(err, store.ErrNotFound) {
		err = ErrProductNotFound
	}
	s.observe(operation, err)

	if err != nil {
		var zero T
		if errors.Is(err, ErrProductNotFound) {
			s.logger.Debug("Product not found", zap.String("operation", operation), zap.String("key", key))
			return zero, ErrProductNotFound
		}
		s.logger.Error("Catalog lookup failed", zap.String("operation", operation), zap.Error(err))
		return zero, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, value, s.cacheTTL); err != nil {
			util.CacheErrorsTotal.Inc()
			s.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return value, nil
}
