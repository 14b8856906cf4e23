package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CatalogLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_lookups_total",
		Help: "Total number of catalog lookups by operation and result",
	}, []string{"operation", "result"})

	CatalogLookupLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_lookup_latency_seconds",
		Help:    "Latency of catalog lookups",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	CacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_cache_hits_total",
		Help: "Total number of product cache hits",
	}, []string{"operation"})

	CacheMissesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_cache_misses_total",
		Help: "Total number of product cache misses",
	}, []string{"operation"})

	CacheErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_cache_errors_total",
		Help: "Total number of failed cache reads or writes",
	})

	CacheInvalidationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_cache_invalidations_total",
		Help: "Total number of catalog cache invalidations",
	})

	VariantResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_variant_resolutions_total",
		Help: "Total number of variant resolutions by dimension and outcome",
	}, []string{"dimension", "outcome"})

	SeededProducts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_seeded_products",
		Help: "Number of products written by the last seed run",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
