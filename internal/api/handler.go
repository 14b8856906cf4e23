package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"catalog-service/internal/models"
	"catalog-service/internal/service"
	"catalog-service/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// CatalogQueries is the read API the handlers depend on
type CatalogQueries interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, rawID string) (*models.ProductDetail, error)
	GetBySlug(ctx context.Context, slug string) (*models.ProductDetail, error)
	GetByName(ctx context.Context, name string) ([]models.Product, error)
	Summary(ctx context.Context, rawID string, tenure int) (*service.AcquisitionSummary, error)
	Resolve(ctx context.Context, rawID string, change service.VariantChange) (*service.Resolution, error)
}

// Checker reports whether a dependency is usable
type Checker func(ctx context.Context) error

// Handler contains HTTP handlers
type Handler struct {
	catalog CatalogQueries
	checks  map[string]Checker
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler; checks back the readiness probe
func NewHandler(catalog CatalogQueries, checks map[string]Checker) *Handler {
	return &Handler{
		catalog: catalog,
		checks:  checks,
		logger:  util.Component("api"),
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(requestLogger(h.logger))
	router.Use(corsMiddleware())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	products := router.Group("/api/products")
	{
		products.GET("", h.listProducts)
		products.GET("/slug/:slug", h.getProductBySlug)
		products.GET("/name/:name", h.getProductsByName)
		products.GET("/:id", h.getProduct)
		products.GET("/:id/summary", h.getSummary)
		products.GET("/:id/resolve", h.resolveVariant)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck reports ready only when every dependency answers
func (h *Handler) readinessCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	failed := gin.H{}
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.logger.Warn("Readiness check failed", zap.String("dependency", name), zap.Error(err))
			failed[name] = "unavailable"
		}
	}

	if len(failed) > 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":       "not ready",
			"dependencies": failed,
			"time":         time.Now().Unix(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// listProducts handles GET /api/products
func (h *Handler) listProducts(c *gin.Context) {
	products, err := h.catalog.GetAll(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newProductList(products))
}

// getProduct handles GET /api/products/:id
func (h *Handler) getProduct(c *gin.Context) {
	detail, err := h.catalog.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newProductDetail(detail))
}

// getProductBySlug handles GET /api/products/slug/:slug
func (h *Handler) getProductBySlug(c *gin.Context) {
	detail, err := h.catalog.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newProductDetail(detail))
}

// getProductsByName handles GET /api/products/name/:name
func (h *Handler) getProductsByName(c *gin.Context) {
	products, err := h.catalog.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newProductList(products))
}

type summaryQuery struct {
	Tenure int `form:"tenure" binding:"required,min=1"`
}

// getSummary handles GET /api/products/:id/summary?tenure=N
func (h *Handler) getSummary(c *gin.Context) {
	var q summaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid tenure",
			"details": err.Error(),
		})
		return
	}

	summary, err := h.catalog.Summary(c.Request.Context(), c.Param("id"), q.Tenure)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

type resolveQuery struct {
	Color   string `form:"color"`
	Storage string `form:"storage"`
}

// resolveVariant handles GET /api/products/:id/resolve?color=X or ?storage=Y
func (h *Handler) resolveVariant(c *gin.Context) {
	var q resolveQuery
	if err := c.ShouldBindQuery(&q); err != nil || (q.Color == "") == (q.Storage == "") {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Exactly one of color or storage is required",
		})
		return
	}

	res, err := h.catalog.Resolve(c.Request.Context(), c.Param("id"),
		service.VariantChange{Color: q.Color, Storage: q.Storage})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// writeError maps lookup errors to responses without leaking store details
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, service.ErrPlanNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "EMI plan not found"})
	default:
		h.logger.Error("Request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}

// requestLogger logs one line per request
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}

// corsMiddleware allows any origin to read the catalog
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
