//go:build integration
// +build integration

package store

import (
	"context"
	"testing"
	"time"

	"catalog-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestStore starts a PostgreSQL container and returns a migrated store
func setupTestStore(t *testing.T) *Store {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("catalog_test"),
		postgres.WithUsername("app"),
		postgres.WithPassword("secret"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	store, err := NewStore(connStr)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.Migrate(ctx, "up"))
	return store
}

func phone(slug, name, variant, color string, mrp, price int64) models.Product {
	return models.Product{
		Slug:       slug,
		Name:       name,
		Brand:      "Test",
		Variant:    variant,
		Color:      color,
		Highlights: []string{"A fast chip"},
		MRP:        mrp,
		Price:      price,
		ImageURLs:  []string{"/images/" + slug + ".png"},
		EMIPlans: []models.EMIPlan{
			{Tenure: 12, InterestRate: 10.5, MonthlyAmount: price * 1105 / 12000, Cashback: 1000},
			{Tenure: 3, InterestRate: 0, MonthlyAmount: price / 3, Cashback: 3000},
		},
	}
}

func testCatalog() []models.Product {
	return []models.Product{
		phone("pixel-9-pro-128gb-obsidian", "Pixel 9 Pro", "128GB", "Obsidian", 109999, 99999),
		phone("pixel-9-pro-128gb-porcelain", "Pixel 9 Pro", "128GB", "Porcelain", 109999, 99999),
		phone("pixel-9-pro-256gb-obsidian", "Pixel 9 Pro", "256GB", "Obsidian", 119999, 109999),
		phone("oneplus-13-256gb-black-eclipse", "OnePlus 13", "256GB", "Black Eclipse", 69999, 69999),
	}
}

func TestReplaceCatalogRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	created, err := store.ReplaceCatalog(ctx, testCatalog())
	require.NoError(t, err)
	require.Len(t, created, 4)

	for i, want := range testCatalog() {
		got, err := store.GetProductByID(ctx, created[i].ID)
		require.NoError(t, err)

		assert.Equal(t, want.Slug, got.Slug)
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.Variant, got.Variant)
		assert.Equal(t, want.Color, got.Color)
		assert.Equal(t, want.MRP, got.MRP)
		assert.Equal(t, want.Price, got.Price)
		assert.Equal(t, want.ImageURLs, got.ImageURLs)
		require.Len(t, got.EMIPlans, 2)
	}
}

func TestPlansOrderedByTenure(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	_, err := store.ReplaceCatalog(ctx, testCatalog())
	require.NoError(t, err)

	product, err := store.GetProductBySlug(ctx, "pixel-9-pro-256gb-obsidian")
	require.NoError(t, err)

	require.Len(t, product.EMIPlans, 2)
	assert.Equal(t, 3, product.EMIPlans[0].Tenure)
	assert.Equal(t, 12, product.EMIPlans[1].Tenure)
	assert.Equal(t, 10.5, product.EMIPlans[1].InterestRate)
	assert.Equal(t, product.ID, product.EMIPlans[1].ProductID)
}

func TestLookupsNotFound(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	_, err := store.GetProductByID(ctx, 424242)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.GetProductBySlug(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	products, err := store.ListProductsByName(ctx, "Nokia 3310")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestFamilyLookupIgnoresCase(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	_, err := store.ReplaceCatalog(ctx, testCatalog())
	require.NoError(t, err)

	products, err := store.ListProductsByName(ctx, "PIXEL 9 pro")
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Less(t, products[0].ID, products[1].ID)

	variants, err := store.ListVariants(ctx, "pixel 9 pro")
	require.NoError(t, err)
	require.Len(t, variants, 3)
	assert.Equal(t, "Porcelain", variants[1].Color)
}

func TestReseedCascadesPlans(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	_, err := store.ReplaceCatalog(ctx, testCatalog())
	require.NoError(t, err)

	oldIDs, err := store.ListPlanIDs(ctx)
	require.NoError(t, err)
	require.Len(t, oldIDs, 8)

	_, err = store.ReplaceCatalog(ctx, testCatalog()[:1])
	require.NoError(t, err)

	stale, err := store.GetPlansByIDs(ctx, oldIDs)
	require.NoError(t, err)
	assert.Empty(t, stale)

	all, err := store.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestReplaceCatalogRollsBack(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	_, err := store.ReplaceCatalog(ctx, testCatalog())
	require.NoError(t, err)

	bad := testCatalog()
	bad[1].Slug = bad[0].Slug

	_, err = store.ReplaceCatalog(ctx, bad)
	require.Error(t, err)

	all, err := store.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4, "a failed reseed must leave the previous catalog intact")
}
