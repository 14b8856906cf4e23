package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"catalog-service/internal/models"

	"github.com/jmoiron/sqlx"
)

const productColumns = `id, slug, name, brand, variant, color, description,
	highlights, mrp, price, image_urls, created_at`

// ListProducts retrieves all products with their EMI plans, ordered by id
func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	err := s.db.SelectContext(ctx, &products,
		"SELECT "+productColumns+" FROM products ORDER BY id")
	if err != nil {
		return nil, err
	}

	if err := s.attachPlans(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProductByID retrieves a product and its EMI plans by ID
func (s *Store) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	err := s.db.GetContext(ctx, &product,
		"SELECT "+productColumns+" FROM products WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return s.withPlans(ctx, &product)
}

// GetProductBySlug retrieves a product and its EMI plans by slug
func (s *Store) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := s.db.GetContext(ctx, &product,
		"SELECT "+productColumns+" FROM products WHERE slug = $1", slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product %q: %w", slug, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return s.withPlans(ctx, &product)
}

// ListProductsByName retrieves every product of a family, matching the name case-insensitively
func (s *Store) ListProductsByName(ctx context.Context, name string) ([]models.Product, error) {
	products := []models.Product{}
	err := s.db.SelectContext(ctx, &products,
		"SELECT "+productColumns+" FROM products WHERE LOWER(name) = LOWER($1) ORDER BY id", name)
	if err != nil {
		return nil, err
	}

	if err := s.attachPlans(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

// ListVariants retrieves the variant projection of a family, ordered by id
func (s *Store) ListVariants(ctx context.Context, name string) ([]models.VariantOption, error) {
	variants := []models.VariantOption{}
	err := s.db.SelectContext(ctx, &variants,
		`SELECT id, slug, variant, color, price, image_urls
		FROM products WHERE LOWER(name) = LOWER($1) ORDER BY id`, name)
	return variants, err
}

// ListPlanIDs returns the ids of every stored EMI plan
func (s *Store) ListPlanIDs(ctx context.Context) ([]int64, error) {
	ids := []int64{}
	err := s.db.SelectContext(ctx, &ids, "SELECT id FROM emi_plans ORDER BY id")
	return ids, err
}

// GetPlansByIDs retrieves EMI plans by their IDs
func (s *Store) GetPlansByIDs(ctx context.Context, ids []int64) ([]models.EMIPlan, error) {
	if len(ids) == 0 {
		return []models.EMIPlan{}, nil
	}

	query, args, err := sqlx.In("SELECT * FROM emi_plans WHERE id IN (?) ORDER BY id", ids)
	if err != nil {
		return nil, err
	}
	query = s.db.Rebind(query)

	var plans []models.EMIPlan
	err = s.db.SelectContext(ctx, &plans, query, args...)
	return plans, err
}

func (s *Store) withPlans(ctx context.Context, product *models.Product) (*models.Product, error) {
	products := []models.Product{*product}
	if err := s.attachPlans(ctx, products); err != nil {
		return nil, err
	}
	return &products[0], nil
}

// attachPlans loads the plans of all given products in one query
func (s *Store) attachPlans(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]int64, len(products))
	index := make(map[int64]int, len(products))
	for i := range products {
		ids[i] = products[i].ID
		index[products[i].ID] = i
		products[i].EMIPlans = []models.EMIPlan{}
	}

	query, args, err := sqlx.In(
		"SELECT * FROM emi_plans WHERE product_id IN (?) ORDER BY product_id, tenure", ids)
	if err != nil {
		return err
	}
	query = s.db.Rebind(query)

	var plans []models.EMIPlan
	if err := s.db.SelectContext(ctx, &plans, query, args...); err != nil {
		return fmt.Errorf("failed to load emi plans: %w", err)
	}

	for _, plan := range plans {
		i := index[plan.ProductID]
		products[i].EMIPlans = append(products[i].EMIPlans, plan)
	}
	return nil
}

// ReplaceCatalog deletes every EMI plan and product, then inserts the given
// products and their plans in order, all within one transaction.
// The returned products carry their new IDs.
func (s *Store) ReplaceCatalog(ctx context.Context, products []models.Product) ([]models.Product, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM emi_plans"); err != nil {
		return nil, fmt.Errorf("failed to clear emi plans: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM products"); err != nil {
		return nil, fmt.Errorf("failed to clear products: %w", err)
	}

	created := make([]models.Product, 0, len(products))
	for _, p := range products {
		product := p
		err := tx.QueryRowxContext(ctx, `
			INSERT INTO products (slug, name, brand, variant, color, description,
				highlights, mrp, price, image_urls)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id, created_at`,
			product.Slug, product.Name, product.Brand, product.Variant, product.Color,
			product.Description, product.Highlights, product.MRP, product.Price,
			product.ImageURLs,
		).Scan(&product.ID, &product.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to insert product %s: %w", product.Slug, err)
		}

		plans := make([]models.EMIPlan, 0, len(p.EMIPlans))
		for _, plan := range p.EMIPlans {
			plan.ProductID = product.ID
			err := tx.GetContext(ctx, &plan.ID, `
				INSERT INTO emi_plans (product_id, tenure, interest_rate, monthly_amount, cashback)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING id`,
				plan.ProductID, plan.Tenure, plan.InterestRate, plan.MonthlyAmount, plan.Cashback)
			if err != nil {
				return nil, fmt.Errorf("failed to insert emi plan for %s: %w", product.Slug, err)
			}
			plans = append(plans, plan)
		}
		product.EMIPlans = plans

		created = append(created, product)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return created, nil
}
