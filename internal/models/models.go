package models

import (
	"time"

	"github.com/lib/pq"
)

// Product represents a single sellable phone variant in the catalog
type Product struct {
	ID          int64          `db:"id" json:"id"`
	Slug        string         `db:"slug" json:"slug"`
	Name        string         `db:"name" json:"name"`
	Brand       string         `db:"brand" json:"brand"`
	Variant     string         `db:"variant" json:"variant"`
	Color       string         `db:"color" json:"color"`
	Description string         `db:"description" json:"description"`
	Highlights  pq.StringArray `db:"highlights" json:"highlights"`
	MRP         int64          `db:"mrp" json:"mrp"`
	Price       int64          `db:"price" json:"price"`
	ImageURLs   pq.StringArray `db:"image_urls" json:"imageUrls"`
	CreatedAt   time.Time      `db:"created_at" json:"createdAt"`
	EMIPlans    []EMIPlan      `db:"-" json:"emiPlans"`
}

// EMIPlan represents an installment plan owned by a product
type EMIPlan struct {
	ID            int64   `db:"id" json:"id"`
	ProductID     int64   `db:"product_id" json:"productId"`
	Tenure        int     `db:"tenure" json:"tenure"`
	InterestRate  float64 `db:"interest_rate" json:"interestRate"`
	MonthlyAmount int64   `db:"monthly_amount" json:"monthlyAmount"`
	Cashback      int64   `db:"cashback" json:"cashback"`
}

// VariantOption is the lightweight projection of a family sibling.
// It is the only variant shape exchanged between the store, the API and
// the variant resolver.
type VariantOption struct {
	ID        int64          `db:"id" json:"id"`
	Slug      string         `db:"slug" json:"slug"`
	Variant   string         `db:"variant" json:"variant"`
	Color     string         `db:"color" json:"color"`
	Price     int64          `db:"price" json:"price"`
	ImageURLs pq.StringArray `db:"image_urls" json:"imageUrls"`
}

// Option projects a product to its variant shape
func (p *Product) Option() VariantOption {
	return VariantOption{
		ID:        p.ID,
		Slug:      p.Slug,
		Variant:   p.Variant,
		Color:     p.Color,
		Price:     p.Price,
		ImageURLs: p.ImageURLs,
	}
}

// PlanByTenure returns the product's plan with the given tenure
func (p *Product) PlanByTenure(tenure int) (EMIPlan, bool) {
	for _, plan := range p.EMIPlans {
		if plan.Tenure == tenure {
			return plan, true
		}
	}
	return EMIPlan{}, false
}

// ProductDetail is a product together with the other variants of its family
type ProductDetail struct {
	Product
	Variants []VariantOption `json:"variants"`
}
