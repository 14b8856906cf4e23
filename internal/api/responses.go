package api

import (
	"catalog-service/internal/models"
	"catalog-service/internal/service"
)

// PlanResponse is an EMI plan with its derived totals
type PlanResponse struct {
	models.EMIPlan
	TotalPayable     int64 `json:"totalPayable"`
	NetAfterCashback int64 `json:"netAfterCashback"`
	TotalSavings     int64 `json:"totalSavings"`
}

// ProductResponse is a product with its discount and derived plan totals
type ProductResponse struct {
	models.Product
	DiscountPercent int64          `json:"discountPercent"`
	EMIPlans        []PlanResponse `json:"emiPlans"`
}

// ProductDetailResponse adds the family variants and the offered dimensions
type ProductDetailResponse struct {
	ProductResponse
	Variants []models.VariantOption `json:"variants"`
	Colors   []string               `json:"colors"`
	Storages []string               `json:"storages"`
}

func newProduct(p *models.Product) ProductResponse {
	plans := make([]PlanResponse, 0, len(p.EMIPlans))
	for _, plan := range p.EMIPlans {
		plans = append(plans, PlanResponse{
			EMIPlan:          plan,
			TotalPayable:     service.TotalPayable(plan),
			NetAfterCashback: service.NetAfterCashback(plan),
			TotalSavings:     service.TotalSavings(p, plan),
		})
	}

	return ProductResponse{
		Product:         *p,
		DiscountPercent: service.DiscountPercent(p),
		EMIPlans:        plans,
	}
}

func newProductList(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, newProduct(&products[i]))
	}
	return out
}

func newProductDetail(d *models.ProductDetail) ProductDetailResponse {
	variants := d.Variants
	if variants == nil {
		variants = []models.VariantOption{}
	}

	return ProductDetailResponse{
		ProductResponse: newProduct(&d.Product),
		Variants:        variants,
		Colors:          service.Colors(variants),
		Storages:        service.Storages(variants),
	}
}
