package service

import (
	"fmt"
	"math"

	"catalog-service/internal/models"
)

// DiscountPercent returns round((mrp - price) / mrp * 100).
// A non-positive MRP yields 0.
func DiscountPercent(p *models.Product) int64 {
	if p.MRP <= 0 || p.MRP == p.Price {
		return 0
	}
	return int64(math.Round(float64(p.MRP-p.Price) / float64(p.MRP) * 100))
}

// TotalPayable is the sum of all installments of the plan
func TotalPayable(plan models.EMIPlan) int64 {
	return plan.MonthlyAmount * int64(plan.Tenure)
}

// NetAfterCashback is the total payable minus the plan's cashback
func NetAfterCashback(plan models.EMIPlan) int64 {
	return TotalPayable(plan) - plan.Cashback
}

// TotalSavings is the discount against MRP plus the plan's cashback
func TotalSavings(p *models.Product, plan models.EMIPlan) int64 {
	return (p.MRP - p.Price) + plan.Cashback
}

// SelectPlan returns the product's plan for the tenure, or ErrPlanNotFound
func SelectPlan(p *models.Product, tenure int) (models.EMIPlan, error) {
	plan, ok := p.PlanByTenure(tenure)
	if !ok {
		return models.EMIPlan{}, fmt.Errorf("%d months for product %d: %w", tenure, p.ID, ErrPlanNotFound)
	}
	return plan, nil
}

// AcquisitionSummary is the end-to-end cost breakdown of buying a product on a plan
type AcquisitionSummary struct {
	ProductID        int64   `json:"productId"`
	Slug             string  `json:"slug"`
	Name             string  `json:"name"`
	Variant          string  `json:"variant"`
	Color            string  `json:"color"`
	ImageURL         string  `json:"imageUrl"`
	MRP              int64   `json:"mrp"`
	Price            int64   `json:"price"`
	DiscountPercent  int64   `json:"discountPercent"`
	PlanID           int64   `json:"planId"`
	Tenure           int     `json:"tenure"`
	InterestRate     float64 `json:"interestRate"`
	ZeroCost         bool    `json:"zeroCost"`
	MonthlyAmount    int64   `json:"monthlyAmount"`
	Cashback         int64   `json:"cashback"`
	TotalPayable     int64   `json:"totalPayable"`
	NetAfterCashback int64   `json:"netAfterCashback"`
	TotalSavings     int64   `json:"totalSavings"`
}

// BuildSummary computes the acquisition summary.
// The plan is assumed to belong to the product.
func BuildSummary(p *models.Product, plan models.EMIPlan) AcquisitionSummary {
	var image string
	if len(p.ImageURLs) > 0 {
		image = p.ImageURLs[0]
	}

	return AcquisitionSummary{
		ProductID:        p.ID,
		Slug:             p.Slug,
		Name:             p.Name,
		Variant:          p.Variant,
		Color:            p.Color,
		ImageURL:         image,
		MRP:              p.MRP,
		Price:            p.Price,
		DiscountPercent:  DiscountPercent(p),
		PlanID:           plan.ID,
		Tenure:           plan.Tenure,
		InterestRate:     plan.InterestRate,
		ZeroCost:         plan.InterestRate == 0,
		MonthlyAmount:    plan.MonthlyAmount,
		Cashback:         plan.Cashback,
		TotalPayable:     TotalPayable(plan),
		NetAfterCashback: NetAfterCashback(plan),
		TotalSavings:     TotalSavings(p, plan),
	}
}
