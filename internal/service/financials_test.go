package service

import (
	"testing"

	"catalog-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscountPercent(t *testing.T) {
	testCases := []struct {
		name     string
		mrp      int64
		price    int64
		expected int64
	}{
		{name: "Typical discount", mrp: 139900, price: 129900, expected: 7},
		{name: "Rounds half up", mrp: 200, price: 199, expected: 1},
		{name: "No discount", mrp: 99900, price: 99900, expected: 0},
		{name: "Free item", mrp: 1000, price: 0, expected: 100},
		{name: "Zero MRP does not divide", mrp: 0, price: 0, expected: 0},
		{name: "Negative MRP is guarded", mrp: -10, price: 5, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := &models.Product{MRP: tc.mrp, Price: tc.price}
			assert.Equal(t, tc.expected, DiscountPercent(p))
		})
	}
}

func TestDiscountPercentWithinBounds(t *testing.T) {
	for mrp := int64(1); mrp <= 300; mrp += 7 {
		for price := int64(0); price <= mrp; price += 3 {
			d := DiscountPercent(&models.Product{MRP: mrp, Price: price})
			assert.GreaterOrEqual(t, d, int64(0))
			assert.LessOrEqual(t, d, int64(100))
		}
	}
}

func TestPlanTotals(t *testing.T) {
	plan := models.EMIPlan{Tenure: 12, InterestRate: 10.5, MonthlyAmount: 11962, Cashback: 1000}

	assert.Equal(t, int64(143544), TotalPayable(plan))
	assert.Equal(t, int64(142544), NetAfterCashback(plan))
	assert.LessOrEqual(t, NetAfterCashback(plan), TotalPayable(plan))

	noCashback := models.EMIPlan{Tenure: 3, MonthlyAmount: 43300}
	assert.Equal(t, TotalPayable(noCashback), NetAfterCashback(noCashback))
}

func TestTotalSavings(t *testing.T) {
	p := &models.Product{MRP: 139900, Price: 129900}
	plan := models.EMIPlan{Tenure: 3, MonthlyAmount: 43300, Cashback: 3000}

	assert.Equal(t, int64(13000), TotalSavings(p, plan))
}

func TestBuildSummary(t *testing.T) {
	p := &models.Product{
		ID:        7,
		Slug:      "apple-iphone-17-pro-256gb-titanium-silver",
		Name:      "Apple iPhone 17 Pro",
		Variant:   "256GB",
		Color:     "Titanium Silver",
		MRP:       139900,
		Price:     129900,
		ImageURLs: []string{"https://img/1.jpg", "https://img/2.jpg"},
	}
	plan := models.EMIPlan{ID: 70, ProductID: 7, Tenure: 6, MonthlyAmount: 21650, Cashback: 2000}

	summary := BuildSummary(p, plan)

	assert.Equal(t, int64(7), summary.ProductID)
	assert.Equal(t, "https://img/1.jpg", summary.ImageURL)
	assert.Equal(t, int64(7), summary.DiscountPercent)
	assert.True(t, summary.ZeroCost)
	assert.Equal(t, int64(129900), summary.TotalPayable)
	assert.Equal(t, int64(127900), summary.NetAfterCashback)
	assert.Equal(t, int64(12000), summary.TotalSavings)

	bare := BuildSummary(&models.Product{MRP: 10, Price: 10}, models.EMIPlan{Tenure: 1, InterestRate: 1})
	assert.Empty(t, bare.ImageURL)
	assert.False(t, bare.ZeroCost)
}

func TestSelectPlan(t *testing.T) {
	p := &models.Product{ID: 7, EMIPlans: []models.EMIPlan{
		{ID: 1, Tenure: 3},
		{ID: 2, Tenure: 12},
	}}

	plan, err := SelectPlan(p, 12)
	require.NoError(t, err)
	assert.Equal(t, int64(2), plan.ID)

	_, err = SelectPlan(p, 18)
	assert.ErrorIs(t, err, ErrPlanNotFound)
}
