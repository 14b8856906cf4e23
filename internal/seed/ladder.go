package seed

import (
	"catalog-service/internal/models"

	"github.com/shopspring/decimal"
)

// PlanTerm is one rung of the EMI ladder offered on every product
type PlanTerm struct {
	Tenure       int
	InterestRate decimal.Decimal
	Cashback     int64
}

// Ladder is the fixed set of plans attached to each seeded product.
// Cashback shrinks as the tenure grows.
var Ladder = []PlanTerm{
	{Tenure: 3, InterestRate: decimal.Zero, Cashback: 3000},
	{Tenure: 6, InterestRate: decimal.Zero, Cashback: 2000},
	{Tenure: 9, InterestRate: decimal.RequireFromString("9.5"), Cashback: 1500},
	{Tenure: 12, InterestRate: decimal.RequireFromString("10.5"), Cashback: 1000},
	{Tenure: 24, InterestRate: decimal.RequireFromString("12.5"), Cashback: 0},
}

var hundred = decimal.NewFromInt(100)

// MonthlyAmount spreads the price, plus simple interest for interest-bearing
// plans, over the tenure and rounds to the nearest whole unit.
func MonthlyAmount(price int64, tenure int, rate decimal.Decimal) int64 {
	total := decimal.NewFromInt(price)
	if rate.IsPositive() {
		total = total.Mul(decimal.NewFromInt(1).Add(rate.Div(hundred)))
	}
	return total.Div(decimal.NewFromInt(int64(tenure))).Round(0).IntPart()
}

// Plans builds the ladder for a product priced at price
func Plans(price int64) []models.EMIPlan {
	plans := make([]models.EMIPlan, 0, len(Ladder))
	for _, term := range Ladder {
		rate, _ := term.InterestRate.Float64()
		plans = append(plans, models.EMIPlan{
			Tenure:        term.Tenure,
			InterestRate:  rate,
			MonthlyAmount: MonthlyAmount(price, term.Tenure, term.InterestRate),
			Cashback:      term.Cashback,
		})
	}
	return plans
}
