package finance

import "github.com/shopspring/decimal"

var (
	needsShare = decimal.NewFromFloat(0.5)
	wantsShare = decimal.NewFromFloat(0.3)
)

// SplitFiftyThirtyTwenty allocates income across the 50/30/20 budgeting
// rule: 50% needs, 30% wants, 20% savings and debt repayment.
// The split is done in decimal with the savings slice taking the exact
// remainder, so the three targets always sum back to income.
func SplitFiftyThirtyTwenty(income float64) (needs, wants, savings float64) {
	total := decimal.NewFromFloat(income)
	needsD := total.Mul(needsShare)
	wantsD := total.Mul(wantsShare)
	savingsD := total.Sub(needsD).Sub(wantsD)

	needs, _ = needsD.Float64()
	wants, _ = wantsD.Float64()
	savings, _ = savingsD.Float64()
	return needs, wants, savings
}
