// Package finance implements the deterministic money math: budget
// summaries, the 50/30/20 split, net worth, and the SIP/EMI calculators.
package finance

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrNegativeIncome indicates a negative income value was supplied.
	ErrNegativeIncome = errors.New("finance: income must not be negative")
	// ErrNegativeAmount indicates a negative expense, asset, or liability amount.
	ErrNegativeAmount = errors.New("finance: amounts must not be negative")
	// ErrNotFinite indicates a NaN or infinite value was supplied.
	ErrNotFinite = errors.New("finance: amounts must be finite")
)

// isFinite reports whether v is a usable money amount (not NaN or Inf).
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// BudgetInput holds one round of user-supplied budget figures.
// Nothing here is persisted by this package; a fresh input is built
// from each submission.
type BudgetInput struct {
	Income   float64
	Expenses map[string]float64 // category -> amount
}

// Validate rejects negative and non-finite values before any
// computation runs. NaN compares false against everything, so the
// finiteness check must come first.
func (in BudgetInput) Validate() error {
	if !isFinite(in.Income) {
		return fmt.Errorf("%w (income: %v)", ErrNotFinite, in.Income)
	}
	if in.Income < 0 {
		return fmt.Errorf("%w (got %.2f)", ErrNegativeIncome, in.Income)
	}
	for category, amount := range in.Expenses {
		if !isFinite(amount) {
			return fmt.Errorf("%w (%s: %v)", ErrNotFinite, category, amount)
		}
		if amount < 0 {
			return fmt.Errorf("%w (%s: %.2f)", ErrNegativeAmount, category, amount)
		}
	}
	return nil
}

// Summary holds the derived budget figures for one input.
// Recomputed on every change, never mutated in place.
type Summary struct {
	Income        float64
	TotalExpenses float64
	Savings       float64

	// SavingsRate is savings / income. Nil when income is zero,
	// since the rate is undefined rather than 0.
	SavingsRate *float64

	// 50/30/20 targets. Guaranteed to sum to Income.
	NeedsTarget   float64
	WantsTarget   float64
	SavingsTarget float64
}

// Compute validates the input and derives the budget summary.
func Compute(in BudgetInput) (Summary, error) {
	if err := in.Validate(); err != nil {
		return Summary{}, err
	}

	var total float64
	for _, amount := range in.Expenses {
		total += amount
	}

	s := Summary{
		Income:        in.Income,
		TotalExpenses: total,
		Savings:       in.Income - total,
	}

	if in.Income > 0 {
		rate := s.Savings / in.Income
		s.SavingsRate = &rate
	}

	s.NeedsTarget, s.WantsTarget, s.SavingsTarget = SplitFiftyThirtyTwenty(in.Income)

	return s, nil
}

// ExpenseEntry is one category row, used for ordered display.
type ExpenseEntry struct {
	Category string
	Amount   float64
}

// SortedExpenses returns expense entries sorted by amount descending,
// ties broken by category name.
func SortedExpenses(expenses map[string]float64) []ExpenseEntry {
	entries := make([]ExpenseEntry, 0, len(expenses))
	for category, amount := range expenses {
		entries = append(entries, ExpenseEntry{Category: category, Amount: amount})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Amount != entries[j].Amount {
			return entries[i].Amount > entries[j].Amount
		}
		return entries[i].Category < entries[j].Category
	})
	return entries
}

// NetWorth computes total assets minus total liabilities.
// Negative entries are rejected the same way budget inputs are.
func NetWorth(assets, liabilities map[string]float64) (totalAssets, totalLiabilities, netWorth float64, err error) {
	for name, v := range assets {
		if !isFinite(v) {
			return 0, 0, 0, fmt.Errorf("%w (asset %s: %v)", ErrNotFinite, name, v)
		}
		if v < 0 {
			return 0, 0, 0, fmt.Errorf("%w (asset %s: %.2f)", ErrNegativeAmount, name, v)
		}
		totalAssets += v
	}
	for name, v := range liabilities {
		if !isFinite(v) {
			return 0, 0, 0, fmt.Errorf("%w (liability %s: %v)", ErrNotFinite, name, v)
		}
		if v < 0 {
			return 0, 0, 0, fmt.Errorf("%w (liability %s: %.2f)", ErrNegativeAmount, name, v)
		}
		totalLiabilities += v
	}
	return totalAssets, totalLiabilities, totalAssets - totalLiabilities, nil
}

// GoalProgress returns saved/target as a 0..1+ fraction.
// A zero target reports 0 rather than dividing by zero.
func GoalProgress(saved, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return saved / target
}
