// Package profile persists the user's financial profile: income,
// balances, budget allocation, savings goals, and investments.
package profile

import "time"

// Profile is the single-user financial profile.
type Profile struct {
	Income      float64
	Expenses    map[string]float64 // monthly spend by category
	Assets      map[string]float64
	Liabilities map[string]float64
	CategoryPct map[string]float64 // target budget allocation, percent of income
}

// Goal is one savings goal.
type Goal struct {
	ID       string
	Name     string
	Target   float64
	Saved    float64
	Deadline time.Time
	Created  time.Time
}

// Investment is one portfolio holding.
type Investment struct {
	ID           string
	Type         string // e.g. "Mutual Fund", "Stock", "Fixed Deposit"
	Name         string
	Amount       float64 // amount invested
	CurrentValue float64
	Ticker       string // optional, for quote lookups
	Notes        string
	Date         time.Time
}

// GainPct returns the percent return over the invested amount,
// or 0 when nothing was invested.
func (i Investment) GainPct() float64 {
	if i.Amount == 0 {
		return 0
	}
	return (i.CurrentValue - i.Amount) / i.Amount * 100
}
