package profile

import (
	"time"

	"github.com/google/uuid"
)

// DefaultProfile seeds a fresh install with a plausible urban-India
// middle-class profile so every screen has data before setup runs.
func DefaultProfile() Profile {
	return Profile{
		Income: 100000,
		Expenses: map[string]float64{
			"Housing":        30000,
			"Food":           15000,
			"Transportation": 10000,
			"Utilities":      5000,
			"Entertainment":  10000,
		},
		Assets: map[string]float64{
			"savings_account": 200000,
			"investments":     300000,
			"property":        5000000,
			"vehicles":        500000,
		},
		Liabilities: map[string]float64{
			"education_loan": 2500000,
			"car_loan":       300000,
			"credit_cards":   50000,
		},
		CategoryPct: map[string]float64{
			"Housing":        30,
			"Food":           15,
			"Transportation": 10,
			"Utilities":      5,
			"Healthcare":     5,
			"Entertainment":  10,
			"Education":      5,
			"Savings":        10,
			"Investments":    5,
			"Debt Repayment": 5,
			"Other":          0,
		},
	}
}

// DefaultGoals returns the starter savings goals.
func DefaultGoals() []Goal {
	now := time.Now()
	return []Goal{
		{
			ID:       uuid.NewString(),
			Name:     "Emergency Fund",
			Target:   500000,
			Saved:    100000,
			Deadline: now.AddDate(0, 0, 365),
			Created:  now,
		},
		{
			ID:       uuid.NewString(),
			Name:     "Vacation Fund",
			Target:   200000,
			Saved:    50000,
			Deadline: now.AddDate(0, 0, 180),
			Created:  now,
		},
	}
}

// DefaultInvestments returns the starter portfolio.
func DefaultInvestments() []Investment {
	now := time.Now()
	return []Investment{
		{
			ID:           uuid.NewString(),
			Type:         "Mutual Fund",
			Name:         "Index Fund",
			Amount:       100000,
			CurrentValue: 105000,
			Notes:        "Nifty 50 Index Fund",
			Date:         now.AddDate(0, 0, -90),
		},
		{
			ID:           uuid.NewString(),
			Type:         "Fixed Deposit",
			Name:         "Bank FD",
			Amount:       50000,
			CurrentValue: 51000,
			Notes:        "1 Year FD @ 7.5%",
			Date:         now.AddDate(0, 0, -60),
		},
	}
}
