package finance

import (
	"fmt"
	"math"
)

// SIPFutureValue estimates the future value of a monthly systematic
// investment plan: monthly amount, annual return percent, tenure years.
// Contributions are assumed to happen at the start of each month.
func SIPFutureValue(monthly, annualRatePct float64, years int) (float64, error) {
	if monthly < 0 || annualRatePct < 0 || years < 0 {
		return 0, fmt.Errorf("%w (sip inputs)", ErrNegativeAmount)
	}
	months := float64(years * 12)
	if months == 0 || monthly == 0 {
		return 0, nil
	}

	r := annualRatePct / 100 / 12
	if r == 0 {
		return monthly * months, nil
	}

	growth := math.Pow(1+r, months)
	return monthly * ((growth - 1) / r) * (1 + r), nil
}

// LoanEMI computes the fixed monthly installment for a loan:
// principal, annual interest percent, tenure years.
func LoanEMI(principal, annualRatePct float64, years int) (float64, error) {
	if principal < 0 || annualRatePct < 0 || years < 0 {
		return 0, fmt.Errorf("%w (emi inputs)", ErrNegativeAmount)
	}
	months := float64(years * 12)
	if months == 0 {
		return 0, nil
	}

	r := annualRatePct / 100 / 12
	if r == 0 {
		return principal / months, nil
	}

	growth := math.Pow(1+r, months)
	return principal * r * growth / (growth - 1), nil
}

// PortfolioReturn computes the simple return percent of invested vs
// current value. Zero invested reports 0.
func PortfolioReturn(invested, current float64) float64 {
	if invested <= 0 {
		return 0
	}
	return (current - invested) / invested * 100
}
