package advisor

import (
	"fmt"
	"strings"
	"time"
)

// Fallback returns canned guidance matched to the question's keywords.
// Used whenever the generative API is unreachable or no key is set, so
// the advisor surface degrades to static content instead of an error.
func Fallback(question string) string {
	q := strings.ToLower(question)
	now := time.Now().Format("2006-01-02")

	switch {
	case strings.Contains(q, "invest") || strings.Contains(q, "sip") || strings.Contains(q, "mutual fund"):
		return fmt.Sprintf(`Investment Options (as of %s):

- Equity Mutual Funds
  Average returns: 12-15%% over 5+ years
  Best for: long-term wealth creation

- Fixed Deposits
  Current rates: 6-7.5%% for 1 year
  Best for: risk-averse investors

- Direct Stocks
  Potential returns: 15%%+ for quality stocks
  Best for: experienced investors

- Gold ETFs
  1-year return: ~12%%
  Best for: portfolio diversification`, now)

	case strings.Contains(q, "budget"):
		return fmt.Sprintf(`Budgeting Strategies (as of %s):

1. 50/30/20 Rule
   - 50%% Needs (rent, groceries, bills)
   - 30%% Wants (dining, entertainment)
   - 20%% Savings & debt repayment

2. Zero-Based Budgeting
   - Assign every rupee a purpose
   - Track all expenses daily

3. Envelope System
   - Cash-based budgeting per category
   - Prevents overspending

4. Automated Savings
   - Set up SIPs and auto-transfers
   - Pay yourself first`, now)

	case strings.Contains(q, "tax"):
		return fmt.Sprintf(`Tax Saving Options (as of %s):

Section 80C (1.5L deduction):
- ELSS funds (lock-in: 3 years)
- PPF (15-year term)
- NPS (additional 50k under 80CCD)
- 5-year tax saver FDs

Health Insurance (Section 80D):
- Self/family: 25,000 deduction
- Senior parents: additional 50,000

Home Loan Benefits:
- Principal repayment under 80C
- Interest deduction up to 2L under 24B`, now)

	case strings.Contains(q, "emergency"):
		return fmt.Sprintf(`Emergency Fund Basics (as of %s):

- Target 6-12 months of essential expenses
- Keep it liquid: savings accounts, liquid funds, short FDs
- Build it before investing aggressively
- Refill it first after any withdrawal`, now)

	default:
		return fmt.Sprintf(`General Financial Advice (as of %s):

1. Emergency Fund
   - Cover 6-12 months of expenses
   - Keep in liquid funds/FDs

2. Debt Management
   - Pay credit cards in full
   - Target loans above 10%% interest first

3. Investment Principles
   - Start early, invest regularly
   - Diversify across asset classes
   - Rebalance annually

4. Retirement Planning
   - Target 25x annual expenses
   - Use NPS for tax benefits`, now)
	}
}
