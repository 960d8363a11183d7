package finance

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

func TestCompute_WorkedExample(t *testing.T) {
	in := BudgetInput{
		Income: 5000,
		Expenses: map[string]float64{
			"rent":      1500,
			"food":      500,
			"transport": 300,
		},
	}

	s, err := Compute(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.TotalExpenses != 2300 {
		t.Errorf("TotalExpenses = %.2f, want 2300", s.TotalExpenses)
	}
	if s.Savings != 2700 {
		t.Errorf("Savings = %.2f, want 2700", s.Savings)
	}
	if s.SavingsRate == nil {
		t.Fatal("SavingsRate is nil, want 0.54")
	}
	if math.Abs(*s.SavingsRate-0.54) > tolerance {
		t.Errorf("SavingsRate = %.4f, want 0.54", *s.SavingsRate)
	}
	if s.NeedsTarget != 2500 || s.WantsTarget != 1500 || s.SavingsTarget != 1000 {
		t.Errorf("targets = (%.2f, %.2f, %.2f), want (2500, 1500, 1000)",
			s.NeedsTarget, s.WantsTarget, s.SavingsTarget)
	}
}

func TestCompute_SavingsPlusExpensesEqualsIncome(t *testing.T) {
	cases := []BudgetInput{
		{Income: 100000, Expenses: map[string]float64{"housing": 30000, "food": 15000}},
		{Income: 1234.56, Expenses: map[string]float64{"a": 0.01, "b": 999.99, "c": 234.56}},
		{Income: 50000, Expenses: map[string]float64{}},
		{Income: 3000, Expenses: map[string]float64{"rent": 4000}}, // overspent: savings go negative
	}

	for _, in := range cases {
		s, err := Compute(in)
		if err != nil {
			t.Fatalf("income %.2f: unexpected error: %v", in.Income, err)
		}
		if diff := math.Abs(s.Savings + s.TotalExpenses - in.Income); diff > tolerance {
			t.Errorf("income %.2f: savings+expenses off by %g", in.Income, diff)
		}
	}
}

func TestCompute_ZeroIncomeRateUndefined(t *testing.T) {
	s, err := Compute(BudgetInput{Income: 0, Expenses: map[string]float64{"food": 100}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.SavingsRate != nil {
		t.Errorf("SavingsRate = %v, want nil (undefined at zero income)", *s.SavingsRate)
	}
	if s.Savings != -100 {
		t.Errorf("Savings = %.2f, want -100", s.Savings)
	}
}

func TestCompute_RejectsNegativeExpense(t *testing.T) {
	_, err := Compute(BudgetInput{Income: 5000, Expenses: map[string]float64{"rent": -100}})
	if !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("error = %v, want ErrNegativeAmount", err)
	}
}

func TestCompute_RejectsNegativeIncome(t *testing.T) {
	_, err := Compute(BudgetInput{Income: -1, Expenses: nil})
	if !errors.Is(err, ErrNegativeIncome) {
		t.Fatalf("error = %v, want ErrNegativeIncome", err)
	}
}

func TestCompute_RejectsNonFinite(t *testing.T) {
	cases := []struct {
		name string
		in   BudgetInput
	}{
		{"nan income", BudgetInput{Income: math.NaN()}},
		{"inf income", BudgetInput{Income: math.Inf(1)}},
		{"nan expense", BudgetInput{Income: 5000, Expenses: map[string]float64{"rent": math.NaN()}}},
		{"inf expense", BudgetInput{Income: 5000, Expenses: map[string]float64{"rent": math.Inf(-1)}}},
	}

	for _, tc := range cases {
		if _, err := Compute(tc.in); !errors.Is(err, ErrNotFinite) {
			t.Errorf("%s: error = %v, want ErrNotFinite", tc.name, err)
		}
	}
}

func TestSplitFiftyThirtyTwenty_SumsToIncome(t *testing.T) {
	incomes := []float64{0, 1, 0.03, 5000, 99999.99, 123456.78, 1e9}

	for _, income := range incomes {
		needs, wants, savings := SplitFiftyThirtyTwenty(income)
		if diff := math.Abs(needs + wants + savings - income); diff > tolerance {
			t.Errorf("income %.2f: targets sum off by %g", income, diff)
		}
		if needs < 0 || wants < 0 || savings < 0 {
			t.Errorf("income %.2f: negative target (%.2f, %.2f, %.2f)",
				income, needs, wants, savings)
		}
	}
}

func TestNetWorth(t *testing.T) {
	assets := map[string]float64{"savings_account": 200000, "investments": 300000}
	liabilities := map[string]float64{"car_loan": 300000, "credit_cards": 50000}

	ta, tl, nw, err := NetWorth(assets, liabilities)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ta != 500000 {
		t.Errorf("total assets = %.2f, want 500000", ta)
	}
	if tl != 350000 {
		t.Errorf("total liabilities = %.2f, want 350000", tl)
	}
	if nw != 150000 {
		t.Errorf("net worth = %.2f, want 150000", nw)
	}
}

func TestNetWorth_RejectsNegative(t *testing.T) {
	_, _, _, err := NetWorth(map[string]float64{"property": -1}, nil)
	if !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("error = %v, want ErrNegativeAmount", err)
	}
}

func TestNetWorth_RejectsNonFinite(t *testing.T) {
	_, _, _, err := NetWorth(map[string]float64{"property": math.NaN()}, nil)
	if !errors.Is(err, ErrNotFinite) {
		t.Fatalf("asset error = %v, want ErrNotFinite", err)
	}
	_, _, _, err = NetWorth(nil, map[string]float64{"loan": math.Inf(1)})
	if !errors.Is(err, ErrNotFinite) {
		t.Fatalf("liability error = %v, want ErrNotFinite", err)
	}
}

func TestSortedExpenses_OrderedByAmount(t *testing.T) {
	entries := SortedExpenses(map[string]float64{
		"food": 500, "rent": 1500, "transport": 300, "cable": 300,
	})

	want := []string{"rent", "food", "cable", "transport"}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, name := range want {
		if entries[i].Category != name {
			t.Errorf("entries[%d] = %s, want %s", i, entries[i].Category, name)
		}
	}
}

func TestGoalProgress(t *testing.T) {
	if got := GoalProgress(100000, 500000); math.Abs(got-0.2) > tolerance {
		t.Errorf("progress = %.4f, want 0.2", got)
	}
	if got := GoalProgress(100, 0); got != 0 {
		t.Errorf("zero-target progress = %.4f, want 0", got)
	}
}
