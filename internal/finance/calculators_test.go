package finance

import (
	"errors"
	"math"
	"testing"
)

func TestSIPFutureValue(t *testing.T) {
	// 5000/month at 12% for 10 years. Closed form with monthly r = 0.01:
	// 5000 * ((1.01^120 - 1) / 0.01) * 1.01
	r := 0.01
	growth := math.Pow(1+r, 120)
	want := 5000 * ((growth - 1) / r) * (1 + r)

	got, err := SIPFutureValue(5000, 12, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("SIPFutureValue = %.2f, want %.2f", got, want)
	}
}

func TestSIPFutureValue_ZeroRate(t *testing.T) {
	got, err := SIPFutureValue(1000, 0, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 24000 {
		t.Errorf("zero-rate FV = %.2f, want 24000 (plain sum)", got)
	}
}

func TestSIPFutureValue_RejectsNegative(t *testing.T) {
	if _, err := SIPFutureValue(-1, 12, 10); !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("error = %v, want ErrNegativeAmount", err)
	}
}

func TestLoanEMI(t *testing.T) {
	// 10L at 10% for 10 years. Monthly r = 10/1200.
	r := 10.0 / 100 / 12
	growth := math.Pow(1+r, 120)
	want := 1000000 * r * growth / (growth - 1)

	got, err := LoanEMI(1000000, 10, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("LoanEMI = %.2f, want %.2f", got, want)
	}
}

func TestLoanEMI_ZeroRate(t *testing.T) {
	got, err := LoanEMI(12000, 0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1000 {
		t.Errorf("zero-rate EMI = %.2f, want 1000", got)
	}
}

func TestPortfolioReturn(t *testing.T) {
	if got := PortfolioReturn(150000, 156000); math.Abs(got-4.0) > 1e-9 {
		t.Errorf("return = %.2f%%, want 4%%", got)
	}
	if got := PortfolioReturn(0, 100); got != 0 {
		t.Errorf("zero-invested return = %.2f, want 0", got)
	}
}
