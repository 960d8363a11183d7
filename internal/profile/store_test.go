package profile

import (
	"errors"
	"math"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "paisa.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadProfile_EmptyIsNotFound(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.LoadProfile(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("LoadProfile on empty db = %v, want ErrNotFound", err)
	}
}

func TestSaveLoadProfile_RoundTrip(t *testing.T) {
	s := openTestStore(t)

	want := Profile{
		Income:      85000,
		Expenses:    map[string]float64{"Rent": 25000, "Food": 12000},
		Assets:      map[string]float64{"savings_account": 150000},
		Liabilities: map[string]float64{"car_loan": 400000},
		CategoryPct: map[string]float64{"Housing": 30, "Food": 15},
	}
	if err := s.SaveProfile(want); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}

	got, err := s.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if got.Income != want.Income {
		t.Errorf("Income = %v, want %v", got.Income, want.Income)
	}
	if got.Expenses["Rent"] != 25000 || got.Expenses["Food"] != 12000 {
		t.Errorf("Expenses = %v", got.Expenses)
	}
	if got.Assets["savings_account"] != 150000 {
		t.Errorf("Assets = %v", got.Assets)
	}
	if got.Liabilities["car_loan"] != 400000 {
		t.Errorf("Liabilities = %v", got.Liabilities)
	}
	if got.CategoryPct["Housing"] != 30 {
		t.Errorf("CategoryPct = %v", got.CategoryPct)
	}

	// re-save drops removed categories
	want.Expenses = map[string]float64{"Rent": 26000}
	if err := s.SaveProfile(want); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	got, err = s.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if len(got.Expenses) != 1 || got.Expenses["Rent"] != 26000 {
		t.Errorf("Expenses after resave = %v, want only Rent=26000", got.Expenses)
	}
}

func TestSeed_PopulatesOnceOnly(t *testing.T) {
	s := openTestStore(t)

	if err := s.Seed(); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	p, err := s.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if p.Income != 100000 {
		t.Errorf("seeded income = %v, want 100000", p.Income)
	}
	goals, err := s.ListGoals()
	if err != nil {
		t.Fatalf("ListGoals: %v", err)
	}
	if len(goals) != 2 {
		t.Fatalf("len(goals) = %d, want 2", len(goals))
	}

	// modify, then confirm a second seed does not clobber
	p.Income = 120000
	if err := s.SaveProfile(p); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
	if err := s.Seed(); err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	p2, err := s.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if p2.Income != 120000 {
		t.Errorf("income after reseed = %v, want 120000", p2.Income)
	}
}

func TestGoals_CRUD(t *testing.T) {
	s := openTestStore(t)

	g := Goal{
		Name:     "Emergency Fund",
		Target:   500000,
		Saved:    100000,
		Deadline: time.Date(2027, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := s.SaveGoal(g); err != nil {
		t.Fatalf("SaveGoal: %v", err)
	}

	goals, err := s.ListGoals()
	if err != nil {
		t.Fatalf("ListGoals: %v", err)
	}
	if len(goals) != 1 {
		t.Fatalf("len = %d, want 1", len(goals))
	}
	got := goals[0]
	if got.ID == "" {
		t.Error("SaveGoal should assign an ID")
	}
	if !got.Deadline.Equal(g.Deadline) {
		t.Errorf("Deadline = %v, want %v", got.Deadline, g.Deadline)
	}

	if err := s.AddToGoal(got.ID, 25000); err != nil {
		t.Fatalf("AddToGoal: %v", err)
	}
	goals, _ = s.ListGoals()
	if math.Abs(goals[0].Saved-125000) > 1e-9 {
		t.Errorf("Saved = %v, want 125000", goals[0].Saved)
	}

	if err := s.AddToGoal("missing", 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("AddToGoal(missing) = %v, want ErrNotFound", err)
	}

	if err := s.DeleteGoal(got.ID); err != nil {
		t.Fatalf("DeleteGoal: %v", err)
	}
	if err := s.DeleteGoal(got.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteGoal = %v, want ErrNotFound", err)
	}
}

func TestInvestments_CRUD(t *testing.T) {
	s := openTestStore(t)

	inv := Investment{
		Type:         "Stock",
		Name:         "Reliance Industries",
		Amount:       50000,
		CurrentValue: 56000,
		Ticker:       "RELIANCE.NS",
		Date:         time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	if err := s.SaveInvestment(inv); err != nil {
		t.Fatalf("SaveInvestment: %v", err)
	}

	invs, err := s.ListInvestments()
	if err != nil {
		t.Fatalf("ListInvestments: %v", err)
	}
	if len(invs) != 1 {
		t.Fatalf("len = %d, want 1", len(invs))
	}
	got := invs[0]
	if got.ID == "" {
		t.Error("SaveInvestment should assign an ID")
	}
	if got.Ticker != "RELIANCE.NS" {
		t.Errorf("Ticker = %q", got.Ticker)
	}
	if math.Abs(got.GainPct()-12.0) > 1e-9 {
		t.Errorf("GainPct = %v, want 12.0", got.GainPct())
	}

	if err := s.DeleteInvestment(got.ID); err != nil {
		t.Fatalf("DeleteInvestment: %v", err)
	}
	if err := s.DeleteInvestment(got.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteInvestment = %v, want ErrNotFound", err)
	}
}
