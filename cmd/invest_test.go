package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/paisapaglu/paisa/internal/profile"
)

func TestFindInvestment(t *testing.T) {
	prev := flagDataDir
	flagDataDir = t.TempDir()
	defer func() { flagDataDir = prev }()

	store, err := openStore()
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	defer func() { _ = store.Close() }()

	inv := profile.Investment{
		Type:         "Stock",
		Name:         "Reliance Industries",
		Amount:       50000,
		CurrentValue: 62000,
		Ticker:       "RELIANCE.NS",
		Date:         time.Now(),
	}
	if err := store.SaveInvestment(inv); err != nil {
		t.Fatalf("SaveInvestment: %v", err)
	}
	byName, err := findInvestment(store, "Reliance Industries")
	if err != nil {
		t.Fatalf("findInvestment by name: %v", err)
	}
	if byName.ID == "" {
		t.Fatal("saved holding has no ID")
	}

	// Name and ticker lookups are case-insensitive.
	keys := []string{byName.ID, "reliance industries", "reliance.ns"}
	for _, key := range keys {
		got, err := findInvestment(store, key)
		if err != nil {
			t.Errorf("findInvestment(%q): %v", key, err)
			continue
		}
		if got.ID != byName.ID {
			t.Errorf("findInvestment(%q) = %s, want %s", key, got.ID, byName.ID)
		}
	}

	if _, err := findInvestment(store, "nifty bees"); err == nil {
		t.Error("findInvestment with unknown key succeeded, want error")
	} else if !strings.Contains(err.Error(), "nifty bees") {
		t.Errorf("error %q does not name the key", err)
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"5000", 5000, false},
		{"1234.56", 1234.56, false},
		{"0", 0, false},
		{"-1", 0, true},
		{"abc", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"-Inf", 0, true},
	}

	for _, tc := range cases {
		got, err := parseAmount(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseAmount(%q) = %.2f, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseAmount(%q): %v", tc.in, err)
		} else if got != tc.want {
			t.Errorf("parseAmount(%q) = %.2f, want %.2f", tc.in, got, tc.want)
		}
	}
}
