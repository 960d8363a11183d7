// Package cmd implements the paisa CLI commands.
package cmd

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/paisapaglu/paisa/internal/advisor"
	"github.com/paisapaglu/paisa/internal/cli"
	"github.com/paisapaglu/paisa/internal/config"
	"github.com/paisapaglu/paisa/internal/finance"
	"github.com/paisapaglu/paisa/internal/profile"

	"github.com/spf13/cobra"
)

var flagDataDir string

var rootCmd = &cobra.Command{
	Use:   "paisa",
	Short: "Personal finance assistant for the terminal",
	Long:  "Track your budget, net worth, goals, and investments, with market data and AI-backed advice.",
	RunE:  runOverview,
}

// Execute is the main entry point called from main.go.
func Execute() {
	config.LoadDotEnv()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default: XDG data dir)")
}

// parseAmount parses a non-negative money argument. ParseFloat accepts
// "NaN" and "Inf", so finiteness is checked explicitly.
func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("amount must not be negative, got %q", s)
	}
	return v, nil
}

// dbPath returns the profile database location.
func dbPath() string {
	if flagDataDir != "" {
		return filepath.Join(flagDataDir, "paisa.db")
	}
	return filepath.Join(config.Dir(), "paisa.db")
}

// openStore opens the profile database and seeds it on first run.
func openStore() (*profile.Store, error) {
	store, err := profile.Open(dbPath())
	if err != nil {
		return nil, err
	}
	if err := store.Seed(); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

// snapshot condenses the stored profile into advisor prompt context.
func snapshot(store *profile.Store, cfg config.Config) (advisor.Snapshot, error) {
	p, err := store.LoadProfile()
	if err != nil {
		return advisor.Snapshot{}, err
	}
	goals, err := store.ListGoals()
	if err != nil {
		return advisor.Snapshot{}, err
	}

	summary, err := finance.Compute(finance.BudgetInput{Income: p.Income, Expenses: p.Expenses})
	if err != nil {
		return advisor.Snapshot{}, err
	}
	_, _, netWorth, err := finance.NetWorth(p.Assets, p.Liabilities)
	if err != nil {
		return advisor.Snapshot{}, err
	}

	return advisor.Snapshot{
		Income:      p.Income,
		Expenses:    summary.TotalExpenses,
		SavingsRate: summary.SavingsRate,
		NetWorth:    netWorth,
		GoalCount:   len(goals),
		Currency:    cfg.General.Currency,
	}, nil
}

func runOverview(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cli.Currency = cfg.General.Currency

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	p, err := store.LoadProfile()
	if err != nil {
		return err
	}
	goals, err := store.ListGoals()
	if err != nil {
		return err
	}

	summary, err := finance.Compute(finance.BudgetInput{Income: p.Income, Expenses: p.Expenses})
	if err != nil {
		return err
	}
	totalAssets, totalLiabilities, netWorth, err := finance.NetWorth(p.Assets, p.Liabilities)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("  " + cli.RenderTitle("Overview"))
	fmt.Println()
	fmt.Printf("  Monthly income:   %s\n", cli.FormatAmount(summary.Income))
	fmt.Printf("  Monthly expenses: %s\n", cli.FormatAmount(summary.TotalExpenses))
	fmt.Printf("  Monthly savings:  %s\n", cli.RenderSigned(cli.FormatAmount(summary.Savings), summary.Savings))
	fmt.Printf("  Savings rate:     %s\n", cli.FormatRate(summary.SavingsRate))
	fmt.Println()
	fmt.Printf("  Assets:      %s\n", cli.FormatAmount(totalAssets))
	fmt.Printf("  Liabilities: %s\n", cli.FormatAmount(totalLiabilities))
	fmt.Printf("  Net worth:   %s\n", cli.RenderSigned(cli.FormatAmount(netWorth), netWorth))
	fmt.Println()

	if len(goals) > 0 {
		fmt.Println("  " + cli.RenderTitle("Goals"))
		for _, g := range goals {
			fmt.Printf("  %-20s %s\n", g.Name, cli.RenderBar(finance.GoalProgress(g.Saved, g.Target), 24))
		}
		fmt.Println()
	}

	fmt.Println(cli.RenderDim("  Run `paisa budget`, `paisa quote`, or `paisa advice` for more. `paisa tui` opens the dashboard."))
	return nil
}
