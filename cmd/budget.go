package cmd

import (
	"fmt"

	"github.com/paisapaglu/paisa/internal/cli"
	"github.com/paisapaglu/paisa/internal/config"
	"github.com/paisapaglu/paisa/internal/finance"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Show the monthly budget and 50/30/20 targets",
	RunE:  runBudget,
}

var budgetSetIncomeCmd = &cobra.Command{
	Use:   "set-income <amount>",
	Short: "Set monthly income",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetSetIncome,
}

var budgetSetExpenseCmd = &cobra.Command{
	Use:   "set-expense <category> <amount>",
	Short: "Set a monthly expense category (amount 0 removes it)",
	Args:  cobra.ExactArgs(2),
	RunE:  runBudgetSetExpense,
}

func init() {
	budgetCmd.AddCommand(budgetSetIncomeCmd)
	budgetCmd.AddCommand(budgetSetExpenseCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(_ *cobra.Command, _ []string) error {
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

	summary, err := finance.Compute(finance.BudgetInput{Income: p.Income, Expenses: p.Expenses})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("  " + cli.RenderTitle("Monthly Budget"))
	fmt.Println()
	fmt.Printf("  Income:       %s\n", cli.FormatAmount(summary.Income))
	fmt.Printf("  Expenses:     %s\n", cli.FormatAmount(summary.TotalExpenses))
	fmt.Printf("  Savings:      %s\n", cli.RenderSigned(cli.FormatAmount(summary.Savings), summary.Savings))
	fmt.Printf("  Savings rate: %s\n", cli.FormatRate(summary.SavingsRate))
	fmt.Println()

	if len(p.Expenses) > 0 {
		rows := make([][]string, 0, len(p.Expenses))
		for _, e := range finance.SortedExpenses(p.Expenses) {
			share := ""
			if summary.Income > 0 {
				share = cli.FormatPercent(e.Amount / summary.Income)
			}
			rows = append(rows, []string{e.Category, cli.FormatAmount(e.Amount), share})
		}
		fmt.Print(cli.RenderTable([]string{"Category", "Amount", "% of income"}, rows))
		fmt.Println()
	}

	fmt.Println("  " + cli.RenderTitle("50/30/20 Targets"))
	fmt.Printf("  Needs (50%%):   %s\n", cli.FormatAmount(summary.NeedsTarget))
	fmt.Printf("  Wants (30%%):   %s\n", cli.FormatAmount(summary.WantsTarget))
	fmt.Printf("  Savings (20%%): %s\n", cli.FormatAmount(summary.SavingsTarget))
	fmt.Println()
	return nil
}

func runBudgetSetIncome(_ *cobra.Command, args []string) error {
	amount, err := parseAmount(args[0])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	p, err := store.LoadProfile()
	if err != nil {
		return err
	}
	p.Income = amount
	if err := store.SaveProfile(p); err != nil {
		return err
	}

	fmt.Printf("  Income set to %s\n", cli.FormatAmount(amount))
	return nil
}

func runBudgetSetExpense(_ *cobra.Command, args []string) error {
	category := args[0]
	amount, err := parseAmount(args[1])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	p, err := store.LoadProfile()
	if err != nil {
		return err
	}
	if amount == 0 {
		delete(p.Expenses, category)
		fmt.Printf("  Removed expense category %q\n", category)
	} else {
		p.Expenses[category] = amount
		fmt.Printf("  %s set to %s\n", category, cli.FormatAmount(amount))
	}
	return store.SaveProfile(p)
}
