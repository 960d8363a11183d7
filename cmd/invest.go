package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/paisapaglu/paisa/internal/cli"
	"github.com/paisapaglu/paisa/internal/config"
	"github.com/paisapaglu/paisa/internal/finance"
	"github.com/paisapaglu/paisa/internal/profile"

	"github.com/spf13/cobra"
)

var (
	flagInvestType   string
	flagInvestValue  float64
	flagInvestTicker string
	flagInvestNotes  string
)

var investCmd = &cobra.Command{
	Use:   "invest",
	Short: "List portfolio holdings",
	RunE:  runInvest,
}

var investAddCmd = &cobra.Command{
	Use:   "add <name> <amount>",
	Short: "Add a holding",
	Args:  cobra.ExactArgs(2),
	RunE:  runInvestAdd,
}

var investSetValueCmd = &cobra.Command{
	Use:   "set-value <name> <current-value>",
	Short: "Update a holding's current value",
	Args:  cobra.ExactArgs(2),
	RunE:  runInvestSetValue,
}

var investRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a holding",
	Args:  cobra.ExactArgs(1),
	RunE:  runInvestRemove,
}

func init() {
	investAddCmd.Flags().StringVar(&flagInvestType, "type", "Mutual Fund", "Holding type (Mutual Fund, Stock, Fixed Deposit, ...)")
	investAddCmd.Flags().Float64Var(&flagInvestValue, "value", 0, "Current value (defaults to the invested amount)")
	investAddCmd.Flags().StringVar(&flagInvestTicker, "ticker", "", "Yahoo Finance symbol for quote lookups")
	investAddCmd.Flags().StringVar(&flagInvestNotes, "notes", "", "Free-form notes")
	investCmd.AddCommand(investAddCmd)
	investCmd.AddCommand(investSetValueCmd)
	investCmd.AddCommand(investRemoveCmd)
	rootCmd.AddCommand(investCmd)
}

func runInvest(_ *cobra.Command, _ []string) error {
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

	invs, err := store.ListInvestments()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("  " + cli.RenderTitle("Portfolio"))
	fmt.Println()
	if len(invs) == 0 {
		fmt.Println(cli.RenderDim("  No holdings yet. Add one with `paisa invest add <name> <amount>`."))
		fmt.Println()
		return nil
	}

	var totalIn, totalNow float64
	rows := make([][]string, 0, len(invs))
	for _, inv := range invs {
		totalIn += inv.Amount
		totalNow += inv.CurrentValue
		rows = append(rows, []string{
			inv.Name,
			inv.Type,
			cli.FormatAmount(inv.Amount),
			cli.FormatAmount(inv.CurrentValue),
			cli.RenderSigned(cli.FormatChange(inv.GainPct()), inv.GainPct()),
		})
	}
	fmt.Print(cli.RenderTable([]string{"Name", "Type", "Invested", "Current", "Return"}, rows))
	fmt.Println()

	totalGain := finance.PortfolioReturn(totalIn, totalNow)
	fmt.Printf("  Invested: %s   Current: %s   Return: %s\n",
		cli.FormatAmount(totalIn), cli.FormatAmount(totalNow),
		cli.RenderSigned(cli.FormatChange(totalGain), totalGain))
	fmt.Println()
	return nil
}

func runInvestAdd(_ *cobra.Command, args []string) error {
	amount, err := parseAmount(args[1])
	if err != nil {
		return err
	}
	if amount == 0 {
		return fmt.Errorf("invested amount must be positive, got %q", args[1])
	}

	value := flagInvestValue
	if value == 0 {
		value = amount
	}
	if value < 0 {
		return fmt.Errorf("current value must not be negative")
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	inv := profile.Investment{
		Type:         flagInvestType,
		Name:         args[0],
		Amount:       amount,
		CurrentValue: value,
		Ticker:       strings.ToUpper(strings.TrimSpace(flagInvestTicker)),
		Notes:        flagInvestNotes,
		Date:         time.Now(),
	}
	if err := store.SaveInvestment(inv); err != nil {
		return err
	}
	fmt.Printf("  Added %s %q: %s invested\n", inv.Type, inv.Name, cli.FormatAmount(amount))
	return nil
}

func runInvestSetValue(_ *cobra.Command, args []string) error {
	value, err := parseAmount(args[1])
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	inv, err := findInvestment(store, args[0])
	if err != nil {
		return err
	}
	inv.CurrentValue = value
	if err := store.SaveInvestment(inv); err != nil {
		return err
	}
	fmt.Printf("  %q now valued at %s (%s)\n", inv.Name, cli.FormatAmount(value),
		cli.RenderSigned(cli.FormatChange(inv.GainPct()), inv.GainPct()))
	return nil
}

func runInvestRemove(_ *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	inv, err := findInvestment(store, args[0])
	if err != nil {
		return err
	}
	if err := store.DeleteInvestment(inv.ID); err != nil {
		return err
	}
	fmt.Printf("  Removed holding %q\n", inv.Name)
	return nil
}

// findInvestment matches a holding by ID, case-insensitive name, or ticker.
func findInvestment(store *profile.Store, key string) (profile.Investment, error) {
	invs, err := store.ListInvestments()
	if err != nil {
		return profile.Investment{}, err
	}
	for _, inv := range invs {
		if inv.ID == key || strings.EqualFold(inv.Name, key) ||
			(inv.Ticker != "" && strings.EqualFold(inv.Ticker, key)) {
			return inv, nil
		}
	}
	return profile.Investment{}, fmt.Errorf("no holding matching %q", key)
}
