package cmd

import (
	"fmt"

	"github.com/paisapaglu/paisa/internal/cli"
	"github.com/paisapaglu/paisa/internal/config"
	"github.com/paisapaglu/paisa/internal/finance"

	"github.com/spf13/cobra"
)

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Show the balance sheet: assets, liabilities, net worth",
	RunE:  runSheet,
}

var sheetSetAssetCmd = &cobra.Command{
	Use:   "set-asset <name> <amount>",
	Short: "Set an asset balance (amount 0 removes it)",
	Args:  cobra.ExactArgs(2),
	RunE:  runSheetSet("asset"),
}

var sheetSetLiabilityCmd = &cobra.Command{
	Use:   "set-liability <name> <amount>",
	Short: "Set a liability balance (amount 0 removes it)",
	Args:  cobra.ExactArgs(2),
	RunE:  runSheetSet("liability"),
}

func init() {
	sheetCmd.AddCommand(sheetSetAssetCmd)
	sheetCmd.AddCommand(sheetSetLiabilityCmd)
	rootCmd.AddCommand(sheetCmd)
}

func runSheet(_ *cobra.Command, _ []string) error {
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

	totalAssets, totalLiabilities, netWorth, err := finance.NetWorth(p.Assets, p.Liabilities)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("  " + cli.RenderTitle("Balance Sheet"))
	fmt.Println()

	if len(p.Assets) > 0 {
		rows := make([][]string, 0, len(p.Assets))
		for _, e := range finance.SortedExpenses(p.Assets) {
			rows = append(rows, []string{e.Category, cli.FormatAmount(e.Amount)})
		}
		fmt.Print(cli.RenderTable([]string{"Asset", "Value"}, rows))
	}
	if len(p.Liabilities) > 0 {
		rows := make([][]string, 0, len(p.Liabilities))
		for _, e := range finance.SortedExpenses(p.Liabilities) {
			rows = append(rows, []string{e.Category, cli.FormatAmount(e.Amount)})
		}
		fmt.Print(cli.RenderTable([]string{"Liability", "Outstanding"}, rows))
	}

	fmt.Println()
	fmt.Printf("  Total assets:      %s\n", cli.FormatAmount(totalAssets))
	fmt.Printf("  Total liabilities: %s\n", cli.FormatAmount(totalLiabilities))
	fmt.Printf("  Net worth:         %s\n", cli.RenderSigned(cli.FormatAmount(netWorth), netWorth))
	fmt.Println()
	return nil
}

func runSheetSet(kind string) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		name := args[0]
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

		target := p.Assets
		if kind == "liability" {
			target = p.Liabilities
		}
		if amount == 0 {
			delete(target, name)
			fmt.Printf("  Removed %s %q\n", kind, name)
		} else {
			target[name] = amount
			fmt.Printf("  %s %q set to %s\n", kind, name, cli.FormatAmount(amount))
		}
		return store.SaveProfile(p)
	}
}
