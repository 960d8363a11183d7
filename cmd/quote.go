package cmd

import (
	"fmt"

	"github.com/paisapaglu/paisa/internal/cli"
	"github.com/paisapaglu/paisa/internal/config"
	"github.com/paisapaglu/paisa/internal/market"

	"github.com/spf13/cobra"
)

var quoteCmd = &cobra.Command{
	Use:   "quote [symbol]",
	Short: "Show a one-month quote for a ticker",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runQuote,
}

func init() {
	rootCmd.AddCommand(quoteCmd)
}

func runQuote(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	symbol := cfg.General.DefaultTicker
	if len(args) > 0 {
		symbol = args[0]
	}

	client := market.NewClient("")
	q, err := client.Fetch(cmd.Context(), symbol)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", symbol, err)
	}

	fmt.Println()
	fmt.Println("  " + cli.RenderTitle(q.Symbol))
	fmt.Println()
	fmt.Printf("  Price:      %.2f %s\n", q.Price, q.Currency)
	fmt.Printf("  Change:     %s\n", cli.RenderSigned(cli.FormatChange(q.ChangePct), q.ChangePct))
	fmt.Printf("  1mo range:  %.2f - %.2f\n", q.RangeLow, q.RangeHigh)
	fmt.Println()
	fmt.Printf("  %s\n", cli.RenderSparkline(q.Closes))
	fmt.Println()
	return nil
}
