package cmd

import (
	"fmt"
	"math"
	"strconv"

	"github.com/paisapaglu/paisa/internal/cli"
	"github.com/paisapaglu/paisa/internal/config"
	"github.com/paisapaglu/paisa/internal/finance"

	"github.com/spf13/cobra"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Financial calculators",
}

var calcSIPCmd = &cobra.Command{
	Use:   "sip <monthly> <annual-rate-%> <years>",
	Short: "Project the future value of a monthly SIP",
	Args:  cobra.ExactArgs(3),
	RunE:  runCalcSIP,
}

var calcEMICmd = &cobra.Command{
	Use:   "emi <principal> <annual-rate-%> <years>",
	Short: "Compute the monthly EMI for a loan",
	Args:  cobra.ExactArgs(3),
	RunE:  runCalcEMI,
}

func init() {
	calcCmd.AddCommand(calcSIPCmd)
	calcCmd.AddCommand(calcEMICmd)
	rootCmd.AddCommand(calcCmd)
}

func calcArgs(args []string) (amount, rate float64, years int, err error) {
	if amount, err = parseAmount(args[0]); err != nil {
		return 0, 0, 0, err
	}
	rate, err = strconv.ParseFloat(args[1], 64)
	if err != nil || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0, 0, 0, fmt.Errorf("invalid rate %q", args[1])
	}
	if years, err = strconv.Atoi(args[2]); err != nil {
		return 0, 0, 0, fmt.Errorf("invalid years %q", args[2])
	}
	return amount, rate, years, nil
}

func runCalcSIP(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cli.Currency = cfg.General.Currency

	monthly, rate, years, err := calcArgs(args)
	if err != nil {
		return err
	}

	fv, err := finance.SIPFutureValue(monthly, rate, years)
	if err != nil {
		return err
	}
	invested := monthly * 12 * float64(years)

	fmt.Println()
	fmt.Printf("  Monthly SIP:    %s\n", cli.FormatAmount(monthly))
	fmt.Printf("  Invested:       %s over %d years\n", cli.FormatAmount(invested), years)
	fmt.Printf("  Future value:   %s at %.1f%% p.a.\n", cli.FormatAmount(fv), rate)
	fmt.Printf("  Wealth gained:  %s\n", cli.RenderSigned(cli.FormatAmount(fv-invested), fv-invested))
	fmt.Println()
	return nil
}

func runCalcEMI(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cli.Currency = cfg.General.Currency

	principal, rate, years, err := calcArgs(args)
	if err != nil {
		return err
	}

	emi, err := finance.LoanEMI(principal, rate, years)
	if err != nil {
		return err
	}
	totalPaid := emi * 12 * float64(years)

	fmt.Println()
	fmt.Printf("  Principal:      %s\n", cli.FormatAmount(principal))
	fmt.Printf("  Monthly EMI:    %s at %.1f%% p.a. for %d years\n", cli.FormatAmount(emi), rate, years)
	fmt.Printf("  Total paid:     %s\n", cli.FormatAmount(totalPaid))
	fmt.Printf("  Total interest: %s\n", cli.FormatAmount(totalPaid-principal))
	fmt.Println()
	return nil
}
