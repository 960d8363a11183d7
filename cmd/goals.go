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

var flagGoalDeadline string

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "List savings goals",
	RunE:  runGoals,
}

var goalsAddCmd = &cobra.Command{
	Use:   "add <name> <target>",
	Short: "Add a savings goal",
	Args:  cobra.ExactArgs(2),
	RunE:  runGoalsAdd,
}

var goalsFundCmd = &cobra.Command{
	Use:   "fund <name> <amount>",
	Short: "Add money to a goal",
	Args:  cobra.ExactArgs(2),
	RunE:  runGoalsFund,
}

var goalsRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalsRemove,
}

func init() {
	goalsAddCmd.Flags().StringVar(&flagGoalDeadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	goalsCmd.AddCommand(goalsAddCmd)
	goalsCmd.AddCommand(goalsFundCmd)
	goalsCmd.AddCommand(goalsRemoveCmd)
	rootCmd.AddCommand(goalsCmd)
}

func runGoals(_ *cobra.Command, _ []string) error {
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

	goals, err := store.ListGoals()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("  " + cli.RenderTitle("Savings Goals"))
	fmt.Println()
	if len(goals) == 0 {
		fmt.Println(cli.RenderDim("  No goals yet. Add one with `paisa goals add <name> <target>`."))
		fmt.Println()
		return nil
	}

	for _, g := range goals {
		deadline := ""
		if !g.Deadline.IsZero() {
			deadline = " by " + g.Deadline.Format("2006-01-02")
		}
		fmt.Printf("  %s%s\n", g.Name, cli.RenderDim(deadline))
		fmt.Printf("    %s of %s\n", cli.FormatAmount(g.Saved), cli.FormatAmount(g.Target))
		fmt.Printf("    %s\n", cli.RenderBar(finance.GoalProgress(g.Saved, g.Target), 30))
		fmt.Println()
	}
	return nil
}

func runGoalsAdd(_ *cobra.Command, args []string) error {
	target, err := parseAmount(args[1])
	if err != nil || target == 0 {
		return fmt.Errorf("invalid target %q", args[1])
	}

	g := profile.Goal{Name: args[0], Target: target}
	if flagGoalDeadline != "" {
		d, err := time.Parse("2006-01-02", flagGoalDeadline)
		if err != nil {
			return fmt.Errorf("invalid deadline %q (want YYYY-MM-DD)", flagGoalDeadline)
		}
		g.Deadline = d
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.SaveGoal(g); err != nil {
		return err
	}
	fmt.Printf("  Added goal %q with target %s\n", g.Name, cli.FormatAmount(target))
	return nil
}

func runGoalsFund(_ *cobra.Command, args []string) error {
	amount, err := parseAmount(args[1])
	if err != nil || amount == 0 {
		return fmt.Errorf("invalid amount %q", args[1])
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	g, err := findGoal(store, args[0])
	if err != nil {
		return err
	}
	if err := store.AddToGoal(g.ID, amount); err != nil {
		return err
	}
	fmt.Printf("  Added %s to %q\n", cli.FormatAmount(amount), g.Name)
	return nil
}

func runGoalsRemove(_ *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	g, err := findGoal(store, args[0])
	if err != nil {
		return err
	}
	if err := store.DeleteGoal(g.ID); err != nil {
		return err
	}
	fmt.Printf("  Removed goal %q\n", g.Name)
	return nil
}

// findGoal matches a goal by ID or case-insensitive name.
func findGoal(store *profile.Store, key string) (profile.Goal, error) {
	goals, err := store.ListGoals()
	if err != nil {
		return profile.Goal{}, err
	}
	for _, g := range goals {
		if g.ID == key || strings.EqualFold(g.Name, key) {
			return g, nil
		}
	}
	return profile.Goal{}, fmt.Errorf("no goal matching %q", key)
}
