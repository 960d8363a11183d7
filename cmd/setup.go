package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/paisapaglu/paisa/internal/cli"
	"github.com/paisapaglu/paisa/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to paisa!")
	fmt.Println()

	// 1. API key
	fmt.Println("  1. Gemini API key")
	fmt.Println("     For AI-backed advice. Get one at https://aistudio.google.com/apikey")
	existing := config.GetAPIKey(cfg)
	if existing != "" {
		fmt.Printf("     Current: %s\n", maskAPIKey(existing))
	}
	fmt.Print("     > ")
	apiKey, _ := reader.ReadString('\n')
	apiKey = strings.TrimSpace(apiKey)
	if apiKey != "" {
		cfg.Gemini.APIKey = apiKey
	}
	fmt.Println()

	// 2. Monthly income
	fmt.Println("  2. Monthly income")
	fmt.Print("     > ")
	incomeStr, _ := reader.ReadString('\n')
	incomeStr = strings.TrimSpace(incomeStr)
	var income float64
	if incomeStr != "" {
		v, err := strconv.ParseFloat(incomeStr, 64)
		if err != nil || v < 0 {
			fmt.Println("     Skipping: not a valid amount.")
		} else {
			income = v
		}
	}
	fmt.Println()

	// 3. Default ticker
	fmt.Printf("  3. Default ticker for `paisa quote` [%s]\n", cfg.General.DefaultTicker)
	fmt.Print("     > ")
	ticker, _ := reader.ReadString('\n')
	ticker = strings.TrimSpace(ticker)
	if ticker != "" {
		cfg.General.DefaultTicker = strings.ToUpper(ticker)
	}
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Tokyo Night")
	fmt.Println("     (4) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "tokyo-night"
	case "4":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	if income > 0 {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		p, err := store.LoadProfile()
		if err != nil {
			return err
		}
		p.Income = income
		if err := store.SaveProfile(p); err != nil {
			return err
		}
		fmt.Printf("  Income set to %s\n", cli.FormatAmount(income))
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `paisa setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func maskAPIKey(key string) string {
	if len(key) > 16 {
		return key[:8] + "..." + key[len(key)-4:]
	}
	if len(key) > 4 {
		return key[:4] + "..."
	}
	return "****"
}
