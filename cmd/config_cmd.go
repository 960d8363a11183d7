package cmd

import (
	"fmt"

	"github.com/paisapaglu/paisa/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Currency:       %s\n", cfg.General.Currency)
	fmt.Printf("    Default ticker: %s\n", cfg.General.DefaultTicker)
	fmt.Println()

	fmt.Println("  [Gemini]")
	apiKey := config.GetAPIKey(cfg)
	if apiKey != "" {
		fmt.Printf("    API key: %s\n", maskAPIKey(apiKey))
	} else {
		fmt.Println("    API key: not configured")
	}
	fmt.Printf("    Model:   %s\n", cfg.Gemini.Model)
	fmt.Println()

	fmt.Println("  [News]")
	if len(cfg.News.Feeds) == 0 {
		fmt.Println("    Feeds: built-in defaults")
	} else {
		for _, f := range cfg.News.Feeds {
			fmt.Printf("    %s: %s\n", f.Name, f.URL)
		}
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Printf("  Data file: %s\n", dbPath())
	fmt.Println()

	fmt.Println("  Run `paisa setup` to reconfigure.")
	return nil
}
