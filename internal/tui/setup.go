package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/paisapaglu/paisa/internal/config"
	"github.com/paisapaglu/paisa/internal/profile"
	"github.com/paisapaglu/paisa/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// setupValues collects the first-run wizard inputs.
type setupValues struct {
	apiKey string
	income string
	ticker string
	theme  string
}

// newSetupForm builds the first-run setup form.
func newSetupForm(v *setupValues) *huh.Form {
	if v.theme == "" {
		v.theme = theme.Active.Name
	}

	themeOptions := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOptions = append(themeOptions, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("₹ Welcome to paisa").
				Description("A couple of questions and you're set.\nEverything can be changed later with `paisa setup`."),

			huh.NewInput().
				Title("Gemini API key").
				Description("Powers the advisor tab. Free keys at aistudio.google.com/apikey.\nLeave empty to use offline guidance only.").
				EchoMode(huh.EchoModePassword).
				Value(&v.apiKey),

			huh.NewInput().
				Title("Monthly income").
				Description("Used for budget math and the savings gauge.").
				Placeholder("100000").
				Validate(validateAmount).
				Value(&v.income),

			huh.NewInput().
				Title("Default stock ticker").
				Description("Yahoo Finance symbol for quick quotes.").
				Placeholder("RELIANCE.NS").
				Value(&v.ticker),

			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOptions...).
				Value(&v.theme),
		),
	)
}

// validateAmount accepts an empty string or a non-negative number.
func validateAmount(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("enter a number")
	}
	if v < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

// saveSetupConfig persists the wizard answers: config to disk, income
// to the profile store.
func (a App) saveSetupConfig() tea.Cmd {
	v := a.setupVals

	cfg := loadConfigOrDefault()
	if key := strings.TrimSpace(v.apiKey); key != "" {
		cfg.Gemini.APIKey = key
	}
	if ticker := strings.TrimSpace(v.ticker); ticker != "" {
		cfg.General.DefaultTicker = strings.ToUpper(ticker)
	}
	if v.theme != "" {
		cfg.Appearance.Theme = v.theme
		theme.SetActive(v.theme)
	}

	if err := config.Save(cfg); err != nil {
		return func() tea.Msg {
			return dataLoadedMsg{err: fmt.Errorf("saving config: %w", err)}
		}
	}

	incomeStr := strings.TrimSpace(v.income)
	if incomeStr == "" {
		return nil
	}
	income, err := strconv.ParseFloat(incomeStr, 64)
	if err != nil || math.IsNaN(income) || math.IsInf(income, 0) || income < 0 {
		return nil
	}

	return mutateCmd(a.dbPath, func(s *profile.Store) error {
		p, err := s.LoadProfile()
		if err != nil {
			return err
		}
		p.Income = income
		return s.SaveProfile(p)
	})
}
