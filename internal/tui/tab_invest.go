package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/paisapaglu/paisa/internal/cli"
	"github.com/paisapaglu/paisa/internal/finance"
	"github.com/paisapaglu/paisa/internal/market"
	"github.com/paisapaglu/paisa/internal/tui/components"
	"github.com/paisapaglu/paisa/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// investState holds the invest tab's cursor, ticker lookup field, and
// the last fetched quote.
type investState struct {
	cursor    int
	searching bool
	fetching  bool
	input     textinput.Model
	quote     *market.Quote
	quoteErr  error
}

func newInvestState() investState {
	ti := textinput.New()
	ti.Placeholder = "RELIANCE.NS"
	ti.CharLimit = 20
	ti.Width = 20
	return investState{input: ti}
}

func (a App) updateInvestKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.invest.cursor < len(a.invs)-1 {
			a.invest.cursor++
		}
		return a, nil, true

	case "k", "up":
		if a.invest.cursor > 0 {
			a.invest.cursor--
		}
		return a, nil, true

	case "/":
		a.invest.input.SetValue("")
		a.invest.input.Focus()
		a.invest.searching = true
		return a, textinput.Blink, true

	case "enter":
		if a.invest.cursor < len(a.invs) {
			if ticker := a.invs[a.invest.cursor].Ticker; ticker != "" {
				a.invest.fetching = true
				return a, tea.Batch(fetchQuoteCmd(ticker), a.spinner.Tick), true
			}
			a.status = "no ticker on this holding"
			return a, clearStatusCmd(), true
		}
		return a, nil, true
	}

	return a, nil, false
}

func (a App) updateTickerInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.invest.searching = false
		return a, nil

	case "enter":
		symbol := strings.TrimSpace(a.invest.input.Value())
		a.invest.searching = false
		if symbol == "" {
			return a, nil
		}
		a.invest.fetching = true
		return a, tea.Batch(fetchQuoteCmd(symbol), a.spinner.Tick)
	}

	var cmd tea.Cmd
	a.invest.input, cmd = a.invest.input.Update(msg)
	return a, cmd
}

func (a App) renderInvestTab(cw int) string {
	if a.isCompactLayout() {
		var b strings.Builder
		b.WriteString(components.ContentCard("Portfolio", a.portfolioBody(components.CardInnerWidth(cw)), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Market Quote", a.quoteBody(components.CardInnerWidth(cw)), cw))
		return b.String()
	}

	widths := components.LayoutRow(cw, 2)
	left := components.ContentCard("Portfolio", a.portfolioBody(components.CardInnerWidth(widths[0])), widths[0])
	right := components.ContentCard("Market Quote", a.quoteBody(components.CardInnerWidth(widths[1])), widths[1])
	return components.CardRow([]string{left, right})
}

func (a App) portfolioBody(innerW int) string {
	t := theme.Active
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	if len(a.invs) == 0 {
		return dimStyle.Render("No holdings yet. Add one with `paisa invest add <name> <amount>`.")
	}

	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	gainStyle := lipgloss.NewStyle().Foreground(t.Green)
	lossStyle := lipgloss.NewStyle().Foreground(t.Red)

	var totalIn, totalNow float64
	var b strings.Builder
	for i, inv := range a.invs {
		totalIn += inv.Amount
		totalNow += inv.CurrentValue

		marker := "  "
		ns := nameStyle
		if i == a.invest.cursor {
			marker = cursorStyle.Render("▸ ")
			ns = selStyle
		}

		gain := inv.GainPct()
		gs := gainStyle
		if gain < 0 {
			gs = lossStyle
		}

		label := truncStr(inv.Name, innerW-28)
		value := cli.FormatAmount(inv.CurrentValue)
		pct := fmt.Sprintf("%+.1f%%", gain)

		gap := innerW - lipgloss.Width(label) - lipgloss.Width(value) - len(pct) - 5
		if gap < 1 {
			gap = 1
		}
		b.WriteString(marker + ns.Render(label) + strings.Repeat(" ", gap) +
			valStyle.Render(value) + "  " + gs.Render(pct))
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render(strings.Repeat("─", innerW)))
	b.WriteString("\n")

	totalGain := finance.PortfolioReturn(totalIn, totalNow)
	gs := gainStyle
	if totalGain < 0 {
		gs = lossStyle
	}
	b.WriteString("  " + nameStyle.Render("Invested ") + valStyle.Render(cli.FormatAmount(totalIn)) +
		nameStyle.Render("  Now ") + valStyle.Render(cli.FormatAmount(totalNow)) +
		"  " + gs.Render(fmt.Sprintf("%+.1f%%", totalGain)))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("[enter]quote holding  [/]lookup ticker  [jk]move"))
	return b.String()
}

func (a App) quoteBody(innerW int) string {
	t := theme.Active
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	if a.invest.searching {
		return labelStyle.Render("Ticker: ") + a.invest.input.View() +
			"\n" + dimStyle.Render("enter to fetch · esc to cancel")
	}

	if a.invest.fetching {
		return a.spinner.View() + dimStyle.Render(" fetching quote...")
	}

	if a.invest.quoteErr != nil {
		msg := "quote unavailable, try again later"
		if errors.Is(a.invest.quoteErr, market.ErrNoData) {
			msg = "no data for that symbol"
		}
		return dimStyle.Render(msg) + "\n\n" +
			dimStyle.Render("[/] to look up another ticker")
	}

	if a.invest.quote == nil {
		return dimStyle.Render("Press / to look up a ticker, or enter on a holding.")
	}

	q := a.invest.quote
	changeStyle := lipgloss.NewStyle().Foreground(t.Green)
	if q.ChangePct < 0 {
		changeStyle = lipgloss.NewStyle().Foreground(t.Red)
	}

	var b strings.Builder
	b.WriteString(valStyle.Render(q.Symbol))
	if q.Currency != "" {
		b.WriteString(dimStyle.Render(" · " + q.Currency))
	}
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Price     ") + valStyle.Render(fmt.Sprintf("%.2f", q.Price)))
	b.WriteString("  " + changeStyle.Render(fmt.Sprintf("%+.2f%%", q.ChangePct)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("1mo range ") +
		lipgloss.NewStyle().Foreground(t.TextPrimary).Render(fmt.Sprintf("%.2f - %.2f", q.RangeLow, q.RangeHigh)))
	b.WriteString("\n\n")

	spark := a.invest.quote.Closes
	if len(spark) > innerW {
		spark = spark[len(spark)-innerW:]
	}
	b.WriteString(components.Sparkline(spark, t.Cyan))
	b.WriteString("\n" + dimStyle.Render("last month, daily closes"))
	return b.String()
}
