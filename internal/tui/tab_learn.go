package tui

import (
	"strings"

	"github.com/paisapaglu/paisa/internal/advisor"
	"github.com/paisapaglu/paisa/internal/tui/components"
	"github.com/paisapaglu/paisa/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// learnState holds the learn tab's topic cursor.
type learnState struct {
	cursor int
}

// topicPrimers maps each advisor topic to a short offline primer shown
// before the user asks for personalized advice.
var topicPrimers = map[string]string{
	advisor.TopicBudgeting: `A budget is a plan for every rupee you earn. The 50/30/20 rule is a
simple starting split: 50% of income to needs (rent, groceries,
utilities, transport), 30% to wants (dining out, entertainment,
shopping), and 20% to savings and debt repayment.

Track actual spending for a month before optimizing. Most people
underestimate small recurring expenses like subscriptions and delivery
fees.`,

	advisor.TopicEmergencyFund: `An emergency fund covers surprise expenses without forcing you into
debt. Aim for 3 to 6 months of essential expenses, kept somewhere you
can reach within a day or two: a savings account, sweep-in FD, or a
liquid mutual fund.

Build it before investing in anything volatile. A market dip and a job
loss often arrive together.`,

	advisor.TopicInvesting: `Saving preserves money; investing grows it. Start with the boring
core: index funds tracking broad markets, held for years. Equity suits
goals 5+ years away, debt instruments suit nearer goals.

Time in the market beats timing the market. Automate contributions so
discipline doesn't depend on willpower.`,

	advisor.TopicRetirement: `Retirement is the one goal you cannot borrow for. Compounding rewards
early starters heavily: money invested in your 20s can outweigh far
larger sums invested in your 40s.

Use tax-advantaged vehicles first (EPF, PPF, NPS), then equity funds
for the long runway. Revisit the plan yearly, not daily.`,

	advisor.TopicFunds: `A mutual fund pools money from many investors into a managed
portfolio. A SIP (Systematic Investment Plan) invests a fixed amount
on a schedule, which averages your purchase price across market highs
and lows.

Watch the expense ratio. Over decades, a 1% fee difference compounds
into a large chunk of your returns.`,
}

func (a App) updateLearnKeys(key string) (tea.Model, tea.Cmd, bool) {
	topics := advisor.Topics()

	switch key {
	case "j", "down":
		if a.learn.cursor < len(topics)-1 {
			a.learn.cursor++
		}
		return a, nil, true

	case "k", "up":
		if a.learn.cursor > 0 {
			a.learn.cursor--
		}
		return a, nil, true

	case "enter":
		// Ask the advisor for personalized guidance on this topic
		topic := topics[a.learn.cursor]
		question := advisor.TopicQuestion(topic)
		a.chat.history = append(a.chat.history, chatEntry{role: roleUser, text: "Tell me about " + topic})
		a.chat.waiting = true
		a.activeTab = tabAdvisor
		return a, tea.Batch(fetchAdviceCmd(question, a.currentSnapshot()), a.spinner.Tick), true
	}

	return a, nil, false
}

func (a App) renderLearnTab(cw int) string {
	topics := advisor.Topics()

	listW := 28
	if a.isCompactLayout() {
		listW = 24
	}
	detailW := cw - listW

	t := theme.Active
	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	itemStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var list strings.Builder
	for i, topic := range topics {
		if i == a.learn.cursor {
			list.WriteString(cursorStyle.Render("▸ ") + selStyle.Render(topic))
		} else {
			list.WriteString("  " + itemStyle.Render(topic))
		}
		list.WriteString("\n")
	}
	list.WriteString("\n" + dimStyle.Render("[jk]move\n[enter]ask advisor"))

	selected := topics[a.learn.cursor]
	primer := topicPrimers[selected]

	body := wrapText(primer, components.CardInnerWidth(detailW))
	body += "\n\n" + dimStyle.Render("Press enter for advice tailored to your numbers.")

	left := components.ContentCard("Topics", list.String(), listW)
	right := components.ContentCard(titleFirst(selected), body, detailW)
	return components.CardRow([]string{left, right})
}

// titleFirst uppercases the first letter of a topic name.
func titleFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// wrapText re-wraps prose to the given width, preserving blank lines.
func wrapText(s string, width int) string {
	if width < 10 {
		width = 10
	}
	var out []string
	for _, para := range strings.Split(s, "\n\n") {
		words := strings.Fields(para)
		var line string
		var lines []string
		for _, w := range words {
			if line == "" {
				line = w
			} else if len(line)+1+len(w) <= width {
				line += " " + w
			} else {
				lines = append(lines, line)
				line = w
			}
		}
		if line != "" {
			lines = append(lines, line)
		}
		out = append(out, strings.Join(lines, "\n"))
	}
	return strings.Join(out, "\n\n")
}
