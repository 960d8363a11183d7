package tui

import (
	"strings"

	"github.com/paisapaglu/paisa/internal/tui/components"
	"github.com/paisapaglu/paisa/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type chatRole int

const (
	roleUser chatRole = iota
	roleAdvisor
	roleOffline // fallback guidance shown when the service is unreachable
)

// chatEntry is one message in the advisor conversation.
type chatEntry struct {
	role chatRole
	text string
}

// advisorState holds the advisor tab's conversation and input field.
type advisorState struct {
	history []chatEntry
	typing  bool
	waiting bool
	scroll  int // lines scrolled up from the bottom
	input   textinput.Model
}

func newAdvisorState() advisorState {
	ti := textinput.New()
	ti.Placeholder = "How much should I save each month?"
	ti.CharLimit = 280
	ti.Width = 60
	return advisorState{input: ti}
}

func (a App) updateAdvisorKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "enter":
		if a.chat.waiting {
			return a, nil, true
		}
		a.chat.input.SetValue("")
		a.chat.input.Focus()
		a.chat.typing = true
		return a, textinput.Blink, true

	case "j", "down":
		if a.chat.scroll > 0 {
			a.chat.scroll--
		}
		return a, nil, true

	case "k", "up":
		a.chat.scroll++
		return a, nil, true

	case "c":
		a.chat.history = nil
		a.chat.scroll = 0
		return a, nil, true
	}

	return a, nil, false
}

func (a App) updateAdvisorInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.chat.typing = false
		return a, nil

	case "enter":
		question := strings.TrimSpace(a.chat.input.Value())
		a.chat.typing = false
		if question == "" {
			return a, nil
		}
		a.chat.history = append(a.chat.history, chatEntry{role: roleUser, text: question})
		a.chat.waiting = true
		a.chat.scroll = 0
		return a, tea.Batch(fetchAdviceCmd(question, a.currentSnapshot()), a.spinner.Tick)
	}

	var cmd tea.Cmd
	a.chat.input, cmd = a.chat.input.Update(msg)
	return a, cmd
}

func (a App) renderAdvisorTab(cw, contentH int) string {
	t := theme.Active
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	innerW := components.CardInnerWidth(cw)

	// Reserve space for the card frame and the input row
	historyH := contentH - 6
	if historyH < 4 {
		historyH = 4
	}

	history := a.chatHistoryLines(innerW)

	// Clamp scroll so we never scroll past the top
	maxScroll := len(history) - historyH
	if maxScroll < 0 {
		maxScroll = 0
	}
	scroll := a.chat.scroll
	if scroll > maxScroll {
		scroll = maxScroll
	}

	start := len(history) - historyH - scroll
	if start < 0 {
		start = 0
	}
	end := start + historyH
	if end > len(history) {
		end = len(history)
	}
	visible := strings.Join(history[start:end], "\n")
	visible = padHeight(visible, historyH)

	var footer string
	switch {
	case a.chat.waiting:
		footer = a.spinner.View() + dimStyle.Render(" thinking...")
	case a.chat.typing:
		footer = labelStyle.Render("You: ") + a.chat.input.View() +
			"\n" + dimStyle.Render("enter to send · esc to cancel")
	default:
		footer = dimStyle.Render("[enter]ask  [jk]scroll  [c]lear")
	}

	body := visible + "\n" + dimStyle.Render(strings.Repeat("─", innerW)) + "\n" + footer
	return components.ContentCard("Financial Advisor", body, cw)
}

// chatHistoryLines renders the conversation as wrapped lines.
func (a App) chatHistoryLines(innerW int) []string {
	t := theme.Active

	if len(a.chat.history) == 0 {
		dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
		return []string{
			dimStyle.Render("Ask anything about your money. The advisor sees your"),
			dimStyle.Render("income, expenses, savings rate, and goals."),
		}
	}

	youStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
	advStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	offStyle := lipgloss.NewStyle().Foreground(t.Yellow).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var lines []string
	for _, entry := range a.chat.history {
		var header string
		switch entry.role {
		case roleUser:
			header = youStyle.Render("You")
		case roleOffline:
			header = offStyle.Render("Advisor (offline guidance)")
		default:
			header = advStyle.Render("Advisor")
		}
		lines = append(lines, header)
		for _, l := range strings.Split(wrapText(entry.text, innerW-2), "\n") {
			lines = append(lines, "  "+textStyle.Render(l))
		}
		lines = append(lines, "")
	}
	return lines
}
