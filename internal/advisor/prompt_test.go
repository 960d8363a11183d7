package advisor

import (
	"strings"
	"testing"
)

func TestBuildPrompt_IncludesSnapshot(t *testing.T) {
	rate := 0.3
	prompt := BuildPrompt("should I prepay my loan?", Snapshot{
		Income:      100000,
		Expenses:    70000,
		SavingsRate: &rate,
		NetWorth:    3150000,
		GoalCount:   2,
	})

	for _, want := range []string{
		"should I prepay my loan?",
		"₹100000.00/month",
		"30.0%",
		"2 active savings goals",
		"Loss Aversion",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPrompt_UndefinedRate(t *testing.T) {
	prompt := BuildPrompt("help", Snapshot{Income: 0})
	if !strings.Contains(prompt, "undefined (income is zero)") {
		t.Errorf("prompt should mark savings rate undefined when income is zero")
	}
}

func TestTopicQuestion_CoversAllTopics(t *testing.T) {
	for _, topic := range Topics() {
		q := TopicQuestion(topic)
		if q == "" || q == topic {
			t.Errorf("TopicQuestion(%q) = %q, want an expanded question", topic, q)
		}
	}
	// unknown topics pass through
	if got := TopicQuestion("gold"); got != "gold" {
		t.Errorf("TopicQuestion(unknown) = %q, want passthrough", got)
	}
}

func TestFallback_MatchesKeywords(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"how do I invest?", "Investment Options"},
		{"help me budget", "Budgeting Strategies"},
		{"tax saving", "Tax Saving Options"},
		{"emergency fund size", "Emergency Fund Basics"},
		{"what should I do with money", "General Financial Advice"},
	}
	for _, tt := range tests {
		if got := Fallback(tt.query); !strings.Contains(got, tt.want) {
			t.Errorf("Fallback(%q) missing %q", tt.query, tt.want)
		}
	}
}
