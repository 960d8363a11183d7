package advisor

import (
	"fmt"
	"strings"
)

// Topics the advisor can be asked about directly from the learn surface.
const (
	TopicBudgeting     = "budgeting"
	TopicEmergencyFund = "emergency funds"
	TopicInvesting     = "saving & investing"
	TopicRetirement    = "retirement"
	TopicFunds         = "mutual funds & SIPs"
)

// Topics lists the supported advice topics in display order.
func Topics() []string {
	return []string{
		TopicBudgeting,
		TopicEmergencyFund,
		TopicInvesting,
		TopicRetirement,
		TopicFunds,
	}
}

// cognitiveBiases is appended to every prompt so the model accounts for
// the behavioral side of the advice it gives.
const cognitiveBiases = `When providing financial advice, consider these cognitive biases:
1. Overconfidence Bias: Investors overestimate their knowledge.
2. Anchoring Bias: Initial information anchors decisions.
3. Herding Behavior: Following the crowd.
4. Loss Aversion: Fear of losses leads to conservative decisions.
5. Confirmation Bias: Seeking confirming information.
6. Recency Bias: Overweighting recent events.
7. Framing Effect: Decisions influenced by presentation.
8. Mental Accounting: Treating money differently.
9. Status Quo Bias: Preference for current situation.
10. Disposition Effect: Selling winners, holding losers.`

// Snapshot summarizes the user's finances for prompt context.
// Zero-value fields are rendered as unknown rather than omitted.
type Snapshot struct {
	Income      float64
	Expenses    float64
	SavingsRate *float64 // nil when income is zero
	NetWorth    float64
	GoalCount   int
	Currency    string
}

// BuildPrompt assembles the full advisor prompt: the user's question,
// their financial snapshot, and behavioral-finance guidance.
func BuildPrompt(question string, snap Snapshot) string {
	cur := snap.Currency
	if cur == "" {
		cur = "₹"
	}

	rate := "undefined (income is zero)"
	if snap.SavingsRate != nil {
		rate = fmt.Sprintf("%.1f%%", *snap.SavingsRate*100)
	}

	var b strings.Builder
	b.WriteString("As a certified financial advisor, provide detailed, personalized advice considering:\n\n")
	b.WriteString("User Financial Snapshot:\n")
	fmt.Fprintf(&b, "- Income: %s%.2f/month\n", cur, snap.Income)
	fmt.Fprintf(&b, "- Expenses: %s%.2f/month\n", cur, snap.Expenses)
	fmt.Fprintf(&b, "- Savings Rate: %s\n", rate)
	fmt.Fprintf(&b, "- Net Worth: %s%.2f\n", cur, snap.NetWorth)
	fmt.Fprintf(&b, "- Goals: %d active savings goals\n\n", snap.GoalCount)
	fmt.Fprintf(&b, "Question: %s\n\n", strings.TrimSpace(question))
	b.WriteString("Behavioral Considerations:\n")
	b.WriteString(cognitiveBiases)
	b.WriteString("\n\nResponse Guidelines:\n")
	b.WriteString("1. Start with key takeaways\n")
	b.WriteString("2. Provide specific, actionable steps\n")
	b.WriteString("3. Suggest tools/resources\n")
	b.WriteString("4. Highlight behavioral pitfalls\n")
	b.WriteString("5. Keep formatting plain-text friendly for a terminal\n")
	return b.String()
}

// TopicQuestion converts a learn topic into the question sent to the model.
func TopicQuestion(topic string) string {
	switch topic {
	case TopicBudgeting:
		return "How should I budget my monthly income? Explain the 50/30/20 rule and how to apply it."
	case TopicEmergencyFund:
		return "How large should my emergency fund be and where should I keep it?"
	case TopicInvesting:
		return "How do I start saving and investing? Compare the main options available to me."
	case TopicRetirement:
		return "How should I plan for retirement? How much do I need and which instruments help?"
	case TopicFunds:
		return "Explain mutual funds and SIPs. How do I pick funds and how much should I invest monthly?"
	default:
		return topic
	}
}
