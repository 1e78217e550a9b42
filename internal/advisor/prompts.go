package advisor

import (
	"fmt"

	"github.com/mwhitney/finsight/internal/currency"
	"github.com/mwhitney/finsight/internal/domain"
)

// SystemPromptTemplate frames the assistant with the user's financial
// snapshot. Interpolated fields: name, currency code, current savings,
// monthly contribution, goal amount, health score, health band.
const SystemPromptTemplate = `You are a personal finance assistant for %s.
Their situation, in %s:
- Current savings: %s
- Monthly contribution: %s
- Goal: %s
- Financial health score: %d/100 (%s)

Give short, practical answers about saving, budgeting and long-term planning.
Do not give specific investment, tax or legal advice.`

// BuildSystemPrompt interpolates the user's profile and latest health score
// into the system prompt.
func BuildSystemPrompt(profile domain.UserProfile, health domain.HealthScoreResult) string {
	code := profile.CurrencyCode
	return fmt.Sprintf(SystemPromptTemplate,
		profile.Name,
		currency.ConfigFor(code).Code,
		currency.Format(code, profile.CurrentSavings),
		currency.Format(code, profile.MonthlyContribution),
		currency.Format(code, profile.GoalAmount),
		health.Score,
		health.Band,
	)
}
