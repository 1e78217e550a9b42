package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwhitney/finsight/internal/currency"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("finsight growth projection"))
	b.WriteString("\n")

	form := m.renderForm()
	results := m.renderResults()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cardStyle.Render(form), cardStyle.Render(results)))
	b.WriteString("\n")
	b.WriteString(m.renderChart())
	b.WriteString(helpStyle.Render("tab/shift+tab: move between fields • esc: quit"))

	return b.String()
}

func (m Model) renderForm() string {
	prompts := [fieldCount]string{"Current savings", "Monthly contribution", "Annual rate %", "Years", "Goal amount"}

	var rows []string
	for i, input := range m.inputs {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(prompts[i]),
			input.View()))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderResults() string {
	rows := []string{
		labelStyle.Render("Total value") + valueStyle.Render(currency.Format(m.currency, m.result.TotalValue)),
		labelStyle.Render("Contributed") + currency.Format(m.currency, m.result.TotalContributed),
		labelStyle.Render("Interest earned") + currency.Format(m.currency, m.result.TotalInterest),
	}

	progress := fmt.Sprintf("%s%%", m.goal.Percentage.StringFixed(1))
	if m.goal.OnTrack() {
		rows = append(rows, labelStyle.Render("Goal progress")+goodStyle.Render(progress+" ✓"))
	} else {
		rows = append(rows, labelStyle.Render("Goal progress")+badStyle.Render(progress))
	}

	return strings.Join(rows, "\n")
}

// renderChart draws one bar per year, scaled against the final total value.
func (m Model) renderChart() string {
	if len(m.series) < 2 {
		return ""
	}

	maxValue := m.series[len(m.series)-1].Result.TotalValue
	if maxValue.IsZero() {
		return ""
	}

	maxBar := 48
	var b strings.Builder
	for _, point := range m.series {
		ratio := point.Result.TotalValue.Div(maxValue).InexactFloat64()
		width := int(ratio * float64(maxBar))
		if width < 1 {
			width = 1
		}
		bar := chartBarStyle.Render(strings.Repeat("█", width))
		b.WriteString(fmt.Sprintf("%3d │%s %s\n", point.Year, bar, currency.Format(m.currency, point.Result.TotalValue)))
	}
	return b.String()
}
