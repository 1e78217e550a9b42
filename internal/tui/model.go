package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwhitney/finsight/internal/calculation"
	"github.com/mwhitney/finsight/internal/config"
	"github.com/mwhitney/finsight/internal/domain"
)

const (
	fieldPrincipal = iota
	fieldMonthly
	fieldRate
	fieldYears
	fieldGoal
	fieldCount
)

// Model is the interactive projection dashboard: a column of input fields on
// the left, live results on the right, recomputed on every keystroke.
type Model struct {
	inputs   []textinput.Model
	focus    int
	currency string

	input  domain.ProjectionInput
	result domain.ProjectionResult
	series []domain.YearProjection
	goal   domain.GoalProgress

	width  int
	height int
}

// New builds the dashboard, seeded from a user profile.
func New(profile domain.UserProfile, annualRatePercent string, years string) Model {
	labels := [fieldCount]struct {
		placeholder string
		initial     string
	}{
		{placeholder: "10000", initial: profile.CurrentSavings.String()},
		{placeholder: "500", initial: profile.MonthlyContribution.String()},
		{placeholder: "9", initial: annualRatePercent},
		{placeholder: "10", initial: years},
		{placeholder: "100000", initial: profile.GoalAmount.String()},
	}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = labels[i].placeholder
		ti.SetValue(labels[i].initial)
		ti.CharLimit = 12
		ti.Width = 14
		inputs[i] = ti
	}
	inputs[0].Focus()

	currency := profile.CurrencyCode
	if currency == "" {
		currency = "USD"
	}

	m := Model{
		inputs:   inputs,
		currency: currency,
	}
	m.recompute()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) recompute() {
	m.input = config.ParseProjectionForm(config.FormInput{
		Principal:           m.inputs[fieldPrincipal].Value(),
		MonthlyContribution: m.inputs[fieldMonthly].Value(),
		AnnualRatePercent:   m.inputs[fieldRate].Value(),
		Years:               m.inputs[fieldYears].Value(),
	})

	m.result = calculation.ProjectGrowth(m.input)
	m.series = calculation.ProjectGrowthSeries(m.input)
	m.goal = calculation.EvaluateProgress(m.result.TotalValue, config.ParseAmount(m.inputs[fieldGoal].Value()))
}
