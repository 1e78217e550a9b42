package compare

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/mwhitney/finsight/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBaseline() domain.ProjectionInput {
	return domain.ProjectionInput{
		Principal:           decimal.NewFromInt(10000),
		MonthlyContribution: decimal.NewFromInt(500),
		AnnualRate:          decimal.NewFromFloat(0.08),
		Years:               10,
	}
}

func testScenarios() []domain.WhatIfScenario {
	return []domain.WhatIfScenario{
		{Name: "save more", Input: domain.ProjectionInput{
			Principal:           decimal.NewFromInt(10000),
			MonthlyContribution: decimal.NewFromInt(600),
		}},
		{Name: "save less", Input: domain.ProjectionInput{
			Principal:           decimal.NewFromInt(10000),
			MonthlyContribution: decimal.NewFromInt(400),
		}},
	}
}

func TestBuildSet(t *testing.T) {
	set := BuildSet("current plan", testBaseline(), testScenarios(), "USD")

	assert.Equal(t, "current plan", set.BaselineName)
	require.Len(t, set.Alternates, 2)

	saveMore := set.Alternates[0]
	assert.Equal(t, "save more", saveMore.Name)
	assert.True(t, saveMore.Delta.GreaterThan(decimal.Zero))
	assert.Equal(t, 10, saveMore.Input.Years, "scenario inherits the baseline horizon")
	assert.True(t, saveMore.Input.AnnualRate.Equal(decimal.NewFromFloat(0.08)), "scenario inherits the baseline rate")

	saveLess := set.Alternates[1]
	assert.True(t, saveLess.Delta.IsNegative())
}

func TestGenerateRecommendations(t *testing.T) {
	set := BuildSet("current plan", testBaseline(), testScenarios(), "USD")

	require.NotEmpty(t, set.Recommendations)
	assert.Contains(t, set.Recommendations[0], "save more")
	found := false
	for _, rec := range set.Recommendations {
		if strings.Contains(rec, "save less") && strings.Contains(rec, "below the baseline") {
			found = true
		}
	}
	assert.True(t, found, "negative scenario should be called out")
}

func TestGenerateRecommendations_Empty(t *testing.T) {
	set := BuildSet("current plan", testBaseline(), nil, "USD")
	assert.Empty(t, set.Recommendations)
}

func TestTableFormatter(t *testing.T) {
	set := BuildSet("current plan", testBaseline(), testScenarios(), "USD")

	text := (&TableFormatter{}).Format(set)
	assert.Contains(t, text, "WHAT-IF SCENARIO COMPARISON")
	assert.Contains(t, text, "current plan (base)")
	assert.Contains(t, text, "save more")
	assert.Contains(t, text, "RECOMMENDATIONS")
}

func TestJSONFormatter(t *testing.T) {
	set := BuildSet("current plan", testBaseline(), testScenarios(), "USD")

	out, err := (&JSONFormatter{Pretty: true}).Format(set)
	require.NoError(t, err)

	var decoded Set
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, set.BaselineName, decoded.BaselineName)
	assert.Len(t, decoded.Alternates, 2)
}
