package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateProgress_Clamped(t *testing.T) {
	progress := EvaluateProgress(decimal.NewFromInt(150000), decimal.NewFromInt(100000))

	assert.True(t, progress.Percentage.Equal(decimal.NewFromInt(100)), "overshoot must clamp to 100")
	assert.True(t, progress.SurplusOrShortfall.Equal(decimal.NewFromInt(50000)), "excess is reported as surplus")
	assert.True(t, progress.OnTrack())
}

func TestEvaluateProgress_Partial(t *testing.T) {
	progress := EvaluateProgress(decimal.NewFromInt(40000), decimal.NewFromInt(100000))

	assert.True(t, progress.Percentage.Equal(decimal.NewFromInt(40)))
	assert.True(t, progress.SurplusOrShortfall.Equal(decimal.NewFromInt(-60000)))
	assert.False(t, progress.OnTrack())
}

func TestEvaluateProgress_DegenerateTarget(t *testing.T) {
	progress := EvaluateProgress(decimal.NewFromInt(40000), decimal.Zero)

	assert.True(t, progress.Percentage.IsZero(), "zero target yields zero percent, not a division error")
	assert.True(t, progress.SurplusOrShortfall.Equal(decimal.NewFromInt(40000)))
	assert.False(t, progress.OnTrack())

	negative := EvaluateProgress(decimal.NewFromInt(500), decimal.NewFromInt(-10))
	assert.True(t, negative.Percentage.IsZero())
}

func TestEvaluateProgress_Bounded(t *testing.T) {
	values := []int64{0, 1, 99, 100000, 12345678}
	target := decimal.NewFromInt(50000)

	for _, v := range values {
		progress := EvaluateProgress(decimal.NewFromInt(v), target)
		assert.True(t, progress.Percentage.GreaterThanOrEqual(decimal.Zero))
		assert.True(t, progress.Percentage.LessThanOrEqual(decimal.NewFromInt(100)))
	}
}
