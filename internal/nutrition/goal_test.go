package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		name     string
		consumed float64
		target   float64
		expected float64
	}{
		{"empty day", 0, 2000, 0},
		{"half way", 1000, 2000, 0.5},
		{"exactly at goal", 2000, 2000, 1},
		{"over goal clamps to one", 2600, 2000, 1},
		{"uncapped target resolves to zero", 5, 0, 0},
		{"uncapped target with zero intake", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Progress(tt.consumed, tt.target))
		})
	}
}

func TestProgressMonotone(t *testing.T) {
	prev := 0.0
	for v := 0.0; v <= 3000; v += 50 {
		p := Progress(v, 2000)
		assert.GreaterOrEqual(t, p, prev)
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
		prev = p
	}
}

func TestEvaluate(t *testing.T) {
	totals := Totals{
		Kcal:         2150,
		ProteinUnits: 5,
		CarbUnits:    4,
		FatUnits:     2,
		VegUnits:     3,
		FruitUnits:   1,
	}
	goals := GoalSet{
		Calories: 2000,
		Protein:  6,
		Carb:     4,
		Fat:      3,
		Veg:      0, // no cap
		Fruit:    2,
	}

	report := Evaluate(totals, goals)

	assert.Equal(t, 1.0, report.Calories.Progress)
	assert.True(t, report.Calories.OverGoal)
	assert.InDelta(t, -150, report.Calories.Remaining, 1e-9)

	assert.InDelta(t, 5.0/6.0, report.Protein.Progress, 1e-9)
	assert.False(t, report.Protein.OverGoal)
	assert.InDelta(t, 1, report.Protein.Remaining, 1e-9)

	assert.Equal(t, 1.0, report.Carb.Progress)
	assert.False(t, report.Carb.OverGoal, "meeting a goal exactly is not exceeding it")

	// Unbounded veg: intake never reads as over goal.
	assert.Equal(t, 0.0, report.Veg.Progress)
	assert.False(t, report.Veg.OverGoal)

	assert.Equal(t, 0.5, report.Fruit.Progress)
}
