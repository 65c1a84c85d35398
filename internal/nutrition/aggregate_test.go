package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func contrib(kcal, protein, carb, fat, veg, fruit float64) Contribution {
	return Contribution{
		Kcal:         kcal,
		ProteinUnits: protein,
		CarbUnits:    carb,
		FatUnits:     fat,
		VegUnits:     veg,
		FruitUnits:   fruit,
	}
}

func TestAggregateEmpty(t *testing.T) {
	assert.Equal(t, Totals{}, Aggregate(nil))
	assert.Equal(t, Totals{}, Aggregate([]Contribution{}))
}

func TestAggregateSums(t *testing.T) {
	items := []Contribution{
		contrib(330, 3, 0, 0.5, 0, 0),
		contrib(120, 0, 1.5, 0, 0, 0),
		contrib(80, 0, 0, 0, 0, 1),
	}
	totals := Aggregate(items)
	assert.InDelta(t, 530, totals.Kcal, 1e-9)
	assert.InDelta(t, 3, totals.ProteinUnits, 1e-9)
	assert.InDelta(t, 1.5, totals.CarbUnits, 1e-9)
	assert.InDelta(t, 0.5, totals.FatUnits, 1e-9)
	assert.InDelta(t, 0, totals.VegUnits, 1e-9)
	assert.InDelta(t, 1, totals.FruitUnits, 1e-9)
}

func TestAggregateIdempotent(t *testing.T) {
	items := []Contribution{
		contrib(101.3, 0.7, 0.31, 0.09, 0, 0),
		contrib(250.25, 1.1, 0, 0, 0, 0),
	}
	first := Aggregate(items)
	second := Aggregate(items)
	assert.Equal(t, first, second)
}

func TestSummarizePartitionInvariant(t *testing.T) {
	entries := []Entry{
		{Meal: MealBreakfast, Contribution: contrib(330, 3, 0, 0.5, 0, 0)},
		{Meal: MealBreakfast, Contribution: contrib(80, 0, 0, 0, 0, 1)},
		{Meal: MealLunch, Contribution: contrib(450, 2, 2, 1, 1, 0)},
		{Meal: MealSnack, Contribution: contrib(95.5, 0, 0.5, 0.25, 0, 0)},
		{Meal: MealDinner, Contribution: contrib(610, 3, 2, 1.5, 2, 0)},
	}
	summary := Summarize(entries)

	// Day total equals the sum over meal totals equals the sum over
	// items, however the items are partitioned.
	var overMeals Totals
	for _, m := range summary.Meals {
		overMeals = overMeals.Plus(m.Totals)
	}
	assert.Equal(t, summary.Day, overMeals)

	var flat []Contribution
	for _, e := range entries {
		flat = append(flat, e.Contribution)
	}
	overItems := Aggregate(flat)
	assert.InDelta(t, overItems.Kcal, summary.Day.Kcal, 1e-9)
	assert.InDelta(t, overItems.ProteinUnits, summary.Day.ProteinUnits, 1e-9)
	assert.InDelta(t, overItems.CarbUnits, summary.Day.CarbUnits, 1e-9)
	assert.InDelta(t, overItems.FatUnits, summary.Day.FatUnits, 1e-9)
	assert.InDelta(t, overItems.VegUnits, summary.Day.VegUnits, 1e-9)
	assert.InDelta(t, overItems.FruitUnits, summary.Day.FruitUnits, 1e-9)
}

func TestSummarizeMealOrderAndCounts(t *testing.T) {
	entries := []Entry{
		{Meal: MealLunch, Contribution: contrib(450, 2, 2, 1, 1, 0)},
		{Meal: MealBreakfast, Contribution: contrib(330, 3, 0, 0.5, 0, 0)},
		{Meal: MealLunch, Contribution: contrib(120, 0, 1.5, 0, 0, 0)},
	}
	summary := Summarize(entries)

	// Meals keep first-appearance order so repeated summaries of the
	// same snapshot are identical.
	assert.Len(t, summary.Meals, 2)
	assert.Equal(t, MealLunch, summary.Meals[0].Meal)
	assert.Equal(t, 2, summary.Meals[0].Items)
	assert.Equal(t, MealBreakfast, summary.Meals[1].Meal)
	assert.Equal(t, 1, summary.Meals[1].Items)
}

func TestSummarizeEmptyDay(t *testing.T) {
	summary := Summarize(nil)
	assert.Empty(t, summary.Meals)
	assert.Equal(t, Totals{}, summary.Day)
}
