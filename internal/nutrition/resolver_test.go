package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestMethodsAvailability(t *testing.T) {
	tests := []struct {
		name     string
		food     Food
		expected []MeasurementMethod
	}{
		{
			name: "all four encodings present",
			food: Food{
				Category:     CategoryCarb,
				GramsPerItem: floatPtr(30),
				GramsPerCup:  floatPtr(120),
				GramsPerTbsp: floatPtr(8),
				ItemsPerUnit: floatPtr(2),
			},
			expected: []MeasurementMethod{MethodGrams, MethodCups, MethodTablespoons, MethodItems},
		},
		{
			name: "only grams",
			food: Food{
				Category:     CategoryProtein,
				GramsPerItem: floatPtr(50),
			},
			expected: []MeasurementMethod{MethodGrams},
		},
		{
			name: "zero encoding is not offered",
			food: Food{
				Category:     CategoryFat,
				GramsPerItem: floatPtr(0),
				GramsPerTbsp: floatPtr(14),
			},
			expected: []MeasurementMethod{MethodTablespoons},
		},
		{
			name:     "fruit without encodings falls back to direct",
			food:     Food{Category: CategoryFruit},
			expected: []MeasurementMethod{MethodDirect},
		},
		{
			name:     "protein without encodings offers nothing",
			food:     Food{Category: CategoryProtein},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Methods(tt.food)
			var methods []MeasurementMethod
			for _, o := range opts {
				methods = append(methods, o.Method)
			}
			assert.Equal(t, tt.expected, methods)
		})
	}
}

func TestHasMethod(t *testing.T) {
	food := Food{Category: CategoryProtein, GramsPerItem: floatPtr(50)}
	assert.True(t, HasMethod(food, MethodGrams))
	assert.False(t, HasMethod(food, MethodCups))
	assert.False(t, HasMethod(food, MethodDirect))

	fruit := Food{Category: CategoryFruit}
	assert.True(t, HasMethod(fruit, MethodDirect))
}

func TestServingDescription(t *testing.T) {
	tests := []struct {
		name     string
		food     Food
		expected string
	}{
		{
			name:     "singular encoding reads as one unit",
			food:     Food{Category: CategoryProtein, GramsPerItem: floatPtr(1)},
			expected: "One portion = one gram",
		},
		{
			name:     "plural encoding keeps the value",
			food:     Food{Category: CategoryCarb, GramsPerItem: floatPtr(30)},
			expected: "One portion = 30 grams",
		},
		{
			name: "multiple methods joined as equalities",
			food: Food{
				Category:     CategoryCarb,
				GramsPerItem: floatPtr(30),
				GramsPerCup:  floatPtr(0.25),
				ItemsPerUnit: floatPtr(1),
			},
			expected: "One portion = 30 grams = 0.25 cups = one item",
		},
		{
			name:     "direct food",
			food:     Food{Category: CategoryFruit},
			expected: "One portion = one serving",
		},
		{
			name:     "no measurement at all",
			food:     Food{Category: CategorySpread},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ServingDescription(tt.food))
		})
	}
}
