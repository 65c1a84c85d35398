package nutrition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleFood() Food {
	return Food{
		Category:     CategoryProtein,
		KcalPerUnit:  110,
		ProteinUnits: 1,
		CarbUnits:    0.5,
		FatUnits:     0.2,
		GramsPerItem: floatPtr(50),
		GramsPerCup:  floatPtr(140),
	}
}

func TestConvertGrams(t *testing.T) {
	// 150 g of a 50 g-per-portion food is exactly three servings.
	c, err := Convert(sampleFood(), MethodGrams, 150)
	assert.NoError(t, err)
	assert.Equal(t, 3.0, c.Servings)
	assert.Equal(t, 150.0, c.Quantity)
	assert.Equal(t, MethodGrams, c.Method)
	assert.Equal(t, 330.0, c.Kcal)
	assert.Equal(t, 3.0, c.ProteinUnits)
	assert.Equal(t, 1.5, c.CarbUnits)
	assert.InDelta(t, 0.6, c.FatUnits, 1e-12)
	assert.Equal(t, 0.0, c.VegUnits)
	assert.Equal(t, 0.0, c.FruitUnits)
}

func TestConvertDirect(t *testing.T) {
	apple := Food{Category: CategoryFruit, KcalPerUnit: 80, FruitUnits: 1}
	c, err := Convert(apple, MethodDirect, 2)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, c.Servings)
	assert.Equal(t, 160.0, c.Kcal)
	assert.Equal(t, 2.0, c.FruitUnits)
}

func TestConvertLinearity(t *testing.T) {
	// contribution(q2) == (q2/q1) * contribution(q1) for every field,
	// including zero-valued rates.
	food := sampleFood()
	q1, q2 := 35.0, 262.5
	c1, err := Convert(food, MethodGrams, q1)
	assert.NoError(t, err)
	c2, err := Convert(food, MethodGrams, q2)
	assert.NoError(t, err)

	k := q2 / q1
	assert.InDelta(t, k*c1.Kcal, c2.Kcal, 1e-9)
	assert.InDelta(t, k*c1.ProteinUnits, c2.ProteinUnits, 1e-9)
	assert.InDelta(t, k*c1.CarbUnits, c2.CarbUnits, 1e-9)
	assert.InDelta(t, k*c1.FatUnits, c2.FatUnits, 1e-9)
	assert.Equal(t, 0.0, c2.VegUnits)
	assert.Equal(t, 0.0, c2.FruitUnits)
}

func TestConvertInvalidQuantity(t *testing.T) {
	food := sampleFood()
	for _, q := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := Convert(food, MethodGrams, q)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}
}

func TestConvertUnavailableMethod(t *testing.T) {
	food := sampleFood()

	// No tablespoon encoding on this record.
	_, err := Convert(food, MethodTablespoons, 2)
	assert.ErrorIs(t, err, ErrNoMeasurement)

	// Direct is reserved for direct-unit categories.
	_, err = Convert(food, MethodDirect, 2)
	assert.ErrorIs(t, err, ErrNoMeasurement)

	_, err = Convert(food, MeasurementMethod("ounces"), 2)
	assert.ErrorIs(t, err, ErrNoMeasurement)
}

func TestConvertKeepsFullPrecision(t *testing.T) {
	food := Food{Category: CategoryCarb, KcalPerUnit: 100, CarbUnits: 1, GramsPerItem: floatPtr(30)}
	c, err := Convert(food, MethodGrams, 10)
	assert.NoError(t, err)
	// 10/30 is not representable in a short decimal; no rounding may
	// have been applied inside the engine.
	assert.Equal(t, 10.0/30.0, c.Servings)
	assert.Equal(t, 100*(10.0/30.0), c.Kcal)
}
