package nutrition

import "math"

// Contribution is what one logged item adds to the day: the servings
// multiplier and every macro rate scaled by it. A Contribution is
// immutable; editing a quantity means converting again from the food
// record, never patching individual fields.
type Contribution struct {
	Quantity     float64           `json:"quantity"`
	Method       MeasurementMethod `json:"measurement_method"`
	Servings     float64           `json:"servings"`
	Kcal         float64           `json:"kcal"`
	ProteinUnits float64           `json:"protein_units"`
	CarbUnits    float64           `json:"carb_units"`
	FatUnits     float64           `json:"fat_units"`
	VegUnits     float64           `json:"veg_units"`
	FruitUnits   float64           `json:"fruit_units"`
}

// Convert turns a user-entered quantity into a Contribution using the
// chosen measurement method. Encoding-keyed methods divide the
// quantity by the food's per-portion value; the direct method treats
// the quantity as a portion count as-is. Scaling is linear in every
// field, so doubling the quantity doubles each macro, and values keep
// full float precision — rounding belongs to presentation.
func Convert(f Food, method MeasurementMethod, quantity float64) (Contribution, error) {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) || quantity <= 0 {
		return Contribution{}, ErrInvalidQuantity
	}

	var servings float64
	switch method {
	case MethodDirect:
		if !f.Category.UsesDirectUnits() {
			return Contribution{}, ErrNoMeasurement
		}
		servings = quantity
	case MethodGrams, MethodCups, MethodTablespoons, MethodItems:
		perPortion := f.encoding(method)
		if perPortion <= 0 {
			return Contribution{}, ErrNoMeasurement
		}
		servings = quantity / perPortion
	default:
		return Contribution{}, ErrNoMeasurement
	}

	return Contribution{
		Quantity:     quantity,
		Method:       method,
		Servings:     servings,
		Kcal:         f.KcalPerUnit * servings,
		ProteinUnits: f.ProteinUnits * servings,
		CarbUnits:    f.CarbUnits * servings,
		FatUnits:     f.FatUnits * servings,
		VegUnits:     f.VegUnits * servings,
		FruitUnits:   f.FruitUnits * servings,
	}, nil
}
