// Package nutrition converts food measurements into macro-category
// portions and aggregates them into meal and day totals. Everything in
// this package is a pure function over its inputs; persistence and
// transport live elsewhere.
package nutrition

import "fmt"

// Category is the macro category a food belongs to.
type Category string

const (
	CategoryProtein    Category = "protein"
	CategoryCarb       Category = "carb"
	CategoryFat        Category = "fat"
	CategoryVegetable  Category = "vegetable"
	CategoryFruit      Category = "fruit"
	CategorySpread     Category = "spread"
	CategoryGrocery    Category = "grocery"
	CategoryRestaurant Category = "restaurant"
	CategoryAlcohol    Category = "alcohol"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryProtein, CategoryCarb, CategoryFat, CategoryVegetable,
		CategoryFruit, CategorySpread, CategoryGrocery, CategoryRestaurant,
		CategoryAlcohol:
		return true
	default:
		return false
	}
}

// UsesDirectUnits reports whether foods in this category are logged in
// user-facing units directly (one piece of fruit, one drink) instead of
// through the gram/cup/tablespoon/item measurement system.
func (c Category) UsesDirectUnits() bool {
	switch c {
	case CategoryVegetable, CategoryFruit, CategoryRestaurant,
		CategoryAlcohol, CategoryGrocery:
		return true
	default:
		return false
	}
}

// ParseCategory validates a wire string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("unknown food category %q", s)
	}
	return c, nil
}

// MealType is one of the meal slots a logged item is filed under.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealSnack     MealType = "snack"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

func (m MealType) String() string {
	return string(m)
}

func (m MealType) IsValid() bool {
	switch m {
	case MealBreakfast, MealSnack, MealLunch, MealDinner:
		return true
	default:
		return false
	}
}

func ParseMealType(s string) (MealType, error) {
	m := MealType(s)
	if !m.IsValid() {
		return "", fmt.Errorf("unknown meal type %q", s)
	}
	return m, nil
}

// MeasurementMethod is the physical basis a quantity is entered in.
type MeasurementMethod string

const (
	MethodGrams       MeasurementMethod = "grams"
	MethodCups        MeasurementMethod = "cups"
	MethodTablespoons MeasurementMethod = "tablespoons"
	MethodItems       MeasurementMethod = "items"
	// MethodDirect means the quantity already is a number of portions
	// (vegetable/fruit pieces, restaurant servings, drinks).
	MethodDirect MeasurementMethod = "direct"
)

func (m MeasurementMethod) String() string {
	return string(m)
}

func (m MeasurementMethod) IsValid() bool {
	switch m {
	case MethodGrams, MethodCups, MethodTablespoons, MethodItems, MethodDirect:
		return true
	default:
		return false
	}
}

func ParseMeasurementMethod(s string) (MeasurementMethod, error) {
	m := MeasurementMethod(s)
	if !m.IsValid() {
		return "", fmt.Errorf("unknown measurement method %q", s)
	}
	return m, nil
}

// Food is the engine-side view of a catalog food record: per-portion
// macro rates plus the optional measurement encodings. Each encoding,
// when present, states how many grams (or items) make up one portion
// and must be strictly positive; nil means the method is unavailable.
type Food struct {
	Category     Category
	KcalPerUnit  float64
	ProteinUnits float64
	CarbUnits    float64
	FatUnits     float64
	VegUnits     float64
	FruitUnits   float64

	GramsPerItem *float64
	GramsPerCup  *float64
	GramsPerTbsp *float64
	ItemsPerUnit *float64
}

// encoding returns the per-portion value for an encoding-keyed method,
// or 0 when the food does not define it.
func (f Food) encoding(m MeasurementMethod) float64 {
	var v *float64
	switch m {
	case MethodGrams:
		v = f.GramsPerItem
	case MethodCups:
		v = f.GramsPerCup
	case MethodTablespoons:
		v = f.GramsPerTbsp
	case MethodItems:
		v = f.ItemsPerUnit
	}
	if v == nil {
		return 0
	}
	return *v
}
