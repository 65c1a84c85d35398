package nutrition

// Totals is the aggregated macro sum over a set of contributions,
// scoped by the caller to a meal or a calendar day.
type Totals struct {
	Kcal         float64 `json:"kcal"`
	ProteinUnits float64 `json:"protein_units"`
	CarbUnits    float64 `json:"carb_units"`
	FatUnits     float64 `json:"fat_units"`
	VegUnits     float64 `json:"veg_units"`
	FruitUnits   float64 `json:"fruit_units"`
}

// Add returns t with c folded in.
func (t Totals) Add(c Contribution) Totals {
	t.Kcal += c.Kcal
	t.ProteinUnits += c.ProteinUnits
	t.CarbUnits += c.CarbUnits
	t.FatUnits += c.FatUnits
	t.VegUnits += c.VegUnits
	t.FruitUnits += c.FruitUnits
	return t
}

// Plus returns the field-wise sum of two totals.
func (t Totals) Plus(o Totals) Totals {
	t.Kcal += o.Kcal
	t.ProteinUnits += o.ProteinUnits
	t.CarbUnits += o.CarbUnits
	t.FatUnits += o.FatUnits
	t.VegUnits += o.VegUnits
	t.FruitUnits += o.FruitUnits
	return t
}

// Aggregate folds contributions into a total in slice order. Summation
// order is therefore deterministic: aggregating the same snapshot twice
// yields identical totals. An empty list is a valid zero day.
func Aggregate(items []Contribution) Totals {
	var t Totals
	for _, c := range items {
		t = t.Add(c)
	}
	return t
}

// Entry is a contribution filed under a meal slot, the unit the day
// summary is built from.
type Entry struct {
	Meal MealType
	Contribution
}

// MealTotal is the aggregated total for one meal slot.
type MealTotal struct {
	Meal   MealType `json:"meal"`
	Items  int      `json:"items"`
	Totals Totals   `json:"totals"`
}

// DaySummary holds the per-meal breakdown and the day total. The day
// total is the sum of the meal totals, which are each the sum of their
// items, so day == Σ meal == Σ item holds by construction.
type DaySummary struct {
	Meals []MealTotal `json:"meals"`
	Day   Totals      `json:"day"`
}

// Summarize groups entries by meal slot, preserving the order meals
// first appear in, and sums each group in entry order. Callers must
// pass a stable snapshot of the day's entries, not a live collection.
func Summarize(entries []Entry) DaySummary {
	var summary DaySummary
	index := make(map[MealType]int)
	for _, e := range entries {
		i, ok := index[e.Meal]
		if !ok {
			i = len(summary.Meals)
			index[e.Meal] = i
			summary.Meals = append(summary.Meals, MealTotal{Meal: e.Meal})
		}
		summary.Meals[i].Items++
		summary.Meals[i].Totals = summary.Meals[i].Totals.Add(e.Contribution)
	}
	for _, m := range summary.Meals {
		summary.Day = summary.Day.Plus(m.Totals)
	}
	return summary
}
