package nutrition

// GoalSet is a user's daily target per macro dimension. Targets are
// non-negative; 0 means no cap (used for veg/fruit, which have no
// upper target).
type GoalSet struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carb     float64 `json:"carb"`
	Fat      float64 `json:"fat"`
	Veg      float64 `json:"veg"`
	Fruit    float64 `json:"fruit"`
}

// GoalProgress is one macro dimension evaluated against its target.
type GoalProgress struct {
	Consumed  float64 `json:"consumed"`
	Target    float64 `json:"target"`
	Progress  float64 `json:"progress"`
	Remaining float64 `json:"remaining"`
	OverGoal  bool    `json:"over_goal"`
}

// GoalReport is a full day (or meal) evaluated against a GoalSet.
type GoalReport struct {
	Calories GoalProgress `json:"calories"`
	Protein  GoalProgress `json:"protein"`
	Carb     GoalProgress `json:"carb"`
	Fat      GoalProgress `json:"fat"`
	Veg      GoalProgress `json:"veg"`
	Fruit    GoalProgress `json:"fruit"`
}

// Progress is the clamped completion ratio for one dimension. An unset
// target (0) resolves to 0 by contract — there is nothing to fill, so
// no 0/0 special case reaches the caller.
func Progress(consumed, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := consumed / target
	if p > 1 {
		return 1
	}
	return p
}

func evaluateDimension(consumed, target float64) GoalProgress {
	return GoalProgress{
		Consumed:  consumed,
		Target:    target,
		Progress:  Progress(consumed, target),
		Remaining: target - consumed,
		OverGoal:  target > 0 && consumed > target,
	}
}

// Evaluate compares aggregated totals to a goal set, dimension by
// dimension.
func Evaluate(t Totals, g GoalSet) GoalReport {
	return GoalReport{
		Calories: evaluateDimension(t.Kcal, g.Calories),
		Protein:  evaluateDimension(t.ProteinUnits, g.Protein),
		Carb:     evaluateDimension(t.CarbUnits, g.Carb),
		Fat:      evaluateDimension(t.FatUnits, g.Fat),
		Veg:      evaluateDimension(t.VegUnits, g.Veg),
		Fruit:    evaluateDimension(t.FruitUnits, g.Fruit),
	}
}
