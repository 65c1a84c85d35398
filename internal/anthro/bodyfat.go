package anthro

import "math"

// SkinfoldSet is the four-site caliper protocol used by
// Durnin-Womersley, each reading in millimeters.
type SkinfoldSet struct {
	Biceps      float64 `json:"biceps"`
	Triceps     float64 `json:"triceps"`
	Subscapular float64 `json:"subscapular"`
	Suprailiac  float64 `json:"suprailiac"`
}

// Sum returns the total of the four readings.
func (s SkinfoldSet) Sum() float64 {
	return s.Biceps + s.Triceps + s.Subscapular + s.Suprailiac
}

const (
	minSkinfoldMm = 1
	maxSkinfoldMm = 50
	minAgeYears   = 17
	maxAgeYears   = 100
	minDensity    = 1.0
	maxDensity    = 1.1
	minBodyFatPct = 3
	maxBodyFatPct = 50
)

// dwCoefficients holds the Durnin-Womersley regression pairs
// (intercept, slope) per gender and age bracket. Values are the
// published sum-of-four-skinfolds table.
type dwPair struct {
	intercept float64
	slope     float64
}

var dwCoefficients = map[Gender][5]dwPair{
	GenderMale: {
		{1.1620, 0.0630}, // 17-19
		{1.1631, 0.0632}, // 20-29
		{1.1422, 0.0544}, // 30-39
		{1.1620, 0.0700}, // 40-49
		{1.1715, 0.0779}, // 50+
	},
	GenderFemale: {
		{1.1549, 0.0678}, // 17-19
		{1.1599, 0.0717}, // 20-29
		{1.1423, 0.0632}, // 30-39
		{1.1333, 0.0612}, // 40-49
		{1.1339, 0.0645}, // 50+
	},
}

func dwBracket(age int) int {
	switch {
	case age < 20:
		return 0
	case age < 30:
		return 1
	case age < 40:
		return 2
	case age < 50:
		return 3
	default:
		return 4
	}
}

// BodyDensity computes body density (g/cm³) from the four skinfolds
// via the Durnin-Womersley regression for the subject's gender and
// age bracket: density = intercept - slope * log10(sum). Inputs and
// the resulting density are validated against the ranges the
// regression was fitted on.
func BodyDensity(gender Gender, age int, sf SkinfoldSet) (float64, error) {
	if !gender.IsValid() {
		return 0, ErrIncompleteProfile
	}
	if err := checkRange("age", float64(age), minAgeYears, maxAgeYears); err != nil {
		return 0, err
	}
	folds := []struct {
		name  string
		value float64
	}{
		{"biceps skinfold", sf.Biceps},
		{"triceps skinfold", sf.Triceps},
		{"subscapular skinfold", sf.Subscapular},
		{"suprailiac skinfold", sf.Suprailiac},
	}
	for _, f := range folds {
		if err := checkRange(f.name, f.value, minSkinfoldMm, maxSkinfoldMm); err != nil {
			return 0, err
		}
	}

	pair := dwCoefficients[gender][dwBracket(age)]
	density := pair.intercept - pair.slope*math.Log10(sf.Sum())

	if err := checkRange("body density", density, minDensity, maxDensity); err != nil {
		return 0, err
	}
	return density, nil
}

// BodyFatFromDensity converts body density to a body-fat percentage
// with the Siri equation. The result is bounds-checked, not clamped:
// a value outside [3, 50] percent is an error.
func BodyFatFromDensity(density float64) (float64, error) {
	if err := checkRange("body density", density, minDensity, maxDensity); err != nil {
		return 0, err
	}
	pct := (4.95/density - 4.50) * 100
	if err := checkRange("body fat percentage", pct, minBodyFatPct, maxBodyFatPct); err != nil {
		return 0, err
	}
	return pct, nil
}

// BodyFatSource says where the final percentage came from.
type BodyFatSource string

const (
	SourceManual     BodyFatSource = "manual"
	SourceCalculated BodyFatSource = "calculated"
)

// BodyFatResult is the resolved body-fat estimate. Density is only
// set when the percentage was derived from skinfolds.
type BodyFatResult struct {
	Percentage float64       `json:"body_fat_percentage"`
	Source     BodyFatSource `json:"source"`
	Density    *float64      `json:"body_density,omitempty"`
}

// EstimateBodyFat resolves the body-fat percentage for a subject. A
// manually entered percentage always wins over the skinfold-derived
// one; otherwise the Durnin-Womersley/Siri chain is computed.
func EstimateBodyFat(gender Gender, age int, sf SkinfoldSet, manualPct *float64) (BodyFatResult, error) {
	if manualPct != nil {
		return BodyFatResult{Percentage: *manualPct, Source: SourceManual}, nil
	}
	density, err := BodyDensity(gender, age, sf)
	if err != nil {
		return BodyFatResult{}, err
	}
	pct, err := BodyFatFromDensity(density)
	if err != nil {
		return BodyFatResult{}, err
	}
	return BodyFatResult{Percentage: pct, Source: SourceCalculated, Density: &density}, nil
}

// Composition splits body weight into fat mass and lean mass from a
// body-fat percentage.
func Composition(weightKg, fatPct float64) (fatMass, leanMass float64) {
	fatMass = weightKg * fatPct / 100
	leanMass = weightKg - fatMass
	return fatMass, leanMass
}
