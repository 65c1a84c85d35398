// Package anthro estimates body metrics from profile and caliper
// measurements: BMI, resting metabolic rate (Mifflin-St Jeor), body
// density (Durnin-Womersley), body-fat percentage (Siri) and the
// fat/lean mass split. All functions are pure and stateless.
package anthro

// BMIClassification is the WHO weight band a BMI value falls in.
type BMIClassification string

const (
	BMIUnderweight BMIClassification = "underweight"
	BMINormal      BMIClassification = "normal"
	BMIOverweight  BMIClassification = "overweight"
	BMIObese1      BMIClassification = "obese class 1"
	BMIObese2      BMIClassification = "obese class 2"
	BMIObese3      BMIClassification = "obese class 3"
)

// BMI computes body mass index from weight in kilograms and height in
// centimeters. Inputs outside plausible human ranges are rejected
// rather than producing a garbage index.
func BMI(weightKg, heightCm float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, ErrIncompleteProfile
	}
	if err := checkRange("height", heightCm, 50, 250); err != nil {
		return 0, err
	}
	if err := checkRange("weight", weightKg, 10, 400); err != nil {
		return 0, err
	}
	h := heightCm / 100.0
	return weightKg / (h * h), nil
}

// ClassifyBMI maps a BMI value to its band. Upper bounds are
// exclusive: 18.5 is normal, 25.0 is overweight.
func ClassifyBMI(bmi float64) BMIClassification {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25.0:
		return BMINormal
	case bmi < 30.0:
		return BMIOverweight
	case bmi < 35.0:
		return BMIObese1
	case bmi < 40.0:
		return BMIObese2
	default:
		return BMIObese3
	}
}
