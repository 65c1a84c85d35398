package anthro

// Gender selects the constant term in gendered regressions.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// Profile carries the anthropometric inputs as they come from the
// profile store, where every field is optional.
type Profile struct {
	Gender   *Gender
	Age      *int
	HeightCm *float64
	WeightKg *float64
}

// RMR estimates resting metabolic rate in kcal/day via Mifflin-St
// Jeor. All four profile fields are required; a missing one yields
// ErrIncompleteProfile, never a zero estimate. A height below 50 is
// assumed to be meters entered by mistake and is converted to
// centimeters before use.
func RMR(p Profile) (float64, error) {
	if p.Gender == nil || p.Age == nil || p.HeightCm == nil || p.WeightKg == nil {
		return 0, ErrIncompleteProfile
	}
	if !p.Gender.IsValid() {
		return 0, ErrIncompleteProfile
	}

	height := *p.HeightCm
	if height < 50 {
		height *= 100
	}

	rmr := 10**p.WeightKg + 6.25*height - 5*float64(*p.Age)
	if *p.Gender == GenderMale {
		rmr += 5
	} else {
		rmr -= 161
	}
	return rmr, nil
}
