package eval

// Gender can be one of:
//   - male
//   - female
//   - other
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) String() string {
	return string(g)
}

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

// FitnessAim can be one of:
//   - lose_fat
//   - gain_muscle
//   - maintain
type FitnessAim string

const (
	AimLoseFat    FitnessAim = "lose_fat"
	AimGainMuscle FitnessAim = "gain_muscle"
	AimMaintain   FitnessAim = "maintain"
)

func (a FitnessAim) String() string {
	return string(a)
}

func (a FitnessAim) IsValid() bool {
	switch a {
	case AimLoseFat, AimGainMuscle, AimMaintain:
		return true
	default:
		return false
	}
}

// UserProfile is the input of every evaluation. The engine reads it and
// nothing else; it is never mutated. The engine performs no validation
// on it either - callers validate before invoking (see plans.Handler).
type UserProfile struct {
	WeightKg   float64    `json:"weightKg"`
	HeightCm   float64    `json:"heightCm"`
	Age        int        `json:"age"`
	Gender     Gender     `json:"gender"`
	FitnessAim FitnessAim `json:"fitnessAim"`

	// current one-rep lift values in kilos, 0 when unknown
	BenchPressKg    float64 `json:"benchPressKg,omitempty"`
	SquatKg         float64 `json:"squatKg,omitempty"`
	DeadliftKg      float64 `json:"deadliftKg,omitempty"`
	OverheadPressKg float64 `json:"overheadPressKg,omitempty"`
}
