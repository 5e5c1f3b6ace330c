package eval

// activityFactor is the fixed "moderately active" TDEE multiplier. The
// product never collected an activity level input, so this is not
// configurable.
const activityFactor = 1.55

// BMR estimates the basal metabolic rate in kcal/day via the
// Mifflin-St Jeor equation. Inputs are not validated: a non-positive
// weight, height or age produces a nonsensical number, never an error.
func BMR(profile UserProfile) float64 {
	base := 10*profile.WeightKg + 6.25*profile.HeightCm - 5*float64(profile.Age)
	if profile.Gender == GenderMale {
		return base + 5
	}
	return base - 161
}

// TDEE is the total daily energy expenditure in kcal/day.
func TDEE(profile UserProfile) float64 {
	return BMR(profile) * activityFactor
}

// EstimateOneRepMax extrapolates a one-rep max from a set of the given
// weight and reps, via the Epley formula. A single rep returns the weight
// unchanged. Zero or negative reps are not guarded.
func EstimateOneRepMax(weightKg float64, reps int) float64 {
	if reps == 1 {
		return weightKg
	}
	return weightKg * (1 + float64(reps)/30)
}
