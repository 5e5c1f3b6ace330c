package eval

import (
	"fmt"
	"math"
)

// PersonalizedPlan bundles everything the evaluation produces for a single
// profile. It is a value object, recomputed on demand and never stored by
// the engine itself.
type PersonalizedPlan struct {
	Profile         UserProfile        `json:"profile"`
	Strength        StrengthAssessment `json:"strength"`
	Program         WorkoutProgram     `json:"program"`
	Nutrition       NutritionPlan      `json:"nutrition"`
	Recommendations []string           `json:"recommendations"`
}

// NewPlan runs the whole evaluation: strength assessment, program
// selection, nutrition plan and the recommendation texts. Pure and
// deterministic - the same profile always yields a deep-equal plan.
func NewPlan(profile UserProfile) PersonalizedPlan {
	strength := AssessStrength(profile)
	program := SelectProgram(profile)
	nutrition := ComputeNutrition(profile)

	return PersonalizedPlan{
		Profile:         profile,
		Strength:        strength,
		Program:         program,
		Nutrition:       nutrition,
		Recommendations: recommendations(profile, strength, program, nutrition),
	}
}

func recommendations(
	profile UserProfile,
	strength StrengthAssessment,
	program WorkoutProgram,
	nutrition NutritionPlan,
) []string {
	return []string{
		fmt.Sprintf("Your overall strength level is %s.", strength.Overall),
		fmt.Sprintf("Your program is %q (%s), %d days per week for %d weeks.",
			program.Name, program.Type, program.DaysPerWeek, program.DurationWeeks),
		fmt.Sprintf("Your estimated daily energy expenditure is %d kcal.",
			int(math.Round(TDEE(profile)))),
		fmt.Sprintf("Aim for %dg protein, %dg carbs and %dg fat per day.",
			nutrition.ProteinGrams, nutrition.CarbsGrams, nutrition.FatGrams),
		"Spread your meals evenly across the day and do not skip breakfast.",
		"Sleep 7 to 9 hours per night, recovery is where the progress happens.",
		"Drink at least 2 liters of water per day, more on training days.",
		"Add weight only when all prescribed reps are clean, technique first.",
	}
}
