package eval

import "math"

const mealsPerDay = 4

type NutritionPlan struct {
	TotalCalories int `json:"totalCalories"`

	ProteinGrams int `json:"proteinGrams"`
	CarbsGrams   int `json:"carbsGrams"`
	FatGrams     int `json:"fatGrams"`

	ProteinPercent int `json:"proteinPercent"`
	CarbsPercent   int `json:"carbsPercent"`
	FatPercent     int `json:"fatPercent"`

	MealsPerDay int `json:"mealsPerDay"`
}

type macroSplit struct {
	calorieFactor  float64
	proteinPercent int
	carbsPercent   int
	fatPercent     int
}

var aimMacroSplits = map[FitnessAim]macroSplit{
	AimLoseFat:    {calorieFactor: 0.80, proteinPercent: 40, carbsPercent: 30, fatPercent: 30},
	AimGainMuscle: {calorieFactor: 1.15, proteinPercent: 25, carbsPercent: 50, fatPercent: 25},
	AimMaintain:   {calorieFactor: 1.00, proteinPercent: 30, carbsPercent: 40, fatPercent: 30},
}

// ComputeNutrition derives the daily energy target and macro gram targets
// from the profile's TDEE and fitness aim. Unknown aims fall back to the
// maintain split. Each gram value is rounded independently (protein and
// carbs at 4 kcal/g, fat at 9 kcal/g), so the grams do not always
// reconstitute the calorie target exactly - that is expected.
func ComputeNutrition(profile UserProfile) NutritionPlan {
	split, ok := aimMacroSplits[profile.FitnessAim]
	if !ok {
		split = aimMacroSplits[AimMaintain]
	}

	totalCalories := math.Round(TDEE(profile) * split.calorieFactor)

	return NutritionPlan{
		TotalCalories:  int(totalCalories),
		ProteinGrams:   gramsFor(totalCalories, split.proteinPercent, 4),
		CarbsGrams:     gramsFor(totalCalories, split.carbsPercent, 4),
		FatGrams:       gramsFor(totalCalories, split.fatPercent, 9),
		ProteinPercent: split.proteinPercent,
		CarbsPercent:   split.carbsPercent,
		FatPercent:     split.fatPercent,
		MealsPerDay:    mealsPerDay,
	}
}

func gramsFor(totalCalories float64, percent int, kcalPerGram float64) int {
	return int(math.Round(totalCalories * float64(percent) / 100 / kcalPerGram))
}
