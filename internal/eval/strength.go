package eval

// StrengthLevel can be one of:
//   - beginner
//   - novice
//   - intermediate
//   - advanced
type StrengthLevel string

const (
	StrengthBeginner     StrengthLevel = "beginner"
	StrengthNovice       StrengthLevel = "novice"
	StrengthIntermediate StrengthLevel = "intermediate"
	StrengthAdvanced     StrengthLevel = "advanced"
)

func (l StrengthLevel) String() string {
	return string(l)
}

// strengthLevelsAsc is the ordinal ranking of the levels, weakest first.
var strengthLevelsAsc = [4]StrengthLevel{
	StrengthBeginner,
	StrengthNovice,
	StrengthIntermediate,
	StrengthAdvanced,
}

var strengthLevelRank = map[StrengthLevel]int{
	StrengthBeginner:     0,
	StrengthNovice:       1,
	StrengthIntermediate: 2,
	StrengthAdvanced:     3,
}

type StrengthAssessment struct {
	Bench    StrengthLevel `json:"bench"`
	Squat    StrengthLevel `json:"squat"`
	Deadlift StrengthLevel `json:"deadlift"`
	Overall  StrengthLevel `json:"overall"`
}

type lift int

const (
	liftBench lift = iota
	liftSquat
	liftDeadlift
)

// body-weight ratio thresholds, ascending:
// beginner, novice, intermediate, advanced
var maleRatioThresholds = map[lift][4]float64{
	liftBench:    {0.50, 0.75, 1.00, 1.50},
	liftSquat:    {0.75, 1.00, 1.50, 2.00},
	liftDeadlift: {1.00, 1.25, 1.75, 2.50},
}

// shared by female and other
var femaleRatioThresholds = map[lift][4]float64{
	liftBench:    {0.25, 0.50, 0.75, 1.00},
	liftSquat:    {0.50, 0.75, 1.00, 1.50},
	liftDeadlift: {0.50, 1.00, 1.25, 1.75},
}

// AssessStrength classifies the bench, squat and deadlift one-rep values of
// the profile relative to its body weight. A lift left at 0 always lands on
// beginner, which drags the overall level down to beginner as well - the
// overall level is the weakest of the three. A body weight of 0 is not
// guarded: the ratios become ±Inf or NaN and every comparison resolves the
// lift to beginner.
func AssessStrength(profile UserProfile) StrengthAssessment {
	thresholds := maleRatioThresholds
	if profile.Gender != GenderMale {
		thresholds = femaleRatioThresholds
	}

	bench := levelForRatio(profile.BenchPressKg/profile.WeightKg, thresholds[liftBench])
	squat := levelForRatio(profile.SquatKg/profile.WeightKg, thresholds[liftSquat])
	deadlift := levelForRatio(profile.DeadliftKg/profile.WeightKg, thresholds[liftDeadlift])

	return StrengthAssessment{
		Bench:    bench,
		Squat:    squat,
		Deadlift: deadlift,
		Overall:  weakestOf(bench, squat, deadlift),
	}
}

func levelForRatio(ratio float64, thresholds [4]float64) StrengthLevel {
	level := StrengthBeginner
	for i, threshold := range thresholds {
		if ratio >= threshold {
			level = strengthLevelsAsc[i]
		}
	}
	return level
}

func weakestOf(levels ...StrengthLevel) StrengthLevel {
	weakest := levels[0]
	for _, level := range levels[1:] {
		if strengthLevelRank[level] < strengthLevelRank[weakest] {
			weakest = level
		}
	}
	return weakest
}
