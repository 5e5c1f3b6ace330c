package eval

// ProgramType can be one of:
//   - strength
//   - hypertrophy
//   - fat_loss
type ProgramType string

const (
	ProgramStrength    ProgramType = "strength"
	ProgramHypertrophy ProgramType = "hypertrophy"
	ProgramFatLoss     ProgramType = "fat_loss"
)

func (pt ProgramType) String() string {
	return string(pt)
}

type ProgramExercise struct {
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        string `json:"reps"`
	RestSeconds int    `json:"restSeconds"`

	// WeightMultiplier is relative to the estimated one-rep max, 0 when
	// the exercise has no load prescription (body weight, cardio).
	WeightMultiplier float64 `json:"weightMultiplier,omitempty"`
	Note             string  `json:"note,omitempty"`
}

type WorkoutDay struct {
	Name      string            `json:"name"`
	Exercises []ProgramExercise `json:"exercises"`
}

type WorkoutProgram struct {
	Name          string       `json:"name"`
	Type          ProgramType  `json:"type"`
	DaysPerWeek   int          `json:"daysPerWeek"`
	DurationWeeks int          `json:"durationWeeks"`
	Days          []WorkoutDay `json:"days"`
}

// SelectProgram picks one of the three hand-authored templates, branching
// on the fitness aim only. The strength assessment deliberately plays no
// part here - it is computed for display and recommendations, never to
// gate program selection. Unknown aims get the strength template.
func SelectProgram(profile UserProfile) WorkoutProgram {
	switch profile.FitnessAim {
	case AimGainMuscle:
		return hypertrophyProgram
	case AimLoseFat:
		return fatLossProgram
	default:
		return strengthProgram
	}
}

var strengthProgram = WorkoutProgram{
	Name:          "Foundation Strength",
	Type:          ProgramStrength,
	DaysPerWeek:   3,
	DurationWeeks: 12,
	Days: []WorkoutDay{
		{
			Name: "Day 1 - Squat Focus",
			Exercises: []ProgramExercise{
				{Name: "Back Squat", Sets: 5, Reps: "5", RestSeconds: 180, WeightMultiplier: 0.80},
				{Name: "Bench Press", Sets: 5, Reps: "5", RestSeconds: 180, WeightMultiplier: 0.80},
				{Name: "Barbell Row", Sets: 3, Reps: "8", RestSeconds: 120, WeightMultiplier: 0.70},
				{Name: "Plank", Sets: 3, Reps: "45-60s", RestSeconds: 60},
			},
		},
		{
			Name: "Day 2 - Deadlift Focus",
			Exercises: []ProgramExercise{
				{Name: "Deadlift", Sets: 3, Reps: "5", RestSeconds: 240, WeightMultiplier: 0.85, Note: "keep the bar close, brace hard"},
				{Name: "Overhead Press", Sets: 5, Reps: "5", RestSeconds: 180, WeightMultiplier: 0.80},
				{Name: "Pull Up", Sets: 3, Reps: "6-8", RestSeconds: 120},
				{Name: "Hanging Leg Raise", Sets: 3, Reps: "10", RestSeconds: 60},
			},
		},
		{
			Name: "Day 3 - Bench Focus",
			Exercises: []ProgramExercise{
				{Name: "Bench Press", Sets: 5, Reps: "3", RestSeconds: 240, WeightMultiplier: 0.85},
				{Name: "Back Squat", Sets: 3, Reps: "8", RestSeconds: 180, WeightMultiplier: 0.70},
				{Name: "Barbell Row", Sets: 3, Reps: "8", RestSeconds: 120, WeightMultiplier: 0.70},
				{Name: "Dips", Sets: 3, Reps: "8-12", RestSeconds: 90},
			},
		},
	},
}

var hypertrophyProgram = WorkoutProgram{
	Name:          "Upper Lower Builder",
	Type:          ProgramHypertrophy,
	DaysPerWeek:   4,
	DurationWeeks: 8,
	Days: []WorkoutDay{
		{
			Name: "Upper A",
			Exercises: []ProgramExercise{
				{Name: "Bench Press", Sets: 4, Reps: "8-10", RestSeconds: 120, WeightMultiplier: 0.70},
				{Name: "Barbell Row", Sets: 4, Reps: "8-10", RestSeconds: 120, WeightMultiplier: 0.70},
				{Name: "Overhead Press", Sets: 3, Reps: "10-12", RestSeconds: 90, WeightMultiplier: 0.65},
				{Name: "Lat Pulldown", Sets: 3, Reps: "10-12", RestSeconds: 90},
				{Name: "Biceps Curl", Sets: 3, Reps: "12-15", RestSeconds: 60},
			},
		},
		{
			Name: "Lower A",
			Exercises: []ProgramExercise{
				{Name: "Back Squat", Sets: 4, Reps: "8-10", RestSeconds: 150, WeightMultiplier: 0.70},
				{Name: "Romanian Deadlift", Sets: 3, Reps: "10-12", RestSeconds: 120, WeightMultiplier: 0.60},
				{Name: "Leg Press", Sets: 3, Reps: "12-15", RestSeconds: 90},
				{Name: "Calf Raise", Sets: 4, Reps: "15", RestSeconds: 60},
			},
		},
		{
			Name: "Upper B",
			Exercises: []ProgramExercise{
				{Name: "Incline Dumbbell Press", Sets: 4, Reps: "10-12", RestSeconds: 90},
				{Name: "Pull Up", Sets: 4, Reps: "6-10", RestSeconds: 120, Note: "add weight once 4x10 is easy"},
				{Name: "Lateral Raise", Sets: 3, Reps: "12-15", RestSeconds: 60},
				{Name: "Seated Cable Row", Sets: 3, Reps: "10-12", RestSeconds: 90},
				{Name: "Triceps Pushdown", Sets: 3, Reps: "12-15", RestSeconds: 60},
			},
		},
		{
			Name: "Lower B",
			Exercises: []ProgramExercise{
				{Name: "Deadlift", Sets: 3, Reps: "6-8", RestSeconds: 180, WeightMultiplier: 0.75},
				{Name: "Front Squat", Sets: 3, Reps: "8-10", RestSeconds: 150, WeightMultiplier: 0.60},
				{Name: "Walking Lunge", Sets: 3, Reps: "10 per leg", RestSeconds: 90},
				{Name: "Hanging Leg Raise", Sets: 3, Reps: "12", RestSeconds: 60},
			},
		},
	},
}

var fatLossProgram = WorkoutProgram{
	Name:          "Full Body Burn Circuit",
	Type:          ProgramFatLoss,
	DaysPerWeek:   4,
	DurationWeeks: 8,
	Days: []WorkoutDay{
		{
			Name: "Circuit A",
			Exercises: []ProgramExercise{
				{Name: "Goblet Squat", Sets: 3, Reps: "15", RestSeconds: 45},
				{Name: "Push Up", Sets: 3, Reps: "12-15", RestSeconds: 45},
				{Name: "Kettlebell Swing", Sets: 3, Reps: "20", RestSeconds: 45},
				{Name: "Mountain Climber", Sets: 3, Reps: "30s", RestSeconds: 45},
				{Name: "Rowing Machine", Sets: 1, Reps: "10min", RestSeconds: 0, Note: "steady pace, finish strong"},
			},
		},
		{
			Name: "Circuit B",
			Exercises: []ProgramExercise{
				{Name: "Dumbbell Lunge", Sets: 3, Reps: "12 per leg", RestSeconds: 45},
				{Name: "Dumbbell Row", Sets: 3, Reps: "12-15", RestSeconds: 45},
				{Name: "Burpee", Sets: 3, Reps: "10", RestSeconds: 45},
				{Name: "Plank", Sets: 3, Reps: "45s", RestSeconds: 45},
				{Name: "Assault Bike", Sets: 1, Reps: "10min", RestSeconds: 0},
			},
		},
		{
			Name: "Circuit C",
			Exercises: []ProgramExercise{
				{Name: "Romanian Deadlift", Sets: 3, Reps: "12-15", RestSeconds: 45, WeightMultiplier: 0.50},
				{Name: "Overhead Press", Sets: 3, Reps: "12-15", RestSeconds: 45, WeightMultiplier: 0.50},
				{Name: "Box Jump", Sets: 3, Reps: "10", RestSeconds: 45},
				{Name: "Russian Twist", Sets: 3, Reps: "20", RestSeconds: 45},
				{Name: "Treadmill Intervals", Sets: 1, Reps: "12min", RestSeconds: 0, Note: "1min hard / 1min easy"},
			},
		},
		{
			Name: "Circuit D",
			Exercises: []ProgramExercise{
				{Name: "Step Up", Sets: 3, Reps: "12 per leg", RestSeconds: 45},
				{Name: "Incline Push Up", Sets: 3, Reps: "15", RestSeconds: 45},
				{Name: "Farmer Carry", Sets: 3, Reps: "40m", RestSeconds: 60},
				{Name: "Bicycle Crunch", Sets: 3, Reps: "20", RestSeconds: 45},
				{Name: "Jump Rope", Sets: 1, Reps: "8min", RestSeconds: 0},
			},
		},
	},
}
