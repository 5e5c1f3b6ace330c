package eval_test

import (
	"testing"

	"github.com/enclave-health/fitplan/internal/eval"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomProfile(aim eval.FitnessAim) eval.UserProfile {
	return eval.UserProfile{
		WeightKg:        gofakeit.Float64Range(45, 150),
		HeightCm:        gofakeit.Float64Range(140, 210),
		Age:             gofakeit.Number(18, 80),
		Gender:          eval.Gender(gofakeit.RandomString([]string{"male", "female", "other"})),
		FitnessAim:      aim,
		BenchPressKg:    gofakeit.Float64Range(0, 180),
		SquatKg:         gofakeit.Float64Range(0, 250),
		DeadliftKg:      gofakeit.Float64Range(0, 300),
		OverheadPressKg: gofakeit.Float64Range(0, 100),
	}
}

func TestSelectProgram_BranchesOnAimOnly(t *testing.T) {
	testCases := []struct {
		aim         eval.FitnessAim
		programType eval.ProgramType
	}{
		{aim: eval.AimGainMuscle, programType: eval.ProgramHypertrophy},
		{aim: eval.AimLoseFat, programType: eval.ProgramFatLoss},
		{aim: eval.AimMaintain, programType: eval.ProgramStrength},
		// any unknown aim gets the strength template too
		{aim: eval.FitnessAim("whatever"), programType: eval.ProgramStrength},
	}

	for _, tc := range testCases {
		t.Run(string(tc.aim), func(t *testing.T) {
			reference := eval.SelectProgram(eval.UserProfile{FitnessAim: tc.aim})
			assert.Equal(t, tc.programType, reference.Type)

			// no other profile field may influence the selection
			for i := 0; i < 20; i++ {
				program := eval.SelectProgram(randomProfile(tc.aim))
				assert.Equal(t, reference, program)
			}
		})
	}
}

func TestSelectProgram_TemplateShape(t *testing.T) {
	for _, aim := range []eval.FitnessAim{eval.AimLoseFat, eval.AimGainMuscle, eval.AimMaintain} {
		program := eval.SelectProgram(eval.UserProfile{FitnessAim: aim})

		assert.NotEmpty(t, program.Name)
		assert.Positive(t, program.DurationWeeks)
		require.NotEmpty(t, program.Days)
		assert.Equal(t, program.DaysPerWeek, len(program.Days))

		for _, day := range program.Days {
			assert.NotEmpty(t, day.Name)
			require.NotEmpty(t, day.Exercises)
			for _, exercise := range day.Exercises {
				assert.NotEmpty(t, exercise.Name)
				assert.Positive(t, exercise.Sets)
				assert.NotEmpty(t, exercise.Reps)
			}
		}
	}
}

func TestSelectProgram_StrengthLevelNeverGatesSelection(t *testing.T) {
	// an all-advanced lifter and a lifter with no lifts set get the exact
	// same program for the same aim
	strong := eval.UserProfile{
		WeightKg: 80, Gender: eval.GenderMale, FitnessAim: eval.AimMaintain,
		BenchPressKg: 130, SquatKg: 170, DeadliftKg: 210,
	}
	fresh := eval.UserProfile{
		WeightKg: 80, Gender: eval.GenderMale, FitnessAim: eval.AimMaintain,
	}

	assert.Equal(t, eval.SelectProgram(strong), eval.SelectProgram(fresh))
}
