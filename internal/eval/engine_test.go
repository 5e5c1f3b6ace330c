package eval_test

import (
	"testing"

	"github.com/enclave-health/fitplan/internal/eval"

	"github.com/stretchr/testify/assert"
)

func TestBMR_Male(t *testing.T) {
	profile := eval.UserProfile{
		WeightKg: 80,
		HeightCm: 180,
		Age:      30,
		Gender:   eval.GenderMale,
	}
	// 10*80 + 6.25*180 - 5*30 + 5
	assert.Equal(t, float64(1780), eval.BMR(profile))
}

func TestBMR_FemaleAndOther(t *testing.T) {
	profile := eval.UserProfile{
		WeightKg: 60,
		HeightCm: 165,
		Age:      25,
		Gender:   eval.GenderFemale,
	}
	// 10*60 + 6.25*165 - 5*25 - 161
	assert.Equal(t, float64(1345.25), eval.BMR(profile))

	profile.Gender = eval.GenderOther
	assert.Equal(t, float64(1345.25), eval.BMR(profile),
		"gender other uses the female constant")
}

func TestBMR_NoValidation(t *testing.T) {
	// the engine does not validate - degenerate input produces a
	// degenerate number, never an error or a clamped value
	profile := eval.UserProfile{
		WeightKg: -10,
		HeightCm: 0,
		Age:      200,
		Gender:   eval.GenderMale,
	}
	assert.Equal(t, float64(-10*10-5*200+5), eval.BMR(profile))
}

func TestTDEE(t *testing.T) {
	profile := eval.UserProfile{
		WeightKg: 80,
		HeightCm: 180,
		Age:      30,
		Gender:   eval.GenderMale,
	}
	assert.Equal(t, float64(2759), eval.TDEE(profile))
}

func TestEstimateOneRepMax(t *testing.T) {
	// single rep returns the weight unchanged
	assert.Equal(t, float64(100), eval.EstimateOneRepMax(100, 1))

	// Epley: 100 * (1 + 10/30)
	assert.InDelta(t, 133.3333, eval.EstimateOneRepMax(100, 10), 0.0001)

	// reps <= 0 is not guarded, the raw formula result comes back
	assert.InDelta(t, 100, eval.EstimateOneRepMax(100, 0), 0.0001)
	assert.InDelta(t, 100*(1-5.0/30), eval.EstimateOneRepMax(100, -5), 0.0001)
}
