package matchCreditController

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeMatchAmounts(t *testing.T) {
	testCases := []struct {
		name            string
		initialAmount   float64
		matchPercentage float64
		wantMatched     float64
		wantCredits     float64
	}{
		{"Full match", 100, 100, 100.00, 200.00},
		{"Half match", 50, 50, 25.00, 75.00},
		{"Quarter match", 80, 25, 20.00, 100.00},
		{"Over 100 percent", 10, 150, 15.00, 25.00},
		{"Fractional deposit", 33.33, 100, 33.33, 66.66},
		{"Rounded result", 10.01, 33, 3.30, 13.31},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			matched, credits := ComputeMatchAmounts(tc.initialAmount, tc.matchPercentage)
			assert.Equal(t, tc.wantMatched, matched)
			assert.Equal(t, tc.wantCredits, credits)
		})
	}
}

func TestResolveThreshold(t *testing.T) {
	t.Run("Store threshold wins when set", func(t *testing.T) {
		assert.Equal(t, 500.00, ResolveThreshold(500, 200))
	})

	t.Run("Unset threshold defaults to double the credits", func(t *testing.T) {
		assert.Equal(t, 400.00, ResolveThreshold(0, 200))
	})

	t.Run("Negative setting treated as unset", func(t *testing.T) {
		assert.Equal(t, 150.00, ResolveThreshold(-1, 75))
	})
}
