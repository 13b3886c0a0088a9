package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	testCases := []struct {
		input    float64
		expected float64
	}{
		{100, 100.00},
		{33.333, 33.33},
		{33.336, 33.34},
		{0.006, 0.01},
		{0, 0},
		{12.5, 12.50},
		{-1.006, -1.01},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Round2(tc.input))
	}
}
