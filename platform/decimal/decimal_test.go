package decimal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{59.3978, 59.4},
		{50.2425, 50.2},
		{0.04, 0},
		{59.849999999999994, 59.8},
		{46.55, 46.5},
		{20.25, 20.2},
		{20.35, 20.4},
		{0.125, 0.1},
		{-3.25, -3.2},
		{100, 100},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Round(tc.in, 1), "Round(%v, 1)", tc.in)
	}
}

func TestRoundOtherPlaces(t *testing.T) {
	assert.Equal(t, 2.0, Round(2.5, 0))
	assert.Equal(t, 4.0, Round(3.5, 0))
	assert.Equal(t, 1.01, Round(1.005+1e-9, 2))
}

func TestRoundPassesThroughNonFinite(t *testing.T) {
	assert.True(t, math.IsInf(Round(math.Inf(1), 1), 1))
	assert.True(t, math.IsNaN(Round(math.NaN(), 1)))
}
