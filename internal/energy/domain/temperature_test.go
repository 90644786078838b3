package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeProfile(t *testing.T) {
	p := SynthesizeProfile(HomeProfile{BuildingType: Loft})

	assert.Equal(t, []float64{72, 74, 78, 80, 82, 79, 75}, p.Current)
	assert.Equal(t, []string{"6AM", "9AM", "12PM", "3PM", "6PM", "9PM", "12AM"}, p.Labels)
	require.Len(t, p.Optimized, len(p.Current))
	for i := range p.Current {
		assert.Equal(t, p.Current[i]-2, p.Optimized[i])
	}
}

func TestSynthesizeProfileReturnsFreshSlices(t *testing.T) {
	first := SynthesizeProfile(HomeProfile{})
	first.Current[0] = 0
	first.Labels[0] = "midnight"

	second := SynthesizeProfile(HomeProfile{})
	assert.Equal(t, 72.0, second.Current[0])
	assert.Equal(t, "6AM", second.Labels[0])
}
