package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMeanRating(t *testing.T) {
	require.Zero(t, meanRating(nil))
	require.Zero(t, meanRating([]int{}))

	require.Equal(t, 5.0, meanRating([]int{5}))
	require.Equal(t, 3.0, meanRating([]int{1, 5}))
	require.InDelta(t, 3.6666, meanRating([]int{3, 4, 4}), 0.001)

	// Mean of N ratings is exact for equal values regardless of N.
	many := make([]int, 1000)
	for i := range many {
		many[i] = 4
	}
	require.Equal(t, 4.0, meanRating(many))
}
