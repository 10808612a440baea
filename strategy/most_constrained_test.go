package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMostConstrained_OrderGivers(t *testing.T) {
	s := NewMostConstrained()

	t.Run("orders by ascending degree", func(t *testing.T) {
		degrees := []int{5, 1, 3, 2, 4}

		order := s.OrderGivers(degrees, rng(1))

		requirePermutation(t, len(degrees), order)
		for i := 1; i < len(order); i++ {
			require.LessOrEqual(t, degrees[order[i-1]], degrees[order[i]])
		}
	})

	t.Run("ties broken randomly but deterministically per stream", func(t *testing.T) {
		degrees := []int{2, 2, 2, 2, 2, 2}

		require.Equal(t, s.OrderGivers(degrees, rng(3)), s.OrderGivers(degrees, rng(3)))

		varied := false
		base := s.OrderGivers(degrees, rng(0))
		for seed := uint64(1); seed < 6; seed++ {
			if !equalInts(base, s.OrderGivers(degrees, rng(seed))) {
				varied = true
				break
			}
		}
		require.True(t, varied)
	})

	t.Run("handles empty input", func(t *testing.T) {
		require.Empty(t, s.OrderGivers(nil, rng(1)))
	})
}

func TestMostConstrained_Name(t *testing.T) {
	require.Equal(t, "most_constrained", NewMostConstrained().Name())
}
