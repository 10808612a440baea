package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := &ValidationError{
		Kind:   ConflictWhitelistBlacklist,
		Pair:   Pair{Giver: "Sean", Receiver: "Shane"},
		Detail: "pair Sean -> Shane appears in both whitelist and blacklist",
	}

	require.ErrorIs(t, err, ErrInvalidPlan)
	require.NotErrorIs(t, err, ErrInfeasible)
	require.Contains(t, err.Error(), ConflictWhitelistBlacklist)
	require.Contains(t, err.Error(), "Sean -> Shane")

	t.Run("survives wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("solve failed: %w", err)

		var vErr *ValidationError
		require.ErrorAs(t, wrapped, &vErr)
		require.Equal(t, ConflictWhitelistBlacklist, vErr.Kind)
		require.ErrorIs(t, wrapped, ErrInvalidPlan)
	})
}

func TestInfeasibleError(t *testing.T) {
	t.Run("with person detail", func(t *testing.T) {
		err := &InfeasibleError{
			Person:   "John",
			Category: CategoryHistory,
			Detail:   `person "John" has no legal receiver`,
		}

		require.ErrorIs(t, err, ErrInfeasible)
		require.Contains(t, err.Error(), `"John"`)
		require.Contains(t, err.Error(), CategoryHistory)
	})

	t.Run("without person detail", func(t *testing.T) {
		err := &InfeasibleError{Detail: "search exhausted"}

		require.ErrorIs(t, err, ErrInfeasible)
		require.NotContains(t, err.Error(), "person")
	})
}

func TestSearchLimitError(t *testing.T) {
	err := &SearchLimitError{Nodes: 5000}

	require.ErrorIs(t, err, ErrSearchLimit)
	require.NotErrorIs(t, err, ErrInfeasible)
	require.Contains(t, err.Error(), "5000")

	var lErr *SearchLimitError
	require.True(t, errors.As(err, &lErr))
	require.Equal(t, int64(5000), lErr.Nodes)
}
