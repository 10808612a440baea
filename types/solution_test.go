package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolution(t *testing.T) {
	solution := NewSolution([]Pair{
		{Giver: "Shane", Receiver: "John"},
		{Giver: "John", Receiver: "Sean"},
		{Giver: "Sean", Receiver: "Shane"},
	})

	t.Run("pairs sorted by giver", func(t *testing.T) {
		pairs := solution.Pairs()
		require.Equal(t, []Pair{
			{Giver: "John", Receiver: "Sean"},
			{Giver: "Sean", Receiver: "Shane"},
			{Giver: "Shane", Receiver: "John"},
		}, pairs)
	})

	t.Run("receiver lookup", func(t *testing.T) {
		receiver, ok := solution.ReceiverOf("John")
		require.True(t, ok)
		require.Equal(t, "Sean", receiver)

		_, ok = solution.ReceiverOf("Keith")
		require.False(t, ok)
	})

	t.Run("giver lookup", func(t *testing.T) {
		giver, ok := solution.GiverOf("Sean")
		require.True(t, ok)
		require.Equal(t, "John", giver)

		_, ok = solution.GiverOf("Keith")
		require.False(t, ok)
	})

	t.Run("length matches roster", func(t *testing.T) {
		require.Equal(t, 3, solution.Len())
	})

	t.Run("mutating the returned slice does not affect the solution", func(t *testing.T) {
		pairs := solution.Pairs()
		pairs[0].Receiver = "Keith"

		receiver, ok := solution.ReceiverOf("John")
		require.True(t, ok)
		require.Equal(t, "Sean", receiver)
	})

	t.Run("string rendering", func(t *testing.T) {
		require.Equal(t, "John -> Sean\nSean -> Shane\nShane -> John", solution.String())
	})
}

func TestPair(t *testing.T) {
	p := Pair{Giver: "John", Receiver: "Sean"}

	require.Equal(t, Pair{Giver: "Sean", Receiver: "John"}, p.Reverse())
	require.False(t, p.IsSelf())
	require.True(t, Pair{Giver: "John", Receiver: "John"}.IsSelf())
	require.Equal(t, "John -> Sean", p.String())
}

func TestPlanLookup(t *testing.T) {
	plan := Plan{People: []Person{
		{Name: "John", Email: "john@email.com"},
		{Name: "Sean", Email: "sean@email.com"},
	}}

	person, ok := plan.Lookup("Sean")
	require.True(t, ok)
	require.Equal(t, "sean@email.com", person.Email)

	_, ok = plan.Lookup("Keith")
	require.False(t, ok)

	require.Equal(t, []string{"John", "Sean"}, plan.Names())
}
