package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shanecelis/secret-santa/types"
)

func planFixture() *types.Plan {
	return &types.Plan{
		People: []types.Person{
			{Name: "John", Email: "john@email.com"},
			{Name: "Sean", Email: "sean@email.com"},
			{Name: "Shane", Email: "shane@email.com"},
		},
		Whitelist:     []types.Pair{{Giver: "Sean", Receiver: "Shane"}},
		Blacklist:     []types.Pair{{Giver: "John", Receiver: "Sean"}},
		BlacklistSets: [][]string{{"John", "Sean"}},
		History: []types.HistoryRecord{
			{Year: 2024, ExcludePairs: true, Pairs: []types.Pair{{Giver: "John", Receiver: "Shane"}}},
		},
	}
}

func TestPlan_StableAcrossOrdering(t *testing.T) {
	a := planFixture()

	b := planFixture()
	b.People[0], b.People[2] = b.People[2], b.People[0]
	b.BlacklistSets = [][]string{{"Sean", "John"}}

	require.Equal(t, Plan(a, 0), Plan(b, 0))
}

func TestPlan_SensitiveToContent(t *testing.T) {
	a := planFixture()

	t.Run("different blacklist", func(t *testing.T) {
		b := planFixture()
		b.Blacklist = append(b.Blacklist, types.Pair{Giver: "Shane", Receiver: "John"})
		require.NotEqual(t, Plan(a, 0), Plan(b, 0))
	})

	t.Run("different history flag", func(t *testing.T) {
		b := planFixture()
		b.History[0].ExcludePairs = false
		require.NotEqual(t, Plan(a, 0), Plan(b, 0))
	})

	t.Run("different window", func(t *testing.T) {
		require.NotEqual(t, Plan(a, 0), Plan(a, 1))
	})
}

func TestAssignment(t *testing.T) {
	require.Equal(t, Assignment([]int{1, 2, 0}), Assignment([]int{1, 2, 0}))
	require.NotEqual(t, Assignment([]int{1, 2, 0}), Assignment([]int{2, 0, 1}))
}
