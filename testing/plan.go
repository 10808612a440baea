package testing

import (
	"strings"

	"github.com/shanecelis/secret-santa/types"
)

// PlanBuilder assembles a Plan fluently for tests.
type PlanBuilder struct {
	plan types.Plan
}

// NewPlan starts a builder with the given roster. Each person gets a
// synthetic lowercase email derived from their name.
func NewPlan(names ...string) *PlanBuilder {
	b := &PlanBuilder{}
	for _, name := range names {
		b.plan.People = append(b.plan.People, types.Person{
			Name:  name,
			Email: strings.ToLower(name) + "@email.com",
		})
	}

	return b
}

// Force adds a whitelist edge.
func (b *PlanBuilder) Force(giver, receiver string) *PlanBuilder {
	b.plan.Whitelist = append(b.plan.Whitelist, types.Pair{Giver: giver, Receiver: receiver})
	return b
}

// Forbid adds a blacklist edge.
func (b *PlanBuilder) Forbid(giver, receiver string) *PlanBuilder {
	b.plan.Blacklist = append(b.plan.Blacklist, types.Pair{Giver: giver, Receiver: receiver})
	return b
}

// Household adds a blacklist set.
func (b *PlanBuilder) Household(members ...string) *PlanBuilder {
	b.plan.BlacklistSets = append(b.plan.BlacklistSets, members)
	return b
}

// History adds a history record. Pairs are given as alternating
// giver/receiver names.
func (b *PlanBuilder) History(year int, excludePairs bool, giverReceiver ...string) *PlanBuilder {
	rec := types.HistoryRecord{Year: year, ExcludePairs: excludePairs}
	for i := 0; i+1 < len(giverReceiver); i += 2 {
		rec.Pairs = append(rec.Pairs, types.Pair{Giver: giverReceiver[i], Receiver: giverReceiver[i+1]})
	}
	b.plan.History = append(b.plan.History, rec)

	return b
}

// Build returns the assembled plan.
func (b *PlanBuilder) Build() *types.Plan {
	plan := b.plan
	return &plan
}
