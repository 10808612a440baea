// Package fingerprint produces stable 64-bit identities for plans and
// assignments using xxh3. Fingerprints key the solver's compiled-ruleset
// cache and deduplicate solutions gathered during sampling.
package fingerprint

import (
	"encoding/binary"
	"sort"

	"github.com/zeebo/xxh3"

	"github.com/shanecelis/secret-santa/types"
)

// Plan returns a canonical fingerprint of the plan under the given history
// window. The serialization sorts every collection, so two plans that differ
// only in input ordering hash identically.
func Plan(plan *types.Plan, historyWindow int) uint64 {
	buf := make([]byte, 0, 256)
	buf = binary.AppendVarint(buf, int64(historyWindow))

	buf = appendStrings(buf, sortedCopy(plan.Names()))
	buf = appendPairs(buf, plan.Whitelist)
	buf = appendPairs(buf, plan.Blacklist)

	sets := make([]string, 0, len(plan.BlacklistSets))
	for _, set := range plan.BlacklistSets {
		members := sortedCopy(set)
		joined := ""
		for _, m := range members {
			joined += m + "\x00"
		}
		sets = append(sets, joined)
	}
	buf = appendStrings(buf, sortedCopy(sets))

	records := make([]types.HistoryRecord, len(plan.History))
	copy(records, plan.History)
	sort.Slice(records, func(i, j int) bool { return records[i].Year < records[j].Year })
	for _, rec := range records {
		buf = binary.AppendVarint(buf, int64(rec.Year))
		if rec.ExcludePairs {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
		buf = appendPairs(buf, rec.Pairs)
	}

	return xxh3.Hash(buf)
}

// Assignment returns a fingerprint of a complete index-based assignment,
// used to recognize duplicate solutions while sampling.
func Assignment(assign []int) uint64 {
	buf := make([]byte, 0, len(assign)*2)
	for _, r := range assign {
		buf = binary.AppendVarint(buf, int64(r))
	}

	return xxh3.Hash(buf)
}

func sortedCopy(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	sort.Strings(out)

	return out
}

func appendStrings(buf []byte, values []string) []byte {
	buf = binary.AppendUvarint(buf, uint64(len(values)))
	for _, v := range values {
		buf = binary.AppendUvarint(buf, uint64(len(v)))
		buf = append(buf, v...)
	}

	return buf
}

func appendPairs(buf []byte, pairs []types.Pair) []byte {
	flat := make([]string, 0, len(pairs))
	for _, p := range pairs {
		flat = append(flat, p.Giver+"\x00"+p.Receiver)
	}
	sort.Strings(flat)

	return appendStrings(buf, flat)
}
