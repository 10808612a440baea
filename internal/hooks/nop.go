// Package hooks provides the default no-op hook implementations used when
// the caller supplies none.
package hooks

import (
	"context"

	"github.com/shanecelis/secret-santa/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default implementation used when no custom hooks are provided,
// eliminating the need for nil checks throughout the codebase.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(context.Context, types.PlanStats) error = (*NopHooks)(nil).OnValidated
	_ func(context.Context, *types.Solution) error = (*NopHooks)(nil).OnSolutionSampled
	_ func(context.Context, error) error           = (*NopHooks)(nil).OnError
)

// NewNop creates a new no-op hooks implementation.
//
// Returns:
//   - types.Hooks: Hooks with no-op implementations
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnValidated:       h.OnValidated,
		OnSolutionSampled: h.OnSolutionSampled,
		OnError:           h.OnError,
	}
}

// Fill replaces nil callbacks on the given hooks with no-ops, so callers can
// populate only the hooks they care about.
func Fill(h *types.Hooks) types.Hooks {
	if h == nil {
		return NewNop()
	}

	nop := NewNop()
	out := *h
	if out.OnValidated == nil {
		out.OnValidated = nop.OnValidated
	}
	if out.OnSolutionSampled == nil {
		out.OnSolutionSampled = nop.OnSolutionSampled
	}
	if out.OnError == nil {
		out.OnError = nop.OnError
	}

	return out
}

// OnValidated is a no-op implementation.
func (h *NopHooks) OnValidated(_ context.Context, _ types.PlanStats) error {
	return nil
}

// OnSolutionSampled is a no-op implementation.
func (h *NopHooks) OnSolutionSampled(_ context.Context, _ *types.Solution) error {
	return nil
}

// OnError is a no-op implementation.
func (h *NopHooks) OnError(_ context.Context, _ error) error {
	return nil
}
