// Package resolver drives a Field to a fixed point by repeatedly asking a
// fixed, ordered list of techniques to perform one change, restarting from
// the simplest technique after every change -- a human solver always
// rechecks for a naked single before reaching for anything fancier.
// Grounded on original_source/libsudoku/resolver.cpp's process()/run() loop,
// translated from Qt signals to plain Go closures since this package keeps
// the core loop sequential (no QThread equivalent).
package resolver

import (
	"strings"
	"sync/atomic"

	"humansudoku/internal/core"
	"humansudoku/internal/engine"
	"humansudoku/internal/engine/technique"
)

// Hooks mirror the Qt signal surface of original_source's Resolver: newIteration,
// done, resolved, unresolved, failed. All are optional.
type Hooks struct {
	OnNewIteration func()
	OnDone         func(core.Outcome)
	OnMove         func(*core.Move)
}

func (h *Hooks) newIteration() {
	if h != nil && h.OnNewIteration != nil {
		h.OnNewIteration()
	}
}

func (h *Hooks) done(outcome core.Outcome) {
	if h != nil && h.OnDone != nil {
		h.OnDone(outcome)
	}
}

func (h *Hooks) move(m *core.Move) {
	if h != nil && h.OnMove != nil && m != nil {
		h.OnMove(m)
	}
}

// Resolver owns the technique registry and drives a Field to completion or
// quiescence.
type Resolver struct {
	registry           *technique.Registry
	stop               atomic.Bool
	AggressiveColoring bool
	Hooks              *Hooks
}

// New builds a Resolver with the default technique registry.
func New() *Resolver {
	return &Resolver{registry: technique.NewRegistry()}
}

// NewWithRegistry builds a Resolver around a caller-supplied registry, for
// tests that want a reduced technique set.
func NewWithRegistry(r *technique.Registry) *Resolver {
	return &Resolver{registry: r}
}

// RequestStop asks Run to abandon the loop at the next safe checkpoint.
// Safe to call from a different goroutine than the one running Run.
func (r *Resolver) RequestStop() { r.stop.Store(true) }

// Technique looks up a registered technique by its human display name
// ("Naked Single", "X-Wing", ...), case-insensitively.
func (r *Resolver) Technique(name string) (technique.Technique, bool) {
	return r.registry.ByName(name)
}

// Registry exposes the underlying technique registry, for callers that want
// slug-based lookup or bulk enable/disable.
func (r *Resolver) Registry() *technique.Registry { return r.registry }

// Run drives f to a fixed point: after every applied change, the loop
// restarts from the first technique, since a change anywhere can make an
// earlier, simpler technique newly applicable. Returns Solved once every
// cell holds a value, Invalid once a contradiction is detected, or Stuck
// once a full pass finds nothing to do.
func (r *Resolver) Run(f *engine.Field) core.Outcome {
	r.applyAggressiveColoring()

	for {
		if r.stop.Load() {
			return r.finish(f)
		}
		r.Hooks.newIteration()

		changed := false
		for _, t := range r.registry.All() {
			if !t.Enabled() {
				continue
			}
			if r.stop.Load() {
				return r.finish(f)
			}
			hooks := &technique.Hooks{OnApplied: r.Hooks.move}
			result, _, err := t.Perform(f, hooks)
			if err != nil {
				r.Hooks.done(core.OutcomeInvalid)
				return core.OutcomeInvalid
			}
			if result == technique.Changed {
				changed = true
				break
			}
		}
		if !changed {
			return r.finish(f)
		}
	}
}

func (r *Resolver) finish(f *engine.Field) core.Outcome {
	var outcome core.Outcome
	switch {
	case f.IsSolved():
		outcome = core.OutcomeSolved
	case !f.IsValid():
		outcome = core.OutcomeInvalid
	default:
		outcome = core.OutcomeStuck
	}
	r.Hooks.done(outcome)
	return outcome
}

// applyAggressiveColoring pushes the resolver-level coloring toggle into
// BiLocationColoring before a run starts, via the optional interface the
// technique exposes -- whether a color conflict should strip the losing
// color or assign the winning one is left to the Resolver's discretion.
func (r *Resolver) applyAggressiveColoring() {
	t, ok := r.registry.BySlug("bi-location-coloring")
	if !ok {
		return
	}
	if setter, ok := t.(interface{ SetAggressiveColoring(bool) }); ok {
		setter.SetAggressiveColoring(r.AggressiveColoring)
	}
}

// tierRank orders tiers for SolveUpToTier's cutoff comparison.
var tierRank = map[string]int{
	"simple":  0,
	"medium":  1,
	"hard":    2,
	"extreme": 3,
}

// SolveUpToTier enables every technique at or below maxTier and disables the
// rest, for tests that want to confirm a puzzle requires a specific
// technique tier. NakedSingle's enabled flag is locked on regardless, since
// it is always tier "simple". Returns false for an unrecognized tier name.
func (r *Resolver) SolveUpToTier(maxTier string) bool {
	limit, ok := tierRank[normalizeTier(maxTier)]
	if !ok {
		return false
	}
	for _, t := range r.registry.All() {
		t.SetEnabled(tierRank[normalizeTier(t.Tier())] <= limit)
	}
	return true
}

// normalizeTier lowercases a tier string for comparisons.
func normalizeTier(tier string) string { return strings.ToLower(tier) }
