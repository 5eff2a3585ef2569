// Package technique implements the catalog of human-style deduction
// strategies a Sudoku solver applies by hand, plus the uniform Technique
// contract and the three iteration templates (per-cell, per-house,
// per-candidate) every concrete technique is built from.
//
// The "PerXTechnique" base classes of the original C++ source
// (PerCellTechnique, PerHouseTechnique, PerCandidateTechnique) become
// plain iteration helpers here rather than an inheritance hierarchy: a
// tagged dispatch over a shared iteration template, not a base-class
// chain.
package technique

import (
	"humansudoku/internal/core"
	"humansudoku/internal/engine"
)

// Result reports whether a technique's Perform call changed the field.
type Result int

const (
	Unchanged Result = iota
	Changed
)

// Hooks are optional lifecycle callbacks consumed only by an external
// visualizer collaborator. The engine's algorithmic behavior never depends
// on whether hooks are set.
type Hooks struct {
	OnStarted func(name string)
	OnApplied func(move *core.Move)
	OnDone    func(name string, result Result)
}

func (h *Hooks) started(name string) {
	if h != nil && h.OnStarted != nil {
		h.OnStarted(name)
	}
}

func (h *Hooks) applied(move *core.Move) {
	if h != nil && h.OnApplied != nil {
		h.OnApplied(move)
	}
}

func (h *Hooks) done(name string, r Result) {
	if h != nil && h.OnDone != nil {
		h.OnDone(name, r)
	}
}

// Technique is the uniform contract every deduction strategy satisfies.
type Technique interface {
	// Name is the stable, human-readable display name ("Naked Single",
	// "X-Wing", ...), used for Resolver.Technique lookups.
	Name() string
	// Slug is the URL-friendly identifier ("naked-single", "x-wing").
	Slug() string
	// Tier is a descriptive difficulty grouping (simple/medium/hard/
	// extreme); it does not affect execution order, which is fixed by
	// the Resolver's registration order.
	Tier() string
	// Enabled reports whether Perform should run at all.
	Enabled() bool
	// SetEnabled toggles the technique. Disabling NakedSingle is
	// documented as a no-op; NakedSingle's SetEnabled ignores false.
	SetEnabled(bool)
	// Perform runs one pass of the technique against f. It returns
	// Changed and a descriptive *core.Move the first time it finds an
	// assignment or elimination to make, applies that single change, and
	// stops -- it does not keep scanning for more. It returns Unchanged
	// and a nil move if nothing applied. A non-nil error is always
	// engine.ErrContradiction, surfaced from a Cell mutation.
	Perform(f *engine.Field, hooks *Hooks) (Result, *core.Move, error)
}

// Base is embedded by every concrete technique to provide the
// Name/Slug/Tier/Enabled bookkeeping so each technique file only needs to
// implement Perform.
type Base struct {
	name    string
	slug    string
	tier    string
	enabled bool
	// lockedEnabled, when true, makes SetEnabled a no-op (used by
	// NakedSingle, which is always on).
	lockedEnabled bool
}

func newBase(name, slug, tier string, enabled bool, locked bool) Base {
	return Base{name: name, slug: slug, tier: tier, enabled: enabled, lockedEnabled: locked}
}

func (b *Base) Name() string    { return b.name }
func (b *Base) Slug() string    { return b.slug }
func (b *Base) Tier() string    { return b.tier }
func (b *Base) Enabled() bool   { return b.enabled }
func (b *Base) SetEnabled(v bool) {
	if b.lockedEnabled {
		return
	}
	b.enabled = v
}

// PerCell runs fn against every cell in row-major order, stopping at the
// first cell that reports a move.
func PerCell(f *engine.Field, fn func(c *engine.Cell) (*core.Move, error)) (Result, *core.Move, error) {
	for _, c := range f.Cells() {
		move, err := fn(c)
		if err != nil {
			return Unchanged, nil, err
		}
		if move != nil {
			return Changed, move, nil
		}
	}
	return Unchanged, nil, nil
}

// PerHouse runs fn against every house (rows, then columns, then boxes),
// stopping at the first house that reports a move.
func PerHouse(f *engine.Field, fn func(h *engine.House) (*core.Move, error)) (Result, *core.Move, error) {
	for _, h := range f.Houses() {
		move, err := fn(h)
		if err != nil {
			return Unchanged, nil, err
		}
		if move != nil {
			return Changed, move, nil
		}
	}
	return Unchanged, nil, nil
}

// PerCandidate runs fn against every value 1..N, stopping at the first
// value that reports a move. Iteration is by explicit index range, not by
// any running bit-count, matching the original's digit loop.
func PerCandidate(f *engine.Field, fn func(v int) (*core.Move, error)) (Result, *core.Move, error) {
	for v := 1; v <= f.N(); v++ {
		move, err := fn(v)
		if err != nil {
			return Unchanged, nil, err
		}
		if move != nil {
			return Changed, move, nil
		}
	}
	return Unchanged, nil, nil
}

// cellRef converts a cell's coordinate to the wire CellRef type.
func cellRef(c *engine.Cell) core.CellRef {
	return core.CellRef{Row: c.Coord().Row, Col: c.Coord().Col}
}

func cellRefs(cells []*engine.Cell) []core.CellRef {
	out := make([]core.CellRef, len(cells))
	for i, c := range cells {
		out[i] = cellRef(c)
	}
	return out
}

func eliminationsFor(cells []*engine.Cell, digit int) []core.Candidate {
	out := make([]core.Candidate, len(cells))
	for i, c := range cells {
		out[i] = core.Candidate{Row: c.Coord().Row, Col: c.Coord().Col, Digit: digit}
	}
	return out
}

// removeCandidateFromEach removes digit from each candidate cell and
// returns the subset that actually changed, as both *engine.Cell and
// core.Candidate form, so a caller can build both the mutation and the
// explanation from one pass.
func removeCandidateFromEach(cells []*engine.Cell, digit int) ([]*engine.Cell, []core.Candidate, error) {
	var changedCells []*engine.Cell
	var elims []core.Candidate
	for _, c := range cells {
		changed, err := c.RemoveCandidate(digit)
		if err != nil {
			return nil, nil, err
		}
		if changed {
			changedCells = append(changedCells, c)
			elims = append(elims, core.Candidate{Row: c.Coord().Row, Col: c.Coord().Col, Digit: digit})
		}
	}
	return changedCells, elims, nil
}

// removeMaskFromEach is the same as removeCandidateFromEach but for a
// whole mask of digits at once (used by NakedGroup/HiddenGroup/UR).
func removeMaskFromEach(cells []*engine.Cell, mask engine.CandidateMask) ([]*engine.Cell, []core.Candidate, error) {
	var changedCells []*engine.Cell
	var elims []core.Candidate
	for _, c := range cells {
		before := c.Candidates()
		changed, err := c.RemoveCandidates(mask)
		if err != nil {
			return nil, nil, err
		}
		if changed {
			changedCells = append(changedCells, c)
			removed := before.Subtract(c.Candidates())
			for _, d := range removed.ToSlice() {
				elims = append(elims, core.Candidate{Row: c.Coord().Row, Col: c.Coord().Col, Digit: d})
			}
		}
	}
	return changedCells, elims, nil
}
