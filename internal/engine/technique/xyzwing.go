package technique

import (
	"fmt"

	"humansudoku/internal/core"
	"humansudoku/internal/engine"
)

// XYZWing extends YWing with a trivalue pivot {X, Y, Z} seen by two
// bivalue pincers {X, Z} and {Y, Z}; Z is eliminated from any cell that
// sees all three of pivot and both pincers (the pivot itself is a
// candidate for Z, unlike plain YWing). Grounded on the teacher's
// detectXYZWing in techniques_wings.go.
type XYZWing struct{ Base }

func NewXYZWing() *XYZWing {
	return &XYZWing{Base: newBase("XYZ-Wing", "xyz-wing", "medium", true, false)}
}

func (t *XYZWing) Perform(f *engine.Field, hooks *Hooks) (Result, *core.Move, error) {
	hooks.started(t.name)
	var bivalues []*engine.Cell
	for _, c := range f.Cells() {
		if !c.IsResolved() && c.Candidates().Count() == 2 {
			bivalues = append(bivalues, c)
		}
	}

	result, move, err := PerCell(f, func(pivot *engine.Cell) (*core.Move, error) {
		if pivot.IsResolved() || pivot.Candidates().Count() != 3 {
			return nil, nil
		}
		digits := pivot.Candidates().ToSlice()

		for _, zDigit := range digits {
			var others []int
			for _, d := range digits {
				if d != zDigit {
					others = append(others, d)
				}
			}
			xDigit, yDigit := others[0], others[1]

			var xzWings, yzWings []*engine.Cell
			for _, wing := range bivalues {
				if wing == pivot || !f.SeeEachOther(pivot, wing) {
					continue
				}
				wc := wing.Candidates()
				if wc.Has(xDigit) && wc.Has(zDigit) {
					xzWings = append(xzWings, wing)
				}
				if wc.Has(yDigit) && wc.Has(zDigit) {
					yzWings = append(yzWings, wing)
				}
			}

			for _, xz := range xzWings {
				for _, yz := range yzWings {
					if xz == yz {
						continue
					}
					var targets []*engine.Cell
					for _, c := range f.Cells() {
						if c == pivot || c == xz || c == yz || c.IsResolved() || !c.Candidates().Has(zDigit) {
							continue
						}
						if f.SeeEachOther(c, pivot) && f.SeeEachOther(c, xz) && f.SeeEachOther(c, yz) {
							targets = append(targets, c)
						}
					}
					changedCells, elims, err := removeCandidateFromEach(targets, zDigit)
					if err != nil {
						return nil, err
					}
					if len(changedCells) == 0 {
						continue
					}
					corners := []*engine.Cell{pivot, xz, yz}
					move := &core.Move{
						Technique:    t.name,
						Action:       "eliminate",
						Digit:        zDigit,
						Targets:      cellRefs(corners),
						Eliminations: elims,
						Explanation: fmt.Sprintf("XYZ-Wing: pivot %s {%d,%d,%d} with pincers %s and %s; eliminate %d",
							pivot.Coord(), xDigit, yDigit, zDigit, xz.Coord(), yz.Coord(), zDigit),
						Refs: core.TechniqueRef{Title: t.name, Slug: t.slug},
						Highlights: core.Highlights{
							Primary:   cellRefs(corners),
							Secondary: cellRefs(changedCells),
						},
					}
					hooks.applied(move)
					return move, nil
				}
			}
		}
		return nil, nil
	})
	hooks.done(t.name, result)
	return result, move, err
}
