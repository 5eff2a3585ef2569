package technique

import (
	"fmt"

	"humansudoku/internal/core"
	"humansudoku/internal/engine"
)

// YWing finds a bivalue pivot cell {X, Y} with two bivalue pincers -- one
// seeing the pivot with candidates {X, Z} and the other with {Y, Z} -- and
// eliminates Z from any cell that sees both pincers. Grounded on the
// teacher's detectXYWing in techniques_fish.go, rewritten against
// Field.SeeEachOther instead of a flat ArePeers(i, j) index check.
type YWing struct{ Base }

func NewYWing() *YWing {
	return &YWing{Base: newBase("XY-Wing", "xy-wing", "medium", true, false)}
}

func (t *YWing) Perform(f *engine.Field, hooks *Hooks) (Result, *core.Move, error) {
	hooks.started(t.name)
	var bivalues []*engine.Cell
	for _, c := range f.Cells() {
		if !c.IsResolved() && c.Candidates().Count() == 2 {
			bivalues = append(bivalues, c)
		}
	}

	result, move, err := PerCell(f, func(pivot *engine.Cell) (*core.Move, error) {
		if pivot.IsResolved() || pivot.Candidates().Count() != 2 {
			return nil, nil
		}
		digits := pivot.Candidates().ToSlice()
		x, y := digits[0], digits[1]

		var xzWings, yzWings []*engine.Cell
		for _, wing := range bivalues {
			if wing == pivot || !f.SeeEachOther(pivot, wing) {
				continue
			}
			wc := wing.Candidates()
			hasX, hasY := wc.Has(x), wc.Has(y)
			switch {
			case hasX && !hasY:
				xzWings = append(xzWings, wing)
			case hasY && !hasX:
				yzWings = append(yzWings, wing)
			}
		}

		for _, xz := range xzWings {
			z1 := otherDigit(xz.Candidates(), x)
			for _, yz := range yzWings {
				if xz == yz {
					continue
				}
				z2 := otherDigit(yz.Candidates(), y)
				if z1 != z2 {
					continue
				}
				z := z1

				var targets []*engine.Cell
				for _, c := range f.Cells() {
					if c == pivot || c == xz || c == yz || c.IsResolved() || !c.Candidates().Has(z) {
						continue
					}
					if f.SeeEachOther(c, xz) && f.SeeEachOther(c, yz) {
						targets = append(targets, c)
					}
				}
				changedCells, elims, err := removeCandidateFromEach(targets, z)
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
					Digit:        z,
					Targets:      cellRefs(corners),
					Eliminations: elims,
					Explanation: fmt.Sprintf("XY-Wing: pivot %s {%d,%d} with pincers %s and %s; eliminate %d",
						pivot.Coord(), x, y, xz.Coord(), yz.Coord(), z),
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
		return nil, nil
	})
	hooks.done(t.name, result)
	return result, move, err
}

// otherDigit returns the single digit in mask other than exclude, for a
// two-candidate mask.
func otherDigit(mask engine.CandidateMask, exclude int) int {
	for _, d := range mask.ToSlice() {
		if d != exclude {
			return d
		}
	}
	return 0
}
