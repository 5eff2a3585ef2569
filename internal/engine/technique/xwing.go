package technique

import (
	"fmt"

	"humansudoku/internal/core"
	"humansudoku/internal/engine"
)

// XWing finds a digit confined to exactly two cells in each of two rows
// (or two columns), with those cells sharing the same two columns (or
// rows), and eliminates the digit from the rest of those columns (or
// rows). Grounded on the teacher's detectXWing in techniques_fish.go,
// generalized from a 9x9 row/col loop to Field.Rows()/Columns() and from
// explicit bit positions to CandidateMask. The digit loop uses an explicit
// 1..N range rather than iterating set bits of a running mask, matching
// the original's iteration style.
type XWing struct{ Base }

func NewXWing() *XWing {
	return &XWing{Base: newBase("X-Wing", "x-wing", "medium", true, false)}
}

func (t *XWing) Perform(f *engine.Field, hooks *Hooks) (Result, *core.Move, error) {
	hooks.started(t.name)
	result, move, err := PerCandidate(f, func(v int) (*core.Move, error) {
		if mv, err := t.findIn(f, v, f.Rows(), engine.Row, hooks); err != nil || mv != nil {
			return mv, err
		}
		return t.findIn(f, v, f.Columns(), engine.Column, hooks)
	})
	hooks.done(t.name, result)
	return result, move, err
}

// findIn looks for a fish among lines (either all rows or all columns).
// lineKind names the cross-axis house kind (Row lines cross Columns, and
// vice versa) for building the elimination target.
func (t *XWing) findIn(f *engine.Field, v int, lines []*engine.House, lineKind engine.HouseKind, hooks *Hooks) (*core.Move, error) {
	type candidateLine struct {
		house *engine.House
		cells []*engine.Cell
	}
	var withTwo []candidateLine
	for _, line := range lines {
		cells := line.CellSet().CellsWithCandidate(v)
		if len(cells) == 2 {
			withTwo = append(withTwo, candidateLine{house: line, cells: cells})
		}
	}

	crossHouseOf := func(c *engine.Cell) *engine.House {
		if lineKind == engine.Row {
			return c.ColHouse()
		}
		return c.RowHouse()
	}

	for i := 0; i < len(withTwo); i++ {
		for j := i + 1; j < len(withTwo); j++ {
			a, b := withTwo[i], withTwo[j]
			crossA1, crossA2 := crossHouseOf(a.cells[0]), crossHouseOf(a.cells[1])
			crossB1, crossB2 := crossHouseOf(b.cells[0]), crossHouseOf(b.cells[1])
			sameCross := (crossA1 == crossB1 && crossA2 == crossB2) || (crossA1 == crossB2 && crossA2 == crossB1)
			if !sameCross {
				continue
			}

			corners := append(append([]*engine.Cell{}, a.cells...), b.cells...)
			var outside []*engine.Cell
			for _, cross := range []*engine.House{crossA1, crossA2} {
				for _, c := range cross.Cells() {
					if c.RowHouse() != a.house && c.RowHouse() != b.house &&
						c.ColHouse() != a.house && c.ColHouse() != b.house {
						outside = append(outside, c)
					}
				}
			}
			changedCells, elims, err := removeCandidateFromEach(outside, v)
			if err != nil {
				return nil, err
			}
			if len(changedCells) == 0 {
				continue
			}
			move := &core.Move{
				Technique:    t.name,
				Action:       "eliminate",
				Digit:        v,
				Targets:      cellRefs(corners),
				Eliminations: elims,
				Explanation:  fmt.Sprintf("X-Wing: %d confined to %s and %s", v, a.house.Name(), b.house.Name()),
				Refs:         core.TechniqueRef{Title: t.name, Slug: t.slug},
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
}
