package technique

import (
	"fmt"

	"humansudoku/internal/core"
	"humansudoku/internal/engine"
)

// Intersections covers both halves of locked-candidates reasoning: a
// digit confined within a box to a single row or column (the teacher's
// detectPointingPair), and a digit confined within a row or column to a
// single box (the teacher's detectBoxLineReduction), both in
// techniques_simple.go. Both directions are the same intersection
// arithmetic -- a house's cells restricted to a digit either all share a
// second house or they don't -- so they're implemented as one technique
// here instead of two.
type Intersections struct{ Base }

func NewIntersections() *Intersections {
	return &Intersections{Base: newBase("Intersections", "intersections", "simple", true, false)}
}

func (t *Intersections) Perform(f *engine.Field, hooks *Hooks) (Result, *core.Move, error) {
	hooks.started(t.name)

	result, move, err := PerHouse(f, func(box *engine.House) (*core.Move, error) {
		if box.Kind() != engine.Box {
			return nil, nil
		}
		_, mv, err := PerCandidate(f, func(v int) (*core.Move, error) {
			cells := box.CellSet().CellsWithCandidate(v)
			if len(cells) < 2 {
				return nil, nil
			}
			if line := confinedLine(cells, engine.Row); line != nil {
				if mv, err := t.eliminateOutsideBox(f, box, line, v, cells, hooks); err != nil || mv != nil {
					return mv, err
				}
			}
			if line := confinedLine(cells, engine.Column); line != nil {
				if mv, err := t.eliminateOutsideBox(f, box, line, v, cells, hooks); err != nil || mv != nil {
					return mv, err
				}
			}
			return nil, nil
		})
		return mv, err
	})
	if result == Changed || err != nil {
		hooks.done(t.name, result)
		return result, move, err
	}

	result, move, err = PerHouse(f, func(line *engine.House) (*core.Move, error) {
		if line.Kind() != engine.Row && line.Kind() != engine.Column {
			return nil, nil
		}
		_, mv, err := PerCandidate(f, func(v int) (*core.Move, error) {
			cells := line.CellSet().CellsWithCandidate(v)
			if len(cells) < 2 {
				return nil, nil
			}
			box := cells[0].BoxHouse()
			for _, c := range cells[1:] {
				if c.BoxHouse() != box {
					return nil, nil
				}
			}
			var outside []*engine.Cell
			for _, c := range box.Cells() {
				if c.RowHouse() != line && c.ColHouse() != line {
					outside = append(outside, c)
				}
			}
			changedCells, elims, err := removeCandidateFromEach(outside, v)
			if err != nil {
				return nil, err
			}
			if len(changedCells) == 0 {
				return nil, nil
			}
			move := &core.Move{
				Technique:    t.name,
				Action:       "eliminate",
				Digit:        v,
				Targets:      cellRefs(cells),
				Eliminations: elims,
				Explanation:  fmt.Sprintf("In %s, %d is confined to %s; eliminate from rest of %s", line.Name(), v, box.Name(), box.Name()),
				Refs:         core.TechniqueRef{Title: t.name, Slug: t.slug},
				Highlights: core.Highlights{
					Primary:   cellRefs(cells),
					Secondary: cellRefs(changedCells),
				},
			}
			hooks.applied(move)
			return move, nil
		})
		return mv, err
	})
	hooks.done(t.name, result)
	return result, move, err
}

// confinedLine reports the row or column house shared by every cell, or
// nil if they don't all share one of that kind.
func confinedLine(cells []*engine.Cell, kind engine.HouseKind) *engine.House {
	var h *engine.House
	for _, c := range cells {
		var candidate *engine.House
		if kind == engine.Row {
			candidate = c.RowHouse()
		} else {
			candidate = c.ColHouse()
		}
		if h == nil {
			h = candidate
		} else if h != candidate {
			return nil
		}
	}
	return h
}

func (t *Intersections) eliminateOutsideBox(f *engine.Field, box, line *engine.House, v int, boxCells []*engine.Cell, hooks *Hooks) (*core.Move, error) {
	var outside []*engine.Cell
	for _, c := range line.Cells() {
		if c.BoxHouse() != box {
			outside = append(outside, c)
		}
	}
	changedCells, elims, err := removeCandidateFromEach(outside, v)
	if err != nil {
		return nil, err
	}
	if len(changedCells) == 0 {
		return nil, nil
	}
	move := &core.Move{
		Technique:    t.name,
		Action:       "eliminate",
		Digit:        v,
		Targets:      cellRefs(boxCells),
		Eliminations: elims,
		Explanation:  fmt.Sprintf("In %s, %d is confined to %s; eliminate from rest of %s", box.Name(), v, line.Name(), line.Name()),
		Refs:         core.TechniqueRef{Title: t.name, Slug: t.slug},
		Highlights: core.Highlights{
			Primary:   cellRefs(boxCells),
			Secondary: cellRefs(changedCells),
		},
	}
	hooks.applied(move)
	return move, nil
}
