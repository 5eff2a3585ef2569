package technique

import (
	"fmt"

	"humansudoku/internal/core"
	"humansudoku/internal/engine"
)

// HiddenSingle finds a digit that has exactly one remaining candidate
// cell within a house and assigns it there. Grounded on the teacher's
// detectHiddenSingle in techniques_simple.go, generalized from three
// duplicated row/column/box loops to one PerHouse/PerCandidate walk over
// Field.Houses().
type HiddenSingle struct{ Base }

func NewHiddenSingle() *HiddenSingle {
	return &HiddenSingle{Base: newBase("Hidden Single", "hidden-single", "simple", true, false)}
}

func (t *HiddenSingle) Perform(f *engine.Field, hooks *Hooks) (Result, *core.Move, error) {
	hooks.started(t.name)
	result, move, err := PerHouse(f, func(h *engine.House) (*core.Move, error) {
		_, mv, err := PerCandidate(f, func(v int) (*core.Move, error) {
			cells := h.CellSet().CellsWithCandidate(v)
			if len(cells) != 1 {
				return nil, nil
			}
			c := cells[0]
			if c.Candidates().Count() == 1 {
				// already a naked single; let NakedSingle claim it.
				return nil, nil
			}
			if err := c.SetValue(v, false); err != nil {
				return nil, err
			}
			ref := cellRef(c)
			move := &core.Move{
				Technique:   t.name,
				Action:      "assign",
				Digit:       v,
				Targets:     []core.CellRef{ref},
				Explanation: fmt.Sprintf("In %s, %d can only go in %s", h.Name(), v, c.Coord()),
				Refs:        core.TechniqueRef{Title: t.name, Slug: t.slug},
				Highlights: core.Highlights{
					Primary:   []core.CellRef{ref},
					Secondary: cellRefs(h.Cells()),
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
