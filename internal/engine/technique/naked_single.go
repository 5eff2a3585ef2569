package technique

import (
	"fmt"

	"humansudoku/internal/core"
	"humansudoku/internal/engine"
)

// NakedSingle finds a cell with exactly one remaining candidate and
// assigns it. It is grounded on the teacher's detectNakedSingle in
// techniques_simple.go, generalized from a flat 81-cell scan to
// Field.Cells(). Naked Single is always enabled; SetEnabled on it is a
// no-op, since every solver run needs it to make forward progress.
type NakedSingle struct{ Base }

func NewNakedSingle() *NakedSingle {
	return &NakedSingle{Base: newBase("Naked Single", "naked-single", "simple", true, true)}
}

func (t *NakedSingle) Perform(f *engine.Field, hooks *Hooks) (Result, *core.Move, error) {
	hooks.started(t.name)
	result, move, err := PerCell(f, func(c *engine.Cell) (*core.Move, error) {
		if c.IsResolved() {
			return nil, nil
		}
		digit, ok := c.Candidates().Only()
		if !ok {
			return nil, nil
		}
		if err := c.SetValue(digit, false); err != nil {
			return nil, err
		}
		ref := cellRef(c)
		move := &core.Move{
			Technique:   t.name,
			Action:      "assign",
			Digit:       digit,
			Targets:     []core.CellRef{ref},
			Explanation: fmt.Sprintf("%s has only one remaining candidate: %d", c.Coord(), digit),
			Refs:        core.TechniqueRef{Title: t.name, Slug: t.slug},
			Highlights:  core.Highlights{Primary: []core.CellRef{ref}},
		}
		hooks.applied(move)
		return move, nil
	})
	hooks.done(t.name, result)
	return result, move, err
}
