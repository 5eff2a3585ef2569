package technique

import (
	"fmt"

	"humansudoku/internal/core"
	"humansudoku/internal/engine"
)

// NakedGroup finds k cells within a house whose candidates are all drawn
// from the same k-digit set and eliminates that set from the house's
// other cells. It generalizes the teacher's detectNakedPair,
// detectNakedTriple, and detectNakedQuad (techniques_pairs.go,
// techniques_triples.go) -- three hand-unrolled sizes -- into one pass
// over the precomputed engine.ValueSubsets(n) table for every k in [2, n/2].
type NakedGroup struct{ Base }

func NewNakedGroup() *NakedGroup {
	return &NakedGroup{Base: newBase("Naked Group", "naked-group", "simple", true, false)}
}

func (t *NakedGroup) Perform(f *engine.Field, hooks *Hooks) (Result, *core.Move, error) {
	hooks.started(t.name)
	result, move, err := PerHouse(f, func(h *engine.House) (*core.Move, error) {
		for _, mask := range engine.ValueSubsets(f.N()) {
			k := mask.Count()
			var group []*engine.Cell
			for _, c := range h.Cells() {
				if c.IsResolved() {
					continue
				}
				if c.Candidates().IsSubsetOf(mask) {
					group = append(group, c)
				}
			}
			if len(group) != k {
				continue
			}

			var others []*engine.Cell
			for _, c := range h.Cells() {
				if !c.IsResolved() && !containsCell(group, c) {
					others = append(others, c)
				}
			}
			changedCells, elims, err := removeMaskFromEach(others, mask)
			if err != nil {
				return nil, err
			}
			if len(changedCells) == 0 {
				continue
			}

			move := &core.Move{
				Technique:    t.name,
				Action:       "eliminate",
				Targets:      cellRefs(group),
				Eliminations: elims,
				Explanation:  fmt.Sprintf("In %s, %s form a naked group on %s", h.Name(), cellsLabel(group), mask),
				Refs:         core.TechniqueRef{Title: t.name, Slug: t.slug},
				Highlights: core.Highlights{
					Primary:   cellRefs(group),
					Secondary: cellRefs(changedCells),
				},
			}
			hooks.applied(move)
			return move, nil
		}
		return nil, nil
	})
	hooks.done(t.name, result)
	return result, move, err
}

func containsCell(cells []*engine.Cell, target *engine.Cell) bool {
	for _, c := range cells {
		if c == target {
			return true
		}
	}
	return false
}

func cellsLabel(cells []*engine.Cell) string {
	s := ""
	for i, c := range cells {
		if i > 0 {
			s += ", "
		}
		s += c.Coord().String()
	}
	return s
}
