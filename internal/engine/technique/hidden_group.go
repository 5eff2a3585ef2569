package technique

import (
	"fmt"

	"humansudoku/internal/core"
	"humansudoku/internal/engine"
)

// HiddenGroup finds a k-digit set confined to the same k cells within a
// house and strips every other candidate from those cells. It generalizes
// the teacher's detectHiddenPair and detectHiddenTriple/Quad
// (techniques_pairs.go, techniques_triples.go) the same way NakedGroup
// generalizes their naked counterparts: one pass over engine.ValueSubsets(n).
type HiddenGroup struct{ Base }

func NewHiddenGroup() *HiddenGroup {
	return &HiddenGroup{Base: newBase("Hidden Group", "hidden-group", "simple", true, false)}
}

func (t *HiddenGroup) Perform(f *engine.Field, hooks *Hooks) (Result, *core.Move, error) {
	hooks.started(t.name)
	result, move, err := PerHouse(f, func(h *engine.House) (*core.Move, error) {
		for _, mask := range engine.ValueSubsets(f.N()) {
			k := mask.Count()
			var group []*engine.Cell
			disqualified := false
			for _, c := range h.Cells() {
				switch c.Candidates().Intersect(mask).Count() {
				case 1:
					// A single cell (resolved or not) holding exactly one of
					// mask's digits means that digit isn't confined to the
					// candidate group, so the whole mask is out.
					disqualified = true
				case 0:
					// no overlap with mask, irrelevant to this house.
				default:
					group = append(group, c)
				}
				if disqualified {
					break
				}
			}
			if disqualified || len(group) != k {
				continue
			}

			keep := mask
			toStrip := engine.FullMask(f.N()).Subtract(keep)
			changedCells, elims, err := removeMaskFromEach(group, toStrip)
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
				Explanation:  fmt.Sprintf("In %s, %s can only go in %s; strip other candidates", h.Name(), mask, cellsLabel(group)),
				Refs:         core.TechniqueRef{Title: t.name, Slug: t.slug},
				Highlights: core.Highlights{
					Primary: cellRefs(group),
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
