package technique

import (
	"fmt"

	"humansudoku/internal/core"
	"humansudoku/internal/engine"
)

// BiLocationColoring performs single-digit two-coloring over conjugate
// pairs (houses where a digit has exactly two candidate cells), grounded
// on the teacher's detectSimpleColoring in techniques_fish.go and the
// color/anti-color vault of original_source's cellcolor.h/
// bilocationlink.h.
//
// Two rules apply once a connected component is two-colored:
//
//   - Color conflict: two same-colored cells share a house. That color
//     is impossible. The default (AggressiveColoring == false) only
//     strips the digit from every cell of the losing color -- it does
//     not place the digit in the opposite color's cells, since an odd
//     cycle proves one color false but does not by itself prove the
//     other color is the unique placement everywhere. Setting
//     AggressiveColoring assigns the digit to every opposite-colored
//     cell instead, matching the original's more aggressive reading of
//     the same pattern.
//   - Same color, same house: two cells sharing a color end up in the
//     same house, whether or not a conjugate-link edge joins them
//     directly. That color is impossible in that house, so it is
//     handled identically to the BFS-detected conflict above.
//   - Elsewhere-sees-both: an uncolored cell outside the component sees
//     a cell of each color. Either color could be true, so the digit
//     cannot be a candidate there; eliminate it.
type BiLocationColoring struct {
	Base
	AggressiveColoring bool
}

func NewBiLocationColoring() *BiLocationColoring {
	return &BiLocationColoring{Base: newBase("Bi-Location Coloring", "bi-location-coloring", "hard", true, false)}
}

// SetAggressiveColoring implements the optional aggressive-coloring
// toggle a Resolver may apply to this technique.
func (t *BiLocationColoring) SetAggressiveColoring(v bool) { t.AggressiveColoring = v }

func (t *BiLocationColoring) Perform(f *engine.Field, hooks *Hooks) (Result, *core.Move, error) {
	hooks.started(t.name)
	result, move, err := PerCandidate(f, func(v int) (*core.Move, error) {
		return t.colorDigit(f, v, hooks)
	})
	hooks.done(t.name, result)
	return result, move, err
}

func (t *BiLocationColoring) colorDigit(f *engine.Field, v int, hooks *Hooks) (*core.Move, error) {
	links := conjugateLinks(f, v)
	if len(links) == 0 {
		return nil, nil
	}

	colors := make(map[*engine.Cell]int) // 1 or 2
	var starts []*engine.Cell
	for c := range links {
		starts = append(starts, c)
	}
	// deterministic traversal order, by coordinate index.
	sortCellsByIndex(starts)

	for _, start := range starts {
		if colors[start] != 0 {
			continue
		}
		var colorA, colorB []*engine.Cell
		colors[start] = 1
		colorA = append(colorA, start)
		queue := []*engine.Cell{start}
		conflictColor := 0

		// BFS the whole component even after a conflict is spotted, so the
		// losing color's elimination list is complete, not just the pair
		// that first revealed the contradiction.
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, next := range links[cur] {
				nextColor := 3 - colors[cur]
				if colors[next] == 0 {
					colors[next] = nextColor
					if nextColor == 1 {
						colorA = append(colorA, next)
					} else {
						colorB = append(colorB, next)
					}
					queue = append(queue, next)
				} else if colors[next] == colors[cur] && conflictColor == 0 {
					conflictColor = colors[cur]
				}
			}
		}
		if len(colorB) == 0 {
			continue
		}

		// A conjugate-link edge only exists for houses where v has exactly
		// two candidate cells, so the BFS above only catches a same-color
		// conflict that closes an odd cycle through such houses. A house
		// with three or more candidate cells for v never gets a link edge
		// at all, yet two of its cells can still end up the same color
		// through the rest of the chain -- that's still a contradiction
		// and needs its own scan, independent of the edges.
		if conflictColor == 0 {
			for _, h := range f.Houses() {
				cntA, cntB := 0, 0
				for _, c := range h.Cells() {
					if !c.Candidates().Has(v) {
						continue
					}
					switch colors[c] {
					case 1:
						cntA++
					case 2:
						cntB++
					}
				}
				if cntA >= 2 {
					conflictColor = 1
					break
				}
				if cntB >= 2 {
					conflictColor = 2
					break
				}
			}
		}

		if conflictColor != 0 {
			losing, winning := colorA, colorB
			if conflictColor == 2 {
				losing, winning = colorB, colorA
			}
			if t.AggressiveColoring {
				for _, c := range winning {
					if !c.IsResolved() {
						if err := c.SetValue(v, false); err != nil {
							return nil, err
						}
					}
				}
				move := &core.Move{
					Technique:   t.name,
					Action:      "assign",
					Digit:       v,
					Targets:     cellRefs(winning),
					Explanation: fmt.Sprintf("Bi-Location Coloring: %d's losing color forces placement in the opposite color for %d", v, v),
					Refs:        core.TechniqueRef{Title: t.name, Slug: t.slug},
					Highlights:  core.Highlights{Primary: cellRefs(winning), Secondary: cellRefs(losing)},
				}
				hooks.applied(move)
				return move, nil
			}
			changedCells, elims, err := removeCandidateFromEach(losing, v)
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
				Targets:      cellRefs(losing),
				Eliminations: elims,
				Explanation:  fmt.Sprintf("Bi-Location Coloring: %d's color chain contradicts itself; remove %d from that color", v, v),
				Refs:         core.TechniqueRef{Title: t.name, Slug: t.slug},
				Highlights:   core.Highlights{Primary: cellRefs(losing), Secondary: cellRefs(winning)},
			}
			hooks.applied(move)
			return move, nil
		}

		var targets []*engine.Cell
		for _, c := range f.Cells() {
			if colors[c] != 0 || c.IsResolved() || !c.Candidates().Has(v) {
				continue
			}
			seesA, seesB := false, false
			for _, a := range colorA {
				if f.SeeEachOther(c, a) {
					seesA = true
					break
				}
			}
			for _, b := range colorB {
				if f.SeeEachOther(c, b) {
					seesB = true
					break
				}
			}
			if seesA && seesB {
				targets = append(targets, c)
			}
		}
		changedCells, elims, err := removeCandidateFromEach(targets, v)
		if err != nil {
			return nil, err
		}
		if len(changedCells) == 0 {
			continue
		}
		all := append(append([]*engine.Cell{}, colorA...), colorB...)
		move := &core.Move{
			Technique:    t.name,
			Action:       "eliminate",
			Digit:        v,
			Targets:      cellRefs(all),
			Eliminations: elims,
			Explanation:  fmt.Sprintf("Bi-Location Coloring: %d sees both colors of a chain; eliminate", v),
			Refs:         core.TechniqueRef{Title: t.name, Slug: t.slug},
			Highlights:   core.Highlights{Primary: cellRefs(all), Secondary: cellRefs(changedCells)},
		}
		hooks.applied(move)
		return move, nil
	}
	return nil, nil
}

// conjugateLinks builds the conjugate-pair adjacency for digit v: an edge
// between two cells exists if they are the only two candidates for v in
// some shared house.
func conjugateLinks(f *engine.Field, v int) map[*engine.Cell][]*engine.Cell {
	links := make(map[*engine.Cell][]*engine.Cell)
	for _, h := range f.Houses() {
		cells := h.CellSet().CellsWithCandidate(v)
		if len(cells) != 2 {
			continue
		}
		a, b := cells[0], cells[1]
		links[a] = append(links[a], b)
		links[b] = append(links[b], a)
	}
	return links
}

func sortCellsByIndex(cells []*engine.Cell) {
	for i := 1; i < len(cells); i++ {
		for j := i; j > 0 && cells[j].Coord().Less(cells[j-1].Coord()); j-- {
			cells[j], cells[j-1] = cells[j-1], cells[j]
		}
	}
}
