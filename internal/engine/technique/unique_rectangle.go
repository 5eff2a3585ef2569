package technique

import (
	"fmt"

	"humansudoku/internal/core"
	"humansudoku/internal/engine"
)

// UniqueRectangle looks for four cells forming a rectangle across exactly
// two boxes, all carrying the same pair of candidates {d1, d2}, whose
// resolution either way would leave two valid completions of the puzzle
// (a "deadly pattern"). Since a well-formed puzzle is assumed to have a
// unique solution, such a pattern can't actually occur unperturbed, which
// licenses eliminating whatever extra candidates would otherwise allow
// it. Grounded on the teacher's detectUniqueRectangle/Type2/Type3/Type4
// family in techniques_advanced.go, generalized from nested cell-index
// combination loops to a direct row-pair/column-pair scan over
// Field.Rows()/Field.Columns(), and widened from a hardcoded digit range
// 1..9 to 1..N. Type 4 is carried over from the same source family as a
// supplemental addition to the core Types 1-3.
type UniqueRectangle struct{ Base }

func NewUniqueRectangle() *UniqueRectangle {
	return &UniqueRectangle{Base: newBase("Unique Rectangle", "unique-rectangle", "hard", true, false)}
}

func (t *UniqueRectangle) Perform(f *engine.Field, hooks *Hooks) (Result, *core.Move, error) {
	hooks.started(t.name)
	n := f.N()
	var found *core.Move
	var foundErr error

	outer:
	for r1 := 1; r1 <= n; r1++ {
		for r2 := r1 + 1; r2 <= n; r2++ {
			for c1 := 1; c1 <= n; c1++ {
				for c2 := c1 + 1; c2 <= n; c2++ {
					corners := [4]*engine.Cell{
						f.Cell(engine.NewCoord(n, r1, c1)),
						f.Cell(engine.NewCoord(n, r1, c2)),
						f.Cell(engine.NewCoord(n, r2, c1)),
						f.Cell(engine.NewCoord(n, r2, c2)),
					}
					anyResolved := false
					for _, c := range corners {
						if c.IsResolved() {
							anyResolved = true
							break
						}
					}
					if anyResolved {
						continue
					}
					if !spansTwoBoxes(corners) {
						continue
					}

					common := corners[0].Candidates()
					for _, c := range corners[1:] {
						common = common.Intersect(c.Candidates())
					}
					if common.Count() < 2 {
						continue
					}
					digits := common.ToSlice()
					for i := 0; i < len(digits); i++ {
						for j := i + 1; j < len(digits); j++ {
							mv, err := t.checkPair(f, corners, digits[i], digits[j], hooks)
							if err != nil {
								foundErr = err
								break outer
							}
							if mv != nil {
								found = mv
								break outer
							}
						}
					}
				}
			}
		}
	}

	result := Unchanged
	if found != nil {
		result = Changed
	}
	hooks.done(t.name, result)
	return result, found, foundErr
}

func spansTwoBoxes(corners [4]*engine.Cell) bool {
	boxes := make(map[*engine.House]int)
	for _, c := range corners {
		boxes[c.BoxHouse()]++
	}
	if len(boxes) != 2 {
		return false
	}
	for _, n := range boxes {
		if n != 2 {
			return false
		}
	}
	return true
}

func pairMask(d1, d2 int) engine.CandidateMask {
	return engine.MaskFromValues([]int{d1, d2})
}

// checkPair runs Types 1, 2, 3, and 4 for one candidate pair across the
// four corners, in that order, returning the first elimination found.
func (t *UniqueRectangle) checkPair(f *engine.Field, corners [4]*engine.Cell, d1, d2 int, hooks *Hooks) (*core.Move, error) {
	ur := pairMask(d1, d2)

	if mv, err := t.checkType1(corners, ur, hooks); err != nil || mv != nil {
		return mv, err
	}

	// Every way of splitting the 4 corners into a bivalue pair and an
	// "extra" pair; Types 2-4 all hinge on the extra pair.
	splits := [][2][2]int{
		{{0, 1}, {2, 3}}, {{2, 3}, {0, 1}},
		{{0, 2}, {1, 3}}, {{1, 3}, {0, 2}},
		{{0, 3}, {1, 2}}, {{1, 2}, {0, 3}},
	}
	for _, split := range splits {
		bv0, bv1 := corners[split[0][0]], corners[split[0][1]]
		ex0, ex1 := corners[split[1][0]], corners[split[1][1]]
		if !bv0.Candidates().Equals(ur) || !bv1.Candidates().Equals(ur) {
			continue
		}
		if ex0.Candidates().Count() <= 2 || ex1.Candidates().Count() <= 2 {
			continue
		}
		if !ur.IsSubsetOf(ex0.Candidates()) || !ur.IsSubsetOf(ex1.Candidates()) {
			continue
		}

		if mv, err := t.checkType2(f, corners[:], ur, ex0, ex1, hooks); err != nil || mv != nil {
			return mv, err
		}

		shared := sharedHouses(ex0, ex1)
		for _, h := range shared {
			if mv, err := t.checkType3(corners[:], h, ur, ex0, ex1, hooks); err != nil || mv != nil {
				return mv, err
			}
		}
		for _, h := range shared {
			if mv, err := t.checkType4(corners[:], h, ur, d1, d2, ex0, ex1, hooks); err != nil || mv != nil {
				return mv, err
			}
		}
	}
	return nil, nil
}

func (t *UniqueRectangle) checkType1(corners [4]*engine.Cell, ur engine.CandidateMask, hooks *Hooks) (*core.Move, error) {
	bivalueCount := 0
	extraIdx := -1
	for i, c := range corners {
		if c.Candidates().Equals(ur) {
			bivalueCount++
		} else if ur.IsSubsetOf(c.Candidates()) {
			extraIdx = i
		}
	}
	if bivalueCount != 3 || extraIdx == -1 {
		return nil, nil
	}
	extra := corners[extraIdx]
	changedCells, elims, err := removeMaskFromEach([]*engine.Cell{extra}, ur)
	if err != nil {
		return nil, err
	}
	if len(changedCells) == 0 {
		return nil, nil
	}
	move := &core.Move{
		Technique:    t.name,
		Action:       "eliminate",
		Targets:      cellRefs(corners[:]),
		Eliminations: elims,
		Explanation:  fmt.Sprintf("Unique Rectangle Type 1: %s would form a deadly pattern; eliminate from %s", ur, extra.Coord()),
		Refs:         core.TechniqueRef{Title: t.name, Slug: t.slug + "-type-1"},
		Highlights:   core.Highlights{Primary: cellRefs(corners[:]), Secondary: cellRefs(changedCells)},
	}
	hooks.applied(move)
	return move, nil
}

func (t *UniqueRectangle) checkType2(f *engine.Field, corners []*engine.Cell, ur engine.CandidateMask, ex0, ex1 *engine.Cell, hooks *Hooks) (*core.Move, error) {
	extra0 := ex0.Candidates().Subtract(ur)
	extra1 := ex1.Candidates().Subtract(ur)
	if extra0.Count() != 1 || !extra0.Equals(extra1) {
		return nil, nil
	}
	x, _ := extra0.Only()

	common := f.CommonPeers(ex0, ex1)
	var targets []*engine.Cell
	for _, c := range common.Cells() {
		if containsCell(corners, c) || c.IsResolved() || !c.Candidates().Has(x) {
			continue
		}
		targets = append(targets, c)
	}
	changedCells, elims, err := removeCandidateFromEach(targets, x)
	if err != nil {
		return nil, err
	}
	if len(changedCells) == 0 {
		return nil, nil
	}
	move := &core.Move{
		Technique:    t.name,
		Action:       "eliminate",
		Digit:        x,
		Targets:      cellRefs(corners),
		Eliminations: elims,
		Explanation:  fmt.Sprintf("Unique Rectangle Type 2: %s plus shared extra %d at %s/%s; eliminate %d", ur, x, ex0.Coord(), ex1.Coord(), x),
		Refs:         core.TechniqueRef{Title: t.name, Slug: t.slug + "-type-2"},
		Highlights:   core.Highlights{Primary: cellRefs([]*engine.Cell{ex0, ex1}), Secondary: cellRefs(changedCells)},
	}
	hooks.applied(move)
	return move, nil
}

func (t *UniqueRectangle) checkType3(corners []*engine.Cell, house *engine.House, ur engine.CandidateMask, ex0, ex1 *engine.Cell, hooks *Hooks) (*core.Move, error) {
	extras := ex0.Candidates().Subtract(ur).Union(ex1.Candidates().Subtract(ur))
	k := extras.Count()
	if k == 0 {
		return nil, nil
	}

	var others []*engine.Cell
	for _, c := range house.Cells() {
		if c == ex0 || c == ex1 || c.IsResolved() {
			continue
		}
		if c.Candidates().IsSubsetOf(extras) {
			others = append(others, c)
		}
	}
	if len(others) != k-1 {
		return nil, nil
	}

	group := append([]*engine.Cell{ex0, ex1}, others...)
	var rest []*engine.Cell
	for _, c := range house.Cells() {
		if !c.IsResolved() && !containsCell(group, c) {
			rest = append(rest, c)
		}
	}
	changedCells, elims, err := removeMaskFromEach(rest, extras)
	if err != nil {
		return nil, err
	}
	if len(changedCells) == 0 {
		return nil, nil
	}
	move := &core.Move{
		Technique:    t.name,
		Action:       "eliminate",
		Targets:      cellRefs(corners),
		Eliminations: elims,
		Explanation:  fmt.Sprintf("Unique Rectangle Type 3: %s/%s act as a pseudo-cell on %s in %s", ex0.Coord(), ex1.Coord(), extras, house.Name()),
		Refs:         core.TechniqueRef{Title: t.name, Slug: t.slug + "-type-3"},
		Highlights:   core.Highlights{Primary: cellRefs(group), Secondary: cellRefs(changedCells)},
	}
	hooks.applied(move)
	return move, nil
}

func (t *UniqueRectangle) checkType4(corners []*engine.Cell, house *engine.House, ur engine.CandidateMask, d1, d2 int, ex0, ex1 *engine.Cell, hooks *Hooks) (*core.Move, error) {
	for _, locked := range [2]int{d1, d2} {
		other := d1
		if locked == d1 {
			other = d2
		}
		cells := house.CellSet().CellsWithCandidate(locked)
		if len(cells) != 2 || !containsCell(cells, ex0) || !containsCell(cells, ex1) {
			continue
		}
		changedCells, elims, err := removeCandidateFromEach([]*engine.Cell{ex0, ex1}, other)
		if err != nil {
			return nil, err
		}
		if len(changedCells) == 0 {
			continue
		}
		move := &core.Move{
			Technique:    t.name,
			Action:       "eliminate",
			Digit:        other,
			Targets:      cellRefs(corners),
			Eliminations: elims,
			Explanation:  fmt.Sprintf("Unique Rectangle Type 4: %d is locked to %s/%s in %s; eliminate %d", locked, ex0.Coord(), ex1.Coord(), house.Name(), other),
			Refs:         core.TechniqueRef{Title: t.name, Slug: t.slug + "-type-4"},
			Highlights:   core.Highlights{Primary: cellRefs([]*engine.Cell{ex0, ex1}), Secondary: cellRefs(changedCells)},
		}
		hooks.applied(move)
		return move, nil
	}
	return nil, nil
}

func sharedHouses(a, b *engine.Cell) []*engine.House {
	var out []*engine.House
	if a.RowHouse() == b.RowHouse() {
		out = append(out, a.RowHouse())
	}
	if a.ColHouse() == b.ColHouse() {
		out = append(out, a.ColHouse())
	}
	if a.BoxHouse() == b.BoxHouse() {
		out = append(out, a.BoxHouse())
	}
	return out
}
