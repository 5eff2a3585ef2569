package engine

// CellSet is an ordered, duplicate-free collection of cell references. It
// supports the set algebra and bulk candidate operations a house or peer
// group needs: union, difference, intersection, bulk candidate queries and
// bulk candidate removal.
type CellSet struct {
	name  string
	cells []*Cell
	index map[*Cell]bool
}

// NewCellSet builds a CellSet from a slice of cells, deduplicating and
// preserving first-seen order.
func NewCellSet(name string, cells []*Cell) *CellSet {
	cs := &CellSet{name: name, index: make(map[*Cell]bool, len(cells))}
	for _, c := range cells {
		cs.add(c)
	}
	return cs
}

func (cs *CellSet) add(c *Cell) {
	if cs.index[c] {
		return
	}
	cs.index[c] = true
	cs.cells = append(cs.cells, c)
}

// Name returns the diagnostic name given at construction (e.g. "row 3").
func (cs *CellSet) Name() string { return cs.name }

// Cells returns the member cells in insertion order. Callers must not
// mutate the returned slice.
func (cs *CellSet) Cells() []*Cell { return cs.cells }

// Len returns the number of cells in the set.
func (cs *CellSet) Len() int { return len(cs.cells) }

// Contains reports whether c is a member.
func (cs *CellSet) Contains(c *Cell) bool { return cs.index[c] }

// Union returns a new CellSet containing every cell in cs or other.
func (cs *CellSet) Union(other *CellSet) *CellSet {
	out := NewCellSet(cs.name+"+"+other.name, cs.cells)
	for _, c := range other.cells {
		out.add(c)
	}
	return out
}

// Difference returns a new CellSet containing the cells in cs that are
// not in other.
func (cs *CellSet) Difference(other *CellSet) *CellSet {
	out := &CellSet{name: cs.name + "-" + other.name, index: make(map[*Cell]bool)}
	for _, c := range cs.cells {
		if !other.Contains(c) {
			out.add(c)
		}
	}
	return out
}

// Intersect returns a new CellSet containing the cells present in both
// cs and other.
func (cs *CellSet) Intersect(other *CellSet) *CellSet {
	out := &CellSet{name: cs.name + "&" + other.name, index: make(map[*Cell]bool)}
	for _, c := range cs.cells {
		if other.Contains(c) {
			out.add(c)
		}
	}
	return out
}

// CountWithCandidate returns how many member cells have v as a candidate.
func (cs *CellSet) CountWithCandidate(v int) int {
	n := 0
	for _, c := range cs.cells {
		if !c.IsResolved() && c.Candidates().Has(v) {
			n++
		}
	}
	return n
}

// CellsWithCandidate returns the member cells that have v as a candidate.
func (cs *CellSet) CellsWithCandidate(v int) []*Cell {
	var out []*Cell
	for _, c := range cs.cells {
		if !c.IsResolved() && c.Candidates().Has(v) {
			out = append(out, c)
		}
	}
	return out
}

// RemoveCandidateFromAll removes v from every member cell's candidate
// mask, returning true if any cell actually changed. It propagates the
// first ErrContradiction encountered.
func (cs *CellSet) RemoveCandidateFromAll(v int) (bool, error) {
	changed := false
	for _, c := range cs.cells {
		did, err := c.RemoveCandidate(v)
		if err != nil {
			return changed, err
		}
		changed = changed || did
	}
	return changed, nil
}

// RemoveMaskFromAll removes every bit of mask from every member cell,
// returning true if any cell actually changed.
func (cs *CellSet) RemoveMaskFromAll(mask CandidateMask) (bool, error) {
	changed := false
	for _, c := range cs.cells {
		did, err := c.RemoveCandidates(mask)
		if err != nil {
			return changed, err
		}
		changed = changed || did
	}
	return changed, nil
}

// Unresolved returns the subset of cells that have no value yet.
func (cs *CellSet) Unresolved() []*Cell {
	var out []*Cell
	for _, c := range cs.cells {
		if !c.IsResolved() {
			out = append(out, c)
		}
	}
	return out
}
