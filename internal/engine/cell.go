package engine

import "fmt"

// Cell is a single grid position: either an unresolved cell carrying a
// candidate mask, or a resolved cell carrying a value. Both states are
// exposed through the same struct so techniques can query either without
// a type switch, matching the teacher's Board.Cells/Candidates split but
// keyed per-cell instead of by two parallel arrays.
type Cell struct {
	coord      Coord
	value      int
	candidates CandidateMask
	isInitial  bool

	rowHouse *House
	colHouse *House
	boxHouse *House
}

// Coord returns the cell's immutable position.
func (c *Cell) Coord() Coord { return c.coord }

// Value returns the resolved value, or 0 if the cell is unresolved.
func (c *Cell) Value() int { return c.value }

// Candidates returns the current candidate mask. For a resolved cell this
// is the singleton mask for its value.
func (c *Cell) Candidates() CandidateMask { return c.candidates }

// IsInitial reports whether the value came from the puzzle input rather
// than from solving.
func (c *Cell) IsInitial() bool { return c.isInitial }

// IsResolved reports whether the cell has a value.
func (c *Cell) IsResolved() bool { return c.value != 0 }

// Houses returns the cell's row, column, and box houses, in that order.
// Every cell belongs to exactly these three houses.
func (c *Cell) Houses() [3]*House {
	return [3]*House{c.rowHouse, c.colHouse, c.boxHouse}
}

// RowHouse, ColHouse, BoxHouse give direct access to one house.
func (c *Cell) RowHouse() *House { return c.rowHouse }
func (c *Cell) ColHouse() *House { return c.colHouse }
func (c *Cell) BoxHouse() *House { return c.boxHouse }

// SetValue resolves the cell to v, shrinks its candidate mask to the
// singleton {v}, and removes v as a candidate from every peer in its
// three houses. If that removal would leave any peer with zero
// candidates, SetValue returns ErrContradiction; the cell itself is still
// left resolved to v (the caller -- Resolver -- treats this as a terminal
// failure and does not roll back, since the engine never backtracks).
func (c *Cell) SetValue(v int, isInitial bool) error {
	if v < 1 || v > c.coord.N {
		return fmt.Errorf("%w: value %d outside 1..%d", ErrOutOfRange, v, c.coord.N)
	}
	if !c.candidates.Has(v) {
		return fmt.Errorf("%w: %d is not a candidate of %s", ErrContradiction, v, c.coord)
	}

	c.value = v
	c.candidates = MaskFromValues([]int{v})
	c.isInitial = isInitial

	for _, h := range c.Houses() {
		for _, peer := range h.Cells() {
			if peer == c {
				continue
			}
			if _, err := peer.RemoveCandidate(v); err != nil {
				return err
			}
		}
	}
	return nil
}

// RemoveCandidate clears v from the candidate mask. It is a no-op
// returning (false, nil) if the cell is resolved or v is not currently a
// candidate -- techniques may call this speculatively without checking
// first. It returns ErrContradiction if removing v would leave the cell
// with zero candidates.
func (c *Cell) RemoveCandidate(v int) (bool, error) {
	if v < 1 || v > c.coord.N {
		return false, fmt.Errorf("%w: value %d outside 1..%d", ErrOutOfRange, v, c.coord.N)
	}
	if c.IsResolved() {
		return false, nil
	}
	if !c.candidates.Has(v) {
		return false, nil
	}
	next := c.candidates.Clear(v)
	if next.IsEmpty() {
		return false, fmt.Errorf("%w: removing %d from %s leaves no candidates", ErrContradiction, v, c.coord)
	}
	c.candidates = next
	return true, nil
}

// RemoveCandidates clears every bit of mask from the candidate mask,
// applying the same no-op and contradiction rules as RemoveCandidate.
func (c *Cell) RemoveCandidates(mask CandidateMask) (bool, error) {
	if c.IsResolved() {
		return false, nil
	}
	overlap := c.candidates.Intersect(mask)
	if overlap.IsEmpty() {
		return false, nil
	}
	next := c.candidates.Subtract(mask)
	if next.IsEmpty() {
		return false, fmt.Errorf("%w: removing %s from %s leaves no candidates", ErrContradiction, mask, c.coord)
	}
	c.candidates = next
	return true, nil
}

// reset clears a cell back to an unresolved state with the given
// candidate mask, for reloading a puzzle into an existing Field.
func (c *Cell) reset(candidates CandidateMask) {
	c.value = 0
	c.isInitial = false
	c.candidates = candidates
}

func (c *Cell) String() string {
	if c.IsResolved() {
		return FormatDigit(c.value)
	}
	return c.candidates.String()
}
