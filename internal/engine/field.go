package engine

import "fmt"

// Field owns every cell and every house for one N x N grid. Cells and
// houses never own each other; both are owned exclusively by the Field,
// whose lifetime dominates every reference a technique or house holds.
// Peer relations are derived from Coord arithmetic and cached here, not
// stored as a bidirectional object graph.
type Field struct {
	n       int
	cells   []*Cell // row-major, length n*n
	rows    []*House
	columns []*House
	boxes   []*House
	houses  []*House // rows ++ columns ++ boxes, in that order

	peerCache       [][]*Cell // indexed by cell linear index
	rowPeerCache    [][]*Cell
	colPeerCache    [][]*Cell
	boxPeerCache    [][]*Cell
}

// NewField builds an N x N field from a slice of N*N givens (0 = empty,
// row-major, top-to-bottom). N must be a perfect square.
func NewField(n int, givens []int) (*Field, error) {
	if n <= 0 || boxSize(n) == 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNotPerfectSquare, n)
	}
	if len(givens) != n*n {
		return nil, fmt.Errorf("sudoku: expected %d givens, got %d", n*n, len(givens))
	}

	f := &Field{n: n}
	f.buildStructure()
	if err := f.load(givens); err != nil {
		return nil, err
	}
	return f, nil
}

// N returns the grid size.
func (f *Field) N() int { return f.n }

func (f *Field) buildStructure() {
	n := f.n
	f.cells = make([]*Cell, n*n)
	f.rows = make([]*House, n)
	f.columns = make([]*House, n)
	f.boxes = make([]*House, n)

	for i := 1; i <= n; i++ {
		f.rows[i-1] = newHouse(Row, i)
		f.columns[i-1] = newHouse(Column, i)
		f.boxes[i-1] = newHouse(Box, i)
	}

	for row := 1; row <= n; row++ {
		for col := 1; col <= n; col++ {
			coord := NewCoord(n, row, col)
			cell := &Cell{coord: coord, candidates: FullMask(n)}
			rowHouse := f.rows[row-1]
			colHouse := f.columns[col-1]
			boxHouse := f.boxes[coord.Box()-1]

			cell.rowHouse = rowHouse
			cell.colHouse = colHouse
			cell.boxHouse = boxHouse

			rowHouse.set.add(cell)
			colHouse.set.add(cell)
			boxHouse.set.add(cell)

			f.cells[coord.Index()] = cell
		}
	}

	f.houses = make([]*House, 0, 3*n)
	f.houses = append(f.houses, f.rows...)
	f.houses = append(f.houses, f.columns...)
	f.houses = append(f.houses, f.boxes...)

	f.buildPeerCaches()
}

// buildPeerCaches precomputes, per cell, the row peers, then the column
// peers not already counted, then the box peers not already counted --
// an add-if-absent order that keeps the combined peer list duplicate-free
// without a second pass.
func (f *Field) buildPeerCaches() {
	total := f.n * f.n
	f.peerCache = make([][]*Cell, total)
	f.rowPeerCache = make([][]*Cell, total)
	f.colPeerCache = make([][]*Cell, total)
	f.boxPeerCache = make([][]*Cell, total)

	for _, cell := range f.cells {
		idx := cell.coord.Index()
		seen := map[*Cell]bool{cell: true}

		for _, peer := range cell.rowHouse.Cells() {
			if peer != cell {
				f.rowPeerCache[idx] = append(f.rowPeerCache[idx], peer)
				if !seen[peer] {
					seen[peer] = true
					f.peerCache[idx] = append(f.peerCache[idx], peer)
				}
			}
		}
		for _, peer := range cell.colHouse.Cells() {
			if peer != cell {
				f.colPeerCache[idx] = append(f.colPeerCache[idx], peer)
				if !seen[peer] {
					seen[peer] = true
					f.peerCache[idx] = append(f.peerCache[idx], peer)
				}
			}
		}
		for _, peer := range cell.boxHouse.Cells() {
			if peer != cell {
				f.boxPeerCache[idx] = append(f.boxPeerCache[idx], peer)
				if !seen[peer] {
					seen[peer] = true
					f.peerCache[idx] = append(f.peerCache[idx], peer)
				}
			}
		}
	}
}

// load places givens directly (bypassing the peer-elimination dance
// SetValue performs during solving) and then derives every unresolved
// cell's candidate mask from canPlace-style scanning of its houses. This
// mirrors the teacher's NewBoard/InitCandidates split: givens are loaded
// all at once, not sequentially, so a puzzle with conflicting givens
// loads cleanly and is caught by IsValid() rather than erroring out of
// NewField.
func (f *Field) load(givens []int) error {
	for _, cell := range f.cells {
		cell.reset(FullMask(f.n))
	}
	for i, v := range givens {
		if v == 0 {
			continue
		}
		if v < 0 || v > f.n {
			return fmt.Errorf("%w: given %d at index %d outside 1..%d", ErrOutOfRange, v, i, f.n)
		}
		cell := f.cells[i]
		cell.value = v
		cell.isInitial = true
		cell.candidates = MaskFromValues([]int{v})
	}
	for _, cell := range f.cells {
		if cell.IsResolved() {
			continue
		}
		cell.candidates = f.possibleCandidates(cell)
	}
	return nil
}

// possibleCandidates computes the candidate mask an unresolved cell would
// have from scratch: every value not already resolved in one of its three
// houses.
func (f *Field) possibleCandidates(cell *Cell) CandidateMask {
	mask := FullMask(f.n)
	for _, peer := range f.Peers(cell).Cells() {
		if peer.IsResolved() {
			mask = mask.Clear(peer.Value())
		}
	}
	return mask
}

// Reload resets every cell and reloads new givens into the same Field,
// reusing its houses and peer caches -- the same Field can be handed a new
// puzzle without rebuilding its structure.
func (f *Field) Reload(givens []int) error {
	if len(givens) != f.n*f.n {
		return fmt.Errorf("sudoku: expected %d givens, got %d", f.n*f.n, len(givens))
	}
	return f.load(givens)
}

// Cell looks up the cell at coord.
func (f *Field) Cell(coord Coord) *Cell {
	return f.cells[coord.Index()]
}

// CellAt looks up the cell at 0-based linear index.
func (f *Field) CellAt(index int) *Cell {
	return f.cells[index]
}

// Cells returns every cell in row-major order.
func (f *Field) Cells() []*Cell { return f.cells }

// Rows, Columns, Boxes return the N houses of that kind, in index order.
func (f *Field) Rows() []*House    { return f.rows }
func (f *Field) Columns() []*House { return f.columns }
func (f *Field) Boxes() []*House   { return f.boxes }

// Houses returns all 3N houses: rows, then columns, then boxes.
func (f *Field) Houses() []*House { return f.houses }

// Peers returns every cell sharing a row, column, or box with c, excluding
// c itself: exactly 3(N-1) minus duplicates cells.
func (f *Field) Peers(c *Cell) *CellSet {
	return NewCellSet(fmt.Sprintf("peers(%s)", c.Coord()), f.peerCache[c.coord.Index()])
}

// RowPeers, ColPeers, BoxPeers return just the peers sharing that one
// house with c.
func (f *Field) RowPeers(c *Cell) []*Cell { return f.rowPeerCache[c.coord.Index()] }
func (f *Field) ColPeers(c *Cell) []*Cell { return f.colPeerCache[c.coord.Index()] }
func (f *Field) BoxPeers(c *Cell) []*Cell { return f.boxPeerCache[c.coord.Index()] }

// CommonPeers returns peers(c1) intersected with peers(c2).
func (f *Field) CommonPeers(c1, c2 *Cell) *CellSet {
	return f.Peers(c1).Intersect(f.Peers(c2))
}

// CommonHouses returns the houses (0, 1, or 2 of them) that contain both
// c1 and c2.
func (f *Field) CommonHouses(c1, c2 *Cell) []*House {
	var out []*House
	if c1 == c2 {
		return out
	}
	if c1.coord.SameRow(c2.coord) {
		out = append(out, c1.rowHouse)
	}
	if c1.coord.SameCol(c2.coord) {
		out = append(out, c1.colHouse)
	}
	if c1.coord.SameBox(c2.coord) {
		out = append(out, c1.boxHouse)
	}
	return out
}

// SeeEachOther reports whether c1 and c2 share any house and are distinct.
func (f *Field) SeeEachOther(c1, c2 *Cell) bool {
	return c1 != c2 && len(f.CommonHouses(c1, c2)) > 0
}

// IsValid reports whether no house contains a duplicated resolved value.
func (f *Field) IsValid() bool {
	for _, h := range f.houses {
		if !h.IsValid() {
			return false
		}
	}
	return true
}

// HasEmptyCells reports whether any cell is still unresolved.
func (f *Field) HasEmptyCells() bool {
	for _, c := range f.cells {
		if !c.IsResolved() {
			return true
		}
	}
	return false
}

// IsSolved reports whether every cell is resolved and the board is valid.
func (f *Field) IsSolved() bool {
	return !f.HasEmptyCells() && f.IsValid()
}

// Values returns the current board as a flat, row-major slice (0 for
// unresolved cells), the inverse of the givens slice NewField accepts.
func (f *Field) Values() []int {
	out := make([]int, len(f.cells))
	for i, c := range f.cells {
		out[i] = c.Value()
	}
	return out
}

// Clone deep-copies the field: a fresh Field with identical cell values,
// candidates, and isInitial flags, but independent mutable state.
func (f *Field) Clone() *Field {
	clone, _ := NewField(f.n, make([]int, f.n*f.n)) // empty scaffold, same N
	for i, c := range f.cells {
		clone.cells[i].value = c.value
		clone.cells[i].isInitial = c.isInitial
		clone.cells[i].candidates = c.candidates
	}
	return clone
}
