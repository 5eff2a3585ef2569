package engine

import "fmt"

// Coord is a (row, col) position on an N x N grid, 1-indexed in both
// dimensions to match how solvers and puzzle authors talk about cells.
// Coord is a pure value: it carries no pointer back into a Field, so it
// can be copied, compared, and used as a map key freely.
type Coord struct {
	Row, Col int
	N        int
}

// NewCoord builds a Coord for a grid of size n. Row and Col are 1-indexed.
func NewCoord(n, row, col int) Coord {
	return Coord{Row: row, Col: col, N: n}
}

// boxSize returns sqrt(n), the side length of one box. Field construction
// already validated that n is a perfect square, so this never rounds.
func boxSize(n int) int {
	for s := 1; s*s <= n; s++ {
		if s*s == n {
			return s
		}
	}
	return 0
}

// Box returns the 1-indexed box number, numbered left-to-right, top-to-
// bottom, the same order as rows and columns.
func (c Coord) Box() int {
	bs := boxSize(c.N)
	if bs == 0 {
		return 0
	}
	boxRow := (c.Row - 1) / bs
	boxCol := (c.Col - 1) / bs
	return boxRow*bs + boxCol + 1
}

// Index returns the 0-based linear index (row-1)*N + (col-1), the order
// puzzle strings are read in: row-major, top-to-bottom.
func (c Coord) Index() int {
	return (c.Row-1)*c.N + (c.Col - 1)
}

// Equal reports whether two coordinates name the same cell.
func (c Coord) Equal(o Coord) bool {
	return c.Row == o.Row && c.Col == o.Col
}

// Less orders coordinates by linear index, giving a stable row-major
// traversal order for sorting CellSets.
func (c Coord) Less(o Coord) bool {
	return c.Index() < o.Index()
}

// SameRow, SameCol and SameBox report whether two coordinates share that
// one house. They do not exclude c == o.
func (c Coord) SameRow(o Coord) bool { return c.Row == o.Row }
func (c Coord) SameCol(o Coord) bool { return c.Col == o.Col }
func (c Coord) SameBox(o Coord) bool { return c.Box() == o.Box() }

// IsPeerOf reports whether o shares a row, column, or box with c, and is
// not c itself. No cell is its own peer.
func (c Coord) IsPeerOf(o Coord) bool {
	if c.Equal(o) {
		return false
	}
	return c.SameRow(o) || c.SameCol(o) || c.SameBox(o)
}

func (c Coord) String() string {
	return fmt.Sprintf("R%dC%d", c.Row, c.Col)
}

// FormatDigit renders a 1-indexed digit using the plain/formatted puzzle
// alphabet: 1-9 as themselves, 10+ as letters (a=10, b=11, ...), matching
// how larger grids encode their givens.
func FormatDigit(digit int) string {
	if digit <= 0 {
		return "."
	}
	if digit <= 9 {
		return fmt.Sprintf("%d", digit)
	}
	return string(rune('a' + digit - 10))
}
