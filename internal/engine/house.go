package engine

import "fmt"

// HouseKind tags which of the three house families a House belongs to.
// All three share the same CellSet-backed behavior; the kind exists for
// diagnostics and for intersection arithmetic (Intersections technique).
type HouseKind int

const (
	Row HouseKind = iota
	Column
	Box
)

func (k HouseKind) String() string {
	switch k {
	case Row:
		return "row"
	case Column:
		return "column"
	case Box:
		return "box"
	default:
		return "house"
	}
}

// House is a CellSet of exactly N cells that must contain each value
// 1..N exactly once among resolved cells, and at least once across
// resolved values and candidates.
type House struct {
	kind  HouseKind
	index int // 1-indexed row/column/box number
	set   *CellSet
}

func newHouse(kind HouseKind, index int) *House {
	return &House{kind: kind, index: index, set: &CellSet{name: fmt.Sprintf("%s %d", kind, index), index: make(map[*Cell]bool)}}
}

// Kind returns whether this is a row, column, or box house.
func (h *House) Kind() HouseKind { return h.kind }

// Index returns the 1-indexed row/column/box number.
func (h *House) Index() int { return h.index }

// Cells returns the N member cells in row-major order.
func (h *House) Cells() []*Cell { return h.set.Cells() }

// CellSet exposes the underlying set for union/difference/intersection
// arithmetic (used by the Intersections technique to compute I, Bo, Lo).
func (h *House) CellSet() *CellSet { return h.set }

// Name returns a diagnostic label, e.g. "row 3".
func (h *House) Name() string { return h.set.Name() }

// IsValidValue reports whether v appears at most once among resolved
// cells in this house.
func (h *House) IsValidValue(v int) bool {
	seen := false
	for _, c := range h.Cells() {
		if c.Value() == v {
			if seen {
				return false
			}
			seen = true
		}
	}
	return true
}

// IsValid reports whether no value is duplicated among this house's
// resolved cells.
func (h *House) IsValid() bool {
	n := len(h.Cells())
	for v := 1; v <= n; v++ {
		if !h.IsValidValue(v) {
			return false
		}
	}
	return true
}
