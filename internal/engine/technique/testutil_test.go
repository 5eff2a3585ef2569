package technique

import (
	"testing"

	"humansudoku/internal/engine"
)

// emptyField builds an N*N field with no givens, so every cell starts with
// the full 1..N candidate mask -- a blank slate for hand-crafting the exact
// candidate scenario a technique test wants to exercise.
func emptyField(t *testing.T, n int) *engine.Field {
	t.Helper()
	f, err := engine.NewField(n, make([]int, n*n))
	if err != nil {
		t.Fatalf("NewField(%d): %v", n, err)
	}
	return f
}

func cellAt(t *testing.T, f *engine.Field, row, col int) *engine.Cell {
	t.Helper()
	return f.Cell(engine.NewCoord(f.N(), row, col))
}

// restrictTo strips every candidate from c except those named in keep.
func restrictTo(t *testing.T, c *engine.Cell, keep ...int) {
	t.Helper()
	mask := engine.MaskFromValues(keep)
	toRemove := c.Candidates().Subtract(mask)
	for _, d := range toRemove.ToSlice() {
		if _, err := c.RemoveCandidate(d); err != nil {
			t.Fatalf("restrictTo %s: removing %d: %v", c.Coord(), d, err)
		}
	}
}

// eliminate removes v from c's candidates, failing the test if it was
// somehow already absent.
func eliminate(t *testing.T, c *engine.Cell, v int) {
	t.Helper()
	changed, err := c.RemoveCandidate(v)
	if err != nil {
		t.Fatalf("eliminate %d from %s: %v", v, c.Coord(), err)
	}
	if !changed {
		t.Fatalf("eliminate %d from %s: already absent", v, c.Coord())
	}
}
