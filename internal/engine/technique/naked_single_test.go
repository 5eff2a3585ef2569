package technique

import (
	"testing"

	"humansudoku/internal/engine"
)

var solvedGrid9 = []int{
	5, 3, 4, 6, 7, 8, 9, 1, 2,
	6, 7, 2, 1, 9, 5, 3, 4, 8,
	1, 9, 8, 3, 4, 2, 5, 6, 7,
	8, 5, 9, 7, 6, 1, 4, 2, 3,
	4, 2, 6, 8, 5, 3, 7, 9, 1,
	7, 1, 3, 9, 2, 4, 8, 5, 6,
	9, 6, 1, 5, 3, 7, 2, 8, 4,
	2, 8, 7, 4, 1, 9, 6, 3, 5,
	3, 4, 5, 2, 8, 6, 1, 7, 9,
}

func gridMissing(indices ...int) []int {
	g := make([]int, len(solvedGrid9))
	copy(g, solvedGrid9)
	for _, i := range indices {
		g[i] = 0
	}
	return g
}

func TestNakedSingleFindsTheOnlyRemainingCandidate(t *testing.T) {
	f, err := engine.NewField(9, gridMissing(0))
	if err != nil {
		t.Fatal(err)
	}
	nt := NewNakedSingle()

	result, move, err := nt.Perform(f, nil)
	if err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if result != Changed {
		t.Fatalf("result = %v, want Changed", result)
	}
	if move.Digit != 5 {
		t.Fatalf("digit = %d, want 5", move.Digit)
	}
	if got := cellAt(t, f, 1, 1).Value(); got != 5 {
		t.Fatalf("R1C1 = %d, want 5", got)
	}
}

func TestNakedSingleIsAlwaysEnabled(t *testing.T) {
	nt := NewNakedSingle()
	nt.SetEnabled(false)
	if !nt.Enabled() {
		t.Fatal("NakedSingle.SetEnabled(false) should be a no-op")
	}
}

func TestNakedSingleUnchangedOnASolvedBoard(t *testing.T) {
	f, err := engine.NewField(9, solvedGrid9)
	if err != nil {
		t.Fatal(err)
	}
	nt := NewNakedSingle()
	result, move, err := nt.Perform(f, nil)
	if err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if result != Unchanged || move != nil {
		t.Fatalf("result = %v, move = %v, want Unchanged/nil", result, move)
	}
}
