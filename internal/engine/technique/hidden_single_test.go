package technique

import "testing"

func TestHiddenSingleFindsTheOnlyCellForADigit(t *testing.T) {
	f := emptyField(t, 9)

	target := cellAt(t, f, 1, 1)
	restrictTo(t, target, 1, 5, 9)

	for col := 2; col <= 9; col++ {
		eliminate(t, cellAt(t, f, 1, col), 5)
	}

	ht := NewHiddenSingle()
	result, move, err := ht.Perform(f, nil)
	if err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if result != Changed {
		t.Fatalf("result = %v, want Changed", result)
	}
	if move.Digit != 5 {
		t.Fatalf("digit = %d, want 5", move.Digit)
	}
	if !target.IsResolved() || target.Value() != 5 {
		t.Fatalf("target cell = %v, want resolved to 5", target)
	}
}

func TestHiddenSingleDefersToAnAlreadyNakedCell(t *testing.T) {
	f := emptyField(t, 9)

	// R1C1 is already down to a single candidate; HiddenSingle must not
	// double-report it as its own find, even though it is also the only
	// cell of row 1 that still has 7.
	restrictTo(t, cellAt(t, f, 1, 1), 7)
	for col := 2; col <= 9; col++ {
		eliminate(t, cellAt(t, f, 1, col), 7)
	}

	ht := NewHiddenSingle()
	result, move, err := ht.Perform(f, nil)
	if err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if result != Unchanged || move != nil {
		t.Fatalf("result = %v, move = %v, want Unchanged/nil", result, move)
	}
}
