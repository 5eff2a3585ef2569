package technique

import "testing"

func TestYWingEliminatesFromACellSeeingBothPincers(t *testing.T) {
	f := emptyField(t, 9)

	pivot := cellAt(t, f, 1, 1)
	restrictTo(t, pivot, 1, 2)

	xz := cellAt(t, f, 1, 5) // shares row 1 with pivot
	restrictTo(t, xz, 1, 3)

	yz := cellAt(t, f, 5, 1) // shares column 1 with pivot
	restrictTo(t, yz, 2, 3)

	target := cellAt(t, f, 5, 5) // shares column 5 with xz, row 5 with yz
	restrictTo(t, target, 3, 9)

	yw := NewYWing()
	result, move, err := yw.Perform(f, nil)
	if err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if result != Changed {
		t.Fatalf("result = %v, want Changed", result)
	}
	if move.Digit != 3 {
		t.Fatalf("digit = %d, want 3", move.Digit)
	}
	if target.Candidates().Has(3) {
		t.Fatal("R5C5 should have lost candidate 3 to the XY-Wing")
	}
	if !target.Candidates().Has(9) {
		t.Fatal("R5C5 should keep candidate 9")
	}
}
