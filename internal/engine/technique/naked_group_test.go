package technique

import "testing"

func TestNakedGroupFindsANakedPairAndEliminates(t *testing.T) {
	f := emptyField(t, 9)

	restrictTo(t, cellAt(t, f, 1, 1), 1, 2)
	restrictTo(t, cellAt(t, f, 1, 2), 1, 2)
	restrictTo(t, cellAt(t, f, 1, 3), 1, 3)

	ng := NewNakedGroup()
	result, move, err := ng.Perform(f, nil)
	if err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if result != Changed {
		t.Fatalf("result = %v, want Changed", result)
	}
	if len(move.Eliminations) == 0 {
		t.Fatal("expected at least one elimination")
	}

	c3 := cellAt(t, f, 1, 3)
	if c3.Candidates().Has(1) {
		t.Fatal("R1C3 should have lost candidate 1 to the naked pair")
	}
	if !c3.Candidates().Has(3) {
		t.Fatal("R1C3 should keep candidate 3")
	}
}

func TestNakedGroupUnchangedWithoutAMatchingGroup(t *testing.T) {
	f := emptyField(t, 9)
	restrictTo(t, cellAt(t, f, 1, 1), 1, 2)
	restrictTo(t, cellAt(t, f, 1, 2), 1, 2, 3)

	ng := NewNakedGroup()
	result, _, err := ng.Perform(f, nil)
	if err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if result != Unchanged {
		t.Fatalf("result = %v, want Unchanged", result)
	}
}
