package technique

import "testing"

func TestXWingEliminatesAlongTheCrossColumns(t *testing.T) {
	f := emptyField(t, 9)

	for _, row := range []int{1, 4} {
		for col := 1; col <= 9; col++ {
			if col == 2 || col == 6 {
				continue
			}
			eliminate(t, cellAt(t, f, row, col), 5)
		}
	}

	xw := NewXWing()
	result, move, err := xw.Perform(f, nil)
	if err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if result != Changed {
		t.Fatalf("result = %v, want Changed", result)
	}
	if len(move.Eliminations) == 0 {
		t.Fatal("expected at least one elimination")
	}

	other := cellAt(t, f, 2, 2)
	if other.Candidates().Has(5) {
		t.Fatal("R2C2 should have lost candidate 5 via the X-Wing on rows 1/4, cols 2/6")
	}
}
