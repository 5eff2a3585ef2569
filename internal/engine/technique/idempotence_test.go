package technique

import (
	"testing"

	"humansudoku/internal/engine"
)

// wikipediaEasyGivens is the classic "easy" example puzzle, solvable by
// naked and hidden singles alone.
var wikipediaEasyGivens = []int{
	5, 3, 0, 0, 7, 0, 0, 0, 0,
	6, 0, 0, 1, 9, 5, 0, 0, 0,
	0, 9, 8, 0, 0, 0, 0, 6, 0,
	8, 0, 0, 0, 6, 0, 0, 0, 3,
	4, 0, 0, 8, 0, 3, 0, 0, 1,
	7, 0, 0, 0, 2, 0, 0, 0, 6,
	0, 6, 0, 0, 0, 0, 2, 8, 0,
	0, 0, 0, 4, 1, 9, 0, 0, 5,
	0, 0, 0, 0, 8, 0, 0, 7, 9,
}

// TestEachTechniqueIsIdempotentOnARealPuzzle runs every registered
// technique repeatedly against the same field until none of them find
// anything further, then asserts a second full sweep changes nothing --
// no technique should ever re-find a move it already applied or flip
// back and forth.
func TestEachTechniqueIsIdempotentOnARealPuzzle(t *testing.T) {
	f, err := engine.NewField(9, wikipediaEasyGivens)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}

	techniques := NewRegistry().All()

	sweep := func() bool {
		changed := false
		for _, tech := range techniques {
			for {
				result, _, err := tech.Perform(f, nil)
				if err != nil {
					t.Fatalf("%s.Perform: %v", tech.Name(), err)
				}
				if result != Changed {
					break
				}
				changed = true
			}
		}
		return changed
	}

	for sweep() {
	}

	if sweep() {
		t.Fatal("expected a second full sweep over a quiescent field to find nothing")
	}
}
