package engine

import "testing"

func TestCandidateMaskSetClearHas(t *testing.T) {
	var c CandidateMask
	if c.Has(3) {
		t.Fatal("empty mask should not have candidate 3")
	}
	c = c.Set(3)
	if !c.Has(3) {
		t.Fatal("expected 3 to be set")
	}
	c = c.Clear(3)
	if c.Has(3) {
		t.Fatal("expected 3 to be cleared")
	}
}

func TestCandidateMaskCountAndOnly(t *testing.T) {
	c := MaskFromValues([]int{2, 5})
	if c.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", c.Count())
	}
	if _, ok := c.Only(); ok {
		t.Fatal("Only() should fail for a two-bit mask")
	}

	single := MaskFromValues([]int{7})
	v, ok := single.Only()
	if !ok || v != 7 {
		t.Fatalf("Only() = (%d, %v), want (7, true)", v, ok)
	}
}

func TestCandidateMaskToSliceOrdered(t *testing.T) {
	c := MaskFromValues([]int{9, 1, 5})
	got := c.ToSlice()
	want := []int{1, 5, 9}
	if len(got) != len(want) {
		t.Fatalf("ToSlice() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ToSlice() = %v, want %v", got, want)
		}
	}
}

func TestCandidateMaskSetOps(t *testing.T) {
	a := MaskFromValues([]int{1, 2, 3})
	b := MaskFromValues([]int{2, 3, 4})

	if got := a.Intersect(b); !got.Equals(MaskFromValues([]int{2, 3})) {
		t.Errorf("Intersect = %v, want {2,3}", got)
	}
	if got := a.Union(b); !got.Equals(MaskFromValues([]int{1, 2, 3, 4})) {
		t.Errorf("Union = %v, want {1,2,3,4}", got)
	}
	if got := a.Subtract(b); !got.Equals(MaskFromValues([]int{1})) {
		t.Errorf("Subtract = %v, want {1}", got)
	}
}

func TestFullMaskAndComplement(t *testing.T) {
	full := FullMask(9)
	if full.Count() != 9 {
		t.Fatalf("FullMask(9).Count() = %d, want 9", full.Count())
	}
	c := MaskFromValues([]int{1, 2})
	comp := c.Complement(9)
	if comp.Count() != 7 {
		t.Fatalf("Complement count = %d, want 7", comp.Count())
	}
	if comp.Has(1) || comp.Has(2) {
		t.Fatal("complement should not contain original bits")
	}
}

func TestCandidateMaskOutOfRangeIsHarmless(t *testing.T) {
	var c CandidateMask
	if c.Has(0) || c.Has(99) {
		t.Fatal("out-of-range queries must return false, not panic")
	}
	if got := c.Set(0); got != c {
		t.Fatal("Set(0) must be a no-op")
	}
}
