package technique

import "testing"

func TestNewRegistryRegistersAllTenTechniquesInOrder(t *testing.T) {
	r := NewRegistry()
	all := r.All()
	if len(all) != 10 {
		t.Fatalf("len(All()) = %d, want 10", len(all))
	}
	wantSlugs := []string{
		"naked-single", "hidden-single", "naked-group", "hidden-group",
		"intersections", "x-wing", "xy-wing", "xyz-wing",
		"bi-location-coloring", "unique-rectangle",
	}
	for i, want := range wantSlugs {
		if got := all[i].Slug(); got != want {
			t.Fatalf("All()[%d].Slug() = %q, want %q", i, got, want)
		}
	}
}

func TestRegistryBySlugIsCaseInsensitive(t *testing.T) {
	r := NewRegistry()
	tech, ok := r.BySlug("X-WING")
	if !ok {
		t.Fatal("expected to find x-wing by uppercase slug")
	}
	if tech.Slug() != "x-wing" {
		t.Fatalf("Slug() = %q, want x-wing", tech.Slug())
	}
	if _, ok := r.BySlug("not-a-technique"); ok {
		t.Fatal("expected BySlug to miss on an unknown slug")
	}
}

func TestRegistryByNameIsCaseInsensitive(t *testing.T) {
	r := NewRegistry()
	tech, ok := r.ByName("naked single")
	if !ok {
		t.Fatal("expected to find Naked Single by lowercase name")
	}
	if tech.Slug() != "naked-single" {
		t.Fatalf("Slug() = %q, want naked-single", tech.Slug())
	}
}

func TestRegistrySetEnabledTogglesAKnownTechnique(t *testing.T) {
	r := NewRegistry()
	tech, ok := r.BySlug("naked-group")
	if !ok {
		t.Fatal("expected to find naked-group")
	}
	if !tech.Enabled() {
		t.Fatal("expected naked-group to start enabled")
	}

	if !r.SetEnabled("naked-group", false) {
		t.Fatal("SetEnabled should succeed for a known slug")
	}
	if tech.Enabled() {
		t.Fatal("expected naked-group to be disabled after SetEnabled(false)")
	}

	if r.SetEnabled("not-a-technique", false) {
		t.Fatal("SetEnabled should fail for an unknown slug")
	}
}
