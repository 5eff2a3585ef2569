package technique

import "strings"

// Registry holds the fixed catalog of techniques a Resolver runs, in
// registration order. Grounded on the teacher's TechniqueRegistry in
// technique_registry.go, trimmed to a closed set of ten techniques and
// simplified: this registry has no tier-grouped lookup table, since Tier
// is carried only as descriptive metadata, not an execution grouping --
// order is a single flat list.
type Registry struct {
	ordered []Technique
	bySlug  map[string]Technique
}

// NewRegistry builds the default registry with every technique enabled,
// in the pedagogical order a human solver reaches for them: singles,
// subsets, intersections, fish, wings, coloring, then uniqueness.
func NewRegistry() *Registry {
	r := &Registry{bySlug: make(map[string]Technique)}
	for _, t := range []Technique{
		NewNakedSingle(),
		NewHiddenSingle(),
		NewNakedGroup(),
		NewHiddenGroup(),
		NewIntersections(),
		NewXWing(),
		NewYWing(),
		NewXYZWing(),
		NewBiLocationColoring(),
		NewUniqueRectangle(),
	} {
		r.register(t)
	}
	return r
}

func (r *Registry) register(t Technique) {
	r.ordered = append(r.ordered, t)
	r.bySlug[strings.ToLower(t.Slug())] = t
}

// All returns every technique in registration order.
func (r *Registry) All() []Technique { return r.ordered }

// BySlug looks up a technique by its slug, case-insensitively.
func (r *Registry) BySlug(slug string) (Technique, bool) {
	t, ok := r.bySlug[strings.ToLower(slug)]
	return t, ok
}

// ByName looks up a technique by its display name, case-insensitively.
func (r *Registry) ByName(name string) (Technique, bool) {
	for _, t := range r.ordered {
		if strings.EqualFold(t.Name(), name) {
			return t, true
		}
	}
	return nil, false
}

// SetEnabled toggles a technique by slug, returning false if the slug is
// unknown.
func (r *Registry) SetEnabled(slug string, enabled bool) bool {
	t, ok := r.BySlug(slug)
	if !ok {
		return false
	}
	t.SetEnabled(enabled)
	return true
}
