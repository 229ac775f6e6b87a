package domain

// AddUnchecked bypasses Register's prerequisite checks so tests can exercise
// Validate on registries that could only come from a corrupted source.
func (r *Registry) AddUnchecked(t *Target) {
	r.targets[t.Name] = *t
	r.order = append(r.order, t.Name)
}
