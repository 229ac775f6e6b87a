// Package domain contains the core domain models for the image target registry.
package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Registry is the static table of buildable targets. It is constructed once
// at process start and read-only afterwards. Declaration order is preserved:
// it drives the execution order of multi-target requests and the pull order
// of publishable targets.
type Registry struct {
	targets map[InternedString]Target
	order   []InternedString
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		targets: make(map[InternedString]Target),
	}
}

// Register adds a target to the registry.
// It returns ErrDuplicateTarget if the name is already taken and
// ErrUnknownPrerequisite if any prerequisite has not been registered yet.
// Requiring prerequisites to exist up front forces leaves-first registration,
// which structurally rules out cycles.
func (r *Registry) Register(t *Target) error {
	if _, exists := r.targets[t.Name]; exists {
		return zerr.With(ErrDuplicateTarget, "target", t.Name.String())
	}
	for _, pre := range t.Prerequisites {
		if _, ok := r.targets[pre]; !ok {
			return zerr.With(zerr.With(ErrUnknownPrerequisite, "target", t.Name.String()),
				"prerequisite", pre.String())
		}
	}
	r.targets[t.Name] = *t
	r.order = append(r.order, t.Name)
	return nil
}

// Resolve returns the target registered under the given name.
func (r *Registry) Resolve(name InternedString) (Target, error) {
	t, ok := r.targets[name]
	if !ok {
		return Target{}, zerr.With(ErrUnknownTarget, "target", name.String())
	}
	return t, nil
}

// Validate asserts that the prerequisite relation forms a DAG.
// Register already prevents cycles for registries built through it, but
// Validate is still run after loading so a hand-edited configuration can
// never smuggle one in.
func (r *Registry) Validate() error {
	visited := make(map[InternedString]int, len(r.targets)) // 0: unvisited, 1: visiting, 2: visited
	var path []InternedString

	var visit func(u InternedString) error
	visit = func(u InternedString) error {
		visited[u] = 1
		path = append(path, u)

		t, exists := r.targets[u]
		if !exists {
			return zerr.With(ErrUnknownPrerequisite, "prerequisite", u.String())
		}

		for _, pre := range t.Prerequisites {
			if visited[pre] == 1 {
				return r.cycleError(path, pre)
			}
			if visited[pre] == 0 {
				if err := visit(pre); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		return nil
	}

	for _, name := range r.order {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return err
			}
		}
	}
	return nil
}

// cycleError constructs an error carrying the offending cycle path.
func (r *Registry) cycleError(path []InternedString, pre InternedString) error {
	cyclePath := ""
	startIdx := -1
	for i, node := range path {
		if node == pre {
			startIdx = i
			break
		}
	}
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i].String() + " -> "
	}
	cyclePath += pre.String()
	return zerr.With(ErrPrerequisiteCycle, "cycle", cyclePath)
}

// Walk returns an iterator that yields targets in declaration order.
func (r *Registry) Walk() iter.Seq[Target] {
	return func(yield func(Target) bool) {
		for _, name := range r.order {
			if !yield(r.targets[name]) {
				return
			}
		}
	}
}

// Publishable returns the publishable targets in declaration order.
// This is the fixed list the pull fast path works through.
func (r *Registry) Publishable() []Target {
	var out []Target
	for _, name := range r.order {
		if t := r.targets[name]; t.Publishable {
			out = append(out, t)
		}
	}
	return out
}

// SortRequested orders the requested names by declaration order, so that
// "imago build dev base" and "imago build base dev" execute identically.
// Unknown names are passed through untouched; resolution reports them.
func (r *Registry) SortRequested(names []InternedString) []InternedString {
	pos := make(map[InternedString]int, len(r.order))
	for i, name := range r.order {
		pos[name] = i
	}

	sorted := make([]InternedString, len(names))
	copy(sorted, names)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && rank(pos, sorted[j]) < rank(pos, sorted[j-1]); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	return sorted
}

func rank(pos map[InternedString]int, name InternedString) int {
	if i, ok := pos[name]; ok {
		return i
	}
	return len(pos)
}

// TargetCount returns the number of registered targets.
func (r *Registry) TargetCount() int {
	return len(r.targets)
}
