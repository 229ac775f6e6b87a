package domain

import "maps"

// Target is one node of the build graph: a named image with the
// prerequisites that must exist before it can be built.
//
// Prerequisites reference other targets by name and are resolved against the
// registry the target is registered in. Declaration order of targets is
// meaningful: it fixes the build and pull order for the whole registry.
type Target struct {
	// Name identifies the target on the command line and in prerequisite
	// lists.
	Name InternedString
	// Prerequisites are the targets whose images must exist before this
	// one builds, in the order they are consulted.
	Prerequisites []InternedString
	// Tag is the full image reference the build produces, e.g.
	// "imago/base:latest". It is also the key for existence checks.
	Tag string
	// Context is the build context directory. Empty means the working
	// directory.
	Context string
	// Dockerfile overrides the context's default Dockerfile when set.
	Dockerfile string
	// BuildArgs are the target's own build arguments, overridable per run.
	BuildArgs map[string]string
	// Publishable marks targets whose images are pushed to the remote
	// registry and can therefore be pulled instead of built.
	Publishable bool
}

// BuildOptions carries the per-run build settings. They apply uniformly to
// every build action of the run, prerequisite builds included.
type BuildOptions struct {
	// NoCache disables the build backend's layer cache.
	NoCache bool
	// BuildArgs override target-level build arguments key by key.
	BuildArgs map[string]string
}

// EffectiveArgs merges the target's build args with the run-level overrides.
// Run-level values win. Returns nil when neither side has args.
func (o BuildOptions) EffectiveArgs(t *Target) map[string]string {
	if len(t.BuildArgs) == 0 && len(o.BuildArgs) == 0 {
		return nil
	}
	merged := make(map[string]string, len(t.BuildArgs)+len(o.BuildArgs))
	maps.Copy(merged, t.BuildArgs)
	maps.Copy(merged, o.BuildArgs)
	return merged
}
