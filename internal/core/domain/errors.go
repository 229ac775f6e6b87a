package domain

import "go.trai.ch/zerr"

var (
	// ErrDuplicateTarget is returned when registering a target whose name is already taken.
	ErrDuplicateTarget = zerr.New("duplicate target")

	// ErrUnknownPrerequisite is returned when a target lists a prerequisite that is not registered yet.
	// Registration is leaves-first, so a forward reference is always an error.
	ErrUnknownPrerequisite = zerr.New("unknown prerequisite")

	// ErrPrerequisiteCycle is returned when the prerequisite relation is not a DAG.
	ErrPrerequisiteCycle = zerr.New("prerequisite cycle detected")

	// ErrUnknownTarget is returned when a requested target is not in the registry.
	ErrUnknownTarget = zerr.New("unknown target")

	// ErrOracleUnavailable is returned when the local image store cannot be queried at all.
	// It is deliberately distinct from "image not found" so that an unreachable
	// daemon does not masquerade as a missing image and trigger rebuilds.
	ErrOracleUnavailable = zerr.New("image store unavailable")

	// ErrBuildFailed is returned when a build action reports failure.
	ErrBuildFailed = zerr.New("build failed")

	// ErrPullFailed is returned when a pull action reports failure.
	ErrPullFailed = zerr.New("pull failed")

	// ErrNoTargetsSpecified is returned when a build run is requested with no targets.
	ErrNoTargetsSpecified = zerr.New("no targets specified")
)
