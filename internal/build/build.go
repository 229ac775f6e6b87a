// Package build holds build-time information about the imago binary.
package build

// Version is the imago release version printed by `imago version`.
// It defaults to "dev" and is overwritten by -ldflags on release builds.
var Version = "dev"
