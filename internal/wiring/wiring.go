// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/imago/internal/adapters/config"
	_ "go.trai.ch/imago/internal/adapters/docker"
	_ "go.trai.ch/imago/internal/adapters/journal"
	_ "go.trai.ch/imago/internal/adapters/logger"
	_ "go.trai.ch/imago/internal/adapters/term"
	// Register app and engine nodes.
	_ "go.trai.ch/imago/internal/app"
	_ "go.trai.ch/imago/internal/engine/executor"
)
