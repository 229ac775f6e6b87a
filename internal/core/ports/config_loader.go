package ports

import "go.trai.ch/imago/internal/core/domain"

// ConfigLoader defines the interface for loading the target registry.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the target configuration from the given working directory
	// and returns the validated registry. When no configuration file is
	// present the built-in default target set is returned.
	Load(cwd string) (*domain.Registry, error)

	// SetFile overrides the configuration file consulted by Load.
	SetFile(name string)
}
