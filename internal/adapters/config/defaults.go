package config

import "go.trai.ch/imago/internal/core/domain"

// defaultTargets is the compiled-in development image fleet, declared
// leaves-first. The chain base -> toolkit -> dev carries the heavyweight
// dependency stack; relay and database are services that sit beside it.
var defaultTargets = []TargetDTO{
	{
		Name:    "base",
		Tag:     "imago/base:latest",
		Context: "images/base",
		Publish: true,
	},
	{
		Name:     "toolkit",
		Tag:      "imago/toolkit:latest",
		Context:  "images/toolkit",
		Requires: []string{"base"},
		Publish:  true,
	},
	{
		Name:     "dev",
		Tag:      "imago/dev:latest",
		Context:  "images/dev",
		Requires: []string{"toolkit"},
		Publish:  true,
	},
	{
		Name:     "relay",
		Tag:      "imago/relay:latest",
		Context:  "images/relay",
		Requires: []string{"base"},
		Publish:  true,
	},
	{
		Name:    "database",
		Tag:     "imago/database:latest",
		Context: "images/database",
		Publish: true,
	},
}

// Defaults returns the built-in registry.
func Defaults() (*domain.Registry, error) {
	reg := domain.NewRegistry()
	for _, dto := range defaultTargets {
		target := &domain.Target{
			Name:          domain.NewInternedString(dto.Name),
			Prerequisites: internStrings(dto.Requires),
			Tag:           dto.Tag,
			Context:       dto.Context,
			BuildArgs:     dto.BuildArgs,
			Publishable:   dto.Publish,
		}
		if err := reg.Register(target); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
