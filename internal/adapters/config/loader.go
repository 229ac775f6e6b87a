// Package config provides the target registry loader for imago.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/imago/internal/core/domain"
	"go.trai.ch/imago/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the target file looked up in the working directory.
const DefaultFilename = "imago.yaml"

// FileConfigLoader implements ports.ConfigLoader using a YAML file, falling
// back to the compiled-in default target set when no file is present.
type FileConfigLoader struct {
	Filename string
	logger   ports.Logger
}

// NewLoader creates a FileConfigLoader for the default filename.
func NewLoader(log ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{
		Filename: DefaultFilename,
		logger:   log,
	}
}

// SetFile overrides the configuration file consulted by Load.
func (l *FileConfigLoader) SetFile(name string) {
	l.Filename = name
}

// Load reads the target configuration from the given working directory.
func (l *FileConfigLoader) Load(cwd string) (*domain.Registry, error) {
	path := filepath.Join(cwd, l.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Info("no " + l.Filename + " found, using built-in targets")
			return Defaults()
		}
		return nil, zerr.Wrap(err, "failed to read target file")
	}

	return Parse(data)
}

// Imagofile represents the structure of the imago.yaml target file.
// Targets are a sequence, not a map: declaration order is part of the
// contract (build and pull order) and must survive parsing.
type Imagofile struct {
	Version string      `yaml:"version"`
	Targets []TargetDTO `yaml:"targets"`
}

// TargetDTO represents a target definition in the configuration.
type TargetDTO struct {
	Name       string            `yaml:"name"`
	Tag        string            `yaml:"tag"`
	Context    string            `yaml:"context"`
	Dockerfile string            `yaml:"dockerfile"`
	Requires   []string          `yaml:"requires"`
	BuildArgs  map[string]string `yaml:"buildArgs"`
	Publish    bool              `yaml:"publish"`
}

// Parse decodes a target file and returns the validated registry.
// Targets must be declared leaves-first: a prerequisite referenced before its
// own declaration is an error, the same rule Register enforces.
func Parse(data []byte) (*domain.Registry, error) {
	var file Imagofile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse target file")
	}

	reg := domain.NewRegistry()
	for _, dto := range file.Targets {
		if dto.Name == "" {
			return nil, zerr.New("target with empty name")
		}
		if dto.Tag == "" {
			return nil, zerr.With(zerr.New("target without tag"), "target", dto.Name)
		}

		target := &domain.Target{
			Name:          domain.NewInternedString(dto.Name),
			Prerequisites: internStrings(dto.Requires),
			Tag:           dto.Tag,
			Context:       dto.Context,
			Dockerfile:    dto.Dockerfile,
			BuildArgs:     dto.BuildArgs,
			Publishable:   dto.Publish,
		}
		if err := reg.Register(target); err != nil {
			return nil, err
		}
	}

	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return reg, nil
}

func internStrings(strs []string) []domain.InternedString {
	if len(strs) == 0 {
		return nil
	}
	res := make([]domain.InternedString, len(strs))
	for i, s := range strs {
		res[i] = domain.NewInternedString(s)
	}
	return res
}
