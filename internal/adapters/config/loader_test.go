package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/imago/internal/adapters/config"
	"go.trai.ch/imago/internal/core/domain"
	"go.trai.ch/imago/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestParse_ValidFile(t *testing.T) {
	content := `
version: "1"
targets:
  - name: base
    tag: imago/base:latest
    context: images/base
    publish: true
  - name: toolkit
    tag: imago/toolkit:latest
    context: images/toolkit
    dockerfile: images/toolkit/Dockerfile
    requires: [base]
    buildArgs:
      UBUNTU: "24.04"
  - name: database
    tag: imago/database:latest
    context: images/database
    publish: true
`
	reg, err := config.Parse([]byte(content))
	require.NoError(t, err)
	require.Equal(t, 3, reg.TargetCount())

	// Declaration order survives the YAML round trip.
	var names []string
	for target := range reg.Walk() {
		names = append(names, target.Name.String())
	}
	assert.Equal(t, []string{"base", "toolkit", "database"}, names)

	toolkit, err := reg.Resolve(domain.NewInternedString("toolkit"))
	require.NoError(t, err)
	assert.Equal(t, "images/toolkit/Dockerfile", toolkit.Dockerfile)
	assert.Equal(t, map[string]string{"UBUNTU": "24.04"}, toolkit.BuildArgs)
	assert.False(t, toolkit.Publishable)
	require.Len(t, toolkit.Prerequisites, 1)
	assert.Equal(t, "base", toolkit.Prerequisites[0].String())
}

func TestParse_DuplicateTarget(t *testing.T) {
	content := `
targets:
  - name: base
    tag: imago/base:latest
  - name: base
    tag: imago/base:other
`
	_, err := config.Parse([]byte(content))
	require.ErrorIs(t, err, domain.ErrDuplicateTarget)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "base", zErr.Metadata()["target"])
}

func TestParse_UnknownPrerequisite(t *testing.T) {
	// toolkit references base before base is declared; declarations are
	// leaves-first so this is a hard error, not a forward reference.
	content := `
targets:
  - name: toolkit
    tag: imago/toolkit:latest
    requires: [base]
  - name: base
    tag: imago/base:latest
`
	_, err := config.Parse([]byte(content))
	require.ErrorIs(t, err, domain.ErrUnknownPrerequisite)
}

func TestParse_MissingFields(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		_, err := config.Parse([]byte("targets:\n  - tag: imago/base:latest\n"))
		require.Error(t, err)
	})

	t.Run("empty tag", func(t *testing.T) {
		_, err := config.Parse([]byte("targets:\n  - name: base\n"))
		require.Error(t, err)

		var zErr *zerr.Error
		require.True(t, errors.As(err, &zErr))
		assert.Equal(t, "base", zErr.Metadata()["target"])
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := config.Parse([]byte("targets: [unclosed"))
		require.Error(t, err)
	})
}

func TestLoad_FileFromWorkingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tmpDir := t.TempDir()
	content := "targets:\n  - name: solo\n    tag: imago/solo:latest\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, config.DefaultFilename), []byte(content), 0o600))

	loader := config.NewLoader(mocks.NewMockLogger(ctrl))
	reg, err := loader.Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 1, reg.TargetCount())
}

func TestLoad_AlternateFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tmpDir := t.TempDir()
	content := "targets:\n  - name: solo\n    tag: imago/solo:latest\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "fleet.yaml"), []byte(content), 0o600))

	loader := config.NewLoader(mocks.NewMockLogger(ctrl))
	loader.SetFile("fleet.yaml")
	reg, err := loader.Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 1, reg.TargetCount())
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).Times(1)

	loader := config.NewLoader(log)
	reg, err := loader.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 5, reg.TargetCount())
}

func TestDefaults(t *testing.T) {
	reg, err := config.Defaults()
	require.NoError(t, err)
	require.NoError(t, reg.Validate())

	var names []string
	for target := range reg.Walk() {
		names = append(names, target.Name.String())
	}
	assert.Equal(t, []string{"base", "toolkit", "dev", "relay", "database"}, names)

	// Everything in the default fleet is published.
	assert.Len(t, reg.Publishable(), 5)
}
