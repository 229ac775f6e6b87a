package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/imago/cmd/imago/commands"
	"go.trai.ch/imago/internal/build"
	"go.trai.ch/imago/internal/core/domain"
)

type mockApp struct {
	buildFunc   func(ctx context.Context, targetNames []string, opts domain.BuildOptions) error
	pullAllFunc func(ctx context.Context) error
	targetsFunc func() ([]domain.Target, error)
	statusFunc  func() ([]domain.RunRecord, error)
	configFile  string
}

func (m *mockApp) SetConfigFile(name string) {
	m.configFile = name
}

func (m *mockApp) Build(ctx context.Context, targetNames []string, opts domain.BuildOptions) error {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, targetNames, opts)
	}
	return nil
}

func (m *mockApp) PullAll(ctx context.Context) error {
	if m.pullAllFunc != nil {
		return m.pullAllFunc(ctx)
	}
	return nil
}

func (m *mockApp) Targets() ([]domain.Target, error) {
	if m.targetsFunc != nil {
		return m.targetsFunc()
	}
	return nil, nil
}

func (m *mockApp) Status() ([]domain.RunRecord, error) {
	if m.statusFunc != nil {
		return m.statusFunc()
	}
	return nil, nil
}

func TestCommands_Build(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts domain.BuildOptions
		var capturedTargets []string
		called := false

		mock := &mockApp{
			buildFunc: func(_ context.Context, targetNames []string, opts domain.BuildOptions) error {
				capturedOpts = opts
				capturedTargets = targetNames
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build", "dev", "--no-cache", "--build-arg", "UBUNTU=24.04"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.True(t, capturedOpts.NoCache)
		assert.Equal(t, map[string]string{"UBUNTU": "24.04"}, capturedOpts.BuildArgs)
		assert.Equal(t, []string{"dev"}, capturedTargets)
	})

	t.Run("shows usage when no targets provided", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ []string, _ domain.BuildOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"build"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Usage:")
	})

	t.Run("rejects malformed build-arg", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ []string, _ domain.BuildOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"build", "dev", "--build-arg", "NOEQUALS"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "KEY=VALUE")
	})

	t.Run("returns error on build failure", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ []string, _ domain.BuildOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build", "base"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("config flag reaches the app", func(t *testing.T) {
		mock := &mockApp{}
		cli := commands.New(mock)
		cli.SetArgs([]string{"build", "base", "--config", "fleet.yaml"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "fleet.yaml", mock.configFile)
	})

	t.Run("unknown flag is an error", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"build", "base", "--frobnicate"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "frobnicate")
	})
}

func TestCommands_Pull(t *testing.T) {
	called := false
	mock := &mockApp{
		pullAllFunc: func(_ context.Context) error {
			called = true
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"pull"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, called)
}

func TestCommands_Targets(t *testing.T) {
	mock := &mockApp{
		targetsFunc: func() ([]domain.Target, error) {
			return []domain.Target{
				{Name: domain.NewInternedString("base"), Tag: "imago/base:latest", Publishable: true},
				{
					Name:          domain.NewInternedString("toolkit"),
					Tag:           "imago/toolkit:latest",
					Prerequisites: []domain.InternedString{domain.NewInternedString("base")},
				},
			}, nil
		},
	}

	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"targets"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "imago/base:latest")
	assert.Contains(t, out, "[publishable]")
	assert.Contains(t, out, "(requires base)")
}

func TestCommands_Status(t *testing.T) {
	t.Run("empty journal", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"status"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "no runs recorded yet")
	})

	t.Run("lists outcomes", func(t *testing.T) {
		mock := &mockApp{
			statusFunc: func() ([]domain.RunRecord, error) {
				return []domain.RunRecord{
					{Target: "base", Outcome: domain.OutcomeBuilt},
				}, nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"status"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "base")
		assert.Contains(t, buf.String(), "built")
	})
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), build.Version)
}
