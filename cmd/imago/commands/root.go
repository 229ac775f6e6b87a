// Package commands implements the CLI commands for the imago image builder.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/imago/internal/core/domain"
)

// CLI represents the command line interface for imago.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	SetConfigFile(name string)
	Build(ctx context.Context, targetNames []string, opts domain.BuildOptions) error
	PullAll(ctx context.Context) error
	Targets() ([]domain.Target, error)
	Status() ([]domain.RunRecord, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "imago",
		Short:         "Build the development image fleet in dependency order",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			a.SetConfigFile(configFile)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"Target file to load instead of imago.yaml")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newPullCmd())
	rootCmd.AddCommand(c.newTargetsCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects usage and command output. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
