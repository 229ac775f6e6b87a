package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/imago/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	var (
		noCache   bool
		buildArgs []string
	)

	cmd := &cobra.Command{
		Use:   "build [targets...]",
		Short: "Build the named targets, creating missing prerequisites first",
		Long: `Build the named targets in registry order. A requested target is always
rebuilt; its prerequisites are built only when their image does not exist
locally yet. The first failure aborts the run.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// No default action: usage only, nothing is built.
				return cmd.Help()
			}

			overrides, err := parseBuildArgs(buildArgs)
			if err != nil {
				return err
			}

			opts := domain.BuildOptions{
				NoCache:   noCache,
				BuildArgs: overrides,
			}
			return c.app.Build(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Disable the builder's layer cache for every build in this run")
	cmd.Flags().StringArrayVar(&buildArgs, "build-arg", nil, "Override a build arg as KEY=VALUE (repeatable)")

	return cmd
}

// parseBuildArgs turns repeated KEY=VALUE flags into a map.
func parseBuildArgs(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, zerr.With(zerr.New("build-arg must be KEY=VALUE"), "arg", pair)
		}
		out[k] = v
	}
	return out, nil
}
