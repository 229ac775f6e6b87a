package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List registered targets, their prerequisites and tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targets, err := c.app.Targets()
			if err != nil {
				return err
			}

			for _, t := range targets {
				line := fmt.Sprintf("%-12s %s", t.Name.String(), t.Tag)
				if len(t.Prerequisites) > 0 {
					names := make([]string, len(t.Prerequisites))
					for i, p := range t.Prerequisites {
						names[i] = p.String()
					}
					line += "  (requires " + strings.Join(names, ", ") + ")"
				}
				if t.Publishable {
					line += "  [publishable]"
				}
				cmd.Println(line)
			}
			return nil
		},
	}
}
