package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the latest recorded outcome per target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := c.app.Status()
			if err != nil {
				return err
			}

			if len(records) == 0 {
				cmd.Println("no runs recorded yet")
				return nil
			}

			for _, rec := range records {
				line := fmt.Sprintf("%-12s %-8s %s", rec.Target, rec.Outcome, rec.Timestamp.Format(time.RFC3339))
				if rec.Duration > 0 {
					line += fmt.Sprintf("  (%s)", rec.Duration.Round(time.Millisecond))
				}
				cmd.Println(line)
			}
			return nil
		},
	}
}
