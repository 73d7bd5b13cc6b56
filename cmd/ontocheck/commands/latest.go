package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/ontocheck/internal/core/domain"
)

func (c *CLI) newLatestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "latest [ontology-dirs...]",
		Short: "Verify each latest/ snapshot mirrors its newest versioned directory",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			report := domain.NewReport()
			err := c.app.CheckLatest(cmd.Context(), args, report)

			out := cmd.OutOrStdout()
			for _, entry := range report.Entries() {
				_, _ = fmt.Fprintln(out, entry)
			}
			return err
		},
	}
}
