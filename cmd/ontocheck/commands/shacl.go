package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newShaclCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shacl [files...]",
		Short: "Validate data files against their SHACL constraint graphs",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			return c.app.ValidateFiles(cmd.Context(), args)
		},
	}
}
