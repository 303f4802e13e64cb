package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [targets...]",
		Short: "Evaluate the given targets, or \"all\" for every named task",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			jobs, err := cmd.Flags().GetInt("jobs")
			if err != nil {
				return err
			}
			keepGoing, err := cmd.Flags().GetBool("keep-going")
			if err != nil {
				return err
			}
			return c.app.Run(cmd.Context(), args, jobs, !keepGoing)
		},
	}
	return cmd
}
