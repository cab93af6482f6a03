package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newPlatformCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "platform",
		Short: "Print the detected operating system and architecture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := c.app.Platform(options(cmd))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), p.String())
			return err
		},
	}
	addPlatformFlags(cmd)
	return cmd
}
