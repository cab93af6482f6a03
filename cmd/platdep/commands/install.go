package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Resolve and install platform-specific dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Install(cmd.Context(), options(cmd))
		},
	}
	addApplyFlags(cmd)
	return cmd
}

func (c *CLI) newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Re-resolve and apply platform-specific dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Update(cmd.Context(), options(cmd))
		},
	}
	addApplyFlags(cmd)
	return cmd
}

func addApplyFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("strategy", "s", "", "Apply strategy overriding the configuration (link, download, clone)")
	cmd.Flags().Bool("strict", false, "Fail when a requirement has no variant for the platform")
	addPlatformFlags(cmd)
}
