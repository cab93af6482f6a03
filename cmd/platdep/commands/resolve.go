package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Show which variant each requirement resolves to without applying anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				format = "json"
			}
			return c.app.WriteResolution(cmd.Context(), cmd.OutOrStdout(), options(cmd), format)
		},
	}
	cmd.Flags().StringP("format", "f", "text", "Output format: text, json, or yaml")
	cmd.Flags().Bool("json", false, "Print the resolution as JSON (shorthand for --format=json)")
	cmd.Flags().StringP("strategy", "s", "", "Strategy whose acceptance rules are applied (link, download, clone)")
	addPlatformFlags(cmd)
	return cmd
}
