// Package commands implements the CLI commands for platdep.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/platdep/internal/app"
	"go.trai.ch/platdep/internal/build"
	"go.trai.ch/platdep/internal/core/domain"
)

// CLI represents the command line interface for platdep.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Install(ctx context.Context, opts app.Options) error
	Update(ctx context.Context, opts app.Options) error
	WriteResolution(ctx context.Context, w io.Writer, opts app.Options, format string) error
	Platform(opts app.Options) (domain.Platform, error)
	ConfigureLogging(verbose, jsonLogs bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "platdep",
		Short:         "Resolve and install platform-specific dependency variants",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("verbose", false, "Print debug output")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON")
	rootCmd.PersistentFlags().StringP("dir", "d", ".", "Directory to search for platdep.yaml or composer.json")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		c.app.ConfigureLogging(verbose, jsonLogs)
	}

	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newUpdateCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newPlatformCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// addPlatformFlags registers the platform override flags on cmd.
func addPlatformFlags(cmd *cobra.Command) {
	cmd.Flags().String("os", "", "Override the detected operating system (macosx, freebsd, windows, linux)")
	cmd.Flags().String("arch", "", "Override the detected architecture (i386, x64)")
}

// options collects the app options from the flags of cmd.
// Flags a command does not define are left empty.
func options(cmd *cobra.Command) app.Options {
	dir, _ := cmd.Flags().GetString("dir")
	strategy, _ := cmd.Flags().GetString("strategy")
	strict, _ := cmd.Flags().GetBool("strict")
	osName, _ := cmd.Flags().GetString("os")
	arch, _ := cmd.Flags().GetString("arch")

	return app.Options{
		Dir:      dir,
		Strategy: strategy,
		Strict:   strict,
		OS:       osName,
		Arch:     arch,
	}
}
