package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/skycatalog/pkg/constants"
	"github.com/agentstation/skycatalog/pkg/logging"
)

// Execute runs the skycat CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "skycat",
		Short:   "Flat-file astronomical catalog reader",
		Version: a.version,
		Long: `Skycat reads a flat-file astronomical catalog of stars, Messier, NGC
and IC objects, and constellations, as laid out on a telescope handset's
storage card.

Point --root at the catalog directory. --medium selects what it lives on:
"os" for the host filesystem, "mem" for an empty in-memory medium, or a
directory path that becomes the mount point.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	if a.out != nil {
		rootCmd.SetOut(a.out)
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})

	// Values are copied onto the config in setupCommand, only when set.
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.skycat.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.Bool("no-color", false, "disable colored output")
	flags.StringP("format", "o", "", "output format: table, json, yaml, wide")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")
	flags.String("root", "", "catalog root directory (default \".\")")
	flags.String("medium", "", "medium: os, mem or a mount directory (default \""+constants.MediumOS+"\")")
	flags.String("language", "", "constellation name language: english, latin, french")
	flags.Bool("indexed", false, "index list directories in memory for fast stepping back")

	rootCmd.SetVersionTemplate("skycat {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("config") {
		config, err := LoadConfig(mustGetString(cmd, "config"))
		if err != nil {
			return err
		}
		a.config = config
	}

	a.config.UpdateFromFlags(cmd.Flags())

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger
	logging.SetDefault(logger)

	ctx := logging.WithLogger(cmd.Context(), a.logger)
	ctx = logging.WithCommand(ctx, cmd.Name())
	ctx = logging.WithRoot(ctx, a.config.Root)
	cmd.SetContext(ctx)

	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(a.NewDescribeCommand())
	rootCmd.AddCommand(a.NewObjectCommand())
	rootCmd.AddCommand(a.NewListCommand())
	rootCmd.AddCommand(a.NewConstellationCommand())
	rootCmd.AddCommand(a.NewConstellationsCommand())

	rootCmd.AddCommand(a.NewVersionCommand())
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
