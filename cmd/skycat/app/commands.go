package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/skycatalog/cmd/skycat/cmd/constellation"
	"github.com/agentstation/skycatalog/cmd/skycat/cmd/describe"
	"github.com/agentstation/skycatalog/cmd/skycat/cmd/list"
	"github.com/agentstation/skycatalog/cmd/skycat/cmd/object"
)

// NewDescribeCommand creates the describe command with app dependencies.
func (a *App) NewDescribeCommand() *cobra.Command {
	return describe.NewCommand(a)
}

// NewObjectCommand creates the object command with app dependencies.
func (a *App) NewObjectCommand() *cobra.Command {
	return object.NewCommand(a)
}

// NewListCommand creates the list command with app dependencies.
func (a *App) NewListCommand() *cobra.Command {
	return list.NewCommand(a)
}

// NewConstellationCommand creates the constellation command with app dependencies.
func (a *App) NewConstellationCommand() *cobra.Command {
	return constellation.NewCommand(a)
}

// NewConstellationsCommand creates the constellations command with app dependencies.
func (a *App) NewConstellationsCommand() *cobra.Command {
	return constellation.NewListCommand(a)
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "skycat %s\n", a.version)
			if a.config.Verbose {
				fmt.Fprintf(w, "  commit:     %s\n", a.commit)
				fmt.Fprintf(w, "  built:      %s\n", a.date)
				fmt.Fprintf(w, "  built by:   %s\n", a.builtBy)
				fmt.Fprintf(w, "  go version: %s\n", runtime.Version())
				fmt.Fprintf(w, "  platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
			}
		},
	}
}
