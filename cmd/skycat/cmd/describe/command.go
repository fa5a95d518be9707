// Package describe provides the command summarizing a catalog root.
package describe

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/skycatalog"
	"github.com/agentstation/skycatalog/internal/cmd/output"
)

// AppContext defines the interface that the describe command needs from the app.
type AppContext interface {
	Catalog() (skycatalog.Catalog, error)
	OutputFormat() string
}

// NewCommand creates the describe command.
func NewCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "describe",
		GroupID: "core",
		Short:   "Show how many records each category holds",
		Long: `Describe reads the count file of every category at the catalog root.

A category whose count file is missing is reported as unknown; a catalog
may ship without some categories.`,
		Example: `  skycat describe --root /sd/db
  skycat describe -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}
			cat, err := app.Catalog()
			if err != nil {
				return err
			}
			return output.FormatDescription(cmd.OutOrStdout(), format, cat.Description())
		},
	}
}
