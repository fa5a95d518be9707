// Package object provides the command looking up one catalog record.
package object

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/skycatalog"
	"github.com/agentstation/skycatalog/internal/cmd/output"
	"github.com/agentstation/skycatalog/pkg/errors"
	"github.com/agentstation/skycatalog/pkg/paths"
	"github.com/agentstation/skycatalog/pkg/sky"
)

// AppContext defines the interface that the object command needs from the app.
type AppContext interface {
	Catalog() (skycatalog.Catalog, error)
	Logger() *zerolog.Logger
	OutputFormat() string
}

// NewCommand creates the object command.
func NewCommand(app AppContext) *cobra.Command {
	var (
		category string
		abbrev   string
	)

	cmd := &cobra.Command{
		Use:     "object <id>",
		GroupID: "core",
		Short:   "Show one star, Messier, NGC or IC record",
		Example: `  skycat object 42                    # star 000042
  skycat object 7000 --type ngc       # NGC 7000
  skycat object 1976 -t ngc -c ORI    # NGC 1976 within Orion`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id < 0 {
				return errors.NewValidationError("id", args[0], "must be a non-negative decimal number")
			}
			cat, err := sky.ParseCategory(category)
			if err != nil {
				return err
			}
			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}

			catalog, err := app.Catalog()
			if err != nil {
				return err
			}

			abbrev = strings.ToUpper(abbrev)
			obj := catalog.Object(abbrev, id, cat)
			if obj.IsZero() {
				app.Logger().Debug().
					Str("path", paths.RecordFile(catalog.Root(), abbrev, cat, id)).
					Msg("record not found")
				return errors.NewNotFoundError(cat.String(), paths.RecordName(id))
			}

			return output.FormatObject(cmd.OutOrStdout(), format, obj)
		},
	}

	cmd.Flags().StringVarP(&category, "type", "t", sky.Star.String(), "category: star, messier, ngc, ic")
	cmd.Flags().StringVarP(&abbrev, "const", "c", "", "constellation abbreviation, e.g. ORI")

	return cmd
}
