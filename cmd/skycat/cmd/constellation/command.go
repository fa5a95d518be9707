// Package constellation provides the commands listing and resolving
// constellations.
package constellation

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/skycatalog"
	"github.com/agentstation/skycatalog/internal/cmd/output"
	"github.com/agentstation/skycatalog/pkg/errors"
	"github.com/agentstation/skycatalog/pkg/sky"
)

// AppContext defines the interface that the constellation commands need from the app.
type AppContext interface {
	Catalog() (skycatalog.Catalog, error)
	OutputFormat() string
}

// NewCommand creates the constellation command resolving one abbreviation.
func NewCommand(app AppContext) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:     "constellation <abbreviation>",
		Aliases: []string{"const"},
		GroupID: "core",
		Short:   "Show the full name of a constellation",
		Long: `Constellation resolves an abbreviation to its full name in the catalog
language. When no translation exists the abbreviation is shown as is.`,
		Example: `  skycat constellation ORI
  skycat constellation cyg --lang french`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}
			catalog, err := app.Catalog()
			if err != nil {
				return err
			}
			applyLanguage(catalog, lang)

			c := catalog.Constellation(strings.ToUpper(args[0]))
			return output.FormatConstellations(cmd.OutOrStdout(), format, []sky.Constellation{c})
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "language for this lookup, e.g. french")
	return cmd
}

// NewListCommand creates the constellations command walking the
// constellation list.
func NewListCommand(app AppContext) *cobra.Command {
	var (
		lang  string
		limit int
	)

	cmd := &cobra.Command{
		Use:     "constellations",
		GroupID: "core",
		Short:   "List the constellations of the catalog",
		Example: `  skycat constellations
  skycat constellations --lang latin --limit 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return errors.NewValidationError("limit", limit, "must not be negative")
			}
			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}
			catalog, err := app.Catalog()
			if err != nil {
				return err
			}
			applyLanguage(catalog, lang)

			constellations, err := Collect(catalog, limit)
			if err != nil {
				return err
			}
			return output.FormatConstellations(cmd.OutOrStdout(), format, constellations)
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "language for full names, e.g. french")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "maximum number of constellations (0 for all)")
	return cmd
}

// Collect walks the constellation list, stopping after limit entries
// unless limit is 0.
func Collect(catalog skycatalog.Catalog, limit int) ([]sky.Constellation, error) {
	if err := catalog.OpenConstellationList(); err != nil {
		return nil, err
	}
	defer catalog.CloseConstellationList()

	var out []sky.Constellation
	for catalog.NextConstellation() {
		if c, ok := catalog.CurrentConstellation(); ok {
			out = append(out, c)
		}
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// applyLanguage switches the catalog language when lang is set. Unknown
// languages resolve to English.
func applyLanguage(catalog skycatalog.Catalog, lang string) {
	if lang != "" {
		catalog.SetLanguage(sky.ParseLanguage(lang))
	}
}
