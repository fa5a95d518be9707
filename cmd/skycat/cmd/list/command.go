// Package list provides the command walking the object list of a category.
package list

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/skycatalog"
	"github.com/agentstation/skycatalog/internal/cmd/filter"
	"github.com/agentstation/skycatalog/internal/cmd/output"
	"github.com/agentstation/skycatalog/pkg/constants"
	"github.com/agentstation/skycatalog/pkg/errors"
	"github.com/agentstation/skycatalog/pkg/logging"
	"github.com/agentstation/skycatalog/pkg/sky"
)

// AppContext defines the interface that the list command needs from the app.
type AppContext interface {
	Catalog() (skycatalog.Catalog, error)
	OutputFormat() string
}

// Flags holds the list command flags.
type Flags struct {
	Category      string
	Constellation string
	Limit         int
	Reverse       bool
	Filter        filter.ObjectFilter
}

// NewCommand creates the list command.
func NewCommand(app AppContext) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		GroupID: "core",
		Short:   "Walk the records of a category",
		Long: `List walks the object cursor over a category directory, optionally
scoped to one constellation. Entries come in directory order.

With --reverse the cursor first walks to the last listed entry and then
steps back, the way a handset scrolls up through a list.`,
		Example: `  skycat list                          # first stars
  skycat list -t ngc -c CYG            # NGC objects in Cygnus
  skycat list -t messier --limit 0     # every Messier object
  skycat list --reverse --limit 10
  skycat list --max-mag 2 --moving     # bright stars with proper motion`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.Limit < 0 {
				return errors.NewValidationError("limit", flags.Limit, "must not be negative")
			}
			cat, err := sky.ParseCategory(flags.Category)
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

			objs, err := Collect(catalog, strings.ToUpper(flags.Constellation), cat, flags.Limit, flags.Reverse, &flags.Filter)
			if err != nil {
				return err
			}
			logging.FromContext(cmd.Context()).Debug().
				Str("category", cat.String()).
				Str("constellation", flags.Constellation).
				Int("count", len(objs)).
				Msg("listed objects")

			return output.FormatObjects(cmd.OutOrStdout(), format, objs)
		},
	}

	cmd.Flags().StringVarP(&flags.Category, "type", "t", sky.Star.String(), "category: star, messier, ngc, ic")
	cmd.Flags().StringVarP(&flags.Constellation, "const", "c", "", "restrict to one constellation, e.g. ORI")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", constants.DefaultListLimit, "maximum number of records (0 for all)")
	cmd.Flags().BoolVarP(&flags.Reverse, "reverse", "r", false, "list from the last record backwards")
	cmd.Flags().Float64Var(&flags.Filter.MaxMagnitude, "max-mag", 0, "only objects at least this bright")
	cmd.Flags().StringVarP(&flags.Filter.Search, "search", "s", "", "match designation or name")
	cmd.Flags().BoolVar(&flags.Filter.MovingOnly, "moving", false, "only stars with a measured proper motion")

	return cmd
}

// Collect opens the object list and reads up to limit objects matching f,
// or every match when limit is 0. Records that cannot be parsed are skipped.
func Collect(catalog skycatalog.Catalog, abbrev string, cat sky.Category, limit int, reverse bool, f *filter.ObjectFilter) ([]sky.Object, error) {
	if err := catalog.OpenObjectList(abbrev, cat); err != nil {
		return nil, err
	}
	defer catalog.CloseObjectList()

	var objs []sky.Object
	add := func() bool {
		if obj, ok := catalog.CurrentObject(); ok && f.Match(obj) {
			objs = append(objs, obj)
		}
		return limit == 0 || len(objs) < limit
	}

	if !reverse {
		for catalog.NextObject() {
			if !add() {
				break
			}
		}
		return objs, nil
	}

	for catalog.NextObject() {
	}
	if catalog.ObjectPosition() == 0 {
		return objs, nil
	}
	if !add() {
		return objs, nil
	}
	for catalog.PreviousObject() {
		if !add() {
			break
		}
	}
	return objs, nil
}
