package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tourkit/internal/adapter/output"
	"github.com/jmylchreest/tourkit/internal/core"
	"github.com/jmylchreest/tourkit/internal/model"
	"github.com/jmylchreest/tourkit/internal/store"
)

var listOpts struct {
	toursFile string
	all       bool
	search    string
	limit     int

	sortBy    string
	sortOrder string

	format   string
	template string
	field    string
}

var toursCmd = &cobra.Command{
	Use:   "tours",
	Short: "Query the tour catalogue",
}

var toursListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tours matching the saved filters",
	Long: `List tours from the catalogue that match the saved filter sidebar state.

Examples:
  tourkit tours list
  tourkit tours list --all --sort name
  tourkit tours list --search mara --format json
  tourkit tours list --format dmenu | fuzzel -d`,
	RunE: runToursList,
}

var toursGetCmd = &cobra.Command{
	Use:   "get <index|id>",
	Short: "Show one tour by 1-based index in the filtered list or by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runToursGet,
}

var toursFacetsCmd = &cobra.Command{
	Use:   "facets <field>",
	Short: "Count matching tours per option of a list field",
	Long: `Count matching tours per option of a list field, ignoring that field's own
selection. These are the numbers shown next to each sidebar checkbox.`,
	Args: cobra.ExactArgs(1),
	RunE: runToursFacets,
}

func init() {
	rootCmd.AddCommand(toursCmd)
	toursCmd.AddCommand(toursListCmd, toursGetCmd, toursFacetsCmd)

	addListFlags(toursListCmd)
	addListFlags(toursGetCmd)
	toursGetCmd.Flags().StringVar(&listOpts.field, "field", "",
		"Output single field from the tour (id, name, destination, price, ...)")

	toursFacetsCmd.Flags().StringVar(&listOpts.toursFile, "tours", "",
		"Tour catalogue file (default: tours.path)")
}

// addListFlags registers the flags shared by commands listing tours.
func addListFlags(c *cobra.Command) {
	c.Flags().StringVar(&listOpts.toursFile, "tours", "",
		"Tour catalogue file (default: tours.path)")
	c.Flags().BoolVar(&listOpts.all, "all", false,
		"Ignore the saved filters")
	c.Flags().StringVarP(&listOpts.search, "search", "s", "",
		"Search in name and destination")
	c.Flags().IntVarP(&listOpts.limit, "limit", "n", 0,
		"Maximum number of tours to show (0=unlimited)")
	c.Flags().StringVar(&listOpts.sortBy, "sort", "",
		"Sort by field (name, price, duration, rating; default: sort.field)")
	c.Flags().StringVar(&listOpts.sortOrder, "order", "",
		"Sort order (asc, desc; default: sort.order)")
	c.Flags().StringVarP(&listOpts.format, "format", "f", "plain",
		"Output format (plain, dmenu, json, yaml, ids)")
	c.Flags().StringVar(&listOpts.template, "template", "",
		"Custom Go template for plain/dmenu output")
}

func loadCatalogue() ([]model.Tour, error) {
	path := listOpts.toursFile
	if path == "" {
		path = cfg.Tours.Path
	}
	if path == "" {
		return nil, errors.New("no tour catalogue configured: set tours.path or pass --tours")
	}

	tours, err := store.LoadTours(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded tour catalogue", "path", path, "count", len(tours))
	return tours, nil
}

// filteredTours loads the catalogue and applies the saved filters, search,
// sort and limit.
func filteredTours() ([]model.Tour, error) {
	tours, err := loadCatalogue()
	if err != nil {
		return nil, err
	}

	if !listOpts.all {
		state, err := store.LoadSidebarState(statePath())
		if err != nil {
			return nil, fmt.Errorf("failed to load sidebar state: %w", err)
		}
		tours = core.Apply(tours, state.Filters)
		logger.Debug("applied filters", "active", core.ActiveCount(state.Filters), "matched", len(tours))
	}

	tours = core.Search(tours, listOpts.search)

	opts := cfg.SortOptions()
	if listOpts.sortBy != "" {
		opts.Field, _ = core.ParseSortField(listOpts.sortBy)
	}
	if listOpts.sortOrder != "" {
		opts.Order, _ = core.ParseSortOrder(listOpts.sortOrder)
	}
	core.Sort(tours, opts)

	if listOpts.limit > 0 && len(tours) > listOpts.limit {
		tours = tours[:listOpts.limit]
	}
	return tours, nil
}

func formatterOptions() output.FormatterOptions {
	opts := output.DefaultFormatterOptions()
	opts.Template = listOpts.template
	return opts
}

func runToursList(cmd *cobra.Command, args []string) error {
	tours, err := filteredTours()
	if err != nil {
		return err
	}

	formatter := output.NewFormatter(output.FormatType(listOpts.format), formatterOptions())
	return formatter.Format(cmd.OutOrStdout(), tours)
}

func runToursGet(cmd *cobra.Command, args []string) error {
	tours, err := filteredTours()
	if err != nil {
		return err
	}

	var t *model.Tour
	if idx, err := strconv.Atoi(args[0]); err == nil && idx > 0 {
		if idx > len(tours) {
			return fmt.Errorf("tour at index %d not found", idx)
		}
		t = &tours[idx-1]
	} else {
		all, err := loadCatalogue()
		if err != nil {
			return err
		}
		if t = core.LookupByID(all, args[0]); t == nil {
			return fmt.Errorf("tour with ID %s not found", args[0])
		}
	}

	if listOpts.field != "" {
		fmt.Fprintln(cmd.OutOrStdout(), output.FormatField(t, listOpts.field))
		return nil
	}

	switch output.FormatType(listOpts.format) {
	case output.FormatJSON:
		return output.NewJSONFormatter(formatterOptions()).FormatSingle(cmd.OutOrStdout(), t)
	default:
		opts := formatterOptions()
		opts.ShowIndex = false
		return output.NewFormatter(output.FormatType(listOpts.format), opts).Format(cmd.OutOrStdout(), []model.Tour{*t})
	}
}

func runToursFacets(cmd *cobra.Command, args []string) error {
	field, err := setField(args[0])
	if err != nil {
		return err
	}

	tours, err := loadCatalogue()
	if err != nil {
		return err
	}
	state, err := store.LoadSidebarState(statePath())
	if err != nil {
		return err
	}

	counts := core.FacetCounts(tours, state.Filters, field)
	selected := core.Values(state.Filters, field)

	options := core.Options(field)
	if field == core.FieldDestinations {
		// Catalogue destinations outside the sidebar list still get a row.
		for _, d := range core.UniqueDestinations(tours) {
			if !core.IsOption(field, d) {
				options = append(options, d)
			}
		}
	}

	for _, opt := range options {
		marker := "[ ]"
		for _, s := range selected {
			if s == opt {
				marker = "[x]"
				break
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %-18s %d\n", marker, opt, counts[opt])
	}
	return nil
}
