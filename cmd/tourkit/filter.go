package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tourkit/internal/adapter/output"
	"github.com/jmylchreest/tourkit/internal/core"
	"github.com/jmylchreest/tourkit/internal/store"
)

var filterOpts struct {
	showFormat     string
	defaultsFormat string
	toggle         bool
}

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Inspect and edit the saved filter sidebar state",
	Long: `Inspect and edit the filter sidebar state. Every change is saved, so a
sequence of commands behaves like clicking through the sidebar.

Fields: destinations, duration, price, tourTypes, accommodation, groupSize,
difficulty, rating (snake_case and kebab-case also work).

Examples:
  tourkit filter toggle destinations Kenya Uganda
  tourkit filter price 500 2500
  tourkit filter rating 4
  tourkit filter section rating
  tourkit filter apply --sort rating --order desc`,
}

var filterShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the sidebar with current selections",
	RunE:  runFilterShow,
}

var filterDefaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default filter state",
	RunE: func(cmd *cobra.Command, args []string) error {
		return output.FormatFilterState(cmd.OutOrStdout(), core.Default(), stateFormat(filterOpts.defaultsFormat))
	},
}

var filterToggleCmd = &cobra.Command{
	Use:   "toggle <field> <item>...",
	Short: "Toggle items in a set field",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runFilterToggle,
}

var filterCheckCmd = &cobra.Command{
	Use:   "check <field> <item>...",
	Short: "Select items in a set field",
	Args:  cobra.MinimumNArgs(2),
	RunE:  func(cmd *cobra.Command, args []string) error { return runFilterCheck(args, true) },
}

var filterUncheckCmd = &cobra.Command{
	Use:   "uncheck <field> <item>...",
	Short: "Deselect items in a set field",
	Args:  cobra.MinimumNArgs(2),
	RunE:  func(cmd *cobra.Command, args []string) error { return runFilterCheck(args, false) },
}

var filterRatingCmd = &cobra.Command{
	Use:   "rating <1-4|off>",
	Short: "Set the minimum star rating",
	Args:  cobra.ExactArgs(1),
	RunE:  runFilterRating,
}

var filterDurationCmd = &cobra.Command{
	Use:   "duration <min-days> <max-days>",
	Short: "Set the duration range in days",
	Args:  cobra.ExactArgs(2),
	RunE:  func(cmd *cobra.Command, args []string) error { return runFilterRange(core.FieldDuration, args) },
}

var filterPriceCmd = &cobra.Command{
	Use:   "price <min> <max>",
	Short: "Set the price range",
	Args:  cobra.ExactArgs(2),
	RunE:  func(cmd *cobra.Command, args []string) error { return runFilterRange(core.FieldPriceRange, args) },
}

var filterClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Reset every filter to its default",
	RunE:  runFilterClear,
}

var filterSectionCmd = &cobra.Command{
	Use:   "section <name>",
	Short: "Expand or collapse a sidebar section",
	Args:  cobra.ExactArgs(1),
	RunE:  runFilterSection,
}

var filterApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "List the tours matching the saved filters",
	RunE:  runToursList,
}

func init() {
	rootCmd.AddCommand(filterCmd)
	filterCmd.AddCommand(filterShowCmd, filterDefaultsCmd, filterToggleCmd, filterCheckCmd,
		filterUncheckCmd, filterRatingCmd, filterDurationCmd, filterPriceCmd, filterClearCmd,
		filterSectionCmd, filterApplyCmd)

	filterShowCmd.Flags().StringVarP(&filterOpts.showFormat, "format", "f", "sidebar",
		"Output format (sidebar, json, yaml)")
	filterDefaultsCmd.Flags().StringVarP(&filterOpts.defaultsFormat, "format", "f", "json",
		"Output format (json, yaml)")
	filterRatingCmd.Flags().BoolVar(&filterOpts.toggle, "toggle", false,
		"Clear the rating instead if it is already selected")

	addListFlags(filterApplyCmd)
}

func stateFormat(format string) output.FormatType {
	if strings.EqualFold(format, "yaml") {
		return output.FormatYAML
	}
	return output.FormatJSON
}

// updateState loads the saved state, applies fn and saves the result.
func updateState(fn func(*store.SidebarState) error) error {
	path := statePath()
	state, err := store.LoadSidebarState(path)
	if err != nil {
		return fmt.Errorf("failed to load sidebar state: %w", err)
	}
	if err := fn(state); err != nil {
		return err
	}
	if err := store.SaveSidebarState(path, state); err != nil {
		return fmt.Errorf("failed to save sidebar state: %w", err)
	}
	logger.Debug("saved sidebar state", "path", path, "active", core.ActiveCount(state.Filters))
	return nil
}

func runFilterShow(cmd *cobra.Command, args []string) error {
	state, err := store.LoadSidebarState(statePath())
	if err != nil {
		return err
	}
	if filterOpts.showFormat == "sidebar" || filterOpts.showFormat == "" {
		return output.FormatSidebar(cmd.OutOrStdout(), state.Filters, state.Expanded)
	}
	return output.FormatFilterState(cmd.OutOrStdout(), state.Filters, stateFormat(filterOpts.showFormat))
}

// setField parses a set field argument.
func setField(name string) (core.Field, error) {
	field, err := core.ParseField(name)
	if err != nil {
		return "", err
	}
	if !field.IsSet() {
		return "", fmt.Errorf("%s is not a list field; use the %s command", name, field)
	}
	return field, nil
}

func warnUnknownOption(field core.Field, item string) {
	if !core.IsOption(field, item) {
		logger.Warn("not one of the sidebar options", "field", field, "item", item,
			"options", strings.Join(core.Options(field), ", "))
	}
}

func runFilterToggle(cmd *cobra.Command, args []string) error {
	field, err := setField(args[0])
	if err != nil {
		return err
	}
	return updateState(func(s *store.SidebarState) error {
		for _, item := range args[1:] {
			warnUnknownOption(field, item)
			if s.Filters, err = core.Toggle(s.Filters, field, item); err != nil {
				return err
			}
		}
		return nil
	})
}

func runFilterCheck(args []string, checked bool) error {
	field, err := setField(args[0])
	if err != nil {
		return err
	}
	return updateState(func(s *store.SidebarState) error {
		for _, item := range args[1:] {
			if checked {
				warnUnknownOption(field, item)
			}
			if s.Filters, err = core.SetChecked(s.Filters, field, item, checked); err != nil {
				return err
			}
		}
		return nil
	})
}

func runFilterRating(cmd *cobra.Command, args []string) error {
	arg := strings.TrimSuffix(strings.ToLower(args[0]), "+")
	if arg == "off" || arg == "any" || arg == "0" {
		return updateState(func(s *store.SidebarState) error {
			s.Filters = core.SetRating(s.Filters, 0, false)
			return nil
		})
	}

	r, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("invalid rating %q (use 1-4 or off)", args[0])
	}
	if r < 1 || r > 4 {
		logger.Warn("rating outside the sidebar options", "rating", r)
	}

	return updateState(func(s *store.SidebarState) error {
		if filterOpts.toggle {
			s.Filters = core.ToggleRating(s.Filters, r)
		} else {
			s.Filters = core.SetRating(s.Filters, r, true)
		}
		return nil
	})
}

func runFilterRange(field core.Field, args []string) error {
	values := make([]int, 0, 2)
	for _, a := range args {
		v, err := strconv.Atoi(strings.TrimPrefix(strings.ReplaceAll(a, ",", ""), "$"))
		if err != nil {
			return fmt.Errorf("invalid %s value %q", field, a)
		}
		values = append(values, v)
	}

	return updateState(func(s *store.SidebarState) error {
		next, err := core.Update(s.Filters, field, values)
		if err != nil {
			return err
		}
		if !core.InBounds(next) {
			logger.Warn("range outside the slider bounds", "field", field, "values", values)
		}
		s.Filters = next
		return nil
	})
}

func runFilterClear(cmd *cobra.Command, args []string) error {
	return updateState(func(s *store.SidebarState) error {
		s.Filters = core.Clear()
		return nil
	})
}

func runFilterSection(cmd *cobra.Command, args []string) error {
	section, err := core.ParseSection(args[0])
	if err != nil {
		return err
	}
	return updateState(func(s *store.SidebarState) error {
		s.Expanded = s.Expanded.Toggle(section)
		state := "collapsed"
		if s.Expanded.IsExpanded(section) {
			state = "expanded"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", output.SectionTitle(section), state)
		return nil
	})
}
