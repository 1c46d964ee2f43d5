package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tourkit/internal/adapter/output"
	"github.com/jmylchreest/tourkit/internal/colour"
	"github.com/jmylchreest/tourkit/internal/config"
	"github.com/jmylchreest/tourkit/internal/model"
	"github.com/jmylchreest/tourkit/internal/store"
	"github.com/jmylchreest/tourkit/internal/theme"
)

var themeOpts struct {
	// Source overrides
	preset string
	file   string
	url    string

	// Output options
	mode     string
	output   string
	format   string
	selector string

	// Publish options
	from   string
	author string

	limit int
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Load, apply and publish site themes",
}

var themeApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Load the theme config and write its CSS custom properties",
	Long: `Load the configured theme config and write the custom properties for one
mode. When the source fails the built-in palette is written instead and a
warning is printed.

Examples:
  tourkit theme apply --mode dark
  tourkit theme apply --file ./theme.toml --output public/theme.css
  tourkit theme apply --format json`,
	RunE: runThemeApply,
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the loaded theme config with colour swatches",
	RunE:  runThemeShow,
}

var themePresetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List bundled theme presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range theme.ListPresets() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var themeModeCmd = &cobra.Command{
	Use:   "mode [light|dark]",
	Short: "Show or set the saved palette mode",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runThemeMode,
}

var themeExportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Write the loaded theme config to a TOML, YAML or JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeExport,
}

var themePublishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish a new theme version to the SQLite store",
	Long: `Publish a new theme version to the SQLite store. The new version becomes
the active one; earlier versions stay in the history.

The palettes are taken from --from (a theme file) or --preset.

Examples:
  tourkit theme publish --from ./brand.toml
  tourkit theme publish --preset savanna --author design`,
	RunE: runThemePublish,
}

var themeHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List published theme versions",
	RunE:  runThemeHistory,
}

var themeActivateCmd = &cobra.Command{
	Use:   "activate <version>",
	Short: "Make a published theme version the active one",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeActivate,
}

var themeWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rewrite the CSS whenever the theme file changes",
	Long: `Watch a theme file and re-apply it whenever it changes. Requires a file
source (theme.source = "file" or --file).`,
	RunE: runThemeWatch,
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeApplyCmd, themeShowCmd, themePresetsCmd, themeModeCmd,
		themeExportCmd, themePublishCmd, themeHistoryCmd, themeActivateCmd, themeWatchCmd)

	for _, c := range []*cobra.Command{themeApplyCmd, themeShowCmd, themeExportCmd, themeWatchCmd} {
		c.Flags().StringVar(&themeOpts.preset, "preset", "",
			"Use a bundled preset instead of the configured source")
		c.Flags().StringVar(&themeOpts.file, "file", "",
			"Load the theme from a TOML, YAML or JSON file")
		c.Flags().StringVar(&themeOpts.url, "url", "",
			"Fetch the theme as JSON from a URL")
	}

	for _, c := range []*cobra.Command{themeApplyCmd, themeWatchCmd} {
		c.Flags().StringVarP(&themeOpts.mode, "mode", "m", "",
			"Palette mode (light, dark; default: saved mode, then config)")
		c.Flags().StringVarP(&themeOpts.output, "output", "o", "",
			"Write to this file instead of stdout (default: output.css_path)")
		c.Flags().StringVarP(&themeOpts.format, "format", "f", "css",
			"Output format (css, json, yaml, plain)")
		c.Flags().StringVar(&themeOpts.selector, "selector", "",
			"CSS rule selector (default: output.selector)")
	}

	themePublishCmd.Flags().StringVar(&themeOpts.from, "from", "",
		"Theme file to take the palettes from")
	themePublishCmd.Flags().StringVar(&themeOpts.preset, "preset", "",
		"Bundled preset to take the palettes from")
	themePublishCmd.Flags().StringVar(&themeOpts.author, "author", "",
		"Name recorded on the version (default: publish.author, then $USER)")

	themeHistoryCmd.Flags().IntVarP(&themeOpts.limit, "limit", "n", 0,
		"Maximum versions to list (default: publish.history_limit)")
}

// themeSource builds the Source selected by flags, falling back to config.
// The returned close function is never nil.
func themeSource(c *config.Config) (theme.Source, func() error, error) {
	noop := func() error { return nil }

	switch {
	case themeOpts.preset != "":
		return theme.PresetSource{Name: themeOpts.preset}, noop, nil
	case themeOpts.file != "":
		return store.NewFileSource(themeOpts.file), noop, nil
	case themeOpts.url != "":
		return newHTTPSource(c, themeOpts.url), noop, nil
	}

	switch c.Theme.Source {
	case config.SourceFile:
		return store.NewFileSource(c.Theme.Path), noop, nil
	case config.SourceHTTP:
		return newHTTPSource(c, c.Theme.URL), noop, nil
	case config.SourceSQLite:
		db, err := store.OpenSQLiteSource(c.DatabasePath())
		if err != nil {
			return nil, noop, err
		}
		return db, db.Close, nil
	default:
		return theme.PresetSource{Name: c.Theme.Preset}, noop, nil
	}
}

func newHTTPSource(c *config.Config, url string) *store.HTTPSource {
	src := store.NewHTTPSource(url)
	src.Timeout = c.Theme.FetchTimeout.Duration()
	return src
}

// watchedPath returns the theme file a watch should follow.
func watchedPath(c *config.Config) (string, error) {
	if themeOpts.file != "" {
		return themeOpts.file, nil
	}
	if themeOpts.preset == "" && themeOpts.url == "" && c.Theme.Source == config.SourceFile {
		return c.Theme.Path, nil
	}
	return "", errors.New("watch requires a file source (set theme.source = \"file\" or pass --file)")
}

// resolveMode picks the palette mode: flag, then saved state, then config.
func resolveMode() (model.Mode, error) {
	if themeOpts.mode != "" {
		return model.ParseMode(themeOpts.mode)
	}
	state, err := store.LoadSidebarState(statePath())
	if err != nil {
		logger.Debug("failed to read saved mode", "error", err)
	} else if state.Mode != "" {
		return state.Mode, nil
	}
	return cfg.Mode(), nil
}

// loadTheme loads the theme config into a loader writing to sink. A failed
// load is reported on stderr but is not an error: the fallback is used.
func loadTheme(ctx context.Context, sink theme.StyleSink) (*theme.Loader, func() error, error) {
	src, closeFn, err := themeSource(cfg)
	if err != nil {
		return nil, closeFn, err
	}

	var applicator *theme.Applicator
	if sink != nil {
		applicator = theme.NewApplicator(sink, logger)
	}
	loader := theme.NewLoader(src, applicator, logger)

	if _, err := loader.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s, using built-in palette\n", loader.Error())
	}
	return loader, closeFn, nil
}

func runThemeApply(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Theme.FetchTimeout.Duration()+defaultCommandTimeout)
	defer cancel()

	mode, err := resolveMode()
	if err != nil {
		return err
	}
	format, err := output.ParsePropertyFormat(themeOpts.format)
	if err != nil {
		return err
	}

	sink := theme.NewCSSSink(selector())
	loader, closeFn, err := loadTheme(ctx, sink)
	defer closeFn()
	if err != nil {
		return err
	}

	loader.ApplyCurrent(mode)
	return writeProperties(cmd.OutOrStdout(), sink, format)
}

func runThemeWatch(cmd *cobra.Command, args []string) error {
	path, err := watchedPath(cfg)
	if err != nil {
		return err
	}
	mode, err := resolveMode()
	if err != nil {
		return err
	}
	format, err := output.ParsePropertyFormat(themeOpts.format)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sink := theme.NewCSSSink(selector())
	loader, closeFn, err := loadTheme(ctx, sink)
	defer closeFn()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	loader.ApplyCurrent(mode)
	if err := writeProperties(out, sink, format); err != nil {
		return err
	}

	loader.SetDebounce(cfg.Watch.Debounce.Duration())
	err = loader.StartHotReload(ctx, path, func(_ *model.ThemeConfig, err error) {
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s, using built-in palette\n", loader.Error())
		}
		if err := writeProperties(out, sink, format); err != nil {
			logger.Error("failed to write theme output", "error", err)
		}
	})
	if err != nil {
		return err
	}
	defer loader.StopHotReload()

	fmt.Fprintf(os.Stderr, "watching %s (ctrl-c to stop)\n", path)

	<-ctx.Done()
	return nil
}

func selector() string {
	if themeOpts.selector != "" {
		return themeOpts.selector
	}
	return cfg.Output.Selector
}

func outputPath() string {
	if themeOpts.output != "" {
		return themeOpts.output
	}
	return cfg.Output.CSSPath
}

// writeProperties renders the sink to the output file, or to w when no
// output path is configured.
func writeProperties(w io.Writer, sink *theme.CSSSink, format output.PropertyFormat) error {
	path := outputPath()
	if path == "" {
		return output.FormatProperties(w, sink, format)
	}

	if format == output.PropertiesCSS {
		if err := sink.WriteFile(path); err != nil {
			return err
		}
	} else {
		var buf bytes.Buffer
		if err := output.FormatProperties(&buf, sink, format); err != nil {
			return err
		}
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	logger.Info("wrote theme", "path", path, "properties", len(sink.Properties()))
	return nil
}

func runThemeShow(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Theme.FetchTimeout.Duration()+defaultCommandTimeout)
	defer cancel()

	loader, closeFn, err := loadTheme(ctx, nil)
	defer closeFn()
	if err != nil {
		return err
	}

	tc := loader.Config()
	out := cmd.OutOrStdout()

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("Theme v%d", tc.Version)))
	if tc.ID != "" {
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("id:"), tc.ID)
	}
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("created by:"), tc.CreatedBy)
	if !tc.UpdatedAt.IsZero() {
		fmt.Fprintf(out, "%s %s\n", labelStyle.Render("updated:"), humanize.Time(tc.UpdatedAt))
	}
	fmt.Fprintf(out, "%s %t\n", labelStyle.Render("active:"), tc.IsActive)

	for _, mode := range model.Modes() {
		fmt.Fprintln(out)
		fmt.Fprintln(out, headerStyle.Render(strings.ToUpper(string(mode)[:1])+string(mode)[1:]))
		fmt.Fprint(out, swatches(tc.Colors(mode)))
	}
	return nil
}

// swatches renders one line per palette role with a colour block.
func swatches(colors model.ThemeColors) string {
	var sb strings.Builder
	for _, role := range model.RoleNames {
		hex, _ := colors.Role(role)
		block := "      "
		if colour.ValidHex(hex) {
			block = lipgloss.NewStyle().
				Background(lipgloss.Color("#" + strings.TrimPrefix(hex, "#"))).
				Render(block)
		}
		sb.WriteString(fmt.Sprintf("  %s %-11s %-8s %s\n", block, role, hex, colour.HexToHSLString(hex)))
	}
	return sb.String()
}

func runThemeMode(cmd *cobra.Command, args []string) error {
	path := statePath()
	state, err := store.LoadSidebarState(path)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		mode := state.Mode
		if mode == "" {
			mode = cfg.Mode()
		}
		fmt.Fprintln(cmd.OutOrStdout(), mode)
		return nil
	}

	mode, err := model.ParseMode(args[0])
	if err != nil {
		return err
	}
	state.Mode = mode
	return store.SaveSidebarState(path, state)
}

func runThemeExport(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Theme.FetchTimeout.Duration()+defaultCommandTimeout)
	defer cancel()

	loader, closeFn, err := loadTheme(ctx, nil)
	defer closeFn()
	if err != nil {
		return err
	}

	if err := store.SaveThemeFile(args[0], loader.Config()); err != nil {
		return err
	}
	logger.Info("exported theme", "path", args[0])
	return nil
}

// publishPalettes reads the palettes to publish from --from or --preset.
func publishPalettes(ctx context.Context) (*model.ThemeConfig, error) {
	switch {
	case themeOpts.from != "" && themeOpts.preset != "":
		return nil, errors.New("use either --from or --preset, not both")
	case themeOpts.from != "":
		return store.NewFileSource(themeOpts.from).GetThemeConfig(ctx)
	case themeOpts.preset != "":
		return theme.PresetSource{Name: themeOpts.preset}.GetThemeConfig(ctx)
	default:
		return nil, errors.New("nothing to publish: pass --from or --preset")
	}
}

func runThemePublish(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), defaultCommandTimeout)
	defer cancel()

	src, err := publishPalettes(ctx)
	if err != nil {
		return err
	}

	db, err := store.OpenSQLiteSource(cfg.DatabasePath())
	if err != nil {
		return err
	}
	defer db.Close()

	author := themeOpts.author
	if author == "" {
		author = cfg.Author()
	}

	published, err := db.Publish(ctx, src.Light, src.Dark, author)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "published v%d (%s)\n", published.Version, published.ID)
	return nil
}

func runThemeHistory(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), defaultCommandTimeout)
	defer cancel()

	db, err := store.OpenSQLiteSource(cfg.DatabasePath())
	if err != nil {
		return err
	}
	defer db.Close()

	limit := themeOpts.limit
	if limit == 0 {
		limit = cfg.Publish.HistoryLimit
	}

	versions, err := db.History(ctx, limit)
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no published versions")
		return nil
	}

	for _, v := range versions {
		marker := " "
		if v.IsActive {
			marker = "*"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s v%-4d %s  %-12s %s\n",
			marker, v.Version, v.ID, v.CreatedBy, humanize.Time(v.CreatedAt))
	}
	return nil
}

func runThemeActivate(cmd *cobra.Command, args []string) error {
	version, err := strconv.Atoi(strings.TrimPrefix(args[0], "v"))
	if err != nil {
		return fmt.Errorf("invalid version %q", args[0])
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), defaultCommandTimeout)
	defer cancel()

	db, err := store.OpenSQLiteSource(cfg.DatabasePath())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Activate(ctx, version); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "activated v%d\n", version)
	return nil
}
