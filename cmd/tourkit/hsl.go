package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tourkit/internal/colour"
)

var hslOpts struct {
	quiet bool
}

var hslCmd = &cobra.Command{
	Use:   "hsl <hex>...",
	Short: "Convert hex colours to CSS HSL triples",
	Long: `Convert one or more hex colours (#RRGGBB, # optional) to the space
separated "H S% L%" form used by the theme's custom properties.

Malformed input converts to "0 0% 0%", matching what the theme applies.

Examples:
  tourkit hsl '#3B82F6'
  tourkit hsl D97706 78350F --quiet`,
	Args: cobra.MinimumNArgs(1),
	RunE: runHSL,
}

func init() {
	rootCmd.AddCommand(hslCmd)

	hslCmd.Flags().BoolVarP(&hslOpts.quiet, "quiet", "q", false,
		"Print only the HSL values")
}

func runHSL(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, hex := range args {
		if !colour.ValidHex(hex) {
			logger.Warn("not a hex colour, using black", "input", hex)
		}
		hsl := colour.HexToHSLString(hex)
		if hslOpts.quiet {
			fmt.Fprintln(out, hsl)
			continue
		}
		fmt.Fprintf(out, "%-9s %s\n", "#"+strings.TrimPrefix(hex, "#"), hsl)
	}
	return nil
}
