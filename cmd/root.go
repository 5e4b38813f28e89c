package cmd

import (
	"fmt"
	"os"

	"github.com/parkstruct/gofooting/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gofooting",
	Short: "Parking Structure Foundation Design Tool",
	Long: `gofooting - Foundation Designer for Parking Structures

A CLI tool for sizing foundations under multi-level parking
structures: tributary areas by the midpoint method, axial load
aggregation, and iterative spread/continuous footing design per
ACI 318-19.

This tool helps structural engineers perform:
  - Tributary area calculation for uniform and variable column grids
  - Column load aggregation with equivalent-floor scaling
  - Spread footing design (bearing, punching shear, one-way shear, flexure)
  - Continuous footing design under core walls
  - Deep-foundation fallback sizing when shallow footings don't converge`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gofooting v%-45s║\n", version.Version)
		fmt.Println("  ║   Foundation Designer for Parking Structures              ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for foundation design under multi-level parking")
		fmt.Println("  structures, following ACI 318-19 provisions.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Midpoint-method tributary areas for variable grids")
		fmt.Println("    • Service and factored column load aggregation")
		fmt.Println("    • Iterative spread and continuous footing sizing")
		fmt.Println("    • Deep-foundation fallback at configurable bearing multiple")
		fmt.Println()
		fmt.Println("  Use 'gofooting --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
