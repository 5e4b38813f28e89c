package cmd

import (
	"github.com/spf13/cobra"
)

var footingCmd = &cobra.Command{
	Use:   "footing",
	Short: "Footing design for columns, walls and full grids",
	Long: `Design foundations per ACI 318-19.

Subcommands:
  design  - Size an isolated spread footing for one column
  wall    - Size a continuous footing under a core wall
  grid    - Design every footing in a YAML grid definition

All designs check soil bearing, punching shear, one-way shear and
flexure, and fall back to a deep-foundation element when no practical
shallow footing converges.`,
}

func init() {
	rootCmd.AddCommand(footingCmd)
}
