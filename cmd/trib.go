package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/parkstruct/gofooting/internal/tributary"
	"github.com/spf13/cobra"
)

var (
	tribNorth float64
	tribSouth float64
	tribEast  float64
	tribWest  float64
)

var tribCmd = &cobra.Command{
	Use:   "trib",
	Short: "Tributary area for a column by the midpoint method",
	Long: `Calculate the load-bearing area assigned to one column from its four
neighbor spacings: (N/2 + S/2) x (E/2 + W/2). A zero spacing means the
column sits on a building edge in that direction; corner and edge
columns are ordinary cases of the same formula.

Examples:
  # Interior column on a uniform 31' grid
  gofooting trib --north 31 --south 31 --east 31 --west 31

  # Corner column
  gofooting trib --north 31 --east 31

  # Variable spacing
  gofooting trib --north 45 --south 36 --east 31 --west 31`,
	RunE: runTrib,
}

func init() {
	rootCmd.AddCommand(tribCmd)

	tribCmd.Flags().Float64Var(&tribNorth, "north", 0, "Spacing to next column north (ft), 0 = edge")
	tribCmd.Flags().Float64Var(&tribSouth, "south", 0, "Spacing to next column south (ft), 0 = edge")
	tribCmd.Flags().Float64Var(&tribEast, "east", 0, "Spacing to next column east (ft), 0 = edge")
	tribCmd.Flags().Float64Var(&tribWest, "west", 0, "Spacing to next column west (ft), 0 = edge")
}

func runTrib(cmd *cobra.Command, args []string) error {
	s := tributary.Spacings{North: tribNorth, South: tribSouth, East: tribEast, West: tribWest}

	area, err := tributary.Area(s)
	if err != nil {
		return err
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Column Class:\t%s\n", s.Classify())
	fmt.Fprintf(w, "  Tributary X:\t%.2f ft\n", s.North/2+s.South/2)
	fmt.Fprintf(w, "  Tributary Y:\t%.2f ft\n", s.East/2+s.West/2)
	fmt.Fprintf(w, "  Tributary Area:\t%.2f SF\n", area)
	w.Flush()
	fmt.Println()

	return nil
}
