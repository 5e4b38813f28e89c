package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/parkstruct/gofooting/internal/diagram"
	"github.com/parkstruct/gofooting/internal/footing"
	"github.com/spf13/cobra"
)

var (
	gridFile       string
	gridBearing    float64
	gridExportFile string
	gridVerbose    bool
)

var footingGridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Design every footing in a YAML grid definition",
	Long: `Run the full design pass over a structure: tributary assignment for
every column (with the equilibrium diagnostic), load aggregation, and
one footing design per column and per core wall. Columns are designed
concurrently.

The grid file is YAML:

  name: deck-a
  footprint: {length: 186, width: 124}
  equivalent_floors: 4.5
  height: 45
  columns:
    - {id: A1, x: 0, y: 0}
    - {id: A2, x: 31, y: 0}
  walls:
    - {id: ELEV, length: 40, thickness: 1.0, height: 45,
       trib_width: 2.5, equipment_dead: 445, special_live: 135}

Examples:
  gofooting footing grid --file deck-a.yaml
  gofooting footing grid --file deck-a.yaml --bearing 2000 -o plan.png`,
	RunE: runFootingGrid,
}

func init() {
	footingCmd.AddCommand(footingGridCmd)

	footingGridCmd.Flags().StringVarP(&gridFile, "file", "f", "", "Grid definition file (YAML) [required]")
	footingGridCmd.Flags().Float64VarP(&gridBearing, "bearing", "q", 0, "Override soil bearing capacity (PSF)")
	footingGridCmd.Flags().StringVarP(&gridExportFile, "output", "o", "", "Export foundation plan to file (png, svg, pdf)")
	footingGridCmd.Flags().BoolVarP(&gridVerbose, "verbose", "v", false, "Print every footing, not just the summary")

	footingGridCmd.MarkFlagRequired("file")
}

func runFootingGrid(cmd *cobra.Command, args []string) error {
	gf, err := footing.LoadGrid(gridFile)
	if err != nil {
		return err
	}

	cfg := footing.DefaultConfig()
	if gridBearing > 0 {
		cfg.BearingCapacity = gridBearing
		gf.BearingCapacity = 0 // CLI override beats the file value
	}

	result, err := footing.DesignGrid(gf, cfg)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     FOUNDATION DESIGN - %s\n", result.Name)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if gridVerbose {
		fmt.Println("FOOTINGS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  ID\tCLASS\tDESIGNATION\tSIZE (ft)\tDEPTH (in)\tLOAD (lbs)\tGOVERNING")
		for _, d := range result.Columns {
			printGridRow(w, d)
		}
		for _, d := range result.Walls {
			printGridRow(w, d)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("SUMMARY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Columns:\t%d\n", len(result.Columns))
	fmt.Fprintf(w, "  Core Walls:\t%d\n", len(result.Walls))
	fmt.Fprintf(w, "  Deep Foundations:\t%d\n", result.DeepFoundations)
	fmt.Fprintf(w, "  Clearance Conflicts:\t%d\n", len(result.Conflicts))
	fmt.Fprintf(w, "  Total Concrete:\t%.1f CY\n", result.TotalConcreteCY)
	fmt.Fprintf(w, "  Total Rebar:\t%.0f lbs\n", result.TotalRebarLbs)
	fmt.Fprintf(w, "  Total Excavation:\t%.1f CY\n", result.TotalExcavationCY)
	w.Flush()
	fmt.Println()

	if result.DeepFoundations > 0 {
		fmt.Println("  WARNING: deep foundations required - verify adjusted bearing")
		fmt.Println("  values with the project geotechnical engineer.")
		fmt.Println()
	}

	if len(result.Conflicts) > 0 {
		fmt.Println("  WARNING: adjacent footings encroach on the minimum")
		fmt.Println("  construction clearance:")
		for _, c := range result.Conflicts {
			fmt.Printf("    %s / %s:\t%.1f ft apart, %.1f ft required\n",
				c.A, c.B, c.DistanceFt, c.RequiredFt)
		}
		fmt.Println()
	}

	if gridExportFile != "" {
		var plan []diagram.PlanFooting
		for i, d := range result.Columns {
			c := gf.Columns[i]
			plan = append(plan, diagram.PlanFooting{
				X: c.X, Y: c.Y,
				WidthX: d.Width, WidthY: d.Length,
				Deep:  d.Outcome == footing.OutcomeDeepFoundation,
				Label: d.Designation,
			})
		}
		if err := diagram.ExportPlan(plan, gf.Footprint.Length, gf.Footprint.Width, gridExportFile); err != nil {
			return err
		}
		fmt.Printf("Plan exported to %s\n", gridExportFile)
	}

	return nil
}

func printGridRow(w *tabwriter.Writer, d footing.Design) {
	size := fmt.Sprintf("%.1f x %.1f", d.Width, d.Length)
	depth := fmt.Sprintf("%.0f", d.DepthIn)
	gov := d.Governing
	if d.Outcome == footing.OutcomeDeepFoundation {
		depth = "-"
		gov = "deep foundation"
	}
	fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%.0f\t%s\n",
		d.ColumnID, d.Class, d.Designation, size, depth, d.ServiceLoad, gov)
}
