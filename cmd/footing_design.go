package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/parkstruct/gofooting/internal/diagram"
	"github.com/parkstruct/gofooting/internal/footing"
	"github.com/parkstruct/gofooting/internal/loads"
	"github.com/parkstruct/gofooting/internal/tributary"
	"github.com/spf13/cobra"
)

var (
	// Grid spacings (feet); zero means building edge
	designNorth float64
	designSouth float64
	designEast  float64
	designWest  float64

	// Loading
	designFloors  float64
	designDead    float64
	designLive    float64
	designSpecial float64
	designLoad    float64 // direct service load, bypasses tributary

	// Soil and materials
	designBearing float64
	designFc      float64
	designFy      float64

	// Sizer bounds
	designMaxWidth   float64
	designDeepFactor float64

	designNoReduction bool

	// Output options
	designShowDiagram bool
	designExportFile  string
)

var footingDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Size an isolated spread footing for one column",
	Long: `Aggregate the axial load on a column from its tributary area and size
the smallest spread footing that satisfies bearing, punching shear,
one-way shear and flexure per ACI 318-19.

The tributary area comes from the four neighbor spacings by the
midpoint method: (N/2 + S/2) x (E/2 + W/2). A zero spacing means the
column sits on a building edge in that direction. When no shallow
footing up to --max-width converges, the result is a deep-foundation
element sized at bearing x --deep-factor.

Examples:
  # Interior column on a 31' grid, 4.5 equivalent floors
  gofooting footing design --north 31 --south 31 --east 31 --west 31 --floors 4.5

  # Corner column with low bearing capacity
  gofooting footing design --north 31 --east 31 --floors 4.5 --bearing 1500

  # Directly supplied service load (equipment pad)
  gofooting footing design --load 250000`,
	RunE: runFootingDesign,
}

func init() {
	footingCmd.AddCommand(footingDesignCmd)

	// Grid flags
	footingDesignCmd.Flags().Float64Var(&designNorth, "north", 0, "Spacing to next column north (ft), 0 = edge")
	footingDesignCmd.Flags().Float64Var(&designSouth, "south", 0, "Spacing to next column south (ft), 0 = edge")
	footingDesignCmd.Flags().Float64Var(&designEast, "east", 0, "Spacing to next column east (ft), 0 = edge")
	footingDesignCmd.Flags().Float64Var(&designWest, "west", 0, "Spacing to next column west (ft), 0 = edge")

	// Loading flags
	footingDesignCmd.Flags().Float64VarP(&designFloors, "floors", "n", 0, "Equivalent loaded floors (fractional allowed)")
	footingDesignCmd.Flags().Float64Var(&designDead, "dead", 115, "Dead load rate (PSF)")
	footingDesignCmd.Flags().Float64Var(&designLive, "live", 50, "Live load rate (PSF)")
	footingDesignCmd.Flags().Float64Var(&designSpecial, "special", 0, "Direct additional dead load (lbs)")
	footingDesignCmd.Flags().Float64Var(&designLoad, "load", 0, "Direct service load (lbs), bypasses tributary aggregation")

	// Soil and material flags
	footingDesignCmd.Flags().Float64VarP(&designBearing, "bearing", "q", 3500, "Allowable soil bearing capacity (PSF)")
	footingDesignCmd.Flags().Float64Var(&designFc, "fc", 4000, "Concrete compressive strength f'c (PSI)")
	footingDesignCmd.Flags().Float64Var(&designFy, "fy", 60000, "Rebar yield strength fy (PSI)")

	// Bound flags
	footingDesignCmd.Flags().Float64Var(&designMaxWidth, "max-width", 15, "Maximum practical footing width (ft)")
	footingDesignCmd.Flags().Float64Var(&designDeepFactor, "deep-factor", 3.5, "Deep-foundation bearing multiplier")
	footingDesignCmd.Flags().BoolVar(&designNoReduction, "no-ll-reduction", false, "Disable live load reduction")

	// Output flags
	footingDesignCmd.Flags().BoolVar(&designShowDiagram, "diagram", false, "Show ASCII footing section")
	footingDesignCmd.Flags().StringVarP(&designExportFile, "output", "o", "", "Export footing plan to file (png, svg, pdf)")
}

func runFootingDesign(cmd *cobra.Command, args []string) error {
	cfg := footing.DefaultConfig()
	cfg.BearingCapacity = designBearing
	cfg.DeadLoadRate = designDead
	cfg.LiveLoadRate = designLive
	cfg.Fc = designFc
	cfg.Fy = designFy
	cfg.MaxWidth = designMaxWidth
	cfg.DeepFoundationFactor = designDeepFactor
	cfg.AllowLiveLoadReduction = !designNoReduction

	spacings := tributary.Spacings{
		North: designNorth, South: designSouth,
		East: designEast, West: designWest,
	}

	var (
		class tributary.Class
		area  float64
		load  loads.Result
		err   error
	)

	if designLoad > 0 {
		class = tributary.ClassInterior
		load, err = cfg.LoadCase(designFloors).Direct(designLoad, 0)
	} else {
		class = spacings.Classify()
		area, err = tributary.Area(spacings)
		if err != nil {
			return err
		}
		load, err = cfg.LoadCase(designFloors).Column(area, 0, designSpecial)
	}
	if err != nil {
		return err
	}

	result, err := footing.DesignSpread("C1", class, load, cfg)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SPREAD FOOTING DESIGN - ACI 318-19")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if designLoad == 0 {
		fmt.Fprintf(w, "  Column Class:\t%s\n", class)
		fmt.Fprintf(w, "  Tributary Area:\t%.1f SF\n", area)
		fmt.Fprintf(w, "  Equivalent Floors:\t%.2f\n", designFloors)
		fmt.Fprintf(w, "  Dead / Live Rate:\t%.0f / %.0f PSF\n", designDead, designLive)
	}
	fmt.Fprintf(w, "  Service Load:\t%.0f lbs\n", load.Service)
	fmt.Fprintf(w, "  Factored Load:\t%.0f lbs\n", load.Factored)
	fmt.Fprintf(w, "  Bearing Capacity:\t%.0f PSF\n", designBearing)
	fmt.Fprintf(w, "  f'c / fy:\t%.0f / %.0f PSI\n", designFc, designFy)
	w.Flush()
	fmt.Println()

	printDesign(result)

	if designShowDiagram && result.Outcome == footing.OutcomeConverged {
		steelNote := ""
		if result.Steel != nil {
			steelNote = result.Steel.Designation
		}
		fmt.Println("FOOTING SECTION:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Println(diagram.FootingSection(diagram.SectionData{
			WidthFt:       result.Width,
			DepthIn:       result.DepthIn,
			ColumnWidthIn: cfg.ColumnWidth,
			Designation:   result.Designation,
			SteelNote:     steelNote,
		}))
	}

	if designExportFile != "" {
		err := diagram.ExportPlan([]diagram.PlanFooting{{
			X: result.Width / 2, Y: result.Width / 2,
			WidthX: result.Width, WidthY: result.Length,
			Deep:  result.Outcome == footing.OutcomeDeepFoundation,
			Label: result.Designation,
		}}, result.Width, result.Length, designExportFile)
		if err != nil {
			return err
		}
		fmt.Printf("Plan exported to %s\n", designExportFile)
	}

	return nil
}

// printDesign renders the shared result sections for spread and
// continuous designs.
func printDesign(d footing.Design) {
	perLF := ""
	if d.Shape == footing.ShapeStrip {
		perLF = "/LF"
	}

	if d.Outcome == footing.OutcomeDeepFoundation {
		fmt.Println("RESULT: DEEP FOUNDATION REQUIRED")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Service Load:\t%.0f lbs%s\n", d.ServiceLoad, perLF)
		fmt.Fprintf(w, "  Surface Bearing:\t%.0f PSF\n", d.BearingCapacity)
		fmt.Fprintf(w, "  Adjusted Bearing:\t%.0f PSF\n", d.AdjustedBearing)
		fmt.Fprintf(w, "  Element Footprint:\t%.1f x %.1f ft\n", d.Width, d.Length)
		fmt.Fprintf(w, "  Designation:\t%s\n", d.Designation)
		w.Flush()
		fmt.Println()
		fmt.Println("  No shallow footing within the practical dimension range")
		fmt.Println("  satisfies all checks. Verify the adjusted bearing value with")
		fmt.Println("  the project geotechnical engineer.")
		fmt.Println()
		return
	}

	fmt.Println("FOOTING:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Designation:\t%s\n", d.Designation)
	fmt.Fprintf(w, "  Plan Size:\t%.1f x %.1f ft\n", d.Width, d.Length)
	fmt.Fprintf(w, "  Depth:\t%.0f in\n", d.DepthIn)
	fmt.Fprintf(w, "  Required Area:\t%.1f SF%s\n", d.RequiredArea, perLF)
	fmt.Fprintf(w, "  Provided Area:\t%.1f SF\n", d.Area)
	fmt.Fprintf(w, "  Bearing Pressure:\t%.0f PSF\n", d.BearingPressure)
	if d.Steel != nil {
		fmt.Fprintf(w, "  Reinforcement:\t%s\n", d.Steel.Designation)
	}
	fmt.Fprintf(w, "  Concrete:\t%.2f CY\n", d.ConcreteCY)
	fmt.Fprintf(w, "  Rebar:\t%.0f lbs\n", d.RebarLbs)
	fmt.Fprintf(w, "  Excavation:\t%.2f CY\n", d.ExcavationCY)
	w.Flush()
	fmt.Println()

	fmt.Println("CODE CHECKS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, c := range d.Checks {
		if c.Skipped {
			fmt.Fprintf(w, "  %s:\tskipped\n", c.Name)
			continue
		}
		status := "OK"
		if !c.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(w, "  %s:\t%.0f / %.0f\t(%.0f%%)\t%s\n", c.Name, c.Demand, c.Capacity, c.Utilization*100, status)
	}
	w.Flush()
	fmt.Println()
	if d.Governing != "" {
		fmt.Printf("  Governing check: %s\n", d.Governing)
	}
	fmt.Printf("  Converged after %d iterations\n", d.Iterations)
	fmt.Println()
}
