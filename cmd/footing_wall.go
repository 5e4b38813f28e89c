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
	wallLength    float64
	wallThickness float64
	wallHeight    float64
	wallTribWidth float64
	wallEquipDead float64
	wallSpecialLL float64
	wallLoadPLF   float64 // direct service line load

	wallFloors  float64
	wallDead    float64
	wallLive    float64
	wallBearing float64

	wallWithPunching bool
	wallShowDiagram  bool
)

var footingWallCmd = &cobra.Command{
	Use:   "wall",
	Short: "Size a continuous footing under a core wall",
	Long: `Size a continuous strip footing for a core wall (elevator or stair
enclosure, utility or storage room). The load is carried per linear
foot of wall; the design length is fixed by the enclosure geometry and
the sizer converges on the cross-sectional width.

Punching shear does not apply to continuous supports and is disabled
by default; --with-punching re-enables it.

Examples:
  # Elevator core: 40 LF of 12" wall, 45' tall, plus machinery loads
  gofooting footing wall --length 40 --height 45 --floors 4.5 \
    --trib-width 2.5 --equipment-dead 445 --special-live 135

  # Directly supplied line load
  gofooting footing wall --length 74 --load-plf 9500`,
	RunE: runFootingWall,
}

func init() {
	footingCmd.AddCommand(footingWallCmd)

	footingWallCmd.Flags().Float64VarP(&wallLength, "length", "l", 0, "Wall design length (ft) [required]")
	footingWallCmd.Flags().Float64VarP(&wallThickness, "thickness", "t", 1.0, "Wall thickness (ft)")
	footingWallCmd.Flags().Float64Var(&wallHeight, "height", 0, "Wall height (ft), for self-weight")
	footingWallCmd.Flags().Float64Var(&wallTribWidth, "trib-width", 0, "Tributary slab strip width (ft)")
	footingWallCmd.Flags().Float64Var(&wallEquipDead, "equipment-dead", 0, "Equipment dead load (lbs/LF)")
	footingWallCmd.Flags().Float64Var(&wallSpecialLL, "special-live", 0, "Specialized live load (lbs/LF)")
	footingWallCmd.Flags().Float64Var(&wallLoadPLF, "load-plf", 0, "Direct service line load (lbs/LF), bypasses aggregation")

	footingWallCmd.Flags().Float64VarP(&wallFloors, "floors", "n", 0, "Equivalent loaded floors")
	footingWallCmd.Flags().Float64Var(&wallDead, "dead", 115, "Dead load rate (PSF)")
	footingWallCmd.Flags().Float64Var(&wallLive, "live", 50, "Live load rate (PSF)")
	footingWallCmd.Flags().Float64VarP(&wallBearing, "bearing", "q", 3500, "Allowable soil bearing capacity (PSF)")

	footingWallCmd.Flags().BoolVar(&wallWithPunching, "with-punching", false, "Evaluate punching shear on the wall strip")
	footingWallCmd.Flags().BoolVar(&wallShowDiagram, "diagram", false, "Show ASCII footing section")

	footingWallCmd.MarkFlagRequired("length")
}

func runFootingWall(cmd *cobra.Command, args []string) error {
	cfg := footing.DefaultConfig()
	cfg.BearingCapacity = wallBearing
	cfg.DeadLoadRate = wallDead
	cfg.LiveLoadRate = wallLive
	cfg.Checks = footing.DefaultWallChecks()
	if wallWithPunching {
		cfg.Checks.Punching = true
	}

	wall := footing.Wall{
		ID:            "W1",
		Length:        wallLength,
		Thickness:     wallThickness,
		Height:        wallHeight,
		TribWidth:     wallTribWidth,
		EquipmentDead: wallEquipDead,
		SpecialLive:   wallSpecialLL,
	}

	lc := cfg.LoadCase(wallFloors)
	load, err := lc.Wall(wall.TribWidth, wall.Weight(), wall.EquipmentDead, wall.SpecialLive)
	if wallLoadPLF > 0 {
		load, err = lc.Direct(wallLoadPLF, 0)
	}
	if err != nil {
		return err
	}

	result, err := footing.DesignContinuous(wall.ID, load, wall.Length, wall.Thickness, cfg)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     CONTINUOUS FOOTING DESIGN - ACI 318-19")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Wall Length:\t%.1f ft\n", wall.Length)
	fmt.Fprintf(w, "  Wall Thickness:\t%.2f ft\n", wall.Thickness)
	if wallLoadPLF == 0 {
		fmt.Fprintf(w, "  Wall Self-Weight:\t%.0f lbs/LF\n", wall.Weight())
		fmt.Fprintf(w, "  Tributary Strip:\t%.2f ft\n", wall.TribWidth)
		fmt.Fprintf(w, "  Equipment Dead:\t%.0f lbs/LF\n", wall.EquipmentDead)
		fmt.Fprintf(w, "  Specialized Live:\t%.0f lbs/LF\n", wall.SpecialLive)
	}
	fmt.Fprintf(w, "  Service Load:\t%.0f lbs/LF\n", load.Service)
	fmt.Fprintf(w, "  Factored Load:\t%.0f lbs/LF\n", load.Factored)
	fmt.Fprintf(w, "  Bearing Capacity:\t%.0f PSF\n", wallBearing)
	w.Flush()
	fmt.Println()

	printDesign(result)

	if wallShowDiagram && result.Outcome == footing.OutcomeConverged {
		fmt.Println("FOOTING SECTION:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Println(diagram.FootingSection(diagram.SectionData{
			WidthFt:       result.Width,
			DepthIn:       result.DepthIn,
			ColumnWidthIn: wall.Thickness * 12,
			IsStrip:       true,
			Designation:   result.Designation,
		}))
	}

	return nil
}
