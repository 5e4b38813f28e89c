package footing

import (
	"math"

	"github.com/parkstruct/gofooting/internal/aci"
	"github.com/parkstruct/gofooting/internal/loads"
	"github.com/parkstruct/gofooting/internal/tributary"
)

// depthStep is the effective-depth refinement increment (inches).
const depthStep = 2.0

// depthRounding rounds the cast depth up to constructible increments
// (inches).
const depthRounding = 3.0

// DesignSpread sizes an isolated square spread footing for one column.
//
// The solver walks plan widths from the bearing-governed minimum up to
// Config.MaxWidth in 1' steps; at each width it refines the effective
// depth in 2" steps until punching shear, one-way shear and flexure
// all pass or the iteration cap is hit. The first width with an
// adequate depth wins. Exhausting MaxWidth returns the
// deep-foundation outcome.
func DesignSpread(id string, class tributary.Class, load loads.Result, cfg Config) (Design, error) {
	if err := cfg.Validate(); err != nil {
		return Design{}, err
	}
	if load.Service <= 0 {
		return Design{}, inputErrf(id, "non-positive service load: %.2f", load.Service)
	}
	if load.Factored <= 0 {
		return Design{}, inputErrf(id, "non-positive factored load: %.2f", load.Factored)
	}

	requiredArea := load.Service / cfg.BearingCapacity

	startWidth := math.Max(cfg.MinWidth, math.Ceil(math.Sqrt(requiredArea)))
	iterations := 0

	for width := startWidth; width <= cfg.MaxWidth; width++ {
		area := width * width

		// Bearing at trial depth; footing self-weight adds to the
		// service pressure.
		depthTrial := math.Max(width/10, cfg.MinDepth/12)
		selfWeight := area * depthTrial * aci.ConcreteUnitWeight
		pressure := (load.Service + selfWeight) / area
		if cfg.Checks.Bearing && pressure > cfg.BearingCapacity {
			continue
		}

		qu := load.Factored / area
		colWFt := cfg.ColumnWidth / 12
		colDFt := cfg.ColumnDepth / 12

		d := math.Max(width*12/10, cfg.MinDepth)
		for i := 0; i < cfg.MaxDepthIterations; i, d = i+1, d+depthStep {
			iterations++

			var punch, oneWay CheckResult

			if cfg.Checks.Punching {
				phiVc, _ := aci.PunchingCapacity(cfg.Fc, d, cfg.ColumnWidth, cfg.ColumnDepth, alphaS(class))
				dFt := d / 12
				punchArea := (colWFt + dFt) * (colDFt + dFt)
				vu := load.Factored - qu*punchArea
				punch = checkResult(CheckPunching, vu, phiVc)
				if !punch.Passed {
					continue
				}
			} else {
				punch = skipped(CheckPunching)
			}

			if cfg.Checks.OneWay {
				phiVc := aci.OneWayCapacity(cfg.Fc, width*12, d)
				cantilever := (width-colWFt)/2 - d/12
				vu := 0.0
				if cantilever > 0 {
					vu = qu * width * cantilever
				}
				oneWay = checkResult(CheckOneWay, vu, phiVc)
				if !oneWay.Passed {
					continue
				}
			} else {
				oneWay = skipped(CheckOneWay)
			}

			depthIn := roundUp(d+cfg.Cover, depthRounding)
			depthFt := depthIn / 12

			flex := skipped(CheckFlexure)
			var steel *aci.SteelLayout
			if cfg.Checks.Flexure {
				cantFace := (width - colWFt) / 2
				mu := qu * width * cantFace * cantFace / 2
				steel = aci.FlexuralSteel(mu, width, depthFt, cfg.Fc, cfg.Fy)
				if steel == nil {
					continue
				}

				// Straight development at the column face, with the
				// excess-reinforcement reduction of ACI 25.4.10.1 when
				// minimum steel governs.
				ldReq := aci.DevelopmentLength(steel.BarSize, cfg.Fc, cfg.Fy)
				if steel.RequiredArea < steel.ProvidedArea {
					ldReq = math.Max(ldReq*steel.RequiredArea/steel.ProvidedArea, aci.MinDevelopmentLength/12)
				}
				ldAvail := cantFace - cfg.Cover/12
				if ldReq > ldAvail {
					continue
				}

				flex = checkResult(CheckFlexure, steel.RequiredArea, steel.ProvidedArea)
			}

			// Bearing recorded at the cast depth.
			bearing := skipped(CheckBearing)
			if cfg.Checks.Bearing {
				finalSelf := area * depthFt * aci.ConcreteUnitWeight
				bearing = checkResult(CheckBearing, (load.Service+finalSelf)/area, cfg.BearingCapacity)
				if !bearing.Passed {
					continue
				}
			}

			checks := []CheckResult{bearing, punch, oneWay, flex}

			concrete := area * depthFt / 27
			rebar := concrete * cfg.SpreadRebarRate
			if steel != nil {
				rebar = steel.WeightLbs
			}

			return Design{
				ColumnID:        id,
				Class:           class,
				Shape:           ShapeSquare,
				Outcome:         OutcomeConverged,
				ServiceLoad:     load.Service,
				FactoredLoad:    load.Factored,
				BearingCapacity: cfg.BearingCapacity,
				RequiredArea:    requiredArea,
				Width:           width,
				Length:          width,
				DepthIn:         depthIn,
				Area:            area,
				BearingPressure: load.Service / area,
				ConcreteCY:      concrete,
				RebarLbs:        rebar,
				ExcavationCY:    concrete * cfg.ExcavationFactor,
				Steel:           steel,
				Checks:          checks,
				Governing:       governing(checks),
				Designation:     designationSquare(width),
				Iterations:      iterations,
			}, nil
		}
	}

	return deepFallback(id, class, load, cfg, iterations), nil
}

// deepFallback sizes the deep-foundation element that replaces an
// unworkable shallow footing. The usable bearing value is the surface
// capacity scaled by the configured factor; the element footprint is
// sized the same way as a spread footing against that value.
func deepFallback(id string, class tributary.Class, load loads.Result, cfg Config, iterations int) Design {
	adjusted := cfg.BearingCapacity * cfg.DeepFoundationFactor
	reqArea := load.Service / adjusted
	width := math.Ceil(math.Sqrt(reqArea))
	if width < 1 {
		width = 1
	}

	return Design{
		ColumnID:        id,
		Class:           class,
		Shape:           ShapeDeep,
		Outcome:         OutcomeDeepFoundation,
		ServiceLoad:     load.Service,
		FactoredLoad:    load.Factored,
		BearingCapacity: cfg.BearingCapacity,
		RequiredArea:    load.Service / cfg.BearingCapacity,
		AdjustedBearing: adjusted,
		Width:           width,
		Length:          width,
		Area:            width * width,
		Designation:     designationDeep(width),
		Iterations:      iterations,
	}
}

func checkResult(name string, demand, capacity float64) CheckResult {
	util := 0.0
	if capacity > 0 {
		util = demand / capacity
	}
	return CheckResult{
		Name:        name,
		Demand:      demand,
		Capacity:    capacity,
		Utilization: util,
		Passed:      demand <= capacity,
	}
}

func skipped(name string) CheckResult {
	return CheckResult{Name: name, Skipped: true, Passed: true}
}

func roundUp(v, increment float64) float64 {
	return math.Ceil(v/increment) * increment
}
