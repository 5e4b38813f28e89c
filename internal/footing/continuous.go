package footing

import (
	"fmt"
	"math"

	"github.com/parkstruct/gofooting/internal/aci"
	"github.com/parkstruct/gofooting/internal/loads"
	"github.com/parkstruct/gofooting/internal/tributary"
)

// wallWidthStep is the strip-width increment (feet).
const wallWidthStep = 0.5

// Wall describes a continuous support: a core-wall run of fixed design
// length carrying a line load. The caller supplies the length; the
// sizer converges on the cross-sectional width.
type Wall struct {
	ID        string  `json:"id" yaml:"id"`
	Length    float64 `json:"length" yaml:"length"`       // feet
	Thickness float64 `json:"thickness" yaml:"thickness"` // feet
	Height    float64 `json:"height" yaml:"height"`       // feet

	// TribWidth is the slab strip carried by the wall (feet); the
	// direct per-foot loads bypass tributary computation.
	TribWidth     float64 `json:"trib_width" yaml:"trib_width"`
	EquipmentDead float64 `json:"equipment_dead" yaml:"equipment_dead"` // lbs per LF
	SpecialLive   float64 `json:"special_live" yaml:"special_live"`     // lbs per LF
}

// Weight is the wall self-weight per linear foot (lbs).
func (w Wall) Weight() float64 {
	return w.Height * w.Thickness * aci.ConcreteUnitWeight
}

// DesignContinuous sizes a strip footing for a line load. Loads in the
// result are per linear foot of wall; checks run on a one-foot design
// strip. Punching shear does not develop around a continuous support,
// so callers pass a Config with DefaultWallChecks; when left enabled
// it is evaluated on a one-foot run of wall treated as a column.
func DesignContinuous(id string, load loads.Result, lengthFt, thicknessFt float64, cfg Config) (Design, error) {
	if err := cfg.Validate(); err != nil {
		return Design{}, err
	}
	if load.Service <= 0 {
		return Design{}, inputErrf(id, "non-positive service load: %.2f lbs/LF", load.Service)
	}
	if load.Factored <= 0 {
		return Design{}, inputErrf(id, "non-positive factored load: %.2f lbs/LF", load.Factored)
	}
	if lengthFt <= 0 {
		return Design{}, inputErrf(id, "non-positive wall length: %.2f", lengthFt)
	}
	if thicknessFt <= 0 {
		return Design{}, inputErrf(id, "non-positive wall thickness: %.2f", thicknessFt)
	}

	// Required bearing area per linear foot equals the required width.
	requiredWidth := load.Service / cfg.BearingCapacity

	startWidth := math.Max(thicknessFt, roundUp(requiredWidth, wallWidthStep))
	iterations := 0

	for width := startWidth; width <= cfg.MaxWidth; width += wallWidthStep {
		depthTrial := math.Max(width/4, cfg.MinDepth/12)
		selfWeight := width * depthTrial * aci.ConcreteUnitWeight
		pressure := (load.Service + selfWeight) / width
		if cfg.Checks.Bearing && pressure > cfg.BearingCapacity {
			continue
		}

		qu := load.Factored / width

		d := cfg.MinDepth
		for i := 0; i < cfg.MaxDepthIterations; i, d = i+1, d+depthStep {
			iterations++

			var punch, oneWay CheckResult

			if cfg.Checks.Punching {
				phiVc, _ := aci.PunchingCapacity(cfg.Fc, d, thicknessFt*12, 12, aci.AlphaSInterior)
				dFt := d / 12
				punchArea := (thicknessFt + dFt) * (1 + dFt)
				vu := load.Factored - qu*punchArea
				punch = checkResult(CheckPunching, vu, phiVc)
				if !punch.Passed {
					continue
				}
			} else {
				punch = skipped(CheckPunching)
			}

			if cfg.Checks.OneWay {
				phiVc := aci.OneWayCapacity(cfg.Fc, 12, d)
				cantilever := (width-thicknessFt)/2 - d/12
				vu := 0.0
				if cantilever > 0 {
					vu = qu * cantilever
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
				cantFace := (width - thicknessFt) / 2
				mu := qu * cantFace * cantFace / 2 // per foot of wall
				steel = aci.FlexuralSteel(mu, 1.0, depthFt, cfg.Fc, cfg.Fy)
				if steel == nil {
					continue
				}
				flex = checkResult(CheckFlexure, steel.RequiredArea, steel.ProvidedArea)
			}

			bearing := skipped(CheckBearing)
			if cfg.Checks.Bearing {
				finalSelf := width * depthFt * aci.ConcreteUnitWeight
				bearing = checkResult(CheckBearing, (load.Service+finalSelf)/width, cfg.BearingCapacity)
				if !bearing.Passed {
					continue
				}
			}

			checks := []CheckResult{bearing, punch, oneWay, flex}

			concrete := width * depthFt * lengthFt / 27

			return Design{
				ColumnID:        id,
				Class:           tributary.ClassCoreWall,
				Shape:           ShapeStrip,
				Outcome:         OutcomeConverged,
				ServiceLoad:     load.Service,
				FactoredLoad:    load.Factored,
				BearingCapacity: cfg.BearingCapacity,
				RequiredArea:    requiredWidth,
				Width:           width,
				Length:          lengthFt,
				DepthIn:         depthIn,
				Area:            width * lengthFt,
				BearingPressure: load.Service / width,
				ConcreteCY:      concrete,
				RebarLbs:        concrete * cfg.ContinuousRebarRate,
				ExcavationCY:    concrete * cfg.ExcavationFactor,
				Steel:           steel,
				Checks:          checks,
				Governing:       governing(checks),
				Designation:     designationStrip(width),
				Iterations:      iterations,
			}, nil
		}
	}

	// Width bound exhausted: deep-foundation elements along the wall,
	// sized per linear foot against the adjusted capacity.
	adjusted := cfg.BearingCapacity * cfg.DeepFoundationFactor
	reqWidth := roundUp(load.Service/adjusted, wallWidthStep)
	if reqWidth < wallWidthStep {
		reqWidth = wallWidthStep
	}

	return Design{
		ColumnID:        id,
		Class:           tributary.ClassCoreWall,
		Shape:           ShapeDeep,
		Outcome:         OutcomeDeepFoundation,
		ServiceLoad:     load.Service,
		FactoredLoad:    load.Factored,
		BearingCapacity: cfg.BearingCapacity,
		RequiredArea:    load.Service / cfg.BearingCapacity,
		AdjustedBearing: adjusted,
		Width:           reqWidth,
		Length:          lengthFt,
		Area:            reqWidth * lengthFt,
		Designation:     designationDeepStrip(reqWidth),
		Iterations:      iterations,
	}, nil
}

func designationSquare(width float64) string {
	return fmt.Sprintf("FS%.1f", width)
}

func designationStrip(width float64) string {
	return fmt.Sprintf("FC%.1f", width)
}

func designationDeep(width float64) string {
	return fmt.Sprintf("DF-%.0fx%.0f", width, width)
}

func designationDeepStrip(width float64) string {
	return fmt.Sprintf("DF-C%.1f", width)
}
