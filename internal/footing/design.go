// Package footing sizes shallow foundations against soil bearing
// capacity and ACI 318-19 strength checks. The solver is a bounded
// search over plan width and effective depth; when no shallow footing
// inside the practical dimension range satisfies every check, the
// defined outcome is a deep-foundation element sized against an
// adjusted capacity, not an error.
package footing

import (
	"fmt"

	"github.com/parkstruct/gofooting/internal/aci"
	"github.com/parkstruct/gofooting/internal/tributary"
)

// Shape is the chosen footing geometry.
type Shape int

const (
	ShapeSquare Shape = iota // isolated square spread footing
	ShapeStrip               // continuous strip under a wall
	ShapeDeep                // deep-foundation fallback element
)

func (s Shape) String() string {
	switch s {
	case ShapeSquare:
		return "square"
	case ShapeStrip:
		return "strip"
	case ShapeDeep:
		return "deep-foundation"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Outcome distinguishes a converged shallow design from the
// deep-foundation fallback.
type Outcome int

const (
	OutcomeConverged Outcome = iota
	OutcomeDeepFoundation
)

func (o Outcome) String() string {
	if o == OutcomeDeepFoundation {
		return "deep-foundation"
	}
	return "converged"
}

// Check names as recorded in Design.Checks.
const (
	CheckBearing  = "bearing"
	CheckPunching = "punching-shear"
	CheckOneWay   = "one-way-shear"
	CheckFlexure  = "flexure"
)

// CheckResult records one code check at the final geometry. Skipped
// checks were disabled by configuration and never evaluated.
type CheckResult struct {
	Name        string  `json:"name"`
	Demand      float64 `json:"demand"`
	Capacity    float64 `json:"capacity"`
	Utilization float64 `json:"utilization"`
	Passed      bool    `json:"passed"`
	Skipped     bool    `json:"skipped,omitempty"`
}

// Design is the sized footing for one support, carrying enough detail
// for a cost layer to price it and a report layer to explain it. For
// strip footings the load fields are per linear foot of wall.
type Design struct {
	ColumnID string          `json:"column_id"`
	Class    tributary.Class `json:"class"`
	Shape    Shape           `json:"shape"`
	Outcome  Outcome         `json:"outcome"`

	ServiceLoad     float64 `json:"service_load"`
	FactoredLoad    float64 `json:"factored_load"`
	BearingCapacity float64 `json:"bearing_capacity"`

	// RequiredArea is service load over bearing capacity; the chosen
	// area is never smaller. For deep-foundation outcomes
	// AdjustedBearing is capacity x the configured factor and the
	// dimensions are sized against it.
	RequiredArea    float64 `json:"required_area"`
	AdjustedBearing float64 `json:"adjusted_bearing,omitempty"`

	Width   float64 `json:"width_ft"`
	Length  float64 `json:"length_ft"`
	DepthIn float64 `json:"depth_in"`
	Area    float64 `json:"area_sf"`

	BearingPressure float64 `json:"bearing_pressure"`

	ConcreteCY   float64 `json:"concrete_cy"`
	RebarLbs     float64 `json:"rebar_lbs"`
	ExcavationCY float64 `json:"excavation_cy"`

	Steel *aci.SteelLayout `json:"steel,omitempty"`

	Checks    []CheckResult `json:"checks"`
	Governing string        `json:"governing_check,omitempty"`

	Designation string `json:"designation"`
	Iterations  int    `json:"iterations"`
}

// governing picks the evaluated check with the highest utilization.
func governing(checks []CheckResult) string {
	name := ""
	best := -1.0
	for _, c := range checks {
		if c.Skipped {
			continue
		}
		if c.Utilization > best {
			best = c.Utilization
			name = c.Name
		}
	}
	return name
}

// InputError reports a caller contract violation, identified by the
// offending support. Inputs are never silently clamped.
type InputError struct {
	ColumnID string
	Msg      string
}

func (e *InputError) Error() string {
	if e.ColumnID == "" {
		return e.Msg
	}
	return fmt.Sprintf("column %s: %s", e.ColumnID, e.Msg)
}

func inputErrf(id, format string, args ...any) *InputError {
	return &InputError{ColumnID: id, Msg: fmt.Sprintf(format, args...)}
}
