package footing

import (
	"fmt"

	"github.com/parkstruct/gofooting/internal/aci"
	"github.com/parkstruct/gofooting/internal/loads"
	"github.com/parkstruct/gofooting/internal/tributary"
)

// Checks selects which code checks the sizer evaluates. A disabled
// check is recorded as skipped, never evaluated; this is how wall
// callers drop punching shear without the sizer special-casing them.
type Checks struct {
	Bearing  bool `json:"bearing" yaml:"bearing"`
	Punching bool `json:"punching" yaml:"punching"`
	OneWay   bool `json:"one_way" yaml:"one_way"`
	Flexure  bool `json:"flexure" yaml:"flexure"`
}

// DefaultChecks enables every check, the right set for isolated
// spread footings.
func DefaultChecks() Checks {
	return Checks{Bearing: true, Punching: true, OneWay: true, Flexure: true}
}

// DefaultWallChecks disables punching shear, which cannot develop
// around a continuous support.
func DefaultWallChecks() Checks {
	c := DefaultChecks()
	c.Punching = false
	return c
}

// Config is the full configuration surface for one design run. Values
// are supplied once per run and immutable for its duration. Defaults
// use the ft / PSF / lbs system.
type Config struct {
	// BearingCapacity is the allowable soil bearing pressure (PSF).
	BearingCapacity float64 `json:"bearing_capacity" yaml:"bearing_capacity"`

	// DeadLoadRate and LiveLoadRate are the per-area floor loads (PSF).
	// 115 = 100 slab + 15 superimposed; 50 = parking per IBC 2021.
	DeadLoadRate float64 `json:"dead_load_rate" yaml:"dead_load"`
	LiveLoadRate float64 `json:"live_load_rate" yaml:"live_load"`

	// Strength-design load factors.
	LoadFactorDead float64 `json:"load_factor_dead" yaml:"load_factor_dead"`
	LoadFactorLive float64 `json:"load_factor_live" yaml:"load_factor_live"`

	// Materials (PSI).
	Fc float64 `json:"fc" yaml:"fc"`
	Fy float64 `json:"fy" yaml:"fy"`

	// DeepFoundationFactor scales the surface bearing capacity into a
	// usable value for the deep-foundation fallback. The default 3.5
	// is a placeholder assumption, not a verified constant; validate
	// against project geotechnical guidance before relying on it.
	DeepFoundationFactor float64 `json:"deep_foundation_factor" yaml:"deep_foundation_factor"`

	// Practical plan-dimension bounds for shallow footings (feet).
	// Exceeding MaxWidth is the defined trigger for the
	// deep-foundation outcome, not an error.
	MinWidth float64 `json:"min_width" yaml:"min_width"`
	MaxWidth float64 `json:"max_width" yaml:"max_width"`

	// MinDepth is the minimum effective depth (inches); Cover is the
	// concrete cover below the mat steel (inches).
	MinDepth float64 `json:"min_depth" yaml:"min_depth"`
	Cover    float64 `json:"cover" yaml:"cover"`

	// MaxDepthIterations bounds the 2" depth refinement loop.
	MaxDepthIterations int `json:"max_depth_iterations" yaml:"max_depth_iterations"`

	// MinClearance is the minimum construction clearance between
	// adjacent footing edges in a grid run (feet). Footings closer
	// than this are flagged, not rejected.
	MinClearance float64 `json:"min_clearance" yaml:"min_clearance"`

	// Column cross-section assumed for shear perimeters (inches).
	ColumnWidth float64 `json:"column_width" yaml:"column_width"`
	ColumnDepth float64 `json:"column_depth" yaml:"column_depth"`

	// StructureHeight feeds column self-weight in full-grid runs
	// (feet). Zero means self-weight is supplied or ignored by the
	// caller.
	StructureHeight float64 `json:"structure_height" yaml:"structure_height"`

	// AllowLiveLoadReduction enables the 20% reduction at >= 2
	// equivalent floors.
	AllowLiveLoadReduction bool `json:"allow_live_load_reduction" yaml:"allow_live_load_reduction"`

	// Rebar estimating rates (lbs per CY) used when the flexure check
	// is disabled, and the excavation overdig factor.
	SpreadRebarRate     float64 `json:"spread_rebar_rate" yaml:"spread_rebar_rate"`
	ContinuousRebarRate float64 `json:"continuous_rebar_rate" yaml:"continuous_rebar_rate"`
	ExcavationFactor    float64 `json:"excavation_factor" yaml:"excavation_factor"`

	Checks Checks `json:"checks" yaml:"checks"`
}

// DefaultConfig returns the documented parking-structure defaults.
func DefaultConfig() Config {
	return Config{
		BearingCapacity:        3500,
		DeadLoadRate:           115,
		LiveLoadRate:           50,
		LoadFactorDead:         1.2,
		LoadFactorLive:         1.6,
		Fc:                     4000,
		Fy:                     60000,
		DeepFoundationFactor:   3.5,
		MinWidth:               3,
		MaxWidth:               15,
		MinDepth:               18,
		Cover:                  3,
		MaxDepthIterations:     50,
		MinClearance:           2,
		ColumnWidth:            18,
		ColumnDepth:            24,
		AllowLiveLoadReduction: true,
		SpreadRebarRate:        65,
		ContinuousRebarRate:    110,
		ExcavationFactor:       1.2,
		Checks:                 DefaultChecks(),
	}
}

// Validate rejects configurations that cannot drive a design run.
func (c Config) Validate() error {
	switch {
	case c.BearingCapacity <= 0:
		return fmt.Errorf("bearing capacity must be positive, got %.2f", c.BearingCapacity)
	case c.DeepFoundationFactor <= 0:
		return fmt.Errorf("deep foundation factor must be positive, got %.2f", c.DeepFoundationFactor)
	case c.MinWidth <= 0 || c.MaxWidth < c.MinWidth:
		return fmt.Errorf("invalid width bounds: min %.2f, max %.2f", c.MinWidth, c.MaxWidth)
	case c.MinDepth <= 0:
		return fmt.Errorf("minimum depth must be positive, got %.2f", c.MinDepth)
	case c.Fc <= 0 || c.Fy <= 0:
		return fmt.Errorf("invalid material strengths: f'c=%.0f, fy=%.0f", c.Fc, c.Fy)
	case c.MaxDepthIterations <= 0:
		return fmt.Errorf("depth iteration cap must be positive, got %d", c.MaxDepthIterations)
	case c.MinClearance < 0:
		return fmt.Errorf("minimum clearance must not be negative, got %.2f", c.MinClearance)
	}
	return nil
}

// LoadCase builds the load aggregation case for this run with the
// given equivalent-floors value.
func (c Config) LoadCase(equivalentFloors float64) loads.Case {
	return loads.Case{
		DeadRate:           c.DeadLoadRate,
		LiveRate:           c.LiveLoadRate,
		EquivalentFloors:   equivalentFloors,
		FactorDead:         c.LoadFactorDead,
		FactorLive:         c.LoadFactorLive,
		AllowLiveReduction: c.AllowLiveLoadReduction,
	}
}

// alphaS maps the column classification to the ACI punching shear
// location factor.
func alphaS(class tributary.Class) float64 {
	switch class {
	case tributary.ClassCorner:
		return aci.AlphaSCorner
	case tributary.ClassEdge:
		return aci.AlphaSEdge
	default:
		return aci.AlphaSInterior
	}
}

// columnSelfWeight is the dead weight of one column over the full
// structure height (lbs).
func (c Config) columnSelfWeight() float64 {
	return (c.ColumnWidth / 12) * (c.ColumnDepth / 12) * c.StructureHeight * aci.ConcreteUnitWeight
}
