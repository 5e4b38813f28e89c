// Package loads turns tributary areas into axial column loads and wall
// line loads. It applies no unit conversion: callers keep area,
// load-per-area and force in one consistent system (the documented
// defaults are ft² / PSF / lbs).
package loads

import "fmt"

// Case is the load configuration for one design run. There are no
// module-level defaults; footing.DefaultConfig supplies the documented
// parking-structure values and threads them here.
type Case struct {
	// DeadRate and LiveRate are loads per unit floor area (PSF).
	DeadRate float64 `json:"dead_rate" yaml:"dead_load"`
	LiveRate float64 `json:"live_rate" yaml:"live_load"`

	// EquivalentFloors is the real-valued count of loaded floors,
	// supplied by the geometry layer (total supported floor area over
	// single-floor footprint). Half-footprint levels contribute
	// fractional floors.
	EquivalentFloors float64 `json:"equivalent_floors" yaml:"equivalent_floors"`

	// FactorDead and FactorLive are the strength-design load factors.
	FactorDead float64 `json:"factor_dead" yaml:"factor_dead"`
	FactorLive float64 `json:"factor_live" yaml:"factor_live"`

	// AllowLiveReduction enables the conservative 20% live-load
	// reduction for supports carrying two or more equivalent floors.
	// Simplification of the ASCE 7 area-based method.
	AllowLiveReduction bool `json:"allow_live_reduction" yaml:"allow_live_reduction"`
}

// Result carries the aggregated service and factored loads for one
// support, split by source so a report layer can explain the total.
type Result struct {
	Service  float64 `json:"service"`
	Factored float64 `json:"factored"`

	Dead    float64 `json:"dead"`
	Live    float64 `json:"live"`
	Special float64 `json:"special"`

	LiveReduced bool `json:"live_reduced"`
}

// effectiveLiveRate applies the reduction strategy.
func (c Case) effectiveLiveRate() (rate float64, reduced bool) {
	if c.AllowLiveReduction && c.EquivalentFloors >= 2.0 {
		return 0.8 * c.LiveRate, true
	}
	return c.LiveRate, false
}

// Column aggregates the axial load on a column:
//
//	load = area x (dead + live) x equivalent floors + self-weight + special
//
// selfWeight is the column's own dead weight; special is a
// directly-supplied additive dead load (equipment pads, pit slabs).
// Both bypass tributary scaling.
func (c Case) Column(tribArea, selfWeight, special float64) (Result, error) {
	if tribArea < 0 {
		return Result{}, fmt.Errorf("negative tributary area: %.2f", tribArea)
	}
	if tribArea > 0 && c.EquivalentFloors <= 0 {
		return Result{}, fmt.Errorf("equivalent floors must be positive for tributary loads, got %.2f", c.EquivalentFloors)
	}

	liveRate, reduced := c.effectiveLiveRate()

	dead := tribArea*c.DeadRate*c.EquivalentFloors + selfWeight + special
	live := tribArea * liveRate * c.EquivalentFloors

	return Result{
		Service:     dead + live,
		Factored:    c.FactorDead*dead + c.FactorLive*live,
		Dead:        dead,
		Live:        live,
		Special:     special,
		LiveReduced: reduced,
	}, nil
}

// Wall aggregates the line load (force per linear foot) on a
// continuous support. wallWeight is the wall self-weight per foot;
// tribWidth is the slab strip the wall carries; equipmentDead and
// specialLive are direct per-foot loads for elevator machinery, stair
// flights, or equipment rooms, passed through unchanged.
func (c Case) Wall(tribWidth, wallWeight, equipmentDead, specialLive float64) (Result, error) {
	if tribWidth < 0 {
		return Result{}, fmt.Errorf("negative tributary width: %.2f", tribWidth)
	}
	if tribWidth > 0 && c.EquivalentFloors <= 0 {
		return Result{}, fmt.Errorf("equivalent floors must be positive for tributary loads, got %.2f", c.EquivalentFloors)
	}

	liveRate, reduced := c.effectiveLiveRate()

	dead := tribWidth*c.DeadRate*c.EquivalentFloors + wallWeight + equipmentDead
	live := tribWidth*liveRate*c.EquivalentFloors + specialLive

	return Result{
		Service:     dead + live,
		Factored:    c.FactorDead*dead + c.FactorLive*live,
		Dead:        dead,
		Live:        live,
		Special:     equipmentDead + specialLive,
		LiveReduced: reduced,
	}, nil
}

// Direct wraps a caller-supplied load that bypasses tributary
// computation entirely (core walls, elevator pits, stair towers). The
// load is passed through unchanged into the same sizing path as
// tributary-derived loads; the dead/live split is used only for
// factoring.
func (c Case) Direct(dead, live float64) (Result, error) {
	if dead+live <= 0 {
		return Result{}, fmt.Errorf("direct load must be positive, got %.2f", dead+live)
	}
	return Result{
		Service:  dead + live,
		Factored: c.FactorDead*dead + c.FactorLive*live,
		Dead:     dead,
		Live:     live,
		Special:  dead + live,
	}, nil
}
