// Package tributary assigns load-bearing floor area to columns by the
// midpoint method: each column carries the slab from itself to the
// midpoint toward every neighbor, and to the building edge where it
// has none. The method is exact for uniform loads and preserves
// equilibrium on both uniform and variable grids, which is the reason
// it replaces fixed quarter/half/full-bay ratios.
package tributary

import (
	"fmt"
	"math"
)

// rowTolerance is the offset (feet) within which two columns are
// considered to share a grid line.
const rowTolerance = 0.5

// equilibriumTolerance is the allowed relative error between the sum
// of tributary areas and the footprint area.
const equilibriumTolerance = 0.001

// Area returns the tributary area for one column from its neighbor
// spacings: (N/2 + S/2) x (E/2 + W/2). Corner and edge columns are
// ordinary cases with one or two zero spacings, not special branches.
func Area(s Spacings) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	tribX := s.North/2 + s.South/2
	tribY := s.East/2 + s.West/2
	return tribX * tribY, nil
}

// AreaByDirection is the simple entry point for isolated what-if
// checks: a compass-direction-to-distance mapping, with missing
// directions treated as building edges. It produces results identical
// to the grid path for the same spacings.
func AreaByDirection(spans map[Direction]float64) (float64, error) {
	for dir := range spans {
		switch dir {
		case North, South, East, West:
		default:
			return 0, fmt.Errorf("unknown direction %q", dir)
		}
	}
	return Area(Spacings{
		North: spans[North],
		South: spans[South],
		East:  spans[East],
		West:  spans[West],
	})
}

// BuildSpecs derives neighbor spacings and classifications for every
// column in a grid. Neighbors are the nearest columns sharing a grid
// line in each compass direction; a column with no neighbor in a
// direction sits on a building edge there. Pure and order-independent.
func BuildSpecs(cols []Column) ([]ColumnSpec, error) {
	specs := make([]ColumnSpec, len(cols))
	for i, c := range cols {
		s := Spacings{
			North: nearestAlong(c, cols, func(o Column) (float64, float64) { return o.X - c.X, o.Y - c.Y }),
			South: nearestAlong(c, cols, func(o Column) (float64, float64) { return c.X - o.X, o.Y - c.Y }),
			East:  nearestAlong(c, cols, func(o Column) (float64, float64) { return o.Y - c.Y, o.X - c.X }),
			West:  nearestAlong(c, cols, func(o Column) (float64, float64) { return c.Y - o.Y, o.X - c.X }),
		}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("column %s: %w", c.ID, err)
		}
		specs[i] = ColumnSpec{
			ID:       c.ID,
			X:        c.X,
			Y:        c.Y,
			Class:    s.Classify(),
			Spacings: s,
		}
	}
	return specs, nil
}

// nearestAlong returns the distance to the closest column whose signed
// along-axis offset is positive and whose cross-axis offset is within
// the grid-line tolerance, or zero when none exists.
func nearestAlong(c Column, cols []Column, offsets func(Column) (along, cross float64)) float64 {
	best := 0.0
	for _, o := range cols {
		along, cross := offsets(o)
		if along <= rowTolerance || math.Abs(cross) > rowTolerance {
			continue
		}
		if best == 0 || along < best {
			best = along
		}
	}
	return best
}

// Assignments is the bulk operation: one tributary assignment per
// column for an explicit list of grid positions. The result satisfies
// the equilibrium invariant for a full grid whose footprint spans the
// outermost columns.
func Assignments(cols []Column) ([]Assignment, error) {
	specs, err := BuildSpecs(cols)
	if err != nil {
		return nil, err
	}
	out := make([]Assignment, len(specs))
	for i, sp := range specs {
		area, err := Area(sp.Spacings)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", sp.ID, err)
		}
		out[i] = Assignment{
			ColumnID: sp.ID,
			Class:    sp.Class,
			TribX:    sp.Spacings.North/2 + sp.Spacings.South/2,
			TribY:    sp.Spacings.East/2 + sp.Spacings.West/2,
			Area:     area,
		}
	}
	return out, nil
}

// AssignmentsChecked is the bulk entry point for callers that hold the
// building footprint: one assignment per column, with the equilibrium
// invariant verified before the result is returned.
func AssignmentsChecked(cols []Column, fp Footprint) ([]Assignment, error) {
	asgs, err := Assignments(cols)
	if err != nil {
		return nil, err
	}
	if err := CheckEquilibrium(asgs, fp); err != nil {
		return nil, err
	}
	return asgs, nil
}

// EquilibriumError reports a tributary sum that disagrees with the
// supported footprint area beyond tolerance. It indicates a malformed
// grid or a calculator defect and must never be swallowed.
type EquilibriumError struct {
	Sum       float64
	Footprint float64
	RelErr    float64
}

func (e *EquilibriumError) Error() string {
	return fmt.Sprintf("tributary equilibrium violated: sum %.2f vs footprint %.2f (relative error %.4f)",
		e.Sum, e.Footprint, e.RelErr)
}

// CheckEquilibrium verifies that the assignments account for the whole
// footprint area within 0.1% relative error.
func CheckEquilibrium(asgs []Assignment, fp Footprint) error {
	total := fp.Area()
	if total <= 0 {
		return fmt.Errorf("non-positive footprint area: %.2f", total)
	}
	var sum float64
	for _, a := range asgs {
		sum += a.Area
	}
	rel := math.Abs(sum-total) / total
	if rel > equilibriumTolerance {
		return &EquilibriumError{Sum: sum, Footprint: total, RelErr: rel}
	}
	return nil
}
