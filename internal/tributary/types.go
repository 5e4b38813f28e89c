package tributary

import "fmt"

// Class is the closed set of column classifications. Corner, edge and
// interior columns fall out of the neighbor spacings; core-wall
// segments are assigned by the geometry layer and sized as continuous
// supports.
type Class int

const (
	ClassInterior Class = iota
	ClassEdge
	ClassCorner
	ClassCoreWall
)

func (c Class) String() string {
	switch c {
	case ClassInterior:
		return "interior"
	case ClassEdge:
		return "edge"
	case ClassCorner:
		return "corner"
	case ClassCoreWall:
		return "core-wall"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Direction identifies a compass neighbor of a column. North/south run
// along the building length (X), east/west along the width (Y).
type Direction string

const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// Spacings holds the distance to the adjacent column in each compass
// direction. A zero value means the column sits on a building edge in
// that direction; there is no extension past the column.
type Spacings struct {
	North float64 `json:"north" yaml:"north"`
	South float64 `json:"south" yaml:"south"`
	East  float64 `json:"east" yaml:"east"`
	West  float64 `json:"west" yaml:"west"`
}

// Validate rejects malformed (negative) spacings.
func (s Spacings) Validate() error {
	for _, d := range []struct {
		name Direction
		v    float64
	}{
		{North, s.North}, {South, s.South}, {East, s.East}, {West, s.West},
	} {
		if d.v < 0 {
			return fmt.Errorf("negative %s spacing: %.2f", d.name, d.v)
		}
	}
	return nil
}

// Classify derives the column classification from the number of
// missing neighbors. Two or more building edges make a corner, one an
// edge column, none an interior column.
func (s Spacings) Classify() Class {
	edges := 0
	for _, v := range []float64{s.North, s.South, s.East, s.West} {
		if v == 0 {
			edges++
		}
	}
	switch {
	case edges >= 2:
		return ClassCorner
	case edges == 1:
		return ClassEdge
	default:
		return ClassInterior
	}
}

// Column is a raw grid position handed over by the geometry layer.
type Column struct {
	ID string  `json:"id" yaml:"id"`
	X  float64 `json:"x" yaml:"x"`
	Y  float64 `json:"y" yaml:"y"`
}

// ColumnSpec is a column with its derived classification and neighbor
// spacings. Immutable once built.
type ColumnSpec struct {
	ID       string   `json:"id"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Class    Class    `json:"class"`
	Spacings Spacings `json:"spacings"`
}

// Footprint is the overall building plan extent. It is used for the
// equilibrium diagnostic, never for sizing.
type Footprint struct {
	Length float64 `json:"length" yaml:"length"` // X extent
	Width  float64 `json:"width" yaml:"width"`   // Y extent
}

// Area returns the plan area of the footprint.
func (f Footprint) Area() float64 {
	return f.Length * f.Width
}

// Assignment is the load-bearing area assigned to one column by the
// midpoint method.
type Assignment struct {
	ColumnID string  `json:"column_id"`
	Class    Class   `json:"class"`
	TribX    float64 `json:"tributary_length_x"`
	TribY    float64 `json:"tributary_width_y"`
	Area     float64 `json:"area"`
}
