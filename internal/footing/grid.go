package footing

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/parkstruct/gofooting/internal/tributary"
)

// GridFile is a YAML description of one structure's supports, as
// handed over by the geometry layer: the column grid, core walls, and
// the per-structure values that override the run configuration.
type GridFile struct {
	Name      string              `yaml:"name"`
	Footprint tributary.Footprint `yaml:"footprint"`

	// Optional overrides of the run configuration; zero means keep
	// the configured value.
	BearingCapacity  float64 `yaml:"bearing_capacity"`
	DeadLoad         float64 `yaml:"dead_load"`
	LiveLoad         float64 `yaml:"live_load"`
	StructureHeight  float64 `yaml:"height"`
	EquivalentFloors float64 `yaml:"equivalent_floors"`

	Columns []tributary.Column `yaml:"columns"`
	Walls   []Wall             `yaml:"walls"`
}

// LoadGrid reads and validates a grid definition file.
func LoadGrid(path string) (*GridFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var gf GridFile
	if err := yaml.Unmarshal(data, &gf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := gf.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &gf, nil
}

// Validate checks the grid definition contract.
func (g *GridFile) Validate() error {
	if len(g.Columns) == 0 && len(g.Walls) == 0 {
		return fmt.Errorf("grid defines no columns and no walls")
	}
	if len(g.Columns) > 0 {
		if g.EquivalentFloors <= 0 {
			return fmt.Errorf("equivalent_floors must be positive, got %.2f", g.EquivalentFloors)
		}
		if g.Footprint.Area() <= 0 {
			return fmt.Errorf("footprint must have positive area")
		}
	}
	seen := make(map[string]bool, len(g.Columns))
	for i, c := range g.Columns {
		if c.ID == "" {
			return fmt.Errorf("column %d has no id", i)
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate column id %q", c.ID)
		}
		seen[c.ID] = true
	}
	for i, w := range g.Walls {
		if w.ID == "" {
			return fmt.Errorf("wall %d has no id", i)
		}
		if w.Length <= 0 || w.Thickness <= 0 {
			return fmt.Errorf("wall %s: length and thickness must be positive", w.ID)
		}
	}
	return nil
}

// apply merges the file's overrides into a copy of the run config.
func (g *GridFile) apply(cfg Config) Config {
	if g.BearingCapacity > 0 {
		cfg.BearingCapacity = g.BearingCapacity
	}
	if g.DeadLoad > 0 {
		cfg.DeadLoadRate = g.DeadLoad
	}
	if g.LiveLoad > 0 {
		cfg.LiveLoadRate = g.LiveLoad
	}
	if g.StructureHeight > 0 {
		cfg.StructureHeight = g.StructureHeight
	}
	return cfg
}

// ClearanceConflict flags two footings whose plan extents come closer
// than the minimum construction clearance. A conflict is a diagnostic
// for the layout engineer; the individual designs remain valid.
type ClearanceConflict struct {
	A          string  `json:"a"`
	B          string  `json:"b"`
	DistanceFt float64 `json:"distance_ft"`
	RequiredFt float64 `json:"required_ft"`
}

// GridResult is the full design pass over one structure.
type GridResult struct {
	Name        string                 `json:"name"`
	Assignments []tributary.Assignment `json:"assignments"`
	Columns     []Design               `json:"columns"`
	Walls       []Design               `json:"walls"`
	Conflicts   []ClearanceConflict    `json:"clearance_conflicts,omitempty"`

	TotalConcreteCY   float64 `json:"total_concrete_cy"`
	TotalRebarLbs     float64 `json:"total_rebar_lbs"`
	TotalExcavationCY float64 `json:"total_excavation_cy"`
	DeepFoundations   int     `json:"deep_foundations"`
}

// checkClearances compares every footing pair against the minimum
// edge-to-edge clearance. designs are aligned index-for-index with
// cols. Distances are center-to-center; the required distance is the
// sum of the half-widths plus the clearance.
func checkClearances(cols []tributary.Column, designs []Design, clearance float64) []ClearanceConflict {
	var out []ClearanceConflict
	for i := range designs {
		for j := i + 1; j < len(designs); j++ {
			dist := math.Hypot(cols[i].X-cols[j].X, cols[i].Y-cols[j].Y)
			required := designs[i].Width/2 + designs[j].Width/2 + clearance
			if dist < required {
				out = append(out, ClearanceConflict{
					A:          designs[i].ColumnID,
					B:          designs[j].ColumnID,
					DistanceFt: dist,
					RequiredFt: required,
				})
			}
		}
	}
	return out
}

// DesignGrid runs the whole structure: tributary assignment with the
// equilibrium diagnostic, then one footing design per column and per
// wall. Column designs are independent pure computations, so they run
// concurrently; results land in order-preserving slots.
func DesignGrid(gf *GridFile, cfg Config) (*GridResult, error) {
	if err := gf.Validate(); err != nil {
		return nil, err
	}
	cfg = gf.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res := &GridResult{Name: gf.Name}

	if len(gf.Columns) > 0 {
		asgs, err := tributary.AssignmentsChecked(gf.Columns, gf.Footprint)
		if err != nil {
			return nil, err
		}
		res.Assignments = asgs

		lc := cfg.LoadCase(gf.EquivalentFloors)
		selfWeight := cfg.columnSelfWeight()

		res.Columns = make([]Design, len(asgs))
		var g errgroup.Group
		for i, a := range asgs {
			i, a := i, a
			g.Go(func() error {
				load, err := lc.Column(a.Area, selfWeight, 0)
				if err != nil {
					return inputErrf(a.ColumnID, "%v", err)
				}
				d, err := DesignSpread(a.ColumnID, a.Class, load, cfg)
				if err != nil {
					return err
				}
				res.Columns[i] = d
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		res.Conflicts = checkClearances(gf.Columns, res.Columns, cfg.MinClearance)
	}

	if len(gf.Walls) > 0 {
		wallCfg := cfg
		wallCfg.Checks = DefaultWallChecks()
		lc := cfg.LoadCase(gf.EquivalentFloors)

		for _, w := range gf.Walls {
			load, err := lc.Wall(w.TribWidth, w.Weight(), w.EquipmentDead, w.SpecialLive)
			if err != nil {
				return nil, inputErrf(w.ID, "%v", err)
			}
			d, err := DesignContinuous(w.ID, load, w.Length, w.Thickness, wallCfg)
			if err != nil {
				return nil, err
			}
			res.Walls = append(res.Walls, d)
		}
	}

	for _, d := range append(append([]Design{}, res.Columns...), res.Walls...) {
		res.TotalConcreteCY += d.ConcreteCY
		res.TotalRebarLbs += d.RebarLbs
		res.TotalExcavationCY += d.ExcavationCY
		if d.Outcome == OutcomeDeepFoundation {
			res.DeepFoundations++
		}
	}

	return res, nil
}
