package footing

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/parkstruct/gofooting/internal/loads"
	"github.com/parkstruct/gofooting/internal/tributary"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestDesignSpreadConverges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BearingCapacity = 4000

	load := loads.Result{Service: 500000, Factored: 600000}
	d, err := DesignSpread("C1", tributary.ClassInterior, load, cfg)
	if err != nil {
		t.Fatalf("DesignSpread error: %v", err)
	}

	if d.Outcome != OutcomeConverged {
		t.Fatalf("outcome = %v, want converged", d.Outcome)
	}
	if d.RequiredArea != 125 {
		t.Errorf("required area = %v, want exactly 125", d.RequiredArea)
	}
	if d.Width != 12 || d.Length != 12 {
		t.Errorf("plan = %v x %v, want 12 x 12", d.Width, d.Length)
	}
	if d.DepthIn != 21 {
		t.Errorf("depth = %v, want 21", d.DepthIn)
	}
	if d.Area < d.RequiredArea {
		t.Errorf("chosen area %v below required %v", d.Area, d.RequiredArea)
	}
	if d.Designation != "FS12.0" {
		t.Errorf("designation = %q, want FS12.0", d.Designation)
	}
	if d.Steel == nil {
		t.Fatal("converged design must carry a steel layout")
	}
	if d.Governing == "" {
		t.Error("converged design must name a governing check")
	}
	for _, c := range d.Checks {
		if !c.Passed {
			t.Errorf("check %s failed at the final geometry: %+v", c.Name, c)
		}
		if !c.Skipped && c.Utilization > 1 {
			t.Errorf("check %s over-utilized: %v", c.Name, c.Utilization)
		}
	}
}

func TestDesignSpreadRequiredAreaExact(t *testing.T) {
	// required_area is service load over bearing capacity with no
	// rounding, for converged and deep outcomes alike.
	load := loads.Result{Service: 500000, Factored: 600000}

	cfg := DefaultConfig()
	cfg.BearingCapacity = 2000
	d, err := DesignSpread("C1", tributary.ClassInterior, load, cfg)
	if err != nil {
		t.Fatalf("DesignSpread error: %v", err)
	}
	if d.RequiredArea != 250 {
		t.Errorf("required area = %v, want exactly 250", d.RequiredArea)
	}

	cfg.BearingCapacity = 4000
	d, err = DesignSpread("C1", tributary.ClassInterior, load, cfg)
	if err != nil {
		t.Fatalf("DesignSpread error: %v", err)
	}
	if d.RequiredArea != 125 {
		t.Errorf("required area = %v, want exactly 125", d.RequiredArea)
	}
}

func TestDesignSpreadDeepFallback(t *testing.T) {
	// 250 SF required against a 15' width cap: no shallow candidate
	// exists and the fallback sizes against 2000 x 3.5 PSF.
	cfg := DefaultConfig()
	cfg.BearingCapacity = 2000

	load := loads.Result{Service: 500000, Factored: 600000}
	d, err := DesignSpread("C9", tributary.ClassInterior, load, cfg)
	if err != nil {
		t.Fatalf("DesignSpread error: %v", err)
	}

	if d.Outcome != OutcomeDeepFoundation {
		t.Fatalf("outcome = %v, want deep-foundation", d.Outcome)
	}
	if d.Shape != ShapeDeep {
		t.Errorf("shape = %v, want deep-foundation", d.Shape)
	}
	if d.AdjustedBearing != 7000 {
		t.Errorf("adjusted bearing = %v, want 7000", d.AdjustedBearing)
	}
	if d.RequiredArea != 250 {
		t.Errorf("required area = %v, want 250", d.RequiredArea)
	}
	// ceil(sqrt(500000/7000)) = 9
	if d.Width != 9 {
		t.Errorf("width = %v, want 9", d.Width)
	}
	if d.Designation != "DF-9x9" {
		t.Errorf("designation = %q, want DF-9x9", d.Designation)
	}
	if d.Steel != nil {
		t.Error("deep-foundation outcome carries no mat steel")
	}
}

func TestDesignSpreadChosenAreaCoversRequired(t *testing.T) {
	cfg := DefaultConfig()
	for _, service := range []float64{25000, 120000, 350000, 670000} {
		load := loads.Result{Service: service, Factored: 1.4 * service}
		d, err := DesignSpread("C1", tributary.ClassInterior, load, cfg)
		if err != nil {
			t.Fatalf("service %v: %v", service, err)
		}
		if d.Outcome != OutcomeConverged {
			t.Fatalf("service %v: expected convergence", service)
		}
		if d.Area < d.RequiredArea {
			t.Errorf("service %v: area %v below required %v", service, d.Area, d.RequiredArea)
		}
		if d.BearingPressure > cfg.BearingCapacity {
			t.Errorf("service %v: pressure %v exceeds capacity", service, d.BearingPressure)
		}
	}
}

func TestDesignSpreadMonotonicInBearing(t *testing.T) {
	load := loads.Result{Service: 400000, Factored: 520000}

	prev := math.Inf(1)
	for _, q := range []float64{2500, 3000, 3500, 4000} {
		cfg := DefaultConfig()
		cfg.BearingCapacity = q
		d, err := DesignSpread("C1", tributary.ClassInterior, load, cfg)
		if err != nil {
			t.Fatalf("capacity %v: %v", q, err)
		}
		if d.RequiredArea > prev {
			t.Errorf("required area grew from %v to %v as capacity rose to %v", prev, d.RequiredArea, q)
		}
		prev = d.RequiredArea
	}
}

func TestDesignSpreadIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	load := loads.Result{Service: 300000, Factored: 390000}

	first, err := DesignSpread("C1", tributary.ClassEdge, load, cfg)
	if err != nil {
		t.Fatalf("DesignSpread error: %v", err)
	}
	second, err := DesignSpread("C1", tributary.ClassEdge, load, cfg)
	if err != nil {
		t.Fatalf("DesignSpread error: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated run differs (-first +second):\n%s", diff)
	}
}

func TestDesignSpreadCornerNeedsMoreDepthThanInterior(t *testing.T) {
	// α_s drops from 40 to 20 at a corner, so for the same load the
	// corner design is never shallower or smaller.
	cfg := DefaultConfig()
	load := loads.Result{Service: 450000, Factored: 585000}

	interior, err := DesignSpread("I1", tributary.ClassInterior, load, cfg)
	if err != nil {
		t.Fatalf("interior: %v", err)
	}
	corner, err := DesignSpread("K1", tributary.ClassCorner, load, cfg)
	if err != nil {
		t.Fatalf("corner: %v", err)
	}
	if corner.Width < interior.Width {
		t.Errorf("corner width %v below interior %v", corner.Width, interior.Width)
	}
	if corner.Width == interior.Width && corner.DepthIn < interior.DepthIn {
		t.Errorf("corner depth %v below interior %v at equal width", corner.DepthIn, interior.DepthIn)
	}
}

func TestDesignSpreadInputErrors(t *testing.T) {
	cfg := DefaultConfig()

	_, err := DesignSpread("C7", tributary.ClassInterior, loads.Result{}, cfg)
	var inErr *InputError
	if !errors.As(err, &inErr) {
		t.Fatalf("want *InputError, got %v", err)
	}
	if inErr.ColumnID != "C7" {
		t.Errorf("error names column %q, want C7", inErr.ColumnID)
	}

	_, err = DesignSpread("C7", tributary.ClassInterior,
		loads.Result{Service: 1000, Factored: -1}, cfg)
	if !errors.As(err, &inErr) {
		t.Errorf("negative factored load: want *InputError, got %v", err)
	}

	bad := DefaultConfig()
	bad.MaxWidth = 1
	_, err = DesignSpread("C7", tributary.ClassInterior,
		loads.Result{Service: 1000, Factored: 1400}, bad)
	if err == nil {
		t.Error("invalid width bounds should fail validation")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero bearing", func(c *Config) { c.BearingCapacity = 0 }},
		{"zero deep factor", func(c *Config) { c.DeepFoundationFactor = 0 }},
		{"inverted widths", func(c *Config) { c.MinWidth = 10; c.MaxWidth = 5 }},
		{"zero min depth", func(c *Config) { c.MinDepth = 0 }},
		{"zero fc", func(c *Config) { c.Fc = 0 }},
		{"zero iteration cap", func(c *Config) { c.MaxDepthIterations = 0 }},
		{"negative clearance", func(c *Config) { c.MinClearance = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}
