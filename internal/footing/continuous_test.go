package footing

import (
	"testing"

	"github.com/parkstruct/gofooting/internal/loads"
	"github.com/parkstruct/gofooting/internal/tributary"
)

func wallConfig() Config {
	cfg := DefaultConfig()
	cfg.Checks = DefaultWallChecks()
	return cfg
}

func TestDesignContinuousConverges(t *testing.T) {
	load := loads.Result{Service: 9000, Factored: 11400}

	d, err := DesignContinuous("W1", load, 40, 1.0, wallConfig())
	if err != nil {
		t.Fatalf("DesignContinuous error: %v", err)
	}

	if d.Outcome != OutcomeConverged {
		t.Fatalf("outcome = %v, want converged", d.Outcome)
	}
	if d.Shape != ShapeStrip {
		t.Errorf("shape = %v, want strip", d.Shape)
	}
	if d.Class != tributary.ClassCoreWall {
		t.Errorf("class = %v, want core-wall", d.Class)
	}
	// 9000 / 3500 = 2.57' required, rounded to the 0.5' step.
	if d.Width != 3.0 {
		t.Errorf("width = %v, want 3.0", d.Width)
	}
	if d.Length != 40 {
		t.Errorf("length = %v, want the wall run 40", d.Length)
	}
	if d.DepthIn != 21 {
		t.Errorf("depth = %v, want 21", d.DepthIn)
	}
	if d.Designation != "FC3.0" {
		t.Errorf("designation = %q, want FC3.0", d.Designation)
	}
	if d.BearingPressure > DefaultConfig().BearingCapacity {
		t.Errorf("pressure %v exceeds capacity", d.BearingPressure)
	}
	if d.Steel == nil {
		t.Error("converged strip carries a steel layout for the design strip")
	}
}

func TestDesignContinuousPunchingSkipped(t *testing.T) {
	load := loads.Result{Service: 9000, Factored: 11400}

	d, err := DesignContinuous("W1", load, 40, 1.0, wallConfig())
	if err != nil {
		t.Fatalf("DesignContinuous error: %v", err)
	}

	found := false
	for _, c := range d.Checks {
		if c.Name == CheckPunching {
			found = true
			if !c.Skipped {
				t.Error("punching must be recorded as skipped for wall checks")
			}
		}
	}
	if !found {
		t.Error("punching check missing from the record")
	}
	if d.Governing == CheckPunching {
		t.Error("a skipped check can never govern")
	}
}

func TestDesignContinuousDeepFallback(t *testing.T) {
	// 200 kips per foot cannot be carried by any strip inside the
	// width cap.
	load := loads.Result{Service: 200000, Factored: 260000}

	d, err := DesignContinuous("W9", load, 74, 1.0, wallConfig())
	if err != nil {
		t.Fatalf("DesignContinuous error: %v", err)
	}

	if d.Outcome != OutcomeDeepFoundation {
		t.Fatalf("outcome = %v, want deep-foundation", d.Outcome)
	}
	if d.AdjustedBearing != 3500*3.5 {
		t.Errorf("adjusted bearing = %v, want 12250", d.AdjustedBearing)
	}
	// 200000 / 12250 = 16.33', rounded up to the 0.5' step.
	if d.Width != 16.5 {
		t.Errorf("width = %v, want 16.5", d.Width)
	}
	if d.Designation != "DF-C16.5" {
		t.Errorf("designation = %q, want DF-C16.5", d.Designation)
	}
}

func TestDesignContinuousInputErrors(t *testing.T) {
	good := loads.Result{Service: 9000, Factored: 11400}

	if _, err := DesignContinuous("W1", loads.Result{}, 40, 1.0, wallConfig()); err == nil {
		t.Error("zero load should fail")
	}
	if _, err := DesignContinuous("W1", good, 0, 1.0, wallConfig()); err == nil {
		t.Error("zero length should fail")
	}
	if _, err := DesignContinuous("W1", good, 40, -1, wallConfig()); err == nil {
		t.Error("negative thickness should fail")
	}
}

func TestWallWeight(t *testing.T) {
	w := Wall{ID: "ELEV", Length: 40, Thickness: 1.0, Height: 45}
	if got := w.Weight(); got != 6750 {
		t.Errorf("Weight = %v, want 6750", got)
	}
}
