package aci

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestSizeEffectFactor(t *testing.T) {
	tests := []struct {
		dInches float64
		want    float64
	}{
		{0, 1.41421},
		{10, 1.38675},
		{18, 1.36624},
		{25, 1.34840},
	}

	for _, tt := range tests {
		if got := SizeEffectFactor(tt.dInches); !almostEqual(got, tt.want, 1e-4) {
			t.Errorf("SizeEffectFactor(%v) = %v, want %v", tt.dInches, got, tt.want)
		}
	}
}

func TestPunchingStressEnvelope(t *testing.T) {
	const fc = 4000

	// Square interior column at moderate depth: the flat 4√f'c limit
	// governs.
	got := PunchingStress(fc, 1.0, AlphaSInterior, 18, 156)
	want := 4 * SizeEffectFactor(18) * math.Sqrt(fc)
	if !almostEqual(got, want, 1e-6) {
		t.Errorf("flat limit: got %v, want %v", got, want)
	}

	// Very elongated column: the aspect-ratio term 2 + 4/β governs.
	got = PunchingStress(fc, 10, AlphaSInterior, 18, 156)
	want = 2.4 * SizeEffectFactor(18) * math.Sqrt(fc)
	if !almostEqual(got, want, 1e-6) {
		t.Errorf("aspect term: got %v, want %v", got, want)
	}

	// Corner column with shallow depth: the perimeter term
	// α_s·d/b_o + 2 governs.
	got = PunchingStress(fc, 1.0, AlphaSCorner, 4, 64)
	want = 3.25 * SizeEffectFactor(4) * math.Sqrt(fc)
	if !almostEqual(got, want, 1e-6) {
		t.Errorf("perimeter term: got %v, want %v", got, want)
	}
}

func TestPunchingCapacity(t *testing.T) {
	phiVc, boIn := PunchingCapacity(4000, 18, 18, 24, AlphaSInterior)

	// b_o = 2(18+18) + 2(24+18)
	if boIn != 156 {
		t.Errorf("perimeter = %v, want 156", boIn)
	}
	if phiVc <= 0 {
		t.Fatalf("capacity must be positive, got %v", phiVc)
	}

	// Capacity grows with depth.
	deeper, _ := PunchingCapacity(4000, 24, 18, 24, AlphaSInterior)
	if deeper <= phiVc {
		t.Errorf("capacity at d=24 (%v) should exceed d=18 (%v)", deeper, phiVc)
	}

	// Corner columns have lower capacity only when the perimeter term
	// governs; at this geometry the flat limit governs for both.
	corner, _ := PunchingCapacity(4000, 18, 18, 24, AlphaSCorner)
	if corner > phiVc {
		t.Errorf("corner capacity %v should not exceed interior %v", corner, phiVc)
	}
}

func TestOneWayCapacity(t *testing.T) {
	got := OneWayCapacity(4000, 12, 18)
	want := PhiShear * 2 * SizeEffectFactor(18) * math.Sqrt(4000) * 12 * 18
	if !almostEqual(got, want, 1e-6) {
		t.Errorf("OneWayCapacity = %v, want %v", got, want)
	}

	if wider := OneWayCapacity(4000, 24, 18); !almostEqual(wider, 2*got, 1e-6) {
		t.Errorf("capacity should scale with width: %v vs %v", wider, got)
	}
}

func TestDevelopmentLength(t *testing.T) {
	// #5 bottom bar in 4000 PSI concrete: 60000/(25·√4000)·0.625 ≈ 23.7"
	got := DevelopmentLength(5, 4000, 60000)
	if !almostEqual(got, 23.717/12, 1e-3) {
		t.Errorf("ld #5 = %v ft, want ~1.976", got)
	}

	// #7 and larger use the 20 denominator.
	got = DevelopmentLength(7, 4000, 60000)
	if !almostEqual(got, 41.505/12, 1e-3) {
		t.Errorf("ld #7 = %v ft, want ~3.459", got)
	}

	// 12" floor.
	if got := DevelopmentLength(4, 10000, 20000); got != 1.0 {
		t.Errorf("ld floor = %v ft, want 1.0", got)
	}
}

func TestFlexuralSteelMinimumGoverns(t *testing.T) {
	// Light moment on a 6' x 21" mat: temperature steel 0.0018·b·h
	// governs and #5 bars land in the spacing window.
	s := FlexuralSteel(1000, 6, 1.75, 4000, 60000)
	if s == nil {
		t.Fatal("expected a steel layout")
	}
	if s.BarSize != 5 {
		t.Errorf("bar size = %d, want 5", s.BarSize)
	}
	if !almostEqual(s.MinimumArea, 2.7216, 1e-4) {
		t.Errorf("minimum area = %v, want 2.7216", s.MinimumArea)
	}
	if s.ProvidedArea < s.MinimumArea {
		t.Errorf("provided %v below minimum %v", s.ProvidedArea, s.MinimumArea)
	}
	if s.SpacingIn < MinBarSpacing || s.SpacingIn > MaxBarSpacing {
		t.Errorf("spacing %v outside %v..%v", s.SpacingIn, MinBarSpacing, MaxBarSpacing)
	}
	if s.WeightLbs <= 0 {
		t.Errorf("weight = %v, want positive", s.WeightLbs)
	}
}

func TestFlexuralSteelDemandGoverns(t *testing.T) {
	// 12' footing under a heavy factored moment: demand exceeds
	// minimum steel and a mid-size bar is selected.
	s := FlexuralSteel(689062.5, 12, 1.75, 4000, 60000)
	if s == nil {
		t.Fatal("expected a steel layout")
	}
	if !almostEqual(s.RequiredArea, 9.722, 1e-2) {
		t.Errorf("required area = %v, want ~9.722", s.RequiredArea)
	}
	if s.RequiredArea <= s.MinimumArea {
		t.Error("demand should govern over minimum steel")
	}
	if s.ProvidedArea < s.RequiredArea {
		t.Errorf("provided %v below required %v", s.ProvidedArea, s.RequiredArea)
	}
}

func TestFlexuralSteelNoFit(t *testing.T) {
	// Demand far beyond what #10 bars at minimum spacing can supply.
	if s := FlexuralSteel(1e7, 3, 1.5, 4000, 60000); s != nil {
		t.Errorf("expected nil layout, got %+v", s)
	}

	// Section too shallow for any effective depth.
	if s := FlexuralSteel(1000, 6, 0.25, 4000, 60000); s != nil {
		t.Errorf("expected nil layout for shallow section, got %+v", s)
	}
}
