package aci

import "math"

// ACI 318-19 Constants

const (
	// Strength reduction factors (Section 21.2)
	PhiShear   = 0.75 // Shear (punching and one-way)
	PhiFlexure = 0.90 // Tension-controlled flexure

	// Punching shear location factors α_s (Section 22.6.5.3)
	AlphaSInterior = 40.0
	AlphaSEdge     = 30.0
	AlphaSCorner   = 20.0

	// Minimum temperature/shrinkage steel ratio (Section 24.4.3.2)
	TempShrinkageRatio = 0.0018

	// Normal-weight concrete unit weight (PCF)
	ConcreteUnitWeight = 150.0

	// Bar spacing limits for footing mats (inches)
	MinBarSpacing = 6.0
	MaxBarSpacing = 18.0

	// Minimum development length (Section 25.4.2.1), inches
	MinDevelopmentLength = 12.0
)

// SizeEffectFactor calculates λs per ACI 318-19 Eq. 22.5.5.1.3
func SizeEffectFactor(dInches float64) float64 {
	return math.Sqrt(2.0 / (1.0 + 0.004*dInches))
}

// PunchingStress calculates the nominal two-way shear stress (PSI)
// per ACI 318-19 Table 22.6.5.2, taking the governing minimum of the
// three expressions.
//
//	beta    - column aspect ratio (long side / short side)
//	alphaS  - location factor (40 interior, 30 edge, 20 corner)
//	dInches - effective depth
//	boIn    - critical section perimeter at d/2 from the column face
func PunchingStress(fc, beta, alphaS, dInches, boIn float64) float64 {
	lambdaS := SizeEffectFactor(dInches)
	vc := math.Min(2+4/beta, alphaS*dInches/boIn+2)
	vc = math.Min(vc, 4)
	return vc * lambdaS * math.Sqrt(fc)
}

// PunchingCapacity calculates the design punching shear capacity φVc
// (pounds) for a rectangular column on an isolated footing. The
// critical perimeter is taken at d/2 from each column face. Returns
// the capacity and the critical perimeter (inches).
func PunchingCapacity(fc, dInches, colWidthIn, colDepthIn, alphaS float64) (phiVc, boIn float64) {
	boIn = 2*(colWidthIn+dInches) + 2*(colDepthIn+dInches)

	beta := math.Max(colDepthIn, colWidthIn) / math.Min(colDepthIn, colWidthIn)
	vc := PunchingStress(fc, beta, alphaS, dInches, boIn)

	phiVc = PhiShear * vc * boIn * dInches
	return phiVc, boIn
}

// OneWayCapacity calculates the design one-way shear capacity φVc
// (pounds) per ACI 318-19 Eq. 22.5.5.1 for a section of the given
// width and effective depth (both inches).
func OneWayCapacity(fc, widthIn, dInches float64) float64 {
	vc := 2 * SizeEffectFactor(dInches) * math.Sqrt(fc)
	return PhiShear * vc * widthIn * dInches
}

// DevelopmentLength calculates the required straight development
// length (feet) for a deformed bar per ACI 318-19 Table 25.4.2.3,
// simplified for uncoated bottom bars in normal-weight concrete with
// the usual footing cover and spacing.
func DevelopmentLength(barSize int, fc, fy float64) float64 {
	db := barDiameter(barSize)
	denom := 25.0 // #6 and smaller
	if barSize >= 7 {
		denom = 20.0
	}
	ldIn := fy / (denom * math.Sqrt(fc)) * db
	if ldIn < MinDevelopmentLength {
		ldIn = MinDevelopmentLength
	}
	return ldIn / 12.0
}
