package aci

import (
	"fmt"
	"math"
)

// Standard bar properties, #4 through #10
var (
	barAreas = map[int]float64{ // in²
		4: 0.20, 5: 0.31, 6: 0.44, 7: 0.60, 8: 0.79, 9: 1.00, 10: 1.27,
	}
	barWeights = map[int]float64{ // lbs per foot
		4: 0.668, 5: 1.043, 6: 1.502, 7: 2.044, 8: 2.670, 9: 3.400, 10: 4.303,
	}
	barDiameters = map[int]float64{ // inches
		4: 0.5, 5: 0.625, 6: 0.75, 7: 0.875, 8: 1.0, 9: 1.128, 10: 1.27,
	}
)

// footingBarSizes are tried in order during flexural design
var footingBarSizes = []int{5, 6, 7, 8, 9, 10}

func barDiameter(size int) float64 {
	if db, ok := barDiameters[size]; ok {
		return db
	}
	return 1.0
}

// SteelLayout describes the selected flexural reinforcement for one
// direction of a footing mat.
type SteelLayout struct {
	RequiredArea float64 `json:"required_area_in2"`
	MinimumArea  float64 `json:"minimum_area_in2"`
	ProvidedArea float64 `json:"provided_area_in2"`
	BarSize      int     `json:"bar_size"`
	BarCount     int     `json:"bar_count"`
	SpacingIn    float64 `json:"bar_spacing_in"`
	BarLengthFt  float64 `json:"bar_length_ft"`
	WeightLbs    float64 `json:"weight_lbs"`
	Designation  string  `json:"designation"`
}

// FlexuralSteel selects footing mat reinforcement for a factored
// cantilever moment per ACI 318-19 Section 22.3. The moment is taken
// at the face of the column; the section is the full footing width.
// Temperature/shrinkage steel (Section 24.4.3.2) governs when the
// computed demand is lower. Returns nil when no bar size in the #5-#10
// range lands inside the 6"-18" spacing window, which signals the
// caller to grow the section.
func FlexuralSteel(muLbFt, widthFt, depthFt, fc, fy float64) *SteelLayout {
	const coverIn = 3.0
	bar0 := barDiameter(8) // initial effective-depth assumption
	dIn := depthFt*12 - coverIn - bar0/2

	if dIn <= 0 {
		return nil
	}

	muLbIn := muLbFt * 12

	// Simplified tension-controlled design: As = Mu / (φ·fy·0.9d)
	asReq := muLbIn / (PhiFlexure * fy * 0.9 * dIn)

	widthIn := widthFt * 12
	hIn := depthFt * 12
	asMin := TempShrinkageRatio * widthIn * hIn

	asTotal := math.Max(asReq, asMin)

	for _, size := range footingBarSizes {
		barArea := barAreas[size]
		spacing := widthIn / (asTotal / barArea)
		if spacing < MinBarSpacing || spacing > MaxBarSpacing {
			continue
		}

		count := int(math.Ceil(widthIn/spacing)) + 1 // edge bar
		actualSpacing := widthIn
		if count > 1 {
			actualSpacing = widthIn / float64(count-1)
		}

		// Bar length includes hooks/development past the mat edge
		barLength := widthFt + 2*(coverIn/12+1.0)
		weight := float64(count) * barLength * barWeights[size] * 2 // both directions

		return &SteelLayout{
			RequiredArea: asReq,
			MinimumArea:  asMin,
			ProvidedArea: float64(count) * barArea,
			BarSize:      size,
			BarCount:     count,
			SpacingIn:    actualSpacing,
			BarLengthFt:  barLength,
			WeightLbs:    weight,
			Designation:  fmt.Sprintf("#%d @ %.0f\" o.c. E.W.", size, actualSpacing),
		}
	}

	return nil
}
