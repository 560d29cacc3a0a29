// Package pricing implements the budget line-item pricing engine: dimension
// resolution against product floors, per-method price derivation, rail and
// valance surcharges and accessory pricing. Everything here is a pure function
// of its inputs; catalog and config records are loaded by the caller.
package pricing

import "math"

// panelSurchargeFactor is the area multiplier applied to multi-panel (painel)
// assemblies to cover cutting waste.
const panelSurchargeFactor = 1.10

// squareTolerance is the width/height delta under which a scale-to-min-area
// product is treated as square and split evenly.
const squareTolerance = 0.1

// Minimums are the product-level billing floors. Zero means no floor.
// ScaleToMinArea marks the legacy product family whose displayed width and
// height are scaled up to match the minimum area instead of keeping the raw
// inputs.
type Minimums struct {
	Width          float64
	Height         float64
	Area           float64
	ScaleToMinArea bool
}

// ResolvedDimensions are the billable dimensions of a line item. Input values
// are kept as entered for display; UsedMinimum tells the UI that a floor was
// applied.
type ResolvedDimensions struct {
	InputWidth  float64
	InputHeight float64
	Width       float64
	Height      float64
	Area        float64
	UsedMinimum bool
}

// ResolveDimensions applies the product floors and the panel surcharge to
// user-entered dimensions.
//
// The minimum area floor forces the billable area to exactly the configured
// minimum; width and height are not back-derived from it except for
// scale-to-min-area products, where they are scaled proportionally (even
// split when near-square) purely for display coherence.
func ResolveDimensions(min Minimums, inputWidth, inputHeight float64, panel bool) ResolvedDimensions {
	inputWidth = sanitize(inputWidth)
	inputHeight = sanitize(inputHeight)

	width := math.Max(inputWidth, min.Width)
	height := math.Max(inputHeight, min.Height)

	// The raw area decides whether the minimum area floor applies.
	rawArea := inputWidth * inputHeight
	belowMinArea := min.Area > 0 && rawArea < min.Area

	area := width * height
	if belowMinArea {
		area = min.Area
		if min.ScaleToMinArea && inputWidth > 0 && inputHeight > 0 {
			width, height = scaleToArea(inputWidth, inputHeight, min.Area)
		}
	}

	used := width > inputWidth || height > inputHeight || belowMinArea

	if panel {
		area *= panelSurchargeFactor
	}

	return ResolvedDimensions{
		InputWidth:  inputWidth,
		InputHeight: inputHeight,
		Width:       width,
		Height:      height,
		Area:        area,
		UsedMinimum: used,
	}
}

// scaleToArea derives display dimensions whose product equals the target
// area. Near-square inputs split evenly; otherwise the aspect ratio is
// preserved. Kept as observed in the legacy catalog behavior; not generalized
// for extreme aspect ratios.
func scaleToArea(width, height, target float64) (float64, float64) {
	if math.Abs(width-height) <= squareTolerance {
		side := math.Sqrt(target)
		return side, side
	}
	factor := math.Sqrt(target / (width * height))
	return width * factor, height * factor
}

// sanitize coerces NaN, infinite and negative inputs to 0 so no parse failure
// can leak into the arithmetic.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
