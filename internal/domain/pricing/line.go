package pricing

import (
	"math"

	"cortinaria/internal/domain/entities"
)

// LineOptions are the user-selected add-ons of a budget line.
type LineOptions struct {
	Valance           bool
	Installation      bool
	InstallationValue float64
	Panel             bool
	PanelCount        int
	RailType          string
}

// Config carries the read-mostly pricing configuration consumed by the line
// calculator, loaded once per budget computation.
type Config struct {
	Valance entities.ValanceConfig
	Rails   entities.RailPricingTable
}

// LineResult is the full pricing breakdown of one budget line.
type LineResult struct {
	Dimensions        ResolvedDimensions
	BasePrice         float64
	RailValue         float64
	ValanceSaleValue  float64
	ValanceCostValue  float64
	InstallationValue float64
	Subtotal          float64
}

// CalculateLine prices one budget line from the product record, the raw
// user-entered dimensions and the selected options.
//
// Only two pricing branches exist: height-tiered ("wave") products price by
// width × tier unit price and may carry a rail; every other product —
// area-based, linear or unit — prices by billable area × sale price, and only
// when both dimensions were supplied. Valance and installation add-ons apply
// to both branches.
func CalculateLine(p entities.Product, inputWidth, inputHeight float64, opts LineOptions, cfg Config) LineResult {
	dims := ResolveDimensions(Minimums{
		Width:          p.MinWidth,
		Height:         p.MinHeight,
		Area:           p.MinArea,
		ScaleToMinArea: p.ScaleToMinArea,
	}, inputWidth, inputHeight, opts.Panel)

	res := LineResult{Dimensions: dims}

	if p.IsHeightTiered() {
		res.BasePrice = dims.Width * tierUnitPrice(p, dims.Height)
		res.RailValue = RailValue(opts.RailType, dims.Width, cfg.Rails)
	} else if dims.InputWidth > 0 && dims.InputHeight > 0 {
		res.BasePrice = dims.Area * p.SalePrice
	}

	if opts.Valance {
		res.ValanceSaleValue = dims.Width * cfg.Valance.SalePricePerMeter
		res.ValanceCostValue = dims.Width * cfg.Valance.CostPricePerMeter
	}
	if opts.Installation {
		res.InstallationValue = opts.InstallationValue
	}

	subtotal := res.BasePrice + res.RailValue + res.ValanceSaleValue + res.InstallationValue
	if math.IsNaN(subtotal) || subtotal < 0 {
		subtotal = 0
	}
	res.Subtotal = subtotal
	return res
}

// tierUnitPrice looks up the height tier covering the resolved height
// (inclusive bounds) and applies the product profit margin to the tier price.
// No matching tier prices at zero.
func tierUnitPrice(p entities.Product, height float64) float64 {
	for _, tier := range p.HeightTiers {
		if height >= tier.MinHeight && height <= tier.MaxHeight {
			return entities.SalePriceFrom(tier.Price, p.ProfitMargin)
		}
	}
	return 0
}

// ValanceValues prices the valance (bandô) for a resolved width: both the
// sale value charged on the line and the cost value kept for margin reports.
func ValanceValues(width float64, cfg entities.ValanceConfig) (sale, cost float64) {
	w := sanitize(width)
	return w * cfg.SalePricePerMeter, w * cfg.CostPricePerMeter
}
