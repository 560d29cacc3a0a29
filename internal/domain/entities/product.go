package entities

import (
	"strings"
	"time"
)

// CalculationMethod selects how a product's line price is derived.
//
// Legacy catalogs carried a free-text model tag and the pricing code tested it
// against "WAVE" on every computation. Here the method is resolved once, when
// the product record is loaded or saved, and stored as a closed enum.

type CalculationMethod string

const (
	CalculationMethodArea         CalculationMethod = "area"
	CalculationMethodLinear       CalculationMethod = "linear"
	CalculationMethodHeightTiered CalculationMethod = "height_tiered"
	CalculationMethodUnit         CalculationMethod = "unit"
)

// ResolveCalculationMethod maps a stored method plus the legacy model tag to
// the canonical enum. An empty or unknown method falls back to the model tag:
// "WAVE" (any casing) means height-tiered, everything else is area-based.
func ResolveCalculationMethod(method, modelTag string) CalculationMethod {
	switch CalculationMethod(strings.ToLower(strings.TrimSpace(method))) {
	case CalculationMethodArea:
		return CalculationMethodArea
	case CalculationMethodLinear:
		return CalculationMethodLinear
	case CalculationMethodHeightTiered:
		return CalculationMethodHeightTiered
	case CalculationMethodUnit:
		return CalculationMethodUnit
	}
	if strings.EqualFold(strings.TrimSpace(modelTag), "WAVE") {
		return CalculationMethodHeightTiered
	}
	return CalculationMethodArea
}

// HeightTier is one row of a height-tiered ("wave") price table. Price is the
// tier cost price; the product profit margin is applied on top at calculation
// time.
type HeightTier struct {
	MinHeight float64 `json:"min_height"`
	MaxHeight float64 `json:"max_height"`
	Price     float64 `json:"price"`
}

// Product is a catalog entry (curtain, blind or screen fabric/model).
//
// Pricing fields:
//   - SalePrice is derived as CostPrice + CostPrice×ProfitMargin/100 at save
//     time, except for height-tiered products where the price is tier-specific
//     and CostPrice stays zero.
//   - MinWidth/MinHeight/MinArea are billing floors (0 means no floor).
//   - ScaleToMinArea marks the legacy product family whose width/height are
//     scaled up proportionally when the minimum area kicks in, so displayed
//     dimensions stay coherent with the billed area.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	ModelTag       string            `json:"model_tag"`
	Method         CalculationMethod `json:"method"`
	CostPrice      float64           `json:"cost_price"`
	ProfitMargin   float64           `json:"profit_margin"`
	SalePrice      float64           `json:"sale_price"`
	MinWidth       float64           `json:"min_width"`
	MinHeight      float64           `json:"min_height"`
	MinArea        float64           `json:"min_area"`
	MaxWidth       float64           `json:"max_width"`
	ScaleToMinArea bool              `json:"scale_to_min_area"`
	HeightTiers    []HeightTier      `json:"height_tiers,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// IsHeightTiered reports whether the product prices by height tier ("wave").
func (p Product) IsHeightTiered() bool {
	return p.Method == CalculationMethodHeightTiered
}

// SalePriceFrom derives a sale price from a cost price and a profit margin
// percentage.
func SalePriceFrom(costPrice, profitMargin float64) float64 {
	return costPrice + costPrice*profitMargin/100
}
