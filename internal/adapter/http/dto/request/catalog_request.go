package request

import "strings"

type HeightTierRequest struct {
	MinHeight float64 `json:"min_height"`
	MaxHeight float64 `json:"max_height" binding:"required"`
	Price     float64 `json:"price" binding:"required"`
}

// ProductRequest creates or replaces a catalog product. Method is optional:
// when absent it is inferred from the model tag (WAVE models price by height
// tier, everything else by area).
type ProductRequest struct {
	Name           string              `json:"name" binding:"required"`
	ModelTag       string              `json:"model_tag"`
	Method         string              `json:"method"`
	CostPrice      float64             `json:"cost_price"`
	ProfitMargin   float64             `json:"profit_margin"`
	MinWidth       float64             `json:"min_width"`
	MinHeight      float64             `json:"min_height"`
	MinArea        float64             `json:"min_area"`
	MaxWidth       float64             `json:"max_width"`
	ScaleToMinArea bool                `json:"scale_to_min_area"`
	HeightTiers    []HeightTierRequest `json:"height_tiers"`
}

func (r ProductRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}

type AccessoryColorRequest struct {
	Name         string  `json:"name" binding:"required"`
	CostPrice    float64 `json:"cost_price"`
	ProfitMargin float64 `json:"profit_margin"`
}

type AccessoryRequest struct {
	Name   string                  `json:"name" binding:"required"`
	Unit   string                  `json:"unit"`
	Colors []AccessoryColorRequest `json:"colors" binding:"required"`
}

type RailPriceRequest struct {
	CostPrice float64 `json:"cost_price"`
	SalePrice float64 `json:"sale_price"`
}

// RailTableRequest maps rail type keys (canonical names or UI aliases) to
// their prices.
type RailTableRequest map[string]RailPriceRequest

type ValanceConfigRequest struct {
	CostPricePerMeter float64 `json:"cost_price_per_meter"`
	SalePricePerMeter float64 `json:"sale_price_per_meter"`
}
