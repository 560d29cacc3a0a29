package response

import (
	"time"

	"cortinaria/internal/domain/entities"
)

type HeightTierResponse struct {
	MinHeight float64 `json:"min_height"`
	MaxHeight float64 `json:"max_height"`
	Price     float64 `json:"price"`
}

type ProductResponse struct {
	ProductID      string               `json:"product_id"`
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	ModelTag       string               `json:"model_tag,omitempty"`
	Method         string               `json:"method"`
	CostPrice      float64              `json:"cost_price"`
	ProfitMargin   float64              `json:"profit_margin"`
	SalePrice      float64              `json:"sale_price"`
	MinWidth       float64              `json:"min_width"`
	MinHeight      float64              `json:"min_height"`
	MinArea        float64              `json:"min_area"`
	MaxWidth       float64              `json:"max_width"`
	ScaleToMinArea bool                 `json:"scale_to_min_area"`
	HeightTiers    []HeightTierResponse `json:"height_tiers,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

func FromProduct(p entities.Product) ProductResponse {
	var tiers []HeightTierResponse
	for _, t := range p.HeightTiers {
		tiers = append(tiers, HeightTierResponse{
			MinHeight: t.MinHeight,
			MaxHeight: t.MaxHeight,
			Price:     round2(t.Price),
		})
	}
	return ProductResponse{
		ProductID:      p.ID,
		ID:             p.ID,
		Name:           p.Name,
		ModelTag:       p.ModelTag,
		Method:         string(p.Method),
		CostPrice:      round2(p.CostPrice),
		ProfitMargin:   p.ProfitMargin,
		SalePrice:      round2(p.SalePrice),
		MinWidth:       p.MinWidth,
		MinHeight:      p.MinHeight,
		MinArea:        p.MinArea,
		MaxWidth:       p.MaxWidth,
		ScaleToMinArea: p.ScaleToMinArea,
		HeightTiers:    tiers,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

type AccessoryColorResponse struct {
	Name         string  `json:"name"`
	CostPrice    float64 `json:"cost_price"`
	ProfitMargin float64 `json:"profit_margin"`
	SalePrice    float64 `json:"sale_price"`
}

type AccessoryResponse struct {
	AccessoryID string                   `json:"accessory_id"`
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Unit        string                   `json:"unit"`
	Colors      []AccessoryColorResponse `json:"colors"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

func FromAccessory(a entities.Accessory) AccessoryResponse {
	colors := make([]AccessoryColorResponse, 0, len(a.Colors))
	for _, c := range a.Colors {
		colors = append(colors, AccessoryColorResponse{
			Name:         c.Name,
			CostPrice:    round2(c.CostPrice),
			ProfitMargin: c.ProfitMargin,
			SalePrice:    round2(c.SalePrice),
		})
	}
	return AccessoryResponse{
		AccessoryID: a.ID,
		ID:          a.ID,
		Name:        a.Name,
		Unit:        a.Unit,
		Colors:      colors,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func FromAccessories(accessories []entities.Accessory) []AccessoryResponse {
	out := make([]AccessoryResponse, 0, len(accessories))
	for _, a := range accessories {
		out = append(out, FromAccessory(a))
	}
	return out
}

type RailPriceResponse struct {
	CostPrice float64 `json:"cost_price"`
	SalePrice float64 `json:"sale_price"`
}

type RailTableResponse map[string]RailPriceResponse

func FromRailTable(table entities.RailPricingTable) RailTableResponse {
	out := make(RailTableResponse, len(table))
	for rt, price := range table {
		out[string(rt)] = RailPriceResponse{
			CostPrice: round2(price.CostPrice),
			SalePrice: round2(price.SalePrice),
		}
	}
	return out
}

type ValanceConfigResponse struct {
	CostPricePerMeter float64 `json:"cost_price_per_meter"`
	SalePricePerMeter float64 `json:"sale_price_per_meter"`
}

func FromValanceConfig(cfg entities.ValanceConfig) ValanceConfigResponse {
	return ValanceConfigResponse{
		CostPricePerMeter: round2(cfg.CostPricePerMeter),
		SalePricePerMeter: round2(cfg.SalePricePerMeter),
	}
}
