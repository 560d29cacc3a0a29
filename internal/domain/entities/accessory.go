package entities

import "time"

// AccessoryColor is one color variant of an accessory, with its own cost and
// derived sale price.
type AccessoryColor struct {
	Name         string  `json:"name"`
	CostPrice    float64 `json:"cost_price"`
	ProfitMargin float64 `json:"profit_margin"`
	SalePrice    float64 `json:"sale_price"`
}

// Accessory is a catalog entry sold alongside budgets (cords, supports,
// finials). Unit is a free label ("un", "m"); meter-based units allow
// fractional quantities on budget items.
type Accessory struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Unit      string           `json:"unit"`
	Colors    []AccessoryColor `json:"colors"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
