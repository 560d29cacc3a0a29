package pricing

import "cortinaria/internal/domain/entities"

// RailValue prices the selected rail: width × configured per-meter sale
// price. Unknown/empty rail keys and unconfigured types price at zero; rail
// selection is only meaningful for height-tiered products and is inert
// elsewhere.
func RailValue(railType string, width float64, table entities.RailPricingTable) float64 {
	rt, ok := entities.NormalizeRailType(railType)
	if !ok {
		return 0
	}
	return sanitize(width) * table[rt].SalePrice
}
