package pricing

import (
	"math"
	"strings"

	"cortinaria/internal/domain/entities"
)

// AccessorySubtotal prices an accessory selection: quantity × the selected
// color's unit sale price. Quantity may be fractional (meter-based units).
// A color missing from the accessory's list is a soft failure and prices at
// zero; the caller surfaces the validation message.
func AccessorySubtotal(acc entities.Accessory, colorName string, quantity float64) float64 {
	if quantity <= 0 || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return 0
	}
	for _, c := range acc.Colors {
		if strings.EqualFold(strings.TrimSpace(c.Name), strings.TrimSpace(colorName)) {
			return quantity * c.SalePrice
		}
	}
	return 0
}
