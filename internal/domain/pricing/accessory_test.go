package pricing

import (
	"testing"

	"cortinaria/internal/domain/entities"
)

func TestAccessorySubtotal(t *testing.T) {
	acc := entities.Accessory{
		ID:   "acc-1",
		Name: "Cordão",
		Unit: "m",
		Colors: []entities.AccessoryColor{
			{Name: "Branco", CostPrice: 6, ProfitMargin: 66.67, SalePrice: 10},
			{Name: "Preto", CostPrice: 8, ProfitMargin: 50, SalePrice: 12},
		},
	}

	t.Run("fractional quantity", func(t *testing.T) {
		nearlyEqual(t, "subtotal", AccessorySubtotal(acc, "Branco", 2.5), 25)
	})

	t.Run("color match is case-insensitive", func(t *testing.T) {
		nearlyEqual(t, "subtotal", AccessorySubtotal(acc, " preto ", 1), 12)
	})

	t.Run("missing color is a soft zero", func(t *testing.T) {
		nearlyEqual(t, "subtotal", AccessorySubtotal(acc, "Azul", 2), 0)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		nearlyEqual(t, "zero", AccessorySubtotal(acc, "Branco", 0), 0)
		nearlyEqual(t, "negative", AccessorySubtotal(acc, "Branco", -1), 0)
	})
}
