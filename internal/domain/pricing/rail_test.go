package pricing

import (
	"testing"

	"cortinaria/internal/domain/entities"
)

func TestRailValue(t *testing.T) {
	table := entities.RailPricingTable{
		entities.RailTypeMotorizado:     {CostPrice: 100, SalePrice: 150},
		entities.RailTypeSlimComComando: {CostPrice: 40, SalePrice: 60},
	}

	t.Run("configured type", func(t *testing.T) {
		nearlyEqual(t, "motorizado", RailValue("trilho_motorizado", 2.0, table), 300)
	})

	t.Run("ui alias", func(t *testing.T) {
		nearlyEqual(t, "alias", RailValue("motorizado", 2.0, table), 300)
	})

	t.Run("unconfigured type prices at zero", func(t *testing.T) {
		nearlyEqual(t, "unconfigured", RailValue("trilho_redondo_com_comando", 2.0, table), 0)
	})

	t.Run("unknown and empty keys", func(t *testing.T) {
		nearlyEqual(t, "unknown", RailValue("varao", 2.0, table), 0)
		nearlyEqual(t, "empty", RailValue("", 2.0, table), 0)
	})

	t.Run("negative width coerced", func(t *testing.T) {
		nearlyEqual(t, "negative width", RailValue("trilho_motorizado", -2.0, table), 0)
	})
}
