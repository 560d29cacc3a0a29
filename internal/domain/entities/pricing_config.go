package entities

import "strings"

// RailType identifies one of the six configurable curtain rail (trilho)
// models, priced per meter of width.

type RailType string

const (
	RailTypeRedondoComComando RailType = "trilho_redondo_com_comando"
	RailTypeRedondoSemComando RailType = "trilho_redondo_sem_comando"
	RailTypeSlimComComando    RailType = "trilho_slim_com_comando"
	RailTypeSlimSemComando    RailType = "trilho_slim_sem_comando"
	RailTypeQuadradoGancho    RailType = "trilho_quadrado_com_gancho"
	RailTypeMotorizado        RailType = "trilho_motorizado"
)

// railTypeAliases maps the UI selector values, which historically diverged
// from the stored config keys for some entries, onto the canonical set.
var railTypeAliases = map[string]RailType{
	"redondo_com_comando":        RailTypeRedondoComComando,
	"redondo_sem_comando":        RailTypeRedondoSemComando,
	"slim_com_comando":           RailTypeSlimComComando,
	"slim_sem_comando":           RailTypeSlimSemComando,
	"quadrado_com_gancho":        RailTypeQuadradoGancho,
	"quadrado_gancho_deslizante": RailTypeQuadradoGancho,
	"motorizado":                 RailTypeMotorizado,
}

// NormalizeRailType resolves a selector or config key to the canonical rail
// type. The second return is false for unknown or empty keys.
func NormalizeRailType(key string) (RailType, bool) {
	k := strings.ToLower(strings.TrimSpace(key))
	if k == "" {
		return "", false
	}
	switch RailType(k) {
	case RailTypeRedondoComComando, RailTypeRedondoSemComando,
		RailTypeSlimComComando, RailTypeSlimSemComando,
		RailTypeQuadradoGancho, RailTypeMotorizado:
		return RailType(k), true
	}
	if rt, ok := railTypeAliases[k]; ok {
		return rt, true
	}
	return "", false
}

// KnownRailTypes lists the canonical rail types in display order.
func KnownRailTypes() []RailType {
	return []RailType{
		RailTypeRedondoComComando,
		RailTypeRedondoSemComando,
		RailTypeSlimComComando,
		RailTypeSlimSemComando,
		RailTypeQuadradoGancho,
		RailTypeMotorizado,
	}
}

// RailPrice is the per-meter pricing of one rail type.
type RailPrice struct {
	CostPrice float64 `json:"cost_price"`
	SalePrice float64 `json:"sale_price"`
}

// RailPricingTable maps each configured rail type to its per-meter prices.
// Unconfigured types price at zero.
type RailPricingTable map[RailType]RailPrice

// ValanceConfig is the global per-meter pricing for the valance (bandô).
type ValanceConfig struct {
	CostPricePerMeter float64 `json:"cost_price_per_meter"`
	SalePricePerMeter float64 `json:"sale_price_per_meter"`
}
