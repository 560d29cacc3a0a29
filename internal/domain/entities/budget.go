package entities

import (
	"strings"
	"time"
)

// BudgetStatus represents the lifecycle of a budget (orçamento).
//
// Domain notes:
//   - Transitions are restricted: pending → finalized (always allowed),
//     pending → canceled (only from pending), canceled → pending (reactivate).
//   - Legacy rows carry several spellings for the pending state; use IsPending
//     instead of comparing against BudgetStatusPendente directly.

type BudgetStatus string

const (
	BudgetStatusPendente   BudgetStatus = "pendente"
	BudgetStatusFinalizado BudgetStatus = "finalizado"
	BudgetStatusCancelado  BudgetStatus = "cancelado"
)

// IsPending reports whether a stored status resolves to the pending state.
// Besides the canonical "pendente", legacy data carries "pending", empty and
// null-ish values; all of them mean pending for business rules.
func IsPending(s BudgetStatus) bool {
	switch strings.ToLower(strings.TrimSpace(string(s))) {
	case "", "pendente", "pending", "null", "undefined":
		return true
	}
	return false
}

// BudgetNumberFloor is the first human-readable budget number ever assigned.
// Numbering continues from the highest existing number past this floor.
const BudgetNumberFloor = 985

// NextBudgetNumber returns the sequential number for a new budget given the
// highest number already assigned (0 when there are no budgets).
func NextBudgetNumber(highest int) int {
	if highest+1 < BudgetNumberFloor {
		return BudgetNumberFloor
	}
	return highest + 1
}

// BudgetLineItem is one priced line of a budget. Input dimensions are kept as
// entered for display; final dimensions are the billable ones after floors and
// the panel surcharge. Subtotal is always derived, never edited directly.
type BudgetLineItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`

	InputWidth  float64 `json:"input_width"`
	InputHeight float64 `json:"input_height"`
	FinalWidth  float64 `json:"final_width"`
	FinalHeight float64 `json:"final_height"`
	FinalArea   float64 `json:"final_area"`
	UsedMinimum bool    `json:"used_minimum"`

	Valance      bool `json:"valance"`
	Installation bool `json:"installation"`
	Panel        bool `json:"panel"`
	// PanelCount ("número de folhas") is informational only; the price impact
	// of a panel assembly is the area surcharge, not the count.
	PanelCount int `json:"panel_count"`

	ValanceSaleValue  float64 `json:"valance_sale_value"`
	ValanceCostValue  float64 `json:"valance_cost_value"`
	InstallationValue float64 `json:"installation_value"`
	RailType          string  `json:"rail_type,omitempty"`
	RailValue         float64 `json:"rail_value"`

	Subtotal float64 `json:"subtotal"`
}

// BudgetAccessoryItem is one accessory line of a budget. Quantity may be
// fractional for meter-based accessories.
type BudgetAccessoryItem struct {
	AccessoryID   string  `json:"accessory_id"`
	AccessoryName string  `json:"accessory_name"`
	Unit          string  `json:"unit"`
	Color         string  `json:"color"`
	Quantity      float64 `json:"quantity"`
	UnitSalePrice float64 `json:"unit_sale_price"`
	Subtotal      float64 `json:"subtotal"`
}

// Budget is the quote document (orçamento) persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//
// Monetary representation:
//   - TotalValue is always the computed sum of item subtotals.
//   - NegotiatedValue is an optional manual override kept alongside the
//     computed total, so the original price survives negotiation.
type Budget struct {
	ID              string                `json:"id"`
	CustomerID      string                `json:"customer_id"`
	Number          int                   `json:"number"`
	LineItems       []BudgetLineItem      `json:"line_items"`
	Accessories     []BudgetAccessoryItem `json:"accessories"`
	Observation     string                `json:"observation"`
	TotalValue      float64               `json:"total_value"`
	NegotiatedValue *float64              `json:"negotiated_value,omitempty"`
	Status          BudgetStatus          `json:"status"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// ComputeTotal sums all line item and accessory subtotals.
func (b Budget) ComputeTotal() float64 {
	total := 0.0
	for _, li := range b.LineItems {
		total += li.Subtotal
	}
	for _, ai := range b.Accessories {
		total += ai.Subtotal
	}
	return total
}

// DiscountPercent derives the display-only discount from a negotiated value.
// Returns 0 when there is no negotiation or no computed total.
func DiscountPercent(total float64, negotiated *float64) float64 {
	if negotiated == nil || total <= 0 {
		return 0
	}
	return (1 - *negotiated/total) * 100
}
