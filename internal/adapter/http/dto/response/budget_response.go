package response

import (
	"math"
	"time"

	"cortinaria/internal/domain/entities"
)

// round2 rounds money for presentation. Internally every value stays at full
// float precision; rounding happens only at this boundary.
func round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*100) / 100
}

type BudgetLineItemResponse struct {
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
	PanelCount   int  `json:"panel_count"`

	ValanceValue      float64 `json:"valance_value"`
	InstallationValue float64 `json:"installation_value"`
	RailType          string  `json:"rail_type,omitempty"`
	RailValue         float64 `json:"rail_value"`

	Subtotal float64 `json:"subtotal"`
}

type BudgetAccessoryItemResponse struct {
	AccessoryID   string  `json:"accessory_id"`
	AccessoryName string  `json:"accessory_name"`
	Unit          string  `json:"unit"`
	Color         string  `json:"color"`
	Quantity      float64 `json:"quantity"`
	UnitSalePrice float64 `json:"unit_sale_price"`
	Subtotal      float64 `json:"subtotal"`
}

type BudgetResponse struct {
	BudgetID        string                        `json:"budget_id"`
	ID              string                        `json:"id"`
	CustomerID      string                        `json:"customer_id"`
	Number          int                           `json:"number"`
	LineItems       []BudgetLineItemResponse      `json:"line_items"`
	Accessories     []BudgetAccessoryItemResponse `json:"accessories"`
	Observation     string                        `json:"observation"`
	TotalValue      float64                       `json:"total_value"`
	NegotiatedValue *float64                      `json:"negotiated_value,omitempty"`
	DiscountPercent float64                       `json:"discount_percent"`
	Status          string                        `json:"status"`
	CreatedAt       time.Time                     `json:"created_at"`
	UpdatedAt       time.Time                     `json:"updated_at"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	lines := make([]BudgetLineItemResponse, 0, len(b.LineItems))
	for _, li := range b.LineItems {
		lines = append(lines, BudgetLineItemResponse{
			ProductID:         li.ProductID,
			ProductName:       li.ProductName,
			InputWidth:        li.InputWidth,
			InputHeight:       li.InputHeight,
			FinalWidth:        li.FinalWidth,
			FinalHeight:       li.FinalHeight,
			FinalArea:         li.FinalArea,
			UsedMinimum:       li.UsedMinimum,
			Valance:           li.Valance,
			Installation:      li.Installation,
			Panel:             li.Panel,
			PanelCount:        li.PanelCount,
			ValanceValue:      round2(li.ValanceSaleValue),
			InstallationValue: round2(li.InstallationValue),
			RailType:          li.RailType,
			RailValue:         round2(li.RailValue),
			Subtotal:          round2(li.Subtotal),
		})
	}

	accs := make([]BudgetAccessoryItemResponse, 0, len(b.Accessories))
	for _, ai := range b.Accessories {
		accs = append(accs, BudgetAccessoryItemResponse{
			AccessoryID:   ai.AccessoryID,
			AccessoryName: ai.AccessoryName,
			Unit:          ai.Unit,
			Color:         ai.Color,
			Quantity:      ai.Quantity,
			UnitSalePrice: round2(ai.UnitSalePrice),
			Subtotal:      round2(ai.Subtotal),
		})
	}

	var negotiated *float64
	if b.NegotiatedValue != nil {
		v := round2(*b.NegotiatedValue)
		negotiated = &v
	}

	return BudgetResponse{
		BudgetID:        b.ID,
		ID:              b.ID,
		CustomerID:      b.CustomerID,
		Number:          b.Number,
		LineItems:       lines,
		Accessories:     accs,
		Observation:     b.Observation,
		TotalValue:      round2(b.TotalValue),
		NegotiatedValue: negotiated,
		DiscountPercent: round2(entities.DiscountPercent(b.TotalValue, b.NegotiatedValue)),
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func FromBudgets(budgets []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, FromBudget(b))
	}
	return out
}
