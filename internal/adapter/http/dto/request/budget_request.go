package request

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexibleNumber tolerates the shapes the budgeting UI historically sent for
// dimensions and quantities: JSON numbers, numeric strings (comma decimals
// included), null, and garbage. Anything unparseable resolves to 0 so one bad
// field never rejects the whole budget.
type FlexibleNumber float64

func (f *FlexibleNumber) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*f = FlexibleNumber(v)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		*f = 0
		return nil
	}
	str = strings.ReplaceAll(strings.TrimSpace(str), ",", ".")
	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexibleNumber(v)
	return nil
}

func (f FlexibleNumber) Value() float64 {
	return float64(f)
}

type BudgetLineItemRequest struct {
	ProductID         string         `json:"product_id" binding:"required"`
	Width             FlexibleNumber `json:"width"`
	Height            FlexibleNumber `json:"height"`
	Valance           bool           `json:"valance"`
	Installation      bool           `json:"installation"`
	InstallationValue FlexibleNumber `json:"installation_value"`
	Panel             bool           `json:"panel"`
	PanelCount        int            `json:"panel_count"`
	RailType          string         `json:"rail_type"`
}

type BudgetAccessoryRequest struct {
	AccessoryID string         `json:"accessory_id" binding:"required"`
	Color       string         `json:"color"`
	Quantity    FlexibleNumber `json:"quantity"`
}

// BudgetRequest is the payload for creating or editing a budget. Every price
// is recomputed server-side; the client only describes what was measured.
type BudgetRequest struct {
	CustomerID      string                   `json:"customer_id"`
	LineItems       []BudgetLineItemRequest  `json:"line_items"`
	Accessories     []BudgetAccessoryRequest `json:"accessories"`
	Observation     string                   `json:"observation"`
	NegotiatedValue *float64                 `json:"negotiated_value"`
}

func (r BudgetRequest) ResolveCustomerID() string {
	return strings.TrimSpace(r.CustomerID)
}
