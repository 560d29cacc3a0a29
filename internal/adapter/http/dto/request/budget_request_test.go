package request

import (
	"encoding/json"
	"testing"
)

func TestFlexibleNumber_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		json string
		want float64
	}{
		{"plain number", `1.5`, 1.5},
		{"integer", `3`, 3},
		{"numeric string", `"2.4"`, 2.4},
		{"comma decimal string", `"2,4"`, 2.4},
		{"padded string", `" 1.2 "`, 1.2},
		{"empty string", `""`, 0},
		{"garbage string", `"abc"`, 0},
		{"null", `null`, 0},
		{"object", `{"v":1}`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var f FlexibleNumber
			if err := json.Unmarshal([]byte(tc.json), &f); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if f.Value() != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, f.Value())
			}
		})
	}
}

func TestBudgetRequest_Unmarshal(t *testing.T) {
	payload := `{
		"customer_id": " cust-1 ",
		"line_items": [
			{"product_id": "p-1", "width": "2,5", "height": 1.8, "valance": true, "rail_type": "motorizado"}
		],
		"accessories": [
			{"accessory_id": "a-1", "color": "Branco", "quantity": "3"}
		],
		"negotiated_value": 450.5
	}`

	var r BudgetRequest
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ResolveCustomerID() != "cust-1" {
		t.Fatalf("expected trimmed customer id, got %q", r.ResolveCustomerID())
	}
	if len(r.LineItems) != 1 || r.LineItems[0].Width.Value() != 2.5 || r.LineItems[0].Height.Value() != 1.8 {
		t.Fatalf("unexpected line items: %+v", r.LineItems)
	}
	if !r.LineItems[0].Valance || r.LineItems[0].RailType != "motorizado" {
		t.Fatalf("unexpected line flags: %+v", r.LineItems[0])
	}
	if len(r.Accessories) != 1 || r.Accessories[0].Quantity.Value() != 3 {
		t.Fatalf("unexpected accessories: %+v", r.Accessories)
	}
	if r.NegotiatedValue == nil || *r.NegotiatedValue != 450.5 {
		t.Fatalf("unexpected negotiated value: %+v", r.NegotiatedValue)
	}
}
