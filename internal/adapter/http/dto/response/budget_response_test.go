package response

import (
	"testing"
	"time"

	"cortinaria/internal/domain/entities"
)

func TestFromBudget(t *testing.T) {
	now := time.Now().UTC()
	negotiated := 900.0
	b := entities.Budget{
		ID:         "b-1",
		CustomerID: "cust-1",
		Number:     987,
		LineItems: []entities.BudgetLineItem{
			{
				ProductID:   "p-1",
				ProductName: "VOIL LISO",
				FinalArea:   3.0,
				Subtotal:    333.333333333,
			},
		},
		Accessories: []entities.BudgetAccessoryItem{
			{AccessoryID: "a-1", Quantity: 2.5, UnitSalePrice: 10, Subtotal: 25},
		},
		TotalValue:      1000,
		NegotiatedValue: &negotiated,
		Status:          entities.BudgetStatusPendente,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	res := FromBudget(b)
	if res.ID != "b-1" || res.BudgetID != "b-1" || res.Number != 987 {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.LineItems[0].Subtotal != 333.33 {
		t.Fatalf("expected rounded subtotal 333.33, got %v", res.LineItems[0].Subtotal)
	}
	if res.DiscountPercent != 10 {
		t.Fatalf("expected 10%% discount, got %v", res.DiscountPercent)
	}
	if res.NegotiatedValue == nil || *res.NegotiatedValue != 900 {
		t.Fatalf("unexpected negotiated value: %+v", res.NegotiatedValue)
	}
	if res.Status != "pendente" {
		t.Fatalf("unexpected status %q", res.Status)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromBudget_NoNegotiation(t *testing.T) {
	res := FromBudget(entities.Budget{ID: "b-1", TotalValue: 500})
	if res.DiscountPercent != 0 || res.NegotiatedValue != nil {
		t.Fatalf("expected no discount, got %+v", res)
	}
}
