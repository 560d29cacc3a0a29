package entities

import "testing"

func TestIsPending(t *testing.T) {
	pending := []BudgetStatus{"", "pendente", "Pendente", "pending", " PENDING ", "null", "undefined"}
	for _, s := range pending {
		if !IsPending(s) {
			t.Fatalf("expected %q to resolve to pending", s)
		}
	}

	notPending := []BudgetStatus{BudgetStatusFinalizado, BudgetStatusCancelado, "aprovado"}
	for _, s := range notPending {
		if IsPending(s) {
			t.Fatalf("expected %q not to resolve to pending", s)
		}
	}
}

func TestNextBudgetNumber(t *testing.T) {
	if got := NextBudgetNumber(0); got != 985 {
		t.Fatalf("expected 985 for empty store, got %d", got)
	}
	if got := NextBudgetNumber(984); got != 985 {
		t.Fatalf("expected 985, got %d", got)
	}
	if got := NextBudgetNumber(990); got != 991 {
		t.Fatalf("expected 991, got %d", got)
	}
}

func TestComputeTotal(t *testing.T) {
	b := Budget{
		LineItems: []BudgetLineItem{
			{Subtotal: 120.00},
			{Subtotal: 340.50},
		},
		Accessories: []BudgetAccessoryItem{
			{Subtotal: 15.00},
		},
	}
	if got := b.ComputeTotal(); got != 475.50 {
		t.Fatalf("expected 475.50, got %v", got)
	}
}

func TestDiscountPercent(t *testing.T) {
	negotiated := 450.0
	if got := DiscountPercent(500, &negotiated); got != 10 {
		t.Fatalf("expected 10%%, got %v", got)
	}
	if got := DiscountPercent(500, nil); got != 0 {
		t.Fatalf("expected 0 without negotiation, got %v", got)
	}
	if got := DiscountPercent(0, &negotiated); got != 0 {
		t.Fatalf("expected 0 for zero total, got %v", got)
	}
}
