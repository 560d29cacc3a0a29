package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"cortinaria/internal/domain/entities"
	mock_interfaces "cortinaria/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newDepositUseCaseForTest(t *testing.T) (*DepositUseCase, *mock_interfaces.MockIDepositRepository, *mock_interfaces.MockIBudgetRepository, *mock_interfaces.MockIPaymentGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deposits := mock_interfaces.NewMockIDepositRepository(ctrl)
	budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	return NewDepositUseCase(deposits, budgets, gateway), deposits, budgets, gateway
}

func TestDepositUseCase_CreateAndApprove(t *testing.T) {
	payload := json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"a@b.c"}}`)

	t.Run("empty budget id", func(t *testing.T) {
		uc, _, _, _ := newDepositUseCaseForTest(t)
		_, err := uc.CreateAndApprove(context.Background(), "  ", payload)
		if !errors.Is(err, ErrInvalidDepositBudgetID) {
			t.Fatalf("expected ErrInvalidDepositBudgetID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc, _, _, _ := newDepositUseCaseForTest(t)
		_, err := uc.CreateAndApprove(context.Background(), "b-1", json.RawMessage("{broken"))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("budget not found", func(t *testing.T) {
		uc, _, budgets, _ := newDepositUseCaseForTest(t)
		budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "b-1", payload)
		if !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("budget not finalized", func(t *testing.T) {
		uc, _, budgets, _ := newDepositUseCaseForTest(t)
		budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Status: entities.BudgetStatusPendente}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "b-1", payload)
		if !errors.Is(err, ErrBudgetNotFinalized) {
			t.Fatalf("expected ErrBudgetNotFinalized, got %v", err)
		}
	})

	t.Run("charges the negotiated value when set", func(t *testing.T) {
		uc, deposits, budgets, gateway := newDepositUseCaseForTest(t)
		neg := 900.0
		budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{
			ID:              "b-1",
			Number:          987,
			Status:          entities.BudgetStatusFinalizado,
			TotalValue:      1000,
			NegotiatedValue: &neg,
		}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, body json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(body, &m); err != nil {
					t.Fatalf("gateway body is not json: %v", err)
				}
				if m["transaction_amount"] != 900.0 {
					t.Fatalf("expected negotiated amount 900, got %v", m["transaction_amount"])
				}
				if m["external_reference"] != "b-1" {
					t.Fatalf("expected budget id as external_reference, got %v", m["external_reference"])
				}
				return "mp-1", "approved", json.RawMessage(`{"id":"mp-1","status":"approved"}`), nil
			},
		)
		deposits.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Deposit) (entities.Deposit, error) {
				if d.ID != "mp-1" || d.BudgetID != "b-1" || d.Status != entities.DepositStatusAprovado {
					t.Fatalf("unexpected deposit: %+v", d)
				}
				if d.MPPayload["status"] != "approved" {
					t.Fatalf("expected parsed provider payload, got %v", d.MPPayload)
				}
				return d, nil
			},
		)

		res, err := uc.CreateAndApprove(context.Background(), "b-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "mp-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("falls back to the computed total", func(t *testing.T) {
		uc, deposits, budgets, gateway := newDepositUseCaseForTest(t)
		budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{
			ID:         "b-1",
			Status:     entities.BudgetStatusFinalizado,
			TotalValue: 1234.5,
		}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, body json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				_ = json.Unmarshal(body, &m)
				if m["transaction_amount"] != 1234.5 {
					t.Fatalf("expected total 1234.5, got %v", m["transaction_amount"])
				}
				return "mp-2", "approved", json.RawMessage(`{"id":"mp-2"}`), nil
			},
		)
		deposits.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Deposit) (entities.Deposit, error) { return d, nil },
		)

		if _, err := uc.CreateAndApprove(context.Background(), "b-1", payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("maps gateway unauthorized", func(t *testing.T) {
		uc, _, budgets, gateway := newDepositUseCaseForTest(t)
		budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Status: entities.BudgetStatusFinalizado}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New(`mercado pago: {"status":401,"error":"unauthorized"}`))

		_, err := uc.CreateAndApprove(context.Background(), "b-1", payload)
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})

	t.Run("maps gateway bad request", func(t *testing.T) {
		uc, _, budgets, gateway := newDepositUseCaseForTest(t)
		budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Status: entities.BudgetStatusFinalizado}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New(`mercado pago: {"status":400,"error":"bad_request"}`))

		_, err := uc.CreateAndApprove(context.Background(), "b-1", payload)
		if !errors.Is(err, ErrPaymentGatewayBadRequest) {
			t.Fatalf("expected ErrPaymentGatewayBadRequest, got %v", err)
		}
	})

	t.Run("mock mode skips gateway and status guard", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		uc, deposits, budgets, _ := newDepositUseCaseForTest(t)
		budgets.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{
			ID:         "b-1",
			Status:     entities.BudgetStatusPendente,
			TotalValue: 500,
		}, nil)
		deposits.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Deposit) (entities.Deposit, error) {
				if d.ID == "" || d.Status != entities.DepositStatusAprovado {
					t.Fatalf("unexpected mock deposit: %+v", d)
				}
				if d.MPPayload["status"] != "approved" {
					t.Fatalf("expected synthetic approved payload, got %v", d.MPPayload)
				}
				return d, nil
			},
		)

		if _, err := uc.CreateAndApprove(context.Background(), "b-1", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestDepositUseCase_Queries(t *testing.T) {
	t.Run("get by id not found", func(t *testing.T) {
		uc, deposits, _, _ := newDepositUseCaseForTest(t)
		deposits.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Deposit{}, nil)

		_, err := uc.GetByID(context.Background(), "d-1")
		if !errors.Is(err, ErrDepositNotFound) {
			t.Fatalf("expected ErrDepositNotFound, got %v", err)
		}
	})

	t.Run("list by budget id", func(t *testing.T) {
		uc, deposits, _, _ := newDepositUseCaseForTest(t)
		deposits.EXPECT().ListByBudgetID(gomock.Any(), "b-1").Return([]entities.Deposit{{ID: "d-1"}}, nil)

		res, err := uc.ListByBudgetID(context.Background(), " b-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "d-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("list requires budget id", func(t *testing.T) {
		uc, _, _, _ := newDepositUseCaseForTest(t)
		_, err := uc.ListByBudgetID(context.Background(), "")
		if !errors.Is(err, ErrInvalidDepositBudgetID) {
			t.Fatalf("expected ErrInvalidDepositBudgetID, got %v", err)
		}
	})
}
