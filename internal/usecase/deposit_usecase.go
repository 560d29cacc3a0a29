package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"cortinaria/internal/domain/entities"
	"cortinaria/internal/usecase/interfaces"
)

var (
	ErrDepositNotFound            = errors.New("deposit not found")
	ErrInvalidDepositBudgetID     = errors.New("invalid budget_id")
	ErrInvalidMPPayload           = errors.New("invalid mercado pago payload")
	ErrBudgetNotFinalized         = errors.New("budget not finalized")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IDepositUseCase encapsulates collecting the down payment (sinal) for a
// finalized budget and persisting it as approved.

type IDepositUseCase interface {
	CreateAndApprove(ctx context.Context, budgetID string, mpPayload json.RawMessage) (entities.Deposit, error)
	GetByID(ctx context.Context, id string) (entities.Deposit, error)
	ListByBudgetID(ctx context.Context, budgetID string) ([]entities.Deposit, error)
}

type DepositUseCase struct {
	repo    interfaces.IDepositRepository
	budgets interfaces.IBudgetRepository
	gateway interfaces.IPaymentGateway
}

var _ IDepositUseCase = (*DepositUseCase)(nil)

func NewDepositUseCase(repo interfaces.IDepositRepository, budgets interfaces.IBudgetRepository, gateway interfaces.IPaymentGateway) *DepositUseCase {
	return &DepositUseCase{repo: repo, budgets: budgets, gateway: gateway}
}

func (u *DepositUseCase) CreateAndApprove(ctx context.Context, budgetID string, mpPayload json.RawMessage) (entities.Deposit, error) {
	log.Printf("[deposit][usecase] create-and-approve start raw_budget_id=%q payload_len=%d", budgetID, len(mpPayload))
	mockMode := isPaymentGatewayMockEnabled()
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return entities.Deposit{}, ErrInvalidDepositBudgetID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[deposit][usecase] invalid payload budget_id=%s", budgetID)
			return entities.Deposit{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.Deposit{}, errors.New("payment gateway not configured")
	}

	b, err := u.budgets.GetByID(ctx, budgetID)
	if err != nil {
		log.Printf("[deposit][usecase] failed loading budget budget_id=%s err=%v", budgetID, err)
		return entities.Deposit{}, err
	}
	if b.ID == "" {
		return entities.Deposit{}, ErrBudgetNotFound
	}
	if !mockMode && b.Status != entities.BudgetStatusFinalizado {
		log.Printf("[deposit][usecase] budget not finalized budget_id=%s status=%s", budgetID, b.Status)
		return entities.Deposit{}, ErrBudgetNotFinalized
	}

	// The charged amount always comes from the stored budget: the negotiated
	// value when one was agreed, the computed total otherwise.
	amount := b.TotalValue
	if b.NegotiatedValue != nil {
		amount = *b.NegotiatedValue
	}
	log.Printf("[deposit][usecase] budget loaded budget_id=%s number=%d status=%s amount=%.2f", budgetID, b.Number, b.Status, amount)

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = budgetID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Orçamento %d", b.Number)
		}
		reqMap["transaction_amount"] = amount
		if enriched, err := json.Marshal(reqMap); err == nil {
			mpPayload = enriched
		}
	}

	providerPaymentID := ""
	providerResp := json.RawMessage(nil)

	if mockMode {
		log.Printf("[deposit][usecase] mock mode enabled; skipping external payment gateway budget_id=%s", budgetID)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		now := time.Now().UTC().Format(time.RFC3339Nano)
		mockResp := map[string]any{}
		_ = json.Unmarshal(mpPayload, &mockResp)
		mockResp["id"] = providerPaymentID
		mockResp["status"] = "approved"
		mockResp["status_detail"] = "accredited"
		mockResp["date_created"] = now
		mockResp["date_approved"] = now
		providerResp, err = json.Marshal(mockResp)
		if err != nil {
			return entities.Deposit{}, err
		}
	} else {
		providerPaymentID, _, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Printf("[deposit][usecase] payment gateway failed budget_id=%s err=%v", budgetID, err)
			if isGatewayUnauthorized(err) {
				return entities.Deposit{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.Deposit{}, ErrPaymentGatewayBadRequest
			}
			return entities.Deposit{}, err
		}
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[deposit][usecase] provider response unmarshal failed budget_id=%s err=%v", budgetID, err)
	}

	d := entities.Deposit{
		ID:           providerPaymentID,
		BudgetID:     budgetID,
		Date:         time.Now().UTC(),
		Status:       entities.DepositStatusAprovado,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		log.Printf("[deposit][usecase] repository create failed budget_id=%s deposit_id=%s err=%v", budgetID, d.ID, err)
		return entities.Deposit{}, err
	}
	log.Printf("[deposit][usecase] create-and-approve success budget_id=%s deposit_id=%s status=%s", budgetID, created.ID, created.Status)
	return created, nil
}

func (u *DepositUseCase) GetByID(ctx context.Context, id string) (entities.Deposit, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Deposit{}, errors.New("invalid deposit id")
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Deposit{}, err
	}
	if d.ID == "" {
		return entities.Deposit{}, ErrDepositNotFound
	}
	return d, nil
}

func (u *DepositUseCase) ListByBudgetID(ctx context.Context, budgetID string) ([]entities.Deposit, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return nil, ErrInvalidDepositBudgetID
	}
	return u.repo.ListByBudgetID(ctx, budgetID)
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
