package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	response "cortinaria/internal/adapter/http/dto/response"
	"cortinaria/internal/usecase"
	"cortinaria/pkg"

	"github.com/gin-gonic/gin"
)

// DepositHandler handles HTTP requests for down payments (sinal) collected on
// finalized budgets.

type DepositHandler struct {
	usecase usecase.IDepositUseCase
}

func NewDepositHandler(uc usecase.IDepositUseCase) *DepositHandler {
	return &DepositHandler{usecase: uc}
}

// CreateDepositByBudgetID charges and records the deposit for a budget.
func (h *DepositHandler) CreateDepositByBudgetID(c *gin.Context) {
	budgetID := c.Param("budget_id")
	log.Printf("[deposit][handler] create start budget_id=%s", budgetID)
	mockMode := isDepositMockEnabled()
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[deposit][handler] payload invalid in mock mode; fallback to empty payload budget_id=%s err=%v", budgetID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[deposit][handler] invalid payload budget_id=%s err=%v", budgetID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), budgetID, mpPayload)
	if err != nil {
		log.Printf("[deposit][handler] create failed budget_id=%s err=%v", budgetID, err)
		appErr := mapDepositError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[deposit][handler] create success budget_id=%s deposit_id=%s status=%s", budgetID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromDeposit(created))
}

// GetDepositByBudgetID returns the latest deposit recorded for a budget.
func (h *DepositHandler) GetDepositByBudgetID(c *gin.Context) {
	budgetID := c.Param("budget_id")
	log.Printf("[deposit][handler] get-by-budget start budget_id=%s", budgetID)

	deposits, err := h.usecase.ListByBudgetID(c.Request.Context(), budgetID)
	if err != nil {
		log.Printf("[deposit][handler] get-by-budget failed budget_id=%s err=%v", budgetID, err)
		appErr := mapDepositError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(deposits) == 0 {
		log.Printf("[deposit][handler] get-by-budget not-found budget_id=%s", budgetID)
		appErr := pkg.NewDomainErrorSimple("DEPOSIT_NOT_FOUND", "Deposit not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := deposits[0]
	for _, d := range deposits[1:] {
		if d.Date.After(latest.Date) {
			latest = d
		}
	}
	log.Printf("[deposit][handler] get-by-budget success budget_id=%s deposit_id=%s status=%s", budgetID, latest.ID, latest.Status)

	c.JSON(http.StatusOK, response.FromDeposit(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapDepositError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDepositBudgetID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetNotFinalized):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FINALIZED", "Budget not finalized", http.StatusConflict)
	case errors.Is(err, usecase.ErrDepositNotFound):
		return pkg.NewDomainErrorSimple("DEPOSIT_NOT_FOUND", "Deposit not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isDepositMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
