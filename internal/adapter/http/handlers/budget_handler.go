package handlers

import (
	"context"
	"errors"
	"net/http"

	request "cortinaria/internal/adapter/http/dto/request"
	response "cortinaria/internal/adapter/http/dto/response"
	"cortinaria/internal/domain/entities"
	"cortinaria/internal/usecase"
	"cortinaria/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)
)

// BudgetHandler handles HTTP requests for budgets (orçamentos).

type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

// CreateBudget prices every item server-side and assigns the next sequential
// budget number.
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var payload request.BudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	budget, err := h.usecase.Create(c.Request.Context(), toBudgetInput(payload))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBudget(budget))
}

// UpdateBudget replaces the items and reprices the budget; the number, status
// and creation time of the stored budget never change on edit.
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	var payload request.BudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	budget, err := h.usecase.Update(c.Request.Context(), c.Param("budget_id"), toBudgetInput(payload))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func (h *BudgetHandler) GetBudget(c *gin.Context) {
	budget, err := h.usecase.GetByID(c.Request.Context(), c.Param("budget_id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

// ListBudgets returns the budgets for the customer_id query parameter.
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	budgets, err := h.usecase.ListByCustomerID(c.Request.Context(), c.Query("customer_id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgets(budgets))
}

func (h *BudgetHandler) FinalizeBudget(c *gin.Context) {
	h.patchBudgetStatus(c, h.usecase.Finalize)
}

func (h *BudgetHandler) CancelBudget(c *gin.Context) {
	h.patchBudgetStatus(c, h.usecase.Cancel)
}

func (h *BudgetHandler) ReactivateBudget(c *gin.Context) {
	h.patchBudgetStatus(c, h.usecase.Reactivate)
}

func (h *BudgetHandler) patchBudgetStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Budget, error),
) {
	budget, err := updater(c.Request.Context(), c.Param("budget_id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func toBudgetInput(payload request.BudgetRequest) usecase.BudgetInput {
	lines := make([]usecase.LineItemInput, 0, len(payload.LineItems))
	for _, li := range payload.LineItems {
		lines = append(lines, usecase.LineItemInput{
			ProductID:         li.ProductID,
			Width:             li.Width.Value(),
			Height:            li.Height.Value(),
			Valance:           li.Valance,
			Installation:      li.Installation,
			InstallationValue: li.InstallationValue.Value(),
			Panel:             li.Panel,
			PanelCount:        li.PanelCount,
			RailType:          li.RailType,
		})
	}

	accs := make([]usecase.AccessoryItemInput, 0, len(payload.Accessories))
	for _, ai := range payload.Accessories {
		accs = append(accs, usecase.AccessoryItemInput{
			AccessoryID: ai.AccessoryID,
			Color:       ai.Color,
			Quantity:    ai.Quantity.Value(),
		})
	}

	return usecase.BudgetInput{
		CustomerID:      payload.ResolveCustomerID(),
		LineItems:       lines,
		Accessories:     accs,
		Observation:     payload.Observation,
		NegotiatedValue: payload.NegotiatedValue,
	}
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetID), errors.Is(err, usecase.ErrInvalidCustomerID), errors.Is(err, usecase.ErrEmptyBudget), errors.Is(err, usecase.ErrInvalidNegotiation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetNotPending):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_PENDING", "Budget is not pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrBudgetNotCanceled):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_CANCELED", "Budget is not canceled", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
