package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cortinaria/internal/adapter/http/handlers/mocks"
	"cortinaria/internal/domain/entities"
	"cortinaria/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDepositHandler_CreateDepositByBudgetID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		h := NewDepositHandler(uc)

		r := gin.New()
		r.POST("/v1/deposits/:budget_id", h.CreateDepositByBudgetID)

		req := httptest.NewRequest(http.MethodPost, "/v1/deposits/b-1", bytes.NewBufferString("{broken"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unwraps mp_payload envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		uc.EXPECT().CreateAndApprove(gomock.Any(), "b-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, payload json.RawMessage) (entities.Deposit, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("payload is not json: %v", err)
				}
				if m["payment_method_id"] != "pix" {
					t.Fatalf("expected unwrapped payload, got %v", m)
				}
				return entities.Deposit{ID: "d-1", BudgetID: "b-1", Status: entities.DepositStatusAprovado}, nil
			},
		)
		h := NewDepositHandler(uc)

		r := gin.New()
		r.POST("/v1/deposits/:budget_id", h.CreateDepositByBudgetID)

		body := `{"mp_payload":{"payment_method_id":"pix"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/deposits/b-1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("budget not finalized maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		uc.EXPECT().CreateAndApprove(gomock.Any(), "b-1", gomock.Any()).
			Return(entities.Deposit{}, usecase.ErrBudgetNotFinalized)
		h := NewDepositHandler(uc)

		r := gin.New()
		r.POST("/v1/deposits/:budget_id", h.CreateDepositByBudgetID)

		req := httptest.NewRequest(http.MethodPost, "/v1/deposits/b-1", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gateway unauthorized maps to 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		uc.EXPECT().CreateAndApprove(gomock.Any(), "b-1", gomock.Any()).
			Return(entities.Deposit{}, usecase.ErrPaymentGatewayUnauthorized)
		h := NewDepositHandler(uc)

		r := gin.New()
		r.POST("/v1/deposits/:budget_id", h.CreateDepositByBudgetID)

		req := httptest.NewRequest(http.MethodPost, "/v1/deposits/b-1", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestDepositHandler_GetDepositByBudgetID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty list maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		uc.EXPECT().ListByBudgetID(gomock.Any(), "b-1").Return(nil, nil)
		h := NewDepositHandler(uc)

		r := gin.New()
		r.GET("/v1/deposits/:budget_id", h.GetDepositByBudgetID)

		req := httptest.NewRequest(http.MethodGet, "/v1/deposits/b-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("returns latest deposit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositUseCase(ctrl)
		older := entities.Deposit{ID: "d-1", BudgetID: "b-1", Date: time.Now().Add(-time.Hour), Status: entities.DepositStatusAprovado}
		newer := entities.Deposit{ID: "d-2", BudgetID: "b-1", Date: time.Now(), Status: entities.DepositStatusAprovado}
		uc.EXPECT().ListByBudgetID(gomock.Any(), "b-1").Return([]entities.Deposit{older, newer}, nil)
		h := NewDepositHandler(uc)

		r := gin.New()
		r.GET("/v1/deposits/:budget_id", h.GetDepositByBudgetID)

		req := httptest.NewRequest(http.MethodGet, "/v1/deposits/b-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if res["deposit_id"] != "d-2" {
			t.Fatalf("expected latest deposit d-2, got %v", res["deposit_id"])
		}
	})
}
