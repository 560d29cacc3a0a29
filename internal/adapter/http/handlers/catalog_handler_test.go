package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cortinaria/internal/adapter/http/handlers/mocks"
	"cortinaria/internal/domain/entities"
	"cortinaria/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_Products(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, p entities.Product) (entities.Product, error) {
				if p.Name != "VOIL LISO" || p.ModelTag != "WAVE" {
					t.Fatalf("unexpected product: %+v", p)
				}
				p.ID = "p-1"
				return p, nil
			},
		)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/products", h.CreateProduct)

		body := `{"name":" VOIL LISO ","model_tag":"WAVE","height_tiers":[{"min_height":0,"max_height":2.5,"price":100}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/products", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("create missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/products", h.CreateProduct)

		req := httptest.NewRequest(http.MethodPost, "/v1/products", bytes.NewBufferString(`{"cost_price":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().GetProduct(gomock.Any(), "p-404").Return(entities.Product{}, usecase.ErrProductNotFound)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/products/:product_id", h.GetProduct)

		req := httptest.NewRequest(http.MethodGet, "/v1/products/p-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().DeleteProduct(gomock.Any(), "p-1").Return(nil)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.DELETE("/v1/products/:product_id", h.DeleteProduct)

		req := httptest.NewRequest(http.MethodDelete, "/v1/products/p-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_PricingConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("save rail table rejects unknown key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().SaveRailTable(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrUnknownRailType)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.PUT("/v1/config/rails", h.SaveRailTable)

		body := `{"trilho_invisivel":{"sale_price":10}}`
		req := httptest.NewRequest(http.MethodPut, "/v1/config/rails", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("get rail table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().GetRailTable(gomock.Any()).Return(entities.RailPricingTable{
			entities.RailTypeMotorizado: {CostPrice: 100, SalePrice: 150},
		}, nil)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/config/rails", h.GetRailTable)

		req := httptest.NewRequest(http.MethodGet, "/v1/config/rails", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]map[string]float64
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if res["trilho_motorizado"]["sale_price"] != 150 {
			t.Fatalf("unexpected response: %v", res)
		}
	})

	t.Run("save valance config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().SaveValanceConfig(gomock.Any(), entities.ValanceConfig{CostPricePerMeter: 80, SalePricePerMeter: 120}).
			Return(entities.ValanceConfig{CostPricePerMeter: 80, SalePricePerMeter: 120}, nil)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.PUT("/v1/config/valance", h.SaveValanceConfig)

		body := `{"cost_price_per_meter":80,"sale_price_per_meter":120}`
		req := httptest.NewRequest(http.MethodPut, "/v1/config/valance", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
