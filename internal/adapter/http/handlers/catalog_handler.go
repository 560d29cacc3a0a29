package handlers

import (
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
	errInvalidProductPayload   = pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", "Invalid product payload", http.StatusBadRequest)
	errInvalidAccessoryPayload = pkg.NewDomainErrorSimple("INVALID_ACCESSORY_INPUT", "Invalid accessory payload", http.StatusBadRequest)
	errInvalidConfigPayload    = pkg.NewDomainErrorSimple("INVALID_CONFIG_INPUT", "Invalid pricing config payload", http.StatusBadRequest)
)

// CatalogHandler handles HTTP requests for the product/accessory catalog and
// the pricing configuration (rail table and valance per-meter prices).

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	product, err := h.usecase.CreateProduct(c.Request.Context(), toProduct(payload))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProduct(product))
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	product := toProduct(payload)
	product.ID = c.Param("product_id")
	updated, err := h.usecase.UpdateProduct(c.Request.Context(), product)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(updated))
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.usecase.GetProduct(c.Request.Context(), c.Param("product_id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(product))
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.usecase.ListProducts(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProducts(products))
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.usecase.DeleteProduct(c.Request.Context(), c.Param("product_id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) CreateAccessory(c *gin.Context) {
	var payload request.AccessoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAccessoryPayload.HTTPStatus, errInvalidAccessoryPayload.ToHTTPError())
		return
	}

	accessory, err := h.usecase.CreateAccessory(c.Request.Context(), toAccessory(payload))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAccessory(accessory))
}

func (h *CatalogHandler) UpdateAccessory(c *gin.Context) {
	var payload request.AccessoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAccessoryPayload.HTTPStatus, errInvalidAccessoryPayload.ToHTTPError())
		return
	}

	accessory := toAccessory(payload)
	accessory.ID = c.Param("accessory_id")
	updated, err := h.usecase.UpdateAccessory(c.Request.Context(), accessory)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAccessory(updated))
}

func (h *CatalogHandler) GetAccessory(c *gin.Context) {
	accessory, err := h.usecase.GetAccessory(c.Request.Context(), c.Param("accessory_id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAccessory(accessory))
}

func (h *CatalogHandler) ListAccessories(c *gin.Context) {
	accessories, err := h.usecase.ListAccessories(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAccessories(accessories))
}

func (h *CatalogHandler) DeleteAccessory(c *gin.Context) {
	if err := h.usecase.DeleteAccessory(c.Request.Context(), c.Param("accessory_id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) GetRailTable(c *gin.Context) {
	table, err := h.usecase.GetRailTable(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRailTable(table))
}

func (h *CatalogHandler) SaveRailTable(c *gin.Context) {
	var payload request.RailTableRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigPayload.HTTPStatus, errInvalidConfigPayload.ToHTTPError())
		return
	}

	table := make(entities.RailPricingTable, len(payload))
	for key, price := range payload {
		table[entities.RailType(key)] = entities.RailPrice{
			CostPrice: price.CostPrice,
			SalePrice: price.SalePrice,
		}
	}

	saved, err := h.usecase.SaveRailTable(c.Request.Context(), table)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRailTable(saved))
}

func (h *CatalogHandler) GetValanceConfig(c *gin.Context) {
	cfg, err := h.usecase.GetValanceConfig(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromValanceConfig(cfg))
}

func (h *CatalogHandler) SaveValanceConfig(c *gin.Context) {
	var payload request.ValanceConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigPayload.HTTPStatus, errInvalidConfigPayload.ToHTTPError())
		return
	}

	saved, err := h.usecase.SaveValanceConfig(c.Request.Context(), entities.ValanceConfig{
		CostPricePerMeter: payload.CostPricePerMeter,
		SalePricePerMeter: payload.SalePricePerMeter,
	})
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromValanceConfig(saved))
}

func toProduct(payload request.ProductRequest) entities.Product {
	tiers := make([]entities.HeightTier, 0, len(payload.HeightTiers))
	for _, t := range payload.HeightTiers {
		tiers = append(tiers, entities.HeightTier{
			MinHeight: t.MinHeight,
			MaxHeight: t.MaxHeight,
			Price:     t.Price,
		})
	}
	return entities.Product{
		Name:           payload.ResolveName(),
		ModelTag:       payload.ModelTag,
		Method:         entities.CalculationMethod(payload.Method),
		CostPrice:      payload.CostPrice,
		ProfitMargin:   payload.ProfitMargin,
		MinWidth:       payload.MinWidth,
		MinHeight:      payload.MinHeight,
		MinArea:        payload.MinArea,
		MaxWidth:       payload.MaxWidth,
		ScaleToMinArea: payload.ScaleToMinArea,
		HeightTiers:    tiers,
	}
}

func toAccessory(payload request.AccessoryRequest) entities.Accessory {
	colors := make([]entities.AccessoryColor, 0, len(payload.Colors))
	for _, c := range payload.Colors {
		colors = append(colors, entities.AccessoryColor{
			Name:         c.Name,
			CostPrice:    c.CostPrice,
			ProfitMargin: c.ProfitMargin,
		})
	}
	return entities.Accessory{
		Name:   payload.Name,
		Unit:   payload.Unit,
		Colors: colors,
	}
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID),
		errors.Is(err, usecase.ErrInvalidProductName),
		errors.Is(err, usecase.ErrInvalidCostPrice),
		errors.Is(err, usecase.ErrInvalidMinimum),
		errors.Is(err, usecase.ErrInvalidProfitMargin),
		errors.Is(err, usecase.ErrMissingHeightTiers),
		errors.Is(err, usecase.ErrInvalidHeightTier),
		errors.Is(err, usecase.ErrInvalidAccessoryID),
		errors.Is(err, usecase.ErrInvalidAccessoryName),
		errors.Is(err, usecase.ErrAccessoryNeedsColors),
		errors.Is(err, usecase.ErrInvalidAccessoryColor),
		errors.Is(err, usecase.ErrUnknownRailType),
		errors.Is(err, usecase.ErrNegativeConfigPrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAccessoryNotFound):
		return pkg.NewDomainErrorSimple("ACCESSORY_NOT_FOUND", "Accessory not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
