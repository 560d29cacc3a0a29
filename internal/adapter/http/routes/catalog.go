package routes

import (
	"cortinaria/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts    = "/products"
	PathAccessories = "/accessories"
	PathConfig      = "/config"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	products := rg.Group(PathProducts)
	{
		products.POST("", catalogHandler.CreateProduct)
		products.GET("", catalogHandler.ListProducts)
		products.GET("/:product_id", catalogHandler.GetProduct)
		products.PUT("/:product_id", catalogHandler.UpdateProduct)
		products.DELETE("/:product_id", catalogHandler.DeleteProduct)
	}

	accessories := rg.Group(PathAccessories)
	{
		accessories.POST("", catalogHandler.CreateAccessory)
		accessories.GET("", catalogHandler.ListAccessories)
		accessories.GET("/:accessory_id", catalogHandler.GetAccessory)
		accessories.PUT("/:accessory_id", catalogHandler.UpdateAccessory)
		accessories.DELETE("/:accessory_id", catalogHandler.DeleteAccessory)
	}

	config := rg.Group(PathConfig)
	{
		config.GET("/rails", catalogHandler.GetRailTable)
		config.PUT("/rails", catalogHandler.SaveRailTable)
		config.GET("/valance", catalogHandler.GetValanceConfig)
		config.PUT("/valance", catalogHandler.SaveValanceConfig)
	}
}
