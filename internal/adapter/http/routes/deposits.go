package routes

import (
	"cortinaria/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDeposits = "/deposits"
)

func addDepositRoutes(rg *gin.RouterGroup, depositHandler *handlers.DepositHandler) {
	deposits := rg.Group(PathDeposits)
	{
		deposits.POST("/:budget_id", depositHandler.CreateDepositByBudgetID)
		deposits.GET("/:budget_id", depositHandler.GetDepositByBudgetID)
	}
}
