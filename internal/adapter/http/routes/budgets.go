package routes

import (
	"cortinaria/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBudgets = "/budgets"
)

func addBudgetRoutes(rg *gin.RouterGroup, budgetHandler *handlers.BudgetHandler) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", budgetHandler.CreateBudget)
		budgets.GET("", budgetHandler.ListBudgets)
		budgets.GET("/:budget_id", budgetHandler.GetBudget)
		budgets.PUT("/:budget_id", budgetHandler.UpdateBudget)
		budgets.PATCH("/:budget_id/finalize", budgetHandler.FinalizeBudget)
		budgets.PATCH("/:budget_id/cancel", budgetHandler.CancelBudget)
		budgets.PATCH("/:budget_id/reactivate", budgetHandler.ReactivateBudget)
	}
}
