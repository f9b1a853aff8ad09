package routes

import (
	"taller_central/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers = "/customers"
	PathServices  = "/services"
	PathBudgets   = "/budgets"
	PathPayments  = "/payments"
)

func addWorkshopRoutes(
	rg *gin.RouterGroup,
	customerHandler *handlers.CustomerHandler,
	orderHandler *handlers.ServiceOrderHandler,
	budgetHandler *handlers.BudgetHandler,
	partHandler *handlers.SparePartHandler,
	paymentHandler *handlers.BudgetPaymentHandler,
) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.Create)
		customers.GET("", customerHandler.List)
		customers.GET("/:id", customerHandler.GetByID)
		customers.PUT("/:id", customerHandler.Update)
		customers.DELETE("/:id", customerHandler.Delete)
		customers.GET("/:id/services", orderHandler.ListByCustomer)
	}

	services := rg.Group(PathServices)
	{
		services.POST("", orderHandler.Create)
		services.GET("", orderHandler.List)
		services.GET("/stats", orderHandler.Stats)
		services.GET("/:id", orderHandler.GetByID)
		services.PUT("/:id", orderHandler.Update)
		services.DELETE("/:id", orderHandler.Delete)

		services.POST("/:id/review", orderHandler.Review)
		services.POST("/:id/repair", orderHandler.Repair)
		services.POST("/:id/deliver", orderHandler.Deliver)

		services.POST("/:id/parts", partHandler.Add)
		services.GET("/:id/parts", partHandler.ListByOrder)
		services.PUT("/:id/parts/:part_id", partHandler.Update)
		services.DELETE("/:id/parts/:part_id", partHandler.Remove)
	}

	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", budgetHandler.Create)
		budgets.GET("", budgetHandler.List)
		budgets.GET("/earnings", budgetHandler.Earnings)
		budgets.GET("/service/:service_id", budgetHandler.GetByOrder)
		budgets.GET("/:id", budgetHandler.GetByID)
		budgets.PUT("/:id", budgetHandler.Update)
		budgets.DELETE("/:id", budgetHandler.Delete)

		budgets.PATCH("/:id/accept", budgetHandler.Accept)
		budgets.PATCH("/:id/reject", budgetHandler.Reject)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:budget_id", paymentHandler.CreateByBudgetID)
		payments.GET("/:budget_id", paymentHandler.GetByBudgetID)
	}
}
