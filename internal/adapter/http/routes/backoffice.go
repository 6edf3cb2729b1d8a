package routes

import (
	"smartsales365/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts     = "/productos"
	PathDiscounts    = "/descuentos"
	PathMaintenances = "/mantenimientos"
	PathUsers        = "/usuarios"
	PathAudit        = "/bitacora"
)

func addBackofficeRoutes(
	rg *gin.RouterGroup,
	productHandler *handlers.ProductHandler,
	discountHandler *handlers.DiscountHandler,
	maintenanceHandler *handlers.MaintenanceHandler,
	userHandler *handlers.UserHandler,
	auditHandler *handlers.AuditHandler,
) {
	products := rg.Group(PathProducts)
	{
		products.POST("", productHandler.CreateProduct)
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.PUT("/:id", productHandler.UpdateProduct)
		products.DELETE("/:id", productHandler.DeactivateProduct)
	}

	discounts := rg.Group(PathDiscounts)
	{
		discounts.POST("", discountHandler.CreateDiscount)
		discounts.GET("", discountHandler.ListDiscounts)
		discounts.GET("/:id", discountHandler.GetDiscount)
		discounts.PUT("/:id", discountHandler.UpdateDiscount)
		discounts.DELETE("/:id", discountHandler.DeleteDiscount)
		discounts.PATCH("/:id/activar", discountHandler.SetDiscountActive)
		discounts.GET("/producto/:producto_id", discountHandler.BestForProduct)
	}

	maintenances := rg.Group(PathMaintenances)
	{
		maintenances.POST("", maintenanceHandler.RequestMaintenance)
		maintenances.GET("", maintenanceHandler.ListMaintenances)
		maintenances.GET("/:id", maintenanceHandler.GetMaintenance)
		maintenances.PATCH("/:id/asignar", maintenanceHandler.AssignMaintenance)
		maintenances.PATCH("/:id/completar", maintenanceHandler.CompleteMaintenance)
	}

	users := rg.Group(PathUsers)
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	rg.GET(PathAudit, auditHandler.ListEntries)
}
