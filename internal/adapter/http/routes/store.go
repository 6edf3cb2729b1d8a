package routes

import (
	"smartsales365/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCarts    = "/carritos"
	PathSales    = "/ventas"
	PathPayments = "/pagos"
)

func addStoreRoutes(rg *gin.RouterGroup, cartHandler *handlers.CartHandler, saleHandler *handlers.SaleHandler) {
	carts := rg.Group(PathCarts)
	{
		carts.GET("/:usuario_id", cartHandler.GetActive)
		carts.POST("/:usuario_id/items", cartHandler.AddItem)
		carts.PUT("/:usuario_id/items/:producto_id", cartHandler.UpdateItem)
		carts.DELETE("/:usuario_id/items/:producto_id", cartHandler.RemoveItem)
		carts.DELETE("/:usuario_id", cartHandler.Clear)
	}

	sales := rg.Group(PathSales)
	{
		sales.POST("/checkout", saleHandler.Checkout)
		sales.GET("", saleHandler.ListSales)
		sales.GET("/:id", saleHandler.GetSale)
		sales.POST("/:id/pagar", saleHandler.Pay)
		sales.PATCH("/:id/entregar", saleHandler.MarkDelivered)
		sales.GET("/:id/garantias", saleHandler.Warranties)
	}

	payments := rg.Group(PathPayments)
	{
		// Endpoint notificado por Mercado Pago.
		payments.POST("/webhook", saleHandler.PaymentWebhook)
	}
}
