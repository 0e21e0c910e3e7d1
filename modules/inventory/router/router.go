package router

import (
	"vetcare-api/core/middleware"
	authentity "vetcare-api/modules/auth/entity"
	"vetcare-api/modules/inventory/controller"

	"github.com/labstack/echo/v4"
)

// ItemRouter registers inventory routes.
type ItemRouter struct {
	ItemController *controller.ItemController
}

func NewItemRouter(itemController *controller.ItemController) *ItemRouter {
	return &ItemRouter{
		ItemController: itemController,
	}
}

// Setup registers inventory routes. Creating items is admin work; reading
// and adjusting is open to any signed-in user.
func (r *ItemRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private", mw.AuthMiddleware())

	items := privateRoutes.Group("/inventory")
	items.POST("", r.ItemController.Create, mw.RequireRole(string(authentity.RoleAdmin)))
	items.GET("", r.ItemController.List)
	items.GET("/low-stock", r.ItemController.ListLowStock)
	items.PUT("/:id/quantity", r.ItemController.AdjustQuantity)
}
