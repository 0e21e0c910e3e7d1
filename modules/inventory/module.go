package inventory

import (
	"vetcare-api/core/middleware"
	"vetcare-api/modules/inventory/controller"
	"vetcare-api/modules/inventory/repository"
	"vetcare-api/modules/inventory/router"
	"vetcare-api/modules/inventory/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the inventory module and registers routes.
func Init(e *echo.Echo, mw *middleware.Middleware, repo *repository.ItemRepository, notifier service.Notifier) service.ItemServiceInterface {
	svc := service.NewItemService(repo, notifier)
	ctrl := controller.NewItemController(svc)
	rtr := router.NewItemRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
