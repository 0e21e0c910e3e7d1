package animal

import (
	"vetcare-api/core/middleware"
	"vetcare-api/modules/animal/controller"
	"vetcare-api/modules/animal/repository"
	"vetcare-api/modules/animal/router"
	"vetcare-api/modules/animal/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the animal module and registers routes.
func Init(e *echo.Echo, mw *middleware.Middleware, catalog *repository.CatalogRepository) service.AnimalServiceInterface {
	svc := service.NewAnimalService(catalog)
	ctrl := controller.NewAnimalController(svc)
	rtr := router.NewAnimalRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
