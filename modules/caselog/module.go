package caselog

import (
	"vetcare-api/core/middleware"
	animalrepository "vetcare-api/modules/animal/repository"
	"vetcare-api/modules/caselog/controller"
	"vetcare-api/modules/caselog/repository"
	"vetcare-api/modules/caselog/router"
	"vetcare-api/modules/caselog/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the case log module and registers routes.
func Init(
	e *echo.Echo,
	mw *middleware.Middleware,
	repo *repository.CaseRepository,
	animals *animalrepository.CatalogRepository,
	notifier service.Notifier,
) service.CaseServiceInterface {
	svc := service.NewCaseService(repo, animals, notifier)
	ctrl := controller.NewCaseController(svc)
	rtr := router.NewCaseRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
