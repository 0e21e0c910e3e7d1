package healthrecord

import (
	"vetcare-api/core/middleware"
	animalrepository "vetcare-api/modules/animal/repository"
	"vetcare-api/modules/healthrecord/controller"
	"vetcare-api/modules/healthrecord/repository"
	"vetcare-api/modules/healthrecord/router"
	"vetcare-api/modules/healthrecord/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the health record module and registers routes.
func Init(
	e *echo.Echo,
	mw *middleware.Middleware,
	repo *repository.HealthRecordRepository,
	animals *animalrepository.CatalogRepository,
	presigner service.Presigner,
) service.HealthRecordServiceInterface {
	svc := service.NewHealthRecordService(repo, animals, presigner)
	ctrl := controller.NewHealthRecordController(svc)
	rtr := router.NewHealthRecordRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
