package appointment

import (
	"vetcare-api/core/middleware"
	animalrepository "vetcare-api/modules/animal/repository"
	"vetcare-api/modules/appointment/controller"
	"vetcare-api/modules/appointment/repository"
	"vetcare-api/modules/appointment/router"
	"vetcare-api/modules/appointment/service"
	authrepository "vetcare-api/modules/auth/repository"

	"github.com/labstack/echo/v4"
)

// Init initializes the appointment module and registers routes.
func Init(
	e *echo.Echo,
	mw *middleware.Middleware,
	store *repository.AppointmentRepository,
	users *authrepository.UserRepository,
	animals *animalrepository.CatalogRepository,
	notifier service.Notifier,
) service.AppointmentServiceInterface {
	svc := service.NewAppointmentService(store, users, animals, notifier)
	ctrl := controller.NewAppointmentController(svc)
	rtr := router.NewAppointmentRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
