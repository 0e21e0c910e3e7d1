package task

import (
	"vetcare-api/core/middleware"
	authrepository "vetcare-api/modules/auth/repository"
	"vetcare-api/modules/task/controller"
	"vetcare-api/modules/task/repository"
	"vetcare-api/modules/task/router"
	"vetcare-api/modules/task/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the task module and registers routes.
func Init(e *echo.Echo, mw *middleware.Middleware, repo *repository.TaskRepository, users *authrepository.UserRepository) service.TaskServiceInterface {
	svc := service.NewTaskService(repo, users)
	ctrl := controller.NewTaskController(svc)
	rtr := router.NewTaskRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
