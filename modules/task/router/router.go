package router

import (
	"vetcare-api/core/middleware"
	"vetcare-api/modules/task/controller"

	"github.com/labstack/echo/v4"
)

// TaskRouter registers task routes.
type TaskRouter struct {
	TaskController *controller.TaskController
}

func NewTaskRouter(taskController *controller.TaskController) *TaskRouter {
	return &TaskRouter{
		TaskController: taskController,
	}
}

// Setup registers task routes.
func (r *TaskRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private", mw.AuthMiddleware())

	tasks := privateRoutes.Group("/tasks")
	tasks.POST("", r.TaskController.Create)
	tasks.GET("", r.TaskController.ListMine)
	tasks.PUT("/:id/complete", r.TaskController.Complete)
}
