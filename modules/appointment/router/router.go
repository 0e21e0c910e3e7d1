package router

import (
	"vetcare-api/core/middleware"
	"vetcare-api/modules/appointment/controller"

	"github.com/labstack/echo/v4"
)

// AppointmentRouter registers appointment routes.
type AppointmentRouter struct {
	AppointmentController *controller.AppointmentController
}

func NewAppointmentRouter(appointmentController *controller.AppointmentController) *AppointmentRouter {
	return &AppointmentRouter{
		AppointmentController: appointmentController,
	}
}

// Setup registers appointment routes. All routes require authentication;
// role checks happen in the service so the error taxonomy stays in one place.
func (r *AppointmentRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private", mw.AuthMiddleware())

	appointments := privateRoutes.Group("/appointments")
	appointments.POST("", r.AppointmentController.Create)
	appointments.GET("", r.AppointmentController.ListForDate)
	appointments.GET("/marked-dates", r.AppointmentController.MarkedDates)
	appointments.GET("/requests", r.AppointmentController.ListUnscheduledRequests)
	appointments.GET("/day/:date", r.AppointmentController.SelectDay)
	appointments.POST("/:id/resolve", r.AppointmentController.Resolve)
	appointments.POST("/:id/schedule", r.AppointmentController.ConfirmSchedule)
}
