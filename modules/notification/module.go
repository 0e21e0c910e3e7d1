package notification

import (
	"vetcare-api/core/middleware"
	"vetcare-api/core/queue"
	"vetcare-api/modules/notification/controller"
	"vetcare-api/modules/notification/repository"
	"vetcare-api/modules/notification/router"
	"vetcare-api/modules/notification/service"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

// Init initializes the notification module, registers routes and the
// background task handlers. The returned service doubles as the scheduler's
// Notifier.
func Init(e *echo.Echo, mw *middleware.Middleware, repo *repository.NotificationRepository, scheduler service.ReminderScheduler, approvers service.ApproverDirectory, mux *asynq.ServeMux) *service.NotificationService {
	svc := service.NewNotificationService(repo, scheduler, approvers)
	ctrl := controller.NewNotificationController(svc)
	rtr := router.NewNotificationRouter(ctrl)

	rtr.Setup(e, mw)
	mux.HandleFunc(queue.TypeAppointmentReminder, svc.HandleAppointmentReminder)
	return svc
}
