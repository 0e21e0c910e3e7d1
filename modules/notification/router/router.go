package router

import (
	"vetcare-api/core/middleware"
	"vetcare-api/modules/notification/controller"

	"github.com/labstack/echo/v4"
)

// NotificationRouter registers notification routes.
type NotificationRouter struct {
	NotificationController *controller.NotificationController
}

func NewNotificationRouter(notificationController *controller.NotificationController) *NotificationRouter {
	return &NotificationRouter{
		NotificationController: notificationController,
	}
}

// Setup registers notification routes.
func (r *NotificationRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private", mw.AuthMiddleware())

	notifications := privateRoutes.Group("/notifications")
	notifications.GET("", r.NotificationController.List)
	notifications.GET("/unread-count", r.NotificationController.CountUnread)
	notifications.PUT("/read-all", r.NotificationController.MarkAllRead)
	notifications.PUT("/:id/read", r.NotificationController.MarkRead)
}
