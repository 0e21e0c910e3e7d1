package router

import (
	"vetcare-api/core/middleware"
	"vetcare-api/modules/healthrecord/controller"

	"github.com/labstack/echo/v4"
)

// HealthRecordRouter registers health record routes.
type HealthRecordRouter struct {
	HealthRecordController *controller.HealthRecordController
}

func NewHealthRecordRouter(healthRecordController *controller.HealthRecordController) *HealthRecordRouter {
	return &HealthRecordRouter{
		HealthRecordController: healthRecordController,
	}
}

// Setup registers health record routes.
func (r *HealthRecordRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private", mw.AuthMiddleware())

	records := privateRoutes.Group("/health-records")
	records.POST("", r.HealthRecordController.Create)
	records.GET("/animal/:animalId", r.HealthRecordController.ListByAnimal)
	records.PUT("/:id/status", r.HealthRecordController.UpdateStatus)
	records.POST("/:id/images/presign", r.HealthRecordController.PresignImageUpload)
	records.POST("/:id/images", r.HealthRecordController.AttachImage)
}
