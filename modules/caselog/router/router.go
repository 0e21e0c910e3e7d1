package router

import (
	"vetcare-api/core/middleware"
	"vetcare-api/modules/caselog/controller"

	"github.com/labstack/echo/v4"
)

// CaseRouter registers case log routes.
type CaseRouter struct {
	CaseController *controller.CaseController
}

func NewCaseRouter(caseController *controller.CaseController) *CaseRouter {
	return &CaseRouter{
		CaseController: caseController,
	}
}

// Setup registers case log routes.
func (r *CaseRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private", mw.AuthMiddleware())

	cases := privateRoutes.Group("/cases")
	cases.POST("", r.CaseController.ReportUrgent)
	cases.GET("", r.CaseController.List)
	cases.GET("/urgent", r.CaseController.ListUrgent)
	cases.PUT("/:id/review", r.CaseController.Review)
	cases.PUT("/:id/resolve", r.CaseController.Resolve)
}
