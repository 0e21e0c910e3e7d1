package router

import (
	"vetcare-api/core/middleware"
	"vetcare-api/modules/auth/controller"
	"vetcare-api/modules/auth/entity"

	"github.com/labstack/echo/v4"
)

// AuthRouter registers auth and user routes.
type AuthRouter struct {
	AuthController *controller.AuthController
}

func NewAuthRouter(authController *controller.AuthController) *AuthRouter {
	return &AuthRouter{
		AuthController: authController,
	}
}

// Setup registers auth routes.
func (r *AuthRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	authRoutes := v1.Group("/auth")
	authRoutes.POST("/sign-in", r.AuthController.SignIn)

	privateRoutes := v1.Group("/private", mw.AuthMiddleware())

	privateAuth := privateRoutes.Group("/auth")
	privateAuth.POST("/sign-out", r.AuthController.SignOut)
	privateAuth.GET("/me", r.AuthController.Me)
	privateAuth.GET("/onboarding", r.AuthController.Onboarding)
	privateAuth.PUT("/onboarding", r.AuthController.SetOnboarding)

	userRoutes := privateRoutes.Group("/users")
	userRoutes.GET("/approvers", r.AuthController.ListApprovers)
	userRoutes.GET("", r.AuthController.ListUsers, mw.RequireRole(string(entity.RoleAdmin)))
}
