package auth

import (
	"vetcare-api/core/cache"
	"vetcare-api/core/middleware"
	"vetcare-api/modules/auth/controller"
	"vetcare-api/modules/auth/repository"
	"vetcare-api/modules/auth/router"
	"vetcare-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the auth module and registers routes.
func Init(e *echo.Echo, mw *middleware.Middleware, users *repository.UserRepository, c *cache.Cache) service.AuthServiceInterface {
	svc := service.NewAuthService(users, c, c)
	ctrl := controller.NewAuthController(svc)
	rtr := router.NewAuthRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
