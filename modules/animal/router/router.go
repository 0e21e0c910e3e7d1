package router

import (
	"vetcare-api/core/middleware"
	"vetcare-api/modules/animal/controller"

	"github.com/labstack/echo/v4"
)

// AnimalRouter registers animal catalog routes.
type AnimalRouter struct {
	AnimalController *controller.AnimalController
}

func NewAnimalRouter(animalController *controller.AnimalController) *AnimalRouter {
	return &AnimalRouter{
		AnimalController: animalController,
	}
}

// Setup registers animal routes.
func (r *AnimalRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private", mw.AuthMiddleware())

	animalRoutes := privateRoutes.Group("/animals")
	animalRoutes.GET("/members", r.AnimalController.ListMembers)
	animalRoutes.GET("/members/:slug", r.AnimalController.GetMember)
	animalRoutes.POST("/filter", r.AnimalController.FilterAnimals)
	animalRoutes.GET("/:id", r.AnimalController.GetAnimal)
}
