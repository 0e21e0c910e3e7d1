package controller

import (
	"vetcare-api/core/constants"
	"vetcare-api/core/controller"
	"vetcare-api/core/errors"
	"vetcare-api/core/utils"
	"vetcare-api/modules/animal/dto"
	"vetcare-api/modules/animal/entity"
	"vetcare-api/modules/animal/service"
	authentity "vetcare-api/modules/auth/entity"

	"github.com/labstack/echo/v4"
)

// AnimalController handles animal catalog HTTP requests.
type AnimalController struct {
	controller.BaseController
	AnimalService service.AnimalServiceInterface
}

func NewAnimalController(svc service.AnimalServiceInterface) *AnimalController {
	return &AnimalController{
		BaseController: controller.NewBaseController(),
		AnimalService:  svc,
	}
}

func (c *AnimalController) actorRole(ctx echo.Context) (authentity.UserRole, *echo.HTTPError) {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok || claims == nil {
		return "", c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}
	role, ok := authentity.ParseRole(claims.Role)
	if !ok {
		return "", c.Unauthorized(errors.ErrUnauthorized, "Unknown role on token")
	}
	return role, nil
}

// ListMembers handles GET /private/animals/members?category=&search=
func (c *AnimalController) ListMembers(ctx echo.Context) error {
	role, httpErr := c.actorRole(ctx)
	if httpErr != nil {
		return httpErr
	}

	var category *entity.Category
	if raw := ctx.QueryParam("category"); raw != "" {
		cat := entity.Category(raw)
		if !cat.IsValid() {
			return c.BadRequest(errors.ErrInvalidInput, "Unknown category")
		}
		category = &cat
	}

	result, appErr := c.AnimalService.FilterMembers(ctx.Request().Context(), role, category, ctx.QueryParam("search"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// GetMember handles GET /private/animals/members/:slug
func (c *AnimalController) GetMember(ctx echo.Context) error {
	result, appErr := c.AnimalService.GetMember(ctx.Request().Context(), ctx.Param("slug"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// GetAnimal handles GET /private/animals/:id
func (c *AnimalController) GetAnimal(ctx echo.Context) error {
	result, appErr := c.AnimalService.GetAnimal(ctx.Request().Context(), ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// FilterAnimals handles POST /private/animals/filter
func (c *AnimalController) FilterAnimals(ctx echo.Context) error {
	var req dto.FilterAnimalsRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	opts := entity.FilterOptions{
		Name:        req.Name,
		MinAgeYears: req.MinAgeYears,
		MaxAgeYears: req.MaxAgeYears,
	}
	for _, hs := range req.HealthStatus {
		opts.HealthStatus = append(opts.HealthStatus, entity.HealthStatus(hs))
	}
	if req.Gender != "" {
		g := entity.Gender(req.Gender)
		opts.Gender = &g
	}

	result, appErr := c.AnimalService.FilterAnimals(ctx.Request().Context(), opts)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}
