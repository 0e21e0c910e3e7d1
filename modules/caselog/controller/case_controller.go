package controller

import (
	"vetcare-api/core/constants"
	"vetcare-api/core/controller"
	"vetcare-api/core/errors"
	"vetcare-api/core/utils"
	authentity "vetcare-api/modules/auth/entity"
	"vetcare-api/modules/caselog/dto"
	"vetcare-api/modules/caselog/service"

	"github.com/labstack/echo/v4"
)

// CaseController handles case log HTTP requests.
type CaseController struct {
	controller.BaseController
	CaseService service.CaseServiceInterface
}

func NewCaseController(svc service.CaseServiceInterface) *CaseController {
	return &CaseController{
		BaseController: controller.NewBaseController(),
		CaseService:    svc,
	}
}

func (c *CaseController) actor(ctx echo.Context) (service.Actor, *echo.HTTPError) {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok || claims == nil {
		return service.Actor{}, c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}
	role, ok := authentity.ParseRole(claims.Role)
	if !ok {
		return service.Actor{}, c.Unauthorized(errors.ErrUnauthorized, "Unknown role on token")
	}
	return service.Actor{ID: claims.UserID, Role: role}, nil
}

// ReportUrgent handles POST /private/cases
func (c *CaseController) ReportUrgent(ctx echo.Context) error {
	actor, httpErr := c.actor(ctx)
	if httpErr != nil {
		return httpErr
	}

	var req dto.ReportCaseRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.CaseService.ReportUrgent(ctx.Request().Context(), actor, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, result, "Case reported")
}

// Review handles PUT /private/cases/:id/review
func (c *CaseController) Review(ctx echo.Context) error {
	actor, httpErr := c.actor(ctx)
	if httpErr != nil {
		return httpErr
	}

	var req dto.ReviewCaseRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.CaseService.Review(ctx.Request().Context(), actor, ctx.Param("id"), req.Approve)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Case reviewed")
}

// Resolve handles PUT /private/cases/:id/resolve
func (c *CaseController) Resolve(ctx echo.Context) error {
	actor, httpErr := c.actor(ctx)
	if httpErr != nil {
		return httpErr
	}

	result, appErr := c.CaseService.Resolve(ctx.Request().Context(), actor, ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Case resolved")
}

// List handles GET /private/cases
func (c *CaseController) List(ctx echo.Context) error {
	result, appErr := c.CaseService.List(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// ListUrgent handles GET /private/cases/urgent
func (c *CaseController) ListUrgent(ctx echo.Context) error {
	result, appErr := c.CaseService.ListUrgent(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}
