package controller

import (
	"vetcare-api/core/constants"
	"vetcare-api/core/controller"
	"vetcare-api/core/errors"
	"vetcare-api/core/utils"
	"vetcare-api/modules/appointment/dto"
	"vetcare-api/modules/appointment/entity"
	"vetcare-api/modules/appointment/service"
	authentity "vetcare-api/modules/auth/entity"

	"github.com/labstack/echo/v4"
)

// AppointmentController handles appointment HTTP requests.
type AppointmentController struct {
	controller.BaseController
	AppointmentService service.AppointmentServiceInterface
}

func NewAppointmentController(svc service.AppointmentServiceInterface) *AppointmentController {
	return &AppointmentController{
		BaseController:     controller.NewBaseController(),
		AppointmentService: svc,
	}
}

func (c *AppointmentController) actor(ctx echo.Context) (service.Actor, *echo.HTTPError) {
	tokenData := ctx.Get(constants.ContextTokenData)
	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok || claims == nil {
		return service.Actor{}, c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}
	role, ok := authentity.ParseRole(claims.Role)
	if !ok {
		return service.Actor{}, c.Unauthorized(errors.ErrUnauthorized, "Unknown role on token")
	}
	return service.Actor{ID: claims.UserID, Role: role}, nil
}

// Create handles POST /private/appointments
func (c *AppointmentController) Create(ctx echo.Context) error {
	actor, httpErr := c.actor(ctx)
	if httpErr != nil {
		return httpErr
	}

	var req dto.CreateAppointmentRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.AppointmentService.Create(ctx.Request().Context(), actor, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, result, "Appointment created")
}

// Resolve handles POST /private/appointments/:id/resolve
func (c *AppointmentController) Resolve(ctx echo.Context) error {
	actor, httpErr := c.actor(ctx)
	if httpErr != nil {
		return httpErr
	}

	var req dto.ResolveAppointmentRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.AppointmentService.Resolve(ctx.Request().Context(), actor, ctx.Param("id"), entity.Action(req.Action))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Appointment resolved")
}

// ConfirmSchedule handles POST /private/appointments/:id/schedule
func (c *AppointmentController) ConfirmSchedule(ctx echo.Context) error {
	actor, httpErr := c.actor(ctx)
	if httpErr != nil {
		return httpErr
	}

	var req dto.ConfirmScheduleRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.AppointmentService.ConfirmSchedule(ctx.Request().Context(), actor, ctx.Param("id"), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Schedule confirmed")
}

// ListForDate handles GET /private/appointments?date=2006-01-02
func (c *AppointmentController) ListForDate(ctx echo.Context) error {
	date := ctx.QueryParam("date")
	if date == "" {
		return c.BadRequest(errors.ErrInvalidRequestData, "Query parameter date is required")
	}

	result, appErr := c.AppointmentService.ListForDate(ctx.Request().Context(), date)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// MarkedDates handles GET /private/appointments/marked-dates
func (c *AppointmentController) MarkedDates(ctx echo.Context) error {
	result, appErr := c.AppointmentService.MarkedDates(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// SelectDay handles GET /private/appointments/day/:date
func (c *AppointmentController) SelectDay(ctx echo.Context) error {
	result, appErr := c.AppointmentService.SelectDay(ctx.Request().Context(), ctx.Param("date"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// ListUnscheduledRequests handles GET /private/appointments/requests
func (c *AppointmentController) ListUnscheduledRequests(ctx echo.Context) error {
	result, appErr := c.AppointmentService.ListUnscheduledRequests(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}
