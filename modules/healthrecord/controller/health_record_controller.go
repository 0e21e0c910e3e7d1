package controller

import (
	"vetcare-api/core/constants"
	"vetcare-api/core/controller"
	"vetcare-api/core/errors"
	"vetcare-api/core/utils"
	"vetcare-api/modules/healthrecord/dto"
	"vetcare-api/modules/healthrecord/service"

	"github.com/labstack/echo/v4"
)

// HealthRecordController handles health record HTTP requests.
type HealthRecordController struct {
	controller.BaseController
	HealthRecordService service.HealthRecordServiceInterface
}

func NewHealthRecordController(svc service.HealthRecordServiceInterface) *HealthRecordController {
	return &HealthRecordController{
		BaseController:      controller.NewBaseController(),
		HealthRecordService: svc,
	}
}

// Create handles POST /private/health-records
func (c *HealthRecordController) Create(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok || claims == nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.CreateHealthRecordRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.HealthRecordService.Create(ctx.Request().Context(), claims.UserID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, result, "Health record created")
}

// ListByAnimal handles GET /private/health-records/animal/:animalId
func (c *HealthRecordController) ListByAnimal(ctx echo.Context) error {
	result, appErr := c.HealthRecordService.ListByAnimal(ctx.Request().Context(), ctx.Param("animalId"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// UpdateStatus handles PUT /private/health-records/:id/status
func (c *HealthRecordController) UpdateStatus(ctx echo.Context) error {
	var req dto.UpdateRecordStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.HealthRecordService.UpdateStatus(ctx.Request().Context(), ctx.Param("id"), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Status updated")
}

// PresignImageUpload handles POST /private/health-records/:id/images/presign
func (c *HealthRecordController) PresignImageUpload(ctx echo.Context) error {
	var req dto.PresignUploadRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.HealthRecordService.PresignImageUpload(ctx.Request().Context(), ctx.Param("id"), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Upload URL issued")
}

// AttachImage handles POST /private/health-records/:id/images
func (c *HealthRecordController) AttachImage(ctx echo.Context) error {
	var req struct {
		Key string `json:"key"`
	}
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.HealthRecordService.AttachImage(ctx.Request().Context(), ctx.Param("id"), req.Key)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Image attached")
}
