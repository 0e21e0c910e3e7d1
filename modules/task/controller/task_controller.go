package controller

import (
	"vetcare-api/core/constants"
	"vetcare-api/core/controller"
	"vetcare-api/core/errors"
	"vetcare-api/core/utils"
	"vetcare-api/modules/task/dto"
	"vetcare-api/modules/task/service"

	"github.com/labstack/echo/v4"
)

// TaskController handles daily task HTTP requests.
type TaskController struct {
	controller.BaseController
	TaskService service.TaskServiceInterface
}

func NewTaskController(svc service.TaskServiceInterface) *TaskController {
	return &TaskController{
		BaseController: controller.NewBaseController(),
		TaskService:    svc,
	}
}

func (c *TaskController) userID(ctx echo.Context) (string, *echo.HTTPError) {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok || claims == nil {
		return "", c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}
	return claims.UserID, nil
}

// Create handles POST /private/tasks
func (c *TaskController) Create(ctx echo.Context) error {
	var req dto.CreateTaskRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.TaskService.Create(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, result, "Task created")
}

// ListMine handles GET /private/tasks
func (c *TaskController) ListMine(ctx echo.Context) error {
	userID, httpErr := c.userID(ctx)
	if httpErr != nil {
		return httpErr
	}

	result, appErr := c.TaskService.ListMine(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// Complete handles PUT /private/tasks/:id/complete
func (c *TaskController) Complete(ctx echo.Context) error {
	userID, httpErr := c.userID(ctx)
	if httpErr != nil {
		return httpErr
	}

	result, appErr := c.TaskService.Complete(ctx.Request().Context(), userID, ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Task completed")
}
