package controller

import (
	"vetcare-api/core/constants"
	"vetcare-api/core/controller"
	"vetcare-api/core/errors"
	"vetcare-api/core/params"
	"vetcare-api/core/utils"
	"vetcare-api/modules/notification/service"

	"github.com/labstack/echo/v4"
)

// NotificationController handles notification HTTP requests.
type NotificationController struct {
	controller.BaseController
	NotificationService service.NotificationServiceInterface
}

func NewNotificationController(svc service.NotificationServiceInterface) *NotificationController {
	return &NotificationController{
		BaseController:      controller.NewBaseController(),
		NotificationService: svc,
	}
}

func (c *NotificationController) userID(ctx echo.Context) (string, *echo.HTTPError) {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok || claims == nil {
		return "", c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}
	return claims.UserID, nil
}

// List handles GET /private/notifications
func (c *NotificationController) List(ctx echo.Context) error {
	userID, httpErr := c.userID(ctx)
	if httpErr != nil {
		return httpErr
	}

	result, appErr := c.NotificationService.List(ctx.Request().Context(), userID, params.Parse(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// MarkRead handles PUT /private/notifications/:id/read
func (c *NotificationController) MarkRead(ctx echo.Context) error {
	userID, httpErr := c.userID(ctx)
	if httpErr != nil {
		return httpErr
	}

	if appErr := c.NotificationService.MarkRead(ctx.Request().Context(), userID, ctx.Param("id")); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Marked as read")
}

// MarkAllRead handles PUT /private/notifications/read-all
func (c *NotificationController) MarkAllRead(ctx echo.Context) error {
	userID, httpErr := c.userID(ctx)
	if httpErr != nil {
		return httpErr
	}

	result, appErr := c.NotificationService.MarkAllRead(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "All marked as read")
}

// CountUnread handles GET /private/notifications/unread-count
func (c *NotificationController) CountUnread(ctx echo.Context) error {
	userID, httpErr := c.userID(ctx)
	if httpErr != nil {
		return httpErr
	}

	result, appErr := c.NotificationService.CountUnread(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}
