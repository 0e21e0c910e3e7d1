package controller

import (
	"vetcare-api/core/controller"
	"vetcare-api/core/errors"
	"vetcare-api/modules/inventory/dto"
	"vetcare-api/modules/inventory/service"

	"github.com/labstack/echo/v4"
)

// ItemController handles inventory HTTP requests.
type ItemController struct {
	controller.BaseController
	ItemService service.ItemServiceInterface
}

func NewItemController(svc service.ItemServiceInterface) *ItemController {
	return &ItemController{
		BaseController: controller.NewBaseController(),
		ItemService:    svc,
	}
}

// Create handles POST /private/inventory
func (c *ItemController) Create(ctx echo.Context) error {
	var req dto.CreateItemRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.ItemService.Create(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, result, "Item created")
}

// List handles GET /private/inventory
func (c *ItemController) List(ctx echo.Context) error {
	result, appErr := c.ItemService.List(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// ListLowStock handles GET /private/inventory/low-stock
func (c *ItemController) ListLowStock(ctx echo.Context) error {
	result, appErr := c.ItemService.ListLowStock(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// AdjustQuantity handles PUT /private/inventory/:id/quantity
func (c *ItemController) AdjustQuantity(ctx echo.Context) error {
	var req dto.AdjustQuantityRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.ItemService.AdjustQuantity(ctx.Request().Context(), ctx.Param("id"), req.Delta)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Quantity adjusted")
}
