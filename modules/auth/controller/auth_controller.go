package controller

import (
	"vetcare-api/core/constants"
	"vetcare-api/core/controller"
	"vetcare-api/core/errors"
	"vetcare-api/core/utils"
	"vetcare-api/modules/auth/dto"
	"vetcare-api/modules/auth/entity"
	"vetcare-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// AuthController handles auth and user HTTP requests.
type AuthController struct {
	controller.BaseController
	AuthService service.AuthServiceInterface
}

func NewAuthController(svc service.AuthServiceInterface) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		AuthService:    svc,
	}
}

func (c *AuthController) claims(ctx echo.Context) (*utils.TokenClaims, *echo.HTTPError) {
	tokenData := ctx.Get(constants.ContextTokenData)
	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok || claims == nil {
		return nil, c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}
	return claims, nil
}

// SignIn handles POST /auth/sign-in
func (c *AuthController) SignIn(ctx echo.Context) error {
	var req dto.SignInRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.AuthService.SignIn(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Signed in")
}

// SignOut handles POST /private/auth/sign-out
func (c *AuthController) SignOut(ctx echo.Context) error {
	claims, httpErr := c.claims(ctx)
	if httpErr != nil {
		return httpErr
	}

	if appErr := c.AuthService.SignOut(ctx.Request().Context(), claims.ID, claims.ExpiresAt.Time); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Signed out")
}

// Me handles GET /private/auth/me
func (c *AuthController) Me(ctx echo.Context) error {
	claims, httpErr := c.claims(ctx)
	if httpErr != nil {
		return httpErr
	}

	result, appErr := c.AuthService.Me(ctx.Request().Context(), claims.UserID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// ListUsers handles GET /private/users (admin only)
func (c *AuthController) ListUsers(ctx echo.Context) error {
	claims, httpErr := c.claims(ctx)
	if httpErr != nil {
		return httpErr
	}

	role, ok := entity.ParseRole(claims.Role)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "Unknown role on token")
	}

	result, appErr := c.AuthService.ListUsers(ctx.Request().Context(), role)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// ListApprovers handles GET /private/users/approvers
func (c *AuthController) ListApprovers(ctx echo.Context) error {
	result, appErr := c.AuthService.ListApprovers(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// Onboarding handles GET /private/auth/onboarding
func (c *AuthController) Onboarding(ctx echo.Context) error {
	claims, httpErr := c.claims(ctx)
	if httpErr != nil {
		return httpErr
	}

	result, appErr := c.AuthService.Onboarding(ctx.Request().Context(), claims.UserID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// SetOnboarding handles PUT /private/auth/onboarding
func (c *AuthController) SetOnboarding(ctx echo.Context) error {
	claims, httpErr := c.claims(ctx)
	if httpErr != nil {
		return httpErr
	}

	var req dto.SetOnboardingRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	if appErr := c.AuthService.SetOnboarding(ctx.Request().Context(), claims.UserID, req.Seen); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, dto.OnboardingResponse{Seen: req.Seen}, "Saved")
}
