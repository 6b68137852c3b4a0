package controller

import (
	"errors"
	"net/http"

	dtohttp "github.com/vibast-solutions/ms-go-tasks/app/dto/http"
	"github.com/vibast-solutions/ms-go-tasks/app/middleware"
	"github.com/vibast-solutions/ms-go-tasks/app/service"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

func (c *AuthController) Register(ctx echo.Context) error {
	var req dtohttp.RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return validationFailed(ctx)
	}
	if err := ctx.Validate(&req); err != nil {
		return validationFailed(ctx)
	}

	err := c.authService.Register(ctx.Request().Context(),
		req.Name, req.Username, req.Email, req.Password, req.Gender, middleware.Lang(ctx))
	if err != nil {
		return internalError(ctx, err)
	}

	return message(ctx, http.StatusOK, "register.success")
}

func (c *AuthController) Login(ctx echo.Context) error {
	var req dtohttp.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return validationFailed(ctx)
	}
	if err := ctx.Validate(&req); err != nil {
		return validationFailed(ctx)
	}

	result, err := c.authService.Login(ctx.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return message(ctx, http.StatusUnauthorized, "login.failed")
		}
		if errors.Is(err, service.ErrAccountNotConfirmed) {
			return message(ctx, http.StatusUnauthorized, "account.unconfirmed")
		}
		return internalError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dtohttp.LoginResponse{
		Token:        result.AccessToken,
		ExpiresIn:    result.ExpiresIn,
		RefreshToken: result.RefreshToken,
	})
}

func (c *AuthController) ConfirmAccount(ctx echo.Context) error {
	var req dtohttp.ConfirmAccountRequest
	if err := ctx.Bind(&req); err != nil {
		return validationFailed(ctx)
	}
	if err := ctx.Validate(&req); err != nil {
		return validationFailed(ctx)
	}

	err := c.authService.ConfirmAccount(ctx.Request().Context(), req.Token)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			return message(ctx, http.StatusBadRequest, "bad.token")
		}
		return internalError(ctx, err)
	}

	return message(ctx, http.StatusOK, "account.confirmed")
}

func (c *AuthController) ForgotPassword(ctx echo.Context) error {
	var req dtohttp.ForgotPasswordRequest
	if err := ctx.Bind(&req); err != nil {
		return validationFailed(ctx)
	}
	if err := ctx.Validate(&req); err != nil {
		return validationFailed(ctx)
	}

	err := c.authService.ForgotPassword(ctx.Request().Context(), req.Email, middleware.Lang(ctx))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return message(ctx, http.StatusNotFound, "no.user")
		}
		return internalError(ctx, err)
	}

	return message(ctx, http.StatusOK, "email.success")
}

func (c *AuthController) ResetPassword(ctx echo.Context) error {
	var req dtohttp.ResetPasswordRequest
	if err := ctx.Bind(&req); err != nil {
		return validationFailed(ctx)
	}
	if err := ctx.Validate(&req); err != nil {
		return validationFailed(ctx)
	}

	err := c.authService.ResetPassword(ctx.Request().Context(), req.ResetToken, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return message(ctx, http.StatusBadRequest, "token.expired")
		}
		if errors.Is(err, service.ErrInvalidToken) {
			return message(ctx, http.StatusBadRequest, "bad.token")
		}
		return internalError(ctx, err)
	}

	return message(ctx, http.StatusOK, "password.reset")
}

func (c *AuthController) RefreshToken(ctx echo.Context) error {
	var req dtohttp.RefreshTokenRequest
	if err := ctx.Bind(&req); err != nil {
		return validationFailed(ctx)
	}
	if err := ctx.Validate(&req); err != nil {
		return validationFailed(ctx)
	}

	newToken, err := c.authService.RefreshToken(ctx.Request().Context(), req.UID, req.Token)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return message(ctx, http.StatusBadRequest, "token.expired")
		}
		if errors.Is(err, service.ErrInvalidToken) {
			return message(ctx, http.StatusBadRequest, "auth.token.failed")
		}
		return internalError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dtohttp.RefreshTokenResponse{Token: newToken})
}
