package controller

import (
	"errors"
	"net/http"

	dtohttp "github.com/vibast-solutions/ms-go-tasks/app/dto/http"
	"github.com/vibast-solutions/ms-go-tasks/app/middleware"
	"github.com/vibast-solutions/ms-go-tasks/app/service"

	"github.com/labstack/echo/v4"
)

type UserController struct {
	userService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{userService: userService}
}

func (c *UserController) Me(ctx echo.Context) error {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		return message(ctx, http.StatusUnauthorized, "unauthorized")
	}

	user, err := c.userService.One(ctx.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return userNotFound(ctx)
		}
		return internalError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dtohttp.NewUserResponse(user))
}

func (c *UserController) All(ctx echo.Context) error {
	users, err := c.userService.All(ctx.Request().Context())
	if err != nil {
		return internalError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, dtohttp.NewUserListResponse(users))
}

func (c *UserController) One(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return userNotFound(ctx)
	}

	user, err := c.userService.One(ctx.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return userNotFound(ctx)
		}
		return internalError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dtohttp.NewUserResponse(user))
}

func (c *UserController) Update(ctx echo.Context) error {
	var req dtohttp.UpdateUserRequest
	if err := ctx.Bind(&req); err != nil {
		return validationFailed(ctx)
	}
	if err := ctx.Validate(&req); err != nil {
		return validationFailed(ctx)
	}

	userID, ok := middleware.UserID(ctx)
	if !ok {
		return message(ctx, http.StatusUnauthorized, "unauthorized")
	}

	user, err := c.userService.Update(ctx.Request().Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return userNotFound(ctx)
		}
		return internalError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dtohttp.NewUserResponse(user))
}

func (c *UserController) UpdatePassword(ctx echo.Context) error {
	var req dtohttp.UpdatePasswordRequest
	if err := ctx.Bind(&req); err != nil {
		return validationFailed(ctx)
	}
	if err := ctx.Validate(&req); err != nil {
		return validationFailed(ctx)
	}

	userID, ok := middleware.UserID(ctx)
	if !ok {
		return message(ctx, http.StatusUnauthorized, "unauthorized")
	}

	err := c.userService.UpdatePassword(ctx.Request().Context(), userID, req.OldPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return userNotFound(ctx)
		}
		if errors.Is(err, service.ErrPasswordMismatch) {
			return message(ctx, http.StatusBadRequest, "password.mismatch")
		}
		return internalError(ctx, err)
	}

	return message(ctx, http.StatusOK, "password.updated")
}

func (c *UserController) Destroy(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return userNotFound(ctx)
	}

	err = c.userService.Destroy(ctx.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return userNotFound(ctx)
		}
		return internalError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, dtohttp.MessageResponse{
		Message: transWith(ctx, "model.deleted", map[string]string{"model": "user"}),
	})
}

func userNotFound(ctx echo.Context) error {
	return ctx.JSON(http.StatusNotFound, dtohttp.MessageResponse{
		Message: transWith(ctx, "model.not.found", map[string]string{"model": "user"}),
	})
}
