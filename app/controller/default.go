package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type DefaultController struct{}

func NewDefaultController() *DefaultController {
	return &DefaultController{}
}

func (c *DefaultController) Home(ctx echo.Context) error {
	return message(ctx, http.StatusOK, "welcome")
}

func (c *DefaultController) Documentation(ctx echo.Context) error {
	return message(ctx, http.StatusOK, "documentation")
}
