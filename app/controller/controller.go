// Package controller holds the echo handlers. Controllers bind and
// validate the request body, call one service operation and translate the
// outcome; no business logic lives here.
package controller

import (
	"net/http"

	dtohttp "github.com/vibast-solutions/ms-go-tasks/app/dto/http"
	"github.com/vibast-solutions/ms-go-tasks/app/locale"
	"github.com/vibast-solutions/ms-go-tasks/app/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// Validator adapts go-playground/validator to echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func trans(c echo.Context, key string) string {
	return locale.Trans(middleware.Lang(c), key)
}

func transWith(c echo.Context, key string, params map[string]string) string {
	return locale.TransWith(middleware.Lang(c), key, params)
}

func message(c echo.Context, status int, key string) error {
	return c.JSON(status, dtohttp.MessageResponse{Message: trans(c, key)})
}

func validationFailed(c echo.Context) error {
	return message(c, http.StatusUnprocessableEntity, "validation.failed")
}

func internalError(c echo.Context, err error) error {
	logrus.WithError(err).Error("request failed")
	return message(c, http.StatusInternalServerError, "internal.error")
}
