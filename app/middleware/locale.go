package middleware

import (
	"strings"

	"github.com/vibast-solutions/ms-go-tasks/app/locale"

	"github.com/labstack/echo/v4"
)

const ContextLangKey = "lang"

// Locale picks the response language from the Accept-Language header,
// falling back to the default when the requested language is not bundled.
func Locale(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		lang := locale.DefaultLocale

		header := c.Request().Header.Get("Accept-Language")
		if header != "" {
			requested := strings.ToLower(strings.TrimSpace(strings.SplitN(header, ",", 2)[0]))
			if idx := strings.IndexAny(requested, "-;"); idx != -1 {
				requested = requested[:idx]
			}
			if locale.Supported(requested) {
				lang = requested
			}
		}

		c.Set(ContextLangKey, lang)
		return next(c)
	}
}

// Lang returns the request language set by Locale, or the default.
func Lang(c echo.Context) string {
	if lang, ok := c.Get(ContextLangKey).(string); ok {
		return lang
	}
	return locale.DefaultLocale
}
