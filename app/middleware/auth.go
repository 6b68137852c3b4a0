package middleware

import (
	"net/http"
	"strings"

	"github.com/vibast-solutions/ms-go-tasks/app/locale"
	"github.com/vibast-solutions/ms-go-tasks/app/token"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const (
	// AccessTokenHeader carries the access token on every protected route.
	AccessTokenHeader = "x-access-token"
	// ContextUserIDKey holds the authenticated user id in the echo context.
	ContextUserIDKey = "user_id"
)

// allowedRoutes are reachable without a token. Entries under the API base
// appear with the base prefix stripped.
var allowedRoutes = []string{
	"/",
	"/api/documentation",
	"/metrics",
	"/ws",
	"auth/login",
	"auth/register",
	"auth/account/confirm",
	"auth/password/forgot",
	"auth/password/reset",
	"token/refresh",
}

type accessTokenValidator interface {
	ValidateAccessToken(tokenString string) (*token.Claims, error)
}

type AuthMiddleware struct {
	authService accessTokenValidator
	apiBase     string
}

func NewAuthMiddleware(authService accessTokenValidator, apiBase string) *AuthMiddleware {
	return &AuthMiddleware{authService: authService, apiBase: apiBase}
}

// Authenticate gates every request: public routes pass through untouched,
// anything else needs a valid access token with a user id claim. All
// failures yield the same generic 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		routeName := strings.Replace(c.Request().URL.Path, m.apiBase, "", 1)
		for _, allowed := range allowedRoutes {
			if routeName == allowed {
				return next(c)
			}
		}

		tokenString := c.Request().Header.Get(AccessTokenHeader)
		if tokenString == "" {
			return unauthorized(c)
		}

		claims, err := m.authService.ValidateAccessToken(tokenString)
		if err != nil {
			logrus.WithError(err).Debug("access token rejected")
			return unauthorized(c)
		}

		if claims.UserID == 0 {
			return unauthorized(c)
		}

		c.Set(ContextUserIDKey, claims.UserID)
		return next(c)
	}
}

// UserID returns the authenticated user id set by Authenticate.
func UserID(c echo.Context) (uint64, bool) {
	id, ok := c.Get(ContextUserIDKey).(uint64)
	return id, ok
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{
		"message": locale.Trans(Lang(c), "unauthorized"),
	})
}
