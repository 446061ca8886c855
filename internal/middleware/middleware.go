package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"admin-console/internal/service"

	"github.com/labstack/echo/v4"
)

const (
	ContextAdminKey = "admin"
	// TokenCookie carries the access token for browser sessions.
	TokenCookie = "access_token"
	LoginPath   = "/admin/login"
)

func extractClaims(c echo.Context) (*service.CustomClaims, error) {
	tokenString := ""
	if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
		}
		tokenString = parts[1]
	} else if cookie, err := c.Cookie(TokenCookie); err == nil {
		tokenString = cookie.Value
	}
	if tokenString == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	claims, err := service.VerifyAccessToken(tokenString)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
	}
	return claims, nil
}

// RequireAdmin rejects API calls without a valid admin token.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := extractClaims(c)
		if err != nil {
			return err
		}
		c.Set(ContextAdminKey, claims)
		return next(c)
	}
}

// RequireAdminPage sends browsers without a valid token to the login page.
func RequireAdminPage(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := extractClaims(c)
		if err != nil {
			return c.Redirect(http.StatusSeeOther, LoginPath)
		}
		c.Set(ContextAdminKey, claims)
		return next(c)
	}
}

// AdminClaims returns the claims stored by RequireAdmin or RequireAdminPage.
func AdminClaims(c echo.Context) (*service.CustomClaims, bool) {
	claims, ok := c.Get(ContextAdminKey).(*service.CustomClaims)
	return claims, ok && claims != nil
}
