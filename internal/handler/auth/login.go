package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"admin-console/internal/api"
	"admin-console/internal/database"
	"admin-console/internal/middleware"
	"admin-console/internal/service"
	"admin-console/internal/store"
	"admin-console/internal/view"

	"github.com/labstack/echo/v4"
)

const tokenTTL = 24 * time.Hour

// FormPath is where a signed-in admin lands.
const FormPath = "/admin/users/new"

var (
	getAdminByEmail   = store.GetAdminByEmail
	authenticateAdmin = service.AuthenticateAdmin
	issueAccessToken  = service.IssueAccessToken
)

var errCredentials = errors.New("invalid credentials")

func login(c echo.Context, db database.DB, req api.LoginRequest) (string, error) {
	admin, err := getAdminByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
	if err != nil {
		c.Logger().Warnf("login %s: %v", req.Email, err)
		return "", errCredentials
	}
	authed, err := authenticateAdmin(*admin, req.Password)
	if err != nil {
		return "", errCredentials
	}
	return issueAccessToken(*authed, tokenTTL)
}

func setTokenCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(tokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// @Summary     Admin login
// @Description 使用 Email 與密碼登入，回傳存取令牌並寫入 cookie
// @Tags        auth
// @Accept      json,application/x-www-form-urlencoded
// @Produce     json
// @Param       body body api.LoginRequest true "登入資料"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		token, err := login(c, db, req)
		if errors.Is(err, errCredentials) {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: err.Error()})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		setTokenCookie(c, token)
		return c.JSON(http.StatusOK, api.LoginResponse{AccessToken: token, ExpiresIn: int(tokenTTL.Seconds())})
	}
}

func LoginPageHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, view.LoginTemplate, view.LoginPage{})
	}
}

// LoginFormHandler signs in from the HTML login page and redirects to the form.
func LoginFormHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.Render(http.StatusBadRequest, view.LoginTemplate, view.LoginPage{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.Render(http.StatusBadRequest, view.LoginTemplate, view.LoginPage{Email: req.Email, Message: err.Error()})
		}

		token, err := login(c, db, req)
		if errors.Is(err, errCredentials) {
			return c.Render(http.StatusUnauthorized, view.LoginTemplate, view.LoginPage{Email: req.Email, Message: err.Error()})
		}
		if err != nil {
			c.Logger().Errorf("issue token: %v", err)
			return c.Render(http.StatusInternalServerError, view.LoginTemplate, view.LoginPage{Email: req.Email, Message: "failed to sign in"})
		}

		setTokenCookie(c, token)
		return c.Redirect(http.StatusSeeOther, FormPath)
	}
}
