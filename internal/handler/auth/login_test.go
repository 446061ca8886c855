package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"admin-console/internal/database"
	"admin-console/internal/middleware"
	"admin-console/internal/model"
	"admin-console/internal/view"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newLoginCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type errBinder struct{}

func (errBinder) Bind(i any, c echo.Context) error { return errors.New("bind") }

type errValidator struct{}

func (errValidator) Validate(i any) error { return errors.New("v") }

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }

func newEcho(t *testing.T) *echo.Echo {
	e := echo.New()
	e.Validator = okValidator{}
	r, err := view.NewRenderer()
	require.NoError(t, err)
	e.Renderer = r
	return e
}

// stubLogin swaps the lookup and token seams for the duration of a test.
func stubLogin(t *testing.T, lookupErr, authErr, tokenErr error) *string {
	origGet, origAuth, origIssue := getAdminByEmail, authenticateAdmin, issueAccessToken
	t.Cleanup(func() {
		getAdminByEmail, authenticateAdmin, issueAccessToken = origGet, origAuth, origIssue
	})

	var seenEmail string
	getAdminByEmail = func(ctx context.Context, db database.DB, email string) (*model.Admin, error) {
		seenEmail = email
		if lookupErr != nil {
			return nil, lookupErr
		}
		return &model.Admin{ID: 7, Email: email, CreatedAt: time.Now()}, nil
	}
	authenticateAdmin = func(a model.Admin, password string) (*model.Admin, error) {
		if authErr != nil {
			return nil, authErr
		}
		return &a, nil
	}
	issueAccessToken = func(a model.Admin, ttl time.Duration) (string, error) {
		if tokenErr != nil {
			return "", tokenErr
		}
		return "tok", nil
	}
	return &seenEmail
}

func tokenCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.TokenCookie {
			return c
		}
	}
	return nil
}

func TestLoginHandler(t *testing.T) {
	body := "email=Admin@Example.com&password=secret"

	t.Run("bind error", func(t *testing.T) {
		e := newEcho(t)
		e.Binder = errBinder{}
		ctx, rec := newLoginCtx(e, "")
		require.NoError(t, LoginHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		e := newEcho(t)
		e.Validator = errValidator{}
		ctx, rec := newLoginCtx(e, body)
		require.NoError(t, LoginHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("admin not found", func(t *testing.T) {
		stubLogin(t, errors.New("no rows"), nil, nil)
		ctx, rec := newLoginCtx(newEcho(t), body)
		require.NoError(t, LoginHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid credentials")
	})

	t.Run("wrong password", func(t *testing.T) {
		stubLogin(t, nil, errors.New("mismatch"), nil)
		ctx, rec := newLoginCtx(newEcho(t), body)
		require.NoError(t, LoginHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token error", func(t *testing.T) {
		stubLogin(t, nil, nil, errors.New("no secret"))
		ctx, rec := newLoginCtx(newEcho(t), body)
		require.NoError(t, LoginHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		seen := stubLogin(t, nil, nil, nil)
		ctx, rec := newLoginCtx(newEcho(t), body)
		require.NoError(t, LoginHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "admin@example.com", *seen)
		require.JSONEq(t, `{"access_token":"tok","expires_in":86400}`, rec.Body.String())
		ck := tokenCookie(rec)
		require.NotNil(t, ck)
		require.Equal(t, "tok", ck.Value)
		require.True(t, ck.HttpOnly)
	})
}

func TestLoginPageHandler(t *testing.T) {
	e := newEcho(t)
	req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, LoginPageHandler()(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `action="/admin/login"`)
}

func TestLoginFormHandler(t *testing.T) {
	body := "email=admin@example.com&password=secret"

	t.Run("bind error", func(t *testing.T) {
		e := newEcho(t)
		e.Binder = errBinder{}
		ctx, rec := newLoginCtx(e, "")
		require.NoError(t, LoginFormHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid form data")
	})

	t.Run("validate error", func(t *testing.T) {
		e := newEcho(t)
		e.Validator = errValidator{}
		ctx, rec := newLoginCtx(e, body)
		require.NoError(t, LoginFormHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad credentials", func(t *testing.T) {
		stubLogin(t, nil, errors.New("mismatch"), nil)
		ctx, rec := newLoginCtx(newEcho(t), body)
		require.NoError(t, LoginFormHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid credentials")
		require.Contains(t, rec.Body.String(), "admin@example.com")
		require.Nil(t, tokenCookie(rec))
	})

	t.Run("token error", func(t *testing.T) {
		stubLogin(t, nil, nil, errors.New("no secret"))
		ctx, rec := newLoginCtx(newEcho(t), body)
		require.NoError(t, LoginFormHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		stubLogin(t, nil, nil, nil)
		ctx, rec := newLoginCtx(newEcho(t), body)
		require.NoError(t, LoginFormHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Equal(t, FormPath, rec.Header().Get(echo.HeaderLocation))
		require.NotNil(t, tokenCookie(rec))
	})
}
