package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"admin-console/internal/cache"
	"admin-console/internal/database"
	"admin-console/internal/form"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, Deps{DB: &database.FakeDB{}, Cache: &cache.FakeCache{}, Schema: form.NewSchema()})

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /admin/login",
		http.MethodPost + " /admin/login",
		http.MethodGet + " /admin/users/new",
		http.MethodPost + " /admin/users/new",
		http.MethodPost + " /admin/users/new/events",
		http.MethodGet + " /api/ping",
		http.MethodPost + " /api/auth/login",
		http.MethodPost + " /api/admin/users",
		http.MethodGet + " /api/admin/users/attempts",
	}

	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

func TestProtectedRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, Deps{DB: &database.FakeDB{}, Cache: &cache.FakeCache{}, Schema: form.NewSchema()})

	req := httptest.NewRequest(http.MethodGet, "/admin/users/new", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/admin/login", rec.Header().Get(echo.HeaderLocation))

	req = httptest.NewRequest(http.MethodGet, "/api/admin/users/attempts", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
