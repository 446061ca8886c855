// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"admin-console/internal/cache"
	"admin-console/internal/database"
	"admin-console/internal/form"
	"admin-console/internal/handler"
	"admin-console/internal/handler/auth"
	"admin-console/internal/handler/users"
	"admin-console/internal/middleware"
)

// Deps 路由所需的依賴
type Deps struct {
	DB        database.DB
	Cache     cache.Cache
	Schema    *form.Schema
	Submitter users.Submitter
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	// 管理頁面
	e.GET(middleware.LoginPath, auth.LoginPageHandler())
	e.POST(middleware.LoginPath, auth.LoginFormHandler(d.DB))

	page := e.Group(users.FormPath, middleware.RequireAdminPage)
	page.GET("", users.NewUserFormHandler())
	page.POST("", users.SubmitUserFormHandler(d.Schema, d.Submitter))
	page.POST("/events", users.FormEventsHandler(d.Schema))

	api := e.Group("/api")

	// 健康檢查（需登入）
	api.GET("/ping", handler.PingHandler(d.DB, d.Cache), middleware.RequireAdmin)

	// 管理員登入
	api.POST("/auth/login", auth.LoginHandler(d.DB))

	// 管理員專屬 Users
	apiUsers := api.Group("/admin/users", middleware.RequireAdmin)
	apiUsers.POST("", users.CreateUserHandler(d.Submitter))
	apiUsers.GET("/attempts", users.ListAttemptsHandler(d.DB))
}
