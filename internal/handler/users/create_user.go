// File: internal/handler/users/create_user.go
package users

import (
	"errors"
	"net/http"

	"admin-console/internal/api"
	"admin-console/internal/form"
	"admin-console/internal/middleware"
	"admin-console/internal/model"
	"admin-console/internal/service"

	"github.com/labstack/echo/v4"
)

// IdempotencyHeader lets API callers reuse one in-flight guard across retries.
const IdempotencyHeader = "Idempotency-Key"

// CreateUserHandler 建立新使用者
// @Summary     Create a new user
// @Description 驗證使用者資料後轉送至使用者服務；同一個 Idempotency-Key 同時只允許一筆送出
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key header string false "表單識別碼"
// @Param       body body api.CreateUserRequest true "使用者資料"
// @Success     201 {object} api.CreateUserResponse
// @Failure     400 {object} api.ValidationErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     422 {object} api.ErrorResponse
// @Failure     502 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/users [post]
func CreateUserHandler(sub Submitter) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			var fe form.FieldErrors
			if errors.As(err, &fe) {
				return c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{
					Message: "validation failed",
					Errors:  fe.API(),
				})
			}
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		formID := c.Request().Header.Get(IdempotencyHeader)
		if formID == "" {
			formID = newFormID()
		}
		adminID := 0
		if claims, ok := middleware.AdminClaims(c); ok {
			adminID = claims.AdminID
		}

		out := sub.Submit(c.Request().Context(), formID, adminID, req)
		switch out.Status {
		case model.OutcomeCreated:
			return c.JSON(http.StatusCreated, api.CreateUserResponse{Message: out.Message, Data: out.Data})
		case service.StatusBusy:
			return c.JSON(http.StatusConflict, api.ErrorResponse{Message: out.Message})
		case model.OutcomeRejected:
			return c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Message: out.Message})
		default:
			return c.JSON(http.StatusBadGateway, api.ErrorResponse{Message: out.Message})
		}
	}
}
