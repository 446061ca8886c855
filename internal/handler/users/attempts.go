package users

import (
	"net/http"
	"strconv"

	"admin-console/internal/api"
	"admin-console/internal/database"
	"admin-console/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	defaultAttemptLimit = 20
	maxAttemptLimit     = 100
)

var listSubmissionAttempts = store.ListSubmissionAttempts

// ListAttemptsHandler 列出最近的送出紀錄
// @Summary     List submission attempts
// @Description 依建立時間由新到舊列出送出紀錄，limit 預設 20，最多 100
// @Tags        users
// @Produce     json
// @Param       limit query int false "筆數"
// @Success     200 {array}  api.SubmissionAttemptResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/users/attempts [get]
func ListAttemptsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit := defaultAttemptLimit
		if raw := c.QueryParam("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid limit"})
			}
			limit = min(n, maxAttemptLimit)
		}

		attempts, err := listSubmissionAttempts(c.Request().Context(), db, limit)
		if err != nil {
			c.Logger().Errorf("list attempts: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list attempts"})
		}

		resp := make([]api.SubmissionAttemptResponse, 0, len(attempts))
		for _, a := range attempts {
			resp = append(resp, api.SubmissionAttemptResponse{
				ID:        a.ID,
				AdminID:   a.AdminID,
				FormID:    a.FormID,
				Email:     a.Email,
				Outcome:   a.Outcome,
				Message:   a.Message,
				CreatedAt: a.CreatedAt,
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}
