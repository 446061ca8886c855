// File: internal/handler/users/form.go
package users

import (
	"net/http"

	"admin-console/internal/api"
	"admin-console/internal/form"
	"admin-console/internal/middleware"
	"admin-console/internal/service"
	"admin-console/internal/view"

	"github.com/labstack/echo/v4"
)

const (
	FormPath    = "/admin/users/new"
	createdFlag = "created"
)

// FormEventRequest 表單欄位事件 (change / blur)
type FormEventRequest struct {
	State form.State `json:"state"`
	Event form.Event `json:"event"`
}

// FormEventResponse 事件處理後的表單狀態
type FormEventResponse struct {
	State         form.State        `json:"state"`
	VisibleErrors map[string]string `json:"visibleErrors"`
}

func renderForm(c echo.Context, status int, st form.State) error {
	return c.Render(status, view.FormTemplate, view.NewFormPage(st, FormPath))
}

// NewUserFormHandler 顯示建立使用者表單
func NewUserFormHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		st := form.NewState(newFormID())
		if c.QueryParam(createdFlag) == "1" {
			st.Notice = service.MsgCreated
		}
		return renderForm(c, http.StatusOK, st)
	}
}

// SubmitUserFormHandler 處理表單送出
//
// 驗證失敗時重新顯示表單 (422)；成功時以 303 導回空白表單。
func SubmitUserFormHandler(schema *form.Schema, sub Submitter) echo.HandlerFunc {
	return func(c echo.Context) error {
		params, err := c.FormParams()
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}

		formID := params.Get("formId")
		if formID == "" {
			formID = newFormID()
		}
		st := form.NewState(formID)
		st.Values = form.ValuesFromForm(params)
		// the last server message stays until a new result replaces it
		st.Message = params.Get("message")

		st, req := schema.Reduce(st, form.Event{Type: form.EventSubmit})
		if req == nil {
			return renderForm(c, http.StatusUnprocessableEntity, st)
		}

		adminID := 0
		if claims, ok := middleware.AdminClaims(c); ok {
			adminID = claims.AdminID
		}
		out := sub.Submit(c.Request().Context(), formID, adminID, *req)
		st, _ = schema.Reduce(st, form.Event{
			Type:   form.EventResult,
			Result: &form.Result{OK: out.OK(), Message: out.Message},
		})

		if out.OK() {
			return c.Redirect(http.StatusSeeOther, FormPath+"?"+createdFlag+"=1")
		}
		status := http.StatusUnprocessableEntity
		if out.Status == service.StatusBusy {
			status = http.StatusConflict
		}
		return renderForm(c, status, st)
	}
}

// FormEventsHandler 將 change / blur 事件套用到表單狀態，
// 回傳新狀態與應顯示的錯誤 (只有 touched 欄位會顯示)
func FormEventsHandler(schema *form.Schema) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req FormEventRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if req.Event.Type != form.EventChange && req.Event.Type != form.EventBlur {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "unsupported event"})
		}
		if req.State.Values == nil {
			req.State = form.NewState(req.State.FormID)
		}
		// submitting is owned by the server
		req.State.Submitting = false

		st, _ := schema.Reduce(req.State, req.Event)
		return c.JSON(http.StatusOK, FormEventResponse{State: st, VisibleErrors: st.VisibleErrors()})
	}
}
