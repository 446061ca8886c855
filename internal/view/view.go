package view

import (
	"embed"
	"html/template"
	"io"

	"admin-console/internal/form"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	FormTemplate  = "form.html"
	LoginTemplate = "login.html"
)

// Renderer implements echo.Renderer with the embedded page templates.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.New("").ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// Head is what the shared page header needs.
type Head struct {
	Title      string
	Breakpoint int
}

type FieldView struct {
	form.FieldSpec
	Value string
	Error string
}

// Placeholder reports whether a select should offer an empty choice.
func (f FieldView) Placeholder() bool {
	return f.Kind == form.KindSelect && f.Name != form.FieldIsPaymentDone
}

type FormPage struct {
	Title       string
	Subtitle    string
	Action      string
	EventsURL   string
	Breakpoint  int
	Fields      []FieldView
	State       form.State
	Message     string
	Notice      string
	SubmitLabel string
}

// NewFormPage builds the view of a form state. Only touched fields show
// their error.
func NewFormPage(st form.State, action string) FormPage {
	visible := st.VisibleErrors()
	fields := make([]FieldView, 0, len(form.Layout))
	for _, spec := range form.Layout {
		fields = append(fields, FieldView{
			FieldSpec: spec,
			Value:     st.Values[spec.Name],
			Error:     visible[spec.Name],
		})
	}
	return FormPage{
		Title:       "CREATE USER",
		Subtitle:    "Create a New User Profile",
		Action:      action,
		EventsURL:   action + "/events",
		Breakpoint:  form.MobileBreakpoint,
		Fields:      fields,
		State:       st,
		Message:     st.Message,
		Notice:      st.Notice,
		SubmitLabel: "Create New User",
	}
}

func (p FormPage) Head() Head {
	return Head{Title: p.Title, Breakpoint: p.Breakpoint}
}

type LoginPage struct {
	Email   string
	Message string
}

func (LoginPage) Head() Head {
	return Head{Title: "Sign in", Breakpoint: form.MobileBreakpoint}
}
