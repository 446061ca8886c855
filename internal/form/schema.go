package form

import (
	"errors"
	"math"
	"net/url"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"admin-console/internal/api"

	"github.com/go-playground/validator/v10"
)

const (
	MsgRequired     = "required"
	MsgInvalidEmail = "invalid email"
	MsgInvalidPhone = "Phone number is not valid"
	MsgNotNumber    = "must be a number"
	MsgNotBoolean   = "must be true or false"
)

var phonePattern = regexp.MustCompile(`^((\+[1-9]{1,4}[ -]?)|(\([0-9]{2,3}\)[ -]?)|([0-9]{2,4})[ -]?)*?[0-9]{3,4}[ -]?[0-9]{3,4}$`)

// FieldError pairs a field name with its validation message.
type FieldError struct {
	Field   string
	Message string
}

// FieldErrors is ordered by Layout.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, e := range fe {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return strings.Join(parts, "; ")
}

// Map returns field -> message. It is never nil.
func (fe FieldErrors) Map() map[string]string {
	m := make(map[string]string, len(fe))
	for _, e := range fe {
		if _, ok := m[e.Field]; !ok {
			m[e.Field] = e.Message
		}
	}
	return m
}

func (fe FieldErrors) API() []api.FieldError {
	out := make([]api.FieldError, 0, len(fe))
	for _, e := range fe {
		out = append(out, api.FieldError{Field: e.Field, Message: e.Message})
	}
	return out
}

// Values holds the raw contents of every input, keyed by field name.
type Values map[string]string

// InitialValues returns the values a fresh form starts with.
func InitialValues() Values {
	return Values{
		FieldFirstName:       "",
		FieldLastName:        "",
		FieldEmail:           "",
		FieldContact:         "",
		FieldLicenseName:     "",
		FieldIsPaymentDone:   "false",
		FieldLicenseValidity: "",
	}
}

// ValuesFromForm keeps only the known fields of a posted form.
func ValuesFromForm(form url.Values) Values {
	v := InitialValues()
	for _, f := range Layout {
		if form.Has(f.Name) {
			v[f.Name] = form.Get(f.Name)
		}
	}
	return v
}

func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Schema validates user creation requests. It is safe for concurrent use.
type Schema struct {
	validate *validator.Validate
}

func NewSchema() *Schema {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return &Schema{validate: v}
}

// Struct validates any tagged struct. Failures are returned as FieldErrors.
func (s *Schema) Struct(i any) error {
	err := s.validate.Struct(i)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	out := make(FieldErrors, 0, len(ve))
	for _, fe := range ve {
		out = append(out, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	sortByLayout(out)
	return out
}

// Validate converts raw values into a request and checks it. The request is
// only meaningful when the returned FieldErrors is empty.
func (s *Schema) Validate(values Values) (api.CreateUserRequest, FieldErrors) {
	req := api.CreateUserRequest{
		FirstName:           values[FieldFirstName],
		LastName:            values[FieldLastName],
		Email:               values[FieldEmail],
		Contact:             values[FieldContact],
		Admin:               values[FieldAdmin],
		OrganisationalAdmin: values[FieldOrganisationalAdmin],
		SignupType:          values[FieldSignupType],
	}

	var errs FieldErrors
	if raw := values[FieldLicenseName]; raw != "" {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		// 0 would otherwise read as "required" although a value was given
		if err != nil || n == 0 {
			errs = append(errs, FieldError{Field: FieldLicenseName, Message: oneOfMessage("1 2 3 4 5")})
		} else {
			req.LicenseName = n
		}
	}
	if raw := values[FieldIsPaymentDone]; raw != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			errs = append(errs, FieldError{Field: FieldIsPaymentDone, Message: MsgNotBoolean})
		} else {
			req.IsPaymentDone = &b
		}
	}
	if raw := strings.TrimSpace(values[FieldLicenseValidity]); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			errs = append(errs, FieldError{Field: FieldLicenseValidity, Message: MsgNotNumber})
		} else {
			req.LicenseValidity = &f
		}
	}

	if err := s.Struct(&req); err != nil {
		var fe FieldErrors
		if !errors.As(err, &fe) {
			errs = append(errs, FieldError{Message: err.Error()})
		}
		seen := errs.Map()
		for _, e := range fe {
			if _, dup := seen[e.Field]; !dup {
				errs = append(errs, e)
			}
		}
	}
	sortByLayout(errs)
	return req, errs
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgRequired
	case "email":
		return MsgInvalidEmail
	case "phone":
		return MsgInvalidPhone
	case "oneof":
		return oneOfMessage(fe.Param())
	default:
		return "invalid value"
	}
}

func oneOfMessage(param string) string {
	return "must be one of " + strings.Join(strings.Fields(param), ", ")
}

func sortByLayout(errs FieldErrors) {
	sort.SliceStable(errs, func(i, j int) bool {
		return layoutIndex(errs[i].Field) < layoutIndex(errs[j].Field)
	})
}
