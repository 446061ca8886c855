package form

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func validValues() Values {
	v := InitialValues()
	v[FieldFirstName] = "Alice"
	v[FieldLastName] = "Chen"
	v[FieldEmail] = "alice@example.com"
	v[FieldContact] = "+886 912-345-678"
	v[FieldLicenseName] = "3"
	v[FieldIsPaymentDone] = "true"
	v[FieldLicenseValidity] = "12"
	return v
}

func TestValidateRequiredFields(t *testing.T) {
	s := NewSchema()
	v := InitialValues()
	v[FieldIsPaymentDone] = ""

	_, errs := s.Validate(v)
	require.Equal(t, FieldErrors{
		{Field: FieldFirstName, Message: MsgRequired},
		{Field: FieldLastName, Message: MsgRequired},
		{Field: FieldEmail, Message: MsgRequired},
		{Field: FieldContact, Message: MsgRequired},
		{Field: FieldLicenseName, Message: MsgRequired},
		{Field: FieldIsPaymentDone, Message: MsgRequired},
		{Field: FieldLicenseValidity, Message: MsgRequired},
	}, errs)
}

func TestValidateFalseIsPaymentDoneIsValid(t *testing.T) {
	s := NewSchema()
	v := validValues()
	v[FieldIsPaymentDone] = "false"

	req, errs := s.Validate(v)
	require.Empty(t, errs)
	require.NotNil(t, req.IsPaymentDone)
	require.False(t, *req.IsPaymentDone)
}

func TestValidateEmail(t *testing.T) {
	s := NewSchema()
	v := validValues()
	v[FieldEmail] = "alice.example.com"

	_, errs := s.Validate(v)
	require.Equal(t, map[string]string{FieldEmail: MsgInvalidEmail}, errs.Map())
}

func TestValidateContact(t *testing.T) {
	s := NewSchema()
	for _, ok := range []string{"0912345678", "+886 912 345 678", "(02) 2345-6789", "555-1234", "+1-202-555-0143"} {
		v := validValues()
		v[FieldContact] = ok
		_, errs := s.Validate(v)
		require.Empty(t, errs, ok)
	}
	for _, bad := range []string{"call me", "12", "+886abc", "555-12345-"} {
		v := validValues()
		v[FieldContact] = bad
		_, errs := s.Validate(v)
		require.Equal(t, map[string]string{FieldContact: MsgInvalidPhone}, errs.Map(), bad)
	}
}

func TestValidateLicense(t *testing.T) {
	s := NewSchema()

	v := validValues()
	v[FieldLicenseName] = "6"
	_, errs := s.Validate(v)
	require.Equal(t, "must be one of 1, 2, 3, 4, 5", errs.Map()[FieldLicenseName])

	for _, given := range []string{"0", " 0", "-1"} {
		v = validValues()
		v[FieldLicenseName] = given
		_, errs = s.Validate(v)
		require.Equal(t, FieldErrors{{Field: FieldLicenseName, Message: "must be one of 1, 2, 3, 4, 5"}}, errs, given)
	}

	v = validValues()
	v[FieldLicenseName] = ""
	_, errs = s.Validate(v)
	require.Equal(t, MsgRequired, errs.Map()[FieldLicenseName])

	v = validValues()
	v[FieldLicenseName] = "gold"
	_, errs = s.Validate(v)
	require.Equal(t, "must be one of 1, 2, 3, 4, 5", errs.Map()[FieldLicenseName])
	require.Len(t, errs, 1)

	v = validValues()
	v[FieldLicenseValidity] = "twelve"
	_, errs = s.Validate(v)
	require.Equal(t, map[string]string{FieldLicenseValidity: MsgNotNumber}, errs.Map())

	v = validValues()
	v[FieldLicenseValidity] = "NaN"
	_, errs = s.Validate(v)
	require.Equal(t, map[string]string{FieldLicenseValidity: MsgNotNumber}, errs.Map())
}

func TestValidateBuildsRequest(t *testing.T) {
	s := NewSchema()
	v := validValues()
	v[FieldSignupType] = "individual"
	v[FieldAdmin] = "1"

	req, errs := s.Validate(v)
	require.Empty(t, errs)
	require.Equal(t, "Alice", req.FirstName)
	require.Equal(t, 3, req.LicenseName)
	require.True(t, *req.IsPaymentDone)
	require.Equal(t, 12.0, *req.LicenseValidity)
	require.Equal(t, "individual", req.SignupType)
	require.Equal(t, "1", req.Admin)
	require.Empty(t, req.OrganisationalAdmin)
}

func TestStructReturnsFieldErrors(t *testing.T) {
	s := NewSchema()
	type login struct {
		Email string `json:"email" validate:"required,email"`
	}
	require.NoError(t, s.Struct(&login{Email: "a@b.com"}))

	err := s.Struct(&login{Email: "nope"})
	var fe FieldErrors
	require.ErrorAs(t, err, &fe)
	require.Equal(t, FieldErrors{{Field: "email", Message: MsgInvalidEmail}}, fe)
	require.Equal(t, "email: invalid email", err.Error())
}

func TestValuesFromForm(t *testing.T) {
	form := url.Values{}
	form.Set(FieldFirstName, "Bob")
	form.Set("unknown", "x")
	form.Set(FieldIsPaymentDone, "true")

	v := ValuesFromForm(form)
	require.Equal(t, "Bob", v[FieldFirstName])
	require.Equal(t, "true", v[FieldIsPaymentDone])
	require.NotContains(t, v, "unknown")
	require.Equal(t, "", v[FieldEmail])
}

func TestSpanAt(t *testing.T) {
	first, ok := Lookup(FieldFirstName)
	require.True(t, ok)
	require.Equal(t, 2, first.SpanAt(MobileBreakpoint))
	require.Equal(t, 2, first.SpanAt(1024))
	require.Equal(t, Columns, first.SpanAt(MobileBreakpoint-1))

	for _, f := range Layout {
		require.Equal(t, Columns, f.SpanAt(320), f.Name)
	}

	_, ok = Lookup("nope")
	require.False(t, ok)
}
