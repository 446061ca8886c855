package form

// Columns is the number of grid columns the form is laid out on.
const Columns = 4

// MobileBreakpoint is the viewport width (px) below which every field spans
// the full row.
const MobileBreakpoint = 600

const (
	FieldFirstName           = "firstName"
	FieldLastName            = "lastName"
	FieldEmail               = "email"
	FieldContact             = "contact"
	FieldLicenseName         = "licenseName"
	FieldIsPaymentDone       = "isPaymentDone"
	FieldAdmin               = "admin"
	FieldOrganisationalAdmin = "organisationalAdmin"
	FieldSignupType          = "signupType"
	FieldLicenseValidity     = "licenseValidity"
)

type Kind string

const (
	KindText   Kind = "text"
	KindNumber Kind = "number"
	KindSelect Kind = "select"
)

type Option struct {
	Value string
	Label string
}

// FieldSpec describes one rendered control.
type FieldSpec struct {
	Name    string
	Label   string
	Kind    Kind
	Options []Option
	Span    int
}

// SpanAt returns how many grid columns the field occupies at the given
// viewport width.
func (f FieldSpec) SpanAt(width int) int {
	if width < MobileBreakpoint {
		return Columns
	}
	return f.Span
}

// Layout lists the controls in render order.
var Layout = []FieldSpec{
	{Name: FieldFirstName, Label: "First Name", Kind: KindText, Span: 2},
	{Name: FieldLastName, Label: "Last Name", Kind: KindText, Span: 2},
	{Name: FieldEmail, Label: "Email", Kind: KindText, Span: 4},
	{Name: FieldContact, Label: "Contact Number", Kind: KindText, Span: 4},
	{Name: FieldLicenseName, Label: "License Name", Kind: KindSelect, Span: 4, Options: []Option{
		{Value: "1", Label: "1"},
		{Value: "2", Label: "2"},
		{Value: "3", Label: "3"},
		{Value: "4", Label: "4"},
		{Value: "5", Label: "5"},
	}},
	{Name: FieldIsPaymentDone, Label: "Is Payment Done", Kind: KindSelect, Span: 4, Options: []Option{
		{Value: "true", Label: "True"},
		{Value: "false", Label: "False"},
	}},
	{Name: FieldAdmin, Label: "Admin", Kind: KindNumber, Span: 2},
	{Name: FieldOrganisationalAdmin, Label: "Organisational Admin", Kind: KindNumber, Span: 2},
	{Name: FieldSignupType, Label: "Signup Type", Kind: KindSelect, Span: 4, Options: []Option{
		{Value: "individual", Label: "Individual"},
		{Value: "govermentInstituite", Label: "Government Institute"},
		{Value: "companyInstituite", Label: "Company Institute"},
	}},
	{Name: FieldLicenseValidity, Label: "License Validity", Kind: KindNumber, Span: 4},
}

// Lookup finds a field by name.
func Lookup(name string) (FieldSpec, bool) {
	for _, f := range Layout {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

func layoutIndex(name string) int {
	for i, f := range Layout {
		if f.Name == name {
			return i
		}
	}
	return len(Layout)
}
