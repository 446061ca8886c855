package form

import "admin-console/internal/api"

type EventType string

const (
	EventChange EventType = "change"
	EventBlur   EventType = "blur"
	EventSubmit EventType = "submit"
	EventResult EventType = "result"
)

// Result reports how a submission ended.
type Result struct {
	OK      bool
	Message string
}

type Event struct {
	Type   EventType `json:"type"`
	Field  string    `json:"field,omitempty"`
	Value  string    `json:"value,omitempty"`
	Result *Result   `json:"-"`
}

// State is everything one rendered form instance tracks.
type State struct {
	FormID      string            `json:"formId"`
	Values      Values            `json:"values"`
	Touched     map[string]bool   `json:"touched"`
	Errors      map[string]string `json:"errors"`
	Submitting  bool              `json:"submitting"`
	SubmitCount int               `json:"submitCount"`
	Message     string            `json:"message,omitempty"`
	Notice      string            `json:"notice,omitempty"`
}

func NewState(formID string) State {
	return State{
		FormID:  formID,
		Values:  InitialValues(),
		Touched: map[string]bool{},
		Errors:  map[string]string{},
	}
}

func (st State) clone() State {
	next := st
	if st.Values == nil {
		next.Values = InitialValues()
	} else {
		next.Values = st.Values.Clone()
	}
	next.Touched = make(map[string]bool, len(st.Touched))
	for k, v := range st.Touched {
		next.Touched[k] = v
	}
	next.Errors = make(map[string]string, len(st.Errors))
	for k, v := range st.Errors {
		next.Errors[k] = v
	}
	return next
}

// VisibleErrors returns the errors of touched fields only.
func (st State) VisibleErrors() map[string]string {
	out := map[string]string{}
	for field, msg := range st.Errors {
		if st.Touched[field] && msg != "" {
			out[field] = msg
		}
	}
	return out
}

// Reduce applies one event to the state. A non-nil request is returned only
// for a submit that passed validation; the caller is expected to send it and
// feed the outcome back as an EventResult.
func (s *Schema) Reduce(st State, ev Event) (State, *api.CreateUserRequest) {
	switch ev.Type {
	case EventChange:
		if _, ok := Lookup(ev.Field); !ok {
			return st, nil
		}
		next := st.clone()
		next.Values[ev.Field] = ev.Value
		_, errs := s.Validate(next.Values)
		next.Errors = errs.Map()
		return next, nil

	case EventBlur:
		if _, ok := Lookup(ev.Field); !ok {
			return st, nil
		}
		next := st.clone()
		next.Touched[ev.Field] = true
		_, errs := s.Validate(next.Values)
		next.Errors = errs.Map()
		return next, nil

	case EventSubmit:
		if st.Submitting {
			return st, nil
		}
		next := st.clone()
		for _, f := range Layout {
			next.Touched[f.Name] = true
		}
		next.SubmitCount++
		req, errs := s.Validate(next.Values)
		next.Errors = errs.Map()
		if len(errs) > 0 {
			return next, nil
		}
		next.Submitting = true
		return next, &req

	case EventResult:
		next := st.clone()
		next.Submitting = false
		if ev.Result == nil {
			return next, nil
		}
		if ev.Result.OK {
			reset := NewState(st.FormID)
			reset.SubmitCount = st.SubmitCount
			reset.Notice = ev.Result.Message
			return reset, nil
		}
		next.Message = ev.Result.Message
		next.Notice = ""
		return next, nil
	}
	return st, nil
}
