package api

// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"message" example:"error message"`
}

// swagger:model api.FieldError
type FieldError struct {
	Field   string `json:"field" example:"email"`
	Message string `json:"message" example:"invalid email"`
}

// swagger:model api.ValidationErrorResponse
type ValidationErrorResponse struct {
	Message string       `json:"message" example:"validation failed"`
	Errors  []FieldError `json:"errors"`
}
