package model

// FieldError is a single violated constraint in a validation response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse collects every violated field, not just the first.
type ValidationErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}
