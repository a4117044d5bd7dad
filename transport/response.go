package transport

import (
	"encoding/json"
	"net/http"

	"github.com/expenzo/expenzo-backend/model"
	"github.com/expenzo/expenzo-backend/utils/errors"
	validatorx "github.com/expenzo/expenzo-backend/utils/validator"
)

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, body interface{}) {
	writeJSON(w, http.StatusOK, body)
}

func writeCreated(w http.ResponseWriter, body interface{}) {
	writeJSON(w, http.StatusCreated, body)
}

// writeError maps a CustomError onto its HTTP status and serializes the
// standard error body. Unknown error values degrade to a 500.
func writeError(w http.ResponseWriter, err error) {
	cerr, ok := err.(errors.CustomError)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, errorBody{
			Message: "Internal server error",
		})
		return
	}

	writeJSON(w, cerr.ErrorHTTPCode(), errorBody{
		Message: cerr.Error(),
		Error:   cerr.Detail(),
		Code:    cerr.ErrorCode(),
	})
}

// writeValidationError reports every violated field at once.
func writeValidationError(w http.ResponseWriter, err error) {
	fields := validatorx.FieldErrors(err)
	if fields == nil {
		fields = []model.FieldError{}
	}
	writeJSON(w, http.StatusBadRequest, model.ValidationErrorResponse{
		Message: "Validation failed",
		Errors:  fields,
	})
}
