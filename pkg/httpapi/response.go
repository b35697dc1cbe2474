package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/datecheck/pkg/logger"
	"github.com/dmitrymomot/datecheck/pkg/model"
	"github.com/dmitrymomot/datecheck/pkg/multiparam"
	"github.com/dmitrymomot/datecheck/pkg/temporal"
	"github.com/dmitrymomot/datecheck/pkg/validator"
)

// Response is the envelope of every answer.
type Response struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.ErrorContext(r.Context(), "write response", logger.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	h.writeJSON(w, r, status, Response{Error: &ErrorDetail{Code: code, Message: message}})
}

// classify maps an error to a status and an error detail.
func classify(err error) (int, *ErrorDetail) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		detail := &ErrorDetail{Code: "validation_error", Message: "validation failed", Details: map[string][]string{}}
		for _, field := range verrs.Fields() {
			detail.Details[field] = verrs.Get(field)
		}
		return http.StatusUnprocessableEntity, detail
	}

	var batch *multiparam.AssignmentErrors
	if errors.As(err, &batch) {
		detail := &ErrorDetail{Code: "assignment_error", Message: batch.Error(), Details: map[string][]string{}}
		for _, e := range batch.Errors {
			detail.Details[e.Field] = append(detail.Details[e.Field], e.Err.Error())
		}
		return http.StatusBadRequest, detail
	}

	switch {
	case errors.Is(err, multiparam.ErrUnsupportedMediaType), errors.Is(err, multiparam.ErrMissingContentType):
		return http.StatusUnsupportedMediaType, &ErrorDetail{Code: "unsupported_media_type", Message: err.Error()}
	case errors.Is(err, multiparam.ErrInvalidForm), errors.Is(err, model.ErrUnknownAttribute):
		return http.StatusBadRequest, &ErrorDetail{Code: "bad_request", Message: err.Error()}
	case errors.Is(err, temporal.ErrInvalidMode):
		return http.StatusBadRequest, &ErrorDetail{Code: "invalid_mode", Message: err.Error()}
	case errors.Is(err, temporal.ErrEmpty), errors.Is(err, temporal.ErrInvalid), errors.Is(err, temporal.ErrUnsupportedType):
		return http.StatusUnprocessableEntity, &ErrorDetail{Code: "invalid_value", Message: err.Error()}
	default:
		return http.StatusInternalServerError, &ErrorDetail{Code: "internal_error", Message: "internal server error"}
	}
}
