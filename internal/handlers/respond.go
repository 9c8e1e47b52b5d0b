package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/diegoclair/gpns-planner/internal/domain/entity"
	"github.com/diegoclair/gpns-planner/internal/domain/rotation"
	"github.com/diegoclair/gpns-planner/internal/domain/service"
	"github.com/diegoclair/gpns-planner/internal/sheets"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *APIHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(err)
	if status >= http.StatusInternalServerError {
		h.log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// errorStatus maps domain errors to HTTP status codes.
func errorStatus(err error) int {
	var validationErr *entity.ValidationError
	var badRequest *badRequestError
	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &badRequest), errors.Is(err, sheets.ErrInvalidWorkbook):
		return http.StatusBadRequest
	case errors.As(err, &validationErr), errors.Is(err, sheets.ErrNoTemplates):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrTemplateNotFound),
		errors.Is(err, service.ErrSubTaskNotFound),
		errors.Is(err, service.ErrNoData):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidMonth),
		errors.Is(err, service.ErrUnsupportedFormat),
		errors.Is(err, service.ErrEmptySubTask),
		errors.Is(err, rotation.ErrInvalidRange),
		errors.Is(err, rotation.ErrRangeTooLong):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrAbsencesNotConfigured),
		errors.Is(err, service.ErrHoursNotConfigured),
		errors.Is(err, service.ErrVisitsNotConfigured):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// badRequestError flags malformed query parameters and bodies.
type badRequestError struct {
	msg string
}

func (e *badRequestError) Error() string { return e.msg }

func badRequest(msg string) error {
	return &badRequestError{msg: msg}
}
