package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/e-dsin/maturity-sub005/internal/scoring"
	"github.com/e-dsin/maturity-sub005/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps the service error taxonomy onto HTTP codes:
// denial -> 403 with the structured reason, not-found -> 404,
// integrity violations -> 422, anything else -> 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var deniedErr *service.AccessDeniedError
	switch {
	case errors.As(err, &deniedErr):
		writeJSON(w, http.StatusForbidden, map[string]string{
			"error":  "access denied",
			"reason": string(deniedErr.Reason),
		})
	case errors.Is(err, scoring.ErrFormNotFound),
		errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, scoring.ErrQuestionnaireMismatch),
		errors.Is(err, scoring.ErrInvalidAnswerValue),
		errors.Is(err, scoring.ErrFormNotScorable),
		errors.Is(err, service.ErrInvalidStatus):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
