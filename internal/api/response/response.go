// Package response writes JSON bodies and maps conversion errors to HTTP
// status codes.
package response

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ndewijer/datetime-formatter/internal/apperrors"
	"github.com/ndewijer/datetime-formatter/internal/datetime"
	"github.com/ndewijer/datetime-formatter/internal/validation"
)

// ErrorResponse is the body of every non-2xx reply. Details holds field
// messages, the "Invalid date" marker or the underlying error text.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// RespondJSON sends data as JSON with the given status code. A nil data
// writes only the status. Encoding failures are logged.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode JSON response: %v", err)
		}
	}
}

// RespondError sends an ErrorResponse with the given status code.
func RespondError(w http.ResponseWriter, status int, message string, details interface{}) {
	RespondJSON(w, status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}

// RespondServiceError maps a conversion error to a reply. Caller mistakes
// (validation, unparseable dates, unknown zones, reversed ranges) are 400;
// anything else is 500 with message.
//
// Example:
//
//	response.RespondServiceError(w, err, apperrors.ErrFailedToFormatDate.Error())
func RespondServiceError(w http.ResponseWriter, err error, message string) {
	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		RespondError(w, http.StatusBadRequest, "validation failed", vErr.Fields)
	case errors.Is(err, apperrors.ErrInvalidDateRange):
		RespondError(w, http.StatusBadRequest, "invalid date range", err.Error())
	case errors.Is(err, apperrors.ErrInvalidInput):
		RespondError(w, http.StatusBadRequest, "invalid date", datetime.InvalidDate)
	case errors.Is(err, apperrors.ErrUnknownTimeZone):
		RespondError(w, http.StatusBadRequest, "unknown timezone", err.Error())
	default:
		RespondError(w, http.StatusInternalServerError, message, err.Error())
	}
}
