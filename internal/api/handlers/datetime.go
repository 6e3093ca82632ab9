package handlers

import (
	"net/http"

	"github.com/ndewijer/datetime-formatter/internal/api/request"
	"github.com/ndewijer/datetime-formatter/internal/api/response"
	"github.com/ndewijer/datetime-formatter/internal/apperrors"
	"github.com/ndewijer/datetime-formatter/internal/service"
)

// DateTimeHandler handles date conversion HTTP requests
type DateTimeHandler struct {
	dateTimeService *service.DateTimeService
}

// NewDateTimeHandler creates a new DateTimeHandler
func NewDateTimeHandler(dateTimeService *service.DateTimeService) *DateTimeHandler {
	return &DateTimeHandler{
		dateTimeService: dateTimeService,
	}
}

// FormattedResponse carries a single rendered date.
type FormattedResponse struct {
	Result string `json:"result"`
}

// TimestampResponse carries epoch milliseconds.
type TimestampResponse struct {
	Timestamp int64 `json:"timestamp"`
}

// Now handles GET requests for the current instant.
//
// Endpoint: GET /api/datetime/now?format=&tz=
// Response: 200 OK with FormattedResponse
// Error: 400 Bad Request for an unknown tz
func (h *DateTimeHandler) Now(w http.ResponseWriter, r *http.Request) {
	result, err := h.dateTimeService.Now(request.ParseNowRequest(r.URL.Query()))
	if err != nil {
		response.RespondServiceError(w, err, apperrors.ErrFailedToFormatDate.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, FormattedResponse{Result: result})
}

// NowISO handles GET /api/datetime/now/iso.
func (h *DateTimeHandler) NowISO(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, FormattedResponse{Result: h.dateTimeService.NowISO()})
}

// Timestamp handles GET /api/datetime/timestamp.
func (h *DateTimeHandler) Timestamp(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, TimestampResponse{Timestamp: h.dateTimeService.Timestamp()})
}

// UTC handles GET /api/datetime/utc?date=&format=.
func (h *DateTimeHandler) UTC(w http.ResponseWriter, r *http.Request) {
	h.convert(w, h.dateTimeService.ToUTC, request.ParseDateRequest(r.URL.Query()))
}

// ISO handles GET /api/datetime/iso?date=.
func (h *DateTimeHandler) ISO(w http.ResponseWriter, r *http.Request) {
	h.convert(w, h.dateTimeService.ToISO, request.ParseDateRequest(r.URL.Query()))
}

// Local handles GET /api/datetime/local?date=&format=.
func (h *DateTimeHandler) Local(w http.ResponseWriter, r *http.Request) {
	h.convert(w, h.dateTimeService.ToLocal, request.ParseDateRequest(r.URL.Query()))
}

func (h *DateTimeHandler) convert(w http.ResponseWriter, fn func(request.DateRequest) (string, error), req request.DateRequest) {
	result, err := fn(req)
	if err != nil {
		response.RespondServiceError(w, err, apperrors.ErrFailedToFormatDate.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, FormattedResponse{Result: result})
}

// Zone handles GET requests rendering a date in a specific zone.
//
// Endpoint: GET /api/datetime/zone?date=&tz=&format=
// Response: 200 OK with FormattedResponse
// Error: 400 Bad Request for missing parameters, an invalid date or an unknown tz
func (h *DateTimeHandler) Zone(w http.ResponseWriter, r *http.Request) {
	result, err := h.dateTimeService.InZone(request.ParseZoneRequest(r.URL.Query()))
	if err != nil {
		response.RespondServiceError(w, err, apperrors.ErrFailedToFormatDate.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, FormattedResponse{Result: result})
}

// Filter handles GET requests for a calendar-day filter range.
//
// Endpoint: GET /api/datetime/filter?start_date=YYYY-MM-DD&end_date=YYYY-MM-DD
// Response: 200 OK with {"startDate": ..., "endDate": ...}
// Error: 400 Bad Request for missing, malformed or reversed dates
func (h *DateTimeHandler) Filter(w http.ResponseWriter, r *http.Request) {
	dates, err := h.dateTimeService.FilterDates(request.ParseFilterDatesRequest(r.URL.Query()))
	if err != nil {
		response.RespondServiceError(w, err, apperrors.ErrFailedToBuildFilterDates.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, dates)
}
