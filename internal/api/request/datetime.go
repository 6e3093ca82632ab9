package request

import (
	"net/url"
	"strings"
)

// Query parameter names accepted by the datetime endpoints.
const (
	ParamDate      = "date"
	ParamFormat    = "format"
	ParamTimeZone  = "tz"
	ParamStartDate = "start_date"
	ParamEndDate   = "end_date"
)

// NowRequest selects the pattern and, optionally, the zone for the current
// instant. An empty TimeZone means UTC.
type NowRequest struct {
	Format   string
	TimeZone string
}

// DateRequest carries a date-like value and an optional pattern.
type DateRequest struct {
	Date   string
	Format string
}

// ZoneRequest carries a date-like value rendered in a specific IANA zone.
type ZoneRequest struct {
	Date     string
	TimeZone string
	Format   string
}

// FilterDatesRequest carries the calendar days (YYYY-MM-DD) of a filter range.
type FilterDatesRequest struct {
	StartDate string
	EndDate   string
}

// ParseNowRequest extracts a NowRequest from query parameters.
func ParseNowRequest(query url.Values) NowRequest {
	return NowRequest{
		Format:   query.Get(ParamFormat),
		TimeZone: strings.TrimSpace(query.Get(ParamTimeZone)),
	}
}

// ParseDateRequest extracts a DateRequest from query parameters.
func ParseDateRequest(query url.Values) DateRequest {
	return DateRequest{
		Date:   strings.TrimSpace(query.Get(ParamDate)),
		Format: query.Get(ParamFormat),
	}
}

// ParseZoneRequest extracts a ZoneRequest from query parameters.
func ParseZoneRequest(query url.Values) ZoneRequest {
	return ZoneRequest{
		Date:     strings.TrimSpace(query.Get(ParamDate)),
		TimeZone: strings.TrimSpace(query.Get(ParamTimeZone)),
		Format:   query.Get(ParamFormat),
	}
}

// ParseFilterDatesRequest extracts a FilterDatesRequest from query parameters.
func ParseFilterDatesRequest(query url.Values) FilterDatesRequest {
	return FilterDatesRequest{
		StartDate: strings.TrimSpace(query.Get(ParamStartDate)),
		EndDate:   strings.TrimSpace(query.Get(ParamEndDate)),
	}
}
