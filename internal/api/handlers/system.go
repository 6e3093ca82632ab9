package handlers

import (
	"net/http"

	"github.com/ndewijer/datetime-formatter/internal/api/response"
	"github.com/ndewijer/datetime-formatter/internal/service"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status        string `json:"status"`
	LocalTimezone string `json:"local_timezone,omitempty"`
	DefaultFormat string `json:"default_format,omitempty"`
	Uptime        string `json:"uptime,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Health reports whether the formatter is able to render dates.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	health, err := h.systemService.CheckHealth()
	if err != nil {
		resp := HealthResponse{
			Status: "unhealthy",
			Error:  err.Error(),
		}
		response.RespondJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	resp := HealthResponse{
		Status:        "healthy",
		LocalTimezone: health.LocalTimezone,
		DefaultFormat: health.DefaultFormat,
		Uptime:        health.Uptime.String(),
	}
	response.RespondJSON(w, http.StatusOK, resp)
}

// VersionInfoResponse represents the version check response
type VersionInfoResponse struct {
	AppVersion string `json:"app_version"`
	GoVersion  string `json:"go_version"`
}

// Version handles GET requests to retrieve version information.
//
// Endpoint: GET /api/system/version
// Response: 200 OK with VersionInfoResponse
func (h *SystemHandler) Version(w http.ResponseWriter, r *http.Request) {
	info := h.systemService.CheckVersion()

	resp := VersionInfoResponse{
		AppVersion: info.AppVersion,
		GoVersion:  info.GoVersion,
	}

	response.RespondJSON(w, http.StatusOK, resp)
}
