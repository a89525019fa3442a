package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"shopgate/backend/internal/service"
)

// DeviceIdentityHeader carries the client-generated device pseudo-identifier.
const DeviceIdentityHeader = "X-Device-Id"

type AdmissionHandler struct {
	admission service.AdmissionService
	rateLimit service.RateLimitService
	devices   service.DeviceGuardService
	busyMode  service.BusyModeService
}

type admissionRequest struct {
	TenantID       int64  `json:"tenantId"`
	DeviceIdentity string `json:"deviceId"`
}

type admissionResponse struct {
	Allowed              bool   `json:"allowed"`
	Unverified           bool   `json:"unverified,omitempty"`
	Gate                 string `json:"gate,omitempty"`
	Reason               string `json:"reason,omitempty"`
	Message              string `json:"message,omitempty"`
	RetryAfterSeconds    int    `json:"retryAfterSeconds,omitempty"`
	EstimatedWaitMinutes int    `json:"estimatedWaitMinutes,omitempty"`
}

type rateLimitStatusResponse struct {
	Attempts     int     `json:"attempts"`
	Limit        int     `json:"limit"`
	Blocked      bool    `json:"blocked"`
	BlockedUntil *string `json:"blockedUntil,omitempty"`
}

type deviceStatusResponse struct {
	Blocked         bool    `json:"blocked"`
	BlockedUntil    *string `json:"blockedUntil,omitempty"`
	ActiveOrderCode *string `json:"activeOrderCode,omitempty"`
}

type busyStatusResponse struct {
	Busy               bool    `json:"busy"`
	Reason             string  `json:"reason,omitempty"`
	ManualBusy         bool    `json:"manualBusy"`
	ActiveOrders       int     `json:"activeOrders"`
	MaxOrdersPerWindow int     `json:"maxOrdersPerWindow"`
	WindowMinutes      int     `json:"windowMinutes"`
	BusyModeStartedAt  *string `json:"busyModeStartedAt,omitempty"`
}

func NewAdmissionHandler(admission service.AdmissionService, rateLimit service.RateLimitService, devices service.DeviceGuardService, busyMode service.BusyModeService) *AdmissionHandler {
	return &AdmissionHandler{
		admission: admission,
		rateLimit: rateLimit,
		devices:   devices,
		busyMode:  busyMode,
	}
}

func (h *AdmissionHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/orders/admission", h.Admit)
	g.GET("/admission/rate-limit", h.RateLimitStatus)
	g.GET("/admission/devices/:deviceId", h.DeviceStatus)
	g.GET("/admission/busy-mode/:tenantId", h.BusyModeStatus)
}

// Admit runs the full gate chain for one order-creation attempt.
func (h *AdmissionHandler) Admit(c echo.Context) error {
	var req admissionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	if req.TenantID <= 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "tenantId is required"})
	}

	device := strings.TrimSpace(req.DeviceIdentity)
	if device == "" {
		device = strings.TrimSpace(c.Request().Header.Get(DeviceIdentityHeader))
	}

	verdict := h.admission.Admit(c.Request().Context(), service.AdmissionRequest{
		ClientIdentity: c.RealIP(),
		DeviceIdentity: device,
		TenantID:       req.TenantID,
	})

	if verdict.RetryAfterSeconds > 0 {
		c.Response().Header().Set("Retry-After", strconv.Itoa(verdict.RetryAfterSeconds))
	}

	return c.JSON(verdict.HTTPStatus, admissionResponse{
		Allowed:              verdict.Allowed,
		Unverified:           verdict.Unverified,
		Gate:                 verdict.Gate,
		Reason:               verdict.Reason,
		Message:              verdict.Message,
		RetryAfterSeconds:    verdict.RetryAfterSeconds,
		EstimatedWaitMinutes: verdict.EstimatedWaitMinutes,
	})
}

func (h *AdmissionHandler) RateLimitStatus(c echo.Context) error {
	tenantID, err := strconv.ParseInt(c.QueryParam("tenantId"), 10, 64)
	if err != nil || tenantID <= 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "tenantId is required"})
	}
	client := strings.TrimSpace(c.QueryParam("client"))
	if client == "" {
		client = c.RealIP()
	}

	status, err := h.rateLimit.Status(c.Request().Context(), client, tenantID)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, rateLimitStatusResponse{
		Attempts:     status.Attempts,
		Limit:        status.Limit,
		Blocked:      status.Blocked,
		BlockedUntil: formatTimePtr(status.BlockedUntil),
	})
}

func (h *AdmissionHandler) DeviceStatus(c echo.Context) error {
	device := strings.TrimSpace(c.Param("deviceId"))
	if device == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "deviceId is required"})
	}

	status, err := h.devices.Status(c.Request().Context(), device)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, deviceStatusResponse{
		Blocked:         status.Blocked,
		BlockedUntil:    formatTimePtr(status.BlockedUntil),
		ActiveOrderCode: status.ActiveOrderCode,
	})
}

func (h *AdmissionHandler) BusyModeStatus(c echo.Context) error {
	tenantID, err := parseIDParam(c, "tenantId")
	if err != nil || tenantID <= 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	status, err := h.busyMode.Status(c.Request().Context(), tenantID)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, busyStatusResponse{
		Busy:               status.Busy,
		Reason:             status.Reason,
		ManualBusy:         status.ManualBusy,
		ActiveOrders:       status.ActiveOrders,
		MaxOrdersPerWindow: status.MaxOrdersPerWindow,
		WindowMinutes:      status.WindowMinutes,
		BusyModeStartedAt:  formatTimePtr(status.BusyModeStartedAt),
	})
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
