package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shopgate/backend/internal/service"
)

type BusyModeHandler struct {
	busyMode service.BusyModeService
}

type setBusyModeRequest struct {
	Enabled bool `json:"enabled"`
}

type updateAdmissionConfigRequest struct {
	MaxOrdersPerWindow int `json:"maxOrdersPerWindow"`
	WindowMinutes      int `json:"windowMinutes"`
}

type admissionConfigResponse struct {
	TenantID           int64   `json:"tenantId"`
	ManualBusy         bool    `json:"manualBusy"`
	MaxOrdersPerWindow int     `json:"maxOrdersPerWindow"`
	WindowMinutes      int     `json:"windowMinutes"`
	BusyModeStartedAt  *string `json:"busyModeStartedAt,omitempty"`
}

func NewBusyModeHandler(busyMode service.BusyModeService) *BusyModeHandler {
	return &BusyModeHandler{busyMode: busyMode}
}

func (h *BusyModeHandler) RegisterRoutes(g *echo.Group) {
	g.PUT("/tenants/:id/busy-mode", h.SetBusyMode)
	g.GET("/tenants/:id/admission-config", h.GetConfig)
	g.PUT("/tenants/:id/admission-config", h.UpdateConfig)
}

func (h *BusyModeHandler) SetBusyMode(c echo.Context) error {
	tenantID, err := parseIDParam(c, "id")
	if err != nil || tenantID <= 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	var req setBusyModeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	if err := h.busyMode.SetManualBusy(c.Request().Context(), tenantID, req.Enabled); err != nil {
		return writeServiceError(c, err)
	}
	return h.writeConfig(c, tenantID)
}

func (h *BusyModeHandler) GetConfig(c echo.Context) error {
	tenantID, err := parseIDParam(c, "id")
	if err != nil || tenantID <= 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	return h.writeConfig(c, tenantID)
}

func (h *BusyModeHandler) UpdateConfig(c echo.Context) error {
	tenantID, err := parseIDParam(c, "id")
	if err != nil || tenantID <= 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	var req updateAdmissionConfigRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	if err := h.busyMode.UpdateLimits(c.Request().Context(), tenantID, req.MaxOrdersPerWindow, req.WindowMinutes); err != nil {
		return writeServiceError(c, err)
	}
	return h.writeConfig(c, tenantID)
}

func (h *BusyModeHandler) writeConfig(c echo.Context, tenantID int64) error {
	cfg, err := h.busyMode.GetConfig(c.Request().Context(), tenantID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, admissionConfigResponse{
		TenantID:           cfg.TenantID,
		ManualBusy:         cfg.ManualBusy,
		MaxOrdersPerWindow: cfg.MaxOrdersPerWindow,
		WindowMinutes:      cfg.WindowMinutes,
		BusyModeStartedAt:  formatTimePtr(cfg.BusyModeStartedAt),
	})
}
