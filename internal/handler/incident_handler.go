package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"shopgate/backend/internal/model"
	"shopgate/backend/internal/repository"
	"shopgate/backend/internal/service"
)

type IncidentHandler struct {
	incidents service.IncidentService
}

type incidentResponse struct {
	ID             int64   `json:"id"`
	ClientIdentity *string `json:"clientIdentity,omitempty"`
	DeviceIdentity *string `json:"deviceIdentity,omitempty"`
	TenantID       *int64  `json:"tenantId,omitempty"`
	Kind           string  `json:"kind"`
	Details        *string `json:"details,omitempty"`
	OccurredAt     string  `json:"occurredAt"`
}

func NewIncidentHandler(incidents service.IncidentService) *IncidentHandler {
	return &IncidentHandler{incidents: incidents}
}

func (h *IncidentHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/incidents", h.List)
}

func (h *IncidentHandler) List(c echo.Context) error {
	filter := repository.IncidentFilter{
		Kind:           model.IncidentKind(strings.TrimSpace(c.QueryParam("kind"))),
		ClientIdentity: strings.TrimSpace(c.QueryParam("client")),
		DeviceIdentity: strings.TrimSpace(c.QueryParam("device")),
	}

	if raw := c.QueryParam("tenantId"); raw != "" {
		tenantID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
		}
		filter.TenantID = &tenantID
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > 500 {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
		}
		filter.Limit = limit
	}
	if raw := c.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
		}
		filter.Offset = offset
	}

	incidents, err := h.incidents.List(c.Request().Context(), filter)
	if err != nil {
		return writeServiceError(c, err)
	}

	response := make([]incidentResponse, 0, len(incidents))
	for _, incident := range incidents {
		response = append(response, incidentResponse{
			ID:             incident.ID,
			ClientIdentity: incident.ClientIdentity,
			DeviceIdentity: incident.DeviceIdentity,
			TenantID:       incident.TenantID,
			Kind:           string(incident.Kind),
			Details:        incident.Details,
			OccurredAt:     incident.OccurredAt.UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, response)
}
